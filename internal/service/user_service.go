package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"devconnector/internal/auth"
	apperrors "devconnector/internal/errors"
	"devconnector/internal/events"
	"devconnector/internal/model"
	"devconnector/internal/repository"
)

// PasswordTooLongMessage is reported when a password exceeds bcrypt's 72 byte input limit.
const PasswordTooLongMessage = "Password must be 72 characters or fewer"

// UserService registers and looks up users.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (token string, err error)
	Get(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo       repository.UserRepository
	jwtService *auth.JWTService
	events     emitter
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, jwtService *auth.JWTService, pub events.Publisher, log *zap.Logger) UserService {
	return &userService{
		repo:       repo,
		jwtService: jwtService,
		events:     emitter{pub: pub, log: log},
	}
}

// Register creates a user with a hashed password and a Gravatar avatar and
// returns a signed session token.
func (s *userService) Register(ctx context.Context, name, email, password string) (string, error) {
	email = strings.TrimSpace(email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.NewFieldError("password", PasswordTooLongMessage)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Avatar:       GravatarURL(email),
		Date:         now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", apperrors.ErrUserAlreadyExists
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	s.events.emit(ctx, events.UserRegistered, user.ID, map[string]string{"name": user.Name, "email": user.Email})
	return token, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return user, nil
}
