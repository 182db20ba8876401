package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"devconnector/internal/auth"
	apperrors "devconnector/internal/errors"
	"devconnector/internal/events"
	"devconnector/internal/model"
	"devconnector/internal/repository"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository, *MockPublisher)
		expectedError error
	}{
		{
			name:  "successful registration",
			email: " Test@Example.com ",
			setupMock: func(m *MockUserRepository, p *MockPublisher) {
				m.On("FindByEmail", mock.Anything, "Test@Example.com").Return(nil, repository.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) { args.Get(1).(*model.User).ID = "u1" }).
					Return(nil)
				p.On("Publish", mock.Anything, events.UserRegistered, "u1", mock.Anything).Return(nil)
			},
		},
		{
			name:  "publish failure does not fail registration",
			email: "test@example.com",
			setupMock: func(m *MockUserRepository, p *MockPublisher) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, repository.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) { args.Get(1).(*model.User).ID = "u1" }).
					Return(nil)
				p.On("Publish", mock.Anything, events.UserRegistered, "u1", mock.Anything).Return(errors.New("broker down"))
			},
		},
		{
			name:  "user already exists",
			email: "existing@example.com",
			setupMock: func(m *MockUserRepository, p *MockPublisher) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
		{
			name:  "unique index race",
			email: "race@example.com",
			setupMock: func(m *MockUserRepository, p *MockPublisher) {
				m.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, repository.ErrNotFound)
				m.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockPub := new(MockPublisher)
			tt.setupMock(mockRepo, mockPub)

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			service := NewUserService(mockRepo, jwtService, mockPub, zap.NewNop())

			token, err := service.Register(context.Background(), "Test User", tt.email, "password123")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				claims, err := jwtService.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, "u1", claims.User.ID)

				created := mockRepo.Calls[1].Arguments.Get(1).(*model.User)
				assert.Equal(t, "Test User", created.Name)
				assert.Equal(t, GravatarURL(tt.email), created.Avatar)
				assert.NotEqual(t, "password123", created.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
				cost, err := bcrypt.Cost([]byte(created.PasswordHash))
				require.NoError(t, err)
				assert.Equal(t, 10, cost)
			}

			mockRepo.AssertExpectations(t)
			mockPub.AssertExpectations(t)
		})
	}
}

func TestUserService_Register_PasswordTooLong(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@b.co").Return(nil, repository.ErrNotFound)

	service := NewUserService(mockRepo, auth.NewJWTService("s", time.Hour), events.NewNop(), zap.NewNop())

	// 40 runes pass request validation but take 80 bytes.
	token, err := service.Register(context.Background(), "A", "a@b.co", strings.Repeat("é", 40))

	assert.Empty(t, token)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []apperrors.FieldError{{Msg: PasswordTooLongMessage, Param: "password", Location: "body"}}, verr.Fields)

	httpErr := apperrors.MapErrorToHTTP(err)
	assert.Equal(t, 400, httpErr.StatusCode)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Get(t *testing.T) {
	dbErr := errors.New("connection reset")
	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "found",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "u1").Return(&model.User{ID: "u1", Name: "Jane"}, nil)
			},
		},
		{
			name: "deleted user",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "u1").Return(nil, repository.ErrNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name: "database failure is wrapped",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "u1").Return(nil, dbErr)
			},
			expectedError: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo, auth.NewJWTService("s", time.Hour), events.NewNop(), zap.NewNop())
			user, err := service.Get(context.Background(), "u1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Jane", user.Name)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGravatarURL(t *testing.T) {
	// md5("myemailaddress@example.com")
	want := "//www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?s=200&r=pg&d=mm"
	assert.Equal(t, want, GravatarURL("MyEmailAddress@example.com "))
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, splitSkills("Go, SQL,,  Docker "))
	assert.Equal(t, []string{}, splitSkills(" , "))
}
