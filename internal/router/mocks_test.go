package router

import (
	"context"

	"github.com/stretchr/testify/mock"

	"devconnector/internal/auth"
	"devconnector/internal/model"
	"devconnector/internal/service"
)

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

type MockProfileService struct{ mock.Mock }

func (m *MockProfileService) profile(args mock.Arguments) (*model.Profile, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) Me(ctx context.Context, userID string) (*model.Profile, error) {
	return m.profile(m.Called(ctx, userID))
}

func (m *MockProfileService) Upsert(ctx context.Context, userID string, in service.ProfileInput) (*model.Profile, error) {
	return m.profile(m.Called(ctx, userID, in))
}

func (m *MockProfileService) List(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileService) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	return m.profile(m.Called(ctx, userID))
}

func (m *MockProfileService) DeleteAccount(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockProfileService) AddExperience(ctx context.Context, userID string, in service.ExperienceInput) (*model.Profile, error) {
	return m.profile(m.Called(ctx, userID, in))
}

func (m *MockProfileService) DeleteExperience(ctx context.Context, userID, expID string) (*model.Profile, error) {
	return m.profile(m.Called(ctx, userID, expID))
}

func (m *MockProfileService) AddEducation(ctx context.Context, userID string, in service.EducationInput) (*model.Profile, error) {
	return m.profile(m.Called(ctx, userID, in))
}

func (m *MockProfileService) DeleteEducation(ctx context.Context, userID, eduID string) (*model.Profile, error) {
	return m.profile(m.Called(ctx, userID, eduID))
}

func (m *MockProfileService) GithubRepos(ctx context.Context, username string) ([]model.GithubRepo, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GithubRepo), args.Error(1)
}

type MockPostService struct{ mock.Mock }

func (m *MockPostService) Create(ctx context.Context, userID, text string) (*model.Post, error) {
	args := m.Called(ctx, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockPostService) Like(ctx context.Context, userID, id string) ([]model.Like, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Like), args.Error(1)
}

func (m *MockPostService) Unlike(ctx context.Context, userID, id string) ([]model.Like, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Like), args.Error(1)
}

func (m *MockPostService) Comment(ctx context.Context, userID, id, text string) ([]model.Comment, error) {
	args := m.Called(ctx, userID, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockPostService) DeleteComment(ctx context.Context, userID, id, commentID string) ([]model.Comment, error) {
	args := m.Called(ctx, userID, id, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}
