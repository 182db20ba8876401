package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnector/internal/cache"
	apperrors "devconnector/internal/errors"
	"devconnector/internal/events"
	"devconnector/internal/github"
	"devconnector/internal/model"
	"devconnector/internal/repository"
)

const (
	profileCacheTTL = 5 * time.Minute
	githubCacheTTL  = 10 * time.Minute
)

// ProfileInput carries the profile fields a user submits. Empty fields leave the
// stored value untouched.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	// Skills is a comma separated list.
	Skills    string
	Youtube   string
	Twitter   string
	Facebook  string
	Linkedin  string
	Instagram string
}

// ExperienceInput is a new work history entry. Dates are YYYY-MM-DD or RFC 3339.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput is a new education entry. Dates are YYYY-MM-DD or RFC 3339.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// GithubClient lists a GitHub user's public repositories.
type GithubClient interface {
	RecentRepos(ctx context.Context, username string) ([]model.GithubRepo, error)
}

// ProfileService manages profiles and their experience and education entries.
type ProfileService interface {
	Me(ctx context.Context, userID string) (*model.Profile, error)
	Upsert(ctx context.Context, userID string, in ProfileInput) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	ByUserID(ctx context.Context, userID string) (*model.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, userID string, in ExperienceInput) (*model.Profile, error)
	DeleteExperience(ctx context.Context, userID, expID string) (*model.Profile, error)
	AddEducation(ctx context.Context, userID string, in EducationInput) (*model.Profile, error)
	DeleteEducation(ctx context.Context, userID, eduID string) (*model.Profile, error)
	GithubRepos(ctx context.Context, username string) ([]model.GithubRepo, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
	posts    repository.PostRepository
	github   GithubClient
	cache    *cache.Client
	events   emitter
	log      *zap.Logger
}

// NewProfileService builds a ProfileService. cache may be nil.
func NewProfileService(
	store *repository.Store,
	gh GithubClient,
	cache *cache.Client,
	pub events.Publisher,
	log *zap.Logger,
) ProfileService {
	return &profileService{
		profiles: store.Profiles,
		users:    store.Users,
		posts:    store.Posts,
		github:   gh,
		cache:    cache,
		events:   emitter{pub: pub, log: log},
		log:      log,
	}
}

func (s *profileService) Me(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.own(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Upsert merges the non-empty fields of in into the user's profile, creating
// the profile on first use.
func (s *profileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*model.Profile, error) {
	if len(splitSkills(in.Skills)) == 0 {
		return nil, apperrors.NewFieldError("skills", "Skills is required")
	}

	profile, err := s.profiles.FindByUserID(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		profile, err = s.create(ctx, userID, in)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("find profile: %w", err)
	default:
		if err := s.update(ctx, profile, in); err != nil {
			return nil, err
		}
	}

	s.invalidate(ctx, userID)
	s.events.emit(ctx, events.ProfileUpdated, userID, map[string]string{"profile_id": profile.ID})

	if err := s.populate(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// create inserts a new profile. When a concurrent request for the same user
// wins the insert, the stored profile is loaded once and updated instead.
func (s *profileService) create(ctx context.Context, userID string, in ProfileInput) (*model.Profile, error) {
	profile := newProfile(userID)
	mergeProfile(profile, in)
	err := s.profiles.Create(ctx, profile)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrDuplicate) {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	profile, err = s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find profile after duplicate create: %w", err)
	}
	if err := s.update(ctx, profile, in); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) update(ctx context.Context, profile *model.Profile, in ProfileInput) error {
	mergeProfile(profile, in)
	if err := s.profiles.Update(ctx, profile); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (s *profileService) List(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	ptrs := make([]*model.Profile, len(profiles))
	for i := range profiles {
		ptrs[i] = &profiles[i]
	}
	if err := s.populate(ctx, ptrs...); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *profileService) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var cached model.Profile
	if s.cache.GetJSON(ctx, cache.ProfileKey(userID), &cached) {
		return &cached, nil
	}

	profile, err := s.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if err := s.populate(ctx, profile); err != nil {
		return nil, err
	}

	_ = s.cache.SetJSON(ctx, cache.ProfileKey(userID), profile, profileCacheTTL)
	return profile, nil
}

// DeleteAccount removes the user's posts, profile and the user itself.
func (s *profileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.posts.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("delete user: %w", err)
	}

	s.invalidate(ctx, userID)
	s.events.emit(ctx, events.UserDeleted, userID, nil)
	return nil
}

func (s *profileService) AddExperience(ctx context.Context, userID string, in ExperienceInput) (*model.Profile, error) {
	from, to, err := parseRange(in.From, in.To, in.Current)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		entry := model.Experience{
			ID:          uuid.NewString(),
			Title:       in.Title,
			Company:     in.Company,
			Location:    in.Location,
			From:        from,
			To:          to,
			Current:     in.Current,
			Description: in.Description,
		}
		p.Experience = append([]model.Experience{entry}, p.Experience...)
		return nil
	})
}

func (s *profileService) DeleteExperience(ctx context.Context, userID, expID string) (*model.Profile, error) {
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		for i, e := range p.Experience {
			if e.ID == expID {
				p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrExperienceNotFound
	})
}

func (s *profileService) AddEducation(ctx context.Context, userID string, in EducationInput) (*model.Profile, error) {
	from, to, err := parseRange(in.From, in.To, in.Current)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		entry := model.Education{
			ID:           uuid.NewString(),
			School:       in.School,
			Degree:       in.Degree,
			FieldOfStudy: in.FieldOfStudy,
			From:         from,
			To:           to,
			Current:      in.Current,
			Description:  in.Description,
		}
		p.Education = append([]model.Education{entry}, p.Education...)
		return nil
	})
}

func (s *profileService) DeleteEducation(ctx context.Context, userID, eduID string) (*model.Profile, error) {
	return s.mutate(ctx, userID, func(p *model.Profile) error {
		for i, e := range p.Education {
			if e.ID == eduID {
				p.Education = append(p.Education[:i], p.Education[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrEducationNotFound
	})
}

func (s *profileService) GithubRepos(ctx context.Context, username string) ([]model.GithubRepo, error) {
	key := cache.GithubReposKey(username)
	var repos []model.GithubRepo
	if s.cache.GetJSON(ctx, key, &repos) {
		return repos, nil
	}

	repos, err := s.github.RecentRepos(ctx, username)
	if errors.Is(err, github.ErrNotFound) {
		return nil, apperrors.ErrGithubProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("github repos for %s: %w", username, err)
	}

	_ = s.cache.SetJSON(ctx, key, repos, githubCacheTTL)
	return repos, nil
}

// own loads the caller's profile, mapping a missing one to ErrNoProfile.
func (s *profileService) own(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

// mutate applies fn to the caller's profile and persists the result.
func (s *profileService) mutate(ctx context.Context, userID string, fn func(*model.Profile) error) (*model.Profile, error) {
	profile, err := s.own(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(profile); err != nil {
		return nil, err
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.invalidate(ctx, userID)
	s.events.emit(ctx, events.ProfileUpdated, userID, map[string]string{"profile_id": profile.ID})

	if err := s.populate(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// populate fills the user reference of each profile with one lookup.
func (s *profileService) populate(ctx context.Context, profiles ...*model.Profile) error {
	if len(profiles) == 0 {
		return nil
	}
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load profile users: %w", err)
	}
	byID := make(map[string]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for _, p := range profiles {
		if u, ok := byID[p.UserID]; ok {
			p.User = u.Ref()
		}
	}
	return nil
}

func (s *profileService) invalidate(ctx context.Context, userID string) {
	_ = s.cache.Delete(ctx, cache.ProfileKey(userID))
}

func newProfile(userID string) *model.Profile {
	return &model.Profile{
		UserID:     userID,
		Skills:     []string{},
		Experience: []model.Experience{},
		Education:  []model.Education{},
		Date:       now(),
	}
}

func mergeProfile(p *model.Profile, in ProfileInput) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&p.Company, in.Company)
	set(&p.Website, in.Website)
	set(&p.Location, in.Location)
	set(&p.Bio, in.Bio)
	set(&p.Status, in.Status)
	set(&p.GithubUsername, in.GithubUsername)
	if skills := splitSkills(in.Skills); len(skills) > 0 {
		p.Skills = skills
	}
	set(&p.Social.Youtube, in.Youtube)
	set(&p.Social.Twitter, in.Twitter)
	set(&p.Social.Facebook, in.Facebook)
	set(&p.Social.Linkedin, in.Linkedin)
	set(&p.Social.Instagram, in.Instagram)
}

// parseRange parses the from/to dates of an entry. A current entry has no end date.
func parseRange(fromRaw, toRaw string, current bool) (time.Time, *time.Time, error) {
	from, err := parseDate(fromRaw)
	if err != nil {
		return time.Time{}, nil, apperrors.NewFieldError("from", "From date is invalid")
	}
	if current || toRaw == "" {
		return from, nil, nil
	}
	to, err := parseDate(toRaw)
	if err != nil {
		return time.Time{}, nil, apperrors.NewFieldError("to", "To date is invalid")
	}
	return from, &to, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
