// Package seed loads developer accounts and profiles from a JSON document.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	apperrors "devconnector/internal/errors"
	"devconnector/internal/repository"
	"devconnector/internal/service"
)

// Developer is one seed record.
type Developer struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Password       string            `json:"password"`
	Status         string            `json:"status"`
	Skills         []string          `json:"skills"`
	Company        string            `json:"company"`
	Website        string            `json:"website"`
	Location       string            `json:"location"`
	Bio            string            `json:"bio"`
	GithubUsername string            `json:"githubusername"`
	Social         map[string]string `json:"social"`
}

// Result counts what a seed run did.
type Result struct {
	Created  int
	Existing int
	Skipped  int
}

// Seeder registers developers through the same services the API uses.
type Seeder struct {
	users    service.UserService
	profiles service.ProfileService
	userRepo repository.UserRepository
	log      *zap.Logger
}

// NewSeeder builds a Seeder.
func NewSeeder(users service.UserService, profiles service.ProfileService, userRepo repository.UserRepository, log *zap.Logger) *Seeder {
	return &Seeder{users: users, profiles: profiles, userRepo: userRepo, log: log}
}

// Load reads seed records from a local file or an http(s) URL.
func Load(ctx context.Context, source string) ([]Developer, error) {
	var body io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: status %d", source, resp.StatusCode)
		}
		body = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", source, err)
		}
		body = f
	}
	defer body.Close()

	var devs []Developer
	if err := json.NewDecoder(body).Decode(&devs); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return devs, nil
}

// Run registers every developer and creates or updates their profile. Existing
// accounts keep their password; their profile is still merged.
func (s *Seeder) Run(ctx context.Context, devs []Developer) (Result, error) {
	var res Result
	for _, dev := range devs {
		if dev.Email == "" || len(dev.Password) < 6 {
			s.log.Warn("skipping invalid developer", zap.String("email", dev.Email))
			res.Skipped++
			continue
		}

		_, err := s.users.Register(ctx, dev.Name, dev.Email, dev.Password)
		switch {
		case errors.Is(err, apperrors.ErrUserAlreadyExists):
			res.Existing++
		case err != nil:
			return res, fmt.Errorf("register %s: %w", dev.Email, err)
		default:
			res.Created++
		}

		if dev.Status == "" || len(dev.Skills) == 0 {
			continue
		}
		user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(dev.Email))
		if err != nil {
			return res, fmt.Errorf("find %s: %w", dev.Email, err)
		}
		if _, err := s.profiles.Upsert(ctx, user.ID, dev.profileInput()); err != nil {
			return res, fmt.Errorf("profile for %s: %w", dev.Email, err)
		}
	}
	return res, nil
}

func (d Developer) profileInput() service.ProfileInput {
	return service.ProfileInput{
		Company:        d.Company,
		Website:        d.Website,
		Location:       d.Location,
		Bio:            d.Bio,
		Status:         d.Status,
		GithubUsername: d.GithubUsername,
		Skills:         strings.Join(d.Skills, ","),
		Youtube:        d.Social["youtube"],
		Twitter:        d.Social["twitter"],
		Facebook:       d.Social["facebook"],
		Linkedin:       d.Social["linkedin"],
		Instagram:      d.Social["instagram"],
	}
}
