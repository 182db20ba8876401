package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"devconnector/internal/middleware"
	"devconnector/internal/service"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profiles service.ProfileService
	log      *zap.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles service.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

// ProfileRequest represents a create-or-update profile request. Skills is a
// comma separated list.
type ProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" validate:"required" msg:"Status is required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" validate:"required" msg:"Skills is required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ExperienceRequest represents a new experience entry.
type ExperienceRequest struct {
	Title       string `json:"title" validate:"required" msg:"Title is required"`
	Company     string `json:"company" validate:"required" msg:"Company is required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required" msg:"From date is required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationRequest represents a new education entry.
type EducationRequest struct {
	School       string `json:"school" validate:"required" msg:"School is required"`
	Degree       string `json:"degree" validate:"required" msg:"Degree is required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required" msg:"Field of study is required"`
	From         string `json:"from" validate:"required" msg:"From date is required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Me godoc
// @Summary Get current user's profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	profile, err := h.profiles.Me(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Upsert godoc
// @Summary Create or update user profile
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ProfileRequest true "Profile fields"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	var req ProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, h.log, err)
	}

	profile, err := h.profiles.Upsert(c.Request().Context(), middleware.UserID(c), service.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// List godoc
// @Summary Get all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} model.Profile
// @Router /profile [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profiles.List(c.Request().Context())
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// ByUserID godoc
// @Summary Get profile by user id
// @Tags profile
// @Produce json
// @Param user_id path string true "User id"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Router /profile/user/{user_id} [get]
func (h *ProfileHandler) ByUserID(c echo.Context) error {
	profile, err := h.profiles.ByUserID(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Delete godoc
// @Summary Delete profile, user and posts
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	if err := h.profiles.DeleteAccount(c.Request().Context(), middleware.UserID(c)); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Msg: "User deleted"})
}

// AddExperience godoc
// @Summary Add profile experience
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ExperienceRequest true "Experience entry"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/experience [put]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	var req ExperienceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, h.log, err)
	}

	profile, err := h.profiles.AddExperience(c.Request().Context(), middleware.UserID(c), service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteExperience godoc
// @Summary Delete experience from profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param exp_id path string true "Experience id"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/experience/{exp_id} [delete]
func (h *ProfileHandler) DeleteExperience(c echo.Context) error {
	profile, err := h.profiles.DeleteExperience(c.Request().Context(), middleware.UserID(c), c.Param("exp_id"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// AddEducation godoc
// @Summary Add profile education
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body EducationRequest true "Education entry"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ValidationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/education [put]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	var req EducationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, h.log, err)
	}

	profile, err := h.profiles.AddEducation(c.Request().Context(), middleware.UserID(c), service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteEducation godoc
// @Summary Delete education from profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param edu_id path string true "Education id"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/education/{edu_id} [delete]
func (h *ProfileHandler) DeleteEducation(c echo.Context) error {
	profile, err := h.profiles.DeleteEducation(c.Request().Context(), middleware.UserID(c), c.Param("edu_id"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Github godoc
// @Summary Get user repos from GitHub
// @Tags profile
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {array} model.GithubRepo
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/github/{username} [get]
func (h *ProfileHandler) Github(c echo.Context) error {
	repos, err := h.profiles.GithubRepos(c.Request().Context(), c.Param("username"))
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, repos)
}
