package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"devconnector/internal/service"
)

// UserHandler handles registration.
type UserHandler struct {
	users service.UserService
	log   *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" msg:"Name is required"`
	Email    string `json:"email" validate:"email" msg:"Please Include a Valid Email"`
	Password string `json:"password" validate:"min=6,max=72" msg:"Please enter a password with 6 or more characters" msg_max:"Password must be 72 characters or fewer"`
}

// Register godoc
// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, h.log, err)
	}

	token, err := h.users.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
