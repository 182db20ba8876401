package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "devconnector/internal/errors"
)

// MessageResponse is the {msg} body of plain acknowledgements.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// bindAndValidate decodes the JSON body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Msg: "Invalid request body"})
	}
	return c.Validate(req)
}

// fail converts err into the client-facing HTTP error. Unexpected failures are
// logged and hidden behind a generic message.
func fail(c echo.Context, log *zap.Logger, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		return he
	}
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.IsInternal() {
		log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.Body).SetInternal(err)
}
