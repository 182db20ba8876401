package middleware

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"devconnector/internal/auth"
	apperrors "devconnector/internal/errors"
)

const (
	// TokenHeader carries the session token on private routes.
	TokenHeader = "x-auth-token"

	claimsContextKey = "user"

	msgNoToken      = "No token found Authorization denied"
	msgInvalidToken = "Token is not valid"
)

var errTokenRevoked = errors.New("token revoked")

// Auth returns the middleware guarding private routes. It accepts tokens signed
// by jwtService that have not been revoked in store.
func Auth(jwtService *auth.JWTService, store auth.TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + TokenHeader,
		ContextKey:  claimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			revoked, err := store.IsRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				return nil, err
			}
			if revoked {
				return nil, errTokenRevoked
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(TokenHeader) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Msg: msgNoToken})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Msg: msgInvalidToken})
		},
	})
}

// Claims returns the verified token claims of the request, or nil on public routes.
func Claims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsContextKey).(*auth.Claims)
	return claims
}

// UserID returns the authenticated user's id.
func UserID(c echo.Context) string {
	if claims := Claims(c); claims != nil {
		return claims.User.ID
	}
	return ""
}
