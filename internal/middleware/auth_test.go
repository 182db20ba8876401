package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnector/internal/auth"
)

type fakeTokenStore struct {
	revoked map[string]bool
}

func (f *fakeTokenStore) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

func TestAuth(t *testing.T) {
	jwtService := auth.NewJWTService("secret", time.Hour)
	store := &fakeTokenStore{revoked: map[string]bool{}}

	valid, err := jwtService.GenerateToken("u1")
	require.NoError(t, err)
	revoked, err := jwtService.GenerateToken("u1")
	require.NoError(t, err)
	revokedClaims, err := jwtService.ValidateToken(revoked)
	require.NoError(t, err)
	require.NoError(t, store.Revoke(context.Background(), revokedClaims.ID, time.Hour))
	foreign, err := auth.NewJWTService("other", time.Hour).GenerateToken("u1")
	require.NoError(t, err)

	e := echo.New()
	e.GET("/private", func(c echo.Context) error {
		return c.String(http.StatusOK, UserID(c))
	}, Auth(jwtService, store))

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", token: valid, wantStatus: http.StatusOK, wantBody: "u1"},
		{name: "missing token", wantStatus: http.StatusUnauthorized, wantBody: `{"msg":"No token found Authorization denied"}`},
		{name: "garbage token", token: "abc", wantStatus: http.StatusUnauthorized, wantBody: `{"msg":"Token is not valid"}`},
		{name: "wrong secret", token: foreign, wantStatus: http.StatusUnauthorized, wantBody: `{"msg":"Token is not valid"}`},
		{name: "revoked token", token: revoked, wantStatus: http.StatusUnauthorized, wantBody: `{"msg":"Token is not valid"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.token != "" {
				req.Header.Set(TokenHeader, tt.token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestClaimsOnPublicRoute(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, Claims(c))
	assert.Empty(t, UserID(c))
}
