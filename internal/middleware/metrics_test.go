package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	e := echo.New()
	e.Use(Metrics("metrics-test"))
	e.GET("/api/posts/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return echo.NewHTTPError(http.StatusNotFound, "nope")
		}
		return c.NoContent(http.StatusOK)
	})

	for _, id := range []string{"a", "b", "missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/"+id, nil))
	}

	ok := httpRequestsTotal.WithLabelValues("metrics-test", http.MethodGet, "/api/posts/:id", "200")
	notFound := httpRequestsTotal.WithLabelValues("metrics-test", http.MethodGet, "/api/posts/:id", "404")
	assert.Equal(t, 2.0, testutil.ToFloat64(ok))
	assert.Equal(t, 1.0, testutil.ToFloat64(notFound))
}
