package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RecentRepos(t *testing.T) {
	var gotQuery, gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/users/octocat/repos" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"hello-world","html_url":"https://github.com/octocat/hello-world","stargazers_count":3}]`))
	}))
	defer srv.Close()

	t.Run("oauth app credentials", func(t *testing.T) {
		c := NewClient(srv.URL+"/", "cid", "csecret", "")
		repos, err := c.RecentRepos(context.Background(), "octocat")
		require.NoError(t, err)
		require.Len(t, repos, 1)
		assert.Equal(t, "hello-world", repos[0].Name)
		assert.Equal(t, 3, repos[0].StargazersCount)
		assert.Equal(t, "/users/octocat/repos", gotPath)
		assert.Contains(t, gotQuery, "per_page=5")
		assert.Contains(t, gotQuery, "sort=created")
		assert.Contains(t, gotQuery, "direction=asc")
		assert.Contains(t, gotQuery, "client_id=cid")
		assert.Empty(t, gotAuth)
	})

	t.Run("token", func(t *testing.T) {
		c := NewClient(srv.URL, "cid", "csecret", "tok")
		_, err := c.RecentRepos(context.Background(), "octocat")
		require.NoError(t, err)
		assert.Equal(t, "token tok", gotAuth)
		assert.NotContains(t, gotQuery, "client_id")
	})

	t.Run("unknown user", func(t *testing.T) {
		c := NewClient(srv.URL, "", "", "")
		repos, err := c.RecentRepos(context.Background(), "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, repos)
	})
}
