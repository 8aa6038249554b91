package redmine

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(zap.NewNop().Sugar(), config.RedmineConfig{
		BaseURL: baseURL,
		APIKey:  "secret",
		Timeout: time.Second,
	})
	require.NoError(t, err)
	return c
}

func TestClientDisabledWithoutBaseURL(t *testing.T) {
	c, err := New(zap.NewNop().Sugar(), config.RedmineConfig{})
	require.NoError(t, err)
	require.False(t, c.Enabled())
	require.Empty(t, c.Host())

	_, err = c.FetchProjects(context.Background())
	require.Error(t, err)
}

func TestClientHost(t *testing.T) {
	c := newClient(t, "https://redmine.example.com")
	require.True(t, c.Enabled())
	require.Equal(t, "redmine.example.com", c.Host())
}

func TestFetchProjectsPaginates(t *testing.T) {
	const total = 150

	mux := http.NewServeMux()
	mux.HandleFunc("/projects.json", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.Header.Get("X-Redmine-API-Key"))
		require.Equal(t, "*", r.URL.Query().Get("status"))

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		require.Equal(t, 100, limit)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"projects": [`)
		wrote := false
		for i := offset; i < total && i < offset+limit; i++ {
			if wrote {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"id": %d, "name": "project %d"}`, i+1, i+1)
			wrote = true
		}
		fmt.Fprintf(w, `], "total_count": %d}`, total)
	})
	mux.HandleFunc("/projects/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "memberships", r.URL.Query().Get("include"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"project": {"memberships": [
			{"user": {"id": 7, "name": "Alice"}},
			{"user": {"id": 7, "name": "Alice again"}},
			{"group": {"id": 3, "name": "QA"}},
			{}
		]}}`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newClient(t, server.URL)
	projects, err := c.FetchProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, total)

	require.Equal(t, "1", projects[0].ID)
	require.Equal(t, "project 1", projects[0].Name)

	members := projects[0].Members
	require.Len(t, members, 2)
	require.Equal(t, "7", members[0].ID)
	require.Equal(t, "Alice", members[0].Name)
	require.Equal(t, "group-3", members[1].ID)
	require.Equal(t, "QA (グループ)", members[1].Name)
}

func TestFetchProjectsMembershipFailureLeavesEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/projects.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"projects": [{"id": 1, "name": "p"}], "total_count": 1}`)
	})
	mux.HandleFunc("/projects/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newClient(t, server.URL)
	projects, err := c.FetchProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Empty(t, projects[0].Members)
}

func TestFetchProjectsTopLevelFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	c := newClient(t, server.URL)
	_, err := c.FetchProjects(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
}

func TestFetchProjectsEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"projects": [], "total_count": 0}`)
	}))
	defer server.Close()

	c := newClient(t, server.URL)
	projects, err := c.FetchProjects(context.Background())
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	_, err := url.Parse("://bad")
	require.Error(t, err)

	_, err = New(zap.NewNop().Sugar(), config.RedmineConfig{BaseURL: "://bad"})
	require.Error(t, err)
}
