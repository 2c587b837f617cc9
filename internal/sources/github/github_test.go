package github

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagedeck/pagedeck/pkg/errors"
)

// newTestSource points a Source at a stub API server.
func newTestSource(t *testing.T, handler http.Handler) *Source {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(WithBaseURL(server.URL))
}

func TestRepositories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"name": "blog", "description": "writing", "html_url": "https://github.com/alice/blog", "has_pages": true},
			{"name": "tools", "html_url": "https://github.com/alice/tools", "has_pages": false}
		]`)
	})

	src := newTestSource(t, mux)
	repos, err := src.Repositories(t.Context(), "alice")
	require.NoError(t, err)

	require.Len(t, repos, 2)
	assert.Equal(t, "blog", repos[0].Name)
	assert.Equal(t, "writing", repos[0].Description)
	assert.True(t, repos[0].HasPages)
	assert.False(t, repos[1].HasPages)
}

func TestRepositoriesPagination(t *testing.T) {
	var baseURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `[{"name": "second", "has_pages": true}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/users/alice/repos?page=2>; rel="next"`, baseURL))
		fmt.Fprint(w, `[{"name": "first", "has_pages": true}]`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	baseURL = server.URL
	src := New(WithBaseURL(server.URL))

	repos, err := src.Repositories(t.Context(), "alice")
	require.NoError(t, err)

	require.Len(t, repos, 2)
	assert.Equal(t, "first", repos[0].Name)
	assert.Equal(t, "second", repos[1].Name)
}

func TestRepositoriesAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "oops"}`, http.StatusInternalServerError)
	})

	src := newTestSource(t, mux)
	_, err := src.Repositories(t.Context(), "alice")

	require.Error(t, err)
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"login": "alice",
			"avatar_url": "https://avatars.example.com/alice",
			"html_url": "https://github.com/alice"
		}`)
	})

	src := newTestSource(t, mux)
	profile, err := src.Profile(t.Context(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "https://avatars.example.com/alice", profile.AvatarURL)
	assert.Equal(t, "https://github.com/alice", profile.ProfileURL)
}

func TestProfileNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	src := newTestSource(t, mux)
	_, err := src.Profile(t.Context(), "ghost")

	require.Error(t, err)
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

// recordingTransport notes every request it carries so tests can prove the
// injected client is still the one making calls.
type recordingTransport struct {
	requests int
	auth     string
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.requests++
	rt.auth = req.Header.Get("Authorization")
	return http.DefaultTransport.RoundTrip(req)
}

func TestWithTokenKeepsInjectedClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"login": "alice"}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	rt := &recordingTransport{}
	src := New(
		WithHTTPClient(&http.Client{Transport: rt}),
		WithToken("secret"),
		WithBaseURL(server.URL),
	)

	_, err := src.Profile(t.Context(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 1, rt.requests, "injected transport should carry the request")
	assert.Equal(t, "Bearer secret", rt.auth)
}
