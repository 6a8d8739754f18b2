package qiita

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtbot/models"
)

// newTestClient points both base URLs at the test server, with the team
// name as a path prefix instead of a subdomain.
func newTestClient(server *httptest.Server) *QiitaClient {
	return &QiitaClient{
		httpClient: server.Client(),
		baseURL:    server.URL,
		teamBaseURL: func(teamURLName string) string {
			return server.URL + "/" + teamURLName
		},
	}
}

func TestListTeams(t *testing.T) {
	t.Run("returns teams with bearer auth", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/teams", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode([]models.QiitaTeam{
				{ID: "acme", Name: "Acme", Active: true},
				{ID: "old", Name: "Old", Active: false},
			})
		}))
		defer server.Close()

		teams, err := newTestClient(server).ListTeams(context.Background(), "tok")

		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Equal(t, "acme", teams[0].ID)
		assert.True(t, teams[0].Active)
		assert.False(t, teams[1].Active)
	})

	t.Run("non-2xx carries reported message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Unauthorized","type":"unauthorized"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).ListTeams(context.Background(), "bad")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Unauthorized", apiErr.Message)
	})

	t.Run("non-json error body is surfaced raw", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		_, err := newTestClient(server).ListTeams(context.Background(), "tok")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "bad gateway", apiErr.Message)
	})
}

func TestExchangeCode(t *testing.T) {
	t.Run("201 yields token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/access_tokens", r.URL.Path)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "cid", payload["client_id"])
			assert.Equal(t, "csecret", payload["client_secret"])
			assert.Equal(t, "auth-code", payload["code"])

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"client_id":"cid","scopes":["read_qiita_team"],"token":"newtok"}`))
		}))
		defer server.Close()

		token, err := newTestClient(server).ExchangeCode(context.Background(), "cid", "csecret", "auth-code")

		require.NoError(t, err)
		assert.Equal(t, "newtok", token)
	})

	t.Run("200 is not success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"token":"newtok"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).ExchangeCode(context.Background(), "cid", "csecret", "auth-code")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	})
}

func TestCreateItem(t *testing.T) {
	t.Run("201 yields title and url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/acme/api/v2/items", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

			var payload struct {
				Title string            `json:"title"`
				Tags  []models.QiitaTag `json:"tags"`
				Body  string            `json:"body"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Hi", payload.Title)
			assert.Equal(t, []models.QiitaTag{{Name: "a"}, {Name: "b"}}, payload.Tags)
			assert.Equal(t, "text", payload.Body)

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"title":"Hi","url":"http://x"}`))
		}))
		defer server.Close()

		article, err := newTestClient(server).CreateItem(
			context.Background(),
			"tok", "acme", "Hi",
			[]models.QiitaTag{{Name: "a"}, {Name: "b"}},
			"text",
		)

		require.NoError(t, err)
		assert.Equal(t, "Hi", article.Title)
		assert.Equal(t, "http://x", article.URL)
	})

	t.Run("rejection carries reported message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"Forbidden","type":"forbidden"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).CreateItem(
			context.Background(), "tok", "acme", "Hi", nil, "text")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Forbidden", apiErr.Message)
	})
}
