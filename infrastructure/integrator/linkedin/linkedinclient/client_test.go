package linkedinclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lidomain "github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-sync/internal/config"
)

func newTestClient(baseURL string) *LinkedInClient {
	cfg := &config.Config{
		LinkedIn: config.LinkedIn{
			BaseURL:        baseURL,
			Version:        "202602",
			AccessToken:    "token-de-teste",
			PageSize:       100,
			TimeoutSeconds: 5,
		},
	}
	return New(cfg, NewConfigTokenProvider(cfg))
}

func TestGet_EnviaCabecalhosObrigatorios(t *testing.T) {
	var gotHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		fmt.Fprint(w, `{"elements": []}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Get(context.Background(), "/adAccounts", "q=search")
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-de-teste", gotHeaders.Get("Authorization"))
	assert.Equal(t, "202602", gotHeaders.Get("LinkedIn-Version"))
	assert.Equal(t, "2.0.0", gotHeaders.Get("X-Restli-Protocol-Version"))
	assert.Equal(t, int64(1), client.CallCount())
}

func TestGetAllPages_MesclaTresPaginasEPara(t *testing.T) {
	// Três páginas por offset: duas cheias e uma curta que encerra o loop
	pageSize := 2
	pages := map[string]string{
		"0": `{"elements": [{"id": 1}, {"id": 2}]}`,
		"2": `{"elements": [{"id": 3}, {"id": 4}]}`,
		"4": `{"elements": [{"id": 5}]}`,
	}

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		body, ok := pages[r.URL.Query().Get("start")]
		require.True(t, ok, "offset inesperado: %s", r.URL.Query().Get("start"))
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	items, err := client.GetAllPages(context.Background(), "/adAccounts", "q=search", "elements", pageSize)
	require.NoError(t, err)

	assert.Len(t, items, 5)
	assert.Equal(t, 3, requests)
	assert.Equal(t, float64(1), items[0]["id"])
	assert.Equal(t, float64(5), items[4]["id"])
}

func TestGetAllPages_SegueCursorNextPageToken(t *testing.T) {
	responses := map[string]string{
		"":    `{"elements": [{"id": 1}], "metadata": {"nextPageToken": "abc"}}`,
		"abc": `{"elements": [{"id": 2}], "metadata": {"nextPageToken": "def"}}`,
		"def": `{"elements": [{"id": 3}]}`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, responses[r.URL.Query().Get("pageToken")])
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	items, err := client.GetAllPages(context.Background(), "/creatives", "q=criteria", "elements", 100)
	require.NoError(t, err)

	assert.Len(t, items, 3)
}

func TestGet_RateLimitViraRateLimitError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Get(context.Background(), "/adAccounts", "")
	require.Error(t, err)

	var rlErr *lidomain.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "/adAccounts", rlErr.Endpoint)
	require.NotNil(t, rlErr.RetryAfter)
	assert.Equal(t, 30, *rlErr.RetryAfter)
}

func TestGet_ErroNao2xxViraAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message": "parametro invalido"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Get(context.Background(), "/adAnalytics", "")
	require.Error(t, err)

	var apiErr *lidomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "/adAnalytics", apiErr.Endpoint)
	assert.Contains(t, apiErr.Body, "parametro invalido")
}

func TestGet_SemTokenRetornaAuthError(t *testing.T) {
	cfg := &config.Config{LinkedIn: config.LinkedIn{BaseURL: "http://localhost", TimeoutSeconds: 1}}
	client := New(cfg, NewConfigTokenProvider(cfg))

	_, err := client.Get(context.Background(), "/adAccounts", "")
	require.Error(t, err)

	var authErr *lidomain.AuthError
	assert.ErrorAs(t, err, &authErr)
}
