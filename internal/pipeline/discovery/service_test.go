package discovery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-automation/internal/common/errors"
	"outreach-automation/internal/common/logger"
)

func createTestConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		APIKey:     "test-api-key",
		Engine:     "google",
		Timeout:    3 * time.Second,
		MaxResults: 20,
	}
}

func searchResponse(results []map[string]interface{}) string {
	response := map[string]interface{}{"organic_results": results}
	data, _ := json.Marshal(response)
	return string(data)
}

func TestService_Discover_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "google", r.URL.Query().Get("engine"))
		assert.Equal(t, "UAE brands", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("num"))

		w.Write([]byte(searchResponse([]map[string]interface{}{
			{"title": "Brandia | Premium Home Goods", "link": "https://brandia.ae"},
			{"title": "Brandia on Instagram", "link": "https://www.instagram.com/brandia"},
			{"title": "Souqy Trading LLC", "link": "https://souqy.com/about"},
		})))
	}))
	defer server.Close()

	svc := NewService(createTestConfig(server.URL), logger.NewNoOpLogger())

	candidates, err := svc.Discover(context.Background(), "UAE brands", 5)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "Brandia | Premium Home Goods", candidates[0].Name)
	assert.Equal(t, "https://brandia.ae", candidates[0].URL)
	assert.Empty(t, candidates[0].Emails)
	assert.Empty(t, candidates[0].SocialLinks)
	assert.False(t, candidates[0].Timestamp.IsZero())

	assert.Equal(t, "Souqy Trading LLC", candidates[1].Name)
}

func TestService_Discover_FiltersAllSocialDomains(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchResponse([]map[string]interface{}{
			{"title": "FB", "link": "https://www.facebook.com/somebrand"},
			{"title": "IG", "link": "https://instagram.com/somebrand"},
			{"title": "LI", "link": "https://ae.linkedin.com/company/somebrand"},
			{"title": "YT", "link": "https://youtube.com/@somebrand"},
			{"title": "TW", "link": "https://twitter.com/somebrand"},
			{"title": "Wiki", "link": "https://en.wikipedia.org/wiki/Somebrand"},
		})))
	}))
	defer server.Close()

	svc := NewService(createTestConfig(server.URL), logger.NewNoOpLogger())

	candidates, err := svc.Discover(context.Background(), "somebrand", 6)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestService_Discover_NameTruncationAndPlaceholder(t *testing.T) {
	longTitle := strings.Repeat("x", 80)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchResponse([]map[string]interface{}{
			{"title": longTitle, "link": "https://long.example.ae"},
			{"link": "https://untitled.example.ae"},
		})))
	}))
	defer server.Close()

	svc := NewService(createTestConfig(server.URL), logger.NewNoOpLogger())

	candidates, err := svc.Discover(context.Background(), "q", 2)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Len(t, candidates[0].Name, 50)
	assert.Equal(t, "Unknown", candidates[1].Name)
}

func TestService_Discover_ClampsRequestToMaxResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("num"))
		w.Write([]byte(searchResponse(nil)))
	}))
	defer server.Close()

	svc := NewService(createTestConfig(server.URL), logger.NewNoOpLogger())

	_, err := svc.Discover(context.Background(), "q", 100)
	require.NoError(t, err)
}

func TestService_Discover_MissingLinkTolerated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchResponse([]map[string]interface{}{
			{"title": "No link at all"},
		})))
	}))
	defer server.Close()

	svc := NewService(createTestConfig(server.URL), logger.NewNoOpLogger())

	candidates, err := svc.Discover(context.Background(), "q", 1)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "", candidates[0].URL)
}

func TestService_Discover_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewService(createTestConfig(server.URL), logger.NewNoOpLogger())

	candidates, err := svc.Discover(context.Background(), "q", 5)
	assert.Empty(t, candidates)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSearchProviderFailed, errors.CodeOf(err))
	assert.True(t, errors.IsCampaignFatal(err))
}

func TestService_Discover_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	svc := NewService(createTestConfig(server.URL), logger.NewNoOpLogger())

	_, err := svc.Discover(context.Background(), "q", 5)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSearchProviderFailed, errors.CodeOf(err))
}
