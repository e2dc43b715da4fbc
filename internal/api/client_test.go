package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Config{BaseURL: server.URL + "/", HTTPClient: server.Client()})
}

func TestNewFallsBackToDefaultBaseURL(t *testing.T) {
	client := New(Config{})
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
}

func TestStatsParsesBothCounters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, statsPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"newsletter":{"total":1234},"applications":{"total":56}}}`))
	})

	stats, err := client.Stats(context.Background())
	require.NoError(t, err)

	newsletter, ok := stats.NewsletterTotal()
	require.True(t, ok)
	assert.Equal(t, float64(1234), newsletter)
	applications, ok := stats.ApplicationsTotal()
	require.True(t, ok)
	assert.Equal(t, float64(56), applications)
}

func TestStatsKeepsMissingCountersAbsent(t *testing.T) {
	cases := []struct {
		name           string
		body           string
		wantNewsletter bool
		wantApps       bool
	}{
		{name: "empty data", body: `{"data":{}}`},
		{name: "no data", body: `{}`},
		{name: "newsletter only", body: `{"data":{"newsletter":{"total":5}}}`, wantNewsletter: true},
		{name: "total missing", body: `{"data":{"newsletter":{},"applications":{"total":2}}}`, wantApps: true},
		{name: "total not a number", body: `{"data":{"newsletter":{"total":"many"}}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})
			stats, err := client.Stats(context.Background())
			require.NoError(t, err)
			_, ok := stats.NewsletterTotal()
			assert.Equal(t, tc.wantNewsletter, ok)
			_, ok = stats.ApplicationsTotal()
			assert.Equal(t, tc.wantApps, ok)
		})
	}
}

func TestStatsNon2xxIsServiceError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := client.Stats(context.Background())
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusBadGateway, svcErr.Status)
	assert.Empty(t, svcErr.Message)
}

func TestStatsMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>nope</html>"))
	})

	_, err := client.Stats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestSubscribeNewsletterSendsJSONAndOmitsEmptyName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, newsletterPath, r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))

		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "a@b.com", payload["email"])
		assert.Equal(t, "website", payload["source"])
		_, hasName := payload["name"]
		assert.False(t, hasName, "empty name should be omitted")

		_, _ = w.Write([]byte(`{"data":{"message":"You're on the list."}}`))
	})

	result, err := client.SubscribeNewsletter(context.Background(), NewsletterEntry{Email: "a@b.com", Source: "website"})
	require.NoError(t, err)
	assert.Equal(t, "You're on the list.", result.Message)
	assert.NotEmpty(t, result.RequestID)
}

func TestSubmitApplicationOmitsOptionalFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, applicationsPath, r.URL.Path)
		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Ada", payload["name"])
		assert.Equal(t, "Backend", payload["roleInterest"])
		assert.Equal(t, "Let me build", payload["message"])
		assert.NotContains(t, payload, "experience")
		assert.NotContains(t, payload, "portfolioUrl")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{}}`))
	})

	result, err := client.SubmitApplication(context.Background(), ApplicationEntry{
		Name:         "Ada",
		Email:        "ada@example.com",
		RoleInterest: "Backend",
		Message:      "Let me build",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Message)
}

func TestPostFailureExtractsErrorMessage(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "with message", status: http.StatusConflict, body: `{"error":{"message":"Already subscribed."}}`, message: "Already subscribed."},
		{name: "without message", status: http.StatusBadRequest, body: `{"error":{}}`},
		{name: "not json", status: http.StatusInternalServerError, body: `oops`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := client.SubscribeNewsletter(context.Background(), NewsletterEntry{Email: "a@b.com", Source: "website"})
			require.Error(t, err)
			assert.Equal(t, tc.message, Message(err))
		})
	}
}

func TestPostTransportFailureHasNoServiceMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := New(Config{BaseURL: url})
	_, err := client.SubscribeNewsletter(context.Background(), NewsletterEntry{Email: "a@b.com", Source: "website"})
	require.Error(t, err)
	assert.Empty(t, Message(err))
}
