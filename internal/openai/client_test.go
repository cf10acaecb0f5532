package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/internal/models"
)

func TestComplete(t *testing.T) {
	var got Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Stay hydrated 💧"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL + "/v1/"))

	messages := []Message{
		{Role: models.RoleSystem, Content: "be brief"},
		{Role: models.RoleUser, Content: "hello"},
	}

	reply, err := c.Complete(context.Background(), "sk-test", messages)
	require.NoError(t, err)

	assert.Equal(t, "Stay hydrated 💧", reply)

	want := Request{
		Model:       "gpt-3.5-turbo",
		Messages:    messages,
		MaxTokens:   150,
		Temperature: 0.7,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteFailures(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"bad key"}`, errStatus},
		{"server error", http.StatusInternalServerError, ``, errStatus},
		{"no choices", http.StatusOK, `{"choices":[]}`, errNoChoices},
		{"garbage", http.StatusOK, `not json`, errDecode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewClient(WithBaseURL(srv.URL)).Complete(context.Background(), "k", nil)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, apperr.IsKind(err, apperr.RemoteService))
		})
	}
}

func TestCompleteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(WithBaseURL(url)).Complete(context.Background(), "k", nil)

	assert.ErrorIs(t, err, errRequest)
	assert.True(t, apperr.IsKind(err, apperr.RemoteService))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 200))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))

	body := strings.Repeat("é", 100) + "x"
	got := truncate(body, 200)

	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 200)
	assert.Equal(t, strings.Repeat("é", 98)+"...", got)
}
