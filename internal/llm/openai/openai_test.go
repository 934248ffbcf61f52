package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"llm-stock-picker/internal/store"
)

func testConfig() *store.Config {
	cfg := &store.Config{}
	cfg.LLM.Model = "gpt-3.5-turbo"
	// temperature and max_tokens fall back to their accessor defaults
	// (0.7 / 300) when left unset.
	return cfg
}

func newTestAdvisor(t *testing.T, handler http.HandlerFunc) *Advisor {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("OPENAI_API_ENDPOINT", srv.URL)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	return New(testConfig())
}

func TestCompleteSendsFixedParameters(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	adv := newTestAdvisor(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"choices":[{"message":{"content":"  a fine stock \n"}}]}`))
	})

	text, err := adv.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)

	// Assert: bearer auth, fixed parameters, trimmed content.
	require.Equal(t, "Bearer sk-test", gotAuth)
	require.Equal(t, "gpt-3.5-turbo", gotBody["model"])
	require.InDelta(t, 0.7, gotBody["temperature"], 1e-6)
	require.EqualValues(t, 300, gotBody["max_tokens"])
	require.Equal(t, "a fine stock", text)

	msgs := gotBody["messages"].([]any)
	require.Len(t, msgs, 2)
	require.Equal(t, "system", msgs[0].(map[string]any)["role"])
	require.Equal(t, "system prompt", msgs[0].(map[string]any)["content"])
	require.Equal(t, "user", msgs[1].(map[string]any)["role"])
	require.Equal(t, "user prompt", msgs[1].(map[string]any)["content"])
}

func TestCompleteMissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	adv := New(testConfig())

	_, err := adv.Complete(context.Background(), "s", "u")
	require.Error(t, err)
}

func TestCompleteHTTPError(t *testing.T) {
	adv := newTestAdvisor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := adv.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestCompleteEmptyChoices(t *testing.T) {
	adv := newTestAdvisor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := adv.Complete(context.Background(), "s", "u")
	require.Error(t, err)
}
