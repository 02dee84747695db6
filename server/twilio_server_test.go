package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandvista/roomline/agent"
	"github.com/grandvista/roomline/config"
	"github.com/grandvista/roomline/menu"
	"github.com/grandvista/roomline/notify"
	"github.com/grandvista/roomline/session"
)

type scriptedResponder struct{}

func (scriptedResponder) Generate(_ context.Context, _ string, _ []session.Turn) (string, error) {
	return "Of course.", nil
}

func newTestServer(t *testing.T) (*WebhookServer, *session.Manager) {
	t.Helper()
	cfg := &config.Config{
		Port:            8080,
		RedisURL:        "localhost:0",
		MaxSessions:     10,
		SessionTimeout:  30 * time.Minute,
		DefaultLanguage: "en-US",
	}
	sm, err := session.NewManager(cfg)
	require.NoError(t, err)
	t.Cleanup(sm.Shutdown)

	ag := agent.New(menu.NewCatalog(), sm, scriptedResponder{}, notify.NewLogDispatcher())
	return NewWebhookServer(cfg, ag, sm), sm
}

func postForm(t *testing.T, handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestHandleVoiceGreetsAndGathers(t *testing.T) {
	s, _ := newTestServer(t)

	w := postForm(t, s.handleVoice, url.Values{"CallSid": {"CA001"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/xml", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "Greetings from the Grand Vista")
	assert.Contains(t, body, `action="/process-speech"`)
	assert.Contains(t, body, "<Redirect>/voice</Redirect>")
}

func TestHandleProcessSpeechRunsAgent(t *testing.T) {
	s, sm := newTestServer(t)

	w := postForm(t, s.handleProcessSpeech, url.Values{
		"CallSid":        {"CA002"},
		"SpeechResult":   {"I'd like the Truffle Fries"},
		"SpeechLanguage": {"en-US"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Of course.")
	assert.Contains(t, w.Body.String(), "anything else")

	sess, ok := sm.Get("CA002")
	require.True(t, ok)
	assert.Equal(t, 1, sess.Order.Len())
}

func TestHandleProcessSpeechEmptyRePrompts(t *testing.T) {
	s, sm := newTestServer(t)

	w := postForm(t, s.handleProcessSpeech, url.Values{
		"CallSid":      {"CA003"},
		"SpeechResult": {""},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "didn&#39;t catch that")

	// No speech means no session is created.
	_, ok := sm.Get("CA003")
	assert.False(t, ok)
}

func TestHandleStatusTearsDownTerminalCalls(t *testing.T) {
	s, sm := newTestServer(t)

	_, err := sm.GetOrCreate(context.Background(), "CA004", "")
	require.NoError(t, err)

	w := postForm(t, s.handleStatus, url.Values{
		"CallSid":    {"CA004"},
		"CallStatus": {"in-progress"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, sm.ActiveCount())

	w = postForm(t, s.handleStatus, url.Values{
		"CallSid":    {"CA004"},
		"CallStatus": {"completed"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, sm.ActiveCount())
}

func TestVoiceForLanguageFallsBack(t *testing.T) {
	assert.Equal(t, "Mathieu", voiceForLanguage("fr-FR"))
	assert.Equal(t, "alice", voiceForLanguage("xx-XX"))
}
