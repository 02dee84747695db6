package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/grandvista/roomline/agent"
	"github.com/grandvista/roomline/config"
	"github.com/grandvista/roomline/logging"
	"github.com/grandvista/roomline/messages"
	"github.com/grandvista/roomline/session"
)

// Terminal Twilio call states that trigger session teardown.
var terminalCallStates = map[string]bool{
	"completed": true,
	"failed":    true,
	"busy":      true,
	"no-answer": true,
	"canceled":  true,
}

// WebhookServer serves the Twilio voice webhooks: /voice for the call
// greeting, /process-speech for each transcribed utterance, /status for
// call lifecycle updates.
type WebhookServer struct {
	httpServer *http.Server
	agent      *agent.Agent
	sessions   *session.Manager
	config     *config.Config
	log        *zap.Logger
}

// NewWebhookServer wires the webhook routes.
func NewWebhookServer(cfg *config.Config, ag *agent.Agent, sessions *session.Manager) *WebhookServer {
	s := &WebhookServer{
		agent:    ag,
		sessions: sessions,
		config:   cfg,
		log:      logging.L(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/voice", s.handleVoice)
	mux.HandleFunc("/process-speech", s.handleProcessSpeech)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/health", s.handleHealth)

	port := cfg.Port
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

// Start begins listening for webhooks
func (s *WebhookServer) Start() error {
	s.log.Info("webhook server starting", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *WebhookServer) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down webhook server")
	return s.httpServer.Shutdown(ctx)
}

// handleVoice answers an incoming call with the greeting and opens the
// first speech gather.
func (s *WebhookServer) handleVoice(w http.ResponseWriter, r *http.Request) {
	callID := r.FormValue("CallSid")
	lang := s.config.DefaultLanguage
	s.log.Info("incoming call", zap.String("call_id", callID))

	resp := &messages.VoiceResponse{}
	resp.Append(
		messages.Say{Voice: voiceForLanguage(lang), Language: lang, Text: promptFor(greetings, lang)},
		messages.NewSpeechGather("/process-speech", speechHints),
		messages.Say{Voice: voiceForLanguage(lang), Language: lang, Text: promptFor(noInputPrompts, lang)},
		messages.Redirect{URL: "/voice"},
	)
	s.writeTwiML(w, resp)
}

// handleProcessSpeech runs one transcribed utterance through the agent
// and speaks the reply. The caller always hears something; agent errors
// become a spoken fallback, never a dropped call.
func (s *WebhookServer) handleProcessSpeech(w http.ResponseWriter, r *http.Request) {
	callID := r.FormValue("CallSid")
	speech := r.FormValue("SpeechResult")
	detectedLang := r.FormValue("SpeechLanguage")

	lang := s.config.DefaultLanguage
	if detectedLang != "" {
		lang = detectedLang
	} else if sess, ok := s.sessions.Get(callID); ok {
		lang = sess.Language
	}

	if speech == "" {
		resp := &messages.VoiceResponse{}
		resp.Append(
			messages.Say{Voice: voiceForLanguage(lang), Language: lang, Text: promptFor(noInputPrompts, lang)},
			messages.NewSpeechGather("/process-speech", speechHints),
		)
		s.writeTwiML(w, resp)
		return
	}

	reply, err := s.agent.ProcessUtterance(r.Context(), callID, speech, detectedLang)
	if err != nil {
		s.log.Error("utterance processing failed", zap.String("call_id", callID), zap.Error(err))
		reply = agent.Reply{Text: agent.FallbackReply, Language: lang}
	}

	voice := voiceForLanguage(reply.Language)
	resp := &messages.VoiceResponse{}
	resp.Append(
		messages.Say{Voice: voice, Language: reply.Language, Text: reply.Text},
		messages.NewSpeechGather("/process-speech", speechHints),
		messages.Say{Voice: voice, Language: reply.Language, Text: promptFor(anythingElsePrompts, reply.Language)},
		messages.Redirect{URL: "/process-speech"},
	)
	s.writeTwiML(w, resp)
}

// handleStatus tears down session state when a call reaches a terminal
// state. Teardown of an unknown call is a no-op.
func (s *WebhookServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	callID := r.FormValue("CallSid")
	status := r.FormValue("CallStatus")

	if terminalCallStates[status] {
		if err := s.agent.EndCall(r.Context(), callID); err != nil {
			s.log.Warn("call teardown failed", zap.String("call_id", callID), zap.Error(err))
		} else {
			s.log.Info("call ended", zap.String("call_id", callID), zap.String("status", status))
		}
	}
	w.WriteHeader(http.StatusOK)
}

func (s *WebhookServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","server":"webhook","sessions":%d}`, s.sessions.ActiveCount())
}

func (s *WebhookServer) writeTwiML(w http.ResponseWriter, resp *messages.VoiceResponse) {
	body, err := resp.Render()
	if err != nil {
		s.log.Error("TwiML render failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml")
	_, _ = w.Write(body)
}
