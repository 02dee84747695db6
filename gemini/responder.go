// Package gemini wraps the GenAI SDK as the black-box text responder.
// The core hands it a context bundle and stores whatever text comes
// back; no validation or post-processing happens here.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/grandvista/roomline/logging"
	"github.com/grandvista/roomline/session"
)

const modelName = "models/gemini-2.0-flash"

// FallbackReply is spoken when the responder fails; the caller always
// hears something.
const FallbackReply = "How can I help you with our menu today?"

// Responder generates spoken replies from the per-turn context bundle.
type Responder struct {
	client *genai.Client
	log    *zap.Logger

	mu     sync.RWMutex
	closed bool
}

// NewResponder creates a client against the Gemini API backend.
func NewResponder(ctx context.Context, apiKey string) (*Responder, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Responder{client: client, log: logging.L()}, nil
}

// Generate produces one reply from the context bundle and the recent
// conversation turns. The bundle already carries menu, order, and phase
// context; history gives the model the conversational thread.
func (r *Responder) Generate(ctx context.Context, bundle string, history []session.Turn) (string, error) {
	r.mu.RLock()
	closed := r.closed
	r.mu.RUnlock()
	if closed {
		return "", fmt.Errorf("responder is closed")
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.RoleUser
		if turn.Role == session.RoleAgent {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, genai.Role(role)))
	}
	contents = append(contents, genai.NewContentFromText(bundle, genai.RoleUser))

	resp, err := r.client.Models.GenerateContent(ctx, modelName, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(session.SystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		MaxOutputTokens:   150,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty reply from model")
	}
	r.log.Debug("reply generated", zap.Int("history_turns", len(history)), zap.Int("chars", len(text)))
	return text, nil
}

// Close marks the responder unusable for further generation.
func (r *Responder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
