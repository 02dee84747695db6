package messages

import "encoding/json"

// Error codes
const (
	ErrCodeInvalidMessage = "INVALID_MESSAGE"
	ErrCodeSessionFailed  = "SESSION_FAILED"
	ErrCodeAgentError     = "AGENT_ERROR"
)

// Message types
const (
	TypeUtterance = "utterance"
	TypeReply     = "reply"
	TypeStatus    = "status"
	TypeError     = "error"
)

// ClientMessage is a frame from a console client.
type ClientMessage struct {
	Type    string          `json:"type"` // "utterance"
	Payload json.RawMessage `json:"payload"`
}

// UtterancePayload carries one typed utterance, standing in for a
// transcribed caller turn.
type UtterancePayload struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// ServerMessage is a frame sent to a console client.
type ServerMessage struct {
	Type      string      `json:"type"` // "reply", "status", "error"
	SessionID string      `json:"sessionId,omitempty"`
	Payload   interface{} `json:"payload"`
}

// ReplyPayload carries the agent's spoken reply.
type ReplyPayload struct {
	Text        string `json:"text"`
	Language    string `json:"language"`
	OrderPlaced bool   `json:"orderPlaced"`
}

// StatusPayload contains status updates
type StatusPayload struct {
	Status  string `json:"status"` // "connected", "disconnected"
	Message string `json:"message,omitempty"`
}

// ErrorPayload contains error information
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewReplyMessage creates a reply frame
func NewReplyMessage(sessionID, text, language string, orderPlaced bool) *ServerMessage {
	return &ServerMessage{
		Type:      TypeReply,
		SessionID: sessionID,
		Payload: ReplyPayload{
			Text:        text,
			Language:    language,
			OrderPlaced: orderPlaced,
		},
	}
}

// NewStatusMessage creates a status frame
func NewStatusMessage(sessionID, status, message string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeStatus,
		SessionID: sessionID,
		Payload: StatusPayload{
			Status:  status,
			Message: message,
		},
	}
}

// NewErrorMessage creates an error frame
func NewErrorMessage(sessionID, code, message string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeError,
		SessionID: sessionID,
		Payload: ErrorPayload{
			Code:    code,
			Message: message,
		},
	}
}
