package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/grandvista/roomline/agent"
	"github.com/grandvista/roomline/config"
	"github.com/grandvista/roomline/logging"
	"github.com/grandvista/roomline/messages"
	"github.com/grandvista/roomline/session"
)

// ConsoleServer exposes the agent over a WebSocket text console, so the
// dialogue can be exercised without telephony. Each connection gets its
// own synthetic call session.
type ConsoleServer struct {
	httpServer *http.Server
	upgrader   websocket.Upgrader
	agent      *agent.Agent
	sessions   *session.Manager
	config     *config.Config
	log        *zap.Logger
}

// NewConsoleServer wires the console routes.
func NewConsoleServer(cfg *config.Config, ag *agent.Agent, sessions *session.Manager) *ConsoleServer {
	s := &ConsoleServer{
		agent:    ag,
		sessions: sessions,
		config:   cfg,
		log:      logging.L(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				for _, allowed := range cfg.AllowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	port := cfg.ConsolePort
	if cfg.ServerType == "console" {
		// When running as the only server, use the main port.
		port = cfg.Port
	}

	s.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%d", port),
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
	}

	return s
}

// Start begins listening for connections
func (s *ConsoleServer) Start() error {
	s.log.Info("console server starting", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *ConsoleServer) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down console server")
	return s.httpServer.Shutdown(ctx)
}

func (s *ConsoleServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	callID := "console-" + uuid.NewString()
	defer func() {
		_ = s.agent.EndCall(context.Background(), callID)
		s.log.Info("console session closed", zap.String("call_id", callID))
	}()

	s.log.Info("console session opened", zap.String("call_id", callID))
	s.write(conn, messages.NewStatusMessage(callID, "connected", "Session established"))

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg messages.ClientMessage
		if err := sonic.Unmarshal(raw, &msg); err != nil {
			s.write(conn, messages.NewErrorMessage(callID, messages.ErrCodeInvalidMessage, "Invalid message format"))
			continue
		}

		switch msg.Type {
		case messages.TypeUtterance:
			var payload messages.UtterancePayload
			if err := sonic.Unmarshal(msg.Payload, &payload); err != nil || payload.Text == "" {
				s.write(conn, messages.NewErrorMessage(callID, messages.ErrCodeInvalidMessage, "Invalid utterance payload"))
				continue
			}
			reply, err := s.agent.ProcessUtterance(r.Context(), callID, payload.Text, payload.Language)
			if err != nil {
				s.write(conn, messages.NewErrorMessage(callID, messages.ErrCodeAgentError, err.Error()))
				continue
			}
			s.write(conn, messages.NewReplyMessage(callID, reply.Text, reply.Language, reply.OrderPlaced))

		default:
			s.write(conn, messages.NewErrorMessage(callID, messages.ErrCodeInvalidMessage, "Unknown message type: "+msg.Type))
		}
	}
}

func (s *ConsoleServer) write(conn *websocket.Conn, msg *messages.ServerMessage) {
	data, err := sonic.Marshal(msg)
	if err != nil {
		s.log.Error("failed to encode console frame", zap.Error(err))
		return
	}
	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.log.Debug("console write failed", zap.Error(err))
	}
}

func (s *ConsoleServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","server":"console","sessions":%d}`, s.sessions.ActiveCount())
}
