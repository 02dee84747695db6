// Command dialtest runs a scripted conversation against the agent with
// a canned responder, so the dialogue and order machinery can be
// exercised without an API key or a phone.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/grandvista/roomline/agent"
	"github.com/grandvista/roomline/config"
	"github.com/grandvista/roomline/logging"
	"github.com/grandvista/roomline/menu"
	"github.com/grandvista/roomline/notify"
	"github.com/grandvista/roomline/session"
)

// cannedResponder echoes the state the agent put into the bundle rather
// than calling a model.
type cannedResponder struct{}

func (cannedResponder) Generate(_ context.Context, _ string, history []session.Turn) (string, error) {
	if len(history) == 0 {
		return "How can I help you with our menu today?", nil
	}
	return fmt.Sprintf("(canned reply to %q)", history[len(history)-1].Text), nil
}

var script = []string{
	"Hello",
	"What's on the menu?",
	"Do you have burgers?",
	"I'd like to order the Truffle Fries",
	"What did I order?",
	"Add a Classic Caesar to my order",
	"That's all",
	"Room 512",
}

func main() {
	log := logging.Init()
	defer func() { _ = log.Sync() }()

	// The manager needs a config; no servers start, so only session
	// limits and Redis settings matter here.
	os.Setenv("GEMINI_API_KEY", "dialtest")
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg.SessionTimeout = 5 * time.Minute

	sessions, err := session.NewManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "session manager: %v\n", err)
		os.Exit(1)
	}
	defer sessions.Shutdown()

	ag := agent.New(menu.NewCatalog(), sessions, cannedResponder{}, notify.NewLogDispatcher())

	ctx := context.Background()
	callID := "dialtest-001"
	for i, line := range script {
		fmt.Printf("\n[%d] caller: %s\n", i+1, line)
		reply, err := ag.ProcessUtterance(ctx, callID, line, "en-US")
		if err != nil {
			fmt.Fprintf(os.Stderr, "agent: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("    agent:  %s\n", reply.Text)
		if reply.OrderPlaced {
			fmt.Println("    >>> order placed")
		}
	}

	if sess, ok := sessions.Get(callID); ok {
		fmt.Printf("\nfinal phase: %s, order lines: %d, room: %s\n",
			sess.Phase, sess.Order.Len(), sess.RoomLocation)
	}
	_ = ag.EndCall(ctx, callID)
}
