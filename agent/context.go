package agent

import (
	"fmt"
	"strings"

	"github.com/grandvista/roomline/session"
)

// contextTurns is how many recent history turns are rendered into the
// bundle text. Older retained turns are functionally inert.
const contextTurns = 5

// assembleContext builds the bundle handed to the text responder: the
// full menu, the current order with totals, the conversation phase, any
// critical instruction, and the recent turns.
func (a *Agent) assembleContext(sess *session.Session, utterance, note string) string {
	var b strings.Builder

	b.WriteString(a.catalog.DetailedText())
	b.WriteString("\n")
	b.WriteString(sess.Order.Text())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Conversation phase: %s\n", sess.Phase)
	if sess.RoomLocation != "" {
		fmt.Fprintf(&b, "Delivery room: %s\n", sess.RoomLocation)
	}
	if note != "" {
		b.WriteString(note)
		b.WriteString("\n")
	}

	b.WriteString("\nRecent conversation:\n")
	for _, turn := range sess.History.Recent(contextTurns) {
		fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Text)
	}

	fmt.Fprintf(&b, "\nUser said: %s\n", utterance)
	return b.String()
}
