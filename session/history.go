package session

// Turn is one exchange entry in the conversation history.
type Turn struct {
	Role string `json:"role"` // "user" or "agent"
	Text string `json:"text"`
}

// Roles recorded in the history.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// History is a bounded ring of conversation turns. Older turns are
// evicted once the retained window is full, keeping the context
// assembler's cost constant per turn. It is not safe for concurrent
// use; the owning session serializes access.
type History struct {
	turns []Turn
	max   int
}

// NewHistory creates a history retaining at most max turns.
func NewHistory(max int) *History {
	return &History{max: max}
}

// Append records a turn, evicting the oldest once the window is full.
func (h *History) Append(role, text string) {
	h.turns = append(h.turns, Turn{Role: role, Text: text})
	if len(h.turns) > h.max {
		h.turns = h.turns[len(h.turns)-h.max:]
	}
}

// Recent returns up to n of the most recent turns, oldest first.
func (h *History) Recent(n int) []Turn {
	if n <= 0 || len(h.turns) == 0 {
		return nil
	}
	if n > len(h.turns) {
		n = len(h.turns)
	}
	out := make([]Turn, n)
	copy(out, h.turns[len(h.turns)-n:])
	return out
}

// Len returns the number of retained turns.
func (h *History) Len() int {
	return len(h.turns)
}
