// Package intent turns one lowercased caller utterance plus the current
// session flags into exactly one tagged intent. Rules are evaluated in a
// fixed priority order; the first matching rule wins. Matching is
// case-insensitive substring containment, deterministic, and explainable.
package intent

import (
	"strings"

	"github.com/grandvista/roomline/menu"
)

// Kind tags the classified meaning of an utterance.
type Kind int

const (
	// Fallback is a passthrough to the generic responder; no state mutation.
	Fallback Kind = iota
	// LanguageSwitch changes the session output language.
	LanguageSwitch
	// RoomNumberProvided supplies the delivery location.
	RoomNumberProvided
	// OrderComplete asks to finish and place the order.
	OrderComplete
	// OrderAdd asks for a menu item to be added to the order.
	OrderAdd
)

func (k Kind) String() string {
	switch k {
	case LanguageSwitch:
		return "language_switch"
	case RoomNumberProvided:
		return "room_number"
	case OrderComplete:
		return "order_complete"
	case OrderAdd:
		return "order_add"
	default:
		return "fallback"
	}
}

// Intent is the classification result for one utterance.
type Intent struct {
	Kind       Kind
	Language   string     // set for LanguageSwitch
	Room       string     // set for RoomNumberProvided
	SearchTerm string     // set for OrderAdd: utterance minus triggers and fillers
	Item       *menu.Item // set for OrderAdd when the search term matched the catalog
}

// State is the slice of session flags the classifier reads. The caller
// owns the session; the classifier never mutates it.
type State struct {
	AwaitingLocation bool
	OrderEmpty       bool
	RoomSet          bool
}

// Order-intent trigger phrases, matched by substring containment.
var orderTriggers = []string{
	"i want", "i'd like", "i would like", "i'll take", "i will take",
	"get me", "can i have", "could i have", "add", "order",
}

// Completion phrases. Only evaluated while the order is non-empty.
var completionPhrases = []string{
	"place order", "place my order", "checkout", "check out",
	"complete", "finish", "that's all", "that is all", "done", "finalize",
}

// Short decline phrases that close out a non-empty order.
var declinePhrases = []string{
	"no thank you", "no thanks", "nothing else", "that's it",
	"that will be all", "that'll be all",
}

// Filler tokens stripped from the order-add search term.
var fillerTokens = map[string]bool{
	"the": true, "a": true, "an": true, "some": true,
	"please": true, "for": true, "to": true, "me": true, "my": true,
}

// Classifier applies the prioritized rule list against the catalog.
type Classifier struct {
	catalog *menu.Catalog
}

// NewClassifier returns a classifier backed by the given catalog.
func NewClassifier(catalog *menu.Catalog) *Classifier {
	return &Classifier{catalog: catalog}
}

// Classify maps an utterance and the session flags to one intent.
// Priority order: LanguageSwitch, RoomNumberProvided, OrderComplete,
// OrderAdd, Fallback.
func (c *Classifier) Classify(utterance string, state State) Intent {
	u := strings.ToLower(strings.TrimSpace(utterance))

	// 1. Language switch: short utterance naming a supported language.
	if tag, ok := matchLanguage(u); ok {
		return Intent{Kind: LanguageSwitch, Language: tag}
	}

	// 2. Room number. Bare digit tokens only count while the session is
	// waiting for a delivery location; explicit "room ..." phrasing
	// counts in any state.
	if state.AwaitingLocation {
		if room, ok := ExtractRoom(u); ok {
			return Intent{Kind: RoomNumberProvided, Room: room}
		}
	} else if room, ok := ExtractExplicitRoom(u); ok {
		return Intent{Kind: RoomNumberProvided, Room: room}
	}

	// 3. Order completion, only meaningful with a non-empty order.
	if !state.OrderEmpty && (containsAny(u, completionPhrases) || containsAny(u, declinePhrases)) {
		return Intent{Kind: OrderComplete}
	}

	// 4. Order add: trigger phrase plus a catalog search on the remainder.
	if containsAny(u, orderTriggers) {
		term := deriveSearchTerm(u)
		in := Intent{Kind: OrderAdd, SearchTerm: term}
		if term != "" {
			if results := c.catalog.Search(term); len(results) > 0 {
				item := results[0]
				in.Item = &item
			}
		}
		return in
	}

	// 5. Everything else flows to the generic responder unchanged.
	return Intent{Kind: Fallback}
}

func containsAny(u string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(u, p) {
			return true
		}
	}
	return false
}

// deriveSearchTerm strips all trigger phrases and filler words from the
// utterance, leaving the candidate item name.
func deriveSearchTerm(u string) string {
	u = stripPunct(u)
	for _, t := range orderTriggers {
		u = strings.ReplaceAll(u, t, " ")
	}
	var kept []string
	for _, tok := range strings.Fields(u) {
		if !fillerTokens[tok] {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ',', '.', '!', '?', ';', ':':
			return -1
		}
		return r
	}, s)
}
