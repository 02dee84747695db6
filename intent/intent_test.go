package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandvista/roomline/menu"
)

func newTestClassifier() *Classifier {
	return NewClassifier(menu.NewCatalog())
}

func TestLanguageSwitch(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		utterance string
		tag       string
	}{
		{"french", "fr-FR"},
		{"French please", "fr-FR"},
		{"en español", "es-ES"},
		{"espanol", "es-ES"},
		{"farsi", "fa-IR"},
		{"parsi", "fa-IR"},
		{"فارسی", "fa-IR"},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			in := c.Classify(tt.utterance, State{OrderEmpty: true})
			require.Equal(t, LanguageSwitch, in.Kind)
			assert.Equal(t, tt.tag, in.Language)
		})
	}
}

func TestLanguageSwitchRequiresShortUtterance(t *testing.T) {
	c := newTestClassifier()
	in := c.Classify("do you speak french by any chance", State{OrderEmpty: true})
	assert.NotEqual(t, LanguageSwitch, in.Kind)
}

func TestRoomNumberExplicitAlwaysWins(t *testing.T) {
	c := newTestClassifier()

	in := c.Classify("my room number is 204", State{OrderEmpty: true})
	require.Equal(t, RoomNumberProvided, in.Kind)
	assert.Equal(t, "204", in.Room)
}

func TestBareNumberOnlyWhileAwaitingLocation(t *testing.T) {
	c := newTestClassifier()

	// Not awaiting: a bare number is just conversation.
	in := c.Classify("512", State{OrderEmpty: false})
	assert.Equal(t, Fallback, in.Kind)

	// Awaiting: the same utterance supplies the location.
	in = c.Classify("512", State{AwaitingLocation: true})
	require.Equal(t, RoomNumberProvided, in.Kind)
	assert.Equal(t, "512", in.Room)
}

func TestOrderCompleteRequiresNonEmptyOrder(t *testing.T) {
	c := newTestClassifier()

	in := c.Classify("that's all, thank you", State{OrderEmpty: true})
	assert.Equal(t, Fallback, in.Kind)

	in = c.Classify("that's all, thank you", State{OrderEmpty: false})
	assert.Equal(t, OrderComplete, in.Kind)
}

func TestDeclinePhrasesCompleteOrder(t *testing.T) {
	c := newTestClassifier()

	for _, u := range []string{"no thank you", "no thanks", "nothing else for me"} {
		in := c.Classify(u, State{OrderEmpty: false})
		assert.Equal(t, OrderComplete, in.Kind, u)
	}
}

func TestOrderAddDerivesSearchTerm(t *testing.T) {
	c := newTestClassifier()

	in := c.Classify("I'd like the Truffle Fries, please", State{OrderEmpty: true})
	require.Equal(t, OrderAdd, in.Kind)
	assert.Equal(t, "truffle fries", in.SearchTerm)
	require.NotNil(t, in.Item)
	assert.Equal(t, "Truffle Fries", in.Item.Name)
	assert.InDelta(t, 17.0, in.Item.Price, 0.001)
}

func TestOrderAddSearchMiss(t *testing.T) {
	c := newTestClassifier()

	in := c.Classify("i want a pepperoni pizza", State{OrderEmpty: true})
	require.Equal(t, OrderAdd, in.Kind)
	assert.Nil(t, in.Item)
}

func TestOrderAddEmptySearchTerm(t *testing.T) {
	c := newTestClassifier()

	in := c.Classify("i want", State{OrderEmpty: true})
	require.Equal(t, OrderAdd, in.Kind)
	assert.Empty(t, in.SearchTerm)
	assert.Nil(t, in.Item)
}

func TestRulePriorityOrder(t *testing.T) {
	c := newTestClassifier()

	// A short language name wins over everything else.
	in := c.Classify("french", State{AwaitingLocation: true, OrderEmpty: false})
	assert.Equal(t, LanguageSwitch, in.Kind)

	// While awaiting a location, digits win over order-add phrasing.
	in = c.Classify("i want room 204", State{AwaitingLocation: true, OrderEmpty: false})
	assert.Equal(t, RoomNumberProvided, in.Kind)

	// Completion wins over order-add when both vocabularies match.
	in = c.Classify("add nothing, checkout please", State{OrderEmpty: false})
	assert.Equal(t, OrderComplete, in.Kind)
}

func TestFallbackLeavesStateAlone(t *testing.T) {
	c := newTestClassifier()

	for _, u := range []string{"hello", "what's on the menu?", "how much is the salmon?"} {
		in := c.Classify(u, State{OrderEmpty: true})
		assert.Equal(t, Fallback, in.Kind, u)
	}
}
