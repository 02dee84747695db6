package messages

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreservesVerbOrder(t *testing.T) {
	var r VoiceResponse
	r.Append(
		Say{Voice: "Polly.Joanna", Language: "en-US", Text: "Welcome to Grand Vista Toronto."},
		NewSpeechGather("/process-speech", "truffle fries, caesar"),
		Say{Voice: "Polly.Joanna", Language: "en-US", Text: "Are you still there?"},
		Redirect{URL: "/voice"},
	)

	out, err := r.Render()
	require.NoError(t, err)
	doc := string(out)

	assert.True(t, strings.HasPrefix(doc, xml.Header))
	sayIdx := strings.Index(doc, "Welcome to Grand Vista Toronto.")
	gatherIdx := strings.Index(doc, "<Gather")
	redirectIdx := strings.Index(doc, "<Redirect>/voice</Redirect>")
	require.GreaterOrEqual(t, sayIdx, 0)
	require.GreaterOrEqual(t, gatherIdx, 0)
	require.GreaterOrEqual(t, redirectIdx, 0)
	assert.Less(t, sayIdx, gatherIdx)
	assert.Less(t, gatherIdx, redirectIdx)
}

func TestRenderEscapesText(t *testing.T) {
	var r VoiceResponse
	r.Append(Say{Text: "Fish & Chips <today>"})

	out, err := r.Render()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Fish &amp; Chips &lt;today&gt;")
}

func TestNewSpeechGatherDefaults(t *testing.T) {
	g := NewSpeechGather("/process-speech", "falafel")
	assert.Equal(t, "speech", g.Input)
	assert.Equal(t, "POST", g.Method)
	assert.Equal(t, "auto", g.SpeechTimeout)
	assert.Equal(t, "auto", g.Language)
	assert.Equal(t, "falafel", g.Hints)
}

func TestRenderedDocumentParses(t *testing.T) {
	var r VoiceResponse
	r.Append(Say{Text: "Goodbye."}, Hangup{})

	out, err := r.Render()
	require.NoError(t, err)

	var node struct {
		XMLName xml.Name `xml:"Response"`
		Say     string   `xml:"Say"`
		Hangup  *struct{} `xml:"Hangup"`
	}
	require.NoError(t, xml.Unmarshal(out, &node))
	assert.Equal(t, "Goodbye.", node.Say)
	assert.NotNil(t, node.Hangup)
}
