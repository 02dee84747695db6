package messages

import (
	"encoding/xml"
	"fmt"
)

// TwiML verbs for the voice webhook responses. Verb order inside a
// Response is significant; Twilio executes them top to bottom.

// Say speaks text to the caller with a specific voice and language.
type Say struct {
	XMLName  xml.Name `xml:"Say"`
	Voice    string   `xml:"voice,attr,omitempty"`
	Language string   `xml:"language,attr,omitempty"`
	Text     string   `xml:",chardata"`
}

// Gather collects caller speech and posts the transcription to Action.
type Gather struct {
	XMLName       xml.Name `xml:"Gather"`
	Input         string   `xml:"input,attr"`
	Action        string   `xml:"action,attr"`
	Method        string   `xml:"method,attr"`
	SpeechTimeout string   `xml:"speechTimeout,attr,omitempty"`
	Language      string   `xml:"language,attr,omitempty"`
	Hints         string   `xml:"hints,attr,omitempty"`
}

// Redirect transfers control to another webhook.
type Redirect struct {
	XMLName xml.Name `xml:"Redirect"`
	URL     string   `xml:",chardata"`
}

// Hangup ends the call.
type Hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

// VoiceResponse is one TwiML document. Verbs render in append order.
type VoiceResponse struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any
}

// Append adds verbs to the document in order.
func (r *VoiceResponse) Append(verbs ...any) {
	r.Verbs = append(r.Verbs, verbs...)
}

// Render serializes the document with the XML declaration Twilio expects.
func (r *VoiceResponse) Render() ([]byte, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to render TwiML: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// NewSpeechGather returns the Gather used on every turn: speech input
// with language auto-detection and menu-vocabulary hints.
func NewSpeechGather(action, hints string) Gather {
	return Gather{
		Input:         "speech",
		Action:        action,
		Method:        "POST",
		SpeechTimeout: "auto",
		Language:      "auto",
		Hints:         hints,
	}
}
