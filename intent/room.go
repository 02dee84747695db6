package intent

import "regexp"

// Room-number patterns, most specific first. The first match wins; later
// patterns are never tried. Explicit "room ..." phrasing is preferred
// over bare digit tokens.
var roomPatterns = []*regexp.Regexp{
	regexp.MustCompile(`room\s+number\s+(?:is\s+)?#?(\d{3,4})`),
	regexp.MustCompile(`room\s*(?:is\s+)?#?\s*(\d{3,4})`),
	regexp.MustCompile(`^\s*#?(\d{3,4})[.!?\s]*$`),
	regexp.MustCompile(`\b(\d{3,4})\b`),
}

// The explicit prefix of roomPatterns: forms that name the room outright.
const explicitRoomPatterns = 2

// ExtractRoom applies the room-number patterns in order to a lowercased
// utterance and returns the digits captured by the first match.
func ExtractRoom(utterance string) (string, bool) {
	return extractRoom(utterance, len(roomPatterns))
}

// ExtractExplicitRoom matches only the explicit "room ..." forms. Used
// outside the awaiting-location state, where bare digit tokens are too
// ambiguous to treat as a delivery location.
func ExtractExplicitRoom(utterance string) (string, bool) {
	return extractRoom(utterance, explicitRoomPatterns)
}

func extractRoom(utterance string, patternCount int) (string, bool) {
	for _, re := range roomPatterns[:patternCount] {
		if m := re.FindStringSubmatch(utterance); m != nil {
			return m[1], true
		}
	}
	return "", false
}
