package intent

import "strings"

// languageNames maps spoken language names, native spellings, and common
// mis-transcriptions to the BCP-47 tag used for speech output.
var languageNames = map[string]string{
	"english":    "en-US",
	"ingles":     "en-US",
	"anglais":    "en-US",
	"spanish":    "es-ES",
	"espanol":    "es-ES",
	"español":    "es-ES",
	"castellano": "es-ES",
	"french":     "fr-FR",
	"francais":   "fr-FR",
	"français":   "fr-FR",
	"german":     "de-DE",
	"deutsch":    "de-DE",
	"aleman":     "de-DE",
	"italian":    "it-IT",
	"italiano":   "it-IT",
	"japanese":   "ja-JP",
	"nihongo":    "ja-JP",
	"日本語":        "ja-JP",
	"chinese":    "zh-CN",
	"mandarin":   "zh-CN",
	"中文":         "zh-CN",
	"arabic":     "ar-SA",
	"عربي":       "ar-SA",
	"العربية":    "ar-SA",
	"farsi":      "fa-IR",
	"parsi":      "fa-IR",
	"persian":    "fa-IR",
	"فارسی":      "fa-IR",
	"hindi":      "hi-IN",
	"हिंदी":      "hi-IN",
	"russian":    "ru-RU",
	"русский":    "ru-RU",
	"portuguese": "pt-BR",
	"portugues":  "pt-BR",
	"português":  "pt-BR",
}

// matchLanguage checks a short utterance (at most two tokens) against the
// language-name vocabulary with exact, prefix, and suffix matching, and
// returns the language tag on a hit.
func matchLanguage(utterance string) (string, bool) {
	u := strings.Join(strings.Fields(stripPunct(utterance)), " ")
	if u == "" || len(strings.Fields(u)) > 2 {
		return "", false
	}
	for name, tag := range languageNames {
		if u == name || strings.HasPrefix(u, name+" ") || strings.HasSuffix(u, " "+name) {
			return tag, true
		}
	}
	return "", false
}
