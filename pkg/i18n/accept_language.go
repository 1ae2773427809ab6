package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength bounds the header parsed by MatchLanguage.
const maxAcceptLanguageLength = 4096

// MatchLanguage picks the best entry of available for an Accept-Language
// header. The first available language is returned when the header is empty,
// malformed or matches nothing.
//
// Example header: "de-CH,de;q=0.9,en;q=0.8"
// Available: ["en", "de"]
// Returns: "de"
func MatchLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, len(available))
	for idx, lang := range available {
		tag, err := language.Parse(lang)
		if err != nil {
			tag = language.Und
		}
		supported[idx] = tag
	}

	_, idx, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No || idx < 0 || idx >= len(available) {
		return available[0]
	}
	return available[idx]
}
