package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Negotiate picks the supported language that best matches an
// Accept-Language header. The first supported language is the fallback.
func Negotiate(accept string, supported []string) string {
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		if tag, err := language.Parse(code); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return ""
	}

	accept = strings.TrimSpace(accept)
	if accept == "" {
		return tags[0].String()
	}

	desired, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(desired) == 0 {
		return tags[0].String()
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return tags[0].String()
	}
	return tags[index].String()
}
