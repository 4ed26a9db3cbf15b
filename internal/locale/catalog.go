package locale

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languagesYAML []byte

var languageLabels = mustParseLabels(languagesYAML)

// Locale pairs a language tag with its display name.
type Locale struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func parseLabels(data []byte) (map[string]string, error) {
	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse language labels: %w", err)
	}

	labels := make(map[string]string, len(raw))
	for code, label := range raw {
		labels[normalizeCode(code)] = strings.TrimSpace(label)
	}
	return labels, nil
}

func mustParseLabels(data []byte) map[string]string {
	labels, err := parseLabels(data)
	if err != nil {
		panic(err)
	}
	return labels
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
}

// Label returns the display name of code. Codes missing from the catalog are
// shown as-is.
func Label(code string) string {
	if label, ok := languageLabels[normalizeCode(code)]; ok && label != "" {
		return label
	}
	return code
}

// Locales builds the locale list for codes, keeping their order.
func Locales(codes []string) []Locale {
	out := make([]Locale, 0, len(codes))
	for _, code := range codes {
		out = append(out, Locale{Code: code, Label: Label(code)})
	}
	return out
}
