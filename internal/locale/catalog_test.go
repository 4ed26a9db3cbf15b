package locale_test

import (
	"testing"

	"github.com/lindenb1/impress/internal/locale"
	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "en", want: "English"},
		{code: "fr", want: "Français"},
		{code: "fr-FR", want: "Français"},
		{code: "de_DE", want: "Deutsch"},
		{code: "nl", want: "Nederlands"},
		{code: "pt-BR", want: "pt-BR"},
		{code: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Label(tt.code))
		})
	}
}

func TestLocales(t *testing.T) {
	got := locale.Locales([]string{"fr", "xx"})
	assert.Equal(t, []locale.Locale{
		{Code: "fr", Label: "Français"},
		{Code: "xx", Label: "xx"},
	}, got)
}

func TestNegotiate(t *testing.T) {
	supported := []string{"en", "fr", "de"}

	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{name: "empty header", accept: "", want: "en"},
		{name: "exact", accept: "fr", want: "fr"},
		{name: "regional variant", accept: "de-AT,de;q=0.9", want: "de"},
		{name: "quality order", accept: "nl;q=0.2,fr;q=0.8", want: "fr"},
		{name: "unsupported", accept: "ja", want: "en"},
		{name: "garbage", accept: ";;;", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Negotiate(tt.accept, supported))
		})
	}

	assert.Equal(t, "", locale.Negotiate("fr", nil))
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Langue", locale.Translate("fr", "Language"))
	assert.Equal(t, "Language", locale.Translate("en", "Language"))
	assert.Equal(t, "Sprache", locale.Translate("de", "Language"))
	assert.Equal(t, "Language", locale.Translate("not a tag!", "Language"))
}

func TestLocalize(t *testing.T) {
	assert.Equal(t, "document introuvable", locale.Localize("fr-FR", "document not found"))
	assert.Equal(t, "document not found", locale.Localize("en-US", "document not found"))
	assert.Equal(t, "ongeldige paginagrootte", locale.Localize("nl", "invalid page size"))
	assert.Equal(t, "invalid cursor: 100% broken", locale.Localize("fr", "invalid cursor: 100% broken"))
}
