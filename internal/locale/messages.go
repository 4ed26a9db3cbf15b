package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var translations = map[string]map[language.Tag]string{
	"Language": {
		language.French: "Langue",
		language.German: "Sprache",
		language.Dutch:  "Taal",
	},
	"Language Icon": {
		language.French: "Icône de langue",
		language.German: "Sprachsymbol",
		language.Dutch:  "Taalpictogram",
	},
	"List members card": {
		language.French: "Carte de la liste des membres",
		language.German: "Karte der Mitgliederliste",
		language.Dutch:  "Kaart met ledenlijst",
	},
	"Loading...": {
		language.French: "Chargement...",
		language.German: "Wird geladen...",
		language.Dutch:  "Laden...",
	},
	"No members": {
		language.French: "Aucun membre",
		language.German: "Keine Mitglieder",
		language.Dutch:  "Geen leden",
	},
	"document not found": {
		language.French: "document introuvable",
		language.German: "Dokument nicht gefunden",
		language.Dutch:  "document niet gevonden",
	},
	"document ID is required": {
		language.French: "l'identifiant du document est requis",
		language.German: "Dokument-ID ist erforderlich",
		language.Dutch:  "document-ID is verplicht",
	},
	"failed to get accesses": {
		language.French: "impossible de récupérer les accès",
		language.German: "Zugriffe konnten nicht geladen werden",
		language.Dutch:  "toegangen konden niet worden opgehaald",
	},
	"failed to get document": {
		language.French: "impossible de récupérer le document",
		language.German: "Dokument konnte nicht geladen werden",
		language.Dutch:  "document kon niet worden opgehaald",
	},
	"internal server error": {
		language.French: "erreur interne du serveur",
		language.German: "interner Serverfehler",
		language.Dutch:  "interne serverfout",
	},
	"invalid document id": {
		language.French: "identifiant de document invalide",
		language.German: "ungültige Dokument-ID",
		language.Dutch:  "ongeldig document-ID",
	},
	"invalid page size": {
		language.French: "taille de page invalide",
		language.German: "ungültige Seitengröße",
		language.Dutch:  "ongeldige paginagrootte",
	},
	"Something went wrong": {
		language.French: "Une erreur est survenue",
		language.German: "Etwas ist schiefgelaufen",
		language.Dutch:  "Er is iets misgegaan",
	},
}

func init() {
	for key, byTag := range translations {
		_ = message.SetString(language.English, key, key)
		for tag, text := range byTag {
			_ = message.SetString(tag, key, text)
		}
	}
}

// Translate renders key in the language given by code.
func Translate(code, key string) string {
	tag, err := language.Parse(code)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf(key)
}

// Localize is Translate for free-form text: text without a registered
// translation is returned as is.
func Localize(code, text string) string {
	if _, ok := translations[text]; !ok {
		return text
	}
	return Translate(code, text)
}
