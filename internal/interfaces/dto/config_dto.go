package dto

// ConfigResponse mirrors the front-end bootstrap configuration: LANGUAGES is
// a list of [code, label] pairs.
type ConfigResponse struct {
	Languages    [][2]string `json:"LANGUAGES"`
	LanguageCode string      `json:"LANGUAGE_CODE"`
}
