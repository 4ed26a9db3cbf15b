package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/lindenb1/impress/internal/config"
	"github.com/lindenb1/impress/internal/interfaces/dto"
	"github.com/lindenb1/impress/internal/locale"
)

type ConfigHandler struct {
	response dto.ConfigResponse
}

func NewConfigHandler(cfg config.LocaleConfig) *ConfigHandler {
	languages := make([][2]string, 0, len(cfg.Languages))
	for _, l := range locale.Locales(cfg.Languages) {
		languages = append(languages, [2]string{l.Code, l.Label})
	}

	return &ConfigHandler{response: dto.ConfigResponse{
		Languages:    languages,
		LanguageCode: cfg.Default,
	}}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	respondWithSuccess(c, nil, h.response)
}
