package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lindenb1/impress/internal/domain/services"
	"github.com/lindenb1/impress/internal/interfaces/dto"
)

type AccessHandler struct {
	accessSvc *services.AccessService
}

func NewAccessHandler(accessSvc *services.AccessService) *AccessHandler {
	return &AccessHandler{accessSvc: accessSvc}
}

func (h *AccessHandler) List(c *gin.Context) {
	docID := c.Param("id")
	if docID == "" {
		respondWithError(c, http.StatusBadRequest, 400, "document ID is required")
		return
	}

	var req dto.AccessListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, 400, err.Error())
		return
	}

	page, err := h.accessSvc.List(c.Request.Context(), docID, req.Cursor, req.PageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondWithSuccess(c, nil, dto.NewAccessListResponse(page))
}
