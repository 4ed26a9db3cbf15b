package dto

import "github.com/lindenb1/impress/internal/domain/entities"

type AccessListRequest struct {
	Cursor   string `form:"cursor"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1"`
}

type AccessListResponse struct {
	Results []entities.Access `json:"results"`
	Next    string            `json:"next"`
	HasNext bool              `json:"has_next"`
}

func NewAccessListResponse(page entities.AccessPage) AccessListResponse {
	results := page.Results
	if results == nil {
		results = []entities.Access{}
	}
	return AccessListResponse{
		Results: results,
		Next:    page.Next,
		HasNext: page.HasNext(),
	}
}
