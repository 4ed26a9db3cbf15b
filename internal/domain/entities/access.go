package entities

import "time"

// Access is one principal's grant on a document. User is nil for team grants.
type Access struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	User       *User     `json:"user"`
	Team       string    `json:"team"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// AccessPage is one batch of accesses returned by a fetch. Next is the opaque
// cursor of the following page and is empty on the last page.
type AccessPage struct {
	Results []Access `json:"results"`
	Next    string   `json:"next"`
}

func (p AccessPage) HasNext() bool {
	return p.Next != ""
}
