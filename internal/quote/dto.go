// AngelaMos | 2026
// dto.go

package quote

import (
	"time"
)

type CreateQuoteRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
	Author  string `json:"author"  validate:"required,min=1,max=255"`
}

type UpdateQuoteRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
	Author  string `json:"author"  validate:"required,min=1,max=255"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 7
)

// Allowed sort keys, mapped to their columns. Anything else falls back to
// createdAt instead of being passed through to the store unvalidated.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type ListParams struct {
	Page         int
	Limit        int
	Search       string
	SortBy       string
	VerifiedOnly bool
}

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if _, ok := sortColumns[p.SortBy]; !ok {
		p.SortBy = "createdAt"
	}
}

func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p *ListParams) SortColumn() string {
	if col, ok := sortColumns[p.SortBy]; ok {
		return col
	}
	return "created_at"
}

// QuoteResponse keeps the original field names: the owner is serialized as
// "user" and timestamps are camelCase.
type QuoteResponse struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	User       string    `json:"user"`
	IsVerified bool      `json:"isVerified"`
	Likes      []string  `json:"likes"`
	Dislikes   []string  `json:"dislikes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ListResponse struct {
	Quotes      []QuoteResponse `json:"quotes"`
	TotalPages  int             `json:"totalPages"`
	TotalQuotes int             `json:"totalQuotes"`
	CurrentPage int             `json:"currentPage"`
}

func ToQuoteResponse(q *Quote) QuoteResponse {
	likes := q.Likes
	if likes == nil {
		likes = []string{}
	}
	dislikes := q.Dislikes
	if dislikes == nil {
		dislikes = []string{}
	}

	return QuoteResponse{
		ID:         q.ID,
		Content:    q.Content,
		Author:     q.Author,
		User:       q.OwnerID,
		IsVerified: q.IsVerified,
		Likes:      likes,
		Dislikes:   dislikes,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func ToQuoteResponseList(quotes []Quote) []QuoteResponse {
	responses := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		responses = append(responses, ToQuoteResponse(&quotes[i]))
	}
	return responses
}

// TotalPages is ceil(total/limit) over the filtered set.
func TotalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}
