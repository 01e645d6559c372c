// AngelaMos | 2026
// dto.go

package comment

import (
	"time"

	"github.com/carterperez-dev/quotevault/internal/user"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
	QuoteID string `json:"quoteId" validate:"required"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	User      string    `json:"user"`
	Quote     string    `json:"quote"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExpandedCommentResponse is the listing shape: the author reference is
// expanded to the full (safe) identity record.
type ExpandedCommentResponse struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	User      user.Response `json:"user"`
	Quote     string        `json:"quote"`
	CreatedAt time.Time     `json:"createdAt"`
}

func ToCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		User:      c.AuthorID,
		Quote:     c.QuoteID,
		CreatedAt: c.CreatedAt,
	}
}
