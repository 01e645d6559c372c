// AngelaMos | 2026
// repository.go

package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/quotevault/internal/core"
)

// ExpandedComment is a comment joined with its author's identity record.
type ExpandedComment struct {
	ID             string    `db:"id"`
	Content        string    `db:"content"`
	QuoteID        string    `db:"quote_id"`
	CreatedAt      time.Time `db:"created_at"`
	AuthorID       string    `db:"author_id"`
	AuthorUsername string    `db:"author_username"`
	AuthorRole     string    `db:"author_role"`
	AuthorJoinedAt time.Time `db:"author_joined_at"`
}

type Repository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByQuote(
		ctx context.Context,
		quoteID string,
	) ([]ExpandedComment, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, comment *Comment) error {
	query := `
		INSERT INTO comments (id, content, author_id, quote_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &comment.CreatedAt, query,
		comment.ID,
		comment.Content,
		comment.AuthorID,
		comment.QuoteID,
	)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

func (r *repository) ListByQuote(
	ctx context.Context,
	quoteID string,
) ([]ExpandedComment, error) {
	query := `
		SELECT c.id, c.content, c.quote_id, c.created_at,
		       u.id AS author_id,
		       u.username AS author_username,
		       u.role AS author_role,
		       u.created_at AS author_joined_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.quote_id = $1
		ORDER BY c.created_at ASC`

	comments := []ExpandedComment{}
	if err := r.db.SelectContext(ctx, &comments, query, quoteID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}
