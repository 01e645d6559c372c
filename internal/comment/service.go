// AngelaMos | 2026
// service.go

package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carterperez-dev/quotevault/internal/core"
	"github.com/carterperez-dev/quotevault/internal/user"
)

// QuoteProvider reports whether a quote exists; implemented by the quote
// service so comments validate their reference without crossing into its
// repository.
type QuoteProvider interface {
	QuoteExists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo   Repository
	quotes QuoteProvider
}

func NewService(repo Repository, quotes QuoteProvider) *Service {
	return &Service{
		repo:   repo,
		quotes: quotes,
	}
}

func (s *Service) Create(
	ctx context.Context,
	authorID string,
	req CreateCommentRequest,
) (*Comment, error) {
	exists, err := s.quotes.QuoteExists(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("create comment: %w", core.ErrNotFound)
	}

	comment := &Comment{
		ID:       uuid.New().String(),
		Content:  req.Content,
		AuthorID: authorID,
		QuoteID:  req.QuoteID,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListByQuote returns the quote's comments with authors expanded. An
// unknown quote yields an empty list rather than 404, matching the
// original behavior for this read.
func (s *Service) ListByQuote(
	ctx context.Context,
	quoteID string,
) ([]ExpandedCommentResponse, error) {
	comments, err := s.repo.ListByQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpandedCommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, ExpandedCommentResponse{
			ID:      c.ID,
			Content: c.Content,
			User: user.Response{
				ID:        c.AuthorID,
				Username:  c.AuthorUsername,
				Role:      c.AuthorRole,
				CreatedAt: c.AuthorJoinedAt,
			},
			Quote:     c.QuoteID,
			CreatedAt: c.CreatedAt,
		})
	}

	return responses, nil
}
