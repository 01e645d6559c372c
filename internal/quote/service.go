// AngelaMos | 2026
// service.go

package quote

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carterperez-dev/quotevault/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// authorize is the ownership/role policy for gated mutations. It assumes
// the quote has already been resolved, so a missing quote 404s before any
// policy outcome can leak.
//
// Edit and Delete deny with ErrUnauthorized rather than ErrForbidden:
// the original API answers non-owner mutations with 401, and that mapping
// is kept for compatibility even though 403 would be conventional.
func (s *Service) authorize(action Action, quote *Quote, actor Actor) error {
	switch action {
	case ActionEdit, ActionDelete:
		if actor.UserID != quote.OwnerID {
			return fmt.Errorf("not the quote owner: %w", core.ErrUnauthorized)
		}
		return nil
	case ActionVerify:
		if !actor.IsAdmin() {
			return fmt.Errorf("admin role required: %w", core.ErrForbidden)
		}
		return nil
	default:
		return fmt.Errorf("unknown action: %w", core.ErrInvalidInput)
	}
}

func (s *Service) Create(
	ctx context.Context,
	actor Actor,
	req CreateQuoteRequest,
) (*Quote, error) {
	quote := &Quote{
		ID:      uuid.New().String(),
		Content: req.Content,
		Author:  req.Author,
		OwnerID: actor.UserID,
	}

	if err := s.repo.Create(ctx, quote); err != nil {
		return nil, err
	}

	quote.Likes = []string{}
	quote.Dislikes = []string{}

	return quote, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Quote, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	params ListParams,
) ([]Quote, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Update(
	ctx context.Context,
	actor Actor,
	id string,
	req UpdateQuoteRequest,
) (*Quote, error) {
	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ActionEdit, quote, actor); err != nil {
		return nil, err
	}

	quote.Content = req.Content
	quote.Author = req.Author

	if err := s.repo.Update(ctx, quote); err != nil {
		return nil, err
	}

	return quote, nil
}

func (s *Service) Delete(ctx context.Context, actor Actor, id string) error {
	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorize(ActionDelete, quote, actor); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// ToggleVote flips the actor's membership in the target vote set and
// unconditionally clears the opposite set. Voting twice with the same kind
// returns the quote to its pre-vote state; no duplicate-vote error exists.
func (s *Service) ToggleVote(
	ctx context.Context,
	actor Actor,
	id string,
	kind VoteKind,
) (*Quote, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("toggle vote: %w", core.ErrNotFound)
	}

	if err := s.repo.ToggleVote(ctx, id, actor.UserID, kind); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// ToggleVerified flips the verification flag regardless of current state;
// there is no idempotent "set verified" operation.
func (s *Service) ToggleVerified(
	ctx context.Context,
	actor Actor,
	id string,
) (*Quote, error) {
	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ActionVerify, quote, actor); err != nil {
		return nil, err
	}

	if err := s.repo.ToggleVerified(ctx, id); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// QuoteExists lets the comment service validate its foreign reference
// without depending on this package's repository directly.
func (s *Service) QuoteExists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
