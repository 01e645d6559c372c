// AngelaMos | 2026
// repository.go

package quote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/quotevault/internal/core"
)

type Repository interface {
	Create(ctx context.Context, quote *Quote) error
	GetByID(ctx context.Context, id string) (*Quote, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, quote *Quote) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListParams) ([]Quote, int, error)
	ToggleVote(
		ctx context.Context,
		quoteID, userID string,
		kind VoteKind,
	) error
	ToggleVerified(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// repository needs the concrete pool rather than core.DBTX: vote toggles
// run inside transactions it opens itself.
type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, quote *Quote) error {
	query := `
		INSERT INTO quotes (id, content, author, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING is_verified, created_at, updated_at`

	err := r.db.GetContext(ctx, quote, query,
		quote.ID,
		quote.Content,
		quote.Author,
		quote.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("create quote: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Quote, error) {
	query := `
		SELECT id, content, author, owner_id, is_verified,
		       created_at, updated_at
		FROM quotes
		WHERE id = $1`

	var quote Quote
	err := r.db.GetContext(ctx, &quote, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get quote: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}

	if err := r.attachVotes(ctx, []*Quote{&quote}); err != nil {
		return nil, err
	}

	return &quote, nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM quotes WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check quote exists: %w", err)
	}

	return exists, nil
}

func (r *repository) Update(ctx context.Context, quote *Quote) error {
	query := `
		UPDATE quotes
		SET content = $2, author = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &quote.UpdatedAt, query,
		quote.ID,
		quote.Content,
		quote.Author,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update quote: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}

	return nil
}

// Delete removes the quote; votes and comments follow via ON DELETE
// CASCADE.
func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM quotes WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete quote: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Quote, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(content ILIKE $%d OR author ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	if params.VerifiedOnly {
		conditions = append(conditions, "is_verified = TRUE")
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM quotes WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count quotes: %w", err)
	}

	// SortColumn is drawn from a fixed allowlist, never from raw input.
	query := fmt.Sprintf(`
		SELECT id, content, author, owner_id, is_verified,
		       created_at, updated_at
		FROM quotes
		WHERE %s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, params.SortColumn(), argIdx, argIdx+1)

	args = append(args, params.Limit, params.Offset())

	var quotes []Quote
	if err := r.db.SelectContext(ctx, &quotes, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}

	refs := make([]*Quote, len(quotes))
	for i := range quotes {
		refs[i] = &quotes[i]
	}
	if err := r.attachVotes(ctx, refs); err != nil {
		return nil, 0, err
	}

	return quotes, total, nil
}

// ToggleVote flips the actor's membership in the target vote set inside a
// single transaction. The (quote_id, user_id) primary key means an actor
// holds at most one vote per quote, so recording a vote of the opposite
// kind is an upsert that atomically replaces it. The sets can never
// intersect, even under concurrent toggles.
func (r *repository) ToggleVote(
	ctx context.Context,
	quoteID, userID string,
	kind VoteKind,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			DELETE FROM quote_votes
			WHERE quote_id = $1 AND user_id = $2 AND kind = $3`,
			quoteID, userID, string(kind),
		)
		if err != nil {
			return fmt.Errorf("remove vote: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("remove vote: %w", err)
		}

		if rows > 0 {
			// Same-kind vote existed: toggled off, nothing else to do.
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO quote_votes (quote_id, user_id, kind)
			VALUES ($1, $2, $3)
			ON CONFLICT (quote_id, user_id)
			DO UPDATE SET kind = EXCLUDED.kind`,
			quoteID, userID, string(kind),
		)
		if err != nil {
			return fmt.Errorf("record vote: %w", err)
		}

		return nil
	})
}

// ToggleVerified is a pure flip of the current state in one atomic update.
func (r *repository) ToggleVerified(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE quotes
		SET is_verified = NOT is_verified, updated_at = NOW()
		WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("toggle verified: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("toggle verified: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("toggle verified: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quotes`); err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return count, nil
}

type voteRow struct {
	QuoteID string `db:"quote_id"`
	UserID  string `db:"user_id"`
	Kind    string `db:"kind"`
}

func (r *repository) attachVotes(
	ctx context.Context,
	quotes []*Quote,
) error {
	if len(quotes) == 0 {
		return nil
	}

	byID := make(map[string]*Quote, len(quotes))
	ids := make([]string, 0, len(quotes))
	for _, q := range quotes {
		q.Likes = []string{}
		q.Dislikes = []string{}
		byID[q.ID] = q
		ids = append(ids, q.ID)
	}

	query, args, err := sqlx.In(`
		SELECT quote_id, user_id, kind
		FROM quote_votes
		WHERE quote_id IN (?)`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("build votes query: %w", err)
	}

	var votes []voteRow
	query = r.db.Rebind(query)
	if err := r.db.SelectContext(ctx, &votes, query, args...); err != nil {
		return fmt.Errorf("load votes: %w", err)
	}

	for _, v := range votes {
		quote, ok := byID[v.QuoteID]
		if !ok {
			continue
		}
		if v.Kind == string(VoteLike) {
			quote.Likes = append(quote.Likes, v.UserID)
		} else {
			quote.Dislikes = append(quote.Dislikes, v.UserID)
		}
	}

	return nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
