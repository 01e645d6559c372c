// AngelaMos | 2026
// entity.go

package comment

import (
	"time"
)

// Comment is immutable once written; it disappears only when its quote is
// deleted (ON DELETE CASCADE).
type Comment struct {
	ID        string    `db:"id"`
	Content   string    `db:"content"`
	AuthorID  string    `db:"author_id"`
	QuoteID   string    `db:"quote_id"`
	CreatedAt time.Time `db:"created_at"`
}
