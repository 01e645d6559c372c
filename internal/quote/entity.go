// AngelaMos | 2026
// entity.go

package quote

import (
	"time"
)

// Quote is a shared quotation. Author is free text, not a reference to an
// identity; OwnerID is the identity that submitted the quote. Likes and
// Dislikes hold identity IDs and are disjoint by construction: votes live
// in a relation keyed on (quote, voter), so an identity holds at most one
// vote per quote.
type Quote struct {
	ID         string    `db:"id"`
	Content    string    `db:"content"`
	Author     string    `db:"author"`
	OwnerID    string    `db:"owner_id"`
	IsVerified bool      `db:"is_verified"`
	Likes      []string  `db:"-"`
	Dislikes   []string  `db:"-"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// VoteKind selects which side of a toggle-vote operation is targeted.
type VoteKind string

const (
	VoteLike    VoteKind = "like"
	VoteDislike VoteKind = "dislike"
)

// Opposite returns the other vote kind; casting one side always clears
// the actor from the other.
func (k VoteKind) Opposite() VoteKind {
	if k == VoteLike {
		return VoteDislike
	}
	return VoteLike
}

// Action enumerates the gated mutations of the ownership/role policy.
type Action int

const (
	ActionEdit Action = iota
	ActionDelete
	ActionVerify
)

// Actor is the identity attempting an operation, as decoded from its
// session token.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}
