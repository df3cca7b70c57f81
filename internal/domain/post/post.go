// Package post defines the Post entity.
package post

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/domain"
)

// Post is an authored piece of content. Likes holds the IDs of likes that
// reference this post, in the order they were linked.
type Post struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	Likes     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch holds a partial update. Nil fields are left unchanged.
type Patch struct {
	Title    *string
	Content  *string
	AuthorID *string
}

// Validate checks business rules for the Post entity.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return domain.NewFieldError("title", domain.MsgRequired)
	}
	return nil
}

// Validate checks that any provided fields have valid values.
func (p *Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return domain.NewFieldError("title", domain.MsgMustNotEmpty)
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.AuthorID == nil
}
