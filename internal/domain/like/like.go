// Package like defines the Like entity, a user's endorsement of a post.
package like

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/domain"
)

// Like links a user to a post.
type Like struct {
	ID        string
	UserID    string
	PostID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch holds a partial update. Nil fields are left unchanged.
type Patch struct {
	UserID *string
	PostID *string
}

// Validate checks that both references are present.
func (l *Like) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(l.UserID) == "" {
		fields["user"] = domain.MsgRequired
	}
	if strings.TrimSpace(l.PostID) == "" {
		fields["post"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks that any provided references are non-empty.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.UserID != nil && strings.TrimSpace(*p.UserID) == "" {
		fields["user"] = domain.MsgMustNotEmpty
	}
	if p.PostID != nil && strings.TrimSpace(*p.PostID) == "" {
		fields["post"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.UserID == nil && p.PostID == nil
}
