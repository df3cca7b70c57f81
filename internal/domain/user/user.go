// Package user defines the User entity.
package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/domain"
)

// maxAge is an upper bound that catches obviously bogus ages.
const maxAge = 150

// User is a registered account. Password is the plaintext received from a
// client and is replaced by PasswordHash before the user is stored. Neither
// is ever rendered in responses.
type User struct {
	ID           string
	Name         string
	Email        string
	Age          int
	Password     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Patch holds a partial update. Nil fields are left unchanged.
type Patch struct {
	Name         *string
	Email        *string
	Age          *int
	Password     *string
	PasswordHash *string
}

// Validate checks business rules for the User entity.
// Returns a *domain.ValidationError with per-field details, or nil.
func (u *User) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(u.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if msg := checkEmail(u.Email); msg != "" {
		fields["email"] = msg
	}
	if msg := checkAge(u.Age); msg != "" {
		fields["age"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks that any provided fields have valid values.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		fields["name"] = domain.MsgMustNotEmpty
	}
	if p.Email != nil {
		if msg := checkEmail(*p.Email); msg != "" {
			fields["email"] = msg
		}
	}
	if p.Age != nil {
		if msg := checkAge(*p.Age); msg != "" {
			fields["age"] = msg
		}
	}
	if p.Password != nil && *p.Password == "" {
		fields["password"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Age == nil && p.Password == nil && p.PasswordHash == nil
}

func checkEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.MsgRequired
	}
	if !strings.Contains(email, "@") {
		return fmt.Sprintf("invalid: %q", email)
	}
	return ""
}

func checkAge(age int) string {
	if age < 0 || age > maxAge {
		return fmt.Sprintf("must be 0-%d, got %d", maxAge, age)
	}
	return ""
}
