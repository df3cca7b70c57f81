package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/replset-api/internal/domain/user"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// UserService is the CRUD service for users. Plaintext passwords are hashed
// with bcrypt before they reach the repository.
type UserService = CRUDService[*user.User, *user.Patch]

// Compile-time check that UserService implements ports.CRUDService.
var _ ports.CRUDService[*user.User, *user.Patch] = (*UserService)(nil)

// NewUserService creates the user CRUD service. cost is the bcrypt cost;
// values outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewUserService(repo ports.Repository[*user.User, *user.Patch], logger *slog.Logger, cost int) *UserService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash := func(plain string) (string, error) {
		b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
		if err != nil {
			return "", fmt.Errorf("hashing password: %w", err)
		}
		return string(b), nil
	}

	return NewCRUDService("user", repo, logger,
		WithBeforeCreate[*user.User, *user.Patch](func(_ context.Context, u *user.User) error {
			if u.Password == "" {
				return nil
			}
			h, err := hash(u.Password)
			if err != nil {
				return err
			}
			u.PasswordHash, u.Password = h, ""
			return nil
		}),
		WithBeforeUpdate[*user.User, *user.Patch](func(_ context.Context, p *user.Patch) error {
			if p.Password == nil {
				return nil
			}
			h, err := hash(*p.Password)
			if err != nil {
				return err
			}
			p.PasswordHash, p.Password = &h, nil
			return nil
		}),
	)
}
