package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ritankar/lakshya/ent"
	"github.com/ritankar/lakshya/ent/account"
)

// accountRepo implements AccountRepo using the ent client.
type accountRepo struct {
	client *ent.Client
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*Account, error) {
	a, err := r.client.Account.Query().
		Where(account.Email(normalizeEmail(email))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query account by email: %w", err)
	}
	return entAccountToAccount(a), nil
}

func (r *accountRepo) Create(ctx context.Context, email, displayName string) (*Account, error) {
	a, err := r.client.Account.Create().
		SetEmail(normalizeEmail(email)).
		SetDisplayName(displayName).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return entAccountToAccount(a), nil
}

func (r *accountRepo) MarkVerified(ctx context.Context, id string) error {
	err := r.client.Account.UpdateOneID(id).
		SetEmailVerified(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark account verified: %w", err)
	}
	return nil
}

func (r *accountRepo) Touch(ctx context.Context, id string) error {
	err := r.client.Account.UpdateOneID(id).
		SetLastSeenAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("touch account: %w", err)
	}
	return nil
}

// normalizeEmail treats addresses as case-insensitive identifiers.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func entAccountToAccount(a *ent.Account) *Account {
	return &Account{
		ID:            a.ID,
		Email:         a.Email,
		DisplayName:   a.DisplayName,
		EmailVerified: a.EmailVerified,
		PhotoURL:      a.PhotoURL,
		CreatedAt:     a.CreatedAt,
		LastSeenAt:    a.LastSeenAt,
	}
}
