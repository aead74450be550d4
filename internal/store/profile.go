package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ritankar/lakshya/ent"
	"github.com/ritankar/lakshya/ent/profiledoc"
	"github.com/ritankar/lakshya/internal/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, accountID string) (*ProfileRecord, error) {
	doc, err := r.client.ProfileDoc.Query().
		Where(profiledoc.AccountID(accountID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile doc: %w", err)
	}

	p, err := profileFromMap(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("decode profile doc: %w", err)
	}

	return &ProfileRecord{
		AccountID: doc.AccountID,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
		Profile:   p,
	}, nil
}

func (r *profileRepo) Put(ctx context.Context, accountID string, p profile.Profile) error {
	dataMap, err := profileToMap(p)
	if err != nil {
		return fmt.Errorf("marshal profile doc: %w", err)
	}

	existing, err := r.client.ProfileDoc.Query().
		Where(profiledoc.AccountID(accountID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query profile doc: %w", err)
		}
		_, err = r.client.ProfileDoc.Create().
			SetAccountID(accountID).
			SetVersion(1).
			SetData(dataMap).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile doc: %w", err)
		}
		return nil
	}

	err = r.client.ProfileDoc.UpdateOne(existing).
		SetVersion(existing.Version + 1).
		SetData(dataMap).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update profile doc: %w", err)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, accountID string) error {
	_, err := r.client.ProfileDoc.Delete().
		Where(profiledoc.AccountID(accountID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile doc: %w", err)
	}
	return nil
}

// profileToMap converts a Profile to map[string]any for ent JSON storage.
func profileToMap(p profile.Profile) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// profileFromMap converts stored JSON back into a Profile.
func profileFromMap(m map[string]any) (profile.Profile, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return profile.Profile{}, err
	}
	var p profile.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}
