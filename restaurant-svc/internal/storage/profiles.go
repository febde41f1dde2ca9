package storage

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

const profileColumns = `id, full_name, phone, avatar_url, is_onboarded`

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(&p.ID, &p.FullName, &p.Phone, &p.AvatarURL, &p.IsOnboarded); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	p, err := scanProfile(row)
	return p, notFound(err)
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id uuid.UUID, u *domain.ProfileUpdate) (*domain.Profile, error) {
	var set assignments
	if u.FullName != nil {
		set.set("full_name", *u.FullName)
	}
	if u.Phone != nil {
		set.set("phone", *u.Phone)
	}
	if u.AvatarURL != nil {
		set.set("avatar_url", *u.AvatarURL)
	}

	query, args := set.update("profiles", profileColumns, id)
	p, err := scanProfile(r.DB.QueryRowContext(ctx, query, args...))
	return p, notFound(err)
}

// MarkOnboarded creates the profile row if the identity provider has not done so yet.
func (r *PostgresRepository) MarkOnboarded(ctx context.Context, id uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO profiles (id, is_onboarded) VALUES ($1, TRUE)
		ON CONFLICT (id) DO UPDATE SET is_onboarded = TRUE`, id)
	return err
}
