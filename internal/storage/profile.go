package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/ironlog/internal/models"
)

// ProfileInfo is a profile row without its document.
type ProfileInfo struct {
	ID        string
	Name      string
	UpdatedAt time.Time
}

// Get returns the profile, or nil when no profile has that id.
func (s *Storage) Get(ctx context.Context, id string) (*models.Profile, error) {
	var p models.Profile
	var data string

	err := s.DB.QueryRowContext(ctx,
		"SELECT id, name, data FROM profiles WHERE id = ?",
		id,
	).Scan(&p.ID, &p.Name, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", id, err)
	}

	p.Data = []byte(data)
	return &p, nil
}

// Save overwrites the whole profile row.
func (s *Storage) Save(ctx context.Context, p *models.Profile) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("profile id is required")
	}
	data := string(p.Data)
	if data == "" {
		data = "{}"
	}

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO profiles (id, name, data, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				data = excluded.data,
				updated_at = excluded.updated_at`,
		p.ID,
		p.Name,
		data,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %s: %w", p.ID, err)
	}
	return nil
}

// List returns every profile, most recently updated first.
func (s *Storage) List(ctx context.Context) ([]ProfileInfo, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, name, updated_at FROM profiles ORDER BY updated_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var out []ProfileInfo
	for rows.Next() {
		var info ProfileInfo
		var updatedAt string
		if err := rows.Scan(&info.ID, &info.Name, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		info.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return out, nil
}

// Delete removes a profile. Deleting a missing profile is not an error.
func (s *Storage) Delete(ctx context.Context, id string) error {
	if _, err := s.DB.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	return nil
}
