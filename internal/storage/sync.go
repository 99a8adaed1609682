package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
)

type dumpFile struct {
	Profiles []dumpRow `toml:"profile"`
}

type dumpRow struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	UpdatedAt string `toml:"updated_at"`
	Data      string `toml:"data"`
}

// Export writes every profile row to w as TOML, one [[profile]] table per row.
func (s *Storage) Export(ctx context.Context, w io.Writer) (int, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT id, name, data, updated_at FROM profiles ORDER BY id")
	if err != nil {
		return 0, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	var dump dumpFile
	for rows.Next() {
		var r dumpRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Data, &r.UpdatedAt); err != nil {
			return 0, fmt.Errorf("scanning profile row: %w", err)
		}
		dump.Profiles = append(dump.Profiles, r)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterating profiles: %w", err)
	}

	if err := toml.NewEncoder(w).Encode(dump); err != nil {
		return 0, fmt.Errorf("encoding TOML: %w", err)
	}
	return len(dump.Profiles), nil
}

// Import reads a dump produced by Export and upserts every profile in a
// single transaction. Profiles absent from the dump are left alone.
func (s *Storage) Import(ctx context.Context, r io.Reader) (int, error) {
	var dump dumpFile
	if _, err := toml.NewDecoder(r).Decode(&dump); err != nil {
		return 0, fmt.Errorf("decoding TOML: %w", err)
	}
	for _, p := range dump.Profiles {
		if p.ID == "" {
			return 0, fmt.Errorf("profile without id in dump")
		}
		if !json.Valid([]byte(p.Data)) {
			return 0, fmt.Errorf("profile %s: data is not valid JSON", p.ID)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	for _, p := range dump.Profiles {
		updatedAt := p.UpdatedAt
		if updatedAt == "" {
			updatedAt = time.Now().UTC().Format(time.RFC3339)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO profiles (id, name, data, updated_at)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					name = excluded.name,
					data = excluded.data,
					updated_at = excluded.updated_at`,
			p.ID, p.Name, p.Data, updatedAt,
		)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("importing profile %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return len(dump.Profiles), nil
}
