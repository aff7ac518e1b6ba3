package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

func (d *Database) GetSummary(ctx context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}

	query := "select summary from summaries where cache_key = ?"

	var summary string
	err := d.db.QueryRowContext(ctx, query, key).Scan(&summary)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to execute query: %w", err)
	}

	return summary, true, nil
}

func (d *Database) PutSummary(ctx context.Context, key string, summary string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("cache key is empty")
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return errors.New("summary is empty")
	}

	query := `insert into summaries (cache_key, summary) values (?, ?)
	on conflict (cache_key) do update set summary = excluded.summary`

	_, err := d.db.ExecContext(ctx, query, key, summary)

	return err
}
