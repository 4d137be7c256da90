package persistence

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/inkwell/internal/domain/history"
	"github.com/khoahotran/inkwell/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresHistoryRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresHistoryRepo(db *pgxpool.Pool, log logger.Logger) history.Repository {
	return &postgresHistoryRepo{db: db, logger: log}
}

func (r *postgresHistoryRepo) Append(ctx context.Context, entry *history.Entry) error {
	sql, args, err := psql.Insert("history_entries").
		Columns("id", "kind", "user_text", "ai_text", "model", "created_at").
		Values(entry.ID, string(entry.Kind), entry.UserText, entry.AIText, entry.Model, entry.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build history insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (r *postgresHistoryRepo) List(ctx context.Context, limit int) ([]*history.Entry, error) {
	// Fetch the newest entries, then flip them back to oldest-first so the
	// cap drops old entries instead of hiding new ones.
	sql, args, err := psql.Select("id", "kind", "user_text", "ai_text", "model", "created_at").
		From("history_entries").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build history query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := make([]*history.Entry, 0)
	for rows.Next() {
		entry := &history.Entry{}
		var kind string
		if err := rows.Scan(&entry.ID, &kind, &entry.UserText, &entry.AIText, &entry.Model, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Kind = history.Kind(kind)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history entries: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (r *postgresHistoryRepo) Clear(ctx context.Context) error {
	sql, args, err := psql.Delete("history_entries").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build history delete: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
