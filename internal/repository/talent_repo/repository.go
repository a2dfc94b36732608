package talent_repo

import (
	"casino_bot/internal/model"
	"casino_bot/internal/repository"
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	talentsTable = "talents"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTalentRepository(dbc *pgxpool.Pool) repository.TalentRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) List(ctx context.Context, userID int64) ([]model.Talent, error) {
	query, args, err := sq.Select("user_id", "name", "level").
		From(talentsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list talents query: %w", err)
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var talents []model.Talent
	for rows.Next() {
		var t model.Talent
		if err := rows.Scan(&t.UserID, &t.Name, &t.Level); err != nil {
			return nil, err
		}
		talents = append(talents, t)
	}

	return talents, rows.Err()
}

// GetLevel - уровень таланта, 0 если талант не прокачан.
func (r *repo) GetLevel(ctx context.Context, userID int64, name string) (int, error) {
	query, args, err := sq.Select("level").
		From(talentsTable).
		Where(sq.Eq{"user_id": userID, "name": name}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build get talent query: %w", err)
	}

	var level int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, query, args...).Scan(&level)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return level, nil
}

func (r *repo) SetLevel(ctx context.Context, userID int64, name string, level int) error {
	query, args, err := sq.Insert(talentsTable).
		Columns("user_id", "name", "level").
		Values(userID, name, level).
		Suffix("ON CONFLICT (user_id, name) DO UPDATE SET level = EXCLUDED.level").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set talent query: %w", err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	return err
}
