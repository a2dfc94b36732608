package mines_repo

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
	sessionsTable = "mines_sessions"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewMinesRepository(dbc *pgxpool.Pool) repository.MinesRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) Create(ctx context.Context, s *model.MinesSession) error {
	query, args, err := sq.Insert(sessionsTable).
		Columns("user_id", "bet", "mines", "field", "opened").
		Values(s.UserID, s.Bet, s.Mines, s.Field, s.Opened).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create session query: %w", err)
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrActiveSessionExists
	}
	return nil
}

func (r *repo) Get(ctx context.Context, userID int64) (*model.MinesSession, error) {
	query, args, err := sq.Select("user_id", "bet", "mines", "field", "opened").
		From(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get session query: %w", err)
	}

	var s model.MinesSession
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, query, args...).
		Scan(&s.UserID, &s.Bet, &s.Mines, &s.Field, &s.Opened)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Update переписывает только список открытых клеток: поле после
// раздачи не меняется.
func (r *repo) Update(ctx context.Context, s *model.MinesSession) error {
	query, args, err := sq.Update(sessionsTable).
		Set("opened", s.Opened).
		Where(sq.Eq{"user_id": s.UserID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update session query: %w", err)
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSessionNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, userID int64) error {
	query, args, err := sq.Delete(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	return err
}
