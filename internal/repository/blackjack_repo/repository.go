package blackjack_repo

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
	sessionsTable = "blackjack_sessions"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBlackjackRepository(dbc *pgxpool.Pool) repository.BlackjackRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - новая партия. Уникальность по user_id гарантирует
// не больше одной активной партии на игрока.
func (r *repo) Create(ctx context.Context, s *model.BlackjackSession) error {
	query, args, err := sq.Insert(sessionsTable).
		Columns("user_id", "bet", "player_cards", "dealer_cards").
		Values(s.UserID, s.Bet, s.PlayerCards, s.DealerCards).
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

func (r *repo) Get(ctx context.Context, userID int64) (*model.BlackjackSession, error) {
	query, args, err := sq.Select("user_id", "bet", "player_cards", "dealer_cards").
		From(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get session query: %w", err)
	}

	var s model.BlackjackSession
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, query, args...).
		Scan(&s.UserID, &s.Bet, &s.PlayerCards, &s.DealerCards)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repo) Update(ctx context.Context, s *model.BlackjackSession) error {
	query, args, err := sq.Update(sessionsTable).
		Set("player_cards", s.PlayerCards).
		Set("dealer_cards", s.DealerCards).
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
