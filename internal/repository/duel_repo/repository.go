package duel_repo

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
	duelsTable = "duels"
)

var duelColumns = []string{
	"chat_id", "initiator_id", "target_id", "bet", "game",
	"rounds", "current_round", "move",
	"initiator_score", "target_score",
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewDuelRepository(dbc *pgxpool.Pool) repository.DuelRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) Create(ctx context.Context, d *model.Duel) error {
	query, args, err := sq.Insert(duelsTable).
		Columns(duelColumns...).
		Values(d.ChatID, d.InitiatorID, d.TargetID, d.Bet, d.Game,
			d.Rounds, d.CurrentRound, d.Move,
			d.InitiatorScore, d.TargetScore).
		Suffix("ON CONFLICT (initiator_id, target_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create duel query: %w", err)
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

// GetByUser - поиск дуэли, где пользователь либо инициатор, либо цель.
func (r *repo) GetByUser(ctx context.Context, userID int64) (*model.Duel, error) {
	query, args, err := sq.Select(duelColumns...).
		From(duelsTable).
		Where(sq.Or{
			sq.Eq{"initiator_id": userID},
			sq.Eq{"target_id": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get duel query: %w", err)
	}

	var d model.Duel
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, query, args...).
		Scan(&d.ChatID, &d.InitiatorID, &d.TargetID, &d.Bet, &d.Game,
			&d.Rounds, &d.CurrentRound, &d.Move,
			&d.InitiatorScore, &d.TargetScore)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *repo) Update(ctx context.Context, d *model.Duel) error {
	query, args, err := sq.Update(duelsTable).
		Set("game", d.Game).
		Set("rounds", d.Rounds).
		Set("current_round", d.CurrentRound).
		Set("move", d.Move).
		Set("initiator_score", d.InitiatorScore).
		Set("target_score", d.TargetScore).
		Where(sq.Eq{"initiator_id": d.InitiatorID, "target_id": d.TargetID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update duel query: %w", err)
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

func (r *repo) Delete(ctx context.Context, initiatorID, targetID int64) error {
	query, args, err := sq.Delete(duelsTable).
		Where(sq.Eq{"initiator_id": initiatorID, "target_id": targetID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete duel query: %w", err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	return err
}
