package roulette_repo

import (
	"casino_bot/internal/model"
	"casino_bot/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	roundsTable = "roulette_rounds"
	betsTable   = "roulette_bets"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRouletteRepository(dbc *pgxpool.Pool) repository.RouletteRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) GetRound(ctx context.Context, chatID int64) (*model.RouletteRound, error) {
	query, args, err := sq.Select("chat_id", "start_time", "deadline").
		From(roundsTable).
		Where(sq.Eq{"chat_id": chatID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get round query: %w", err)
	}

	var round model.RouletteRound
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, query, args...).
		Scan(&round.ChatID, &round.StartTime, &round.Deadline)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrRoundNotFound
	}
	if err != nil {
		return nil, err
	}

	return &round, nil
}

// CreateRound открывает раунд в чате. Если раунд уже идет, молча
// оставляет существующий: первый успевший задает время розыгрыша.
func (r *repo) CreateRound(ctx context.Context, round *model.RouletteRound) error {
	query, args, err := sq.Insert(roundsTable).
		Columns("chat_id", "start_time", "deadline").
		Values(round.ChatID, round.StartTime, round.Deadline).
		Suffix("ON CONFLICT (chat_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create round query: %w", err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	return err
}

func (r *repo) ListDueRounds(ctx context.Context, now time.Time) ([]model.RouletteRound, error) {
	query, args, err := sq.Select("chat_id", "start_time", "deadline").
		From(roundsTable).
		Where(sq.LtOrEq{"start_time": now}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due rounds query: %w", err)
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []model.RouletteRound
	for rows.Next() {
		var round model.RouletteRound
		if err := rows.Scan(&round.ChatID, &round.StartTime, &round.Deadline); err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}

	return rounds, rows.Err()
}

func (r *repo) DeleteRound(ctx context.Context, chatID int64) error {
	query, args, err := sq.Delete(roundsTable).
		Where(sq.Eq{"chat_id": chatID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete round query: %w", err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	return err
}

// AddBet - ставка игрока. Повторная ставка на ту же категорию
// суммируется с предыдущей.
func (r *repo) AddBet(ctx context.Context, bet *model.RouletteBet) (int64, error) {
	query, args, err := sq.Insert(betsTable).
		Columns("chat_id", "user_id", "category", "amount").
		Values(bet.ChatID, bet.UserID, bet.Category, bet.Amount).
		Suffix("ON CONFLICT (chat_id, user_id, category) DO UPDATE SET amount = " +
			betsTable + ".amount + EXCLUDED.amount RETURNING amount").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build add bet query: %w", err)
	}

	var total int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *repo) ListBets(ctx context.Context, chatID int64) ([]model.RouletteBet, error) {
	query, args, err := sq.Select("chat_id", "user_id", "category", "amount").
		From(betsTable).
		Where(sq.Eq{"chat_id": chatID}).
		OrderBy("user_id", "category").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bets query: %w", err)
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bets []model.RouletteBet
	for rows.Next() {
		var bet model.RouletteBet
		if err := rows.Scan(&bet.ChatID, &bet.UserID, &bet.Category, &bet.Amount); err != nil {
			return nil, err
		}
		bets = append(bets, bet)
	}

	return bets, rows.Err()
}

func (r *repo) DeleteBets(ctx context.Context, chatID int64) error {
	query, args, err := sq.Delete(betsTable).
		Where(sq.Eq{"chat_id": chatID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete bets query: %w", err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	return err
}
