package user_repo

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
	usersTable = "users"
)

var userColumns = []string{
	"id", "balance", "experience", "level",
	"bank_balance", "deposit_until",
	"wheel_used_at", "case_used_at", "steal_used_at",
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - создание пользователя со стартовым балансом.
// Повторный вызов для существующего ID ничего не меняет.
func (r *repo) Create(ctx context.Context, id int64, startBalance int64) error {
	query, args, err := sq.Insert(usersTable).
		Columns("id", "balance").
		Values(id, startBalance).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create user query: %w", err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	return err
}

func (r *repo) Get(ctx context.Context, id int64) (*model.User, error) {
	return r.get(ctx, id, false)
}

func (r *repo) GetForUpdate(ctx context.Context, id int64) (*model.User, error) {
	return r.get(ctx, id, true)
}

func (r *repo) get(ctx context.Context, id int64, forUpdate bool) (*model.User, error) {
	builder := sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	var u model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Balance, &u.Experience, &u.Level,
			&u.BankBalance, &u.DepositUntil,
			&u.WheelUsedAt, &u.CaseUsedAt, &u.StealUsedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// SetBalance - абсолютная запись баланса (админские операции).
func (r *repo) SetBalance(ctx context.Context, id int64, amount int64) error {
	query, args, err := sq.Update(usersTable).
		Set("balance", amount).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set balance query: %w", err)
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// AddBalance - относительное изменение баланса. Уход ниже нуля
// отсекается условием в самом запросе.
func (r *repo) AddBalance(ctx context.Context, id int64, delta int64) error {
	query, args, err := sq.Update(usersTable).
		Set("balance", sq.Expr("balance + ?", delta)).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("balance + ? >= 0", delta)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build add balance query: %w", err)
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if delta < 0 {
			return model.ErrInsufficientFunds
		}
		return model.ErrUserNotFound
	}
	return nil
}

func (r *repo) SetExperience(ctx context.Context, id int64, exp float64, level int) error {
	query, args, err := sq.Update(usersTable).
		Set("experience", exp).
		Set("level", level).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set experience query: %w", err)
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *repo) SetDeposit(ctx context.Context, id int64, bankBalance int64, until *time.Time) error {
	query, args, err := sq.Update(usersTable).
		Set("bank_balance", bankBalance).
		Set("deposit_until", until).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set deposit query: %w", err)
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// ListMatureDeposits - пользователи с созревшими вкладами.
func (r *repo) ListMatureDeposits(ctx context.Context, now time.Time) ([]model.User, error) {
	query, args, err := sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Gt{"bank_balance": 0}).
		Where(sq.LtOrEq{"deposit_until": now}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list deposits query: %w", err)
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		err = rows.Scan(&u.ID, &u.Balance, &u.Experience, &u.Level,
			&u.BankBalance, &u.DepositUntil,
			&u.WheelUsedAt, &u.CaseUsedAt, &u.StealUsedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *repo) StampWheel(ctx context.Context, id int64, at time.Time) error {
	return r.stamp(ctx, id, "wheel_used_at", at)
}

func (r *repo) StampCase(ctx context.Context, id int64, at time.Time) error {
	return r.stamp(ctx, id, "case_used_at", at)
}

func (r *repo) StampSteal(ctx context.Context, id int64, at time.Time) error {
	return r.stamp(ctx, id, "steal_used_at", at)
}

func (r *repo) stamp(ctx context.Context, id int64, column string, at time.Time) error {
	query, args, err := sq.Update(usersTable).
		Set(column, at).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build stamp query: %w", err)
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
