package mines

import (
	"context"
	"errors"
	"testing"
	"time"

	"casino_bot/internal/config"
	"casino_bot/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type txStub struct{}

func (txStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (txStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeUsers struct {
	balance int64
}

func (f *fakeUsers) Create(context.Context, int64, int64) error { return nil }

func (f *fakeUsers) Get(_ context.Context, id int64) (*model.User, error) {
	return &model.User{ID: id, Balance: f.balance, Level: 1}, nil
}

func (f *fakeUsers) GetForUpdate(ctx context.Context, id int64) (*model.User, error) {
	return f.Get(ctx, id)
}

func (f *fakeUsers) SetBalance(_ context.Context, _ int64, amount int64) error {
	f.balance = amount
	return nil
}

func (f *fakeUsers) AddBalance(_ context.Context, _ int64, delta int64) error {
	if f.balance+delta < 0 {
		return model.ErrInsufficientFunds
	}
	f.balance += delta
	return nil
}

func (f *fakeUsers) SetExperience(context.Context, int64, float64, int) error { return nil }

func (f *fakeUsers) SetDeposit(context.Context, int64, int64, *time.Time) error { return nil }

func (f *fakeUsers) ListMatureDeposits(context.Context, time.Time) ([]model.User, error) {
	return nil, nil
}

func (f *fakeUsers) StampWheel(context.Context, int64, time.Time) error { return nil }
func (f *fakeUsers) StampCase(context.Context, int64, time.Time) error  { return nil }
func (f *fakeUsers) StampSteal(context.Context, int64, time.Time) error { return nil }

type fakeLedger struct {
	users *fakeUsers
	exp   float64
}

func (f *fakeLedger) GetBalance(context.Context, int64) (int64, error) {
	return f.users.balance, nil
}

func (f *fakeLedger) SetBalance(_ context.Context, _ int64, amount int64) error {
	f.users.balance = amount
	return nil
}

func (f *fakeLedger) AddBalance(ctx context.Context, id int64, delta int64, _ string) (int64, error) {
	if err := f.users.AddBalance(ctx, id, delta); err != nil {
		return 0, err
	}
	return f.users.balance, nil
}

func (f *fakeLedger) GetExperience(context.Context, int64) (float64, int, error) {
	return f.exp, 1, nil
}

func (f *fakeLedger) AddExperience(_ context.Context, _ int64, delta float64) (*model.ExpGain, error) {
	f.exp += delta
	return &model.ExpGain{Gained: delta, Experience: f.exp, Level: 1}, nil
}

func (f *fakeLedger) Transfer(context.Context, int64, int64, int64) error { return nil }

func (f *fakeLedger) OpenDeposit(context.Context, int64, int64) (*model.User, error) {
	return nil, nil
}

func (f *fakeLedger) ClaimDeposit(context.Context, int64) (int64, error) { return 0, nil }

func (f *fakeLedger) SweepDeposits(context.Context, time.Time) (int, error) { return 0, nil }

func (f *fakeLedger) Profile(context.Context, int64) (*model.Profile, error) { return nil, nil }

func (f *fakeLedger) History(context.Context, int64, uint64) ([]model.Operation, error) {
	return nil, nil
}

type fakeBonus struct {
	lucky bool
}

func (f *fakeBonus) TalentBonus(context.Context, int64, string) (float64, error) { return 0, nil }

func (f *fakeBonus) BusinessBonus(context.Context, int64, string) (float64, error) {
	return 0, nil
}

func (f *fakeBonus) ExpMultiplier(context.Context, int64, int64) (float64, error) { return 1, nil }

func (f *fakeBonus) LuckTriggers(context.Context, int64) (bool, error) { return f.lucky, nil }

type fakeSessions struct {
	sessions map[int64]*model.MinesSession
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[int64]*model.MinesSession{}}
}

func (f *fakeSessions) Create(_ context.Context, s *model.MinesSession) error {
	if _, ok := f.sessions[s.UserID]; ok {
		return model.ErrActiveSessionExists
	}
	f.sessions[s.UserID] = s
	return nil
}

func (f *fakeSessions) Get(_ context.Context, userID int64) (*model.MinesSession, error) {
	s, ok := f.sessions[userID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessions) Update(_ context.Context, s *model.MinesSession) error {
	f.sessions[s.UserID] = s
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, userID int64) error {
	delete(f.sessions, userID)
	return nil
}

func testConfig() *config.GameConfig {
	return &config.GameConfig{
		MinBet: 50,
		Mines: config.MinesRules{
			MinMines:  2,
			MaxMines:  24,
			ExpFactor: 0.5,
			ExpWin:    1,
			ExpLoss:   0.3,
		},
	}
}

type fixture struct {
	serv     *serv
	users    *fakeUsers
	ledger   *fakeLedger
	bonus    *fakeBonus
	sessions *fakeSessions
}

func newFixture(balance int64) *fixture {
	users := &fakeUsers{balance: balance}
	ledger := &fakeLedger{users: users}
	bonus := &fakeBonus{}
	sessions := newFakeSessions()
	s := NewMinesService(testConfig(), sessions, users, ledger, bonus, txStub{}).(*serv)
	return &fixture{serv: s, users: users, ledger: ledger, bonus: bonus, sessions: sessions}
}

// testSession - поле с минами в последних клетках, ставка 150.
func testSession(mines int, opened []int) *model.MinesSession {
	field := make([]int, model.MinesFieldSize)
	for i := range field {
		if i < model.MinesFieldSize-mines {
			field[i] = 1
		}
	}
	return &model.MinesSession{
		UserID: 1,
		Bet:    150,
		Mines:  mines,
		Field:  field,
		Opened: opened,
	}
}

func TestStartDebitsBet(t *testing.T) {
	f := newFixture(1000)

	res, err := f.serv.Start(context.Background(), 1, 100, 3)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if res.Outcome != model.MinesPlaying {
		t.Fatalf("outcome = %q, want playing", res.Outcome)
	}
	if f.users.balance != 900 {
		t.Errorf("balance = %d, want 900", f.users.balance)
	}
	if _, ok := f.sessions.sessions[1]; !ok {
		t.Error("expected an open session")
	}
}

// Забрать выплату до первой открытой клетки нельзя: это была бы
// гарантированная прибыль с каждой ставки.
func TestCashoutWithoutOpenedCells(t *testing.T) {
	f := newFixture(1000)
	f.sessions.sessions[1] = testSession(3, []int{})

	if _, err := f.serv.Cashout(context.Background(), 1); err == nil {
		t.Fatal("expected an error cashing out with no opened cells")
	}
	if f.users.balance != 1000 {
		t.Errorf("balance = %d, want untouched 1000", f.users.balance)
	}
	if _, ok := f.sessions.sessions[1]; !ok {
		t.Error("session must survive a rejected cashout")
	}
}

// Выплата усекается до целого, а не округляется: 150 * 1.37 = 205.
func TestCashoutTruncatesPayout(t *testing.T) {
	f := newFixture(1000)
	f.sessions.sessions[1] = testSession(3, []int{0, 1})

	res, err := f.serv.Cashout(context.Background(), 1)
	if err != nil {
		t.Fatalf("Cashout: %v", err)
	}

	if res.Outcome != model.MinesCashout {
		t.Fatalf("outcome = %q, want cashout", res.Outcome)
	}
	if res.Payout != 205 {
		t.Errorf("payout = %d, want 205", res.Payout)
	}
	if f.users.balance != 1205 {
		t.Errorf("balance = %d, want 1205", f.users.balance)
	}
	if _, ok := f.sessions.sessions[1]; ok {
		t.Error("session should be settled")
	}
}

// Повторное открытие клетки ничего не меняет и не ломает партию.
func TestRevealOpenedCellNoOp(t *testing.T) {
	f := newFixture(1000)
	f.sessions.sessions[1] = testSession(3, []int{0})

	res, err := f.serv.Reveal(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}

	if res.Outcome != model.MinesPlaying {
		t.Fatalf("outcome = %q, want playing", res.Outcome)
	}
	if len(res.Opened) != 1 {
		t.Errorf("opened = %v, want a single cell", res.Opened)
	}
	if f.users.balance != 1000 {
		t.Errorf("balance = %d, want untouched 1000", f.users.balance)
	}
	if _, ok := f.sessions.sessions[1]; !ok {
		t.Error("session must stay open")
	}
}

func TestRevealSafeCell(t *testing.T) {
	f := newFixture(1000)
	f.sessions.sessions[1] = testSession(3, []int{})

	res, err := f.serv.Reveal(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}

	if res.Outcome != model.MinesPlaying {
		t.Fatalf("outcome = %q, want playing", res.Outcome)
	}
	if res.Multiplier != 1.2 {
		t.Errorf("multiplier = %v, want 1.2", res.Multiplier)
	}
	if len(res.Opened) != 1 {
		t.Errorf("opened = %v, want a single cell", res.Opened)
	}
}

func TestRevealMineLosesWithCashback(t *testing.T) {
	f := newFixture(1000)
	f.bonus.lucky = true
	f.sessions.sessions[1] = testSession(3, []int{0})

	res, err := f.serv.Reveal(context.Background(), 1, model.MinesFieldSize-1)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}

	if res.Outcome != model.MinesLoss {
		t.Fatalf("outcome = %q, want loss", res.Outcome)
	}
	if res.Cashback != 30 {
		t.Errorf("cashback = %d, want 30", res.Cashback)
	}
	if f.users.balance != 1030 {
		t.Errorf("balance = %d, want 1030", f.users.balance)
	}
	if _, ok := f.sessions.sessions[1]; ok {
		t.Error("session should be settled")
	}
}

func TestCashoutWithoutSession(t *testing.T) {
	f := newFixture(1000)

	_, err := f.serv.Cashout(context.Background(), 1)
	if !errors.Is(err, model.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}
