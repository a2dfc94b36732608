package duel

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
	balances map[int64]int64
}

func (f *fakeUsers) Create(context.Context, int64, int64) error { return nil }

func (f *fakeUsers) Get(_ context.Context, id int64) (*model.User, error) {
	return &model.User{ID: id, Balance: f.balances[id], Level: 1}, nil
}

func (f *fakeUsers) GetForUpdate(ctx context.Context, id int64) (*model.User, error) {
	return f.Get(ctx, id)
}

func (f *fakeUsers) SetBalance(_ context.Context, id int64, amount int64) error {
	f.balances[id] = amount
	return nil
}

func (f *fakeUsers) AddBalance(_ context.Context, id int64, delta int64) error {
	if f.balances[id]+delta < 0 {
		return model.ErrInsufficientFunds
	}
	f.balances[id] += delta
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
}

func (f *fakeLedger) GetBalance(_ context.Context, id int64) (int64, error) {
	return f.users.balances[id], nil
}

func (f *fakeLedger) SetBalance(_ context.Context, id int64, amount int64) error {
	f.users.balances[id] = amount
	return nil
}

func (f *fakeLedger) AddBalance(ctx context.Context, id int64, delta int64, _ string) (int64, error) {
	if err := f.users.AddBalance(ctx, id, delta); err != nil {
		return 0, err
	}
	return f.users.balances[id], nil
}

func (f *fakeLedger) GetExperience(context.Context, int64) (float64, int, error) {
	return 0, 1, nil
}

func (f *fakeLedger) AddExperience(_ context.Context, _ int64, delta float64) (*model.ExpGain, error) {
	return &model.ExpGain{Gained: delta, Level: 1}, nil
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

type fakeDuels struct {
	duels map[[2]int64]*model.Duel
}

func newFakeDuels() *fakeDuels {
	return &fakeDuels{duels: map[[2]int64]*model.Duel{}}
}

func (f *fakeDuels) Create(_ context.Context, d *model.Duel) error {
	key := [2]int64{d.InitiatorID, d.TargetID}
	if _, ok := f.duels[key]; ok {
		return model.ErrActiveSessionExists
	}
	f.duels[key] = d
	return nil
}

func (f *fakeDuels) GetByUser(_ context.Context, userID int64) (*model.Duel, error) {
	for _, d := range f.duels {
		if d.InitiatorID == userID || d.TargetID == userID {
			return d, nil
		}
	}
	return nil, model.ErrSessionNotFound
}

func (f *fakeDuels) Update(_ context.Context, d *model.Duel) error {
	f.duels[[2]int64{d.InitiatorID, d.TargetID}] = d
	return nil
}

func (f *fakeDuels) Delete(_ context.Context, initiatorID, targetID int64) error {
	delete(f.duels, [2]int64{initiatorID, targetID})
	return nil
}

func testConfig() *config.GameConfig {
	return &config.GameConfig{
		MinBet: 50,
		Duel: config.DuelRules{
			MinRounds:     1,
			MaxRounds:     10,
			DefaultRounds: 3,
			Games:         map[string]int{"dice": 6, "basketball": 5},
		},
	}
}

type fixture struct {
	serv  *serv
	users *fakeUsers
	duels *fakeDuels
}

func newFixture(balances map[int64]int64) *fixture {
	users := &fakeUsers{balances: balances}
	duels := newFakeDuels()
	s := NewDuelService(testConfig(), duels, users, &fakeLedger{users: users}, txStub{}).(*serv)
	return &fixture{serv: s, users: users, duels: duels}
}

func TestChallenge(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500, 2: 500})

	d, err := f.serv.Challenge(context.Background(), 10, 1, 2, 100)
	if err != nil {
		t.Fatalf("Challenge: %v", err)
	}

	if d.Rounds != 3 {
		t.Errorf("rounds = %d, want default 3", d.Rounds)
	}
	if d.Game != "" {
		t.Errorf("game = %q, want unset", d.Game)
	}
	// Ставка не списывается до завершения дуэли.
	if f.users.balances[1] != 500 || f.users.balances[2] != 500 {
		t.Errorf("balances changed: %v", f.users.balances)
	}
}

func TestChallengeSelf(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500})

	if _, err := f.serv.Challenge(context.Background(), 10, 1, 1, 100); err == nil {
		t.Fatal("expected an error for a self-duel")
	}
}

func TestChallengePoorTarget(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500, 2: 10})

	_, err := f.serv.Challenge(context.Background(), 10, 1, 2, 100)
	if !errors.Is(err, model.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
}

func TestChallengeWhileInDuel(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500, 2: 500, 3: 500})

	if _, err := f.serv.Challenge(context.Background(), 10, 1, 2, 100); err != nil {
		t.Fatalf("Challenge: %v", err)
	}

	_, err := f.serv.Challenge(context.Background(), 10, 3, 2, 100)
	if !errors.Is(err, model.ErrActiveSessionExists) {
		t.Fatalf("err = %v, want ErrActiveSessionExists", err)
	}
}

func TestChooseGameOnlyInitiator(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500, 2: 500})

	if _, err := f.serv.Challenge(context.Background(), 10, 1, 2, 100); err != nil {
		t.Fatalf("Challenge: %v", err)
	}

	if _, err := f.serv.ChooseGame(context.Background(), 2, "dice"); !errors.Is(err, model.ErrNotYourTurn) {
		t.Fatalf("target choosing game: err = %v, want ErrNotYourTurn", err)
	}

	d, err := f.serv.ChooseGame(context.Background(), 1, "dice")
	if err != nil {
		t.Fatalf("ChooseGame: %v", err)
	}
	if d.Game != "dice" {
		t.Errorf("game = %q, want dice", d.Game)
	}
}

func TestTurnRequiresGame(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500, 2: 500})

	if _, err := f.serv.Challenge(context.Background(), 10, 1, 2, 100); err != nil {
		t.Fatalf("Challenge: %v", err)
	}

	if _, err := f.serv.Turn(context.Background(), 2, 4); err == nil {
		t.Fatal("expected an error before the game is chosen")
	}
}

// Полная дуэль на два раунда: вызванный бросает первым, инициатор
// закрывает раунд, больший суммарный счет забирает ставку.
func TestFullDuelFlow(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500, 2: 500})
	ctx := context.Background()

	if _, err := f.serv.Challenge(ctx, 10, 1, 2, 100); err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	if _, err := f.serv.ChooseGame(ctx, 1, "dice"); err != nil {
		t.Fatalf("ChooseGame: %v", err)
	}
	if _, err := f.serv.ChooseRounds(ctx, 1, 2); err != nil {
		t.Fatalf("ChooseRounds: %v", err)
	}

	// Инициатор не может бросать первым.
	if _, err := f.serv.Turn(ctx, 1, 5); !errors.Is(err, model.ErrNotYourTurn) {
		t.Fatalf("err = %v, want ErrNotYourTurn", err)
	}

	res, err := f.serv.Turn(ctx, 2, 3)
	if err != nil {
		t.Fatalf("target turn: %v", err)
	}
	if res.RoundDone || res.Finished {
		t.Errorf("round should wait for the initiator: %+v", res)
	}

	// Раунд 1: 3 против 5, раунд 2: 2 против 6. Счет 5 на 11.
	if _, err := f.serv.Turn(ctx, 1, 5); err != nil {
		t.Fatalf("initiator turn: %v", err)
	}
	if _, err := f.serv.Turn(ctx, 2, 2); err != nil {
		t.Fatalf("target turn: %v", err)
	}
	res, err = f.serv.Turn(ctx, 1, 6)
	if err != nil {
		t.Fatalf("initiator turn: %v", err)
	}
	if !res.Finished {
		t.Fatal("duel should be finished after the last round")
	}
	if res.Duel.InitiatorScore != 11 || res.Duel.TargetScore != 5 {
		t.Errorf("scores = %d:%d, want 11:5",
			res.Duel.InitiatorScore, res.Duel.TargetScore)
	}
	if res.WinnerID != 1 || res.LoserID != 2 {
		t.Errorf("winner = %d, loser = %d", res.WinnerID, res.LoserID)
	}

	if f.users.balances[1] != 600 {
		t.Errorf("winner balance = %d, want 600", f.users.balances[1])
	}
	if f.users.balances[2] != 400 {
		t.Errorf("loser balance = %d, want 400", f.users.balances[2])
	}
	if len(f.duels.duels) != 0 {
		t.Error("duel should be deleted")
	}
}

// Значение броска прибавляется к счету бросавшего, а не превращается
// в победное очко раунда.
func TestTurnValueAddedToScore(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500, 2: 500})
	ctx := context.Background()

	if _, err := f.serv.Challenge(ctx, 10, 1, 2, 100); err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	if _, err := f.serv.ChooseGame(ctx, 1, "dice"); err != nil {
		t.Fatalf("ChooseGame: %v", err)
	}
	if _, err := f.serv.ChooseRounds(ctx, 1, 2); err != nil {
		t.Fatalf("ChooseRounds: %v", err)
	}

	res, err := f.serv.Turn(ctx, 2, 6)
	if err != nil {
		t.Fatalf("target turn: %v", err)
	}
	if res.Duel.TargetScore != 6 {
		t.Errorf("target score = %d, want 6", res.Duel.TargetScore)
	}

	res, err = f.serv.Turn(ctx, 1, 1)
	if err != nil {
		t.Fatalf("initiator turn: %v", err)
	}
	if res.Duel.InitiatorScore != 1 || res.Duel.TargetScore != 6 {
		t.Errorf("scores = %d:%d, want 1:6",
			res.Duel.InitiatorScore, res.Duel.TargetScore)
	}
}

func TestDuelDraw(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500, 2: 500})
	ctx := context.Background()

	if _, err := f.serv.Challenge(ctx, 10, 1, 2, 100); err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	if _, err := f.serv.ChooseGame(ctx, 1, "dice"); err != nil {
		t.Fatalf("ChooseGame: %v", err)
	}
	if _, err := f.serv.ChooseRounds(ctx, 1, 1); err != nil {
		t.Fatalf("ChooseRounds: %v", err)
	}

	if _, err := f.serv.Turn(ctx, 2, 4); err != nil {
		t.Fatalf("target turn: %v", err)
	}
	res, err := f.serv.Turn(ctx, 1, 4)
	if err != nil {
		t.Fatalf("initiator turn: %v", err)
	}

	if !res.Draw {
		t.Fatal("equal totals must draw")
	}
	if f.users.balances[1] != 500 || f.users.balances[2] != 500 {
		t.Errorf("draw must not move money: %v", f.users.balances)
	}
}

func TestDecline(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500, 2: 500})
	ctx := context.Background()

	if _, err := f.serv.Challenge(ctx, 10, 1, 2, 100); err != nil {
		t.Fatalf("Challenge: %v", err)
	}

	// Отказаться может только вызванный.
	if err := f.serv.Decline(ctx, 1); !errors.Is(err, model.ErrNotYourTurn) {
		t.Fatalf("initiator declining: err = %v, want ErrNotYourTurn", err)
	}

	if err := f.serv.Decline(ctx, 2); err != nil {
		t.Fatalf("Decline: %v", err)
	}
	if len(f.duels.duels) != 0 {
		t.Error("duel should be deleted after decline")
	}
}

func TestDeclineAfterFirstThrow(t *testing.T) {
	f := newFixture(map[int64]int64{1: 500, 2: 500})
	ctx := context.Background()

	if _, err := f.serv.Challenge(ctx, 10, 1, 2, 100); err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	if _, err := f.serv.ChooseGame(ctx, 1, "dice"); err != nil {
		t.Fatalf("ChooseGame: %v", err)
	}
	if _, err := f.serv.ChooseRounds(ctx, 1, 2); err != nil {
		t.Fatalf("ChooseRounds: %v", err)
	}
	if _, err := f.serv.Turn(ctx, 2, 3); err != nil {
		t.Fatalf("target turn: %v", err)
	}

	if err := f.serv.Decline(ctx, 2); err == nil {
		t.Fatal("expected an error declining after the first throw")
	}
	if len(f.duels.duels) != 1 {
		t.Error("duel must survive a late decline")
	}
}
