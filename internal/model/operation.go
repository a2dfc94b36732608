package model

import (
	"time"

	"github.com/google/uuid"
)

// Причины операций для журнала.
const (
	OpBet            = "bet"
	OpWin            = "win"
	OpPush           = "push"
	OpCashback       = "cashback"
	OpTransferOut    = "transfer_out"
	OpTransferIn     = "transfer_in"
	OpDuelWin        = "duel_win"
	OpDuelLoss       = "duel_loss"
	OpTalentUpgrade  = "talent_upgrade"
	OpBusinessBuy    = "business_buy"
	OpPassiveIncome  = "passive_income"
	OpDepositOpen    = "deposit_open"
	OpDepositPayout  = "deposit_payout"
	OpWheelPrize     = "wheel_prize"
	OpStealTake      = "steal_take"
	OpStealLoss      = "steal_loss"
	OpStealFine      = "steal_fine"
	OpAdminAdjust    = "admin_adjust"
)

// Operation - запись журнала операций по балансу.
type Operation struct {
	ID        uuid.UUID
	UserID    int64
	Delta     int64
	Reason    string
	CreatedAt time.Time
}
