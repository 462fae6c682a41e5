package atmxgo

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Operation is the kind of a successful confirmation.
type Operation int

const (
	OpNone Operation = iota
	OpCardBalance
	OpDepositBalance
	OpAllBalances
	OpCardWithdrawal
	OpDepositWithdrawal
	OpCardReplenishment
	OpDepositReplenishment
	OpPhoneFromCash
	OpPhoneFromCard
	OpPhoneFromDeposit
	OpPINChange
)

var opLabels = map[Operation]string{
	OpCardBalance:          "card balance inquiry",
	OpDepositBalance:       "deposit balance inquiry",
	OpAllBalances:          "available balances inquiry",
	OpCardWithdrawal:       "cash withdrawal from card",
	OpDepositWithdrawal:    "cash withdrawal from deposit",
	OpCardReplenishment:    "card top-up with cash",
	OpDepositReplenishment: "deposit top-up with cash",
	OpPhoneFromCash:        "phone top-up with cash",
	OpPhoneFromCard:        "phone top-up from card balance",
	OpPhoneFromDeposit:     "phone top-up from deposit balance",
	OpPINChange:            "card PIN change",
}

func (o Operation) Label() string {
	if l, ok := opLabels[o]; ok {
		return l
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

func (o Operation) String() string {
	return o.Label()
}

// Balances is a read-only view of the three bank-side balances.
type Balances struct {
	Card    decimal.Decimal
	Deposit decimal.Decimal
	Phone   decimal.Decimal
}

// Outcome is what the terminal hands to the presenter. Exactly one of Op and
// Err is set. ID is only set on the copy a Journal records; the outcome
// returned by Submit always carries a zero ID.
type Outcome struct {
	ID       snowflake.ID
	Op       Operation
	Holder   string
	Amount   decimal.Decimal
	Balances Balances
	PIN      int
	Err      error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

func failure(err error) *Outcome {
	return &Outcome{Err: err}
}
