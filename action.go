package atmxgo

import (
	"reflect"

	"github.com/shopspring/decimal"
)

// Action is one of the buttons an ATM user can press. The set of variants is
// closed; see the types below.
type Action interface {
	isAction()
}

type (
	CardBalanceRequest    struct{}
	DepositBalanceRequest struct{}
	AllBalancesRequest    struct{}

	// CashWithdrawal takes cash out of the card or the deposit, whichever
	// the accompanying payment method names.
	CashWithdrawal struct {
		Amount decimal.Decimal
	}

	// CashReplenishment puts cash onto the card or the deposit.
	CashReplenishment struct {
		Amount decimal.Decimal
	}

	PhoneReplenishment struct {
		Phone  string
		Amount decimal.Decimal
	}

	PINChange struct {
		NewPIN int
	}
)

func (CardBalanceRequest) isAction()    {}
func (DepositBalanceRequest) isAction() {}
func (AllBalancesRequest) isAction()    {}
func (CashWithdrawal) isAction()        {}
func (CashReplenishment) isAction()     {}
func (PhoneReplenishment) isAction()    {}
func (PINChange) isAction()             {}

// actionNames is the single table of action names used by scripts and logs.
var actionNames = []struct {
	name  string
	proto Action
}{
	{"card_balance", CardBalanceRequest{}},
	{"deposit_balance", DepositBalanceRequest{}},
	{"all_balances", AllBalancesRequest{}},
	{"cash_withdrawal", CashWithdrawal{}},
	{"cash_replenishment", CashReplenishment{}},
	{"phone_replenishment", PhoneReplenishment{}},
	{"pin_change", PINChange{}},
}

// ActionName returns the script name of a, or "unknown".
func ActionName(a Action) string {
	t := reflect.TypeOf(a)
	for _, an := range actionNames {
		if reflect.TypeOf(an.proto) == t {
			return an.name
		}
	}
	return "unknown"
}

// ActionNames lists every known action name in table order.
func ActionNames() []string {
	names := make([]string, len(actionNames))
	for i, an := range actionNames {
		names[i] = an.name
	}
	return names
}

func actionByName(name string) (Action, bool) {
	for _, an := range actionNames {
		if an.name == name {
			return an.proto, true
		}
	}
	return nil, false
}

// PaymentMethod says where the money for an action comes from, or goes to.
// Its amount is the one actually moved. A nil PaymentMethod means none was
// given.
type PaymentMethod interface {
	PaymentAmount() decimal.Decimal
}

type (
	Cash    struct{ Amount decimal.Decimal }
	Card    struct{ Amount decimal.Decimal }
	Deposit struct{ Amount decimal.Decimal }
)

func (c Cash) PaymentAmount() decimal.Decimal    { return c.Amount }
func (c Card) PaymentAmount() decimal.Decimal    { return c.Amount }
func (d Deposit) PaymentAmount() decimal.Decimal { return d.Amount }

type Request struct {
	CardID  string
	PIN     int
	Action  Action
	Payment PaymentMethod
}
