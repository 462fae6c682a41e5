package atmxgo

import (
	"github.com/shopspring/decimal"
)

// Repository is the account store behind the bank. It holds exactly one
// account and performs no validation of its own.
type Repository interface {
	GetAccount() Account
	Credit(b Balance, amount decimal.Decimal)
	Debit(b Balance, amount decimal.Decimal)
	SetPIN(pin int)
}
