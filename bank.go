package atmxgo

import (
	"github.com/shopspring/decimal"
)

// Bank is the backend an ATM talks to. The movement methods are
// unconditional: callers check sufficiency first.
type Bank interface {
	Authorize(cardID string, pin int) bool
	CheckPhone(phone string) bool
	SufficientCardFunds(amount decimal.Decimal) bool
	SufficientDepositFunds(amount decimal.Decimal) bool

	WithdrawFromCard(amount decimal.Decimal)
	WithdrawFromDeposit(amount decimal.Decimal)
	DepositToCard(amount decimal.Decimal)
	DepositToDeposit(amount decimal.Decimal)
	TopUpPhoneFromCash(amount decimal.Decimal)
	TopUpPhoneFromCard(amount decimal.Decimal)
	TopUpPhoneFromDeposit(amount decimal.Decimal)
	ChangePIN(newPIN int)

	Holder() string
	CardBalance() decimal.Decimal
	DepositBalance() decimal.Decimal
	PhoneBalance() decimal.Decimal
	Balances() Balances
	PIN() int
}

var (
	_ Bank = (*bankServer)(nil)
)

func NewBank(repo Repository) *bankServer {
	return &bankServer{repo: repo}
}

type bankServer struct {
	repo Repository
}

// Authorize compares both credentials verbatim. There is no lockout.
func (b *bankServer) Authorize(cardID string, pin int) bool {
	acct := b.repo.GetAccount()
	return acct.CardID == cardID && acct.PIN == pin
}

func (b *bankServer) CheckPhone(phone string) bool {
	return b.repo.GetAccount().Phone == phone
}

func (b *bankServer) SufficientCardFunds(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(b.repo.GetAccount().CardBalance)
}

func (b *bankServer) SufficientDepositFunds(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(b.repo.GetAccount().Deposit)
}

func (b *bankServer) WithdrawFromCard(amount decimal.Decimal) {
	b.move(BalanceCard, BalanceCash, amount)
}

func (b *bankServer) WithdrawFromDeposit(amount decimal.Decimal) {
	b.move(BalanceDeposit, BalanceCash, amount)
}

func (b *bankServer) DepositToCard(amount decimal.Decimal) {
	b.move(BalanceCash, BalanceCard, amount)
}

func (b *bankServer) DepositToDeposit(amount decimal.Decimal) {
	b.move(BalanceCash, BalanceDeposit, amount)
}

func (b *bankServer) TopUpPhoneFromCash(amount decimal.Decimal) {
	b.move(BalanceCash, BalancePhone, amount)
}

func (b *bankServer) TopUpPhoneFromCard(amount decimal.Decimal) {
	b.move(BalanceCard, BalancePhone, amount)
}

func (b *bankServer) TopUpPhoneFromDeposit(amount decimal.Decimal) {
	b.move(BalanceDeposit, BalancePhone, amount)
}

// ChangePIN accepts any integer as the new PIN.
func (b *bankServer) ChangePIN(newPIN int) {
	b.repo.SetPIN(newPIN)
}

func (b *bankServer) Holder() string {
	return b.repo.GetAccount().Name
}

func (b *bankServer) CardBalance() decimal.Decimal {
	return b.repo.GetAccount().CardBalance
}

func (b *bankServer) DepositBalance() decimal.Decimal {
	return b.repo.GetAccount().Deposit
}

func (b *bankServer) PhoneBalance() decimal.Decimal {
	return b.repo.GetAccount().PhoneBalance
}

func (b *bankServer) Balances() Balances {
	acct := b.repo.GetAccount()
	return Balances{
		Card:    acct.CardBalance,
		Deposit: acct.Deposit,
		Phone:   acct.PhoneBalance,
	}
}

func (b *bankServer) PIN() int {
	return b.repo.GetAccount().PIN
}

func (b *bankServer) move(from, to Balance, amount decimal.Decimal) {
	b.repo.Debit(from, amount)
	b.repo.Credit(to, amount)
}
