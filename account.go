package atmxgo

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

type Account struct {
	Name         string
	CardID       string
	PIN          int
	Phone        string
	Cash         decimal.Decimal
	Deposit      decimal.Decimal
	PhoneBalance decimal.Decimal
	CardBalance  decimal.Decimal
}

// Balance names one of the four amounts held for the account holder.
type Balance int

const (
	BalanceCash Balance = iota
	BalanceDeposit
	BalancePhone
	BalanceCard
)

func (b Balance) String() string {
	switch b {
	case BalanceCash:
		return "cash"
	case BalanceDeposit:
		return "deposit"
	case BalancePhone:
		return "phone"
	case BalanceCard:
		return "card"
	}
	return fmt.Sprintf("balance(%d)", int(b))
}

var (
	_ Repository = (*MemoryStore)(nil)
)

// MemoryStore keeps the single account in process memory for its lifetime.
type MemoryStore struct {
	mu   sync.RWMutex
	acct Account
}

func NewMemoryStore(acct Account) *MemoryStore {
	return &MemoryStore{acct: acct}
}

func (m *MemoryStore) GetAccount() Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.acct
}

func (m *MemoryStore) Credit(b Balance, amount decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adjust(b, amount)
}

func (m *MemoryStore) Debit(b Balance, amount decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adjust(b, amount.Neg())
}

func (m *MemoryStore) SetPIN(pin int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acct.PIN = pin
}

// adjust must be called with mu held.
func (m *MemoryStore) adjust(b Balance, delta decimal.Decimal) {
	switch b {
	case BalanceCash:
		m.acct.Cash = m.acct.Cash.Add(delta)
	case BalanceDeposit:
		m.acct.Deposit = m.acct.Deposit.Add(delta)
	case BalancePhone:
		m.acct.PhoneBalance = m.acct.PhoneBalance.Add(delta)
	case BalanceCard:
		m.acct.CardBalance = m.acct.CardBalance.Add(delta)
	}
}
