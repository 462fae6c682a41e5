package atmxgo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arhyth/atmxgo"
)

func seedAccount() atmxgo.Account {
	return atmxgo.Account{
		Name:         "Ivan Ivanov",
		CardID:       "1111 2222 3333 4444",
		PIN:          1234,
		Phone:        "8 961 234 5678",
		Cash:         decimal.RequireFromString("4567.89"),
		Deposit:      decimal.RequireFromString("34570.47"),
		PhoneBalance: decimal.RequireFromString("-24.45"),
		CardBalance:  decimal.RequireFromString("8524.64"),
	}
}

func TestMemoryStore(t *testing.T) {
	t.Run("credit and debit touch only the named balance", func(tt *testing.T) {
		as := assert.New(tt)
		store := atmxgo.NewMemoryStore(seedAccount())

		store.Credit(atmxgo.BalancePhone, decimal.NewFromInt(100))
		store.Debit(atmxgo.BalanceCash, decimal.NewFromInt(67))

		acct := store.GetAccount()
		as.Equal("75.55", acct.PhoneBalance.String())
		as.Equal("4500.89", acct.Cash.String())
		as.Equal("8524.64", acct.CardBalance.String())
		as.Equal("34570.47", acct.Deposit.String())
	})

	t.Run("GetAccount returns a snapshot", func(tt *testing.T) {
		as := assert.New(tt)
		store := atmxgo.NewMemoryStore(seedAccount())
		snap := store.GetAccount()
		store.SetPIN(9999)
		as.Equal(1234, snap.PIN)
		as.Equal(9999, store.GetAccount().PIN)
	})
}

func TestAuthorize(t *testing.T) {
	bank := atmxgo.NewBank(atmxgo.NewMemoryStore(seedAccount()))
	cases := []struct {
		name   string
		cardID string
		pin    int
		want   bool
	}{
		{"both correct", "1111 2222 3333 4444", 1234, true},
		{"wrong card id", "1111 2222 3333 0000", 1234, false},
		{"wrong pin", "1111 2222 3333 4444", 4321, false},
		{"both wrong", "0000", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(tt *testing.T) {
			assert.Equal(tt, tc.want, bank.Authorize(tc.cardID, tc.pin))
		})
	}
}

func TestSufficientFunds(t *testing.T) {
	as := assert.New(t)
	bank := atmxgo.NewBank(atmxgo.NewMemoryStore(seedAccount()))

	as.True(bank.SufficientCardFunds(decimal.RequireFromString("8524.64")))
	as.False(bank.SufficientCardFunds(decimal.RequireFromString("8524.65")))
	as.True(bank.SufficientDepositFunds(decimal.RequireFromString("34570.47")))
	as.False(bank.SufficientDepositFunds(decimal.NewFromInt(50000)))
	as.True(bank.CheckPhone("8 961 234 5678"))
	as.False(bank.CheckPhone("8 961 000 0000"))
}

func TestMovements(t *testing.T) {
	amount := decimal.NewFromInt(100)
	cases := []struct {
		name    string
		move    func(atmxgo.Bank)
		cash    string
		deposit string
		phone   string
		card    string
	}{
		{"WithdrawFromCard", func(b atmxgo.Bank) { b.WithdrawFromCard(amount) }, "4667.89", "34570.47", "-24.45", "8424.64"},
		{"WithdrawFromDeposit", func(b atmxgo.Bank) { b.WithdrawFromDeposit(amount) }, "4667.89", "34470.47", "-24.45", "8524.64"},
		{"DepositToCard", func(b atmxgo.Bank) { b.DepositToCard(amount) }, "4467.89", "34570.47", "-24.45", "8624.64"},
		{"DepositToDeposit", func(b atmxgo.Bank) { b.DepositToDeposit(amount) }, "4467.89", "34670.47", "-24.45", "8524.64"},
		{"TopUpPhoneFromCash", func(b atmxgo.Bank) { b.TopUpPhoneFromCash(amount) }, "4467.89", "34570.47", "75.55", "8524.64"},
		{"TopUpPhoneFromCard", func(b atmxgo.Bank) { b.TopUpPhoneFromCard(amount) }, "4567.89", "34570.47", "75.55", "8424.64"},
		{"TopUpPhoneFromDeposit", func(b atmxgo.Bank) { b.TopUpPhoneFromDeposit(amount) }, "4567.89", "34470.47", "75.55", "8524.64"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(tt *testing.T) {
			as := assert.New(tt)
			store := atmxgo.NewMemoryStore(seedAccount())
			tc.move(atmxgo.NewBank(store))

			acct := store.GetAccount()
			as.Equal(tc.cash, acct.Cash.String())
			as.Equal(tc.deposit, acct.Deposit.String())
			as.Equal(tc.phone, acct.PhoneBalance.String())
			as.Equal(tc.card, acct.CardBalance.String())
		})
	}
}

func TestWithdrawFromCardConservesTotal(t *testing.T) {
	for _, a := range []string{"0", "0.01", "345", "8524.64"} {
		t.Run(a, func(tt *testing.T) {
			as := assert.New(tt)
			store := atmxgo.NewMemoryStore(seedAccount())
			bank := atmxgo.NewBank(store)
			before := store.GetAccount()
			amount := decimal.RequireFromString(a)

			as.True(bank.SufficientCardFunds(amount))
			bank.WithdrawFromCard(amount)

			after := store.GetAccount()
			as.True(after.CardBalance.Equal(before.CardBalance.Sub(amount)))
			as.True(after.Cash.Equal(before.Cash.Add(amount)))
			as.True(after.Cash.Add(after.CardBalance).Equal(before.Cash.Add(before.CardBalance)))
		})
	}
}

func TestDepositThenWithdrawRoundTrip(t *testing.T) {
	for _, a := range []string{"0", "12.5", "2500"} {
		t.Run(a, func(tt *testing.T) {
			as := assert.New(tt)
			store := atmxgo.NewMemoryStore(seedAccount())
			bank := atmxgo.NewBank(store)
			before := store.GetAccount()
			amount := decimal.RequireFromString(a)

			bank.DepositToCard(amount)
			as.True(bank.SufficientCardFunds(amount))
			bank.WithdrawFromCard(amount)

			after := store.GetAccount()
			as.True(after.CardBalance.Equal(before.CardBalance))
			as.True(after.Cash.Equal(before.Cash))
		})
	}
}

func TestQueries(t *testing.T) {
	as := assert.New(t)
	bank := atmxgo.NewBank(atmxgo.NewMemoryStore(seedAccount()))

	as.Equal("Ivan Ivanov", bank.Holder())
	as.Equal("8524.64", bank.CardBalance().String())
	as.Equal("34570.47", bank.DepositBalance().String())
	as.Equal("-24.45", bank.PhoneBalance().String())
	bals := bank.Balances()
	as.Equal("8524.64", bals.Card.String())
	as.Equal("34570.47", bals.Deposit.String())
	as.Equal("-24.45", bals.Phone.String())

	bank.ChangePIN(1256)
	as.Equal(1256, bank.PIN())
}
