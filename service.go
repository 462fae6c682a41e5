package atmxgo

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service is the single entry point of an ATM. A nil outcome with a nil
// error means the request had no effect and nothing was presented.
type Service interface {
	Submit(req Request) (*Outcome, error)
}

var (
	_ Service = (*terminal)(nil)
)

func NewTerminal(bank Bank, presenter Presenter, log *zerolog.Logger) *terminal {
	return &terminal{
		bank:      bank,
		presenter: presenter,
		log:       log,
	}
}

type terminal struct {
	// mu makes every authorize-check-mutate sequence atomic.
	mu        sync.Mutex
	bank      Bank
	presenter Presenter
	log       *zerolog.Logger
}

func (t *terminal) Submit(req Request) (*Outcome, error) {
	t.mu.Lock()
	out := t.dispatch(req)
	t.mu.Unlock()

	if out == nil {
		t.log.Debug().Msg("request had no effect")
		return nil, nil
	}
	if err := t.presenter.Present(*out); err != nil {
		t.log.Err(err).Str("operation", out.Op.Label()).Msg("error presenting outcome")
		return out, err
	}
	return out, nil
}

func (t *terminal) dispatch(req Request) *Outcome {
	if !t.bank.Authorize(req.CardID, req.PIN) {
		return failure(ErrInvalidCredentials)
	}

	switch act := req.Action.(type) {
	case CardBalanceRequest:
		return t.confirm(OpCardBalance, decimal.Zero)
	case DepositBalanceRequest:
		return t.confirm(OpDepositBalance, decimal.Zero)
	case AllBalancesRequest:
		return t.confirm(OpAllBalances, decimal.Zero)
	case CashWithdrawal:
		return t.withdraw(req.Payment)
	case CashReplenishment:
		return t.replenish(req.Payment)
	case PhoneReplenishment:
		if !t.bank.CheckPhone(act.Phone) {
			return failure(ErrInvalidPhone)
		}
		return t.topUpPhone(req.Payment)
	case PINChange:
		t.bank.ChangePIN(act.NewPIN)
		out := t.confirm(OpPINChange, decimal.Zero)
		out.PIN = t.bank.PIN()
		return out
	}
	return nil
}

// withdraw ignores a cash payment method: there is nowhere to take cash from.
func (t *terminal) withdraw(pm PaymentMethod) *Outcome {
	switch p := pm.(type) {
	case Card:
		if !t.bank.SufficientCardFunds(p.Amount) {
			return failure(ErrInsufficientCardFunds)
		}
		t.bank.WithdrawFromCard(p.Amount)
		return t.confirm(OpCardWithdrawal, p.Amount)
	case Deposit:
		if !t.bank.SufficientDepositFunds(p.Amount) {
			return failure(ErrInsufficientDepositFunds)
		}
		t.bank.WithdrawFromDeposit(p.Amount)
		return t.confirm(OpDepositWithdrawal, p.Amount)
	}
	return nil
}

// replenish needs no funds check, the money is the user's physical cash.
func (t *terminal) replenish(pm PaymentMethod) *Outcome {
	switch p := pm.(type) {
	case Card:
		t.bank.DepositToCard(p.Amount)
		return t.confirm(OpCardReplenishment, p.Amount)
	case Deposit:
		t.bank.DepositToDeposit(p.Amount)
		return t.confirm(OpDepositReplenishment, p.Amount)
	}
	return nil
}

func (t *terminal) topUpPhone(pm PaymentMethod) *Outcome {
	switch p := pm.(type) {
	case Cash:
		t.bank.TopUpPhoneFromCash(p.Amount)
		return t.confirm(OpPhoneFromCash, p.Amount)
	case Card:
		if !t.bank.SufficientCardFunds(p.Amount) {
			return failure(ErrInsufficientCardFunds)
		}
		t.bank.TopUpPhoneFromCard(p.Amount)
		return t.confirm(OpPhoneFromCard, p.Amount)
	case Deposit:
		if !t.bank.SufficientDepositFunds(p.Amount) {
			return failure(ErrInsufficientDepositFunds)
		}
		t.bank.TopUpPhoneFromDeposit(p.Amount)
		return t.confirm(OpPhoneFromDeposit, p.Amount)
	}
	return nil
}

func (t *terminal) confirm(op Operation, amount decimal.Decimal) *Outcome {
	return &Outcome{
		Op:       op,
		Holder:   t.bank.Holder(),
		Amount:   amount,
		Balances: t.bank.Balances(),
	}
}
