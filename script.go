package atmxgo

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Step is one line of a YAML demo script.
type Step struct {
	CardID  string       `yaml:"card_id"`
	PIN     int          `yaml:"pin"`
	Action  string       `yaml:"action"`
	Amount  string       `yaml:"amount"`
	Phone   string       `yaml:"phone"`
	NewPIN  int          `yaml:"new_pin"`
	Payment *PaymentStep `yaml:"payment"`
}

type PaymentStep struct {
	Method string `yaml:"method"`
	Amount string `yaml:"amount"`
}

type script struct {
	Steps []Step `yaml:"steps"`
}

// ParseScript reads a YAML document of the form `steps: [...]` into requests.
func ParseScript(r io.Reader) ([]Request, error) {
	var s script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	reqs := make([]Request, 0, len(s.Steps))
	for i, st := range s.Steps {
		req, err := st.Request()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (s Step) Request() (Request, error) {
	amount, err := optionalAmount(s.Amount)
	if err != nil {
		return Request{}, ErrBadRequest{Fields: map[string]string{"amount": "invalid amount"}}
	}

	proto, ok := actionByName(s.Action)
	if !ok {
		return Request{}, ErrBadRequest{Fields: map[string]string{"action": fmt.Sprintf("unknown action %q", s.Action)}}
	}
	act := proto
	switch proto.(type) {
	case CashWithdrawal:
		act = CashWithdrawal{Amount: amount}
	case CashReplenishment:
		act = CashReplenishment{Amount: amount}
	case PhoneReplenishment:
		act = PhoneReplenishment{Phone: s.Phone, Amount: amount}
	case PINChange:
		act = PINChange{NewPIN: s.NewPIN}
	}

	req := Request{CardID: s.CardID, PIN: s.PIN, Action: act}
	if s.Payment == nil {
		return req, nil
	}
	pamount, err := decimal.NewFromString(s.Payment.Amount)
	if err != nil {
		return Request{}, ErrBadRequest{Fields: map[string]string{"payment.amount": "invalid amount"}}
	}
	switch s.Payment.Method {
	case "cash":
		req.Payment = Cash{Amount: pamount}
	case "card":
		req.Payment = Card{Amount: pamount}
	case "deposit":
		req.Payment = Deposit{Amount: pamount}
	default:
		return Request{}, ErrBadRequest{Fields: map[string]string{"payment.method": fmt.Sprintf("unknown method %q", s.Payment.Method)}}
	}
	return req, nil
}

func optionalAmount(v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(v)
}

// DemoScript is the fixed session of the original terminal demo: eleven
// requests that succeed followed by five that are declined.
func DemoScript(acct Account) []Request {
	const newPIN = 1256
	id, pin := acct.CardID, acct.PIN
	d := decimal.NewFromInt

	return []Request{
		{CardID: id, PIN: pin, Action: CardBalanceRequest{}},
		{CardID: id, PIN: pin, Action: DepositBalanceRequest{}},
		{CardID: id, PIN: pin, Action: CashWithdrawal{Amount: d(345)}, Payment: Card{Amount: d(345)}},
		{CardID: id, PIN: pin, Action: CashWithdrawal{Amount: d(876)}, Payment: Deposit{Amount: d(876)}},
		{CardID: id, PIN: pin, Action: CashReplenishment{Amount: d(2500)}, Payment: Card{Amount: d(2500)}},
		{CardID: id, PIN: pin, Action: CashReplenishment{Amount: d(100)}, Payment: Deposit{Amount: d(100)}},
		{CardID: id, PIN: pin, Action: PhoneReplenishment{Phone: acct.Phone, Amount: d(150)}, Payment: Cash{Amount: d(150)}},
		{CardID: id, PIN: pin, Action: PhoneReplenishment{Phone: acct.Phone, Amount: d(200)}, Payment: Card{Amount: d(200)}},
		{CardID: id, PIN: pin, Action: PhoneReplenishment{Phone: acct.Phone, Amount: d(450)}, Payment: Deposit{Amount: d(450)}},
		{CardID: id, PIN: pin, Action: PINChange{NewPIN: newPIN}},
		{CardID: id, PIN: newPIN, Action: AllBalancesRequest{}},

		{CardID: id, PIN: pin, Action: CardBalanceRequest{}},
		{CardID: "1111 2222 3333 0000", PIN: newPIN, Action: CardBalanceRequest{}},
		{CardID: id, PIN: newPIN, Action: CashWithdrawal{Amount: d(50000)}, Payment: Card{Amount: d(50000)}},
		{CardID: id, PIN: newPIN, Action: CashWithdrawal{Amount: d(50000)}, Payment: Deposit{Amount: d(50000)}},
		{CardID: id, PIN: newPIN, Action: PhoneReplenishment{Phone: "8 961 000 0000", Amount: d(100)}, Payment: Card{Amount: d(100)}},
	}
}
