package atmxgo

import (
	"io"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"
)

// Presenter turns an outcome into something a person can read.
type Presenter interface {
	Present(out Outcome) error
}

const (
	greetingTmpl = "Hello, {{.Holder}}!\nYou selected: {{.Op.Label}}\n"
	errorTmpl    = "Hello!\nUnfortunately, {{.Err}}\n\n"
)

var outcomeTmpls = map[Operation]string{
	OpCardBalance:    "Card balance: {{money .Balances.Card}}\n",
	OpDepositBalance: "Deposit balance: {{money .Balances.Deposit}}\n",
	OpAllBalances: "Card balance: {{money .Balances.Card}}\n" +
		"Deposit balance: {{money .Balances.Deposit}}\n" +
		"Phone balance: {{money .Balances.Phone}}\n",
	OpCardWithdrawal: "Withdrawn: {{money .Amount}}\n" +
		"Remaining card balance: {{money .Balances.Card}}\n",
	OpDepositWithdrawal: "Withdrawn: {{money .Amount}}\n" +
		"Remaining deposit balance: {{money .Balances.Deposit}}\n",
	OpCardReplenishment: "Topped up: {{money .Amount}}\n" +
		"Card balance: {{money .Balances.Card}}\n",
	OpDepositReplenishment: "Topped up: {{money .Amount}}\n" +
		"Deposit balance: {{money .Balances.Deposit}}\n",
	OpPhoneFromCash: "Topped up: {{money .Amount}}\n" +
		"Phone balance: {{money .Balances.Phone}}\n",
	OpPhoneFromCard: "Topped up: {{money .Amount}}\n" +
		"Phone balance: {{money .Balances.Phone}}\n" +
		"Remaining card balance: {{money .Balances.Card}}\n",
	OpPhoneFromDeposit: "Topped up: {{money .Amount}}\n" +
		"Phone balance: {{money .Balances.Phone}}\n" +
		"Remaining deposit balance: {{money .Balances.Deposit}}\n",
	OpPINChange: "New PIN: {{.PIN}}\n",
}

var (
	_ Presenter = (*ConsolePresenter)(nil)
)

// ConsolePresenter prints one message per outcome, in the format of the
// original terminal screen.
type ConsolePresenter struct {
	w     io.Writer
	tmpls map[Operation]*template.Template
	errt  *template.Template
}

// NewConsolePresenter builds a presenter writing to w. currency is appended
// to every amount, e.g. "RUB" or "₽".
func NewConsolePresenter(w io.Writer, currency string) *ConsolePresenter {
	funcMap := template.FuncMap{
		"money": func(v decimal.Decimal) string {
			return strings.TrimSpace(v.StringFixed(2) + " " + currency)
		},
	}
	cp := &ConsolePresenter{
		w:     w,
		tmpls: make(map[Operation]*template.Template, len(outcomeTmpls)),
		errt:  template.Must(template.New("error").Parse(errorTmpl)),
	}
	for op, body := range outcomeTmpls {
		cp.tmpls[op] = template.Must(template.New(op.Label()).Funcs(funcMap).Parse(greetingTmpl + body + "\n"))
	}
	return cp
}

func (c *ConsolePresenter) Present(out Outcome) error {
	if out.Failed() {
		return c.errt.Execute(c.w, out)
	}
	tmpl, ok := c.tmpls[out.Op]
	if !ok {
		return ErrBadRequest{Fields: map[string]string{"operation": out.Op.Label()}}
	}
	return tmpl.Execute(c.w, out)
}
