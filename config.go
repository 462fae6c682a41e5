package atmxgo

import (
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Account AccountConfig `yaml:"account"`
	Log     struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Journal struct {
		Node     int64  `yaml:"node"`
		Currency string `yaml:"currency"`
	} `yaml:"journal"`
	Breaker BreakerSettings `yaml:"breaker"`
}

// AccountConfig seeds the one account of the session. Amounts are strings so
// they reach decimal without a trip through float64.
type AccountConfig struct {
	Name         string `yaml:"name"`
	CardID       string `yaml:"card_id"`
	PIN          int    `yaml:"pin"`
	Phone        string `yaml:"phone"`
	Cash         string `yaml:"cash"`
	Deposit      string `yaml:"deposit"`
	PhoneBalance string `yaml:"phone_balance"`
	CardBalance  string `yaml:"card_balance"`
}

func DefaultConfig() Config {
	var cfg Config
	cfg.Account = AccountConfig{
		Name:         "Ivan Ivanov",
		CardID:       "1111 2222 3333 4444",
		PIN:          1234,
		Phone:        "8 961 234 5678",
		Cash:         "4567.89",
		Deposit:      "34570.47",
		PhoneBalance: "-24.45",
		CardBalance:  "8524.64",
	}
	cfg.Log.Level = "info"
	cfg.Journal.Node = 1
	cfg.Journal.Currency = "RUB"
	cfg.Breaker.MaxFailures = 3
	return cfg
}

// LoadConfig decodes YAML on top of DefaultConfig, so a file only needs the
// keys it changes.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	return cfg, nil
}

func (ac AccountConfig) Account() (Account, error) {
	fields := map[string]string{}
	parse := func(name, v string) decimal.Decimal {
		d, err := decimal.NewFromString(v)
		if err != nil {
			fields[name] = "invalid amount"
		}
		return d
	}
	acct := Account{
		Name:         ac.Name,
		CardID:       ac.CardID,
		PIN:          ac.PIN,
		Phone:        ac.Phone,
		Cash:         parse("cash", ac.Cash),
		Deposit:      parse("deposit", ac.Deposit),
		PhoneBalance: parse("phone_balance", ac.PhoneBalance),
		CardBalance:  parse("card_balance", ac.CardBalance),
	}
	if ac.CardID == "" {
		fields["card_id"] = "missing"
	}
	if len(fields) > 0 {
		return Account{}, ErrBadRequest{Fields: fields}
	}
	return acct, nil
}
