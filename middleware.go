package atmxgo

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

type Middleware func(Service) Service

// Chain applies mws so that the first one is the outermost.
func Chain(svc Service, mws ...Middleware) Service {
	for i := len(mws) - 1; i >= 0; i-- {
		svc = mws[i](svc)
	}
	return svc
}

var (
	_ Service = (*validationMiddleware)(nil)
)

// validationMiddleware rejects requests the terminal cannot make sense of.
// It does not touch credentials, those are the bank's business.
type validationMiddleware struct {
	next Service
}

func NewValidationMiddleware() Middleware {
	return func(svc Service) Service {
		return &validationMiddleware{next: svc}
	}
}

func (v *validationMiddleware) Submit(req Request) (*Outcome, error) {
	fields := map[string]string{}
	switch act := req.Action.(type) {
	case nil:
		fields["action"] = "missing"
	case CashWithdrawal:
		checkAmount(fields, "amount", act.Amount, req.Payment)
	case CashReplenishment:
		checkAmount(fields, "amount", act.Amount, req.Payment)
	case PhoneReplenishment:
		checkAmount(fields, "amount", act.Amount, req.Payment)
	}
	if req.Payment != nil && req.Payment.PaymentAmount().IsNegative() {
		fields["payment"] = "negative amount"
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}
	return v.next.Submit(req)
}

// checkAmount flags a negative action amount, and a non-zero one that
// disagrees with the payment amount, which is the one actually moved.
func checkAmount(fields map[string]string, name string, amount decimal.Decimal, pm PaymentMethod) {
	switch {
	case amount.IsNegative():
		fields[name] = "negative amount"
	case pm != nil && !amount.IsZero() && !amount.Equal(pm.PaymentAmount()):
		fields[name] = "does not match payment amount"
	}
}

var (
	_ Service = (*loggingMiddleware)(nil)
)

type loggingMiddleware struct {
	next Service
	log  *zerolog.Logger
}

func NewLoggingMiddleware(log *zerolog.Logger) Middleware {
	return func(svc Service) Service {
		return &loggingMiddleware{next: svc, log: log}
	}
}

func (l *loggingMiddleware) Submit(req Request) (out *Outcome, err error) {
	defer func(begin time.Time) {
		evt := l.log.Info()
		if err != nil {
			evt = l.log.Error().Err(err)
		}
		evt = evt.Str("action", ActionName(req.Action)).Dur("took", time.Since(begin))
		switch {
		case out == nil && err != nil:
			evt.Msg("rejected")
		case out == nil:
			evt.Msg("no-op")
		case out.Failed():
			evt.Str("error", ErrorKey(out.Err)).Msg("declined")
		default:
			evt.Str("operation", out.Op.Label()).Msg("confirmed")
		}
	}(time.Now())
	return l.next.Submit(req)
}

// BreakerSettings are the knobs of the presenter circuit breaker.
type BreakerSettings struct {
	MaxFailures uint32        `yaml:"max_failures"`
	OpenTimeout time.Duration `yaml:"open_timeout"`
}

var (
	_ Presenter = (*breakerPresenter)(nil)
)

// breakerPresenter stops calling a sink that keeps failing, then calls it
// again after OpenTimeout. While open, Present returns gobreaker.ErrOpenState.
type breakerPresenter struct {
	next Presenter
	cb   *gobreaker.CircuitBreaker[struct{}]
}

func NewBreakerPresenter(next Presenter, set BreakerSettings, log *zerolog.Logger) Presenter {
	maxFailures := set.MaxFailures
	if maxFailures == 0 {
		maxFailures = 3
	}
	st := gobreaker.Settings{
		Name:        "presenter",
		MaxRequests: 1,
		Timeout:     set.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	}
	return &breakerPresenter{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[struct{}](st),
	}
}

func (b *breakerPresenter) Present(out Outcome) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Present(out)
	})
	return err
}
