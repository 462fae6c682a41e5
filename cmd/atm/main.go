package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"

	"github.com/arhyth/atmxgo"
)

func main() {
	cfp := flag.String("config", "config.yml", "path to configuration file")
	scp := flag.String("script", "", "path to a YAML request script; the built-in demo runs when empty")
	stp := flag.String("statement", "", "write a PDF mini statement of the session to this path")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := atmxgo.DefaultConfig()
	cfgfl, err := os.Open(*cfp)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info().Str("path", *cfp).Msg("config file not found, using defaults")
	case err != nil:
		logger.Fatal().Err(err).Msg("error opening config file")
	default:
		cfg, err = atmxgo.LoadConfig(cfgfl)
		cfgfl.Close()
		if err != nil {
			logger.Fatal().Err(err).Msg("error decoding config file")
		}
	}
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	acct, err := cfg.Account.Account()
	if err != nil {
		logger.Fatal().Err(err).Msg("error seeding account")
	}
	node, err := snowflake.NewNode(cfg.Journal.Node)
	if err != nil {
		logger.Fatal().
			Err(err).
			Int64("node", cfg.Journal.Node).
			Msg("error creating journal node")
	}

	console := atmxgo.NewConsolePresenter(os.Stdout, cfg.Journal.Currency)
	journal := atmxgo.NewJournal(node, atmxgo.NewBreakerPresenter(console, cfg.Breaker, &logger))
	bank := atmxgo.NewBank(atmxgo.NewMemoryStore(acct))
	svc := atmxgo.Chain(
		atmxgo.NewTerminal(bank, journal, &logger),
		atmxgo.NewLoggingMiddleware(&logger),
		atmxgo.NewValidationMiddleware(),
	)

	reqs := atmxgo.DemoScript(acct)
	if *scp != "" {
		scfl, err := os.Open(*scp)
		if err != nil {
			logger.Fatal().Err(err).Msg("error opening script file")
		}
		reqs, err = atmxgo.ParseScript(scfl)
		scfl.Close()
		if err != nil {
			logger.Fatal().Err(err).Msg("error parsing script file")
		}
	}

	for i, req := range reqs {
		if _, err := svc.Submit(req); err != nil {
			logger.Err(err).Int("step", i+1).Msg("error submitting request")
		}
	}

	if *stp == "" {
		return
	}
	if err = writeStatement(*stp, journal, acct.Name, cfg.Journal.Currency); err != nil {
		logger.Fatal().Err(err).Str("path", *stp).Msg("error writing statement")
	}
}

// writeStatement closes the file before returning and removes it when the
// statement could not be written completely.
func writeStatement(path string, journal *atmxgo.Journal, holder, currency string) error {
	fl, err := os.Create(path)
	if err != nil {
		return err
	}
	err = journal.Statement(fl, holder, currency)
	if cerr := fl.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
	}
	return err
}
