package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"santa-lab/assignment"
	"santa-lab/contract"
	"santa-lab/infrastructure/mail"
	"santa-lab/infrastructure/storage"
	"santa-lab/internal"
	"santa-lab/roster"
	"santa-lab/services"
	"santa-lab/sink"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or a
// wrapping script: configuration errors are distinguishable from a draw or
// delivery that went wrong.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, executes the draw-and-report cycle, and
// centralizes error reporting. Returning instead of calling os.Exit directly
// ensures every defer (database close, index close) executes first.
func run() (int, error) {
	// 1. Flags & arguments
	printOnly := flag.Bool("p", false, "print assignments to the console instead of sending e-mails")
	seed := flag.Int64("seed", 0, "fixed engine seed for a reproducible draw (0 draws a fresh one)")
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		return exitConfig, fmt.Errorf("usage: santa [-p] [-seed n] roster_file [email_content_file]")
	}

	// 2. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 3. Roster & optional e-mail content
	r, err := roster.Load(flag.Arg(0))
	if err != nil {
		return exitConfig, err
	}

	extraContent := ""
	if flag.NArg() == 2 {
		extraContent, err = loadExtraContent(flag.Arg(1))
		if err != nil {
			return exitConfig, err
		}
	}

	// 4. Engine
	engineSeed := *seed
	if engineSeed == 0 {
		engineSeed, err = assignment.NewSeed()
		if err != nil {
			return exitRuntime, err
		}
	}
	logger.Debug("Engine seeded", "seed", engineSeed, "max_attempts", config.MaxAttempts)
	engine := assignment.NewEngine(rand.New(rand.NewSource(engineSeed)), logger, config.MaxAttempts)

	// 5. Sinks
	var sinks []contract.IResultSink
	if *printOnly {
		sinks = append(sinks, sink.NewConsoleSink(r.Registry, os.Stdout, config.Colours))
	} else {
		mailer, err := mail.NewSMTPMailer(config.SMTPHost, config.SMTPPort, r.AdminEmail, r.AdminPassword)
		if err != nil {
			return exitConfig, err
		}
		sinks = append(sinks, sink.NewEmailSink(mailer, r.Registry, r.AdminEmail, extraContent, config.SendTimeout, logger))
	}

	// 6. Run history (opt-in)
	if config.HistoryPath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.HistoryPath).
			WithLoggingLevel(badger.ERROR))
		if err != nil {
			return exitRuntime, fmt.Errorf("history database opening failed: %w", err)
		}
		defer func() {
			logger.Debug("Closing history database...")
			_ = db.Close()
		}()

		var blugeWriter *bluge.Writer
		if config.BlugePath != "" {
			blugeWriter, err = bluge.OpenWriter(bluge.DefaultConfig(config.BlugePath))
			if err != nil {
				return exitRuntime, fmt.Errorf("failed to open search index: %w", err)
			}
			defer func() {
				logger.Debug("Closing search index...")
				_ = blugeWriter.Close()
			}()
		}

		repository := storage.NewRunRepository(db, blugeWriter, logger)
		sinks = append(sinks, sink.NewHistorySink(repository, r.Registry, logger))
	}

	// 7. Draw & report
	service := services.NewAssignmentService(engine, logger, sinks...)
	if _, err := service.Run(context.Background(), r.Registry); err != nil {
		return exitRuntime, err
	}

	return exitOK, nil
}
