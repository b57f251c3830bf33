package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"santa-lab/infrastructure/storage"
	"santa-lab/internal"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	query := flag.String("q", "", "search runs by participant name instead of listing")
	limit := flag.Int("limit", 20, "maximum number of runs to display")
	flag.Parse()

	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if config.HistoryPath == "" {
		log.Fatal("SANTA_HISTORY_PATH must point at an existing run history")
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening if another process holds the lock
	opts := badger.DefaultOptions(config.HistoryPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open history database: %v", err)
	}
	defer db.Close()

	// 3. Search needs the Bluge index next to the database
	var blugeWriter *bluge.Writer
	if *query != "" {
		if config.BlugePath == "" {
			log.Fatal("SANTA_BLUGE_PATH must be set to search the history")
		}
		blugeWriter, err = bluge.OpenWriter(bluge.DefaultConfig(config.BlugePath))
		if err != nil {
			log.Fatalf("Failed to open search index: %v", err)
		}
		defer blugeWriter.Close()
	}

	repository := storage.NewRunRepository(db, blugeWriter, logger)

	var runs []storage.StoredRun
	if *query != "" {
		runs, err = repository.SearchRuns(context.Background(), *query, *limit)
	} else {
		runs, err = repository.ListRuns(*limit)
	}
	if err != nil {
		log.Fatalf("Failed to load runs: %v", err)
	}

	header := fmt.Sprintf("  ====== Assignment history (%d runs) ======", len(runs))
	if config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	render(runs)
}

// render prints one row per pair; the run id and timestamp only appear on
// the first row of each run to keep the listing scannable.
func render(runs []storage.StoredRun) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Run", "Created", "Giver", "Receiver"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, run := range runs {
		for i, pair := range run.Pairs {
			runID, created := "", ""
			if i == 0 {
				runID = run.RunID
				created = run.CreatedAt.Format("2006-01-02 15:04:05")
			}
			table.Append([]string{runID, created, pair.GiverName, pair.ReceiverName})
		}
	}

	table.Render()
}
