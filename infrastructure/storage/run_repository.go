//go:generate go run go.uber.org/mock/mockgen -source=run_repository.go -destination=../../mocks/mock_run_repository.go -package=mocks
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const runKeyPrefix = "run:"

// StoredRun is the persisted trace of one assignment run: identifiers plus
// the resolved giver/receiver names, so the history stays readable without
// the original roster file.
type StoredRun struct {
	RunID     string       `json:"run_id"`
	CreatedAt time.Time    `json:"created_at"`
	Pairs     []StoredPair `json:"pairs"`
}

type StoredPair struct {
	GiverID      string `json:"giver_id"`
	GiverName    string `json:"giver_name"`
	ReceiverID   string `json:"receiver_id"`
	ReceiverName string `json:"receiver_name"`
}

type IRunRepository interface {
	StoreRun(run StoredRun) error
	ListRuns(limit int) ([]StoredRun, error)
	SearchRuns(ctx context.Context, query string, limit int) ([]StoredRun, error)
}

// RunRepository persists runs in BadgerDB and mirrors participant names into
// a Bluge index for full-text lookup. The index is optional: without a
// writer the repository still stores and lists, only search is unavailable.
type RunRepository struct {
	db          *badger.DB
	blugeWriter *bluge.Writer
	log         *slog.Logger
}

func NewRunRepository(db *badger.DB, blugeWriter *bluge.Writer, log *slog.Logger) *RunRepository {
	return &RunRepository{db: db, blugeWriter: blugeWriter, log: log}
}

// StoreRun persists a run under "run:{timestamp_padded}:{run_id}".
// The 19-digit zero padding keeps keys sorted chronologically
// (lexicographical order); the run id disambiguates two runs stored in the
// same nanosecond.
func (r *RunRepository) StoreRun(run StoredRun) error {
	key := runKey(run)
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run %s: %w", run.RunID, err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store run %s: %w", run.RunID, err)
	}

	if r.blugeWriter == nil {
		return nil
	}
	return r.index(run, key)
}

func runKey(run StoredRun) string {
	return fmt.Sprintf("run:%019d:%s", run.CreatedAt.UnixNano(), run.RunID)
}

// index mirrors the searchable parts of the run into Bluge. The document
// identifier is the BadgerDB key, so a search hit resolves straight back to
// the authoritative record.
func (r *RunRepository) index(run StoredRun, key string) error {
	names := lo.FlatMap(run.Pairs, func(p StoredPair, _ int) []string {
		return []string{p.GiverName, p.ReceiverName}
	})

	doc := bluge.NewDocument(key).
		AddField(bluge.NewTextField("names", strings.Join(lo.Uniq(names), " ")).StoreValue()).
		AddField(bluge.NewTextField("run_id", run.RunID).StoreValue())

	if err := r.blugeWriter.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("failed to index run %s: %w", run.RunID, err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first. A limit of zero or less
// returns everything.
func (r *RunRepository) ListRuns(limit int) ([]StoredRun, error) {
	var runs []StoredRun
	prefix := []byte(runKeyPrefix)
	// Reverse scans must seek past the last possible key of the prefix,
	// key bodies only contain digits so all-nines is beyond every run.
	seekKey := []byte(runKeyPrefix + "9999999999999999999")

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(runs) == limit {
				break
			}
			item := it.Item()
			err := item.Value(func(value []byte) error {
				var run StoredRun
				if err := json.Unmarshal(value, &run); err != nil {
					return fmt.Errorf("failed to unmarshal run at %s: %w", item.Key(), err)
				}
				runs = append(runs, run)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// SearchRuns looks up runs whose participant names match the query, newest
// first. Hits resolve back through BadgerDB so callers always see the full
// stored record.
func (r *RunRepository) SearchRuns(ctx context.Context, query string, limit int) ([]StoredRun, error) {
	if r.blugeWriter == nil {
		return nil, fmt.Errorf("search index is not configured")
	}

	reader, err := r.blugeWriter.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open index reader: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	matchQuery := bluge.NewMatchQuery(query).SetField("names")
	searchReq := bluge.NewTopNSearch(limit, matchQuery).WithStandardAggregations()

	iterator, err := reader.Search(ctx, searchReq)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	var keys []string
	match, err := iterator.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				keys = append(keys, string(value))
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read search hit: %w", err)
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to iterate search hits: %w", err)
	}

	runs, err := r.fetchRuns(keys)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(runs, func(a, b StoredRun) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return runs, nil
}

func (r *RunRepository) fetchRuns(keys []string) ([]StoredRun, error) {
	var runs []StoredRun
	err := r.db.View(func(txn *badger.Txn) error {
		for _, key := range keys {
			item, err := txn.Get([]byte(key))
			if errors.Is(err, badger.ErrKeyNotFound) {
				r.log.Warn("Index entry without matching record", "key", key)
				continue
			}
			if err != nil {
				return err
			}
			err = item.Value(func(value []byte) error {
				var run StoredRun
				if err := json.Unmarshal(value, &run); err != nil {
					return fmt.Errorf("failed to unmarshal run at %s: %w", key, err)
				}
				runs = append(runs, run)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}
