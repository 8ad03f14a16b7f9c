// Package highscore keeps the ordered list of named high scores and
// persists it as a single JSON blob in a key-value store.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/storage"
)

// DefaultKey is the store key the list is kept under.
const DefaultKey = "highScores"

// Entry is one named score.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// KV is the key-value store the board persists through.
// *storage.Store satisfies it.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Board is the in-memory high-score list backed by a KV store.
// It is safe for concurrent use.
type Board struct {
	mu           sync.Mutex
	kv           KV
	key          string
	displayLimit int
	maxNameLen   int
	entries      []Entry
	logger       *log.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used to report soft failures.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithDisplayLimit sets how many entries Top returns and how deep the
// qualification check looks.
func WithDisplayLimit(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.displayLimit = n
		}
	}
}

// WithMaxNameLen truncates recorded names to n runes. Zero disables it.
func WithMaxNameLen(n int) Option {
	return func(b *Board) { b.maxNameLen = n }
}

// New creates a board over kv and loads the stored list.
// A nil kv keeps scores in memory only.
func New(kv KV, key string, opts ...Option) *Board {
	if key == "" {
		key = DefaultKey
	}
	b := &Board{
		kv:           kv,
		key:          key,
		displayLimit: 5,
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Load()
	return b
}

// Open builds a board over store using the high-score settings in cfg.
// A nil store keeps scores in memory only.
func Open(store *storage.Store, cfg config.HighScoreConfig, logger *log.Logger) *Board {
	var kv KV
	if store != nil {
		kv = store
	}
	return New(kv, cfg.StoreKey,
		WithLogger(logger),
		WithDisplayLimit(cfg.DisplayLimit),
		WithMaxNameLen(cfg.MaxNameLen),
	)
}

// Load re-reads the list from the store. A missing or corrupt blob yields
// an empty list; the failure is logged, never returned.
func (b *Board) Load() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
	if b.kv == nil {
		return nil
	}

	data, err := b.kv.Get(b.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			b.logger.Warn("could not read high scores", "key", b.key, "error", err)
		}
		return nil
	}

	entries, err := Decode(data)
	if err != nil {
		b.logger.Warn("discarding unreadable high scores", "key", b.key, "error", err)
		return nil
	}
	b.entries = entries
	return cloneEntries(b.entries)
}

// Save overwrites the stored collection with entries, sorted descending.
func (b *Board) Save(entries []Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sorted := cloneEntries(entries)
	sortEntries(sorted)
	b.entries = sorted
	return b.persist()
}

// Record adds a named score, keeps the list sorted and persists the full
// collection. Blank names are ignored: it returns false and no error.
// When persisting fails the entry is still kept in memory.
func (b *Board) Record(name string, score int) (bool, error) {
	name = b.cleanName(name)
	if name == "" || score < 0 {
		return false, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = Insert(b.entries, Entry{Name: name, Score: score})
	if err := b.persist(); err != nil {
		return true, err
	}
	return true, nil
}

// Entries returns a copy of the full list.
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneEntries(b.entries)
}

// Top returns at most the display limit of best entries.
func (b *Board) Top() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := min(b.displayLimit, len(b.entries))
	return cloneEntries(b.entries[:n])
}

// Qualifies reports whether score earns a place in the displayed list:
// it must be positive, and either the list is short or the score beats
// the last displayed entry.
func (b *Board) Qualifies(score int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if score <= 0 {
		return false
	}
	if len(b.entries) < b.displayLimit {
		return true
	}
	return score > b.entries[b.displayLimit-1].Score
}

// DisplayLimit returns the number of entries shown.
func (b *Board) DisplayLimit() int {
	return b.displayLimit
}

func (b *Board) persist() error {
	if b.kv == nil {
		return nil
	}
	data, err := Encode(b.entries)
	if err != nil {
		return err
	}
	if err := b.kv.Put(b.key, data); err != nil {
		return fmt.Errorf("highscore: cannot save: %w", err)
	}
	return nil
}

func (b *Board) cleanName(name string) string {
	name = strings.TrimSpace(name)
	if b.maxNameLen > 0 {
		if r := []rune(name); len(r) > b.maxNameLen {
			name = strings.TrimSpace(string(r[:b.maxNameLen]))
		}
	}
	return name
}

// Insert appends e and re-sorts descending by score. Entries with equal
// scores keep their insertion order, so a newcomer lands after ties.
func Insert(entries []Entry, e Entry) []Entry {
	out := append(cloneEntries(entries), e)
	sortEntries(out)
	return out
}

// Encode serializes entries to the stored JSON array form.
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot encode: %w", err)
	}
	return data, nil
}

// Decode parses a stored JSON array and returns it sorted descending.
// Entries with negative scores are dropped.
func Decode(data []byte) ([]Entry, error) {
	var raw []Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("highscore: cannot decode: %w", err)
	}
	entries := raw[:0]
	for _, e := range raw {
		if e.Score >= 0 {
			entries = append(entries, e)
		}
	}
	sortEntries(entries)
	return entries, nil
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}

func cloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
