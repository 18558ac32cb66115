// Package journal exposes the operations presentation layers call: submit an
// entry, load the history view, delete everything and pick a quote.
package journal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/chris-regnier/moodctl/internal/aggregate"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/quote"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// DefaultHistoryLimit is the number of entries LoadHistory returns when no
// positive limit is given.
const DefaultHistoryLimit = 5

// SubmitResult is the outcome of a submission that did not fail outright.
type SubmitResult string

const (
	SubmitOK          SubmitResult = "ok"
	SubmitMissingMood SubmitResult = "missing_mood"
)

// Clock abstracts time.Now for deterministic tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Submission is a candidate entry as collected by a presentation layer.
type Submission struct {
	Date        time.Time // zero means today
	Mood        string
	StressLevel int
	Journal     string
	Contact     string
}

// History is everything a history view renders.
type History struct {
	Entries      []mood.Entry            `json:"entries"`
	Distribution aggregate.Distribution  `json:"mood_distribution"`
	Trend        []aggregate.StressPoint `json:"stress_trend"`
}

// Service binds the store to the aggregate and quote helpers.
type Service struct {
	store  storage.Storage
	logger *slog.Logger
	clock  Clock

	rngMu sync.Mutex
	rng   rand.Source
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock overrides the clock used to date submissions.
func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithRandSource overrides the random source used for quotes.
func WithRandSource(src rand.Source) Option {
	return func(s *Service) { s.rng = src }
}

// New creates a Service over store.
func New(store storage.Storage, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:  realClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		now := uint64(s.clock.Now().UnixNano())
		s.rng = rand.NewPCG(now, now>>32|1)
	}
	s.logger = s.logger.With("component", "journal")
	return s
}

// SubmitEntry validates and stores a submission. A missing mood is not an
// error: it yields SubmitMissingMood and nothing is stored. Other validation
// failures wrap storage.ErrValidation; storage failures wrap storage.ErrStorage.
func (s *Service) SubmitEntry(sub Submission) (SubmitResult, error) {
	m, err := mood.ParseMood(sub.Mood)
	if errors.Is(err, mood.ErrMissingMood) {
		s.logger.Warn("submission without mood", "operation", "submit")
		return SubmitMissingMood, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", storage.ErrValidation, err)
	}

	date := sub.Date
	if date.IsZero() {
		date = s.clock.Now()
	}
	e := mood.Entry{
		Date:        mood.Day(date),
		Mood:        m,
		StressLevel: sub.StressLevel,
		Journal:     sub.Journal,
		Contact:     sub.Contact,
	}

	if err := s.store.Insert(e); err != nil {
		s.logger.Error("insert failed", "operation", "submit", "date", e.DateString(), "error", err)
		return "", err
	}
	s.logger.Info("entry saved", "operation", "submit", "date", e.DateString(), "mood", string(e.Mood), "stress_level", e.StressLevel)
	return SubmitOK, nil
}

// LoadHistory reads up to limit recent entries and aggregates them.
func (s *Service) LoadHistory(limit int) (History, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	entries, err := s.store.Recent(limit)
	if err != nil {
		s.logger.Error("loading history failed", "operation", "history", "error", err)
		return History{}, err
	}
	s.logger.Debug("history loaded", "operation", "history", "limit", limit, "entries", len(entries))
	return History{
		Entries:      entries,
		Distribution: aggregate.MoodDistribution(entries),
		Trend:        aggregate.StressTrend(entries),
	}, nil
}

// DeleteAllEntries removes every stored entry. Callers are expected to have
// obtained confirmation first.
func (s *Service) DeleteAllEntries() error {
	if err := s.store.ClearAll(); err != nil {
		s.logger.Error("clear failed", "operation", "clear", "error", err)
		return err
	}
	s.logger.Info("all entries deleted", "operation", "clear")
	return nil
}

// Today returns the calendar day submissions without a date are filed under.
func (s *Service) Today() time.Time {
	return mood.Day(s.clock.Now())
}

// Count returns the number of stored entries.
func (s *Service) Count() (int, error) {
	return s.store.Count()
}

// PickMotivationalQuote returns a random quote from the fixed list.
func (s *Service) PickMotivationalQuote() string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return quote.Pick(s.rng)
}
