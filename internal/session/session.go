// Package session orchestrates one user's calculations: it validates and
// computes through the pricing calculator, records results in the history,
// persists state, and serves exports of the current result.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/export"
	"github.com/anomredux/tokencalc/internal/history"
	"github.com/anomredux/tokencalc/internal/metrics"
	"github.com/anomredux/tokencalc/internal/pricing"
	"github.com/anomredux/tokencalc/internal/store"
)

// FormKey is the store key of the last submitted parameters.
const FormKey = "form_data"

var (
	ErrNoDataAvailable = errors.New("no calculation available")
	ErrBusy            = errors.New("a calculation is already running")
)

type Session struct {
	calc    *pricing.Calculator
	history *history.Manager
	store   store.Store
	metrics *metrics.Collector
	logger  *slog.Logger

	busy atomic.Bool

	mu      sync.RWMutex
	current *domain.Result
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func WithMetrics(m *metrics.Collector) Option {
	return func(s *Session) { s.metrics = m }
}

// New wires a session. st may be nil, in which case form state is not
// persisted.
func New(calc *pricing.Calculator, hist *history.Manager, st store.Store, opts ...Option) *Session {
	s := &Session{
		calc:    calc,
		history: hist,
		store:   st,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start loads the persisted history. A load failure is logged and the
// session starts empty.
func (s *Session) Start(ctx context.Context) {
	if err := s.history.Load(ctx); err != nil {
		s.logger.Warn("history not restored", "error", err)
	}
	s.observeHistory()
}

// Submit runs one calculation. Only one may run at a time; an overlapping
// call returns ErrBusy. On success the result becomes current, is prepended
// to the history and the history is persisted. A persistence failure is
// logged and does not fail the calculation.
func (s *Session) Submit(ctx context.Context, p domain.Parameters) (domain.Result, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return domain.Result{}, ErrBusy
	}
	defer s.busy.Store(false)

	r, err := s.calc.Calculate(p)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidParameters) && s.metrics != nil {
			s.metrics.RecordValidationFailure()
		}
		s.logger.Debug("calculation rejected", "error", err)
		return domain.Result{}, err
	}

	s.history.Add(r)
	s.setCurrent(r)
	if s.metrics != nil {
		s.metrics.RecordCalculation(r.Parameters.Model, r.Summary.TotalCost)
	}
	s.observeHistory()

	if err := s.history.Persist(ctx); err != nil {
		s.logger.Warn("history not persisted", "error", err)
	}
	s.logger.Info("calculation complete",
		"id", r.ID,
		"quantity", r.Summary.Quantity,
		"total_tokens", r.Summary.TotalTokens,
		"total_cost", r.Summary.TotalCost,
	)
	return r, nil
}

// Record adds results computed elsewhere (a batch run) to the history in
// the given order, so the last one ends up most recent, and persists once.
// The last result becomes current.
func (s *Session) Record(ctx context.Context, results []domain.Result) {
	if len(results) == 0 {
		return
	}
	for _, r := range results {
		s.history.Add(r)
		if s.metrics != nil {
			s.metrics.RecordCalculation(r.Parameters.Model, r.Summary.TotalCost)
		}
	}
	s.setCurrent(results[len(results)-1])
	s.observeHistory()
	if err := s.history.Persist(ctx); err != nil {
		s.logger.Warn("history not persisted", "error", err)
	}
}

// Busy reports whether a calculation is in flight.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// Current returns the most recent result of this session, or the one picked
// with Select.
func (s *Session) Current() (domain.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Result{}, false
	}
	return *s.current, true
}

// Select makes the history entry id current.
func (s *Session) Select(id string) error {
	r, ok := s.history.ByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoDataAvailable, id)
	}
	s.setCurrent(r)
	return nil
}

func (s *Session) setCurrent(r domain.Result) {
	s.mu.Lock()
	s.current = &r
	s.mu.Unlock()
}

func (s *Session) History() *history.Manager {
	return s.history
}

func (s *Session) Calculator() *pricing.Calculator {
	return s.calc
}

func (s *Session) ExportBreakdownCSV(w io.Writer) error {
	r, ok := s.Current()
	if !ok {
		return ErrNoDataAvailable
	}
	return export.BreakdownCSV(w, r)
}

func (s *Session) ExportScenariosCSV(w io.Writer) error {
	r, ok := s.Current()
	if !ok || len(r.Scenarios) == 0 {
		return ErrNoDataAvailable
	}
	return export.ScenariosCSV(w, r)
}

// Compare reports how history entry idB differs from idA.
func (s *Session) Compare(idA, idB string) (domain.Comparison, error) {
	a, ok := s.history.ByID(idA)
	if !ok {
		return domain.Comparison{}, fmt.Errorf("%w: %s", ErrNoDataAvailable, idA)
	}
	b, ok := s.history.ByID(idB)
	if !ok {
		return domain.Comparison{}, fmt.Errorf("%w: %s", ErrNoDataAvailable, idB)
	}
	return domain.Compare(a, b), nil
}

// ClearHistory empties the history and persists the empty state. The
// current result is kept so it can still be exported.
func (s *Session) ClearHistory(ctx context.Context) {
	s.history.Clear()
	s.observeHistory()
	if err := s.history.Persist(ctx); err != nil {
		s.logger.Warn("cleared history not persisted", "error", err)
	}
}

// SaveForm remembers the parameters last entered by the user.
func (s *Session) SaveForm(ctx context.Context, p domain.Parameters) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, FormKey, p); err != nil {
		s.logger.Warn("form state not saved", "error", err)
		return err
	}
	return nil
}

// LoadForm returns the saved form parameters, if any.
func (s *Session) LoadForm(ctx context.Context) (domain.Parameters, bool) {
	if s.store == nil {
		return domain.Parameters{}, false
	}
	var p domain.Parameters
	found, err := s.store.Load(ctx, FormKey, &p)
	if err != nil {
		s.logger.Warn("form state not restored", "error", err)
		return domain.Parameters{}, false
	}
	return p, found
}

// Close persists the history one last time.
func (s *Session) Close(ctx context.Context) error {
	return s.history.Persist(ctx)
}

func (s *Session) observeHistory() {
	if s.metrics != nil {
		s.metrics.SetHistorySize(s.history.Len())
	}
}
