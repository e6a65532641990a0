package syncer

import (
	"context"
	"sync"
	"time"

	"indexer-sync/core/logger"
	"indexer-sync/core/reconcile"
	"indexer-sync/core/rules"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Source fetches the authoritative indexer catalog.
type Source interface {
	FetchCatalog(ctx context.Context) ([]reconcile.SourceIndexer, error)
}

// Target pairs a consumer variant with its transport client.
type Target struct {
	App    reconcile.App
	Client reconcile.AppClient
}

// RunReport is the outcome of one reconciliation run, held in memory only.
type RunReport struct {
	// RunID correlates the report with the run's log lines.
	RunID string `json:"run_id"`
	// Started is when the run began.
	Started time.Time `json:"started"`
	// DurationMs is the total run duration in milliseconds.
	DurationMs int64 `json:"duration_ms"`
	// DryRun reports whether writes were suppressed.
	DryRun bool `json:"dry_run"`
	// Consumers holds one entry per configured consumer, in registration order.
	Consumers []ConsumerReport `json:"consumers"`
}

// ConsumerReport is the outcome of one consumer's reconciliation.
type ConsumerReport struct {
	// App is the consumer's name.
	App string `json:"app"`
	// Error is set when the consumer's sync failed as a whole
	// (e.g. unreachable, bad credentials). Sibling consumers still complete.
	Error string `json:"error,omitempty"`
	// Result holds the per-entry outcome when the sync ran.
	Result *reconcile.Result `json:"result,omitempty"`
}

// Service orchestrates reconciliation runs across all configured consumers.
type Service struct {
	source  Source
	targets []Target
	rules   rules.RuleSet
	log     *zap.Logger

	// sf collapses concurrent triggers (scheduler tick + API call) into one run.
	sf singleflight.Group

	mu   sync.RWMutex
	last *RunReport
}

// NewService creates the sync service.
func NewService(source Source, targets []Target, rs rules.RuleSet, log *zap.Logger) *Service {
	return &Service{
		source:  source,
		targets: targets,
		rules:   rs,
		log:     log,
	}
}

// Run executes one reconciliation run. Concurrent callers share a single run
// and receive the same report. The only error return is a failure to fetch
// the source catalog, which is fatal for the whole run; per-consumer failures
// are recorded in the report.
func (s *Service) Run(ctx context.Context, dryRun bool) (*RunReport, error) {
	v, err, _ := s.sf.Do("sync", func() (any, error) {
		return s.run(ctx, dryRun)
	})
	if err != nil {
		return nil, err
	}
	return v.(*RunReport), nil
}

// LastReport returns the most recent run report, or nil if no run completed.
func (s *Service) LastReport() *RunReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *Service) run(ctx context.Context, dryRun bool) (*RunReport, error) {
	runID := uuid.NewString()
	log := logger.WithRunID(s.log, runID)
	started := time.Now()

	log.Info("starting reconciliation run",
		zap.Int("consumers", len(s.targets)),
		zap.Int("rules", s.rules.Len()),
		zap.Bool("dry_run", dryRun),
	)

	// Without a source catalog no consumer can be reconciled.
	catalog, err := s.source.FetchCatalog(ctx)
	if err != nil {
		log.Error("failed to fetch source catalog, aborting run", zap.Error(err))
		return nil, err
	}
	log.Info("fetched source catalog", zap.Int("indexers", len(catalog)))

	engine := &reconcile.Engine{Rules: s.rules, DryRun: dryRun, Log: log}

	// One goroutine per consumer. A consumer's total failure is captured in
	// its own report slot and never prevents the others from completing.
	reports := make([]ConsumerReport, len(s.targets))
	var wg sync.WaitGroup
	for i, target := range s.targets {
		wg.Add(1)
		go func(i int, target Target) {
			defer wg.Done()

			reports[i].App = target.App.Name()
			res, err := engine.Reconcile(ctx, target.App, target.Client, catalog)
			if err != nil {
				log.Error("consumer sync failed",
					zap.String("app", target.App.Name()),
					zap.Error(err),
				)
				reports[i].Error = err.Error()
				return
			}
			reports[i].Result = res
		}(i, target)
	}
	wg.Wait()

	report := &RunReport{
		RunID:      runID,
		Started:    started,
		DurationMs: time.Since(started).Milliseconds(),
		DryRun:     dryRun,
		Consumers:  reports,
	}

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	logRunSummary(log, report)
	return report, nil
}

func logRunSummary(log *zap.Logger, report *RunReport) {
	for _, c := range report.Consumers {
		if c.Error != "" {
			log.Warn("consumer summary", zap.String("app", c.App), zap.String("error", c.Error))
			continue
		}
		log.Info("consumer summary",
			zap.String("app", c.App),
			zap.Int("created", len(c.Result.Created)),
			zap.Int("updated", len(c.Result.Updated)),
			zap.Int("skipped", len(c.Result.Skipped)),
			zap.Int("orphaned", len(c.Result.Orphaned)),
			zap.Int("failed", len(c.Result.Failed)),
		)
	}
	log.Info("reconciliation run finished", zap.Int64("duration_ms", report.DurationMs))
}
