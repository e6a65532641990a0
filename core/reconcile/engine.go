package reconcile

import (
	"context"
	"sync"

	"indexer-sync/core/policy"
	"indexer-sync/core/rules"

	"go.uber.org/zap"
)

// Engine reconciles one consumer at a time against a source catalog.
// The rule set is read-only and safely shared; a single Engine may be used
// for several consumers concurrently.
type Engine struct {
	// Rules is the override rule table for this run.
	Rules rules.RuleSet

	// DryRun computes and reports the diff without issuing any writes.
	DryRun bool

	// Log receives per-entry outcomes. Required.
	Log *zap.Logger
}

// Reconcile diffs the consumer's live state against the catalog and dispatches
// the resulting create and update batches. The two batches are independent
// fan-outs with per-entry error capture: one entry's failure is logged and
// recorded, never aborting its siblings. Orphans are reported only.
//
// The only error return is a *FetchError for the consumer's state; everything
// downstream of a successful fetch is absorbed into the Result.
func (e *Engine) Reconcile(ctx context.Context, app App, client AppClient, catalog []SourceIndexer) (*Result, error) {
	log := e.Log.With(zap.String("app", app.Name()))

	existing, err := client.FetchIndexers(ctx)
	if err != nil {
		return nil, &FetchError{Target: app.Name(), Err: err}
	}

	diff := ComputeDiff(app, catalog, existing, e.Rules)

	res := &Result{}
	for _, src := range diff.Skipped {
		log.Debug("indexer not wanted, skipping",
			zap.Int("indexer_id", src.ID),
			zap.String("indexer", src.Name),
		)
		res.Skipped = append(res.Skipped, src.Name)
	}
	for _, orphan := range diff.Orphans {
		log.Warn("orphaned indexer requires manual removal",
			zap.Int("indexer_id", orphan.ID),
			zap.String("indexer", orphan.Name),
		)
		res.Orphaned = append(res.Orphaned, orphan.ID)
	}

	if e.DryRun {
		for _, src := range diff.ToCreate {
			log.Info("would create indexer", zap.String("indexer", src.Name))
			res.Created = append(res.Created, src.Name)
		}
		for _, cand := range diff.ToUpdate {
			log.Info("would update indexer", zap.String("indexer", cand.Source.Name))
			res.Updated = append(res.Updated, cand.Source.Name)
		}
		return res, nil
	}

	// Creates first, then updates. The ordering between the two batches is
	// incidental; entries within a batch carry no dependency on each other.
	e.scatterCreates(ctx, app, client, diff.ToCreate, res, log)
	e.scatterUpdates(ctx, app, client, diff.ToUpdate, res, log)

	return res, nil
}

// bodyCategories computes the category sets sent on the write path: the
// naturally-overlapping subset plus every override-forced category.
func (e *Engine) bodyCategories(app App, src SourceIndexer) ([]int, []int) {
	cats := policy.ExpectedCategories(app.WantedCategories(), src.Categories)
	return policy.ApplyOverrides(e.Rules, app.Name(), src.ID, cats, nil)
}

func (e *Engine) scatterCreates(ctx context.Context, app App, client AppClient, toCreate []SourceIndexer, res *Result, log *zap.Logger) {
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, src := range toCreate {
		wg.Add(1)
		go func(src SourceIndexer) {
			defer wg.Done()

			cats, anime := e.bodyCategories(app, src)
			err := client.CreateIndexer(ctx, src, cats, anime)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				werr := &WriteError{App: app.Name(), Indexer: src.Name, Err: err}
				log.Error("failed to create indexer",
					zap.String("indexer", src.Name),
					zap.Error(werr),
				)
				res.Failed = append(res.Failed, src.Name)
				return
			}
			log.Info("created indexer", zap.String("indexer", src.Name))
			res.Created = append(res.Created, src.Name)
		}(src)
	}

	wg.Wait()
}

func (e *Engine) scatterUpdates(ctx context.Context, app App, client AppClient, toUpdate []UpdateCandidate, res *Result, log *zap.Logger) {
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, cand := range toUpdate {
		wg.Add(1)
		go func(cand UpdateCandidate) {
			defer wg.Done()

			cats, anime := e.bodyCategories(app, cand.Source)
			err := client.UpdateIndexer(ctx, cand.Existing.AppID, cand.Source, cats, anime)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				werr := &WriteError{App: app.Name(), Indexer: cand.Source.Name, Err: err}
				log.Error("failed to update indexer",
					zap.String("indexer", cand.Source.Name),
					zap.Error(werr),
				)
				res.Failed = append(res.Failed, cand.Source.Name)
				return
			}
			log.Info("updated indexer", zap.String("indexer", cand.Source.Name))
			res.Updated = append(res.Updated, cand.Source.Name)
		}(cand)
	}

	wg.Wait()
}
