package syncer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"indexer-sync/core/reconcile"
	"indexer-sync/core/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	catalog []reconcile.SourceIndexer
	err     error
	calls   atomic.Int32
	block   chan struct{} // if set, FetchCatalog waits until closed
}

func (s *fakeSource) FetchCatalog(ctx context.Context) ([]reconcile.SourceIndexer, error) {
	s.calls.Add(1)
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

type fakeApp struct {
	name   string
	wanted []int
}

func (a *fakeApp) Name() string            { return a.name }
func (a *fakeApp) WantedCategories() []int { return a.wanted }
func (a *fakeApp) SameSettings(existing reconcile.ConsumerIndexer, src reconcile.SourceIndexer) bool {
	return existing.Enabled
}

type fakeTargetClient struct {
	fetchErr error
	mu       sync.Mutex
	creates  int
}

func (c *fakeTargetClient) FetchIndexers(ctx context.Context) ([]reconcile.ConsumerIndexer, error) {
	if c.fetchErr != nil {
		return nil, c.fetchErr
	}
	return nil, nil
}

func (c *fakeTargetClient) CreateIndexer(ctx context.Context, src reconcile.SourceIndexer, cats, anime []int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creates++
	return nil
}

func (c *fakeTargetClient) UpdateIndexer(ctx context.Context, appID int64, src reconcile.SourceIndexer, cats, anime []int) error {
	return nil
}

func TestRun_ConsumerFailureDoesNotBlockSiblings(t *testing.T) {
	source := &fakeSource{catalog: []reconcile.SourceIndexer{{ID: 1, Name: "alpha", Categories: []int{2000}}}}

	healthy := &fakeTargetClient{}
	broken := &fakeTargetClient{fetchErr: fmt.Errorf("connection refused")}

	svc := NewService(source, []Target{
		{App: &fakeApp{name: "radarr", wanted: []int{2000}}, Client: healthy},
		{App: &fakeApp{name: "sonarr", wanted: []int{2000}}, Client: broken},
	}, rules.NewRuleSet(), zap.NewNop())

	report, err := svc.Run(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, report.Consumers, 2)

	assert.Empty(t, report.Consumers[0].Error)
	require.NotNil(t, report.Consumers[0].Result)
	assert.Equal(t, []string{"alpha"}, report.Consumers[0].Result.Created)

	assert.NotEmpty(t, report.Consumers[1].Error)
	assert.Nil(t, report.Consumers[1].Result)
	assert.Equal(t, 1, healthy.creates)
}

func TestRun_SourceFailureIsFatal(t *testing.T) {
	source := &fakeSource{err: fmt.Errorf("prowlarr unreachable")}
	client := &fakeTargetClient{}

	svc := NewService(source, []Target{
		{App: &fakeApp{name: "radarr", wanted: []int{2000}}, Client: client},
	}, rules.NewRuleSet(), zap.NewNop())

	_, err := svc.Run(context.Background(), false)
	require.Error(t, err)

	// No consumer work happened and no report was stored
	assert.Equal(t, 0, client.creates)
	assert.Nil(t, svc.LastReport())
}

func TestRun_ConcurrentTriggersShareOneRun(t *testing.T) {
	source := &fakeSource{block: make(chan struct{})}

	svc := NewService(source, nil, rules.NewRuleSet(), zap.NewNop())

	var wg sync.WaitGroup
	reports := make([]*RunReport, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := svc.Run(context.Background(), false)
			require.NoError(t, err)
			reports[i] = r
		}(i)
	}

	// Let both callers pile onto the in-flight run, then release it
	time.Sleep(50 * time.Millisecond)
	close(source.block)
	wg.Wait()

	assert.Equal(t, int32(1), source.calls.Load())
	assert.Same(t, reports[0], reports[1])
}

func TestRun_StoresLastReport(t *testing.T) {
	source := &fakeSource{}
	svc := NewService(source, nil, rules.NewRuleSet(), zap.NewNop())

	report, err := svc.Run(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.NotEmpty(t, report.RunID)
	assert.Same(t, report, svc.LastReport())
}
