package prowlarr

import (
	"context"
	"fmt"
	"testing"

	"indexer-sync/core/reconcile"
	"indexer-sync/core/transport/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFlattenCategories(t *testing.T) {
	tree := []category{
		{ID: 5000, Name: "TV", SubCategories: []category{
			{ID: 5030, Name: "TV/SD"},
			{ID: 5040, Name: "TV/HD"},
		}},
		{ID: 8000, Name: "Other"},
		// Duplicate top-level id collapses
		{ID: 5000, Name: "TV again"},
	}

	assert.Equal(t, []int{5000, 5030, 5040, 8000}, flattenCategories(tree))
	assert.Empty(t, flattenCategories(nil))
}

func TestConfig_FeedURL(t *testing.T) {
	cfg := Config{URL: "http://prowlarr:9696/"}
	assert.Equal(t, "http://prowlarr:9696/12/api", cfg.FeedURL(12))
}

func TestFetchCatalog(t *testing.T) {
	cfg := Config{URL: "http://prowlarr:9696", ApiKey: "k"}

	client := new(mocks.Client)
	client.On("GetJSON", mock.Anything, "http://prowlarr:9696/api/v1/indexer", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*[]indexerRecord)
			*out = []indexerRecord{
				{
					ID:     1,
					Name:   "alpha",
					Enable: true,
					Capabilities: capabilities{Categories: []category{
						{ID: 2000, SubCategories: []category{{ID: 2030}}},
					}},
				},
				{ID: 2, Name: "disabled", Enable: false},
				{ID: 0, Name: "broken", Enable: true}, // malformed: no id
			}
		}).
		Return(nil)

	catalog, err := NewClientWith(cfg, client, zap.NewNop()).FetchCatalog(context.Background())
	require.NoError(t, err)

	// Disabled and malformed records are dropped, the rest of the batch proceeds
	require.Len(t, catalog, 1)
	assert.Equal(t, 1, catalog[0].ID)
	assert.Equal(t, []int{2000, 2030}, catalog[0].Categories)
}

func TestFetchCatalog_FetchErrorIsFatal(t *testing.T) {
	cfg := Config{URL: "http://prowlarr:9696", ApiKey: "k"}

	client := new(mocks.Client)
	client.On("GetJSON", mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("connection refused"))

	_, err := NewClientWith(cfg, client, zap.NewNop()).FetchCatalog(context.Background())
	require.Error(t, err)

	var fe *reconcile.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "prowlarr", fe.Target)
}
