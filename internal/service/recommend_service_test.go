package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YazanAlgaleez/flowmart-ai/internal/cache"
	"github.com/YazanAlgaleez/flowmart-ai/internal/recommender"
)

// newTestService arma el stack completo en modo degradado: sin Mongo
// (repos nil) y sin Redis (cache deshabilitado).
func newTestService(t *testing.T) (*RecommendService, *recommender.Engine) {
	t.Helper()

	catalogSvc := NewCatalogService(nil)
	catalog := catalogSvc.Load(context.Background())
	require.Equal(t, "local", catalogSvc.Source)

	engine := recommender.NewEngine(catalog)
	hybrid := recommender.NewHybridRecommender(recommender.BuildFeatureIndex(catalog.Items()))
	svc := NewRecommendService(engine, hybrid, recommender.NewAnalytics(), cache.Disabled(), catalogSvc, nil, nil)
	return svc, engine
}

func TestRecordInteractionValidaUsuarioEItem(t *testing.T) {
	svc, engine := newTestService(t)
	ctx := context.Background()

	err := svc.RecordInteraction(ctx, "nadie", "Python Tutorial", recommender.ActionView, 0)
	assert.ErrorIs(t, err, ErrUnknownUser)

	engine.AddUser("user_001", "ana")
	err = svc.RecordInteraction(ctx, "user_001", "Item Fantasma", recommender.ActionView, 0)
	assert.ErrorIs(t, err, ErrUnknownItem)

	err = svc.RecordInteraction(ctx, "user_001", "Python Tutorial", recommender.ActionView, 0)
	assert.NoError(t, err)
}

func TestRecommendFlujoCompleto(t *testing.T) {
	svc, engine := newTestService(t)
	ctx := context.Background()

	engine.AddUser("user_001", "ana")
	require.NoError(t, svc.RecordInteraction(ctx, "user_001", "Python Tutorial", recommender.ActionWatch, 45))

	items, err := svc.Recommend(ctx, RecRequest{UserID: "user_001", N: 5})
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.LessOrEqual(t, len(items), 5)

	// el watch largo vuelve Programming interés: su item lidera
	assert.Equal(t, "Python Tutorial", items[0])
}

func TestRecommendUsuarioDesconocidoListaVacia(t *testing.T) {
	svc, _ := newTestService(t)

	items, err := svc.Recommend(context.Background(), RecRequest{UserID: "nadie", N: 5})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecommendNormalizaN(t *testing.T) {
	svc, engine := newTestService(t)
	ctx := context.Background()

	engine.AddUser("user_001", "ana")
	require.NoError(t, svc.RecordInteraction(ctx, "user_001", "Python Tutorial", recommender.ActionWatch, 45))

	porDefecto, err := svc.Recommend(ctx, RecRequest{UserID: "user_001", N: 0})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(porDefecto), DefaultN)

	acotado, err := svc.Recommend(ctx, RecRequest{UserID: "user_001", N: 1000})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(acotado), MaxN)
}

func TestRecommendHibridoAgregaColaborativas(t *testing.T) {
	svc, engine := newTestService(t)
	ctx := context.Background()

	engine.AddUser("user_001", "ana")
	engine.AddUser("user_002", "bruno")

	// bruno comparte un item de otra categoría; ana solo mira Programming
	require.NoError(t, svc.RecordInteraction(ctx, "user_001", "Python Tutorial", recommender.ActionWatch, 45))
	require.NoError(t, svc.RecordInteraction(ctx, "user_002", "Pop Music Mix 2024", recommender.ActionShare, 0))

	items, err := svc.Recommend(ctx, RecRequest{UserID: "user_001", N: 20, Hybrid: true})
	require.NoError(t, err)
	assert.Contains(t, items, "Pop Music Mix 2024")
}

func TestRecordRatingNoTocaTendencias(t *testing.T) {
	svc, engine := newTestService(t)
	ctx := context.Background()

	engine.AddUser("user_001", "ana")
	require.NoError(t, svc.RecordInteraction(ctx, "user_001", "Python Tutorial", "rating_5", 0))

	trending, err := svc.Trending(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, trending)

	// pero sí alimenta la afinidad del camino colaborativo
	stats, ok := svc.Stats("user_001")
	require.True(t, ok)
	assert.Equal(t, 1, stats.EventCount)
}

func TestTrendingRefejaInteracciones(t *testing.T) {
	svc, engine := newTestService(t)
	ctx := context.Background()

	engine.AddUser("user_001", "ana")
	require.NoError(t, svc.RecordInteraction(ctx, "user_001", "Python Tutorial", recommender.ActionShare, 0))
	require.NoError(t, svc.RecordInteraction(ctx, "user_001", "Pop Music Mix 2024", recommender.ActionView, 0))

	trending, err := svc.Trending(ctx, 1)
	require.NoError(t, err)
	require.Len(t, trending, 1)
	assert.Equal(t, "Python Tutorial", trending[0].Item)
	assert.Equal(t, 5, trending[0].Score)
}

func TestStatsUsuarioDesconocido(t *testing.T) {
	svc, _ := newTestService(t)
	_, ok := svc.Stats("nadie")
	assert.False(t, ok)
}

func TestHistorySinStoreDevuelveVacio(t *testing.T) {
	svc, _ := newTestService(t)
	hist, err := svc.History(context.Background(), "user_001", 10)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestReportCuentaTotales(t *testing.T) {
	svc, engine := newTestService(t)
	ctx := context.Background()

	engine.AddUser("user_001", "ana")
	engine.AddUser("user_002", "bruno")
	require.NoError(t, svc.RecordInteraction(ctx, "user_001", "Python Tutorial", recommender.ActionView, 0))
	require.NoError(t, svc.RecordInteraction(ctx, "user_002", "Python Tutorial", recommender.ActionLike, 0))

	report := svc.Report()
	assert.Equal(t, 2, report.TotalUsers)
	assert.Equal(t, 2, report.TotalInteractions)
	assert.Equal(t, 2, report.PopularCategories["Programming"])

	popular := svc.PopularByDashboard(5)
	require.NotEmpty(t, popular)
	assert.Equal(t, "Python Tutorial", popular[0].Item)
	assert.Equal(t, 2, popular[0].Count)
}
