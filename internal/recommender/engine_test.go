package recommender

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	e := NewEngine(NewCatalog(SeedItems()))
	e.AddUser("u1", "ahmed")
	e.AddUser("u2", "sara")
	return e
}

func TestRecordInteractionActualizaTodo(t *testing.T) {
	e := newTestEngine()

	e.RecordInteraction("u1", "Python Tutorial", ActionLike, 45)

	// perfil
	sum, ok := e.Summary("u1")
	require.True(t, ok)
	assert.Equal(t, 1, sum.EventCount)
	assert.Equal(t, []string{"Programming"}, sum.Interests)

	// popularidad del catálogo
	it, _ := e.Catalog().Get("Python Tutorial")
	assert.InDelta(t, 0.55, it.Popularity, 1e-9)

	// tendencias ya recalculadas
	trending := e.TrendingSnapshot(0)
	require.Len(t, trending, 1)
	assert.Equal(t, TrendingEntry{Item: "Python Tutorial", Score: 3}, trending[0])
}

func TestRecordInteractionDesconocidosEsNoOp(t *testing.T) {
	e := newTestEngine()

	e.RecordInteraction("nadie", "Python Tutorial", ActionLike, 45)
	e.RecordInteraction("u1", "No Existe", ActionLike, 45)

	sum, _ := e.Summary("u1")
	assert.Zero(t, sum.EventCount)
	assert.Empty(t, e.TrendingSnapshot(0))
}

func TestClampDePopularidadBajoCualquierSecuencia(t *testing.T) {
	e := newTestEngine()

	acciones := []string{ActionView, ActionLike, ActionShare, ActionWatch}
	for i := 0; i < 100; i++ {
		e.RecordInteraction("u1", "Jazz Relaxation Playlist", acciones[i%len(acciones)], 60)
		e.RecordInteraction("u2", "Yoga for Beginners", acciones[(i+1)%len(acciones)], 10)
	}

	for _, it := range e.Catalog().Items() {
		assert.GreaterOrEqual(t, it.Popularity, 0.0, it.Name)
		assert.LessOrEqual(t, it.Popularity, 1.0, it.Name)
	}
}

func TestRecommendUsuarioDesconocido(t *testing.T) {
	e := newTestEngine()
	assert.Empty(t, e.Recommend("nadie", 5))
}

func TestRecommendNNoPositivoNoExplota(t *testing.T) {
	e := newTestEngine()
	e.RecordInteraction("u1", "Python Tutorial", ActionWatch, 60)

	assert.NotPanics(t, func() {
		e.Recommend("u1", 0)
		e.Recommend("u1", -1)
	})
}

func TestRecommendInteresesPrimeroLuegoTendencias(t *testing.T) {
	e := newTestEngine()

	// u1 se interesa por Gaming; u2 hace tender un item de Cooking
	e.RecordInteraction("u1", "Valorant Gameplay Tips", ActionWatch, 120)
	e.RecordInteraction("u2", "Dessert Recipes", ActionShare, 0)
	e.RecordInteraction("u2", "Dessert Recipes", ActionShare, 0)

	recs := e.Recommend("u1", 5)

	// primero las 3 de Gaming en orden de catálogo, después la tendencia
	// de Cooking (único otro item con señal)
	require.Equal(t, []string{
		"Gaming Laptop Review 2024", "Valorant Gameplay Tips", "Best RPG Games 2024",
		"Dessert Recipes",
	}, recs)
}

func TestRecommendNoRepiteYRespetaN(t *testing.T) {
	e := newTestEngine()

	e.RecordInteraction("u1", "Pop Music Mix 2024", ActionLike, 60)
	e.RecordInteraction("u1", "Pop Music Mix 2024", ActionWatch, 60)
	e.RecordInteraction("u2", "Arabic Music Classics", ActionShare, 60)

	for _, n := range []int{1, 3, 10, 100} {
		recs := e.Recommend("u1", n)
		assert.LessOrEqual(t, len(recs), n)

		vistos := make(map[string]struct{})
		for _, r := range recs {
			_, repetido := vistos[r]
			assert.False(t, repetido, "item repetido: %s", r)
			vistos[r] = struct{}{}
		}
	}
}

func TestRecordRatingNoTocaTendencias(t *testing.T) {
	e := newTestEngine()

	e.RecordRating("u1", "Python Tutorial", 5)

	assert.Empty(t, e.TrendingSnapshot(0))
	events := e.UserEvents("u1")
	require.Len(t, events, 1)
	assert.Equal(t, "rating_5", events[0].Action)
	assert.Equal(t, 5, events[0].Rating)
}

func TestInteraccionesConcurrentes(t *testing.T) {
	e := newTestEngine()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			user := "u1"
			if n%2 == 0 {
				user = "u2"
			}
			for j := 0; j < 50; j++ {
				e.RecordInteraction(user, "Python Tutorial", ActionView, 0)
				e.Recommend(user, 5)
				e.TrendingSnapshot(3)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 400, e.TotalInteractions())
	trending := e.TrendingSnapshot(0)
	require.Len(t, trending, 1)
	assert.Equal(t, 400, trending[0].Score)
}

func TestSearchCatalogDevuelveCopias(t *testing.T) {
	e := newTestEngine()

	results := e.SearchCatalog("python")
	require.NotEmpty(t, results)
	antes := results[0].Item.Popularity

	// mutar el catálogo no toca el snapshot ya devuelto
	e.RecordInteraction("u1", "Python Tutorial", ActionShare, 0)

	assert.InDelta(t, antes, results[0].Item.Popularity, 1e-9)
	vivo, _ := e.GetItem("Python Tutorial")
	assert.Greater(t, vivo.Popularity, antes)
}

func TestGetItemDevuelveCopia(t *testing.T) {
	e := newTestEngine()

	copia, ok := e.GetItem("Python Tutorial")
	require.True(t, ok)

	e.RecordInteraction("u1", "Python Tutorial", ActionView, 0)

	assert.Zero(t, copia.Views)
	vivo, _ := e.GetItem("Python Tutorial")
	assert.Equal(t, 1, vivo.Views)
}

func TestListItemsDevuelveCopias(t *testing.T) {
	e := newTestEngine()

	items := e.ListItems()
	require.Len(t, items, e.Catalog().Len())

	e.RecordInteraction("u1", items[0].Name, ActionLike, 0)
	assert.Zero(t, items[0].Likes)
}

func TestCategoryCountsYTotales(t *testing.T) {
	e := newTestEngine()

	e.RecordInteraction("u1", "Python Tutorial", ActionView, 0)
	e.RecordInteraction("u1", "Pop Music Mix 2024", ActionLike, 45)
	e.RecordInteraction("u2", "Arabic Music Classics", ActionView, 0)

	counts := e.CategoryCounts()
	assert.Equal(t, 1, counts["Programming"])
	assert.Equal(t, 2, counts["Music"])
	assert.Equal(t, 3, e.TotalInteractions())
}
