package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEncuentraPorNombreCategoriaYTags(t *testing.T) {
	c := NewCatalog(SeedItems())

	results := c.Search("python")
	require.NotEmpty(t, results)

	// "Python Tutorial" matchea nombre (+3), tag "python" (+1) -> arriba del ranking
	assert.Equal(t, "Python Tutorial", results[0].Item.Name)
	assert.GreaterOrEqual(t, results[0].Score, 3)

	for _, r := range results {
		assert.Greater(t, r.Score, 0, "score 0 no debe aparecer")
	}
}

func TestSearchSinResultados(t *testing.T) {
	c := NewCatalog(SeedItems())
	assert.Empty(t, c.Search("zzzzz"))
}

func TestItemsByCategoryOrdenDeInsercion(t *testing.T) {
	c := NewCatalog(SeedItems())

	gaming := c.ItemsByCategory("Gaming")
	assert.Equal(t, []string{"Gaming Laptop Review 2024", "Valorant Gameplay Tips", "Best RPG Games 2024"}, gaming)

	assert.Empty(t, c.ItemsByCategory("NoExiste"))
}

func TestItemsByTagCaseSensitive(t *testing.T) {
	c := NewCatalog(SeedItems())

	conMusic := c.ItemsByTag("music")
	assert.Len(t, conMusic, 3)

	// el match de tag es exacto tal como se guardó
	assert.Empty(t, c.ItemsByTag("Music"))
}

func TestSimilarToExcluyeAlPropioItem(t *testing.T) {
	c := NewCatalog(SeedItems())

	similares := c.SimilarTo("Python Tutorial", 5)
	assert.LessOrEqual(t, len(similares), 5)
	assert.NotContains(t, similares, "Python Tutorial")
	assert.NotEmpty(t, similares)
}

func TestSimilarToItemDesconocido(t *testing.T) {
	c := NewCatalog(SeedItems())
	assert.Empty(t, c.SimilarTo("No Existe", 5))
}

func TestSimilarToKNoPositivoDevuelveTodo(t *testing.T) {
	c := NewCatalog(SeedItems())

	// k <= 0 no recorta (y no explota): el resto del catálogo completo
	assert.Len(t, c.SimilarTo("Python Tutorial", 0), c.Len()-1)
	assert.Len(t, c.SimilarTo("Python Tutorial", -1), c.Len()-1)
}

func TestSimilarToPrefiereMismaCategoria(t *testing.T) {
	c := NewCatalog(SeedItems())

	// los otros dos items de Gaming comparten categoría (+2) y tags
	similares := c.SimilarTo("Valorant Gameplay Tips", 2)
	require.Len(t, similares, 2)
	assert.Contains(t, similares, "Gaming Laptop Review 2024")
	assert.Contains(t, similares, "Best RPG Games 2024")
}

func TestUpdatePopularityPesosYClamp(t *testing.T) {
	c := NewCatalog(SeedItems())
	it, _ := c.Get("Python Tutorial")
	require.InDelta(t, 0.5, it.Popularity, 1e-9)

	c.UpdatePopularity("Python Tutorial", ActionView)
	assert.InDelta(t, 0.51, it.Popularity, 1e-9)
	assert.Equal(t, 1, it.Views)

	c.UpdatePopularity("Python Tutorial", ActionLike)
	assert.InDelta(t, 0.56, it.Popularity, 1e-9)
	assert.Equal(t, 1, it.Likes)

	c.UpdatePopularity("Python Tutorial", ActionShare)
	assert.InDelta(t, 0.66, it.Popularity, 1e-9)
	// share no suma views ni likes
	assert.Equal(t, 1, it.Views)
	assert.Equal(t, 1, it.Likes)

	// muchas shares seguidas: queda acotado en 1
	for i := 0; i < 50; i++ {
		c.UpdatePopularity("Python Tutorial", ActionShare)
	}
	assert.LessOrEqual(t, it.Popularity, 1.0)
	assert.Equal(t, 1.0, it.Popularity)
}

func TestUpdatePopularityItemDesconocidoEsNoOp(t *testing.T) {
	c := NewCatalog(SeedItems())
	before := c.Stats()

	c.UpdatePopularity("No Existe", ActionLike)

	assert.Equal(t, before, c.Stats())
}

func TestPopularItems(t *testing.T) {
	c := NewCatalog(SeedItems())
	c.UpdatePopularity("Jazz Relaxation Playlist", ActionShare)
	c.UpdatePopularity("Jazz Relaxation Playlist", ActionShare)

	top := c.PopularItems(3)
	require.Len(t, top, 3)
	assert.Equal(t, "Jazz Relaxation Playlist", top[0])
}

func TestPopularItemsLimitNoPositivoDevuelveTodo(t *testing.T) {
	c := NewCatalog(SeedItems())

	assert.Len(t, c.PopularItems(0), c.Len())
	assert.Len(t, c.PopularItems(-1), c.Len())
}

func TestStats(t *testing.T) {
	c := NewCatalog(SeedItems())
	st := c.Stats()

	assert.Equal(t, 25, st.TotalItems)
	assert.Equal(t, 12, st.CategoriesCount)
	assert.InDelta(t, 0.5, st.AvgPopularity, 1e-9)
	assert.Zero(t, st.TotalViews)
}
