package recommender

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFeatureIndexCorpusVacio(t *testing.T) {
	ix := BuildFeatureIndex(nil)
	require.NotNil(t, ix)
	assert.Zero(t, ix.Len())
	assert.False(t, ix.Has("Python Tutorial"))
	assert.Empty(t, ix.MostSimilarItems("Python Tutorial", 5))
}

func TestBuildFeatureIndexCubreTodoElCatalogo(t *testing.T) {
	c := NewCatalog(SeedItems())
	ix := BuildFeatureIndex(c.Items())

	assert.Equal(t, c.Len(), ix.Len())
	for _, it := range c.Items() {
		assert.True(t, ix.Has(it.Name), it.Name)
	}
	assert.Greater(t, ix.VocabSize(), 0)
}

func TestVectoresNormalizados(t *testing.T) {
	c := NewCatalog(SeedItems())
	ix := BuildFeatureIndex(c.Items())

	for _, it := range c.Items() {
		vec := ix.Vector(it.Name)
		require.NotEmpty(t, vec, it.Name)

		var sum float64
		for _, v := range vec {
			sum += v * v
		}
		assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-9, it.Name)
	}
}

func TestCosine(t *testing.T) {
	a := map[int]float64{0: 1, 1: 1}
	b := map[int]float64{0: 1, 1: 1}
	ortogonal := map[int]float64{2: 1}

	assert.InDelta(t, 1.0, Cosine(a, b), 1e-9)
	assert.Zero(t, Cosine(a, ortogonal))
	assert.Zero(t, Cosine(a, nil))
}

func TestMostSimilarItemsAgrupaPorContenido(t *testing.T) {
	c := NewCatalog(SeedItems())
	ix := BuildFeatureIndex(c.Items())

	similares := ix.MostSimilarItems("Pop Music Mix 2024", 2)
	require.Len(t, similares, 2)

	// los otros items de Music comparten "music" y la categoría en el texto
	assert.Contains(t, similares, "Arabic Music Classics")
	assert.Contains(t, similares, "Jazz Relaxation Playlist")
	assert.NotContains(t, similares, "Pop Music Mix 2024")
}
