package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputePesosPorAccion(t *testing.T) {
	tr := NewTrendingTracker()

	// score = 1*views + 3*likes + 5*shares + 2*watches
	tr.RecordAction("A", ActionView)
	tr.RecordAction("A", ActionLike)
	tr.RecordAction("A", ActionShare)
	tr.RecordAction("A", ActionWatch)
	tr.RecordAction("B", ActionView)
	tr.RecordAction("B", ActionView)

	entries := tr.Recompute()
	require.Len(t, entries, 2)
	assert.Equal(t, TrendingEntry{Item: "A", Score: 11}, entries[0])
	assert.Equal(t, TrendingEntry{Item: "B", Score: 2}, entries[1])
}

func TestRecomputeEsIdempotente(t *testing.T) {
	tr := NewTrendingTracker()
	tr.RecordAction("A", ActionLike)
	tr.RecordAction("B", ActionShare)

	primera := tr.Recompute()
	segunda := tr.Recompute()
	assert.Equal(t, primera, segunda)
}

func TestRecomputeDesempataPorPrimeraAparicion(t *testing.T) {
	tr := NewTrendingTracker()

	// mismo score, B se registró primero
	tr.RecordAction("B", ActionLike)
	tr.RecordAction("A", ActionLike)
	tr.RecordAction("C", ActionLike)

	entries := tr.Recompute()
	require.Len(t, entries, 3)
	assert.Equal(t, "B", entries[0].Item)
	assert.Equal(t, "A", entries[1].Item)
	assert.Equal(t, "C", entries[2].Item)
}

func TestSnapshotTruncaYCachea(t *testing.T) {
	tr := NewTrendingTracker()
	tr.RecordAction("A", ActionShare)
	tr.RecordAction("B", ActionView)
	tr.RecordAction("C", ActionView)
	tr.Recompute()

	assert.Len(t, tr.Snapshot(2), 2)
	assert.Len(t, tr.Snapshot(0), 3)
	assert.Equal(t, "A", tr.Snapshot(1)[0].Item)

	// acciones nuevas no cambian el snapshot hasta el próximo Recompute
	tr.RecordAction("D", ActionShare)
	assert.Len(t, tr.Snapshot(0), 3)
	tr.Recompute()
	assert.Len(t, tr.Snapshot(0), 4)
}
