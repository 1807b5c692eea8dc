package recommender

import "sort"

// TrendingEntry es un item con su score agregado de tendencia.
type TrendingEntry struct {
	Item  string `json:"item" bson:"item"`
	Score int    `json:"score" bson:"score"`
}

// TrendingTracker acumula todas las acciones registradas y recalcula el
// ranking global completo en cada Recompute. El recálculo es O(total de
// eventos), aceptable a escala demo; el resultado queda cacheado para
// las lecturas.
type TrendingTracker struct {
	order   []string            // orden de primera aparición (desempate)
	actions map[string][]string // item -> acciones registradas
	last    []TrendingEntry     // último resultado de Recompute
}

func NewTrendingTracker() *TrendingTracker {
	return &TrendingTracker{actions: make(map[string][]string)}
}

func (t *TrendingTracker) RecordAction(item, action string) {
	if _, ok := t.actions[item]; !ok {
		t.order = append(t.order, item)
	}
	t.actions[item] = append(t.actions[item], action)
}

func trendingWeight(action string) int {
	switch action {
	case ActionView:
		return 1
	case ActionLike:
		return 3
	case ActionShare:
		return 5
	case ActionWatch:
		return 2
	}
	return 0
}

// Recompute recalcula el ranking desde cero: score = 1*views + 3*likes +
// 5*shares + 2*watches. Determinístico e idempotente; empates se resuelven
// por orden de primera aparición (sort estable).
func (t *TrendingTracker) Recompute() []TrendingEntry {
	entries := make([]TrendingEntry, 0, len(t.order))
	for _, item := range t.order {
		score := 0
		for _, action := range t.actions[item] {
			score += trendingWeight(action)
		}
		entries = append(entries, TrendingEntry{Item: item, Score: score})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })

	t.last = entries
	return entries
}

// Snapshot devuelve el último ranking calculado, truncado a limit.
// limit <= 0 devuelve todo.
func (t *TrendingTracker) Snapshot(limit int) []TrendingEntry {
	out := append([]TrendingEntry(nil), t.last...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
