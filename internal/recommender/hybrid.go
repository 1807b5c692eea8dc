package recommender

import (
	"sort"
	"sync"
)

// cuántos usuarios "similares" mira el filtrado colaborativo por defecto
const defaultSimilarUsers = 5

// cuántos items de mayor afinidad aporta cada usuario similar
const topAffinityItems = 5

// HybridRecommender mezcla candidatos content-based con una pasada
// colaborativa sobre las afinidades de usuarios similares.
type HybridRecommender struct {
	mu    sync.Mutex
	index *FeatureIndex

	affinities    map[string]map[string]float64 // userId -> item -> score acumulado
	affinityOrder map[string][]string           // orden de primera afinidad por usuario
	userOrder     []string                      // usuarios en orden de primer update

	// SimilarUsers es la política de selección de usuarios similares.
	// Por defecto: los primeros k usuarios conocidos distintos de uno
	// (placeholder heredado; enchufar acá una similitud real, p.e.
	// coseno sobre vectores de afinidad, sin tocar a los callers).
	// Se invoca con el lock interno tomado: no debe llamar de vuelta
	// a los métodos del recomendador.
	SimilarUsers func(userID string, k int) []string
}

func NewHybridRecommender(index *FeatureIndex) *HybridRecommender {
	h := &HybridRecommender{
		index:         index,
		affinities:    make(map[string]map[string]float64),
		affinityOrder: make(map[string][]string),
	}
	h.SimilarUsers = h.firstKOthers
	return h
}

// SetIndex reemplaza el índice de features (tras un rebuild del catálogo).
func (h *HybridRecommender) SetIndex(index *FeatureIndex) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.index = index
}

// actionWeight es la tabla de pesos del camino colaborativo.
func actionWeight(ev Event) float64 {
	switch ev.Action {
	case ActionView:
		return 1
	case ActionLike:
		return 3
	case ActionShare:
		return 5
	case ActionWatch:
		return 4
	}
	if IsRatingAction(ev.Action) {
		switch {
		case ev.Rating >= 4:
			return 5 // rating alto
		case ev.Rating > 0 && ev.Rating <= 2:
			return 0.5 // rating bajo
		}
	}
	return 1
}

// UpdateUserProfile reproduce los eventos del usuario contra la tabla de
// pesos. Solo los items con vector de features suman afinidad (items no
// indexados se ignoran en el camino colaborativo). El mapa del usuario
// se crea vacío en el primer uso aunque ningún evento aplique.
func (h *HybridRecommender) UpdateUserProfile(userID string, events []Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.affinities[userID]; !ok {
		h.affinities[userID] = make(map[string]float64)
		h.userOrder = append(h.userOrder, userID)
	}
	aff := h.affinities[userID]

	for _, ev := range events {
		if h.index == nil || !h.index.Has(ev.Item) {
			continue
		}
		if _, ok := aff[ev.Item]; !ok {
			h.affinityOrder[userID] = append(h.affinityOrder[userID], ev.Item)
		}
		aff[ev.Item] += actionWeight(ev)
	}
}

// Affinity expone el score acumulado usuario-item.
func (h *HybridRecommender) Affinity(userID, item string) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.affinities[userID][item]
}

// firstKOthers: política placeholder, los primeros k usuarios conocidos
// excluyendo al propio.
func (h *HybridRecommender) firstKOthers(userID string, k int) []string {
	var out []string
	for _, other := range h.userOrder {
		if other == userID {
			continue
		}
		out = append(out, other)
		if len(out) == k {
			break
		}
	}
	return out
}

// CollaborativeFiltering junta el top-5 de afinidad de cada usuario
// similar, en orden de recorrido y sin duplicados.
func (h *HybridRecommender) CollaborativeFiltering(userID string, k int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.collaborativeLocked(userID, k)
}

func (h *HybridRecommender) collaborativeLocked(userID string, k int) []string {
	var recs []string
	seen := make(map[string]struct{})

	for _, other := range h.SimilarUsers(userID, k) {
		for _, item := range h.topAffinity(other, topAffinityItems) {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			recs = append(recs, item)
		}
	}
	return recs
}

// topAffinity devuelve los items de mayor score del usuario, empates por
// orden de primera afinidad (sort estable).
func (h *HybridRecommender) topAffinity(userID string, n int) []string {
	aff := h.affinities[userID]
	items := append([]string(nil), h.affinityOrder[userID]...)

	sort.SliceStable(items, func(i, j int) bool { return aff[items[i]] > aff[items[j]] })
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// HybridRecommend: los candidatos content-based van primero (tienen
// prioridad), después se agregan los colaborativos que falten, y se
// trunca a n.
func (h *HybridRecommender) HybridRecommend(userID string, contentRecs []string, n int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []string
	seen := make(map[string]struct{})

	for _, item := range contentRecs {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}

	for _, item := range h.collaborativeLocked(userID, defaultSimilarUsers) {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
