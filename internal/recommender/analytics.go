package recommender

import (
	"sort"
	"sync"
	"time"
)

// umbrales de engagement (interacciones totales por usuario)
const (
	highEngagementMin   = 20
	mediumEngagementMin = 5
)

type userEngagement struct {
	total      int
	lastActive time.Time
}

// EngagementStats cuenta usuarios por nivel de actividad.
type EngagementStats struct {
	HighEngagement   int `json:"highEngagement"`
	MediumEngagement int `json:"mediumEngagement"`
	LowEngagement    int `json:"lowEngagement"`
}

// ItemCount es un item con su cantidad de interacciones registradas.
type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// Report es el reporte exportable del dashboard.
type Report struct {
	GeneratedAt       time.Time        `json:"generatedAt"`
	TotalUsers        int              `json:"totalUsers"`
	TotalInteractions int              `json:"totalInteractions"`
	PopularCategories map[string]int   `json:"popularCategories"`
	Engagement        EngagementStats  `json:"userEngagementStats"`
	DailyInteractions map[string]map[string]int `json:"dailyInteractions"`
}

// Analytics lleva contadores de interacción por día, por item y por
// usuario. Es un dashboard informativo, no parte del scoring.
type Analytics struct {
	mu         sync.Mutex
	daily      map[string]map[string]int // fecha -> acción -> count
	engagement map[string]*userEngagement
	itemCounts map[string]int
	itemOrder  []string
}

func NewAnalytics() *Analytics {
	return &Analytics{
		daily:      make(map[string]map[string]int),
		engagement: make(map[string]*userEngagement),
		itemCounts: make(map[string]int),
	}
}

// TrackInteraction registra la interacción en los contadores del día y
// actualiza el engagement del usuario.
func (a *Analytics) TrackInteraction(userID, item, action string, now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	day := now.Format("2006-01-02")
	if a.daily[day] == nil {
		a.daily[day] = make(map[string]int)
	}
	a.daily[day][action]++

	eng := a.engagement[userID]
	if eng == nil {
		eng = &userEngagement{}
		a.engagement[userID] = eng
	}
	eng.total++
	eng.lastActive = now

	if _, ok := a.itemCounts[item]; !ok {
		a.itemOrder = append(a.itemOrder, item)
	}
	a.itemCounts[item]++
}

// PopularItems devuelve los items más interactuados según el dashboard.
func (a *Analytics) PopularItems(limit int) []ItemCount {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]ItemCount, 0, len(a.itemOrder))
	for _, item := range a.itemOrder {
		out = append(out, ItemCount{Item: item, Count: a.itemCounts[item]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// EngagementStats clasifica usuarios: >20 alto, >5 medio, el resto bajo.
func (a *Analytics) EngagementStats() EngagementStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engagementStatsLocked()
}

func (a *Analytics) engagementStatsLocked() EngagementStats {
	var st EngagementStats
	for _, eng := range a.engagement {
		switch {
		case eng.total > highEngagementMin:
			st.HighEngagement++
		case eng.total > mediumEngagementMin:
			st.MediumEngagement++
		default:
			st.LowEngagement++
		}
	}
	return st
}

// Export arma el reporte completo leyendo los totales del engine.
func (a *Analytics) Export(e *Engine, now time.Time) Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	daily := make(map[string]map[string]int, len(a.daily))
	for day, actions := range a.daily {
		cp := make(map[string]int, len(actions))
		for act, n := range actions {
			cp[act] = n
		}
		daily[day] = cp
	}

	return Report{
		GeneratedAt:       now,
		TotalUsers:        len(e.UserIDs()),
		TotalInteractions: e.TotalInteractions(),
		PopularCategories: e.CategoryCounts(),
		Engagement:        a.engagementStatsLocked(),
		DailyInteractions: daily,
	}
}
