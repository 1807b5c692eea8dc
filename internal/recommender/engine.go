package recommender

import (
	"fmt"
	"sync"
)

// Engine es la fachada del motor de recomendación: usuarios, catálogo y
// tendencias viven acá (nada de estado global de paquete). Una sola
// RWMutex serializa las mutaciones porque cada interacción toca tres
// estructuras (perfil, popularidad del catálogo, tendencias) que deben
// verse en orden consistente.
type Engine struct {
	mu       sync.RWMutex
	catalog  *Catalog
	users    map[string]*UserProfile
	userIDs  []string // orden de registro
	trending *TrendingTracker
}

func NewEngine(catalog *Catalog) *Engine {
	return &Engine{
		catalog:  catalog,
		users:    make(map[string]*UserProfile),
		trending: NewTrendingTracker(),
	}
}

// AddUser registra un usuario nuevo. Si el id ya existe es no-op.
func (e *Engine) AddUser(userID, username string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.users[userID]; ok {
		return
	}
	e.users[userID] = NewUserProfile(userID, username)
	e.userIDs = append(e.userIDs, userID)
}

func (e *Engine) HasUser(userID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.users[userID]
	return ok
}

// UserIDs devuelve los ids en orden de registro.
func (e *Engine) UserIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.userIDs...)
}

// RecordInteraction registra una interacción usuario-item. Usuario o item
// desconocido es no-op silencioso: el caller pre-valida si necesita un
// error visible.
func (e *Engine) RecordInteraction(userID, itemName, action string, duration int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, ok := e.users[userID]
	if !ok {
		return
	}
	item, ok := e.catalog.Get(itemName)
	if !ok {
		return
	}

	user.AddEvent(itemName, item.Category, action, duration, 0)
	e.catalog.UpdatePopularity(itemName, action)
	e.trending.RecordAction(itemName, action)
	e.trending.Recompute()
}

// RecordRating agrega un evento rating_N al perfil. Los ratings no
// alimentan tendencias ni popularidad, solo el camino colaborativo.
func (e *Engine) RecordRating(userID, itemName string, rating int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, ok := e.users[userID]
	if !ok {
		return
	}
	item, ok := e.catalog.Get(itemName)
	if !ok {
		return
	}

	user.AddEvent(itemName, item.Category, fmt.Sprintf("rating_%d", rating), 0, rating)
}

// Recommend arma la lista de candidatos: primero los items de cada
// categoría de interés del usuario (en orden de descubrimiento), después
// los items en tendencia que falten, hasta n. Usuario desconocido
// devuelve vacío.
func (e *Engine) Recommend(userID string, n int) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	user, ok := e.users[userID]
	if !ok {
		return nil
	}

	var recs []string
	seen := make(map[string]struct{})

	for _, interest := range user.interests {
		for _, item := range e.catalog.ItemsByCategory(interest) {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			recs = append(recs, item)
		}
	}

	for _, entry := range e.trending.Snapshot(0) {
		if _, ok := seen[entry.Item]; ok {
			continue
		}
		seen[entry.Item] = struct{}{}
		recs = append(recs, entry.Item)
	}

	if n > 0 && len(recs) > n {
		recs = recs[:n]
	}
	return recs
}

// TrendingSnapshot devuelve el último ranking de tendencias.
func (e *Engine) TrendingSnapshot(limit int) []TrendingEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.trending.Snapshot(limit)
}

// Catalog expone el catálogo para las consultas de solo lectura.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// ====== Consultas de catálogo bajo lock ======
//
// Los contadores del catálogo mutan bajo el lock del motor, así que las
// consultas HTTP entran por acá y no por el Catalog directo.

func (e *Engine) SearchCatalog(query string) []SearchResult {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Search(query)
}

func (e *Engine) SimilarItems(name string, k int) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.SimilarTo(name, k)
}

func (e *Engine) ItemsByCategory(category string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.ItemsByCategory(category)
}

func (e *Engine) ItemsByTag(tag string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.ItemsByTag(tag)
}

func (e *Engine) Categories() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Categories()
}

func (e *Engine) PopularItems(limit int) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.PopularItems(limit)
}

func (e *Engine) CatalogStats() CatalogStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Stats()
}

// GetItem devuelve una copia del item para que el caller no lea
// contadores en mutación.
func (e *Engine) GetItem(name string) (Item, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	it, ok := e.catalog.Get(name)
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// ListItems devuelve copias de todos los items, en orden de inserción.
func (e *Engine) ListItems() []Item {
	e.mu.RLock()
	defer e.mu.RUnlock()

	src := e.catalog.Items()
	out := make([]Item, 0, len(src))
	for _, it := range src {
		out = append(out, *it)
	}
	return out
}

// UserEvents devuelve una copia de los eventos del usuario (para el
// camino híbrido). Usuario desconocido devuelve vacío.
func (e *Engine) UserEvents(userID string) []Event {
	e.mu.RLock()
	defer e.mu.RUnlock()

	user, ok := e.users[userID]
	if !ok {
		return nil
	}
	return append([]Event(nil), user.Events...)
}

// UserSummary es la vista de un perfil para stats y el UI.
type UserSummary struct {
	UserID       string   `json:"userId"`
	Username     string   `json:"username"`
	Interests    []string `json:"interests"`
	WatchHistory []string `json:"watchHistory"`
	EventCount   int      `json:"eventCount"`
}

func (e *Engine) Summary(userID string) (UserSummary, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	user, ok := e.users[userID]
	if !ok {
		return UserSummary{}, false
	}
	return UserSummary{
		UserID:       user.UserID,
		Username:     user.Username,
		Interests:    user.Interests(),
		WatchHistory: append([]string(nil), user.WatchHistory...),
		EventCount:   len(user.Events),
	}, true
}

// InteractionScore expone el score por categoría del perfil.
func (e *Engine) InteractionScore(userID, category string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	user, ok := e.users[userID]
	if !ok {
		return 0
	}
	return user.InteractionScore(category)
}

// CategoryCounts cuenta eventos por categoría entre todos los usuarios
// (para el reporte de analytics).
func (e *Engine) CategoryCounts() map[string]int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	counts := make(map[string]int)
	for _, id := range e.userIDs {
		for _, ev := range e.users[id].Events {
			counts[ev.Category]++
		}
	}
	return counts
}

// TotalInteractions suma los eventos de todos los usuarios.
func (e *Engine) TotalInteractions() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	total := 0
	for _, id := range e.userIDs {
		total += len(e.users[id].Events)
	}
	return total
}
