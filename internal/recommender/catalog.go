package recommender

import (
	"sort"
	"strings"
)

// Acciones soportadas sobre un item del catálogo.
const (
	ActionView  = "view"
	ActionLike  = "like"
	ActionShare = "share"
	ActionWatch = "watch"
)

// Item es un contenido del catálogo. La clave única es el nombre.
type Item struct {
	Name        string
	Category    string
	Tags        []string
	Difficulty  string
	DurationMin int

	// contadores mutables
	Views      int
	Likes      int
	Popularity float64 // siempre en [0,1]
}

// SearchResult es un item con su puntaje de búsqueda. Lleva una copia
// del item, no el puntero vivo: los contadores mutan bajo el lock del
// motor y el resultado se consume fuera de él.
type SearchResult struct {
	Item  Item
	Score int
}

// CatalogStats resumen del catálogo (para /items/stats).
type CatalogStats struct {
	TotalItems      int     `json:"totalItems"`
	TotalViews      int     `json:"totalViews"`
	TotalLikes      int     `json:"totalLikes"`
	CategoriesCount int     `json:"categoriesCount"`
	AvgPopularity   float64 `json:"avgPopularity"`
}

// Catalog guarda los items en memoria preservando el orden de inserción.
// Los desempates de todos los rankings usan ese orden (sort estable).
type Catalog struct {
	order []string
	items map[string]*Item
}

func NewCatalog(items []Item) *Catalog {
	c := &Catalog{items: make(map[string]*Item, len(items))}
	for i := range items {
		it := items[i]
		if _, ok := c.items[it.Name]; ok {
			continue // el nombre es la clave, no se inserta dos veces
		}
		c.order = append(c.order, it.Name)
		c.items[it.Name] = &it
	}
	return c
}

func (c *Catalog) Len() int { return len(c.order) }

func (c *Catalog) Get(name string) (*Item, bool) {
	it, ok := c.items[name]
	return it, ok
}

// Items devuelve los items en orden de inserción.
func (c *Catalog) Items() []*Item {
	out := make([]*Item, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.items[name])
	}
	return out
}

func (c *Catalog) ItemsByCategory(category string) []string {
	var out []string
	for _, name := range c.order {
		if c.items[name].Category == category {
			out = append(out, name)
		}
	}
	return out
}

// ItemsByTag busca por tag exacto (case-sensitive, tal como se guardó).
func (c *Catalog) ItemsByTag(tag string) []string {
	var out []string
	for _, name := range c.order {
		for _, t := range c.items[name].Tags {
			if t == tag {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// Categories devuelve las categorías en orden de primera aparición.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range c.order {
		cat := c.items[name].Category
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}

// Search puntúa: +3 si el query está en el nombre, +2 si está en la
// categoría y +1 por cada tag que lo contenga. Score 0 queda fuera.
func (c *Catalog) Search(query string) []SearchResult {
	q := strings.ToLower(query)
	var results []SearchResult

	for _, name := range c.order {
		it := c.items[name]
		score := 0

		if strings.Contains(strings.ToLower(it.Name), q) {
			score += 3
		}
		if strings.Contains(strings.ToLower(it.Category), q) {
			score += 2
		}
		for _, tag := range it.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				score++
			}
		}

		if score > 0 {
			results = append(results, SearchResult{Item: *it, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}

// SimilarTo: similitud = 2*[misma categoría] + 0.5*|tags en común| + 0.3*popularidad.
// Excluye al propio item; si el item no existe devuelve vacío. k <= 0
// devuelve el ranking completo.
func (c *Catalog) SimilarTo(name string, k int) []string {
	target, ok := c.items[name]
	if !ok {
		return nil
	}

	targetTags := make(map[string]struct{}, len(target.Tags))
	for _, t := range target.Tags {
		targetTags[t] = struct{}{}
	}

	type scored struct {
		name string
		sim  float64
	}
	var sims []scored

	for _, other := range c.order {
		if other == name {
			continue
		}
		info := c.items[other]

		var sim float64
		if info.Category == target.Category {
			sim += 2
		}

		common := make(map[string]struct{})
		for _, t := range info.Tags {
			if _, ok := targetTags[t]; ok {
				common[t] = struct{}{}
			}
		}
		sim += float64(len(common)) * 0.5
		sim += info.Popularity * 0.3

		sims = append(sims, scored{name: other, sim: sim})
	}

	sort.SliceStable(sims, func(i, j int) bool { return sims[i].sim > sims[j].sim })
	if k > 0 && len(sims) > k {
		sims = sims[:k]
	}

	out := make([]string, 0, len(sims))
	for _, s := range sims {
		out = append(out, s.name)
	}
	return out
}

// UpdatePopularity ajusta contadores y popularidad según la acción.
// Item desconocido es no-op.
func (c *Catalog) UpdatePopularity(name, action string) {
	it, ok := c.items[name]
	if !ok {
		return
	}

	switch action {
	case ActionView:
		it.Views++
		it.Popularity += 0.01
	case ActionLike:
		it.Likes++
		it.Popularity += 0.05
	case ActionShare:
		// share no toca views/likes
		it.Popularity += 0.1
	}

	// popularidad acotada a [0,1]
	if it.Popularity > 1 {
		it.Popularity = 1
	}
	if it.Popularity < 0 {
		it.Popularity = 0
	}
}

// PopularItems rankea por popularidad descendente. limit <= 0 devuelve todo.
func (c *Catalog) PopularItems(limit int) []string {
	names := append([]string(nil), c.order...)
	sort.SliceStable(names, func(i, j int) bool {
		return c.items[names[i]].Popularity > c.items[names[j]].Popularity
	})
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names
}

func (c *Catalog) Stats() CatalogStats {
	st := CatalogStats{TotalItems: len(c.order)}
	var sumPop float64
	for _, name := range c.order {
		it := c.items[name]
		st.TotalViews += it.Views
		st.TotalLikes += it.Likes
		sumPop += it.Popularity
	}
	st.CategoriesCount = len(c.Categories())
	if st.TotalItems > 0 {
		st.AvgPopularity = sumPop / float64(st.TotalItems)
	}
	return st
}
