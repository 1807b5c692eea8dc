package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/YazanAlgaleez/flowmart-ai/internal/recommender"
	"github.com/YazanAlgaleez/flowmart-ai/internal/service"
)

type CatalogHandler struct {
	engine *recommender.Engine
	src    *service.CatalogService
}

func NewCatalogHandler(engine *recommender.Engine, src *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{engine: engine, src: src}
}

// itemResponse es la vista JSON de un item del catálogo.
type itemResponse struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Difficulty  string   `json:"difficulty"`
	DurationMin int      `json:"durationMin"`
	Views       int      `json:"views"`
	Likes       int      `json:"likes"`
	Popularity  float64  `json:"popularity"`
}

func toItemResponse(it recommender.Item) itemResponse {
	return itemResponse{
		Name:        it.Name,
		Category:    it.Category,
		Tags:        it.Tags,
		Difficulty:  it.Difficulty,
		DurationMin: it.DurationMin,
		Views:       it.Views,
		Likes:       it.Likes,
		Popularity:  it.Popularity,
	}
}

// queryInt parsea un query param numérico con default.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// pathParam saca y des-escapa un parámetro de ruta de chi.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if dec, err := url.PathUnescape(raw); err == nil {
		return dec
	}
	return raw
}

// @Summary Listar items
// @Tags items
// @Produce json
// @Success 200 {array} itemResponse
// @Router /items [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items := h.engine.ListItems()
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	_ = json.NewEncoder(w).Encode(out)
}

// @Summary Detalle de un item
// @Tags items
// @Produce json
// @Param name path string true "nombre del item"
// @Success 200 {object} itemResponse
// @Failure 404 {string} string "no existe"
// @Router /items/{name} [get]
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	it, ok := h.engine.GetItem(pathParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(toItemResponse(it))
}

type searchResult struct {
	Item  itemResponse `json:"item"`
	Score int          `json:"score"`
}

// @Summary Buscar en el catálogo
// @Description Puntúa por nombre, categoría y tags; score 0 queda fuera
// @Tags items
// @Produce json
// @Param q query string true "texto a buscar"
// @Success 200 {array} searchResult
// @Failure 400 {string} string "falta q"
// @Router /items/search [get]
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, "falta el parámetro q", http.StatusBadRequest)
		return
	}

	results := h.engine.SearchCatalog(q)
	out := make([]searchResult, 0, len(results))
	for _, res := range results {
		out = append(out, searchResult{Item: toItemResponse(res.Item), Score: res.Score})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// @Summary Items similares
// @Tags items
// @Produce json
// @Param name path string true "nombre del item"
// @Param k query int false "cantidad (default 3)"
// @Success 200 {array} string
// @Router /items/{name}/similar [get]
func (h *CatalogHandler) Similar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	name := pathParam(r, "name")
	if _, ok := h.engine.GetItem(name); !ok {
		http.NotFound(w, r)
		return
	}

	k := queryInt(r, "k", 3)
	_ = json.NewEncoder(w).Encode(h.engine.SimilarItems(name, k))
}

// @Summary Items por categoría
// @Tags items
// @Produce json
// @Param category path string true "categoría"
// @Success 200 {array} string
// @Router /items/category/{category} [get]
func (h *CatalogHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.engine.ItemsByCategory(pathParam(r, "category")))
}

// @Summary Items por tag
// @Tags items
// @Produce json
// @Param tag path string true "tag (exacto)"
// @Success 200 {array} string
// @Router /items/tag/{tag} [get]
func (h *CatalogHandler) ByTag(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.engine.ItemsByTag(pathParam(r, "tag")))
}

// @Summary Categorías del catálogo
// @Tags items
// @Produce json
// @Success 200 {array} string
// @Router /items/categories [get]
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.engine.Categories())
}

// @Summary Items más populares
// @Tags items
// @Produce json
// @Param limit query int false "cantidad (default 5)"
// @Success 200 {array} string
// @Router /items/popular [get]
func (h *CatalogHandler) Popular(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.engine.PopularItems(queryInt(r, "limit", 5)))
}

// @Summary Estadísticas del catálogo
// @Tags items
// @Produce json
// @Success 200 {object} map[string]any
// @Router /items/stats [get]
func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	st := h.engine.CatalogStats()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"stats":  st,
		"source": h.src.Source,
	})
}
