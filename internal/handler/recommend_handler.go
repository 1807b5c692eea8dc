package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/YazanAlgaleez/flowmart-ai/internal/service"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones para el usuario autenticado
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param n query int false "cantidad (default 5, máx 20)"
// @Param hybrid query bool false "usar el recomendador híbrido"
// @Param refresh query bool false "saltear el cache"
// @Success 200 {object} map[string]any
// @Router /me/recommendations [get]
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	req := service.RecRequest{
		UserID:  userID,
		N:       queryInt(r, "n", service.DefaultN),
		Hybrid:  r.URL.Query().Get("hybrid") == "true",
		Refresh: r.URL.Query().Get("refresh") == "true",
	}

	items, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []string{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"userId": userID,
		"hybrid": req.Hybrid,
		"items":  items,
	})
}

type interactionRequest struct {
	Item     string `json:"item"`
	Action   string `json:"action"`
	Duration int    `json:"duration"`
}

// @Summary Registrar una interacción
// @Description Acciones: view, like, share, watch y rating_1..rating_5
// @Tags recommendations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body interactionRequest true "interacción"
// @Success 201 {object} map[string]bool
// @Failure 404 {string} string "usuario o item desconocido"
// @Router /me/interactions [post]
func (h *RecommendHandler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Item == "" || req.Action == "" {
		http.Error(w, "body inválido (item y action requeridos)", http.StatusBadRequest)
		return
	}

	err := h.svc.RecordInteraction(r.Context(), userID, req.Item, req.Action, req.Duration)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) || errors.Is(err, service.ErrUnknownItem) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]bool{"recorded": true})
}

// @Summary Contenido en tendencia
// @Tags recommendations
// @Produce json
// @Param limit query int false "cantidad (0 = todo)"
// @Success 200 {array} recommender.TrendingEntry
// @Router /trending [get]
func (h *RecommendHandler) Trending(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := h.svc.Trending(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(entries)
}

// @Summary Historial de recomendaciones servidas
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param limit query int false "cantidad (default 10)"
// @Success 200 {array} models.Recommendation
// @Router /me/recommendations/history [get]
func (h *RecommendHandler) History(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	hist, err := h.svc.History(r.Context(), userID, int64(queryInt(r, "limit", 10)))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(hist)
}

// @Summary Interacciones persistidas del usuario autenticado
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param limit query int false "cantidad (default 50)"
// @Success 200 {array} models.InteractionDoc
// @Router /me/interactions [get]
func (h *RecommendHandler) MyInteractions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	events, err := h.svc.UserInteractions(r.Context(), userID, int64(queryInt(r, "limit", 50)))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(events)
}

// @Summary Stats del usuario autenticado
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.UserStats
// @Failure 404 {string} string "usuario desconocido"
// @Router /me/stats [get]
func (h *RecommendHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	stats, ok := h.svc.Stats(userID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}

// @Summary Reconstruir el índice de features
// @Description Reconstruye el índice TF-IDF completo desde el catálogo actual
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /analytics/rebuild-features [post]
func (h *RecommendHandler) RebuildFeatures(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.svc.RebuildFeatures()
	_ = json.NewEncoder(w).Encode(map[string]bool{"rebuilt": true})
}

// @Summary Dashboard de analytics
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} recommender.Report
// @Router /analytics/report [get]
func (h *RecommendHandler) AnalyticsReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.Report())
}

// @Summary Items más interactuados según el dashboard
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Param limit query int false "cantidad (default 5)"
// @Success 200 {array} recommender.ItemCount
// @Router /analytics/popular [get]
func (h *RecommendHandler) AnalyticsPopular(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.PopularByDashboard(queryInt(r, "limit", 5)))
}

// ====== WebSocket de tendencias ======

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const trendingPushInterval = 5 * time.Second

// TrendingWS empuja el snapshot de tendencias por websocket cada pocos
// segundos hasta que el cliente cierra.
// @Summary Feed de tendencias por websocket
// @Tags recommendations
// @Router /ws/trending [get]
func (h *RecommendHandler) TrendingWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] error en upgrade: %v", err)
		return
	}
	defer conn.Close()

	// drena mensajes entrantes para detectar el close del cliente
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(trendingPushInterval)
	defer ticker.Stop()

	limit := queryInt(r, "limit", 5)
	for {
		entries, err := h.svc.Trending(r.Context(), limit)
		if err != nil {
			log.Printf("[ws] error leyendo trending: %v", err)
			return
		}
		if err := conn.WriteJSON(entries); err != nil {
			return
		}

		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
