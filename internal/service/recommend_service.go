package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/YazanAlgaleez/flowmart-ai/internal/cache"
	"github.com/YazanAlgaleez/flowmart-ai/internal/models"
	"github.com/YazanAlgaleez/flowmart-ai/internal/recommender"
	"github.com/YazanAlgaleez/flowmart-ai/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultN = 5
	MaxN     = 20 // por seguridad, no deja pedir el catálogo entero

	recCacheTTL      = 60 * 60 // 1 hora
	trendingCacheTTL = 60
	trendingCacheKey = "trending:snapshot"
)

var (
	ErrUnknownUser = errors.New("usuario desconocido")
	ErrUnknownItem = errors.New("item desconocido")
)

// RecommendService coordina el motor en memoria con el cache Redis y el
// historial en Mongo. Los repos pueden ser nil (modo degradado sin store).
type RecommendService struct {
	engine    *recommender.Engine
	hybrid    *recommender.HybridRecommender
	analytics *recommender.Analytics
	cache     *cache.Cache
	catalog   *CatalogService
	recRepo   *repository.RecommendationRepository
	interRepo *repository.InteractionRepository
}

func NewRecommendService(
	engine *recommender.Engine,
	hybrid *recommender.HybridRecommender,
	analytics *recommender.Analytics,
	c *cache.Cache,
	catalog *CatalogService,
	recRepo *repository.RecommendationRepository,
	interRepo *repository.InteractionRepository,
) *RecommendService {
	return &RecommendService{
		engine:    engine,
		hybrid:    hybrid,
		analytics: analytics,
		cache:     c,
		catalog:   catalog,
		recRepo:   recRepo,
		interRepo: interRepo,
	}
}

// ====== Registro de interacciones ======

// RecordInteraction pre-valida (para dar errores visibles por HTTP) y
// registra: motor (perfil + popularidad + tendencias), afinidad híbrida,
// analytics, Mongo best-effort y la invalidación del cache del usuario.
// Acepta acciones view/like/share/watch y rating_1..rating_5.
func (s *RecommendService) RecordInteraction(ctx context.Context, userID, itemName, action string, duration int) error {
	if !s.engine.HasUser(userID) {
		return ErrUnknownUser
	}
	item, ok := s.engine.GetItem(itemName)
	if !ok {
		return ErrUnknownItem
	}

	rating := 0
	if recommender.IsRatingAction(action) {
		rating, _ = strconv.Atoi(strings.TrimPrefix(action, "rating_"))
		s.engine.RecordRating(userID, itemName, rating)
	} else {
		s.engine.RecordInteraction(userID, itemName, action, duration)
		// copia fresca post-mutación: los contadores cambian bajo el
		// lock del motor, nunca se persiste el puntero vivo
		if updated, ok := s.engine.GetItem(itemName); ok && s.catalog != nil {
			s.catalog.PersistCounters(ctx, updated)
		}
	}

	s.hybrid.UpdateUserProfile(userID, []recommender.Event{{
		Item:     itemName,
		Category: item.Category,
		Action:   action,
		Duration: duration,
		Rating:   rating,
	}})
	s.analytics.TrackInteraction(userID, itemName, action, time.Now())

	if s.interRepo != nil {
		err := s.interRepo.Insert(ctx, &models.InteractionDoc{
			UserID:    userID,
			Item:      itemName,
			Category:  item.Category,
			Action:    action,
			Duration:  duration,
			Rating:    rating,
			CreatedAt: time.Now(),
		})
		if err != nil {
			// el motor ya quedó actualizado, no rompemos la respuesta
			log.Printf("[recommend] error guardando interacción en mongo: %v", err)
		}
	}

	s.invalidateUser(ctx, userID)
	return nil
}

func (s *RecommendService) invalidateUser(ctx context.Context, userID string) {
	keys := []string{trendingCacheKey}
	for _, hybrid := range []bool{false, true} {
		for n := 1; n <= MaxN; n++ {
			keys = append(keys, cacheKey(userID, n, hybrid))
		}
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		log.Printf("[recommend] error invalidando cache: %v", err)
	}
}

// ====== Recomendaciones ======

type RecRequest struct {
	UserID  string
	N       int
	Hybrid  bool
	Refresh bool
}

func cacheKey(userID string, n int, hybrid bool) string {
	return fmt.Sprintf("rec:user:%s:n:%d:hybrid:%t", userID, n, hybrid)
}

// Recommend devuelve la lista content-based (o híbrida), cacheada en
// Redis salvo refresh, y persiste el historial en Mongo best-effort.
// Usuario desconocido devuelve lista vacía, no error.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]string, error) {
	if req.N <= 0 {
		req.N = DefaultN
	} else if req.N > MaxN {
		req.N = MaxN
	}

	key := cacheKey(req.UserID, req.N, req.Hybrid)
	if !req.Refresh {
		var cached []string
		if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	items := s.engine.Recommend(req.UserID, req.N)
	algo := "content"
	if req.Hybrid {
		items = s.hybrid.HybridRecommend(req.UserID, items, req.N)
		algo = "hybrid"
	}

	if s.recRepo != nil && len(items) > 0 {
		hist := &models.Recommendation{
			ID:     uuid.NewString(),
			UserID: req.UserID,
			Algo:   algo,
			N:      req.N,
			Items:  items,
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("[recommend] error guardando historial en mongo: %v", err)
		}
	}

	if err := s.cache.SetJSON(ctx, key, items, recCacheTTL); err != nil {
		log.Printf("[recommend] error cacheando en redis: %v", err)
	}

	return items, nil
}

// Trending devuelve el snapshot global, con un cache corto.
func (s *RecommendService) Trending(ctx context.Context, limit int) ([]recommender.TrendingEntry, error) {
	var cached []recommender.TrendingEntry
	if ok, err := s.cache.GetJSON(ctx, trendingCacheKey, &cached); err == nil && ok {
		if limit > 0 && len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}

	entries := s.engine.TrendingSnapshot(0)
	if err := s.cache.SetJSON(ctx, trendingCacheKey, entries, trendingCacheTTL); err != nil {
		log.Printf("[recommend] error cacheando trending: %v", err)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// History lista el historial de listas servidas al usuario.
func (s *RecommendService) History(ctx context.Context, userID string, limit int64) ([]models.Recommendation, error) {
	if s.recRepo == nil {
		return nil, nil
	}
	return s.recRepo.FindByUser(ctx, userID, limit)
}

// UserInteractions lista los eventos persistidos del usuario.
func (s *RecommendService) UserInteractions(ctx context.Context, userID string, limit int64) ([]models.InteractionDoc, error) {
	if s.interRepo == nil {
		return nil, nil
	}
	return s.interRepo.ListByUser(ctx, userID, limit)
}

// RebuildFeatures reconstruye el índice TF-IDF completo desde el
// catálogo actual (no hay contrato incremental).
func (s *RecommendService) RebuildFeatures() {
	s.hybrid.SetIndex(recommender.BuildFeatureIndex(s.engine.Catalog().Items()))
}

// Report exporta el dashboard de analytics.
func (s *RecommendService) Report() recommender.Report {
	return s.analytics.Export(s.engine, time.Now())
}

// PopularByDashboard expone los items más interactuados del dashboard.
func (s *RecommendService) PopularByDashboard(limit int) []recommender.ItemCount {
	return s.analytics.PopularItems(limit)
}

// UserStats arma el resumen del perfil con el score por interés.
type UserStats struct {
	recommender.UserSummary
	InterestScores map[string]float64 `json:"interestScores"`
}

func (s *RecommendService) Stats(userID string) (UserStats, bool) {
	sum, ok := s.engine.Summary(userID)
	if !ok {
		return UserStats{}, false
	}

	scores := make(map[string]float64, len(sum.Interests))
	for _, cat := range sum.Interests {
		scores[cat] = s.engine.InteractionScore(userID, cat)
	}
	return UserStats{UserSummary: sum, InterestScores: scores}, true
}

// ====== Rehidratación al levantar la API ======

// Rehydrate repone usuarios e interacciones persistidas dentro del motor
// (el catálogo ya viene cargado). Best-effort: cualquier error deja el
// motor como esté y sigue.
func (s *RecommendService) Rehydrate(ctx context.Context, users *repository.UserRepository) {
	if users != nil {
		docs, err := users.List(ctx, 0)
		if err != nil {
			log.Printf("[recommend] error rehidratando usuarios: %v", err)
		}
		for _, u := range docs {
			s.engine.AddUser(u.UserID, u.Username)
		}
	}

	if s.interRepo == nil {
		return
	}
	events, err := s.interRepo.ListAll(ctx, 0)
	if err != nil {
		log.Printf("[recommend] error rehidratando interacciones: %v", err)
		return
	}
	for _, ev := range events {
		if recommender.IsRatingAction(ev.Action) {
			s.engine.RecordRating(ev.UserID, ev.Item, ev.Rating)
		} else {
			s.engine.RecordInteraction(ev.UserID, ev.Item, ev.Action, ev.Duration)
		}
		s.hybrid.UpdateUserProfile(ev.UserID, []recommender.Event{{
			Item:     ev.Item,
			Category: ev.Category,
			Action:   ev.Action,
			Duration: ev.Duration,
			Rating:   ev.Rating,
		}})
		s.analytics.TrackInteraction(ev.UserID, ev.Item, ev.Action, ev.CreatedAt)
	}
	if len(events) > 0 {
		log.Printf("[recommend] %d interacciones rehidratadas", len(events))
	}
}
