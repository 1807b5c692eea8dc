package service

import (
	"context"
	"log"

	"github.com/YazanAlgaleez/flowmart-ai/internal/models"
	"github.com/YazanAlgaleez/flowmart-ai/internal/recommender"
	"github.com/YazanAlgaleez/flowmart-ai/internal/repository"
)

// CatalogService arma el catálogo en memoria desde Mongo y, si el store
// no está disponible, degrada al dataset local estático en vez de fallar.
type CatalogService struct {
	items  *repository.ItemRepository // nil si Mongo no está
	Source string                     // "mongo" | "local"
}

func NewCatalogService(items *repository.ItemRepository) *CatalogService {
	return &CatalogService{items: items}
}

// Load construye el catálogo. Orden: catálogo de Mongo; colección vacía
// se siembra con el dataset local; cualquier error degrada a local.
func (s *CatalogService) Load(ctx context.Context) *recommender.Catalog {
	seed := recommender.SeedItems()

	if s.items == nil {
		s.Source = "local"
		log.Println("[catalog] sin store, usando dataset local")
		return recommender.NewCatalog(seed)
	}

	seeded, err := s.items.SeedIfEmpty(ctx, toItemDocs(seed))
	if err != nil {
		s.Source = "local"
		log.Printf("[catalog] store no disponible (%v), degradando a dataset local", err)
		return recommender.NewCatalog(seed)
	}
	if seeded {
		log.Printf("[catalog] colección items vacía, sembrada con %d items locales", len(seed))
	}

	docs, err := s.items.List(ctx, 0)
	if err != nil || len(docs) == 0 {
		s.Source = "local"
		log.Printf("[catalog] no se pudo listar items (%v), degradando a dataset local", err)
		return recommender.NewCatalog(seed)
	}

	s.Source = "mongo"
	log.Printf("[catalog] %d items cargados desde mongo", len(docs))
	return recommender.NewCatalog(fromItemDocs(docs))
}

// PersistCounters guarda los contadores mutables de un item (best-effort).
// Recibe una copia, tomada bajo el lock del motor, nunca el puntero vivo.
func (s *CatalogService) PersistCounters(ctx context.Context, it recommender.Item) {
	if s.items == nil {
		return
	}
	if err := s.items.UpsertCounters(ctx, it.Name, it.Views, it.Likes, it.Popularity); err != nil {
		log.Printf("[catalog] error persistiendo contadores de %q: %v", it.Name, err)
	}
}

func toItemDocs(items []recommender.Item) []models.ItemDoc {
	out := make([]models.ItemDoc, 0, len(items))
	for _, it := range items {
		out = append(out, models.ItemDoc{
			Name:        it.Name,
			Category:    it.Category,
			Tags:        it.Tags,
			Difficulty:  it.Difficulty,
			DurationMin: it.DurationMin,
			Views:       it.Views,
			Likes:       it.Likes,
			Popularity:  it.Popularity,
		})
	}
	return out
}

func fromItemDocs(docs []models.ItemDoc) []recommender.Item {
	out := make([]recommender.Item, 0, len(docs))
	for _, d := range docs {
		out = append(out, recommender.Item{
			Name:        d.Name,
			Category:    d.Category,
			Tags:        d.Tags,
			Difficulty:  d.Difficulty,
			DurationMin: d.DurationMin,
			Views:       d.Views,
			Likes:       d.Likes,
			Popularity:  d.Popularity,
		})
	}
	return out
}
