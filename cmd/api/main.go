package main

import (
	"context"
	"log"
	"net/http"

	_ "github.com/YazanAlgaleez/flowmart-ai/docs" // swagger docs

	"github.com/YazanAlgaleez/flowmart-ai/internal/cache"
	"github.com/YazanAlgaleez/flowmart-ai/internal/config"
	"github.com/YazanAlgaleez/flowmart-ai/internal/db"
	"github.com/YazanAlgaleez/flowmart-ai/internal/handler"
	"github.com/YazanAlgaleez/flowmart-ai/internal/recommender"
	"github.com/YazanAlgaleez/flowmart-ai/internal/repository"
	"github.com/YazanAlgaleez/flowmart-ai/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title FlowMart AI Recommendation API
// @version 1.0
// @description API de recomendación de contenido (content-based, híbrido, Mongo, Redis)
// @host localhost:8085
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Mongo y Redis. Si Mongo no está, la API degrada al dataset local
	// en memoria en vez de morir.
	mdb, err := db.Connect(cfg)
	if err != nil {
		log.Printf("[main] mongo no disponible (%v), modo degradado en memoria", err)
		mdb = nil
	}
	rcache := cache.New(cfg)

	// repos (nil sin Mongo; los services toleran nil)
	var (
		userRepo  *repository.UserRepository
		itemRepo  *repository.ItemRepository
		interRepo *repository.InteractionRepository
		recRepo   *repository.RecommendationRepository
	)
	if mdb != nil {
		userRepo = repository.NewUserRepository(mdb)
		itemRepo = repository.NewItemRepository(mdb)
		interRepo = repository.NewInteractionRepository(mdb)
		recRepo = repository.NewRecommendationRepository(mdb)

		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Printf("[mongo] error creando índices de users: %v", err)
		}
	}

	// catálogo + motor en memoria
	catalogSvc := service.NewCatalogService(itemRepo)
	catalog := catalogSvc.Load(ctx)
	engine := recommender.NewEngine(catalog)
	hybrid := recommender.NewHybridRecommender(recommender.BuildFeatureIndex(catalog.Items()))
	analytics := recommender.NewAnalytics()

	// services
	authSvc := service.NewAuthService(userRepo, engine, cfg.JWTSecret)
	recSvc := service.NewRecommendService(engine, hybrid, analytics, rcache, catalogSvc, recRepo, interRepo)

	// repone usuarios e interacciones persistidas dentro del motor
	recSvc.Rehydrate(ctx, userRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	catalogH := handler.NewCatalogHandler(engine, catalogSvc)
	recH := handler.NewRecommendHandler(recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Catálogo (público)
	r.Get("/items", catalogH.List)
	r.Get("/items/search", catalogH.Search)
	r.Get("/items/categories", catalogH.Categories)
	r.Get("/items/popular", catalogH.Popular)
	r.Get("/items/stats", catalogH.Stats)
	r.Get("/items/category/{category}", catalogH.ByCategory)
	r.Get("/items/tag/{tag}", catalogH.ByTag)
	r.Get("/items/{name}", catalogH.Get)
	r.Get("/items/{name}/similar", catalogH.Similar)

	// Tendencias (públicas, HTTP y websocket)
	r.Get("/trending", recH.Trending)
	r.Get("/ws/trending", recH.TrendingWS)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(handler.JWTAuth(cfg.JWTSecret))

		r.Route("/me", func(r chi.Router) {
			r.Get("/recommendations", recH.Recommend)
			r.Get("/recommendations/history", recH.History)
			r.Post("/interactions", recH.RecordInteraction)
			r.Get("/interactions", recH.MyInteractions)
			r.Get("/stats", recH.MyStats)
			r.Put("/profile", authH.UpdateMyProfile)
		})

		r.Get("/users", authH.ListUsers)

		r.Get("/analytics/report", recH.AnalyticsReport)
		r.Get("/analytics/popular", recH.AnalyticsPopular)
		r.Post("/analytics/rebuild-features", recH.RebuildFeatures)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s (catálogo: %s)", cfg.HTTPPort, catalogSvc.Source)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
