package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/YazanAlgaleez/flowmart-ai/internal/cache"
	"github.com/YazanAlgaleez/flowmart-ai/internal/config"
	"github.com/YazanAlgaleez/flowmart-ai/internal/db"
	"github.com/YazanAlgaleez/flowmart-ai/internal/recommender"
	"github.com/YazanAlgaleez/flowmart-ai/internal/repository"
	"github.com/YazanAlgaleez/flowmart-ai/internal/service"
)

// Consola interactiva del recomendador. Con --demo corre una simulación
// completa sin tocar stdin. Sin Mongo todo vive en memoria.
func main() {
	demo := flag.Bool("demo", false, "correr la simulación de demo y salir")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	mdb, err := db.Connect(cfg)
	if err != nil {
		log.Printf("[console] mongo no disponible (%v), modo en memoria", err)
		mdb = nil
	}
	rcache := cache.New(cfg)

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

	catalogSvc := service.NewCatalogService(itemRepo)
	catalog := catalogSvc.Load(ctx)
	engine := recommender.NewEngine(catalog)
	hybrid := recommender.NewHybridRecommender(recommender.BuildFeatureIndex(catalog.Items()))
	analytics := recommender.NewAnalytics()

	authSvc := service.NewAuthService(userRepo, engine, cfg.JWTSecret)
	recSvc := service.NewRecommendService(engine, hybrid, analytics, rcache, catalogSvc, recRepo, interRepo)
	recSvc.Rehydrate(ctx, userRepo)

	app := &console{
		ctx:     ctx,
		engine:  engine,
		auth:    authSvc,
		rec:     recSvc,
		hasRepo: userRepo != nil,
		in:      bufio.NewScanner(os.Stdin),
	}

	if *demo {
		app.runDemo()
		return
	}
	app.runLoop()
}

type console struct {
	ctx     context.Context
	engine  *recommender.Engine
	auth    *service.AuthService
	rec     *service.RecommendService
	hasRepo bool
	in      *bufio.Scanner

	// sesión actual
	userID   string
	username string
}

func (c *console) runLoop() {
	fmt.Println("========================================")
	fmt.Println("  FlowMart AI — recomendador de contenido")
	fmt.Println("========================================")

	for {
		c.printMenu()
		choice, ok := c.readInt("Opción: ")
		if !ok {
			fmt.Println("Entrada inválida, ingresá un número del menú.")
			continue
		}

		switch choice {
		case 1:
			c.register()
		case 2:
			c.login()
		case 3:
			c.browseCatalog()
		case 4:
			c.myRecommendations()
		case 5:
			c.randomInteraction()
		case 6:
			c.myStats()
		case 7:
			c.updateProfile()
		case 8:
			c.logout()
		case 0:
			fmt.Println("¡Hasta luego!")
			return
		default:
			fmt.Println("Opción desconocida.")
		}
	}
}

func (c *console) printMenu() {
	fmt.Println()
	if c.userID != "" {
		fmt.Printf("Sesión: %s (%s)\n", c.username, c.userID)
	} else {
		fmt.Println("Sesión: invitado")
	}
	fmt.Println("1. Registrarse")
	fmt.Println("2. Iniciar sesión")
	fmt.Println("3. Explorar catálogo")
	fmt.Println("4. Mis recomendaciones")
	fmt.Println("5. Interacción aleatoria")
	fmt.Println("6. Mis estadísticas")
	fmt.Println("7. Actualizar perfil")
	fmt.Println("8. Cerrar sesión")
	fmt.Println("0. Salir")
}

func (c *console) readLine(prompt string) string {
	fmt.Print(prompt)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) readInt(prompt string) (int, bool) {
	raw := c.readLine(prompt)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *console) register() {
	username := c.readLine("Usuario: ")
	if username == "" {
		fmt.Println("El usuario no puede estar vacío.")
		return
	}

	if !c.hasRepo {
		// sin store: alta directa en el motor, ids secuenciales locales
		userID := fmt.Sprintf("user_%03d", len(c.engine.UserIDs())+1)
		c.engine.AddUser(userID, username)
		c.userID, c.username = userID, username
		fmt.Printf("Registrado en memoria como %s.\n", userID)
		return
	}

	password := c.readLine("Contraseña: ")
	email := c.readLine("Email: ")
	u, err := c.auth.Register(c.ctx, username, password, email)
	if err != nil {
		fmt.Printf("No se pudo registrar: %v\n", err)
		return
	}
	c.userID, c.username = u.UserID, u.Username
	fmt.Printf("Registrado como %s.\n", u.UserID)
}

func (c *console) login() {
	if !c.hasRepo {
		fmt.Println("Sin store de usuarios; usá Registrarse (modo memoria).")
		return
	}
	username := c.readLine("Usuario: ")
	password := c.readLine("Contraseña: ")

	_, u, err := c.auth.Login(c.ctx, username, password)
	if err != nil {
		fmt.Printf("Login falló: %v\n", err)
		return
	}
	c.engine.AddUser(u.UserID, u.Username)
	c.userID, c.username = u.UserID, u.Username
	fmt.Printf("¡Bienvenido, %s!\n", u.Username)
}

func (c *console) logout() {
	if c.userID == "" {
		fmt.Println("No hay sesión abierta.")
		return
	}
	fmt.Printf("Sesión de %s cerrada.\n", c.username)
	c.userID, c.username = "", ""
}

func (c *console) browseCatalog() {
	cats := c.engine.Categories()
	fmt.Printf("\nCatálogo: %d items en %d categorías\n", c.engine.Catalog().Len(), len(cats))
	for _, cat := range cats {
		items := c.engine.ItemsByCategory(cat)
		fmt.Printf("  %s (%d)\n", cat, len(items))
		for _, name := range items {
			fmt.Printf("    - %s\n", name)
		}
	}

	fmt.Println("\nEn tendencia:")
	trending, _ := c.rec.Trending(c.ctx, 5)
	if len(trending) == 0 {
		fmt.Println("  (todavía sin interacciones)")
	}
	for i, e := range trending {
		fmt.Printf("  %d. %s (%d pts)\n", i+1, e.Item, e.Score)
	}
}

func (c *console) requireSession() bool {
	if c.userID == "" {
		fmt.Println("Primero registrate o iniciá sesión.")
		return false
	}
	return true
}

func (c *console) myRecommendations() {
	if !c.requireSession() {
		return
	}
	n, ok := c.readInt("¿Cuántas? (default 5): ")
	if !ok || n <= 0 {
		n = service.DefaultN
	}
	useHybrid := strings.EqualFold(c.readLine("¿Híbridas? (s/n): "), "s")

	items, err := c.rec.Recommend(c.ctx, service.RecRequest{
		UserID: c.userID, N: n, Hybrid: useHybrid, Refresh: true,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(items) == 0 {
		fmt.Println("Todavía no hay suficiente señal; interactuá con algo primero.")
		return
	}
	for i, it := range items {
		fmt.Printf("  %d. %s\n", i+1, it)
	}
}

var randomActions = []string{
	recommender.ActionView,
	recommender.ActionLike,
	recommender.ActionShare,
	recommender.ActionWatch,
}

func (c *console) randomInteraction() {
	if !c.requireSession() {
		return
	}
	items := c.engine.ListItems()
	if len(items) == 0 {
		fmt.Println("Catálogo vacío.")
		return
	}

	item := items[rand.Intn(len(items))].Name
	action := randomActions[rand.Intn(len(randomActions))]
	duration := 0
	if action == recommender.ActionWatch {
		duration = 10 + rand.Intn(110)
	}

	if err := c.rec.RecordInteraction(c.ctx, c.userID, item, action, duration); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if duration > 0 {
		fmt.Printf("Registrado: %s -> %s (%d seg)\n", action, item, duration)
	} else {
		fmt.Printf("Registrado: %s -> %s\n", action, item)
	}
}

func (c *console) myStats() {
	if !c.requireSession() {
		return
	}
	stats, ok := c.rec.Stats(c.userID)
	if !ok {
		fmt.Println("Sin datos todavía.")
		return
	}

	fmt.Printf("\nUsuario: %s (%s)\n", stats.Username, stats.UserID)
	fmt.Printf("Interacciones: %d\n", stats.EventCount)
	if len(stats.Interests) == 0 {
		fmt.Println("Intereses: (ninguno todavía)")
	} else {
		fmt.Println("Intereses:")
		for _, cat := range stats.Interests {
			fmt.Printf("  - %s (score %.2f)\n", cat, stats.InterestScores[cat])
		}
	}
	if len(stats.WatchHistory) > 0 {
		fmt.Printf("Vistos: %s\n", strings.Join(stats.WatchHistory, ", "))
	}
}

func (c *console) updateProfile() {
	if !c.requireSession() {
		return
	}
	if !c.hasRepo {
		fmt.Println("Sin store de usuarios no hay perfil persistente para editar.")
		return
	}

	var upd service.ProfileUpdate
	if v := c.readLine("Nombre completo (enter para saltear): "); v != "" {
		upd.FullName = &v
	}
	if raw := c.readLine("Edad (enter para saltear): "); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Edad inválida, se ignora.")
		} else {
			upd.Age = &age
		}
	}
	if v := c.readLine("País (enter para saltear): "); v != "" {
		upd.Country = &v
	}

	if err := c.auth.UpdateProfile(c.ctx, c.userID, upd); err != nil {
		fmt.Printf("No se pudo actualizar: %v\n", err)
		return
	}
	fmt.Println("Perfil actualizado.")
}

// ====== Demo ======

// runDemo simula tres usuarios interactuando y muestra recomendaciones,
// la variante híbrida y el reporte de analytics.
func (c *console) runDemo() {
	fmt.Println("=== Demo del recomendador ===")

	demoUsers := []struct{ id, name string }{
		{"user_001", "ana"},
		{"user_002", "bruno"},
		{"user_003", "carla"},
	}
	for _, u := range demoUsers {
		c.engine.AddUser(u.id, u.name)
	}

	type step struct {
		user, item, action string
		duration           int
	}
	script := []step{
		{"user_001", "Python Tutorial", "watch", 45},
		{"user_001", "Machine Learning Crash Course", "like", 0},
		{"user_001", "Web Development Full Course", "view", 0},
		{"user_002", "Machine Learning Crash Course", "watch", 60},
		{"user_002", "Valorant Gameplay Tips", "share", 0},
		{"user_002", "Python Tutorial", "view", 0},
		{"user_003", "Jazz Relaxation Playlist", "watch", 35},
		{"user_003", "Pop Music Mix 2024", "like", 0},
		{"user_003", "Python Tutorial", "rating_5", 0},
	}
	for _, s := range script {
		if err := c.rec.RecordInteraction(c.ctx, s.user, s.item, s.action, s.duration); err != nil {
			fmt.Printf("  (interacción salteada: %v)\n", err)
		}
	}
	fmt.Printf("%d interacciones simuladas.\n", len(script))

	for _, u := range demoUsers {
		items, _ := c.rec.Recommend(c.ctx, service.RecRequest{UserID: u.id, N: 5, Refresh: true})
		fmt.Printf("\nRecomendaciones para %s: %s\n", u.name, strings.Join(items, ", "))

		hybridItems, _ := c.rec.Recommend(c.ctx, service.RecRequest{UserID: u.id, N: 5, Hybrid: true, Refresh: true})
		fmt.Printf("Híbridas para %s:       %s\n", u.name, strings.Join(hybridItems, ", "))
	}

	fmt.Println("\nEn tendencia:")
	trending, _ := c.rec.Trending(c.ctx, 5)
	for i, e := range trending {
		fmt.Printf("  %d. %s (%d pts)\n", i+1, e.Item, e.Score)
	}

	report := c.rec.Report()
	fmt.Println("\nReporte de analytics:")
	fmt.Printf("  Interacciones totales: %d\n", report.TotalInteractions)
	fmt.Printf("  Usuarios totales:      %d\n", report.TotalUsers)
	fmt.Printf("  Por categoría:         %v\n", report.PopularCategories)
}
