package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jub0bs/fcors"
	"github.com/sashabaranov/go-openai"

	"rentify/admin"
	"rentify/auth"
	"rentify/config"
	"rentify/db"
	"rentify/httpapi"
	"rentify/listing"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	client, err := db.Connect(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("bootstrap database: %v", err)
	}
	defer client.Disconnect(context.Background())

	database := client.Database(cfg.DBName)

	authRepo := auth.NewRepository(database)
	listingRepo := listing.NewRepository(database)

	var generator listing.Generator
	if cfg.OpenAIAPIKey != "" {
		generator = listing.NewOpenAIGenerator(openai.NewClient(cfg.OpenAIAPIKey))
		log.Println("description generator: openai with template fallback")
	}

	authSvc := auth.NewService(authRepo, cfg.JWTSecret)
	listingSvc := listing.NewService(listingRepo, generator)
	adminSvc := admin.NewService(authRepo, listingRepo)

	userCache := httpapi.NewUserCache()
	go userCache.Start()
	defer userCache.Stop()

	handler := httpapi.NewHandler(authSvc, listingSvc, adminSvc)
	router := httpapi.NewRouter(handler, userCache)

	cors, err := corsMiddleware(cfg)
	if err != nil {
		log.Fatalf("configure cors: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: cors(router),
	}

	go func() {
		log.Printf("rentify api listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	log.Printf("received %s, shutting down", <-ch)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func corsMiddleware(cfg config.Config) (fcors.Middleware, error) {
	methods := fcors.WithMethods(
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
	)
	headers := fcors.WithRequestHeaders("Authorization", "Content-Type")

	if cfg.AllowAnyOrigin() {
		return fcors.AllowAccess(fcors.FromAnyOrigin(), methods, headers)
	}

	origins := cfg.CORSOrigins
	return fcors.AllowAccess(fcors.FromOrigins(origins[0], origins[1:]...), methods, headers)
}
