package main

import (
	"html/template"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"gotclass/internal/catalog"
	"gotclass/internal/config"
	"gotclass/internal/database"
	"gotclass/internal/handlers"
	"gotclass/internal/repository"
	"gotclass/internal/service"
	"gotclass/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Create the stats tables if they don't exist
	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	// Load the class list and build the real/fake pairs
	classCatalog, err := catalog.Load(cfg.DataPath)
	if err != nil {
		log.Fatalf("Failed to load class catalog: %v", err)
	}
	if classCatalog.Count() == 0 {
		log.Fatalf("Class catalog %s contains no real/fake pairs", cfg.DataPath)
	}

	log.Printf("Loaded %d class pairs", classCatalog.Count())

	// Load templates
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	// Initialize repositories and services
	statsRepo := repository.NewStatsRepository(db)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	quizService := service.NewQuizService(classCatalog, statsRepo, rng)
	sessions := session.NewManager(cfg.SessionSecret, 24*time.Hour)

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(quizService, sessions, templates)

	// Setup routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", quizHandler.Home)
	mux.HandleFunc("GET /next_question", quizHandler.NextQuestion)
	mux.HandleFunc("POST /submit_answer", quizHandler.SubmitAnswer)
	mux.HandleFunc("GET /restart", quizHandler.Restart)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	return template.ParseGlob(filepath.Join(templatesPath, "*.tmpl"))
}
