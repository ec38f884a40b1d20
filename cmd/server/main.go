package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chordcrack/internal/audio"
	"chordcrack/internal/chords"
	"chordcrack/internal/config"
	"chordcrack/internal/database"
	"chordcrack/internal/handlers"
	"chordcrack/internal/repository"
	"chordcrack/internal/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
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

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Chord catalog and audio library
	catalog := chords.Default()
	library := audio.NewLibrary(cfg.AudioAssetsPath)
	library.VerifyAssets(catalog)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)

	// Sign in with Google / Apple: the mobile client completes the provider
	// flow natively and posts the authorization code for exchange
	oauthProviders := map[string]service.OAuthProvider{
		"google": {
			Name: "google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
		"apple": {
			Name: "apple",
			Config: &oauth2.Config{
				ClientID:     cfg.AppleClientID,
				ClientSecret: cfg.AppleClientSecret,
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://appleid.apple.com/auth/authorize",
					TokenURL: "https://appleid.apple.com/auth/token",
				},
				Scopes: []string{"name", "email"},
			},
			UserInfoURL: "https://appleid.apple.com/auth/userinfo",
		},
	}

	// Initialize services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, oauthProviders)
	gameService := service.NewGameService(gameRepo)
	challengeService := service.NewChallengeService(challengeRepo, userRepo, emailService)
	playService := service.NewPlayService(catalog, library, gameService, challengeService)
	accountService := service.NewAccountService(userRepo, gameRepo, challengeRepo, emailService)

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService)
	authHandler := handlers.NewAuthHandler(authService)
	playHandler := handlers.NewPlayHandler(playService)
	gameHandler := handlers.NewGameHandler(gameService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	accountHandler := handlers.NewAccountHandler(accountService)
	audioHandler := handlers.NewAudioHandler(library)

	// Setup routes
	mux := http.NewServeMux()

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/auth/refresh", middleware.RateLimit(authHandler.Refresh))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("POST /api/auth/oauth/{provider}", middleware.RateLimit(authHandler.OAuthExchange))
	mux.HandleFunc("POST /api/auth/password-strength", authHandler.CheckPasswordStrength)
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.Me))

	// Live play routes
	mux.HandleFunc("POST /api/play/start", middleware.RequireAuth(playHandler.Start))
	mux.HandleFunc("GET /api/play/state", middleware.RequireAuth(playHandler.State))
	mux.HandleFunc("POST /api/play/guess", middleware.RequireAuth(playHandler.Guess))
	mux.HandleFunc("POST /api/play/advance", middleware.RequireAuth(playHandler.Advance))
	mux.HandleFunc("POST /api/play/quit", middleware.RequireAuth(playHandler.Quit))

	// Session log, leaderboard and stats
	mux.HandleFunc("POST /api/game/sessions", middleware.RequireAuth(gameHandler.RecordSession))
	mux.HandleFunc("GET /api/game/sessions", middleware.RequireAuth(gameHandler.RecentSessions))
	mux.HandleFunc("GET /api/game/stats", middleware.RequireAuth(gameHandler.Stats))
	mux.HandleFunc("GET /api/game/leaderboard", gameHandler.Leaderboard)

	// Challenge routes
	mux.HandleFunc("POST /api/challenges", middleware.RequireAuth(challengeHandler.Create))
	mux.HandleFunc("GET /api/challenges", middleware.RequireAuth(challengeHandler.List))
	mux.HandleFunc("GET /api/challenges/{id}", middleware.RequireAuth(challengeHandler.Get))
	mux.HandleFunc("POST /api/challenges/{id}/accept", middleware.RequireAuth(challengeHandler.Accept))
	mux.HandleFunc("POST /api/challenges/{id}/scores", middleware.RequireAuth(challengeHandler.SubmitScore))

	// Account routes
	mux.HandleFunc("GET /api/account/export", middleware.RequireAuth(accountHandler.Export))
	mux.HandleFunc("DELETE /api/account", middleware.RequireAuth(accountHandler.Delete))

	// Audio clips
	mux.HandleFunc("GET /api/audio/{asset}", audioHandler.Clip)

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

	// Start background cleanup
	go cleanupLoop(authService, challengeService, playService)

	// Graceful shutdown
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

// cleanupLoop periodically removes expired refresh sessions, expires overdue
// challenges and drops abandoned live games
func cleanupLoop(authService *service.AuthService, challengeService *service.ChallengeService, playService *service.PlayService) {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Failed to clean up expired sessions: %v", err)
		}
		if err := challengeService.ExpireOldChallenges(); err != nil {
			log.Printf("Failed to expire challenges: %v", err)
		}
		playService.CleanupIdle()
	}
}
