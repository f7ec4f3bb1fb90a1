// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gorilla/mux"
	"google.golang.org/api/option"

	"github.com/SherazHussain546/ChattyAI/internal/auth"
	"github.com/SherazHussain546/ChattyAI/internal/config"
	"github.com/SherazHussain546/ChattyAI/internal/handlers"
	"github.com/SherazHussain546/ChattyAI/internal/middleware"
	"github.com/SherazHussain546/ChattyAI/internal/ratelimit"
	"github.com/SherazHussain546/ChattyAI/internal/services"
	"github.com/SherazHussain546/ChattyAI/internal/services/ai"
	"github.com/SherazHussain546/ChattyAI/internal/services/chat"
	"github.com/SherazHussain546/ChattyAI/internal/services/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// --- AI Client ---
	// Construction failures degrade the /chat route to 503 instead of
	// taking the whole server down.
	var generator ai.Generator
	if cfg.GeminiAPIKey == "" {
		log.Println("[Startup] GEMINI_API_KEY not set; chat generation disabled")
	} else {
		aiConfig := ai.DefaultConfig(cfg.GeminiAPIKey)
		aiConfig.TextModel = cfg.GeminiTextModel
		aiConfig.VisionModel = cfg.GeminiVisionModel

		provider, err := ai.NewGeminiProvider(ctx, aiConfig)
		if err != nil {
			log.Printf("[Startup] Failed to initialize Gemini client: %v", err)
		} else {
			generator = ai.NewService(provider, aiConfig, services.NewLogger("ai"))
			log.Printf("[Startup] Gemini client ready (text=%s, vision=%s)", aiConfig.TextModel, aiConfig.VisionModel)
		}
	}

	// --- Firestore + Auth Clients ---
	var conversations store.ConversationStore
	var verifier auth.TokenVerifier

	storeConfig := &store.Config{
		ProjectID:     cfg.FirebaseProjectID,
		PrivateKeyID:  cfg.FirebasePrivateKeyID,
		PrivateKey:    cfg.FirebasePrivateKey,
		ClientEmail:   cfg.FirebaseClientEmail,
		ClientID:      cfg.FirebaseClientID,
		ClientCertURL: cfg.FirebaseClientCertURL,
		Timeout:       15 * time.Second,
	}
	if err := storeConfig.Validate(); err != nil {
		log.Printf("[Startup] Firebase credentials incomplete; persistence disabled: %v", err)
	} else {
		credentials, err := storeConfig.ServiceAccountJSON()
		if err != nil {
			log.Printf("[Startup] Failed to build Firebase credentials: %v", err)
		} else {
			app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, option.WithCredentialsJSON(credentials))
			if err != nil {
				log.Printf("[Startup] Failed to initialize Firebase app: %v", err)
			} else {
				firestoreClient, err := app.Firestore(ctx)
				if err != nil {
					log.Printf("[Startup] Failed to initialize Firestore client: %v", err)
				} else {
					conversations = store.NewFirestoreStore(firestoreClient, storeConfig, services.NewLogger("store"))
					defer firestoreClient.Close()
					log.Printf("[Startup] Firestore client ready (project=%s)", cfg.FirebaseProjectID)
				}

				authClient, err := app.Auth(ctx)
				if err != nil {
					log.Printf("[Startup] Failed to initialize Firebase auth client: %v", err)
				} else {
					verifier = auth.NewFirebaseVerifier(authClient)
				}
			}
		}
	}

	// --- Services ---
	chatService := chat.NewService(generator, conversations, services.NewLogger("chat"))

	// --- Handlers ---
	chatHandler := handlers.NewChatHandler(chatService)

	// --- Rate Limiter ---
	limiter := ratelimit.New(ratelimit.DefaultChatConfig(cfg.RateLimitPerMinute))
	defer limiter.Close()

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.Logging)

	// --- Public Routes ---
	r.HandleFunc("/", handlers.Root).Methods("GET")
	r.HandleFunc("/health", handlers.Health).Methods("GET")

	// --- API Routes ---
	api := r.PathPrefix("/").Subrouter()
	if cfg.RequireAuth {
		if verifier == nil {
			log.Println("[Startup] REQUIRE_AUTH set but auth client unavailable; requests will be rejected")
		}
		api.Use(middleware.RequireAuth(verifier))
	}
	api.Handle("/chat", middleware.RateLimit(limiter)(http.HandlerFunc(chatHandler.HandleChat))).Methods("POST")
	api.HandleFunc("/chats/{user_id}", chatHandler.GetUserChats).Methods("GET")
	api.HandleFunc("/chats/{user_id}/{chat_id}", chatHandler.GetChatMessages).Methods("GET")

	// CORS wraps the router so OPTIONS preflights short-circuit before
	// route matching.
	handler := middleware.CORS(r)

	// --- Server Configuration ---
	port := ":8000"
	if cfg.ServerPort != "" {
		port = ":" + cfg.ServerPort
	}
	srv := &http.Server{
		Addr:         port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	// --- Startup Logging ---
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("==================================================")
	log.Printf("ChattyAI API")
	log.Printf("==================================================")
	log.Printf("Server starting on port %s", port)
	log.Printf("Local access: http://localhost%s", port)
	log.Printf("Auth enforcement: %v | Rate limit: %d req/min", cfg.RequireAuth, cfg.RateLimitPerMinute)
	log.Printf("Server ready to accept connections!")
	log.Printf("==================================================")

	// --- Start Server in Goroutine ---
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
