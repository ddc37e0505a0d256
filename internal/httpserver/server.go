package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/mealplanhq/mealplan-hub/internal/auth"
	"github.com/mealplanhq/mealplan-hub/internal/blob"
	"github.com/mealplanhq/mealplan-hub/internal/checkins"
	"github.com/mealplanhq/mealplan-hub/internal/config"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
	"github.com/mealplanhq/mealplan-hub/internal/planner"
	"github.com/mealplanhq/mealplan-hub/internal/profiles"
	"github.com/mealplanhq/mealplan-hub/internal/progress"
	"github.com/mealplanhq/mealplan-hub/internal/recipes"
	"github.com/mealplanhq/mealplan-hub/internal/reports"
	"github.com/mealplanhq/mealplan-hub/internal/storage"
	"github.com/mealplanhq/mealplan-hub/internal/storage/memory"
	"github.com/mealplanhq/mealplan-hub/internal/storage/postgres"
	"github.com/mealplanhq/mealplan-hub/internal/wellness"
)

// Server представляет HTTP сервер
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	storage        storage.Storage
	authMiddleware *auth.Middleware
}

// New создаёт новый HTTP сервер
func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	// Инициализируем storage
	s.initStorage()

	// Регистрируем маршруты
	s.routes()
	return s
}

// initStorage инициализирует storage (Memory или Postgres)
func (s *Server) initStorage() {
	if s.config.DatabaseURL == "" {
		log.Println("Используется in-memory storage")
		s.storage = memory.New()
	} else {
		log.Println("Подключение к PostgreSQL...")
		ctx := context.Background()
		pgStorage, err := postgres.New(ctx, s.config.DatabaseURL)
		if err != nil {
			log.Printf("Ошибка подключения к PostgreSQL: %v", err)
			log.Println("Fallback на in-memory storage")
			s.storage = memory.New()
		} else {
			log.Println("PostgreSQL подключен успешно")
			s.storage = pgStorage
		}
	}
}

// routes регистрирует маршруты
func (s *Server) routes() {
	// Health check (no auth required)
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	// Auth API (no auth required)
	authService := auth.NewService(s.config)
	authHandler := auth.NewHandlers(authService)
	s.authMiddleware = auth.NewMiddleware(s.config, authService)

	// POST /v1/auth/dev - local dev token
	s.mux.HandleFunc("POST /v1/auth/dev", authHandler.HandleDevAuth)

	// Recipes API
	recipesStorage := s.getRecipesStorage()
	recipesService := recipes.NewService(recipesStorage)
	if err := recipesService.EnsureSeeded(context.Background()); err != nil {
		log.Printf("WARN recipes: catalog seeding failed: %v", err)
	}

	// GET /v1/recipes - list recipes with optional filters
	s.mux.HandleFunc("GET /v1/recipes", recipes.HandleList(recipesService))

	// GET /v1/recipes/{id} - get a single recipe
	s.mux.HandleFunc("GET /v1/recipes/{id}", recipes.HandleGet(recipesService))

	// Progress API
	progressService := progress.NewService(s.getProgressStorage())

	// GET /v1/progress - cumulative counters and streaks
	s.mux.HandleFunc("GET /v1/progress", progress.HandleGet(progressService))

	// POST /v1/progress/recipes-completed - record a completed recipe
	s.mux.HandleFunc("POST /v1/progress/recipes-completed", progress.HandleRecipeCompleted(progressService))

	// Profiles API
	var syncer profiles.Syncer
	if s.config.ProfileSyncURL != "" {
		syncer = profiles.NewHTTPSyncer(s.config.ProfileSyncURL, time.Duration(s.config.ProfileSyncTimeoutSeconds)*time.Second)
	}
	profileService := profiles.NewService(s.storage, progressService, syncer)

	// GET /v1/profile - current profile or defaults
	s.mux.HandleFunc("GET /v1/profile", profiles.HandleGet(profileService))

	// PUT /v1/profile - replace profile
	s.mux.HandleFunc("PUT /v1/profile", profiles.HandlePut(profileService))

	// POST /v1/profile/onboarding/complete - mark onboarding done
	s.mux.HandleFunc("POST /v1/profile/onboarding/complete", profiles.HandleCompleteOnboarding(profileService))

	// Planner API
	plannerService := planner.NewService(
		&recipeSourceAdapter{service: recipesService},
		&profileSourceAdapter{service: profileService},
		s.config.PlanSwapStrict,
	)

	// POST /v1/plan/weekly - generate a 7-day plan
	s.mux.HandleFunc("POST /v1/plan/weekly", planner.HandleGeneratePlan(plannerService))

	// POST /v1/plan/swap - find an easier alternative
	s.mux.HandleFunc("POST /v1/plan/swap", planner.HandleSwap(plannerService))

	// Blob store (check-in photos, report files)
	blobStore, blobMode, err := blob.NewBlobStore(s.config.Blob, log.Default())
	if err != nil {
		log.Fatalf("FATAL blob: failed to initialize store: %v", err)
	}
	log.Printf("INFO blob: mode=%s", blobMode)

	// Check-ins API
	checkinsStorage := s.getCheckinsStorage()
	checkinsService := checkins.NewService(checkinsStorage, progressService, blobStore)

	// POST /v1/checkins - log a meal
	s.mux.HandleFunc("POST /v1/checkins", checkins.HandleCreate(checkinsService))

	// GET /v1/checkins - list check-ins for a date
	s.mux.HandleFunc("GET /v1/checkins", checkins.HandleListByDate(checkinsService))

	// GET /v1/checkins/week - check-ins grouped by day for a week
	s.mux.HandleFunc("GET /v1/checkins/week", checkins.HandleWeek(checkinsService))

	// GET /v1/checkins/stats - ledger totals and today's status
	s.mux.HandleFunc("GET /v1/checkins/stats", checkins.HandleStats(checkinsService))

	// POST /v1/checkins/photo - attach a meal photo
	s.mux.HandleFunc("POST /v1/checkins/photo", checkins.HandlePhotoUpload(checkinsService))

	// Wellness API
	wellnessStorage := s.getWellnessStorage()
	wellnessService := wellness.NewService(wellnessStorage)

	// PUT /v1/wellness - submit weekly wellness check-in
	s.mux.HandleFunc("PUT /v1/wellness", wellness.HandleSubmit(wellnessService))

	// GET /v1/wellness - list wellness check-ins
	s.mux.HandleFunc("GET /v1/wellness", wellness.HandleList(wellnessService))

	// GET /v1/wellness/summary - averages and latest entry
	s.mux.HandleFunc("GET /v1/wellness/summary", wellness.HandleSummary(wellnessService))

	// Reports API
	reportsService := reports.NewService(
		checkinsStorage,
		wellnessStorage,
		progressService,
		blobStore,
		s.config.ReportsMaxRangeDays,
		s.config.Blob.S3.PresignTTLSeconds,
	)
	reportsHandler := reports.NewHandlers(reportsService)

	// POST /v1/reports - generate a progress report
	s.mux.HandleFunc("POST /v1/reports", reportsHandler.HandleCreate)

	// GET /v1/reports/download - serve report bytes (local blob mode)
	s.mux.HandleFunc("GET /v1/reports/download", reportsHandler.HandleDownload)
}

// getRecipesStorage returns the recipes storage based on storage type
func (s *Server) getRecipesStorage() recipes.Storage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetRecipesStorage()
	case *postgres.PostgresStorage:
		return st.GetRecipesStorage()
	default:
		log.Fatal("unknown storage type")
		return nil
	}
}

// getCheckinsStorage returns the check-ins storage based on storage type
func (s *Server) getCheckinsStorage() checkins.Storage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetCheckinsStorage()
	case *postgres.PostgresStorage:
		return st.GetCheckinsStorage()
	default:
		log.Fatal("unknown storage type")
		return nil
	}
}

// getWellnessStorage returns the wellness storage based on storage type
func (s *Server) getWellnessStorage() wellness.Storage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetWellnessStorage()
	case *postgres.PostgresStorage:
		return st.GetWellnessStorage()
	default:
		log.Fatal("unknown storage type")
		return nil
	}
}

// getProgressStorage returns the progress storage based on storage type
func (s *Server) getProgressStorage() progress.Storage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetProgressStorage()
	case *postgres.PostgresStorage:
		return st.GetProgressStorage()
	default:
		log.Fatal("unknown storage type")
		return nil
	}
}

// recipeSourceAdapter adapts recipes.Service to planner.RecipeSource.
// It re-attempts catalog seeding on every plan generation, so a failed
// seed at startup does not leave the planner with an empty catalog until
// the next restart.
type recipeSourceAdapter struct {
	service *recipes.Service
}

func (a *recipeSourceAdapter) AllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	if err := a.service.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	return a.service.ListRecipes(ctx, recipes.ListFilter{})
}

// profileSourceAdapter adapts profiles.Service to planner.ProfileSource
type profileSourceAdapter struct {
	service *profiles.Service
}

func (a *profileSourceAdapter) ProfileFor(ctx context.Context, userID string) (domain.UserProfile, error) {
	return a.service.GetOrDefault(ctx, userID)
}

// defaultUserID identifies the single local user when auth is disabled.
const defaultUserID = "local-user"

// withDefaultUser stamps every request with the local user identity.
func withDefaultUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), defaultUserID)))
	})
}

// handleHealthz возвращает статус сервера
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// Start запускает HTTP сервер
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	// Build middleware chain (outermost first): CORS → Rate Limit → Auth → Router
	var handler http.Handler = s.mux
	if s.authMiddleware != nil && s.config.AuthMode != "none" {
		if s.config.AuthRequired {
			handler = s.authMiddleware.RequireAuth(handler)
		} else {
			handler = s.authMiddleware.OptionalAuth(handler)
		}
	} else {
		// Single-user mode: no tokens, every request acts as the local user.
		handler = withDefaultUser(handler)
	}
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)

	log.Printf("Сервер запущен на http://localhost%s\n", addr)
	log.Printf("Health check: http://localhost%s/healthz\n", addr)
	log.Printf("Recipes API: http://localhost%s/v1/recipes\n", addr)

	return http.ListenAndServe(addr, handler)
}

// Close закрывает storage и освобождает ресурсы
func (s *Server) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}
