package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gimnasio/internal/handlers"
	"gimnasio/internal/markdown"
	"gimnasio/internal/service"
	"gimnasio/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	AIService       service.AIService
	UserService     service.UserService
	ScheduleService service.ScheduleService
	RoutineService  service.RoutineService
	Renderer        *markdown.Renderer
	DB              handlers.Pinger
	// VectorStore is nil when similarity search is disabled.
	VectorStore    vectorstore.VectorStore
	CollectionName string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	geminiHandler := handlers.NewGeminiHandler(deps.AIService)
	routineHandler := handlers.NewRoutineHandler(deps.RoutineService, deps.Renderer)
	userHandler := handlers.NewUserHandler(deps.UserService)
	scheduleHandler := handlers.NewScheduleHandler(deps.ScheduleService)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.VectorStore, deps.CollectionName)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Route("/gemini", func(r chi.Router) {
			r.Post("/chat", geminiHandler.Chat)
			r.Get("/chat", geminiHandler.ChatQuery)
			r.Post("/chat/fitness", geminiHandler.FitnessChat)
			r.Post("/workout-routine", geminiHandler.WorkoutRoutine)
			r.Get("/test", geminiHandler.TestConnection)
			r.Get("/health", geminiHandler.Health)

			r.Get("/routines", routineHandler.List)
			r.Get("/routines/similar", routineHandler.Similar)
			r.Get("/routines/{id}", routineHandler.Get)
			r.Delete("/routines/{id}", routineHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Get("/coaches", userHandler.ListCoaches)
		r.Get("/coaches/{id}/schedules", scheduleHandler.ListByCoach)

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", scheduleHandler.List)
			r.Post("/", scheduleHandler.Create)
			r.Get("/{id}", scheduleHandler.Get)
			r.Put("/{id}", scheduleHandler.Update)
			r.Delete("/{id}", scheduleHandler.Delete)
		})
	})

	return r
}
