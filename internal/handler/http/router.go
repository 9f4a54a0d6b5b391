package http

import (
	"log/slog"
	"os"

	"github.com/fichadas/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	sectorHandler SectorHandler,
	novedadHandler NovedadHandler,
	configHandler ConfigHandler,
	punchHandler PunchHandler,
	exportHandler ExportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/sectors", func(r chi.Router) {
				r.Get("/", sectorHandler.List)
				r.Post("/", sectorHandler.Create)
				r.Get("/{id}", sectorHandler.Get)
				r.Put("/{id}", sectorHandler.Update)
				r.Delete("/{id}", sectorHandler.Delete)
			})

			r.Route("/novedades", func(r chi.Router) {
				r.Get("/", novedadHandler.List)
				r.Post("/", novedadHandler.Create)
				r.Get("/{id}", novedadHandler.Get)
				r.Put("/{id}", novedadHandler.Update)
				r.Delete("/{id}", novedadHandler.Delete)
			})

			r.Route("/configs", func(r chi.Router) {
				r.Get("/", configHandler.List)
				r.Get("/{id}", configHandler.Get)
				r.Get("/sector/{sectorID}", configHandler.ListBySector)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", configHandler.Create)
					r.Put("/{id}", configHandler.Update)
					r.Delete("/{id}", configHandler.Delete)
				})
			})

			r.Route("/punches", func(r chi.Router) {
				r.Get("/", punchHandler.List)
				r.Post("/", punchHandler.Create)
				r.Get("/{id}", punchHandler.Get)
				r.Put("/{id}", punchHandler.Update)
				r.Delete("/{id}", punchHandler.Delete)
				r.Get("/employee/{employeeID}", punchHandler.ListByEmployee)
				r.Post("/{id}/recalculate", punchHandler.Recalculate)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/recalculate-all", punchHandler.RecalculateAll)
					r.Post("/import", punchHandler.Import)
					r.Post("/export", exportHandler.Export)
				})
			})
		})
	})
	return r
}
