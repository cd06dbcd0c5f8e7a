package http

import (
	"net/http"
	"time"

	obsmw "freehost/internal/observability/middleware"
	"freehost/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type handlers struct {
	auth      service.AuthService
	sites     service.SiteService
	files     service.FileService
	publisher service.PublishService
}

func NewRouter(
	auth service.AuthService,
	sites service.SiteService,
	files service.FileService,
	publisher service.PublishService,
	corsOrigins []string,
) http.Handler {
	h := &handlers{auth: auth, sites: sites, files: files, publisher: publisher}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	// Publish blocks for the simulated upload; the timeout must outlast it.
	r.Use(chimw.Timeout(2 * time.Minute))
	r.Use(httprate.LimitByIP(100, 1*time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   originsIfSet(corsOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(obsmw.WithRequestAndTrace)
	r.Use(obsmw.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/google", h.googleLogin)
			r.Post("/logout", h.logout)
			r.Get("/me", h.currentUser)
			r.Post("/google-connection", h.setGoogleConnection)
		})

		r.Route("/sites", func(r chi.Router) {
			r.Get("/", h.listSites)
			r.Post("/", h.createSite)
			r.Route("/{siteID}", func(r chi.Router) {
				r.Get("/", h.getSite)
				r.Delete("/", h.deleteSite)
				r.Put("/storage", h.updateStorage)
				r.Post("/publish", h.publishSite)
				r.Get("/files", h.listFiles)
				r.Get("/versions", h.listVersions)
				r.Post("/versions", h.createVersion)
			})
		})

		r.Route("/files", func(r chi.Router) {
			r.Post("/", h.createFile)
			r.Put("/{fileID}", h.saveFile)
			r.Delete("/{fileID}", h.deleteFile)
		})
	})

	return r
}

func originsIfSet(origins []string) []string {
	cleaned := origins[:0]
	for _, o := range origins {
		if o != "" {
			cleaned = append(cleaned, o)
		}
	}
	if len(cleaned) == 0 {
		return []string{"*"}
	}
	return cleaned
}
