// Package api exposes the knowledge graph and profile stores over HTTP.
package api

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/meikuraledutech/skillgraph"
	"go.uber.org/zap"
)

// Options configures New. Graph is required; Profiles may be nil, in which case
// the profile and upload routes are not registered.
type Options struct {
	Graph          skillgraph.GraphSource
	Profiles       skillgraph.ProfileStore
	Logger         *zap.Logger
	UploadDir      string
	MaxUploadBytes int
	AllowOrigins   string
}

type handlers struct {
	graph     skillgraph.GraphSource
	profiles  skillgraph.ProfileStore
	log       *zap.Logger
	uploadDir string
}

// New builds the fiber application with all routes and middleware.
func New(opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	cfg := fiber.Config{AppName: "skillgraph"}
	if opts.MaxUploadBytes > 0 {
		cfg.BodyLimit = opts.MaxUploadBytes
	}
	app := fiber.New(cfg)

	app.Use(recoverer.New())
	app.Use(cors.New(cors.Config{AllowOrigins: splitOrigins(opts.AllowOrigins)}))
	app.Use(RequestLogger(log))

	h := &handlers{
		graph:     opts.Graph,
		profiles:  opts.Profiles,
		log:       log,
		uploadDir: opts.UploadDir,
	}

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ── Knowledge graph ───────────────────────────────────────────────
	app.Get("/api/graph-data", h.graphData)

	if h.profiles == nil {
		return app
	}

	// ── Profiles ──────────────────────────────────────────────────────
	app.Post("/api/profile", h.createProfile)
	app.Get("/api/profiles", h.listProfiles)
	app.Get("/api/profile/:id", h.getProfile)
	app.Delete("/api/profile/:id", h.deleteProfile)

	// ── Resumes ───────────────────────────────────────────────────────
	app.Post("/api/upload", h.uploadResume)
	app.Get("/api/resume/:id", h.getResume)
	if h.uploadDir != "" {
		app.Get("/uploads*", static.New(h.uploadDir))
	}

	return app
}

func splitOrigins(s string) []string {
	if s == "" {
		return []string{"*"}
	}
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
