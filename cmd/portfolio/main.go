// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/davirds/portfolio/internal/config"
	"github.com/davirds/portfolio/internal/contact"
	"github.com/davirds/portfolio/internal/handler"
	"github.com/davirds/portfolio/internal/i18n"
	"github.com/davirds/portfolio/internal/logging"
	"github.com/davirds/portfolio/internal/middleware"
	"github.com/davirds/portfolio/internal/offer"
	"github.com/davirds/portfolio/internal/projects"
	"github.com/davirds/portfolio/internal/render"
	"github.com/davirds/portfolio/internal/scheduler"
	"github.com/davirds/portfolio/internal/session"
	"github.com/davirds/portfolio/internal/version"
	"github.com/davirds/portfolio/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// Scheduled job names.
const (
	jobSweepForms     = "sweep-contact-forms"
	jobReloadProjects = "reload-projects"
	jobRefreshAds     = "refresh-ad-creatives"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "portfolio - davirds.dev website\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SESSION_SECRET    Session and CSRF key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_CONTACT_ENDPOINT  Contact form relay URL (default: Formspree)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SUBMIT_TIMEOUT    Contact relay timeout, below the request timeout (default: 15s)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_REDIS_URL         Redis URL for shared sessions (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_PROJECTS_FILE     Projects catalog overriding the built-in one (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_MEDIA_DIR         Image directory served at /media (default: ./media)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Printf("portfolio %s\n", versionInfo.Long())
		os.Exit(0)
	}

	if err := run(versionInfo); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(versionInfo *version.Info) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	logger := slog.New(logging.NewContextHandler(textHandler))
	slog.SetDefault(logger)

	ctx := context.Background()

	catalog, err := i18n.New(logger)
	if err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}

	projectCatalog, err := projects.New(web.ProjectsJSON, cfg.ProjectsFile, logger)
	if err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS: web.Templates(),
		Catalog:     catalog,
		IsDev:       cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	sessions, err := session.New(ctx, session.Config{
		IsDevelopment: cfg.IsDevelopment(),
		Lifetime:      cfg.SessionLifetime,
		RedisURL:      cfg.RedisURL,
		RedisPrefix:   cfg.SessionPrefix,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("initializing sessions: %w", err)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			slog.Error("error closing session store", "error", err)
		}
	}()

	forms := contact.NewRegistry(contact.Config{
		Sink:    contact.NewHTTPSink(cfg.ContactEndpoint, nil),
		Timeout: cfg.SubmitTimeout,
		Logger:  logger,
	})

	creatives := offer.NewGenerator(offer.GeneratorConfig{
		MediaDir: cfg.MediaDir,
		Backdrop: cfg.AdBackdrop,
		Logger:   logger,
	})

	sched, err := newScheduler(cfg, logger, forms, projectCatalog, creatives)
	if err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	siteHandler := handler.NewSiteHandler(renderer, catalog, projectCatalog, forms, logger)
	contactHandler := handler.NewContactHandler(forms, catalog, logger)
	prefsHandler := handler.NewPrefsHandler(logger)
	offerHandler := handler.NewOfferHandler(renderer, creatives, logger)
	mediaHandler := handler.NewMediaHandler(cfg.MediaDir)
	seoHandler := handler.NewSEOHandler(cfg.SiteURL, cfg.IsDevelopment(), projectCatalog, logger)
	healthHandler := handler.NewHealthHandler(handler.HealthConfig{
		Version:        versionInfo,
		SessionBackend: sessions.Backend,
		MediaDir:       cfg.MediaDir,
		Projects:       projectCatalog,
		Forms:          forms,
		Jobs:           sched,
	})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.RequestPath)

	// Health checks stay outside sessions so probes do not create visitors
	r.Get(handler.RouteHealth, healthHandler.Health)
	r.Get(handler.RouteHealthLive, healthHandler.Liveness)

	r.Get(handler.RouteRobots, seoHandler.Robots)
	r.Get(handler.RouteSitemap, seoHandler.Sitemap)
	r.Get(handler.RouteSecurityTxt, seoHandler.SecurityTxt)

	// Static assets
	staticServer := http.StripPrefix("/static/", http.FileServerFS(web.Static()))
	r.With(middleware.StaticCache(7*24*time.Hour)).Handle("/static/*", staticServer)
	r.With(middleware.StaticCache(24*time.Hour)).Get(projects.PlaceholderImage, func(w http.ResponseWriter, req *http.Request) {
		http.ServeFileFS(w, req, web.Static(), "placeholder.svg")
	})
	r.With(middleware.StaticCache(24*time.Hour)).Get("/media/*", mediaHandler.Serve)

	csrfCfg := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment(), cfg.ServerPort)
	csrfCfg.Logger = logger

	r.Group(func(r chi.Router) {
		r.Use(sessions.LoadAndSave)
		r.Use(middleware.Visitor(sessions.SessionManager))
		r.Use(middleware.Preferences)
		r.Use(middleware.CSRF(csrfCfg))

		r.Get(handler.RouteRoot, siteHandler.Home)

		r.Post(handler.RouteContact, contactHandler.Submit)
		r.Post(handler.RouteContactField, contactHandler.Field)
		r.Get(handler.RouteContactState, contactHandler.State)

		r.Post(handler.RoutePrefsTheme, prefsHandler.Theme)
		r.Post(handler.RoutePrefsLanguage, prefsHandler.Language)
	})

	// Offer pages are static content and need no visitor state
	r.Group(func(r chi.Router) {
		r.Use(middleware.Preferences)

		r.Get(handler.RoutePsi, offerHandler.Landing)
		r.Get(handler.RoutePsiAd, offerHandler.Ad)
		r.Get(handler.RoutePsiAdImage, offerHandler.AdImage)
		r.Get(handler.RoutePsiAdImageWide, offerHandler.AdImageWide)
		r.Get(handler.RoutePsiAdImagePNG, offerHandler.CreativeSquare)
		r.Get(handler.RoutePsiAdImageWidePNG, offerHandler.CreativeWide)
	})

	r.NotFound(middleware.Preferences(http.HandlerFunc(siteHandler.NotFound)).ServeHTTP)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second, // Mitigates slowloris
		MaxHeaderBytes:    1 << 20,          // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// SIGHUP re-runs the reload jobs; SIGINT and SIGTERM stop the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range quit {
		if sig != syscall.SIGHUP {
			break
		}
		reloadNow(sched)
	}

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout; in-flight submissions finish within SubmitTimeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// reloadNow runs the registered reload jobs immediately.
func reloadNow(sched *scheduler.Scheduler) {
	for _, name := range []string{jobReloadProjects, jobRefreshAds} {
		err := sched.TriggerNow(name)
		if err != nil && !errors.Is(err, scheduler.ErrJobNotFound) {
			slog.Error("reload failed", "job", name, "error", err)
		}
	}
}

// newScheduler registers the background jobs.
func newScheduler(cfg *config.Config, logger *slog.Logger, forms *contact.Registry, projectCatalog *projects.Catalog, creatives *offer.Generator) (*scheduler.Scheduler, error) {
	sched := scheduler.New(logger)

	err := sched.Register(scheduler.Job{
		Name:        jobSweepForms,
		Description: "Drop contact form state of idle visitors",
		Schedule:    cfg.SweepSchedule,
		Run: func(ctx context.Context) error {
			if n := forms.Sweep(cfg.ControllerIdleTTL); n > 0 {
				logger.InfoContext(ctx, "swept idle contact forms", "removed", n, "remaining", forms.Len())
			}
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("registering %s: %w", jobSweepForms, err)
	}

	if cfg.ProjectsReloadEnabled() {
		err := sched.Register(scheduler.Job{
			Name:        jobReloadProjects,
			Description: "Re-read the projects catalog file",
			Schedule:    cfg.ProjectsReloadSchedule,
			Run: func(context.Context) error {
				return projectCatalog.Reload()
			},
		})
		if err != nil {
			return nil, fmt.Errorf("registering %s: %w", jobReloadProjects, err)
		}
	}

	if cfg.AdBackdrop != "" {
		err := sched.Register(scheduler.Job{
			Name:        jobRefreshAds,
			Description: "Re-render ad creatives so backdrop changes show up",
			Schedule:    "@daily",
			Run: func(context.Context) error {
				creatives.Invalidate()
				return nil
			},
		})
		if err != nil {
			return nil, fmt.Errorf("registering %s: %w", jobRefreshAds, err)
		}
	}

	return sched, nil
}
