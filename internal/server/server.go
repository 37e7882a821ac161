// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package server

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"github.com/JuanCarriles/travel-agency/internal/content"
	"github.com/JuanCarriles/travel-agency/internal/db"
	"github.com/JuanCarriles/travel-agency/internal/mail"
	"github.com/JuanCarriles/travel-agency/internal/server/templates"
)

//go:embed all:static
var staticFS embed.FS

func NewServer(
	serviceName string,
	staticDir string,
	loader *content.Loader,
	tStore db.TranslationStore,
	iStore db.InquiryStore,
	sender mail.Sender,
) *Server {
	return &Server{
		logger:      slog.Default().WithGroup("http"),
		serviceName: serviceName,
		staticDir:   staticDir,
		loader:      loader,
		site:        templates.NewSiteHandler(loader, tStore, iStore, sender),
		admin:       templates.NewAdminHandler(loader, tStore, iStore),
	}
}

type Server struct {
	serviceName string
	staticDir   string
	logger      *slog.Logger
	loader      *content.Loader
	site        *templates.SiteHandler
	admin       *templates.AdminHandler
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := gin.New()
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	middlewares := []gin.HandlerFunc{
		sloggin.NewWithConfig(s.logger,
			sloggin.Config{
				DefaultLevel:     slog.LevelInfo,
				ClientErrorLevel: slog.LevelWarn,
				ServerErrorLevel: slog.LevelError,
			},
		),
		gin.Recovery(), otelgin.Middleware(s.serviceName), slogAddTraceAttributes,
	}
	mux.Use(middlewares...)

	username := "admin"
	if v, ok := os.LookupEnv("SITE_ADMIN"); ok {
		username = v
	}

	password := "admin"
	if v, ok := os.LookupEnv("SITE_PASSWORD"); ok {
		password = v
	}

	var staticDir fs.FS
	var err error
	switch {
	case s.staticDir != "":
		staticDir = os.DirFS(s.staticDir)
	default:
		staticDir, err = fs.Sub(staticFS, "static")
		if err != nil {
			panic(err)
		}
	}
	mux.StaticFS("/static", http.FS(staticDir))

	mux.GET("/", s.site.RenderHome)
	mux.GET("/modules/:moduleid", s.site.RenderModule)
	mux.GET("/modules/:moduleid/itinerary.pdf", s.site.DownloadItinerary)
	mux.POST("/contact", s.site.SubmitInquiry)
	mux.GET("/healthz", s.healthz)

	adminArea := mux.Group("/admin", gin.BasicAuth(gin.Accounts{
		username: password,
	}))
	adminArea.GET("/", s.admin.RenderOverview)
	adminArea.POST("/reload", s.admin.ReloadContent)
	adminArea.POST("/translations", s.admin.UpdateLanguage)

	mux.NoRoute(notFound)

	mux.ServeHTTP(w, r)
}

func (s *Server) healthz(c *gin.Context) {
	_, span := tracer.Start(c.Request.Context(), "Server.healthz")
	defer span.End()

	snap := s.loader.Snapshot()
	status := gin.H{"status": "ok", "content": snap.State.String()}
	if snap.State == content.StateReady {
		status["modules"] = snap.Collection.Len()
	}
	c.JSON(http.StatusOK, status)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
}

func slogAddTraceAttributes(c *gin.Context) {
	sloggin.AddCustomAttributes(c,
		slog.String("trace-id", trace.SpanFromContext(c.Request.Context()).SpanContext().TraceID().String()),
	)
	sloggin.AddCustomAttributes(c,
		slog.String("span-id", trace.SpanFromContext(c.Request.Context()).SpanContext().SpanID().String()),
	)
	c.Next()
}
