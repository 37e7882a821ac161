// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/JuanCarriles/travel-agency/internal/content"
	"github.com/JuanCarriles/travel-agency/internal/db"
	"github.com/JuanCarriles/travel-agency/internal/db/jsondb"
	"github.com/JuanCarriles/travel-agency/internal/db/kvdb"
	"github.com/JuanCarriles/travel-agency/internal/mail"
	"github.com/JuanCarriles/travel-agency/internal/server"
)

func main() {
	var (
		serviceName = flag.String("service-name", "travel-agency", "otel service name")
		addr        = flag.String("addr", "0.0.0.0:8080", "default server address")
		dbStr       = flag.String("db", "jsondb://testdata", "database connection string")
		contentSrc  = flag.String("content", "testdata/modules.json", "destination content path or URL")
		otlpAddr    = flag.String("otlp-grpc", "", "default otlp/gRPC address, by default disabled. Example value: localhost:4317")
		logLevelArg = flag.String("log-level", "INFO", "log level")
		staticDir   = flag.String("static-dir", "", "path to static directory")
	)
	flag.Parse()

	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(*logLevelArg))
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(jsonHandler)
	if err != nil {
		logger.Error("unable to parse log level", "level-input", *logLevelArg, "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger)
	logger.Info("start and listen", "address", *addr)
	logger.Info("destination content", "source", *contentSrc)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	if *otlpAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		grpcOptions := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithBlock()}
		conn, err := grpc.DialContext(ctx, *otlpAddr, grpcOptions...)
		if err != nil {
			logger.Error("failed to create gRPC connection to collector", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		otelExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			logger.Error("failed to create trace exporter", "error", err)
			os.Exit(1)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(otelExporter))
		otel.SetTracerProvider(tp)
	}

	var (
		translationStore db.TranslationStore
		inquiryStore     db.InquiryStore
	)

	u, err := url.Parse(*dbStr)
	if err != nil {
		logger.Error("unable to parse db connection string", "error", err)
		os.Exit(1)
	}

	switch u.Scheme {
	case "jsondb":
		dir := u.Host + u.Path
		translationStore, err = jsondb.NewTranslationStore(filepath.Join(dir, "translations.json"))
		if err != nil {
			logger.Error("could not initialize translation store", "error", err)
			os.Exit(1)
		}
		inquiryStore, err = jsondb.NewInquiryStore(filepath.Join(dir, "inquiries.json"))
		if err != nil {
			logger.Error("could not initialize inquiry store", "error", err)
			os.Exit(1)
		}
	case "kvdb":
		path := u.Host + u.Path
		bdb, err := bolt.Open(path, 0600, nil)
		if err != nil {
			logger.Error("could not open database", "error", err)
			os.Exit(1)
		}
		defer bdb.Close()

		translationStore, err = kvdb.NewTranslationStore(bdb)
		if err != nil {
			logger.Error("could not initialize translation bucket", "error", err)
			os.Exit(1)
		}
		inquiryStore, err = kvdb.NewInquiryStore(bdb)
		if err != nil {
			logger.Error("could not initialize inquiry bucket", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("Unknown storage backend", "type", u.Scheme)
		os.Exit(1)
	}

	var fetcher content.Fetcher
	if strings.HasPrefix(*contentSrc, "http://") || strings.HasPrefix(*contentSrc, "https://") {
		fetcher = content.NewHTTPFetcher(*contentSrc)
	} else {
		fetcher = &content.FileFetcher{Path: *contentSrc}
	}

	loader := content.NewLoader(fetcher)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	res := loader.Load(loadCtx)
	cancelLoad()
	if res.State == content.StateFailed {
		// serve anyway; the admin area can trigger a reload once the
		// content source is reachable again
		logger.Error("initial content load failed", "error", res.Err)
	}

	var sender mail.Sender = mail.Discard{}
	if cfg, ok := mail.SendGridConfigFromEnv(); ok {
		sender, err = mail.NewSendGrid(cfg)
		if err != nil {
			logger.Error("could not initialize mail sender", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("no mail provider configured, inquiries will not be dispatched")
	}

	srv := &http.Server{
		Addr: *addr,
		Handler: server.NewServer(
			*serviceName,
			*staticDir,
			loader,
			translationStore,
			inquiryStore,
			sender,
		),
	}

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("error during listen and serve", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
