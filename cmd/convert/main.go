// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/JuanCarriles/travel-agency/internal/db"
	"github.com/JuanCarriles/travel-agency/internal/db/jsondb"
	"github.com/JuanCarriles/travel-agency/internal/db/kvdb"
)

func main() {
	var (
		inputPath  = flag.String("input-path", "testdata", "jsondb storage folder")
		outputPath = flag.String("output-path", "output.db", "bbolt database file")
	)
	flag.Parse()

	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{})
	logger := slog.New(jsonHandler)

	jdb := newJsonDB(logger, *inputPath)
	kdb := newKVDB(logger, *outputPath)
	logger.Info("start converting")
	into(kdb, jdb)
	logger.Info("finished converting")
}

type database interface {
	db.TranslationStore
	db.InquiryStore
	Close() error
}

type dbWrapper struct {
	db.TranslationStore
	db.InquiryStore

	closeFN func() error
}

func (d *dbWrapper) Close() error {
	return d.closeFN()
}

func into(dst, src database) {
	defer src.Close()
	defer dst.Close()
	ctx := context.Background()

	list, err := src.ListLanguages(ctx)
	if err != nil {
		panic(err)
	}
	for _, key := range list {
		t, err := src.ByLanguage(ctx, key)
		if err != nil {
			panic(err)
		}
		if err := dst.CreateLanguage(ctx, key, t); err != nil {
			panic(err)
		}
	}
	inquiries, err := src.ListInquiries(ctx)
	if err != nil {
		panic(err)
	}
	for _, in := range inquiries {
		if _, err := dst.CreateInquiry(ctx, in); err != nil {
			panic(err)
		}
	}
}

func newKVDB(logger *slog.Logger, path string) database {
	bdb, err := bolt.Open(path, 0600, nil)
	if err != nil {
		logger.Error("could not open database", "error", err)
		os.Exit(1)
	}

	translationStore, err := kvdb.NewTranslationStore(bdb)
	if err != nil {
		logger.Error("could not initialize translation bucket", "error", err)
		os.Exit(1)
	}

	inquiryStore, err := kvdb.NewInquiryStore(bdb)
	if err != nil {
		logger.Error("could not initialize inquiry bucket", "error", err)
		os.Exit(1)
	}

	return &dbWrapper{
		TranslationStore: translationStore,
		InquiryStore:     inquiryStore,
		closeFN:          bdb.Close,
	}
}

func newJsonDB(logger *slog.Logger, path string) database {
	logger.Info("jsondb storage folder", "path", path)
	translationStore, err := jsondb.NewTranslationStore(filepath.Join(path, "translations.json"))
	if err != nil {
		logger.Error("could not initialize translation store", "error", err)
		os.Exit(1)
	}
	inquiryStore, err := jsondb.NewInquiryStore(filepath.Join(path, "inquiries.json"))
	if err != nil {
		logger.Error("could not initialize inquiry store", "error", err)
		os.Exit(1)
	}
	return &dbWrapper{
		TranslationStore: translationStore,
		InquiryStore:     inquiryStore,
		closeFN:          func() error { return nil },
	}
}
