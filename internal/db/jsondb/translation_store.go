// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/JuanCarriles/travel-agency/internal/db"
	"github.com/JuanCarriles/travel-agency/internal/model"
)

func NewTranslationStore(filename string) (*TranslationStore, error) {
	store := &TranslationStore{
		filename:   filename,
		byLanguage: make(map[string]*model.SiteText),
	}
	if err := store.loadFromFile(); err != nil {
		return nil, err
	}
	return store, nil
}

type TranslationStore struct {
	mu sync.RWMutex

	filename   string
	byLanguage map[string]*model.SiteText
}

func (t *TranslationStore) ListLanguages(ctx context.Context) ([]string, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListLanguages")
	defer span.End()

	span.AddEvent("RLock")
	t.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer t.mu.RUnlock()

	res := make([]string, 0, len(t.byLanguage))
	for lang := range t.byLanguage {
		res = append(res, lang)
	}
	sort.Strings(res)
	return res, nil
}

func (t *TranslationStore) ByLanguage(ctx context.Context, l string) (*model.SiteText, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ByLanguage")
	defer span.End()

	span.AddEvent("RLock")
	t.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer t.mu.RUnlock()

	text, ok := t.byLanguage[l]
	if !ok {
		err := fmt.Errorf("%w: language %q", db.ErrNotFound, l)
		span.RecordError(err)
		return nil, err
	}
	out := *text
	return &out, nil
}

func (t *TranslationStore) CreateLanguage(ctx context.Context, lang string, text *model.SiteText) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateLanguage")
	defer span.End()

	span.AddEvent("Lock")
	t.mu.Lock()
	defer span.AddEvent("Unlock")
	defer t.mu.Unlock()

	if _, ok := t.byLanguage[lang]; ok {
		err := fmt.Errorf("language %q already exists", lang)
		span.RecordError(err)
		return err
	}
	t.byLanguage[lang] = text
	return t.saveToFile(ctx)
}

func (t *TranslationStore) UpdateLanguages(ctx context.Context, texts map[string]*model.SiteText) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "UpdateLanguages")
	defer span.End()

	span.AddEvent("Lock")
	t.mu.Lock()
	defer span.AddEvent("Unlock")
	defer t.mu.Unlock()

	for lang, text := range texts {
		t.byLanguage[lang] = text
	}
	return t.saveToFile(ctx)
}

func (t *TranslationStore) saveToFile(ctx context.Context) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "SaveToFile")
	defer span.End()

	fileData, err := json.MarshalIndent(t.byLanguage, "", "  ")
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := os.WriteFile(t.filename, fileData, 0644); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (t *TranslationStore) loadFromFile() error {
	if _, err := os.Stat(t.filename); os.IsNotExist(err) {
		// File does not exist, no translations to load
		return nil
	}

	fileData, err := os.ReadFile(t.filename)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return json.Unmarshal(fileData, &t.byLanguage)
}
