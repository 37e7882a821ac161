// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JuanCarriles/travel-agency/internal/db"
	"github.com/JuanCarriles/travel-agency/internal/model"
)

const bucketTranslation = "translation_store"

func NewTranslationStore(bdb *bolt.DB) (*TranslationStore, error) {
	return &TranslationStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketTranslation))
		return err
	})
}

type TranslationStore struct {
	db *bolt.DB
}

func (t *TranslationStore) ListLanguages(ctx context.Context) ([]string, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListLanguages")
	defer span.End()

	span.AddEvent("View bucket")
	res := make([]string, 0)
	return res, t.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketTranslation)).ForEach(func(k, _ []byte) error {
			res = append(res, string(k))
			return nil
		})
	})
}

func (t *TranslationStore) ByLanguage(ctx context.Context, lang string) (*model.SiteText, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ByLanguage")
	defer span.End()

	span.SetAttributes(attribute.String("language", lang))
	text := &model.SiteText{}
	return text, t.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketTranslation)).Get([]byte(lang))
		if raw == nil {
			err := fmt.Errorf("%w: language %q", db.ErrNotFound, lang)
			span.RecordError(err)
			return err
		}
		return json.Unmarshal(raw, text)
	})
}

func (t *TranslationStore) CreateLanguage(ctx context.Context, lang string, text *model.SiteText) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateLanguage")
	defer span.End()

	raw, err := json.Marshal(text)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.AddEvent("Update bucket")
	return t.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketTranslation))
		if bucket.Get([]byte(lang)) != nil {
			return fmt.Errorf("language %q already exists", lang)
		}
		return bucket.Put([]byte(lang), raw)
	})
}

func (t *TranslationStore) UpdateLanguages(ctx context.Context, texts map[string]*model.SiteText) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "UpdateLanguages")
	defer span.End()

	span.AddEvent("update languages", trace.WithAttributes(attribute.Int("count", len(texts))))
	data := make(map[string][]byte, len(texts))
	var err error
	for lang, text := range texts {
		if data[lang], err = json.Marshal(text); err != nil {
			tErr := fmt.Errorf("convert site text to json: %w", err)
			span.SetStatus(codes.Error, tErr.Error())
			return tErr
		}
	}
	return t.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketTranslation))
		for lang, raw := range data {
			if err := bucket.Put([]byte(lang), raw); err != nil {
				err := fmt.Errorf("update site text for language %q", lang)
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
		}
		return nil
	})
}
