// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"github.com/JuanCarriles/travel-agency/internal/db"
	"github.com/JuanCarriles/travel-agency/internal/model"
)

const bucketInquiry = "inquiry_store"

func NewInquiryStore(bdb *bolt.DB) (*InquiryStore, error) {
	return &InquiryStore{db: bdb}, bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketInquiry))
		return err
	})
}

type InquiryStore struct {
	db *bolt.DB
}

func (s *InquiryStore) CreateInquiry(ctx context.Context, in *model.Inquiry) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateInquiry")
	defer span.End()

	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	now := time.Now()
	in.CreatedAt = &now

	raw, err := json.Marshal(in)
	if err != nil {
		return uuid.Nil, err
	}

	span.AddEvent("Update bucket")
	return in.ID, s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketInquiry)).Put(in.ID[:], raw)
	})
}

func (s *InquiryStore) ListInquiries(ctx context.Context) ([]*model.Inquiry, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListInquiries")
	defer span.End()

	span.AddEvent("View bucket")
	var list []*model.Inquiry
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketInquiry)).ForEach(func(_, v []byte) error {
			in := &model.Inquiry{}
			if err := json.Unmarshal(v, in); err != nil {
				span.RecordError(err)
				return err
			}
			list = append(list, in)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		var ti, tj time.Time
		if list[i].CreatedAt != nil {
			ti = *list[i].CreatedAt
		}
		if list[j].CreatedAt != nil {
			tj = *list[j].CreatedAt
		}
		return ti.After(tj)
	})
	return list, nil
}

func (s *InquiryStore) GetInquiryByID(ctx context.Context, id uuid.UUID) (*model.Inquiry, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetInquiryByID")
	defer span.End()

	in := &model.Inquiry{}
	return in, s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketInquiry)).Get(id[:])
		if raw == nil {
			err := fmt.Errorf("%w: inquiry %s", db.ErrNotFound, id)
			span.RecordError(err)
			return err
		}
		return json.Unmarshal(raw, in)
	})
}
