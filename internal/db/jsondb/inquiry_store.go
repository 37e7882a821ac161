// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/JuanCarriles/travel-agency/internal/db"
	"github.com/JuanCarriles/travel-agency/internal/model"
)

// InquiryStore keeps submitted inquiries in a JSON file so the admin
// overview survives restarts.
type InquiryStore struct {
	filename  string
	mu        sync.RWMutex
	inquiries map[uuid.UUID]*model.Inquiry
}

func NewInquiryStore(filename string) (*InquiryStore, error) {
	store := &InquiryStore{
		filename:  filename,
		inquiries: make(map[uuid.UUID]*model.Inquiry),
	}
	if err := store.loadFromFile(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *InquiryStore) CreateInquiry(ctx context.Context, in *model.Inquiry) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateInquiry")
	defer span.End()

	span.AddEvent("Lock")
	s.mu.Lock()
	defer span.AddEvent("Unlock")
	defer s.mu.Unlock()

	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	if _, ok := s.inquiries[in.ID]; ok {
		err := errors.New("inquiry already exists")
		span.RecordError(err)
		return uuid.Nil, err
	}
	now := time.Now()
	in.CreatedAt = &now
	s.inquiries[in.ID] = in

	if err := s.saveToFile(ctx); err != nil {
		return uuid.Nil, err
	}
	return in.ID, nil
}

func (s *InquiryStore) ListInquiries(ctx context.Context) ([]*model.Inquiry, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListInquiries")
	defer span.End()

	span.AddEvent("RLock")
	s.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer s.mu.RUnlock()

	list := make([]*model.Inquiry, 0, len(s.inquiries))
	for _, in := range s.inquiries {
		list = append(list, in)
	}
	// newest first for the admin table
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

	span.AddEvent("RLock")
	s.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer s.mu.RUnlock()

	in, ok := s.inquiries[id]
	if !ok {
		err := fmt.Errorf("%w: inquiry %s", db.ErrNotFound, id)
		span.RecordError(err)
		return nil, err
	}
	return in, nil
}

func (s *InquiryStore) saveToFile(ctx context.Context) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "SaveToFile")
	defer span.End()

	fileData, err := json.MarshalIndent(s.inquiries, "", "  ")
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := os.WriteFile(s.filename, fileData, 0644); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (s *InquiryStore) loadFromFile() error {
	if _, err := os.Stat(s.filename); os.IsNotExist(err) {
		// File does not exist, no inquiries to load
		return nil
	}

	fileData, err := os.ReadFile(s.filename)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return json.Unmarshal(fileData, &s.inquiries)
}
