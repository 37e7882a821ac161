// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/JuanCarriles/travel-agency/internal/model"
)

// ErrNotFound is returned by lookups that match nothing.
var ErrNotFound = errors.New("db: not found")

type InquiryStore interface {
	CreateInquiry(context.Context, *model.Inquiry) (uuid.UUID, error)
	ListInquiries(context.Context) ([]*model.Inquiry, error)
	GetInquiryByID(context.Context, uuid.UUID) (*model.Inquiry, error)
}
