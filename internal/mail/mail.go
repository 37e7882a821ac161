// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package mail

import (
	"context"
	"errors"

	"github.com/JuanCarriles/travel-agency/internal/model"
)

// ErrSendFailed marks a provider or transport failure while dispatching an
// inquiry. Callers keep the entered values and offer an explicit retry.
var ErrSendFailed = errors.New("mail: send failed")

// Sender forwards a validated inquiry to the transactional-email provider.
// destination is the human-readable module name already resolved from the
// inquiry's destination id, or empty for general inquiries.
type Sender interface {
	SendInquiry(ctx context.Context, in *model.Inquiry, destination string) error
}

// Discard is a Sender that drops inquiries. Used when no provider is
// configured, typically during local development.
type Discard struct{}

func (Discard) SendInquiry(context.Context, *model.Inquiry, string) error { return nil }
