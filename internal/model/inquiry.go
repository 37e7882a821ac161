// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package model

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Inquiry is a contact request submitted through the website. Name, email
// and message are mandatory; the rest is optional context. DestinationID
// refers to a module id and may be empty for general inquiries.
type Inquiry struct {
	ID            uuid.UUID  `json:"id" form:"-"`
	CreatedAt     *time.Time `json:"created_at" form:"-"`
	Name          string     `json:"name" form:"name" validate:"required"`
	Email         string     `json:"email" form:"email" validate:"required,email"`
	Phone         string     `json:"phone" form:"phone"`
	People        string     `json:"people" form:"people"`
	DestinationID string     `json:"destination_id" form:"destination"`
	Message       string     `json:"message" form:"message" validate:"required"`
	Language      string     `json:"language" form:"lang"`
}

// Validate reports whether the inquiry carries the mandatory fields.
func (i *Inquiry) Validate() error {
	return validate.Struct(i)
}
