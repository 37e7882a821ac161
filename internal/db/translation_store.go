// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/JuanCarriles/travel-agency/internal/model"
)

type TranslationStore interface {
	ListLanguages(context.Context) ([]string, error)
	ByLanguage(context.Context, string) (*model.SiteText, error)
	CreateLanguage(context.Context, string, *model.SiteText) error
	UpdateLanguages(context.Context, map[string]*model.SiteText) error
}
