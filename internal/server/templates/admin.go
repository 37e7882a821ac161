// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeremywohl/flatten/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JuanCarriles/travel-agency/internal/content"
	"github.com/JuanCarriles/travel-agency/internal/db"
	"github.com/JuanCarriles/travel-agency/internal/model"
)

func NewAdminHandler(loader *content.Loader, tStore db.TranslationStore, iStore db.InquiryStore) *AdminHandler {
	coreTemplates := []string{"main.html", "header.html", "footer.html"}
	adminTemplates := []string{"admin.content.html", "admin.translations.html"}

	return &AdminHandler{
		tmpl:   template.Must(template.ParseFS(templates, append(coreTemplates, adminTemplates...)...)),
		loader: loader,
		tStore: tStore,
		iStore: iStore,
		logger: slog.Default().WithGroup("admin"),
	}
}

type AdminHandler struct {
	tmpl   *template.Template
	loader *content.Loader
	tStore db.TranslationStore
	iStore db.InquiryStore
	logger *slog.Logger
}

func (a *AdminHandler) RenderOverview(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AdminHandler.RenderOverview")
	defer span.End()

	shell := a.adminShell(c)

	inquiries, err := a.iStore.ListInquiries(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "could not list inquiries", "error", err)
		c.String(http.StatusInternalServerError, "could not list inquiries")
		return
	}

	langs, err := a.tStore.ListLanguages(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "could not list languages", "error", err)
		c.String(http.StatusInternalServerError, "could not list languages")
		return
	}
	translations := make(map[string]map[string]string, len(langs))
	for _, lang := range langs {
		text, err := a.tStore.ByLanguage(ctx, lang)
		if err != nil {
			a.logger.WarnContext(ctx, "could not read site text", "language", lang, "error", err)
			continue
		}
		out, err := json.Marshal(text)
		if err != nil {
			span.RecordError(err)
			continue
		}
		flattened, err := flatten.FlattenString(string(out), "", flatten.DotStyle)
		if err != nil {
			span.RecordError(err)
			continue
		}
		result := make(map[string]string)
		_ = json.Unmarshal([]byte(flattened), &result)
		translations[lang] = result
	}

	snap := a.loader.Snapshot()
	status := struct {
		State   string
		Modules int
		Err     string
	}{State: snap.State.String()}
	if snap.State == content.StateReady {
		status.Modules = snap.Collection.Len()
	}
	if snap.Err != nil {
		status.Err = snap.Err.Error()
	}

	err = a.tmpl.Execute(c.Writer, gin.H{
		"shell":        shell,
		"status":       status,
		"inquiries":    inquiries,
		"translations": translations,
	})
	if err != nil {
		a.logger.ErrorContext(ctx, "unable to execute admin template", "error", err)
	}
}

// ReloadContent runs a fresh load cycle against the content store.
func (a *AdminHandler) ReloadContent(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "AdminHandler.ReloadContent")
	defer span.End()

	res := a.loader.Load(ctx)
	span.SetAttributes(attribute.String("state", res.State.String()))
	if res.State == content.StateFailed {
		a.logger.ErrorContext(ctx, "content reload failed", "error", res.Err)
	}
	c.Redirect(http.StatusSeeOther, "/admin/")
}

// UpdateLanguage accepts form fields keyed <lang>.<dotted.path> mirroring
// the flattened admin table, rebuilds the nested documents and stores them.
func (a *AdminHandler) UpdateLanguage(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "AdminHandler.UpdateLanguage")
	defer span.End()

	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	span.AddEvent("Read form entries", trace.WithAttributes(attribute.Int("count", len(c.Request.Form))))

	nestedByLanguage := map[string]map[string]any{}
	for key, values := range c.Request.PostForm {
		if len(values) == 0 {
			continue
		}
		language, path, ok := strings.Cut(key, ".")
		if !ok {
			err := fmt.Errorf("%q is not a valid key, expecting <lang>.<field>", key)
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		if _, err := a.tStore.ByLanguage(ctx, language); err != nil {
			err := fmt.Errorf("cannot find language %q: %w", language, err)
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		nested, ok := nestedByLanguage[language]
		if !ok {
			nested = map[string]any{}
			nestedByLanguage[language] = nested
		}
		setPath(nested, strings.Split(path, "."), values[0])
	}

	texts := make(map[string]*model.SiteText, len(nestedByLanguage))
	for language, nested := range nestedByLanguage {
		raw, err := json.Marshal(nested)
		if err != nil {
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		// start from the stored document so untouched fields survive
		text, err := a.tStore.ByLanguage(ctx, language)
		if err != nil {
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		if err := json.Unmarshal(raw, text); err != nil {
			err := fmt.Errorf("unmarshal site text for language %q: %w", language, err)
			span.RecordError(err)
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		texts[language] = text
	}

	if err := a.tStore.UpdateLanguages(ctx, texts); err != nil {
		err := fmt.Errorf("update languages in store: %w", err)
		span.RecordError(err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func setPath(nested map[string]any, path []string, value string) {
	if len(path) == 1 {
		nested[path[0]] = value
		return
	}
	child, ok := nested[path[0]].(map[string]any)
	if !ok {
		child = map[string]any{}
		nested[path[0]] = child
	}
	setPath(child, path[1:], value)
}

func (a *AdminHandler) adminShell(c *gin.Context) *pageShell {
	lang := requestLanguage(c)
	return &pageShell{
		Lang: lang,
		Dir:  lang.Direction(),
		Text: &model.SiteText{},
	}
}
