// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JuanCarriles/travel-agency/internal/content"
	"github.com/JuanCarriles/travel-agency/internal/db"
	"github.com/JuanCarriles/travel-agency/internal/mail"
	"github.com/JuanCarriles/travel-agency/internal/model"
	"github.com/JuanCarriles/travel-agency/internal/parser/form"
)

//go:embed *.html
var templates embed.FS

func NewSiteHandler(
	loader *content.Loader,
	tStore db.TranslationStore,
	iStore db.InquiryStore,
	sender mail.Sender,
) *SiteHandler {
	coreTemplates := []string{"main.html", "header.html", "footer.html"}
	homeTemplates := []string{
		"home.content.html",
		"home.hero.html",
		"home.destinations.html",
		"home.services.html",
		"home.contact.html",
		"home.social.html",
	}
	moduleTemplates := []string{
		"module.content.html",
		"module.attractions.html",
		"module.itinerary.html",
		"module.included.html",
	}

	return &SiteHandler{
		tmplHome:   template.Must(template.ParseFS(templates, append(coreTemplates, homeTemplates...)...)),
		tmplModule: template.Must(template.ParseFS(templates, append(coreTemplates, moduleTemplates...)...)),
		tmplError:  template.Must(template.ParseFS(templates, append(coreTemplates, "error.content.html")...)),
		loader:     loader,
		tStore:     tStore,
		iStore:     iStore,
		sender:     sender,
		logger:     slog.Default().WithGroup("http"),
	}
}

type SiteHandler struct {
	tmplHome   *template.Template
	tmplModule *template.Template
	tmplError  *template.Template
	loader     *content.Loader
	tStore     db.TranslationStore
	iStore     db.InquiryStore
	sender     mail.Sender
	logger     *slog.Logger
}

// pageShell carries everything the outer document needs: the active
// language, its writing direction, the chrome strings and the language
// selector entries.
type pageShell struct {
	Lang      model.Language
	Dir       model.Direction
	Text      *model.SiteText
	Languages []model.LanguageOption
}

// contactState re-renders the contact form after a submission. Values are
// preserved so a failed send never forces re-entry.
type contactState struct {
	Values *model.Inquiry
	Sent   bool
	Error  string
	Retry  bool
}

type moduleCard struct {
	ID         string
	Name       string
	Summary    string
	Tag        string
	CoverImage string
	Days       int
	People     int
}

type homeService struct {
	IconClass   string
	Title       string
	Description string
}

// homeServices pairs the fixed service entries with their glyphs.
func homeServices(text *model.SiteText) []homeService {
	s := text.Services
	return []homeService{
		{IconClass: iconClass(model.IconCar), Title: s.Transfers.Title, Description: s.Transfers.Description},
		{IconClass: iconClass(model.IconHotel), Title: s.Accommodation.Title, Description: s.Accommodation.Description},
		{IconClass: iconClass(model.IconUser), Title: s.Guides.Title, Description: s.Guides.Description},
		{IconClass: iconClass(model.IconUtensilsCrossed), Title: s.Gastronomy.Title, Description: s.Gastronomy.Description},
		{IconClass: iconClass(model.IconPhone), Title: s.Support.Title, Description: s.Support.Description},
		{IconClass: iconClass(model.IconShield), Title: s.Insurance.Title, Description: s.Insurance.Description},
	}
}

func (h *SiteHandler) RenderHome(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "SiteHandler.RenderHome")
	defer span.End()

	shell := h.shell(ctx, c)
	h.renderHome(ctx, c, shell, &contactState{Values: &model.Inquiry{}}, http.StatusOK)
}

func (h *SiteHandler) renderHome(ctx context.Context, c *gin.Context, shell *pageShell, contact *contactState, status int) {
	snap := h.loader.Snapshot()

	var cards []moduleCard
	loadFailed := false
	switch snap.State {
	case content.StateReady:
		for _, m := range snap.Collection.Modules() {
			card := moduleCard{
				ID:         m.ID,
				Name:       m.Name.Resolve(shell.Lang),
				Summary:    m.Summary.Resolve(shell.Lang),
				CoverImage: m.CoverImage,
				Days:       m.NumberOfDays,
				People:     m.NumberOfPeople,
			}
			if m.Tag != nil {
				card.Tag = m.Tag.Resolve(shell.Lang)
			}
			cards = append(cards, card)
		}
	case content.StateFailed:
		loadFailed = true
		if status == http.StatusOK {
			status = http.StatusServiceUnavailable
		}
	}

	c.Status(status)
	err := h.tmplHome.Execute(c.Writer, gin.H{
		"shell":      shell,
		"modules":    cards,
		"services":   homeServices(shell.Text),
		"loadFailed": loadFailed,
		"contact":    contact,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "unable to execute home template", "error", err)
	}
}

type modulePage struct {
	ID            string
	Name          string
	Summary       string
	Description   string
	InquiryText   string
	CoverImage    string
	Days          int
	People        int
	Tag           string
	Locations     []modulePlace
	Attractions   []moduleAttraction
	ItineraryDays []moduleDay
	HasItinerary  bool
	HasPDF        bool
	Included      []moduleIncluded
}

type modulePlace struct {
	Name  string
	Type  string
	Image string
}

type moduleAttraction struct {
	Name        string
	Description string
	Type        string
	Image       string
}

type moduleDay struct {
	Day         int
	Title       string
	Description string
}

type moduleIncluded struct {
	Name      string
	IconClass string
}

func (h *SiteHandler) RenderModule(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "SiteHandler.RenderModule")
	defer span.End()

	id := c.Param("moduleid")
	span.SetAttributes(attribute.String("module", id))

	shell := h.shell(ctx, c)
	snap := h.loader.Snapshot()
	if snap.State != content.StateReady {
		h.renderError(ctx, c, shell, model.ErrorReasonLoad)
		return
	}

	m, ok := snap.Collection.ByID(id)
	if !ok {
		// unknown module: back to the landing page, never a broken view
		span.AddEvent("module not found")
		c.Redirect(http.StatusFound, "/")
		return
	}

	inquiryText, err := evalTemplate(m.InquiryText.Resolve(shell.Lang), map[string]any{
		"Name":   m.Name.Resolve(shell.Lang),
		"Days":   m.NumberOfDays,
		"People": m.NumberOfPeople,
	})
	if err != nil {
		span.RecordError(err)
		h.logger.WarnContext(ctx, "could not populate inquiry text", "module", m.ID, "error", err)
		inquiryText = m.InquiryText.Resolve(shell.Lang)
	}

	page := &modulePage{
		ID:          m.ID,
		Name:        m.Name.Resolve(shell.Lang),
		Summary:     m.Summary.Resolve(shell.Lang),
		Description: m.Description.Resolve(shell.Lang),
		InquiryText: inquiryText,
		CoverImage:  m.CoverImage,
		Days:        m.NumberOfDays,
		People:      m.NumberOfPeople,
	}
	if m.Tag != nil {
		page.Tag = m.Tag.Resolve(shell.Lang)
	}
	for _, loc := range m.Locations {
		page.Locations = append(page.Locations, modulePlace{
			Name:  loc.Name.Resolve(shell.Lang),
			Type:  string(loc.Type),
			Image: loc.Image,
		})
	}
	for _, a := range m.MainAttractions {
		page.Attractions = append(page.Attractions, moduleAttraction{
			Name:        a.Name.Resolve(shell.Lang),
			Description: a.Description.Resolve(shell.Lang),
			Type:        string(a.Type),
			Image:       a.Image,
		})
	}
	if m.Itinerary != nil {
		page.HasItinerary = true
		page.HasPDF = m.Itinerary.PDFURL != ""
		for _, d := range m.Itinerary.SortedDays() {
			page.ItineraryDays = append(page.ItineraryDays, moduleDay{
				Day:         d.Day,
				Title:       d.Title.Resolve(shell.Lang),
				Description: d.Description.Resolve(shell.Lang),
			})
		}
	}
	for _, item := range m.WhatsIncluded {
		page.Included = append(page.Included, moduleIncluded{
			Name:      item.Name.Resolve(shell.Lang),
			IconClass: iconClass(item.Icon),
		})
	}

	if err := h.tmplModule.Execute(c.Writer, gin.H{"shell": shell, "module": page}); err != nil {
		h.logger.ErrorContext(ctx, "unable to execute module template", "error", err)
	}
}

func (h *SiteHandler) DownloadItinerary(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	_, span = tracer.Start(ctx, "SiteHandler.DownloadItinerary")
	defer span.End()

	snap := h.loader.Snapshot()
	if snap.State != content.StateReady {
		c.Redirect(http.StatusFound, "/")
		return
	}
	m, ok := snap.Collection.ByID(c.Param("moduleid"))
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	if m.Itinerary == nil || m.Itinerary.PDFURL == "" {
		c.JSON(http.StatusNotFound, gin.H{"code": "NO_ITINERARY", "message": "module has no itinerary document"})
		return
	}
	c.Redirect(http.StatusFound, m.Itinerary.PDFURL)
}

func (h *SiteHandler) SubmitInquiry(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "SiteHandler.SubmitInquiry")
	defer span.End()

	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not parse form", "error", err)
		h.renderError(ctx, c, h.shell(ctx, c), model.ErrorReasonProcess)
		return
	}

	inquiry := &model.Inquiry{}
	if err := form.Unmarshal(c.Request.PostForm, inquiry); err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not parse inquiry", "error", err)
		h.renderError(ctx, c, h.shell(ctx, c), model.ErrorReasonProcess)
		return
	}

	shell := h.shell(ctx, c)
	inquiry.Language = shell.Lang.String()

	if err := inquiry.Validate(); err != nil {
		span.AddEvent("rejected", trace.WithAttributes(attribute.String("reason", err.Error())))
		h.renderHome(ctx, c, shell, &contactState{
			Values: inquiry,
			Error:  shell.Text.Error.Process,
		}, http.StatusUnprocessableEntity)
		return
	}

	destination := inquiry.DestinationID
	if snap := h.loader.Snapshot(); snap.State == content.StateReady && destination != "" {
		if m, ok := snap.Collection.ByID(destination); ok {
			destination = m.Name.Resolve(shell.Lang)
		}
	}

	if err := h.sender.SendInquiry(ctx, inquiry, destination); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.logger.ErrorContext(ctx, "inquiry dispatch failed", "error", err)
		// keep the entered values and offer an explicit retry
		h.renderHome(ctx, c, shell, &contactState{
			Values: inquiry,
			Error:  shell.Text.Error.Send,
			Retry:  true,
		}, http.StatusBadGateway)
		return
	}

	if _, err := h.iStore.CreateInquiry(ctx, inquiry); err != nil {
		// dispatch succeeded, losing the archive copy is not fatal
		span.RecordError(err)
		h.logger.WarnContext(ctx, "could not record inquiry", "error", err)
	}

	h.renderHome(ctx, c, shell, &contactState{Values: &model.Inquiry{}, Sent: true}, http.StatusOK)
}

func (h *SiteHandler) renderError(ctx context.Context, c *gin.Context, shell *pageShell, reason model.ErrorReason) {
	message := shell.Text.Error.Process
	status := http.StatusBadRequest
	if reason == model.ErrorReasonLoad {
		message = shell.Text.Error.Load
		status = http.StatusServiceUnavailable
	}
	c.Status(status)
	err := h.tmplError.Execute(c.Writer, gin.H{
		"shell":   shell,
		"title":   shell.Text.Error.Title,
		"message": message,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "unable to execute error template", "error", err)
	}
}

// shell resolves the request language and assembles the page chrome. A
// missing translation entry degrades to the fallback language and finally
// to an empty text block; rendering must not fail because chrome strings
// are absent.
func (h *SiteHandler) shell(ctx context.Context, c *gin.Context) *pageShell {
	lang := requestLanguage(c)

	text, err := h.tStore.ByLanguage(ctx, lang.String())
	if err != nil {
		h.logger.WarnContext(ctx, "missing site text", "language", lang, "error", err)
		if text, err = h.tStore.ByLanguage(ctx, model.FallbackLanguage.String()); err != nil {
			text = &model.SiteText{}
		}
	}

	var options []model.LanguageOption
	langs, err := h.tStore.ListLanguages(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "could not list languages", "error", err)
	}
	for _, l := range langs {
		t, err := h.tStore.ByLanguage(ctx, l)
		if err != nil {
			continue
		}
		options = append(options, model.LanguageOption{Lang: l, FlagImgSrc: t.FlagImgSrc})
	}

	return &pageShell{
		Lang:      lang,
		Dir:       lang.Direction(),
		Text:      text,
		Languages: options,
	}
}

// requestLanguage picks the language from the lang query or form value,
// falling back to the Accept-Language header.
func requestLanguage(c *gin.Context) model.Language {
	tag := c.Query("lang")
	if tag == "" {
		tag = c.PostForm("lang")
	}
	if tag == "" {
		header := c.GetHeader("Accept-Language")
		tag, _, _ = strings.Cut(header, ",")
	}
	return model.ResolveLanguage(tag)
}

// iconClass maps the closed icon vocabulary to css classes. The default
// arm keeps unknown values renderable should the vocabulary ever grow.
func iconClass(i model.Icon) string {
	switch i {
	case model.IconCar:
		return "icon-car"
	case model.IconHotel:
		return "icon-hotel"
	case model.IconUser:
		return "icon-user"
	case model.IconUtensilsCrossed:
		return "icon-dining"
	case model.IconPhone:
		return "icon-phone"
	case model.IconShield:
		return "icon-shield"
	case model.IconCamera:
		return "icon-camera"
	case model.IconMountain:
		return "icon-mountain"
	case model.IconTicket:
		return "icon-ticket"
	default:
		return "icon-generic"
	}
}

func evalTemplate(msg string, data any) (string, error) {
	t, err := template.New("tmp").Parse(msg)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
