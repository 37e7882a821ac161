// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JuanCarriles/travel-agency/internal/content"
	"github.com/JuanCarriles/travel-agency/internal/db"
	"github.com/JuanCarriles/travel-agency/internal/mail"
	"github.com/JuanCarriles/travel-agency/internal/model"
)

const handlerTestDoc = `{
  "modules": [
    {
      "id": "patagonia",
      "name": {"es": "Patagonia", "en": "Patagonia", "he": "פטגוניה"},
      "summary": {"es": "Glaciares", "en": "Glaciers", "he": "קרחונים"},
      "description": {"es": "Desc", "en": "Desc", "he": "Desc"},
      "inquiryText": {"es": "Hola, {{.Days}} dias", "en": "Hi, {{.Days}} days", "he": "Hi"},
      "coverImage": "/static/img/cover.jpg",
      "numberOfDays": 7,
      "numberOfPeople": 6,
      "locations": [
        {"name": {"es": "El Calafate", "en": "El Calafate", "he": "אל קלפטה"}, "type": "city", "image": "/static/img/c.jpg"}
      ],
      "mainAttractions": [],
      "itinerary": {
        "pdfUrl": "/static/pdf/patagonia.pdf",
        "days": [
          {"day": 1, "title": {"es": "Llegada", "en": "Arrival", "he": "הגעה"}, "description": {"es": "d", "en": "d", "he": "d"}}
        ]
      }
    },
    {
      "id": "noa",
      "name": {"es": "Norte", "en": "North", "he": "צפון"},
      "summary": {"es": "Quebradas", "en": "Gorges", "he": "קניונים"},
      "description": {"es": "Desc", "en": "Desc", "he": "Desc"},
      "inquiryText": {"es": "Hola", "en": "Hi", "he": "Hi"},
      "coverImage": "/static/img/noa.jpg",
      "numberOfDays": 6,
      "numberOfPeople": 4,
      "locations": [
        {"name": {"es": "Salta", "en": "Salta", "he": "סלטה"}, "type": "city", "image": "/static/img/s.jpg"}
      ],
      "mainAttractions": []
    }
  ]
}`

type staticFetcher string

func (f staticFetcher) Fetch(context.Context) ([]byte, error) {
	return []byte(f), nil
}

type memTranslationStore struct {
	texts map[string]*model.SiteText
}

func (m *memTranslationStore) ListLanguages(context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.texts))
	for k := range m.texts {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *memTranslationStore) ByLanguage(_ context.Context, l string) (*model.SiteText, error) {
	t, ok := m.texts[l]
	if !ok {
		return nil, db.ErrNotFound
	}
	return t, nil
}

func (m *memTranslationStore) CreateLanguage(_ context.Context, l string, t *model.SiteText) error {
	m.texts[l] = t
	return nil
}

func (m *memTranslationStore) UpdateLanguages(_ context.Context, texts map[string]*model.SiteText) error {
	for l, t := range texts {
		m.texts[l] = t
	}
	return nil
}

type memInquiryStore struct {
	created []*model.Inquiry
}

func (m *memInquiryStore) CreateInquiry(_ context.Context, in *model.Inquiry) (uuid.UUID, error) {
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	m.created = append(m.created, in)
	return in.ID, nil
}

func (m *memInquiryStore) ListInquiries(context.Context) ([]*model.Inquiry, error) {
	return m.created, nil
}

func (m *memInquiryStore) GetInquiryByID(context.Context, uuid.UUID) (*model.Inquiry, error) {
	return nil, db.ErrNotFound
}

type senderFunc func(ctx context.Context, in *model.Inquiry, destination string) error

func (f senderFunc) SendInquiry(ctx context.Context, in *model.Inquiry, destination string) error {
	return f(ctx, in, destination)
}

func testSiteText() *model.SiteText {
	return &model.SiteText{
		Hero: model.SiteTextHero{Title: "Descubri Argentina"},
		Services: model.SiteTextServices{
			Title:     "Todo resuelto",
			Transfers: model.SiteTextService{Title: "Traslados privados", Description: "Puerta a puerta"},
			Insurance: model.SiteTextService{Title: "Seguro de viaje", Description: "Cobertura total"},
		},
		Error: model.SiteTextError{
			Title:   "Algo salio mal",
			Load:    "No pudimos cargar los destinos.",
			Send:    "No pudimos enviar tu consulta.",
			Process: "Revisa los campos.",
		},
		Contact: model.SiteTextContact{
			ButtonSubmit: "Enviar",
			ButtonRetry:  "Reintentar",
		},
	}
}

func newTestRouter(t *testing.T, fetcher content.Fetcher, sender mail.Sender) (*gin.Engine, *memInquiryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loader := content.NewLoader(fetcher)
	loader.Load(context.Background())

	tStore := &memTranslationStore{texts: map[string]*model.SiteText{
		"es": testSiteText(),
	}}
	iStore := &memInquiryStore{}

	h := NewSiteHandler(loader, tStore, iStore, sender)

	router := gin.New()
	router.GET("/", h.RenderHome)
	router.GET("/modules/:moduleid", h.RenderModule)
	router.GET("/modules/:moduleid/itinerary.pdf", h.DownloadItinerary)
	router.POST("/contact", h.SubmitInquiry)
	return router, iStore
}

func TestRenderHome(t *testing.T) {
	router, _ := newTestRouter(t, staticFetcher(handlerTestDoc), mail.Discard{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Patagonia", "Norte", "Descubri Argentina"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestRenderHomeServices(t *testing.T) {
	router, _ := newTestRouter(t, staticFetcher(handlerTestDoc), mail.Discard{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	body := w.Body.String()
	for _, want := range []string{
		"Todo resuelto",
		"Traslados privados",
		"Seguro de viaje",
		"icon-car",
		"icon-shield",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("services section missing %q", want)
		}
	}
}

func TestRenderHomeLoadFailed(t *testing.T) {
	router, _ := newTestRouter(t, staticFetcher("not json"), mail.Discard{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No pudimos cargar los destinos.") {
		t.Error("expected the load error message on the page")
	}
}

func TestRenderModule(t *testing.T) {
	router, _ := newTestRouter(t, staticFetcher(handlerTestDoc), mail.Discard{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/modules/patagonia?lang=en", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Glaciers") {
		t.Error("expected the english summary")
	}
	if !strings.Contains(body, "Hi, 7 days") {
		t.Error("expected the populated inquiry text")
	}
	// the email CTA must lead back to the home contact form
	if !strings.Contains(body, `href="/?lang=en#contact-form"`) {
		t.Error("expected the contact link to target the home page form")
	}
}

func TestRenderModuleUnknownRedirects(t *testing.T) {
	router, _ := newTestRouter(t, staticFetcher(handlerTestDoc), mail.Discard{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/modules/atlantis", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestDownloadItinerary(t *testing.T) {
	router, _ := newTestRouter(t, staticFetcher(handlerTestDoc), mail.Discard{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/modules/patagonia/itinerary.pdf", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/static/pdf/patagonia.pdf" {
		t.Errorf("unexpected redirect target %q", loc)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/modules/noa/itinerary.pdf", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for module without document, got %d", w.Code)
	}
}

func TestSubmitInquiry(t *testing.T) {
	var sent *model.Inquiry
	sender := senderFunc(func(_ context.Context, in *model.Inquiry, destination string) error {
		sent = in
		if destination != "Patagonia" {
			t.Errorf("expected resolved destination name, got %q", destination)
		}
		return nil
	})
	router, iStore := newTestRouter(t, staticFetcher(handlerTestDoc), sender)

	form := url.Values{
		"name":        {"Ada"},
		"email":       {"ada@example.com"},
		"message":     {"Quiero viajar"},
		"destination": {"patagonia"},
		"lang":        {"es"},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if sent == nil {
		t.Fatal("expected the inquiry to be dispatched")
	}
	if len(iStore.created) != 1 {
		t.Fatalf("expected one recorded inquiry, got %d", len(iStore.created))
	}
	if iStore.created[0].Name != "Ada" {
		t.Errorf("unexpected recorded name %q", iStore.created[0].Name)
	}
}

func TestSubmitInquiryInvalid(t *testing.T) {
	router, iStore := newTestRouter(t, staticFetcher(handlerTestDoc), mail.Discard{})

	form := url.Values{
		"name":  {"Ada"},
		"email": {"not-an-email"},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", w.Code)
	}
	if len(iStore.created) != 0 {
		t.Error("invalid inquiry must not be recorded")
	}
	if !strings.Contains(w.Body.String(), "Ada") {
		t.Error("expected the entered name to be preserved in the form")
	}
}

func TestSubmitInquiryMalformedForm(t *testing.T) {
	router, iStore := newTestRouter(t, staticFetcher(handlerTestDoc), mail.Discard{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Revisa los campos.") {
		t.Error("expected the processing error message on the page")
	}
	if len(iStore.created) != 0 {
		t.Error("malformed submission must not be recorded")
	}
}

func TestSubmitInquirySendFailure(t *testing.T) {
	sender := senderFunc(func(context.Context, *model.Inquiry, string) error {
		return errors.New("provider down")
	})
	router, iStore := newTestRouter(t, staticFetcher(handlerTestDoc), sender)

	form := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Quiero viajar"},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Ada", "ada@example.com", "Quiero viajar", "Reintentar"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q to survive the failed send", want)
		}
	}
	if len(iStore.created) != 0 {
		t.Error("failed dispatch must not be recorded")
	}
}

func TestRequestLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		name   string
		query  string
		header string
		want   model.Language
	}{
		{name: "query wins", query: "?lang=he", header: "en-US,en;q=0.9", want: model.LanguageHebrew},
		{name: "header fallback", header: "en-GB,en;q=0.8", want: model.LanguageEnglish},
		{name: "unsupported header", header: "fr-FR,fr;q=0.9", want: model.LanguageSpanish},
		{name: "nothing", want: model.LanguageSpanish},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
			if tc.header != "" {
				c.Request.Header.Set("Accept-Language", tc.header)
			}
			if got := requestLanguage(c); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
