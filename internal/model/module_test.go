// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package model

import (
	"strings"
	"testing"
)

func tr(s string) Translation {
	return Translation{ES: s + " es", EN: s + " en", HE: s + " he"}
}

func validModule(id string) *Module {
	tag := tr("tag")
	return &Module{
		ID:             id,
		Name:           tr("name"),
		Summary:        tr("summary"),
		Description:    tr("description"),
		InquiryText:    tr("inquiry"),
		CoverImage:     "/images/cover.jpg",
		NumberOfDays:   7,
		NumberOfPeople: 12,
		Tag:            &tag,
		Locations: []Location{
			{Name: tr("salta"), Type: LocationTypeCity, Image: "/images/salta.jpg"},
		},
		MainAttractions: []Attraction{
			{
				ID:          "train-clouds",
				Name:        tr("train"),
				Image:       "/images/train.jpg",
				Type:        AttractionTypeAdventure,
				Description: tr("train description"),
			},
		},
		Itinerary: &Itinerary{
			PDFURL: "/docs/itinerary.pdf",
			Days: []ItineraryDay{
				{Day: 1, Title: tr("arrival"), Description: tr("arrival day")},
				{Day: 2, Title: tr("tour"), Description: tr("tour day")},
			},
		},
		WhatsIncluded: []IncludedItem{
			{Name: tr("transport"), Icon: IconCar},
			{Name: tr("lodging"), Icon: IconHotel},
		},
	}
}

func TestModuleValidate(t *testing.T) {
	tt := []struct {
		name    string
		mutate  func(*Module)
		wantErr string
	}{
		{name: "valid", mutate: func(*Module) {}},
		{
			name:    "missing id",
			mutate:  func(m *Module) { m.ID = "" },
			wantErr: "without id",
		},
		{
			name:    "partial translation",
			mutate:  func(m *Module) { m.Name.HE = "" },
			wantErr: "incomplete translation",
		},
		{
			name:    "partial tag",
			mutate:  func(m *Module) { m.Tag = &Translation{ES: "oferta"} },
			wantErr: "incomplete translation for tag",
		},
		{
			name:    "missing cover image",
			mutate:  func(m *Module) { m.CoverImage = "" },
			wantErr: "missing cover image",
		},
		{
			name:    "zero days",
			mutate:  func(m *Module) { m.NumberOfDays = 0 },
			wantErr: "invalid number of days",
		},
		{
			name:    "no locations",
			mutate:  func(m *Module) { m.Locations = nil },
			wantErr: "at least one location",
		},
		{
			name:    "unknown location type",
			mutate:  func(m *Module) { m.Locations[0].Type = "village" },
			wantErr: "unknown type",
		},
		{
			name:    "attraction without id",
			mutate:  func(m *Module) { m.MainAttractions[0].ID = "" },
			wantErr: "attraction 0 without id",
		},
		{
			name:    "unknown attraction type",
			mutate:  func(m *Module) { m.MainAttractions[0].Type = "extreme" },
			wantErr: "unknown type",
		},
		{
			name:    "itinerary without days",
			mutate:  func(m *Module) { m.Itinerary.Days = nil },
			wantErr: "itinerary without days",
		},
		{
			name:    "duplicate itinerary day",
			mutate:  func(m *Module) { m.Itinerary.Days[1].Day = 1 },
			wantErr: "duplicate itinerary day 1",
		},
		{
			name:    "zero day index",
			mutate:  func(m *Module) { m.Itinerary.Days[0].Day = 0 },
			wantErr: "itinerary day index 0",
		},
		{
			name:    "unknown icon",
			mutate:  func(m *Module) { m.WhatsIncluded[0].Icon = "Rocket" },
			wantErr: `unknown icon "Rocket"`,
		},
		{
			name:   "no itinerary is fine",
			mutate: func(m *Module) { m.Itinerary = nil },
		},
		{
			name:   "no tag is fine",
			mutate: func(m *Module) { m.Tag = nil },
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m := validModule("northern-lights")
			tc.mutate(m)
			err := m.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateModules(t *testing.T) {
	if err := ValidateModules([]*Module{validModule("a"), validModule("b")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateModules([]*Module{validModule("a"), validModule("a")})
	if err == nil || !strings.Contains(err.Error(), `duplicate module id "a"`) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}

	if err := ValidateModules(nil); err != nil {
		t.Fatalf("empty collection should validate, got %v", err)
	}

	if err := ValidateModules([]*Module{nil}); err == nil {
		t.Fatal("null module should fail validation")
	}
}

func TestItinerarySortedDays(t *testing.T) {
	it := &Itinerary{Days: []ItineraryDay{
		{Day: 3, Title: tr("c"), Description: tr("c")},
		{Day: 1, Title: tr("a"), Description: tr("a")},
		{Day: 2, Title: tr("b"), Description: tr("b")},
	}}

	sorted := it.SortedDays()
	for i, want := range []int{1, 2, 3} {
		if sorted[i].Day != want {
			t.Fatalf("sorted[%d].Day = %d, want %d", i, sorted[i].Day, want)
		}
	}
	// source order untouched
	if it.Days[0].Day != 3 {
		t.Fatal("SortedDays mutated the source slice")
	}
}

func TestInquiryValidate(t *testing.T) {
	valid := func() *Inquiry {
		return &Inquiry{
			Name:    "Dana",
			Email:   "dana@example.com",
			Message: "Interested in the northern route.",
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tt := []struct {
		name   string
		mutate func(*Inquiry)
	}{
		{name: "missing name", mutate: func(i *Inquiry) { i.Name = "" }},
		{name: "missing email", mutate: func(i *Inquiry) { i.Email = "" }},
		{name: "malformed email", mutate: func(i *Inquiry) { i.Email = "not-an-email" }},
		{name: "missing message", mutate: func(i *Inquiry) { i.Message = "" }},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			in := valid()
			tc.mutate(in)
			if err := in.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}
