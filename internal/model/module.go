// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package model

import (
	"fmt"
	"sort"
)

// LocationType categorizes a place visited by a module.
type LocationType string

const (
	LocationTypeCity     LocationType = "city"
	LocationTypeNatural  LocationType = "natural"
	LocationTypeCultural LocationType = "cultural"
)

// AttractionType categorizes a main attraction.
type AttractionType string

const (
	AttractionTypeNatural   AttractionType = "natural"
	AttractionTypeCultural  AttractionType = "cultural"
	AttractionTypeAdventure AttractionType = "adventure"
)

// Icon is a symbolic identifier from the closed icon vocabulary used by
// "what's included" entries. The template layer maps each value to a glyph
// and keeps a neutral placeholder for anything else.
type Icon string

const (
	IconCar             Icon = "Car"
	IconHotel           Icon = "Hotel"
	IconUser            Icon = "User"
	IconUtensilsCrossed Icon = "UtensilsCrossed"
	IconPhone           Icon = "Phone"
	IconShield          Icon = "Shield"
	IconCamera          Icon = "Camera"
	IconMountain        Icon = "Mountain"
	IconTicket          Icon = "Ticket"
)

// Known reports whether the icon belongs to the closed vocabulary.
func (i Icon) Known() bool {
	switch i {
	case IconCar, IconHotel, IconUser, IconUtensilsCrossed, IconPhone,
		IconShield, IconCamera, IconMountain, IconTicket:
		return true
	}
	return false
}

// Location is a named place attached to a module.
type Location struct {
	Name  Translation  `json:"name"`
	Type  LocationType `json:"type"`
	Image string       `json:"image"`
}

// Attraction is a highlight of a module with its own visual assets.
type Attraction struct {
	ID          string         `json:"id"`
	Name        Translation    `json:"name"`
	Image       string         `json:"image"`
	Type        AttractionType `json:"type"`
	Description Translation    `json:"description"`
}

// ItineraryDay is a single day in an itinerary. Day indices are 1-based,
// need not be contiguous, but must be unique within one itinerary.
type ItineraryDay struct {
	Day         int         `json:"day"`
	Title       Translation `json:"title"`
	Description Translation `json:"description"`
}

// Itinerary is the day-by-day plan of a module, optionally with a
// downloadable document.
type Itinerary struct {
	PDFURL string         `json:"pdfUrl,omitempty"`
	Days   []ItineraryDay `json:"days"`
}

// SortedDays returns the days in ascending day order without mutating the
// source slice. Rendering must use this order regardless of the order in
// the content document.
func (i *Itinerary) SortedDays() []ItineraryDay {
	days := make([]ItineraryDay, len(i.Days))
	copy(days, i.Days)
	sort.Slice(days, func(a, b int) bool { return days[a].Day < days[b].Day })
	return days
}

// IncludedItem is a "what's included" entry.
type IncludedItem struct {
	Name Translation `json:"name"`
	Icon Icon        `json:"icon"`
}

// Module is a sellable destination package with multilingual content.
type Module struct {
	ID              string         `json:"id"`
	Name            Translation    `json:"name"`
	Summary         Translation    `json:"summary"`
	Description     Translation    `json:"description"`
	InquiryText     Translation    `json:"inquiryText"`
	CoverImage      string         `json:"coverImage"`
	NumberOfDays    int            `json:"numberOfDays"`
	NumberOfPeople  int            `json:"numberOfPeople"`
	Tag             *Translation   `json:"tag,omitempty"`
	Locations       []Location     `json:"locations"`
	MainAttractions []Attraction   `json:"mainAttractions"`
	Itinerary       *Itinerary     `json:"itinerary,omitempty"`
	WhatsIncluded   []IncludedItem `json:"whatsIncluded,omitempty"`
}

// Validate checks the module against the content contract.
func (m *Module) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("module without id")
	}
	for field, t := range map[string]Translation{
		"name":        m.Name,
		"summary":     m.Summary,
		"description": m.Description,
		"inquiryText": m.InquiryText,
	} {
		if !t.Complete() {
			return fmt.Errorf("module %q: incomplete translation for %s", m.ID, field)
		}
	}
	if m.Tag != nil && !m.Tag.Complete() {
		return fmt.Errorf("module %q: incomplete translation for tag", m.ID)
	}
	if m.CoverImage == "" {
		return fmt.Errorf("module %q: missing cover image", m.ID)
	}
	if m.NumberOfDays <= 0 {
		return fmt.Errorf("module %q: invalid number of days %d", m.ID, m.NumberOfDays)
	}
	if m.NumberOfPeople <= 0 {
		return fmt.Errorf("module %q: invalid number of people %d", m.ID, m.NumberOfPeople)
	}
	if len(m.Locations) == 0 {
		return fmt.Errorf("module %q: needs at least one location", m.ID)
	}
	for i, loc := range m.Locations {
		if !loc.Name.Complete() {
			return fmt.Errorf("module %q: location %d: incomplete name", m.ID, i)
		}
		switch loc.Type {
		case LocationTypeCity, LocationTypeNatural, LocationTypeCultural:
		default:
			return fmt.Errorf("module %q: location %d: unknown type %q", m.ID, i, loc.Type)
		}
	}
	for i, a := range m.MainAttractions {
		if a.ID == "" {
			return fmt.Errorf("module %q: attraction %d without id", m.ID, i)
		}
		if !a.Name.Complete() || !a.Description.Complete() {
			return fmt.Errorf("module %q: attraction %q: incomplete translation", m.ID, a.ID)
		}
		switch a.Type {
		case AttractionTypeNatural, AttractionTypeCultural, AttractionTypeAdventure:
		default:
			return fmt.Errorf("module %q: attraction %q: unknown type %q", m.ID, a.ID, a.Type)
		}
	}
	if m.Itinerary != nil {
		if len(m.Itinerary.Days) == 0 {
			return fmt.Errorf("module %q: itinerary without days", m.ID)
		}
		seen := make(map[int]struct{}, len(m.Itinerary.Days))
		for _, d := range m.Itinerary.Days {
			if d.Day < 1 {
				return fmt.Errorf("module %q: itinerary day index %d", m.ID, d.Day)
			}
			if _, ok := seen[d.Day]; ok {
				return fmt.Errorf("module %q: duplicate itinerary day %d", m.ID, d.Day)
			}
			seen[d.Day] = struct{}{}
			if !d.Title.Complete() || !d.Description.Complete() {
				return fmt.Errorf("module %q: itinerary day %d: incomplete translation", m.ID, d.Day)
			}
		}
	}
	for i, item := range m.WhatsIncluded {
		if !item.Name.Complete() {
			return fmt.Errorf("module %q: included item %d: incomplete name", m.ID, i)
		}
		if !item.Icon.Known() {
			return fmt.Errorf("module %q: included item %d: unknown icon %q", m.ID, i, item.Icon)
		}
	}
	return nil
}

// ValidateModules validates every module and the collection-wide id
// uniqueness invariant. Validation is all-or-nothing: the first violation
// fails the whole collection.
func ValidateModules(modules []*Module) error {
	ids := make(map[string]struct{}, len(modules))
	for i, m := range modules {
		if m == nil {
			return fmt.Errorf("module %d is null", i)
		}
		if err := m.Validate(); err != nil {
			return err
		}
		if _, ok := ids[m.ID]; ok {
			return fmt.Errorf("duplicate module id %q", m.ID)
		}
		ids[m.ID] = struct{}{}
	}
	return nil
}
