// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package model

// SiteText holds the page chrome strings for one language: navigation,
// section headers, form labels and toasts. Module content lives in the
// content store, not here.
type SiteText struct {
	Nav        SiteTextNav      `json:"nav" form:"nav"`
	Hero       SiteTextHero     `json:"hero" form:"hero"`
	Modules    SiteTextModules  `json:"modules" form:"modules"`
	Services   SiteTextServices `json:"services" form:"services"`
	Contact    SiteTextContact  `json:"contact" form:"contact"`
	Social     SiteTextSocial   `json:"social" form:"social"`
	Footer     SiteTextFooter   `json:"footer" form:"footer"`
	Error      SiteTextError    `json:"error" form:"error"`
	Success    SiteTextSuccess  `json:"success" form:"success"`
	FlagImgSrc string           `json:"flag_img_src" form:"flag_img_src"`
}

type SiteTextNav struct {
	Home         string `json:"home" form:"home"`
	Destinations string `json:"destinations" form:"destinations"`
	Contact      string `json:"contact" form:"contact"`
}

type SiteTextHero struct {
	Title    string `json:"title" form:"title"`
	Subtitle string `json:"subtitle" form:"subtitle"`
	CTA      string `json:"cta" form:"cta"`
}

type SiteTextModules struct {
	SectionTitle       string `json:"section_title" form:"section_title"`
	Days               string `json:"days" form:"days"`
	People             string `json:"people" form:"people"`
	ViewDetails        string `json:"view_details" form:"view_details"`
	BackToHome         string `json:"back_to_home" form:"back_to_home"`
	TripOverview       string `json:"trip_overview" form:"trip_overview"`
	MainAttractions    string `json:"main_attractions" form:"main_attractions"`
	DailyItinerary     string `json:"daily_itinerary" form:"daily_itinerary"`
	DownloadItinerary  string `json:"download_itinerary" form:"download_itinerary"`
	NoItineraryMessage string `json:"no_itinerary_message" form:"no_itinerary_message"`
	WhatsIncluded      string `json:"whats_included" form:"whats_included"`
	ReadyToExperience  string `json:"ready_to_experience" form:"ready_to_experience"`
	CustomizeTrip      string `json:"customize_trip" form:"customize_trip"`
	ContactViaEmail    string `json:"contact_via_email" form:"contact_via_email"`
	ContactViaWhatsApp string `json:"contact_via_whatsapp" form:"contact_via_whatsapp"`
}

// SiteTextServices labels the fixed service grid on the home page. The
// entries mirror what the agency actually offers; their icons are assigned
// at the template layer.
type SiteTextServices struct {
	SectionTitle  string          `json:"section_title" form:"section_title"`
	Title         string          `json:"title" form:"title"`
	Subtitle      string          `json:"subtitle" form:"subtitle"`
	Transfers     SiteTextService `json:"transfers" form:"transfers"`
	Accommodation SiteTextService `json:"accommodation" form:"accommodation"`
	Guides        SiteTextService `json:"guides" form:"guides"`
	Gastronomy    SiteTextService `json:"gastronomy" form:"gastronomy"`
	Support       SiteTextService `json:"support" form:"support"`
	Insurance     SiteTextService `json:"insurance" form:"insurance"`
}

type SiteTextService struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

type SiteTextContact struct {
	Title         string `json:"title" form:"title"`
	Subtitle      string `json:"subtitle" form:"subtitle"`
	LabelName     string `json:"label_name" form:"label_name"`
	LabelEmail    string `json:"label_email" form:"label_email"`
	LabelPhone    string `json:"label_phone" form:"label_phone"`
	LabelPeople   string `json:"label_people" form:"label_people"`
	LabelDest     string `json:"label_destination" form:"label_destination"`
	LabelMessage  string `json:"label_message" form:"label_message"`
	ButtonSubmit  string `json:"button_submit" form:"button_submit"`
	ButtonRetry   string `json:"button_retry" form:"button_retry"`
	GeneralOption string `json:"general_option" form:"general_option"`
}

type SiteTextSocial struct {
	Title     string `json:"title" form:"title"`
	Facebook  string `json:"facebook" form:"facebook"`
	Instagram string `json:"instagram" form:"instagram"`
}

type SiteTextFooter struct {
	Tagline string `json:"tagline" form:"tagline"`
	Rights  string `json:"rights" form:"rights"`
}

type SiteTextError struct {
	Title   string `json:"title" form:"title"`
	Load    string `json:"load" form:"load"`
	Send    string `json:"send" form:"send"`
	Process string `json:"process" form:"process"`
}

type SiteTextSuccess struct {
	Title   string `json:"title" form:"title"`
	Message string `json:"message" form:"message"`
}

// LanguageOption is one entry of the language selector.
type LanguageOption struct {
	Lang       string `json:"lang" form:"lang"`
	FlagImgSrc string `json:"flagImgSrc" form:"flagImgSrc"`
}
