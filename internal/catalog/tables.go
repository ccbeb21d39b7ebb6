package catalog

import (
	"time"

	"github.com/google/uuid"
)

func applyOptionalFields(in TranslationInput, description, seoTitle, seoDescription **string) {
	if in.Description != nil {
		*description = in.Description
	}
	if in.SEOTitle != nil {
		*seoTitle = in.SEOTitle
	}
	if in.SEODescription != nil {
		*seoDescription = in.SEODescription
	}
}

func stamp(createdAt *time.Time, updatedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

// PracticeAreaHandlers adapts the practice area tables to the generic layer.
func PracticeAreaHandlers() EntityHandlers[*PracticeArea, *PracticeAreaTranslation] {
	return EntityHandlers[*PracticeArea, *PracticeAreaTranslation]{
		Kind:                   "practice_area",
		Table:                  "practice_areas",
		TranslationTable:       "practice_area_translations",
		TranslationEntityField: "practice_area_id",

		NewEntity:      func() *PracticeArea { return &PracticeArea{} },
		EntityID:       func(e *PracticeArea) uuid.UUID { return e.ID },
		SetEntityID:    func(e *PracticeArea, id uuid.UUID) { e.ID = id },
		EntityTitle:    func(e *PracticeArea) string { return e.Title },
		SetEntityTitle: func(e *PracticeArea, title string) { e.Title = title },
		EntitySlug:     func(e *PracticeArea) string { return e.Slug },
		SetEntitySlug:  func(e *PracticeArea, s string) { e.Slug = s },
		StampEntity:    func(e *PracticeArea, now time.Time) { stamp(&e.CreatedAt, &e.UpdatedAt, now) },
		EntityView:     func(e *PracticeArea) TranslationView { return e.BaseView() },

		NewTranslation:         func() *PracticeAreaTranslation { return &PracticeAreaTranslation{} },
		TranslationID:          func(t *PracticeAreaTranslation) uuid.UUID { return t.ID },
		SetTranslationID:       func(t *PracticeAreaTranslation, id uuid.UUID) { t.ID = id },
		TranslationEntityID:    func(t *PracticeAreaTranslation) uuid.UUID { return t.PracticeAreaID },
		SetTranslationEntityID: func(t *PracticeAreaTranslation, id uuid.UUID) { t.PracticeAreaID = id },
		TranslationLocale:      func(t *PracticeAreaTranslation) Locale { return t.Locale },
		SetTranslationLocale:   func(t *PracticeAreaTranslation, l Locale) { t.Locale = l },
		TranslationTitle:       func(t *PracticeAreaTranslation) string { return t.Title },
		SetTranslationTitle:    func(t *PracticeAreaTranslation, title string) { t.Title = title },
		TranslationSlug:        func(t *PracticeAreaTranslation) string { return t.Slug },
		SetTranslationSlug:     func(t *PracticeAreaTranslation, s string) { t.Slug = s },
		StampTranslation: func(t *PracticeAreaTranslation, now time.Time) {
			stamp(&t.CreatedAt, &t.UpdatedAt, now)
		},
		ApplyTranslationInput: func(t *PracticeAreaTranslation, in TranslationInput) {
			applyOptionalFields(in, &t.Description, &t.SEOTitle, &t.SEODescription)
		},
		TranslationView: func(t *PracticeAreaTranslation) TranslationView { return t.View() },
	}
}

// ServiceHandlers adapts the service tables to the generic layer. Services
// are the only kind with a parent relationship.
func ServiceHandlers() EntityHandlers[*Service, *ServiceTranslation] {
	return EntityHandlers[*Service, *ServiceTranslation]{
		Kind:                   "service",
		Table:                  "services",
		TranslationTable:       "service_translations",
		TranslationEntityField: "service_id",

		NewEntity:      func() *Service { return &Service{} },
		EntityID:       func(e *Service) uuid.UUID { return e.ID },
		SetEntityID:    func(e *Service, id uuid.UUID) { e.ID = id },
		EntityTitle:    func(e *Service) string { return e.Title },
		SetEntityTitle: func(e *Service, title string) { e.Title = title },
		EntitySlug:     func(e *Service) string { return e.Slug },
		SetEntitySlug:  func(e *Service, s string) { e.Slug = s },
		StampEntity:    func(e *Service, now time.Time) { stamp(&e.CreatedAt, &e.UpdatedAt, now) },
		EntityView:     func(e *Service) TranslationView { return e.BaseView() },

		EntityParentID:    func(e *Service) uuid.UUID { return e.PracticeAreaID },
		SetEntityParentID: func(e *Service, id uuid.UUID) { e.PracticeAreaID = id },

		NewTranslation:         func() *ServiceTranslation { return &ServiceTranslation{} },
		TranslationID:          func(t *ServiceTranslation) uuid.UUID { return t.ID },
		SetTranslationID:       func(t *ServiceTranslation, id uuid.UUID) { t.ID = id },
		TranslationEntityID:    func(t *ServiceTranslation) uuid.UUID { return t.ServiceID },
		SetTranslationEntityID: func(t *ServiceTranslation, id uuid.UUID) { t.ServiceID = id },
		TranslationLocale:      func(t *ServiceTranslation) Locale { return t.Locale },
		SetTranslationLocale:   func(t *ServiceTranslation, l Locale) { t.Locale = l },
		TranslationTitle:       func(t *ServiceTranslation) string { return t.Title },
		SetTranslationTitle:    func(t *ServiceTranslation, title string) { t.Title = title },
		TranslationSlug:        func(t *ServiceTranslation) string { return t.Slug },
		SetTranslationSlug:     func(t *ServiceTranslation, s string) { t.Slug = s },
		StampTranslation: func(t *ServiceTranslation, now time.Time) {
			stamp(&t.CreatedAt, &t.UpdatedAt, now)
		},
		ApplyTranslationInput: func(t *ServiceTranslation, in TranslationInput) {
			applyOptionalFields(in, &t.Description, &t.SEOTitle, &t.SEODescription)
		},
		TranslationView: func(t *ServiceTranslation) TranslationView { return t.View() },
	}
}

// SpecialistProfileHandlers adapts the specialist profile tables to the generic layer.
func SpecialistProfileHandlers() EntityHandlers[*SpecialistProfile, *SpecialistProfileTranslation] {
	return EntityHandlers[*SpecialistProfile, *SpecialistProfileTranslation]{
		Kind:                   "specialist_profile",
		Table:                  "specialist_profiles",
		TranslationTable:       "specialist_profile_translations",
		TranslationEntityField: "specialist_profile_id",

		NewEntity:      func() *SpecialistProfile { return &SpecialistProfile{} },
		EntityID:       func(e *SpecialistProfile) uuid.UUID { return e.ID },
		SetEntityID:    func(e *SpecialistProfile, id uuid.UUID) { e.ID = id },
		EntityTitle:    func(e *SpecialistProfile) string { return e.Title },
		SetEntityTitle: func(e *SpecialistProfile, title string) { e.Title = title },
		EntitySlug:     func(e *SpecialistProfile) string { return e.Slug },
		SetEntitySlug:  func(e *SpecialistProfile, s string) { e.Slug = s },
		StampEntity: func(e *SpecialistProfile, now time.Time) {
			stamp(&e.CreatedAt, &e.UpdatedAt, now)
		},
		EntityView: func(e *SpecialistProfile) TranslationView { return e.BaseView() },

		NewTranslation: func() *SpecialistProfileTranslation { return &SpecialistProfileTranslation{} },
		TranslationID:  func(t *SpecialistProfileTranslation) uuid.UUID { return t.ID },
		SetTranslationID: func(t *SpecialistProfileTranslation, id uuid.UUID) {
			t.ID = id
		},
		TranslationEntityID: func(t *SpecialistProfileTranslation) uuid.UUID {
			return t.SpecialistProfileID
		},
		SetTranslationEntityID: func(t *SpecialistProfileTranslation, id uuid.UUID) {
			t.SpecialistProfileID = id
		},
		TranslationLocale:    func(t *SpecialistProfileTranslation) Locale { return t.Locale },
		SetTranslationLocale: func(t *SpecialistProfileTranslation, l Locale) { t.Locale = l },
		TranslationTitle:     func(t *SpecialistProfileTranslation) string { return t.Title },
		SetTranslationTitle: func(t *SpecialistProfileTranslation, title string) {
			t.Title = title
		},
		TranslationSlug:    func(t *SpecialistProfileTranslation) string { return t.Slug },
		SetTranslationSlug: func(t *SpecialistProfileTranslation, s string) { t.Slug = s },
		StampTranslation: func(t *SpecialistProfileTranslation, now time.Time) {
			stamp(&t.CreatedAt, &t.UpdatedAt, now)
		},
		ApplyTranslationInput: func(t *SpecialistProfileTranslation, in TranslationInput) {
			applyOptionalFields(in, &t.Description, &t.SEOTitle, &t.SEODescription)
		},
		TranslationView: func(t *SpecialistProfileTranslation) TranslationView { return t.View() },
	}
}

// CompanyHandlers adapts the company tables to the generic layer.
func CompanyHandlers() EntityHandlers[*Company, *CompanyTranslation] {
	return EntityHandlers[*Company, *CompanyTranslation]{
		Kind:                   "company",
		Table:                  "companies",
		TranslationTable:       "company_translations",
		TranslationEntityField: "company_id",

		NewEntity:      func() *Company { return &Company{} },
		EntityID:       func(e *Company) uuid.UUID { return e.ID },
		SetEntityID:    func(e *Company, id uuid.UUID) { e.ID = id },
		EntityTitle:    func(e *Company) string { return e.Title },
		SetEntityTitle: func(e *Company, title string) { e.Title = title },
		EntitySlug:     func(e *Company) string { return e.Slug },
		SetEntitySlug:  func(e *Company, s string) { e.Slug = s },
		StampEntity:    func(e *Company, now time.Time) { stamp(&e.CreatedAt, &e.UpdatedAt, now) },
		EntityView:     func(e *Company) TranslationView { return e.BaseView() },

		NewTranslation:         func() *CompanyTranslation { return &CompanyTranslation{} },
		TranslationID:          func(t *CompanyTranslation) uuid.UUID { return t.ID },
		SetTranslationID:       func(t *CompanyTranslation, id uuid.UUID) { t.ID = id },
		TranslationEntityID:    func(t *CompanyTranslation) uuid.UUID { return t.CompanyID },
		SetTranslationEntityID: func(t *CompanyTranslation, id uuid.UUID) { t.CompanyID = id },
		TranslationLocale:      func(t *CompanyTranslation) Locale { return t.Locale },
		SetTranslationLocale:   func(t *CompanyTranslation, l Locale) { t.Locale = l },
		TranslationTitle:       func(t *CompanyTranslation) string { return t.Title },
		SetTranslationTitle:    func(t *CompanyTranslation, title string) { t.Title = title },
		TranslationSlug:        func(t *CompanyTranslation) string { return t.Slug },
		SetTranslationSlug:     func(t *CompanyTranslation, s string) { t.Slug = s },
		StampTranslation: func(t *CompanyTranslation, now time.Time) {
			stamp(&t.CreatedAt, &t.UpdatedAt, now)
		},
		ApplyTranslationInput: func(t *CompanyTranslation, in TranslationInput) {
			applyOptionalFields(in, &t.Description, &t.SEOTitle, &t.SEODescription)
		},
		TranslationView: func(t *CompanyTranslation) TranslationView { return t.View() },
	}
}
