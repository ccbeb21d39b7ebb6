package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// LocaleRecord stores a supported language in the locale registry.
type LocaleRecord struct {
	bun.BaseModel `bun:"table:locales,alias:l"`

	ID        uuid.UUID `bun:",pk,type:uuid"        json:"id"`
	Code      string    `bun:"code,notnull,unique"  json:"code"`
	Display   string    `bun:"display_name,notnull" json:"display_name"`
	IsActive  bool      `bun:"is_active,notnull,default:true"   json:"is_active"`
	IsDefault bool      `bun:"is_default,notnull,default:false" json:"is_default"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// PracticeArea is the canonical record for a top-level legal practice area.
type PracticeArea struct {
	bun.BaseModel `bun:"table:practice_areas,alias:pa"`

	ID          uuid.UUID `bun:",pk,type:uuid"      json:"id"`
	Title       string    `bun:"title,notnull"      json:"title"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
	HeroImage   *string   `bun:"hero_image"         json:"hero_image,omitempty"`
	Description *string   `bun:"description"        json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*PracticeAreaTranslation `bun:"rel:has-many,join:id=practice_area_id" json:"translations,omitempty"`
	Services     []*Service                 `bun:"rel:has-many,join:id=practice_area_id" json:"services,omitempty"`
}

// PracticeAreaTranslation stores localized display fields for a practice area.
type PracticeAreaTranslation struct {
	bun.BaseModel `bun:"table:practice_area_translations,alias:pat"`

	ID             uuid.UUID `bun:",pk,type:uuid"                      json:"id"`
	PracticeAreaID uuid.UUID `bun:"practice_area_id,notnull,type:uuid" json:"practice_area_id"`
	Locale         Locale    `bun:"locale,notnull"                     json:"locale"`
	Title          string    `bun:"title,notnull"                      json:"title"`
	Slug           string    `bun:"slug,notnull"                       json:"slug"`
	Description    *string   `bun:"description"                        json:"description,omitempty"`
	SEOTitle       *string   `bun:"seo_title"                          json:"seo_title,omitempty"`
	SEODescription *string   `bun:"seo_description"                    json:"seo_description,omitempty"`
	CreatedAt      time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Service is a canonical record for a legal service offered under a practice area.
type Service struct {
	bun.BaseModel `bun:"table:services,alias:s"`

	ID             uuid.UUID `bun:",pk,type:uuid"                      json:"id"`
	PracticeAreaID uuid.UUID `bun:"practice_area_id,notnull,type:uuid" json:"practice_area_id"`
	Title          string    `bun:"title,notnull"                      json:"title"`
	Slug           string    `bun:"slug,notnull,unique"                json:"slug"`
	HeroImage      *string   `bun:"hero_image"                         json:"hero_image,omitempty"`
	Description    *string   `bun:"description"                        json:"description,omitempty"`
	CreatedAt      time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	PracticeArea *PracticeArea         `bun:"rel:belongs-to,join:practice_area_id=id" json:"practice_area,omitempty"`
	Translations []*ServiceTranslation `bun:"rel:has-many,join:id=service_id"         json:"translations,omitempty"`
}

// ServiceTranslation stores localized display fields for a service.
type ServiceTranslation struct {
	bun.BaseModel `bun:"table:service_translations,alias:st"`

	ID             uuid.UUID `bun:",pk,type:uuid"                json:"id"`
	ServiceID      uuid.UUID `bun:"service_id,notnull,type:uuid" json:"service_id"`
	Locale         Locale    `bun:"locale,notnull"               json:"locale"`
	Title          string    `bun:"title,notnull"                json:"title"`
	Slug           string    `bun:"slug,notnull"                 json:"slug"`
	Description    *string   `bun:"description"                  json:"description,omitempty"`
	SEOTitle       *string   `bun:"seo_title"                    json:"seo_title,omitempty"`
	SEODescription *string   `bun:"seo_description"              json:"seo_description,omitempty"`
	CreatedAt      time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// SpecialistProfile is the canonical record for a listed legal specialist.
type SpecialistProfile struct {
	bun.BaseModel `bun:"table:specialist_profiles,alias:sp"`

	ID          uuid.UUID `bun:",pk,type:uuid"       json:"id"`
	Title       string    `bun:"title,notnull"       json:"title"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
	Photo       *string   `bun:"photo"               json:"photo,omitempty"`
	Description *string   `bun:"description"         json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*SpecialistProfileTranslation `bun:"rel:has-many,join:id=specialist_profile_id" json:"translations,omitempty"`
}

// SpecialistProfileTranslation stores localized display fields for a specialist.
type SpecialistProfileTranslation struct {
	bun.BaseModel `bun:"table:specialist_profile_translations,alias:spt"`

	ID                  uuid.UUID `bun:",pk,type:uuid"                           json:"id"`
	SpecialistProfileID uuid.UUID `bun:"specialist_profile_id,notnull,type:uuid" json:"specialist_profile_id"`
	Locale              Locale    `bun:"locale,notnull"                          json:"locale"`
	Title               string    `bun:"title,notnull"                           json:"title"`
	Slug                string    `bun:"slug,notnull"                            json:"slug"`
	Description         *string   `bun:"description"                             json:"description,omitempty"`
	SEOTitle            *string   `bun:"seo_title"                               json:"seo_title,omitempty"`
	SEODescription      *string   `bun:"seo_description"                         json:"seo_description,omitempty"`
	CreatedAt           time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt           time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Company is the canonical record for a listed law firm or company.
type Company struct {
	bun.BaseModel `bun:"table:companies,alias:co"`

	ID          uuid.UUID `bun:",pk,type:uuid"       json:"id"`
	Title       string    `bun:"title,notnull"       json:"title"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
	Logo        *string   `bun:"logo"                json:"logo,omitempty"`
	Description *string   `bun:"description"         json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*CompanyTranslation `bun:"rel:has-many,join:id=company_id" json:"translations,omitempty"`
}

// CompanyTranslation stores localized display fields for a company.
type CompanyTranslation struct {
	bun.BaseModel `bun:"table:company_translations,alias:cot"`

	ID             uuid.UUID `bun:",pk,type:uuid"                json:"id"`
	CompanyID      uuid.UUID `bun:"company_id,notnull,type:uuid" json:"company_id"`
	Locale         Locale    `bun:"locale,notnull"               json:"locale"`
	Title          string    `bun:"title,notnull"                json:"title"`
	Slug           string    `bun:"slug,notnull"                 json:"slug"`
	Description    *string   `bun:"description"                  json:"description,omitempty"`
	SEOTitle       *string   `bun:"seo_title"                    json:"seo_title,omitempty"`
	SEODescription *string   `bun:"seo_description"              json:"seo_description,omitempty"`
	CreatedAt      time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
