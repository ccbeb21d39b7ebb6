package catalog

import dircatalog "github.com/advokati/go-directory/catalog"

type (
	Locale                       = dircatalog.Locale
	LocaleRecord                 = dircatalog.LocaleRecord
	PracticeArea                 = dircatalog.PracticeArea
	PracticeAreaTranslation      = dircatalog.PracticeAreaTranslation
	Service                      = dircatalog.Service
	ServiceTranslation           = dircatalog.ServiceTranslation
	SpecialistProfile            = dircatalog.SpecialistProfile
	SpecialistProfileTranslation = dircatalog.SpecialistProfileTranslation
	Company                      = dircatalog.Company
	CompanyTranslation           = dircatalog.CompanyTranslation
	TranslationView              = dircatalog.TranslationView
	DisplayFields                = dircatalog.DisplayFields
	NotFoundError                = dircatalog.NotFoundError
)

const (
	DefaultLocale  = dircatalog.DefaultLocale
	LocaleGeorgian = dircatalog.LocaleGeorgian
	LocaleEnglish  = dircatalog.LocaleEnglish
	LocaleRussian  = dircatalog.LocaleRussian
)

var (
	ErrTitleRequired    = dircatalog.ErrTitleRequired
	ErrSlugInvalid      = dircatalog.ErrSlugInvalid
	ErrUnknownLocale    = dircatalog.ErrUnknownLocale
	ErrDuplicateLocale  = dircatalog.ErrDuplicateLocale
	ErrEntityIDRequired = dircatalog.ErrEntityIDRequired
	ErrParentRequired   = dircatalog.ErrParentRequired

	IsNotFound    = dircatalog.IsNotFound
	Locales       = dircatalog.Locales
	NormalizeSlug = dircatalog.NormalizeSlug
)
