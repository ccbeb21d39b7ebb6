package catalog

// TranslationView is the locale-neutral projection the resolver works on. The
// base record projects with an empty Locale.
type TranslationView struct {
	Locale         Locale
	Title          string
	Slug           string
	Description    *string
	SEOTitle       *string
	SEODescription *string
}

// DisplayFields holds the effective fields for an entity in a requested
// locale, after fallback resolution.
type DisplayFields struct {
	Locale         Locale
	Title          string
	Slug           string
	Description    *string
	SEOTitle       *string
	SEODescription *string
}

func (p *PracticeArea) BaseView() TranslationView {
	return TranslationView{Title: p.Title, Slug: p.Slug, Description: p.Description}
}

func (t *PracticeAreaTranslation) View() TranslationView {
	return TranslationView{
		Locale:         t.Locale,
		Title:          t.Title,
		Slug:           t.Slug,
		Description:    t.Description,
		SEOTitle:       t.SEOTitle,
		SEODescription: t.SEODescription,
	}
}

func (s *Service) BaseView() TranslationView {
	return TranslationView{Title: s.Title, Slug: s.Slug, Description: s.Description}
}

func (t *ServiceTranslation) View() TranslationView {
	return TranslationView{
		Locale:         t.Locale,
		Title:          t.Title,
		Slug:           t.Slug,
		Description:    t.Description,
		SEOTitle:       t.SEOTitle,
		SEODescription: t.SEODescription,
	}
}

func (s *SpecialistProfile) BaseView() TranslationView {
	return TranslationView{Title: s.Title, Slug: s.Slug, Description: s.Description}
}

func (t *SpecialistProfileTranslation) View() TranslationView {
	return TranslationView{
		Locale:         t.Locale,
		Title:          t.Title,
		Slug:           t.Slug,
		Description:    t.Description,
		SEOTitle:       t.SEOTitle,
		SEODescription: t.SEODescription,
	}
}

func (c *Company) BaseView() TranslationView {
	return TranslationView{Title: c.Title, Slug: c.Slug, Description: c.Description}
}

func (t *CompanyTranslation) View() TranslationView {
	return TranslationView{
		Locale:         t.Locale,
		Title:          t.Title,
		Slug:           t.Slug,
		Description:    t.Description,
		SEOTitle:       t.SEOTitle,
		SEODescription: t.SEODescription,
	}
}
