package entity

// PageType identifies which variant of SEO metadata a page needs.
type PageType string

const (
	PageTypeDefault     PageType = "default"
	PageTypeService     PageType = "service"
	PageTypeArea        PageType = "area"
	PageTypeServiceArea PageType = "service_area"
)

// FAQType identifies which FAQ template set a page needs.
type FAQType string

const (
	FAQTypeDefault     FAQType = "default"
	FAQTypeService     FAQType = "service"
	FAQTypeServiceArea FAQType = "service_area"
)

// PageMeta is the resolved metadata for a single page.
type PageMeta struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Keywords    string `json:"keywords,omitempty"`
}

// FAQ is a rendered question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQTemplate is a question/answer pair with {service} and {area}
// placeholders still unsubstituted.
type FAQTemplate struct {
	QuestionTemplate string `json:"questionTemplate" validate:"required"`
	AnswerTemplate   string `json:"answerTemplate" validate:"required"`
}

// PricingContent holds the flat fee descriptors shown on service pages.
type PricingContent struct {
	Inspection               string `json:"inspection"`
	BasicMaintenance         string `json:"basicMaintenance"`
	ComprehensiveMaintenance string `json:"comprehensiveMaintenance"`
	Installation             string `json:"installation"`
	Disclaimer               string `json:"disclaimer"`
}

// HeroContent holds the landing page headline copy.
type HeroContent struct {
	Headline          string `json:"headline"`
	Subheadline       string `json:"subheadline"`
	SearchPlaceholder string `json:"searchPlaceholder"`
}

// CTAContent holds the technician-facing and user-facing call-to-action copy.
type CTAContent struct {
	Technician            string `json:"technician"`
	TechnicianDescription string `json:"technicianDescription"`
	User                  string `json:"user"`
	UserDescription       string `json:"userDescription"`
}

// SeoContent groups the non-metadata marketing copy of a country document.
type SeoContent struct {
	FAQs struct {
		Default     []FAQ         `json:"default"`
		Service     []FAQTemplate `json:"service"`
		ServiceArea []FAQTemplate `json:"serviceArea"`
	} `json:"faqs"`
	Pricing PricingContent `json:"pricing"`
	Hero    HeroContent    `json:"hero"`
	CTA     CTAContent     `json:"cta"`
}

// SeoDocument is the per-country SEO content tree. Service/area variants are
// keyed by entity ID; the service+area variant is a nested map keyed by
// service ID then area ID, so IDs containing underscores cannot collide.
type SeoDocument struct {
	CountryCode  string                         `json:"countryCode" validate:"required"`
	Default      PageMeta                       `json:"default" validate:"required"`
	Services     map[string]PageMeta            `json:"services"`
	Areas        map[string]PageMeta            `json:"areas"`
	ServiceAreas map[string]map[string]PageMeta `json:"serviceAreas"`
	Content      SeoContent                     `json:"content"`
}
