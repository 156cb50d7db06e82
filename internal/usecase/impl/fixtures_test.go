package impl

import (
	"testing"
	"time"

	"github.com/azez-alhoot/fannifix-hub/config"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/infra/persistence/jsonstore"

	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2025, 6, n, 12, 0, 0, 0, time.UTC)
}

// newTestStore seeds a small Kuwait market: two services, three areas in two
// governorates, four technicians across every status, and a listing feed.
func newTestStore(t *testing.T) *jsonstore.Store {
	t.Helper()

	store, err := jsonstore.NewFromCollections(jsonstore.Collections{
		Countries: []*entity.Country{
			{Code: "kw", Name: "الكويت", NameEn: "Kuwait", Currency: "KWD", CurrencySymbol: "د.ك", Active: true},
			{Code: "sa", Name: "السعودية", NameEn: "Saudi Arabia", Currency: "SAR", CurrencySymbol: "ر.س", Active: false},
		},
		Services: []*entity.Service{
			{ID: "svc-ac", Key: "ac", Name: "تصليح تكييف", NameEn: "AC Repair", Description: "صيانة وتركيب وحدات التكييف", Slug: "ac-repair"},
			{ID: "svc-plumbing", Key: "plumbing", Name: "سباكة", NameEn: "Plumbing", Description: "تمديد وتصليح السباكة", Slug: "plumbing"},
		},
		Areas: []*entity.Area{
			{ID: "hawalli", CountryCode: "kw", Governorate: "محافظة حولي", Name: "حولي", NameEn: "Hawalli", Slug: "hawalli"},
			{ID: "salmiya", CountryCode: "kw", Governorate: "محافظة حولي", Name: "السالمية", NameEn: "Salmiya", Slug: "salmiya"},
			{ID: "kuwait-city", CountryCode: "kw", Governorate: "محافظة العاصمة", Name: "مدينة الكويت", NameEn: "Kuwait City", Slug: "kuwait-city"},
		},
		Technicians: []*entity.Technician{
			{
				ID: "t-ac-hawalli", Name: "أبو أحمد للتكييف", CountryCode: "kw",
				ServiceIDs: []string{"svc-ac"}, AreaIDs: []string{"hawalli", "salmiya"},
				Phone: "+96550000001", WhatsApp: "+96550000001",
				Description: "فني تكييف مركزي ووحدات",
				Rating:      4.8, ReviewsCount: 120, ExperienceYears: 10,
				Verified: true, Featured: true,
				Status: entity.TechnicianStatusActive, CreatedAt: day(1),
			},
			{
				ID: "t-plumber-city", Name: "سباك العاصمة", CountryCode: "kw",
				ServiceIDs: []string{"svc-plumbing"}, AreaIDs: []string{"kuwait-city"},
				Phone: "+96550000002", WhatsApp: "+96550000002",
				Description: "تسليك مجاري وتمديدات",
				Rating:      4.2, ReviewsCount: 45, ExperienceYears: 6,
				Verified: false, Featured: false,
				Status: entity.TechnicianStatusActive, CreatedAt: day(5),
			},
			{
				ID: "t-ac-salmiya", Name: "برودة السالمية", CountryCode: "kw",
				ServiceIDs: []string{"svc-ac", "svc-plumbing"}, AreaIDs: []string{"salmiya"},
				Phone: "+96550000003", WhatsApp: "+96550000003",
				Description: "تعبئة فريون وصيانة دورية",
				Rating:      4.8, ReviewsCount: 80, ExperienceYears: 15,
				Verified: true, Featured: false,
				Status: entity.TechnicianStatusActive, CreatedAt: day(9),
			},
			{
				ID: "t-pending", Name: "فني قيد المراجعة", CountryCode: "kw",
				ServiceIDs: []string{"svc-ac"}, AreaIDs: []string{"hawalli"},
				WhatsApp: "+96550000004",
				Rating:   5.0, ReviewsCount: 999, ExperienceYears: 20,
				Featured: true,
				Status:   entity.TechnicianStatusPending, CreatedAt: day(10),
			},
		},
		Listings: []*entity.Listing{
			{
				ID: "l-old", Title: "تصليح تكييف فوري", TechnicianID: "t-ac-hawalli",
				ServiceID: "svc-ac", AreaID: "hawalli", CountryCode: "kw",
				Status: entity.ListingStatusActive, CreatedAt: day(2),
			},
			{
				ID: "l-new", Title: "سباك متوفر اليوم", TechnicianID: "t-plumber-city",
				ServiceID: "svc-plumbing", AreaID: "kuwait-city", CountryCode: "kw",
				Status: entity.ListingStatusActive, CreatedAt: day(8),
			},
			{
				ID: "l-expired", Title: "عرض منتهي", TechnicianID: "t-ac-hawalli",
				ServiceID: "svc-ac", AreaID: "hawalli", CountryCode: "kw",
				Status: entity.ListingStatusExpired, CreatedAt: day(20),
			},
			{
				ID: "l-mid", Title: "صيانة تكييف السالمية", TechnicianID: "t-ac-salmiya",
				ServiceID: "svc-ac", AreaID: "salmiya", CountryCode: "kw",
				Status: entity.ListingStatusActive, CreatedAt: day(4),
			},
		},
		Seo: []*entity.SeoDocument{testSeoDocument()},
	})
	require.NoError(t, err)

	return store
}

func testSeoDocument() *entity.SeoDocument {
	doc := &entity.SeoDocument{
		CountryCode: "kw",
		Default: entity.PageMeta{
			Title:       "فني تصليح في الكويت",
			Description: "دليل الفنيين المعتمدين في الكويت",
			Keywords:    "فني, تصليح, الكويت",
		},
		Services: map[string]entity.PageMeta{
			"svc-ac": {Title: "تصليح تكييف في الكويت", Description: "أفضل فنيي التكييف"},
		},
		Areas: map[string]entity.PageMeta{
			"hawalli": {Title: "فنيون في حولي", Description: "كل خدمات الصيانة في حولي"},
		},
		ServiceAreas: map[string]map[string]entity.PageMeta{
			"svc-ac": {
				"hawalli": {Title: "تصليح تكييف في حولي", Description: "فني تكييف يصلك في حولي"},
			},
		},
	}

	doc.Content.FAQs.Default = []entity.FAQ{
		{Question: "كيف أتواصل مع الفني؟", Answer: "عبر واتساب مباشرة"},
	}
	doc.Content.FAQs.Service = []entity.FAQTemplate{
		{QuestionTemplate: "كم تكلفة {service}؟", AnswerTemplate: "تعتمد تكلفة {service} على حجم العمل"},
	}
	doc.Content.FAQs.ServiceArea = []entity.FAQTemplate{
		{QuestionTemplate: "هل يوجد {service} في {area}؟", AnswerTemplate: "نعم، يتوفر فنيو {service} في {area}"},
	}
	doc.Content.Pricing = entity.PricingContent{
		Inspection:       "5 د.ك",
		BasicMaintenance: "15 د.ك",
		Installation:     "25 د.ك",
		Disclaimer:       "الأسعار تقديرية",
	}
	doc.Content.Hero = entity.HeroContent{
		Headline:          "ابحث عن فني موثوق",
		Subheadline:       "في منطقتك خلال دقائق",
		SearchPlaceholder: "عن ماذا تبحث؟",
	}
	doc.Content.CTA = entity.CTAContent{
		Technician:            "سجل كفني",
		TechnicianDescription: "انضم إلى الدليل",
		User:                  "اطلب فني الآن",
		UserDescription:       "خدمة سريعة وموثوقة",
	}

	return doc
}

func newTestConfig() *config.Config {
	return &config.Config{
		Site: &config.SiteConfig{
			BaseURL:             "https://fannifix.com",
			DefaultCountry:      "kw",
			LatestListingsLimit: 2,
		},
	}
}
