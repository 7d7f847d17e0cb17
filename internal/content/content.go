// Package content holds the fixed copy and imagery of the landing page.
package content

import (
	"fmt"

	"github.com/ashisht1812/Fotush-Web/internal/models"
	"github.com/go-playground/validator/v10"
)

const unsplash = "?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop"

func photo(id string, width int) string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%s%s&w=%d&q=80", id, unsplash, width)
}

var navLinks = []models.NavLink{
	{Label: "How It Works", Target: "#how-it-works"},
	{Label: "Features", Target: "#features"},
	{Label: "Testimonials", Target: "#testimonials"},
	{Label: "Pricing", Target: "#"},
}

var steps = []models.Step{
	{
		Icon:        "camera",
		Title:       "Choose a Category",
		Description: "Select from ProClick, AeroLens, InstaPro, CineFrame, or ReelMakers based on your needs.",
		Accent:      "from-purple-500 to-purple-600",
	},
	{
		Icon:        "users",
		Title:       "Select a Photographer",
		Description: "Browse profiles, reviews, and pricing to find your perfect match.",
		Accent:      "from-blue-500 to-blue-600",
	},
	{
		Icon:        "calendar",
		Title:       "Book & Pay Securely",
		Description: "Schedule your session and complete payment in seconds.",
		Accent:      "from-indigo-500 to-indigo-600",
	},
	{
		Icon:        "image",
		Title:       "Receive Photos & Videos",
		Description: "Get your professionally edited content delivered instantly.",
		Accent:      "from-pink-500 to-pink-600",
	},
}

var features = []models.Feature{
	{
		Icon:        "sparkles",
		Title:       "AI-Powered Matching",
		Description: "Our intelligent algorithm connects you with photographers who match your style, budget, and location preferences.",
		Accent:      "from-purple-500 to-purple-600",
	},
	{
		Icon:        "clock",
		Title:       "On-Demand Bookings",
		Description: "Find available photographers near you in real-time for immediate or scheduled sessions.",
		Accent:      "from-blue-500 to-blue-600",
	},
	{
		Icon:        "dollar-sign",
		Title:       "Flexible Pricing",
		Description: "Choose between per-session or per-minute pricing options to fit your specific needs and budget.",
		Accent:      "from-indigo-500 to-indigo-600",
	},
	{
		Icon:        "zap",
		Title:       "Instant Photo Delivery",
		Description: "Receive your professionally edited photos and videos quickly after your session through our secure platform.",
		Accent:      "from-pink-500 to-pink-600",
	},
}

var benefits = []models.Benefit{
	{Icon: "dollar-sign", Text: "Earn competitive rates on your schedule"},
	{Icon: "calendar", Text: "Flexible booking system that works around your availability"},
	{Icon: "users", Text: "Connect with clients looking for your specific skills"},
	{Icon: "camera", Text: "Showcase your portfolio to thousands of potential clients"},
}

var testimonials = []models.Testimonial{
	{
		ID:             1,
		Name:           "Sarah Johnson",
		Role:           "Wedding Client",
		AvatarURL:      photo("1494790108377-be9c29b29330", 256),
		Quote:          "Fotush made finding a last-minute wedding photographer so easy! The photographer was professional, talented, and delivered our photos within 48 hours. Couldn't be happier!",
		Rating:         5,
		SampleImageURL: photo("1537633552985-df8429e8048b", 500),
	},
	{
		ID:             2,
		Name:           "Michael Chen",
		Role:           "Business Owner",
		AvatarURL:      photo("1507003211169-0a1dd7228f2d", 256),
		Quote:          "As a small business owner, I needed product photography on a budget. Fotush connected me with an amazing photographer who understood my vision perfectly. The results boosted my sales immediately!",
		Rating:         5,
		SampleImageURL: photo("1531973486364-5fa64260d75b", 500),
	},
	{
		ID:             3,
		Name:           "Emily Rodriguez",
		Role:           "Travel Blogger",
		AvatarURL:      photo("1534528741775-53994a69daeb", 256),
		Quote:          "I use Fotush in every city I visit. The platform makes it simple to book local photographers who know all the best spots. My Instagram has never looked better!",
		Rating:         4,
		SampleImageURL: photo("1502791451862-7bd8c1df43a7", 500),
	},
}

var gallery = []models.GalleryImage{
	{URL: photo("1551854716-8b811be39e7e", 600)},
	{URL: photo("1604017011826-d3b4c23f8914", 600)},
	{URL: photo("1519741497674-611481863552", 600)},
	{URL: photo("1604268145635-5a2e0f150959", 600)},
}

var social = []models.SocialLink{
	{Network: "Instagram", Icon: "instagram", URL: "#"},
	{Network: "Twitter", Icon: "twitter", URL: "#"},
	{Network: "Facebook", Icon: "facebook", URL: "#"},
	{Network: "LinkedIn", Icon: "linkedin", URL: "#"},
}

var footerLinks = []models.FooterColumn{
	{
		Title: "Quick Links",
		Links: []models.NavLink{
			{Label: "Find a Photographer", Target: "#"},
			{Label: "Become a Photographer", Target: "#"},
			{Label: "How It Works", Target: "#"},
			{Label: "Pricing", Target: "#"},
			{Label: "Blog", Target: "#"},
		},
	},
	{
		Title: "Categories",
		Links: []models.NavLink{
			{Label: "ProClick (Professional)", Target: "#"},
			{Label: "AeroLens (Drone)", Target: "#"},
			{Label: "InstaPro (Social Media)", Target: "#"},
			{Label: "CineFrame (Video)", Target: "#"},
			{Label: "ReelMakers (Short Form)", Target: "#"},
		},
	},
}

var legalLinks = []models.NavLink{
	{Label: "Privacy Policy", Target: "#"},
	{Label: "Terms of Service", Target: "#"},
	{Label: "Cookie Policy", Target: "#"},
}

// Site returns the landing page content. Each call returns fresh slices, so
// callers may not alter what other callers see.
func Site() models.Site {
	return models.Site{
		Hero: models.Hero{
			Headline:      "Capture Every Moment with the Perfect Photographer – Instantly!",
			Subheadline:   "Book skilled photographers and videographers near you with ease.",
			BackgroundURL: photo("1542038784456-1ea8e935640e", 2070),
			Placeholder:   "Enter your location",
			PrimaryCTA:    "Find a Photographer",
			SecondaryCTA:  "Become a Photographer",
		},
		Contact: models.Contact{
			Email:    "hello@fotush.com",
			Phone:    "+1 (234) 567-890",
			PhoneURI: "tel:+1234567890",
		},
		Brand:        "Fotush",
		Tagline:      "Connecting talented photographers with clients worldwide. Capture every moment with the perfect photographer – instantly!",
		NavLinks:     clone(navLinks),
		Steps:        clone(steps),
		Features:     clone(features),
		FeatureImage: photo("1516035069371-29a1b244cc32", 1000),
		Benefits:     clone(benefits),
		SignupImage:  photo("1554048612-b6a482bc67e5", 1000),
		Testimonials: clone(testimonials),
		Gallery:      clone(gallery),
		Social:       clone(social),
		FooterLinks:  cloneColumns(footerLinks),
		LegalLinks:   clone(legalLinks),
	}
}

// Validate checks the content against the record constraints.
func Validate(site models.Site) error {
	v := validator.New()
	if err := v.Struct(site); err != nil {
		return fmt.Errorf("invalid site content: %w", err)
	}
	return nil
}

func clone[T any](in []T) []T {
	return append([]T(nil), in...)
}

func cloneColumns(in []models.FooterColumn) []models.FooterColumn {
	out := make([]models.FooterColumn, len(in))
	for i, c := range in {
		out[i] = models.FooterColumn{Title: c.Title, Links: clone(c.Links)}
	}
	return out
}
