// Package routepath stores canonical HTTP paths shared by the router and the
// views that post to it.
package routepath

const (
	Root   = "/"
	Health = "/health"

	Static  = "/static"
	Robots  = "/robots.txt"
	Favicon = "/favicon.svg"

	UIPrefix         = "/ui"
	Menu             = UIPrefix + "/menu"
	Location         = UIPrefix + "/location"
	TestimonialsNext = UIPrefix + "/testimonials/next"
	TestimonialsPrev = UIPrefix + "/testimonials/prev"
	TestimonialsJump = UIPrefix + "/testimonials/jump"
)

// Section anchors on the landing page.
const (
	AnchorHero         = "hero"
	AnchorHowItWorks   = "how-it-works"
	AnchorFeatures     = "features"
	AnchorTestimonials = "testimonials"
)

// Fragment element ids replaced by htmx swaps.
const (
	HeaderID   = "site-header"
	CarouselID = "testimonial-carousel"
)

// Anchored returns the root page scrolled to anchor.
func Anchored(anchor string) string {
	return Root + "#" + anchor
}
