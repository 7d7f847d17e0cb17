package models

type NavLink struct {
	Label  string `validate:"required"`
	Target string `validate:"required"`
}

type Step struct {
	Icon        string `validate:"required"`
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Accent      string `validate:"required"`
}

type Feature struct {
	Icon        string `validate:"required"`
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Accent      string `validate:"required"`
}

type Benefit struct {
	Icon string `validate:"required"`
	Text string `validate:"required"`
}

// Testimonial is one carousel record. ID is only printed, the carousel
// selects records by position.
type Testimonial struct {
	ID             int
	Name           string `validate:"required"`
	Role           string `validate:"required"`
	AvatarURL      string `validate:"required,url"`
	Quote          string `validate:"required"`
	Rating         int    `validate:"min=0,max=5"`
	SampleImageURL string `validate:"required,url"`
}

type GalleryImage struct {
	URL string `validate:"required,url"`
}

type SocialLink struct {
	Network string `validate:"required"`
	Icon    string `validate:"required"`
	URL     string `validate:"required"`
}

type FooterColumn struct {
	Title string    `validate:"required"`
	Links []NavLink `validate:"min=1,dive"`
}

type Contact struct {
	Email string `validate:"required,email"`
	Phone string `validate:"required"`
	// PhoneURI is the tel: target, Phone is the display form.
	PhoneURI string `validate:"required"`
}

type Hero struct {
	Headline      string `validate:"required"`
	Subheadline   string `validate:"required"`
	BackgroundURL string `validate:"required,url"`
	Placeholder   string `validate:"required"`
	PrimaryCTA    string `validate:"required"`
	SecondaryCTA  string `validate:"required"`
}

type Site struct {
	Hero    Hero
	Contact Contact

	Brand        string         `validate:"required"`
	Tagline      string         `validate:"required"`
	NavLinks     []NavLink      `validate:"min=1,dive"`
	Steps        []Step         `validate:"len=4,dive"`
	Features     []Feature      `validate:"len=4,dive"`
	FeatureImage string         `validate:"required,url"`
	Benefits     []Benefit      `validate:"len=4,dive"`
	SignupImage  string         `validate:"required,url"`
	Testimonials []Testimonial  `validate:"min=1,dive"`
	Gallery      []GalleryImage `validate:"len=4,dive"`
	Social       []SocialLink   `validate:"dive"`
	FooterLinks  []FooterColumn `validate:"dive"`
	LegalLinks   []NavLink      `validate:"dive"`
}
