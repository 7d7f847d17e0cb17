package components

import (
	"fmt"
	"strconv"

	"github.com/ashisht1812/Fotush-Web/internal/models"
	"github.com/ashisht1812/Fotush-Web/internal/routepath"
	"github.com/ashisht1812/Fotush-Web/internal/ui"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const maxRating = 5

func Testimonials(records []models.Testimonial, gallery []models.GalleryImage, c ui.Carousel) g.Node {
	return h.Section(
		h.ID(routepath.AnchorTestimonials),
		h.Class("py-20 bg-gray-50 dark:bg-gray-800"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeading("What Our Users Say", "Real stories from photographers and clients who use Fotush"),
			h.Div(
				h.Class("max-w-6xl mx-auto"),
				Carousel(records, c),
				Gallery(gallery),
			),
		),
	)
}

// Carousel renders the record under the cursor. The card is built from one
// Testimonial value, so its stars, quote, avatar, author and sample image
// always belong to the same record.
func Carousel(records []models.Testimonial, c ui.Carousel) g.Node {
	active := c.Cursor()
	return h.Div(
		h.ID(routepath.CarouselID),
		h.Class("relative"),
		g.Attr("data-cursor", strconv.Itoa(active)),
		carouselButton(routepath.TestimonialsPrev, "chevron-left", "Previous testimonial", "left-0 -translate-x-4"),
		carouselButton(routepath.TestimonialsNext, "chevron-right", "Next testimonial", "right-0 translate-x-4"),
		testimonialCard(records[active]),
		dots(len(records), active),
	)
}

func carouselButton(action, icon, label, side string) g.Node {
	return postForm(action,
		h.Class("absolute top-1/2 "+side+" -translate-y-1/2 z-10 hidden md:block"),
		hxSwap(action, routepath.CarouselID),
		h.Button(
			h.Type("submit"),
			h.Class("p-3 rounded-full bg-white dark:bg-gray-700 shadow-lg hover:bg-gray-100 dark:hover:bg-gray-600 transition-colors"),
			h.Aria("label", label),
			Icon(icon, "h-6 w-6 text-gray-700 dark:text-gray-300"),
		),
	)
}

func testimonialCard(t models.Testimonial) g.Node {
	return h.Article(
		h.Class("testimonial bg-white dark:bg-gray-900 rounded-2xl shadow-xl overflow-hidden grid grid-cols-1 lg:grid-cols-2"),
		g.Attr("data-testimonial-id", strconv.Itoa(t.ID)),
		h.Div(
			h.Class("p-8 lg:p-12 flex flex-col justify-between"),
			h.Div(
				Stars(t.Rating),
				g.El("blockquote",
					h.Class("quote text-xl text-gray-700 dark:text-gray-300 italic mb-8"),
					g.Textf("“%s”", t.Quote),
				),
			),
			h.Div(
				h.Class("flex items-center"),
				h.Img(h.Class("avatar w-14 h-14 rounded-full object-cover mr-4"), h.Src(t.AvatarURL), h.Alt(t.Name)),
				h.Div(
					h.H4(h.Class("author font-bold text-lg"), g.Text(t.Name)),
					h.P(h.Class("role text-gray-600 dark:text-gray-400"), g.Text(t.Role)),
				),
			),
		),
		h.Div(
			h.Class("relative h-64 lg:h-auto"),
			h.Img(h.Class("sample w-full h-full object-cover"), h.Src(t.SampleImageURL), h.Alt("Photography sample")),
			h.Div(
				h.Class("absolute bottom-0 left-0 right-0 bg-gradient-to-t from-black/70 to-transparent p-6"),
				h.P(h.Class("text-white text-sm"), g.Text("Photo by Fotush Photographer")),
			),
		),
	)
}

// Stars fills the first rating glyphs out of five.
func Stars(rating int) g.Node {
	stars := make([]g.Node, maxRating)
	for i := range stars {
		class := "star star-empty h-5 w-5 text-gray-300 dark:text-gray-600"
		if i < rating {
			class = "star star-filled h-5 w-5 text-yellow-500"
		}
		stars[i] = Icon("star", class)
	}
	return h.Div(
		h.Class("stars flex mb-6"),
		h.Aria("label", fmt.Sprintf("%d out of %d stars", rating, maxRating)),
		g.Group(stars),
	)
}

// dots posts an absolute position for every record.
func dots(n, active int) g.Node {
	buttons := make([]g.Node, n)
	for i := range buttons {
		class := "dot w-3 h-3 rounded-full bg-gray-300 dark:bg-gray-600"
		if i == active {
			class = "dot dot-active w-3 h-3 rounded-full bg-purple-600"
		}
		buttons[i] = postForm(routepath.TestimonialsJump,
			hxSwap(routepath.TestimonialsJump, routepath.CarouselID),
			h.Input(h.Type("hidden"), h.Name("index"), h.Value(strconv.Itoa(i))),
			h.Button(
				h.Type("submit"),
				h.Class(class),
				h.Aria("label", fmt.Sprintf("Show testimonial %d", i+1)),
				g.If(i == active, h.Aria("current", "true")),
			),
		)
	}
	return h.Div(h.Class("dots flex justify-center mt-8 space-x-2 md:hidden"), g.Group(buttons))
}

func Gallery(images []models.GalleryImage) g.Node {
	tiles := make([]g.Node, len(images))
	for i, img := range images {
		tiles[i] = h.Div(
			h.Class("gallery-image relative rounded-lg overflow-hidden group"),
			h.Img(
				h.Src(img.URL),
				h.Alt(fmt.Sprintf("Gallery image %d", i+1)),
				h.Class("w-full h-48 object-cover transition-transform duration-300 group-hover:scale-110"),
			),
			h.Div(
				h.Class("absolute inset-0 bg-gradient-to-t from-black/60 to-transparent opacity-0 group-hover:opacity-100 transition-opacity duration-300 flex items-end"),
				h.P(h.Class("p-4 text-white text-sm"), g.Text("Captured with Fotush")),
			),
		)
	}
	return h.Div(h.Class("gallery mt-16 grid grid-cols-2 md:grid-cols-4 gap-4"), g.Group(tiles))
}
