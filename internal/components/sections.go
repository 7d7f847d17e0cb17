package components

import (
	"strconv"

	"github.com/ashisht1812/Fotush-Web/internal/models"
	"github.com/ashisht1812/Fotush-Web/internal/routepath"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func sectionHeading(title, subtitle string) g.Node {
	return h.Div(
		h.Class("text-center mb-16"),
		h.H2(h.Class("text-3xl md:text-4xl font-bold mb-4"), g.Text(title)),
		h.P(h.Class("text-xl text-gray-600 dark:text-gray-400 max-w-3xl mx-auto"), g.Text(subtitle)),
	)
}

func iconBadge(icon, accent string) g.Node {
	return h.Div(
		h.Class("w-16 h-16 rounded-full bg-gradient-to-r "+accent+" flex items-center justify-center text-white mb-6"),
		Icon(icon, "h-8 w-8"),
	)
}

// HowItWorks numbers the steps by position and draws a connector after every
// card except the last.
func HowItWorks(steps []models.Step) g.Node {
	cards := make([]g.Node, 0, len(steps))
	for i, s := range steps {
		cards = append(cards, stepCard(i+1, s, i < len(steps)-1))
	}
	return h.Section(
		h.ID(routepath.AnchorHowItWorks),
		h.Class("py-20 bg-white dark:bg-gray-900"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeading("How Fotush Works", "Book your perfect photographer in just a few simple steps"),
			h.Ol(h.Class("steps grid grid-cols-1 md:grid-cols-4 gap-8"), g.Group(cards)),
		),
	)
}

func stepCard(order int, s models.Step, connector bool) g.Node {
	return h.Li(
		h.Class("step relative"),
		g.If(connector, h.Div(h.Class("step-connector hidden md:block absolute top-16 left-1/2 w-full h-0.5 bg-gray-200 dark:bg-gray-700"))),
		h.Div(
			h.Class("relative bg-gray-50 dark:bg-gray-800 rounded-2xl p-8 text-center shadow-lg"),
			h.Div(
				h.Class("step-number absolute -top-4 left-1/2 -translate-x-1/2 w-8 h-8 rounded-full bg-purple-600 text-white flex items-center justify-center font-bold"),
				g.Text(strconv.Itoa(order)),
			),
			h.Div(h.Class("flex justify-center"), iconBadge(s.Icon, s.Accent)),
			h.H3(h.Class("text-xl font-semibold mb-3"), g.Text(s.Title)),
			h.P(h.Class("text-gray-600 dark:text-gray-400"), g.Text(s.Description)),
		),
	)
}

func Features(features []models.Feature, highlightImage string) g.Node {
	return h.Section(
		h.ID(routepath.AnchorFeatures),
		h.Class("py-20"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeading("Why Choose Fotush", "Experience the future of photography and videography services"),
			h.Div(
				h.Class("features grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Map(features, featureCard),
			),
			h.Div(
				h.Class("mt-20 bg-gradient-to-r from-purple-600 to-blue-600 rounded-2xl overflow-hidden shadow-xl grid grid-cols-1 lg:grid-cols-2"),
				h.Div(
					h.Class("p-8 lg:p-12 text-white"),
					h.H3(h.Class("text-2xl md:text-3xl font-bold mb-4"), g.Text("Elevate Your Photography Experience")),
					h.P(h.Class("text-lg mb-6 text-white/90"), g.Text("With Fotush, you're not just booking a photographer – you're securing a premium experience with guaranteed quality, reliability, and satisfaction.")),
					h.Button(h.Type("button"), h.Class("px-6 py-3 bg-white text-purple-600 rounded-full font-semibold shadow-lg"), g.Text("Explore Premium Features")),
				),
				h.Img(h.Src(highlightImage), h.Alt("Professional photographer with camera"), h.Class("w-full h-full object-cover")),
			),
		),
	)
}

func featureCard(f models.Feature) g.Node {
	return h.Div(
		h.Class("feature bg-white dark:bg-gray-900 rounded-2xl p-8 shadow-lg hover:shadow-xl transition-shadow"),
		iconBadge(f.Icon, f.Accent),
		h.H3(h.Class("text-xl font-semibold mb-3"), g.Text(f.Title)),
		h.P(h.Class("text-gray-600 dark:text-gray-400"), g.Text(f.Description)),
	)
}

func PhotographerSignup(benefits []models.Benefit, image string) g.Node {
	return h.Section(
		h.ID("join"),
		h.Class("py-20 bg-white dark:bg-gray-900 relative overflow-hidden"),
		h.Div(
			h.Class("container mx-auto px-4 grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
			h.Div(
				h.Class("relative"),
				h.Img(h.Src(image), h.Alt("Photographer with camera"), h.Class("rounded-2xl shadow-2xl w-full object-cover")),
				h.Div(
					h.Class("absolute -bottom-6 -right-6 bg-white dark:bg-gray-800 rounded-xl shadow-xl p-4 flex items-center space-x-3"),
					Icon("users", "h-6 w-6 text-purple-600"),
					h.Div(
						h.P(h.Class("text-sm text-gray-500"), g.Text("Join over")),
						h.P(h.Class("font-bold"), g.Text("5,000+ Photographers")),
					),
				),
			),
			h.Div(
				h.H2(h.Class("text-3xl md:text-4xl font-bold mb-6"), g.Text("Turn Your Passion Into Profit")),
				h.P(h.Class("text-xl text-gray-600 dark:text-gray-400 mb-8"), g.Text("Join Fotush as a photographer and connect with clients looking for your unique skills and style. Set your own rates, choose your schedule, and grow your business.")),
				h.Ul(
					h.Class("benefits space-y-4 mb-8"),
					g.Map(benefits, func(b models.Benefit) g.Node {
						return h.Li(
							h.Class("benefit flex items-center space-x-3"),
							h.Div(h.Class("w-10 h-10 rounded-full bg-purple-100 dark:bg-purple-900/30 text-purple-600 flex items-center justify-center"), Icon(b.Icon, "h-5 w-5")),
							h.P(h.Class("text-lg"), g.Text(b.Text)),
						)
					}),
				),
				h.Button(
					h.Type("button"),
					h.Class("px-8 py-4 bg-purple-600 hover:bg-purple-700 text-white rounded-full text-lg font-semibold shadow-lg"),
					g.Text("Join as a Photographer"),
				),
			),
		),
	)
}
