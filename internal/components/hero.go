package components

import (
	"github.com/ashisht1812/Fotush-Web/internal/models"
	"github.com/ashisht1812/Fotush-Web/internal/routepath"
	"github.com/ashisht1812/Fotush-Web/internal/ui"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Hero renders the banner. The location input echoes the bound value and
// nothing else reads it.
func Hero(hero models.Hero, location ui.LocationField) g.Node {
	return h.Section(
		h.ID(routepath.AnchorHero),
		h.Class("relative py-20 md:py-32 overflow-hidden"),
		h.Div(
			h.Class("absolute inset-0 z-0"),
			h.Img(h.Src(hero.BackgroundURL), h.Alt("Photographer in action"), h.Class("w-full h-full object-cover")),
			h.Div(h.Class("absolute inset-0 bg-gradient-to-r from-purple-900/70 to-blue-900/70")),
		),
		h.Div(
			h.Class("container mx-auto px-4 relative z-10"),
			h.Div(
				h.Class("max-w-3xl mx-auto text-center text-white"),
				h.H1(h.Class("text-4xl md:text-5xl lg:text-6xl font-bold mb-6 leading-tight"), g.Text(hero.Headline)),
				h.P(h.Class("text-xl md:text-2xl mb-8 text-gray-200"), g.Text(hero.Subheadline)),
				locationForm(hero.Placeholder, location),
				h.Div(
					h.Class("flex flex-col sm:flex-row justify-center gap-4"),
					h.Button(
						h.Type("button"),
						h.Class("px-8 py-4 bg-purple-600 hover:bg-purple-700 text-white rounded-full text-lg font-semibold transition-all shadow-lg"),
						g.Text(hero.PrimaryCTA),
					),
					h.Button(
						h.Type("button"),
						h.Class("px-8 py-4 bg-transparent hover:bg-white/10 border-2 border-white text-white rounded-full text-lg font-semibold transition-all shadow-lg"),
						g.Text(hero.SecondaryCTA),
					),
				),
			),
		),
	)
}

func locationForm(placeholder string, location ui.LocationField) g.Node {
	return postForm(routepath.Location,
		h.Class("bg-white/20 backdrop-blur-md p-2 rounded-full mb-8 max-w-xl mx-auto"),
		h.Div(
			h.Class("flex items-center bg-white dark:bg-gray-800 rounded-full overflow-hidden"),
			h.Div(h.Class("flex items-center pl-4 text-gray-500"), Icon("map-pin", "h-5 w-5")),
			h.Input(
				h.ID("location"),
				h.Type("text"),
				h.Name("location"),
				h.Placeholder(placeholder),
				h.Value(location.Value()),
				h.AutoComplete("off"),
				h.Class("w-full py-3 px-4 outline-none text-gray-700 dark:text-gray-200 dark:bg-gray-800"),
				g.Attr("hx-post", routepath.Location),
				g.Attr("hx-trigger", "input changed"),
				g.Attr("hx-swap", "none"),
			),
			h.Button(
				h.Type("button"),
				h.Class("bg-purple-600 hover:bg-purple-700 text-white p-3 rounded-full m-1 transition-colors"),
				h.Aria("label", "Search"),
				Icon("search", "h-5 w-5"),
			),
		),
	)
}
