// Package components renders the landing page. Every function here is a pure
// mapping from content records and visitor state to markup.
package components

import (
	"github.com/ashisht1812/Fotush-Web/internal/models"
	"github.com/ashisht1812/Fotush-Web/internal/routepath"
	"github.com/ashisht1812/Fotush-Web/internal/ui"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title         string
	Description   string
	HTMXScriptURL string
	Year          int
}

func Layout(cfg PageConfig, children ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(cfg.Title)),
				h.Meta(h.Name("description"), h.Content(cfg.Description)),
				h.Link(h.Rel("icon"), h.Href(routepath.Favicon)),
				h.Link(h.Rel("stylesheet"), h.Href(routepath.Static+"/site.css")),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("https://code.iconify.design/3/3.1.1/iconify.min.js")),
				g.If(cfg.HTMXScriptURL != "", h.Script(h.Src(cfg.HTMXScriptURL), h.Defer())),
			),
			h.Body(
				h.Class("min-h-screen bg-gradient-to-b from-gray-50 to-gray-100 dark:from-gray-900 dark:to-gray-800 text-gray-800 dark:text-gray-100"),
				g.Group(children),
			),
		),
	)
}

// Page is the full landing page in its fixed section order.
func Page(cfg PageConfig, site models.Site, st ui.State) g.Node {
	return Layout(cfg,
		Header(site, st.Menu),
		h.Main(
			Hero(site.Hero, st.Location),
			HowItWorks(site.Steps),
			Features(site.Features, site.FeatureImage),
			PhotographerSignup(site.Benefits, site.SignupImage),
			Testimonials(site.Testimonials, site.Gallery, st.Carousel),
		),
		Footer(site, cfg.Year),
	)
}

// Icon renders a lucide glyph through iconify.
func Icon(name, class string) g.Node {
	return h.Span(
		h.Class("iconify "+class),
		g.Attr("data-icon", "lucide:"+name),
		h.Aria("hidden", "true"),
	)
}

// hxSwap makes htmx post the form and swap target with the response.
// Without htmx the form posts normally and the server redirects back.
func hxSwap(action, target string) g.Node {
	return g.Group([]g.Node{
		g.Attr("hx-post", action),
		g.Attr("hx-target", "#"+target),
		g.Attr("hx-swap", "outerHTML"),
	})
}

func postForm(action string, children ...g.Node) g.Node {
	return h.Form(
		h.Method("post"),
		h.Action(action),
		g.Group(children),
	)
}
