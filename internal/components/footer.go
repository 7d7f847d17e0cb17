package components

import (
	"fmt"
	"net/http"

	"github.com/ashisht1812/Fotush-Web/internal/models"
	"github.com/ashisht1812/Fotush-Web/internal/routepath"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const footerLinkClass = "text-gray-400 hover:text-white transition-colors"

func Footer(site models.Site, year int) g.Node {
	return h.Footer(
		h.Class("bg-gray-900 text-white pt-16 pb-8"),
		h.Div(
			h.Class("container mx-auto px-4"),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8 mb-12"),
				h.Div(
					brand(site.Brand),
					h.P(h.Class("text-gray-400 my-6"), g.Text(site.Tagline)),
					h.Div(
						h.Class("social flex space-x-4"),
						g.Map(site.Social, func(s models.SocialLink) g.Node {
							return h.A(h.Href(s.URL), h.Class(footerLinkClass), h.Aria("label", s.Network), Icon(s.Icon, "h-5 w-5"))
						}),
					),
				),
				g.Map(site.FooterLinks, footerColumn),
				contact(site.Contact),
			),
			h.Div(
				h.Class("pt-8 border-t border-gray-800 flex flex-col md:flex-row justify-between items-center"),
				h.P(h.Class("copyright text-gray-400 text-sm"), g.Textf("© %d %s. All rights reserved.", year, site.Brand)),
				h.Div(
					h.Class("flex space-x-6 mt-4 md:mt-0"),
					g.Map(site.LegalLinks, func(l models.NavLink) g.Node {
						return h.A(h.Href(l.Target), h.Class(footerLinkClass+" text-sm"), g.Text(l.Label))
					}),
				),
			),
		),
	)
}

func footerColumn(c models.FooterColumn) g.Node {
	return h.Div(
		h.H3(h.Class("text-lg font-semibold mb-6"), g.Text(c.Title)),
		h.Ul(
			h.Class("space-y-3"),
			g.Map(c.Links, func(l models.NavLink) g.Node {
				return h.Li(h.A(h.Href(l.Target), h.Class(footerLinkClass), g.Text(l.Label)))
			}),
		),
	)
}

// contact ends with the newsletter field, which has no handler.
func contact(c models.Contact) g.Node {
	return h.Div(
		h.H3(h.Class("text-lg font-semibold mb-6"), g.Text("Contact Us")),
		h.Ul(
			h.Class("space-y-3"),
			h.Li(h.Class("flex items-center space-x-3"), Icon("mail", "h-5 w-5 text-purple-400"),
				h.A(h.Href("mailto:"+c.Email), h.Class(footerLinkClass), g.Text(c.Email))),
			h.Li(h.Class("flex items-center space-x-3"), Icon("phone", "h-5 w-5 text-purple-400"),
				h.A(h.Href(c.PhoneURI), h.Class(footerLinkClass), g.Text(c.Phone))),
		),
		h.Div(
			h.Class("newsletter mt-6"),
			h.H4(h.Class("font-medium mb-3"), g.Text("Subscribe to our newsletter")),
			h.Div(
				h.Class("flex"),
				h.Input(h.Type("email"), h.Placeholder("Your email"), h.Class("px-4 py-2 bg-gray-800 rounded-l-lg w-full outline-none")),
				h.Button(h.Type("button"), h.Class("px-4 py-2 bg-purple-600 hover:bg-purple-700 rounded-r-lg"), g.Text("Subscribe")),
			),
		),
	)
}

// ErrorPage is the standalone page shown when a request cannot be served.
func ErrorPage(cfg PageConfig, status int) g.Node {
	cfg.Title = fmt.Sprintf("%d %s", status, http.StatusText(status))
	return Layout(cfg,
		h.Main(
			h.Class("container mx-auto px-4 py-32 text-center"),
			h.H1(h.Class("error-status text-6xl font-bold mb-4"), g.Text(fmt.Sprint(status))),
			h.P(h.Class("text-xl text-gray-600 dark:text-gray-400 mb-8"), g.Text(http.StatusText(status))),
			h.A(h.Href(routepath.Root), h.Class("px-6 py-3 bg-purple-600 text-white rounded-full"), g.Text("Back to Fotush")),
		),
	)
}
