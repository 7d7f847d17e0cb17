package components

import (
	"strconv"

	"github.com/ashisht1812/Fotush-Web/internal/models"
	"github.com/ashisht1812/Fotush-Web/internal/routepath"
	"github.com/ashisht1812/Fotush-Web/internal/ui"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const navLinkClass = "text-gray-700 dark:text-gray-300 hover:text-purple-600 dark:hover:text-purple-400 transition-colors"

// Header renders the navigation bar. The stacked mobile panel is only part of
// the markup while the menu is expanded.
func Header(site models.Site, menu ui.Menu) g.Node {
	return h.Header(
		h.ID(routepath.HeaderID),
		h.Class("sticky top-0 z-50 bg-white/80 dark:bg-gray-900/80 backdrop-blur-md shadow-sm"),
		h.Div(
			h.Class("container mx-auto px-4 py-4 flex justify-between items-center"),
			brand(site.Brand),
			h.Nav(
				h.Class("desktop-nav hidden md:flex items-center space-x-8"),
				navLinks(site.NavLinks, ""),
			),
			h.Div(
				h.Class("hidden md:flex items-center space-x-4"),
				accountButtons(),
			),
			menuToggle(menu),
		),
		g.If(menu.Expanded(), mobilePanel(site.NavLinks)),
	)
}

func brand(name string) g.Node {
	return h.Div(
		h.Class("flex items-center space-x-2"),
		Icon("camera", "h-8 w-8 text-purple-600"),
		h.Span(
			h.Class("brand text-2xl font-bold bg-gradient-to-r from-purple-600 to-blue-500 bg-clip-text text-transparent"),
			g.Text(name),
		),
	)
}

func navLinks(links []models.NavLink, extra string) g.Node {
	return g.Map(links, func(l models.NavLink) g.Node {
		return h.A(h.Href(l.Target), h.Class(navLinkClass+extra), g.Text(l.Label))
	})
}

func accountButtons() g.Node {
	return g.Group([]g.Node{
		h.Button(h.Type("button"), h.Class("px-4 py-2 "+navLinkClass), g.Text("Login")),
		h.Button(
			h.Type("button"),
			h.Class("px-4 py-2 bg-purple-600 hover:bg-purple-700 text-white rounded-full transition-colors shadow-md hover:shadow-lg"),
			g.Text("Sign Up"),
		),
	})
}

func menuToggle(menu ui.Menu) g.Node {
	icon, label := "menu", "Open menu"
	if menu.Expanded() {
		icon, label = "x", "Close menu"
	}
	return postForm(routepath.Menu,
		h.Class("md:hidden"),
		hxSwap(routepath.Menu, routepath.HeaderID),
		h.Button(
			h.Type("submit"),
			h.Class("menu-toggle text-gray-700 dark:text-gray-300"),
			h.Aria("label", label),
			h.Aria("expanded", strconv.FormatBool(menu.Expanded())),
			h.Aria("controls", "mobile-menu"),
			Icon(icon, "h-6 w-6"),
		),
	)
}

func mobilePanel(links []models.NavLink) g.Node {
	return h.Div(
		h.ID("mobile-menu"),
		h.Class("md:hidden bg-white dark:bg-gray-900 shadow-lg"),
		h.Div(
			h.Class("container mx-auto px-4 py-4 flex flex-col space-y-4"),
			navLinks(links, " py-2"),
			h.Div(
				h.Class("flex flex-col space-y-2 pt-2 border-t border-gray-200 dark:border-gray-700"),
				accountButtons(),
			),
		),
	)
}
