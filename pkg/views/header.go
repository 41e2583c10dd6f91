package views

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"etherlite-site/pkg/content"
	"etherlite-site/pkg/models"
	"etherlite-site/pkg/state"
)

func pageHeader(v state.View) g.Node {
	return Header(
		Class("fixed w-full bg-gray-900/90 backdrop-blur-sm z-50 border-b border-gray-800"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex justify-between items-center py-4"),
				brand(),
				Nav(
					Class("hidden md:flex space-x-8"),
					g.Group(g.Map(content.NavLinks(), func(l models.Link) g.Node {
						return A(Href(l.Href), Class("text-gray-300 hover:text-white transition-colors"), g.Text(l.Label))
					})),
				),
				Div(
					Class("hidden md:flex items-center space-x-4"),
					Button(Type("button"), Class("px-4 py-2 text-sm text-gray-300 hover:text-white transition-colors"), g.Text("Log In")),
					Button(Type("button"), Class("px-4 py-2 text-sm bg-emerald-600 hover:bg-emerald-700 text-white rounded-md transition-colors"), g.Text("Sign Up")),
				),
				menuToggle(v),
			),
		),
		g.If(v.Menu.Open(), mobileMenu(v)),
	)
}

func menuToggle(v state.View) g.Node {
	label, glyph := "Open menu", "menu"
	if v.Menu.Open() {
		label, glyph = "Close menu", "x"
	}
	return A(
		Href(v.WithMenuToggled().Href("")),
		Class("md:hidden text-gray-300 hover:text-white"),
		ID("menu-toggle"),
		Aria("label", label),
		Aria("expanded", strconv.FormatBool(v.Menu.Open())),
		Aria("controls", "mobile-menu"),
		icon(glyph, "h-6 w-6"),
	)
}

// mobileMenu links close the panel on the way to their section.
func mobileMenu(v state.View) g.Node {
	closed := v.WithMenuClosed()
	return Div(
		ID("mobile-menu"),
		Class("md:hidden bg-gray-800 border-b border-gray-700"),
		Div(
			Class("px-2 pt-2 pb-3 space-y-1"),
			g.Group(g.Map(content.NavLinks(), func(l models.Link) g.Node {
				return A(
					Href(closed.Href(strings.TrimPrefix(l.Href, "#"))),
					Class("block px-3 py-2 text-base font-medium text-gray-300 hover:text-white hover:bg-gray-700 rounded-md"),
					g.Text(l.Label),
				)
			})),
			Div(
				Class("pt-4 pb-3 border-t border-gray-700"),
				Button(Type("button"), Class("block w-full px-5 py-3 text-center font-medium text-gray-300 hover:text-white hover:bg-gray-700 rounded-md"), g.Text("Log In")),
				Button(Type("button"), Class("mt-2 block w-full px-5 py-3 text-center font-medium bg-emerald-600 hover:bg-emerald-700 text-white rounded-md"), g.Text("Sign Up")),
			),
		),
	)
}
