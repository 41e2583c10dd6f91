package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"etherlite-site/pkg/content"
	"etherlite-site/pkg/models"
)

func pageFooter(year int) g.Node {
	return Footer(
		Class("bg-gray-900 border-t border-gray-800 pt-12 pb-8 px-4 sm:px-6 lg:px-8"),
		Div(
			Class("container mx-auto"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-4 gap-8 mb-12"),
				Div(
					Div(Class("mb-4"), brand()),
					P(Class("text-gray-400 mb-4"), g.Text(content.Tagline)),
					Div(
						Class("flex space-x-4"),
						g.Group(g.Map(content.SocialLinks(), func(l models.Link) g.Node {
							return A(
								Href(l.Href),
								Class("text-gray-400 hover:text-white transition-colors"),
								Aria("label", l.Label),
								icon(l.Icon, "h-5 w-5"),
							)
						})),
					),
				),
				g.Group(g.Map(content.FooterColumns(), footerColumn)),
			),
			Div(
				Class("border-t border-gray-800 pt-8 flex flex-col md:flex-row justify-between items-center"),
				P(Class("text-gray-400 text-sm mb-4 md:mb-0"), g.Textf("© %d Etherlite. All rights reserved.", year)),
				Div(
					Class("flex items-center"),
					Span(Class("text-gray-400 text-sm mr-2"), g.Text("Made with")),
					Span(Class("text-red-500"), g.Text("❤")),
					Span(Class("text-gray-400 text-sm ml-2"), g.Text("for blockchain security")),
				),
			),
		),
	)
}

func footerColumn(col models.FooterColumn) g.Node {
	return Div(
		H3(Class("text-lg font-semibold mb-4"), g.Text(col.Title)),
		Ul(
			Class("space-y-2"),
			g.Group(g.Map(col.Links, func(l models.Link) g.Node {
				return Li(A(Href(l.Href), Class("text-gray-400 hover:text-white transition-colors"), g.Text(l.Label)))
			})),
		),
	)
}
