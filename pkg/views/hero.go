package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"etherlite-site/pkg/content"
)

func hero() g.Node {
	return Section(
		Class("pt-32 pb-20 px-4 sm:px-6 lg:px-8 bg-gradient-to-b from-gray-900 to-gray-800"),
		Div(
			Class("container mx-auto"),
			Div(
				Class("max-w-3xl mx-auto text-center"),
				H1(
					Class("text-4xl sm:text-5xl md:text-6xl font-extrabold mb-6 bg-gradient-to-r from-emerald-400 via-blue-500 to-purple-600 text-transparent bg-clip-text"),
					g.Text(content.Headline),
				),
				P(Class("text-xl text-gray-300 mb-8"), g.Text(content.Lead)),
				Div(
					Class("flex flex-col sm:flex-row justify-center gap-4"),
					A(
						Href("#"+content.AnchorContact),
						Class("px-8 py-3 bg-emerald-600 hover:bg-emerald-700 text-white font-medium rounded-md transition-colors"),
						g.Text("Get Started"),
					),
					A(
						Href("#"+content.AnchorFeatures),
						Class("px-8 py-3 bg-gray-700 hover:bg-gray-600 text-white font-medium rounded-md transition-colors flex items-center justify-center"),
						g.Text("Learn More"),
						icon("chevron-right", "ml-2 h-4 w-4"),
					),
				),
			),
			Div(
				Class("mt-16 max-w-5xl mx-auto"),
				Div(
					Class("relative rounded-xl overflow-hidden border border-gray-700 shadow-2xl shadow-emerald-500/10"),
					Div(Class("absolute inset-0 bg-gradient-to-br from-emerald-500/20 via-blue-500/10 to-purple-600/20")),
					Img(
						Src(content.DashboardImage),
						Alt("Etherlite Dashboard"),
						Class("w-full h-auto relative z-10 opacity-90"),
					),
				),
			),
		),
	)
}
