package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"etherlite-site/pkg/content"
)

func cta() g.Node {
	return Section(
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-gradient-to-br from-gray-900 via-gray-800 to-gray-900"),
		Div(
			Class("container mx-auto"),
			Div(
				Class("max-w-4xl mx-auto text-center"),
				H2(Class("text-3xl sm:text-4xl font-bold mb-6"), g.Text("Start Securing Your Blockchain Operations Today")),
				P(
					Class("text-xl text-gray-300 mb-8"),
					g.Text("Join hundreds of organizations using Etherlite to ensure compliance and gain valuable insights from blockchain data."),
				),
				Div(
					Class("flex flex-col sm:flex-row justify-center gap-4"),
					A(
						Href("#"+content.AnchorContact),
						Class("px-8 py-4 bg-emerald-600 hover:bg-emerald-700 text-white font-medium rounded-md transition-colors text-lg"),
						g.Text("Request a Demo"),
					),
					A(
						Href("#"+content.AnchorPricing),
						Class("px-8 py-4 bg-gray-700 hover:bg-gray-600 text-white font-medium rounded-md transition-colors text-lg flex items-center justify-center"),
						g.Text("View Pricing"),
						icon("chevron-right", "ml-2 h-5 w-5"),
					),
				),
			),
		),
	)
}
