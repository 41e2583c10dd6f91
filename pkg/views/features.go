package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"etherlite-site/pkg/content"
	"etherlite-site/pkg/models"
)

func features() g.Node {
	return Section(
		ID(content.AnchorFeatures),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-gray-800"),
		Div(
			Class("container mx-auto"),
			sectionHeading(
				"Comprehensive Blockchain Analysis",
				"Our suite of powerful tools provides everything you need for blockchain compliance and intelligence.",
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(content.Features(), featureCard)),
			),
		),
	)
}

func featureCard(f models.Feature) g.Node {
	return Div(
		Class("bg-gray-800/50 border border-gray-700 rounded-lg p-6 hover:bg-gray-800 transition-colors group"),
		g.Attr("data-testid", "feature-card"),
		Div(Class("mb-4"), icon(f.Icon, "h-10 w-10 "+f.Color)),
		H3(Class("text-xl font-bold mb-2 group-hover:text-emerald-400 transition-colors"), g.Text(f.Title)),
		P(Class("text-gray-300"), g.Text(f.Description)),
	)
}
