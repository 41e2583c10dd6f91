package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"etherlite-site/pkg/content"
	"etherlite-site/pkg/models"
)

func pricing() g.Node {
	return Section(
		ID(content.AnchorPricing),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-gray-800"),
		Div(
			Class("container mx-auto"),
			sectionHeading(
				"Transparent Pricing",
				"Choose the plan that fits your organization's needs and scale as you grow.",
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8 max-w-5xl mx-auto"),
				g.Group(g.Map(content.PricingPlans(), pricingCard)),
			),
		),
	)
}

func pricingCard(p models.PricingPlan) g.Node {
	frame := "rounded-lg overflow-hidden border border-gray-700"
	button := "bg-gray-700 hover:bg-gray-600 text-white"
	check := "text-blue-500"
	if p.Highlighted {
		frame = "rounded-lg overflow-hidden border-2 border-emerald-500 relative shadow-lg shadow-emerald-500/20"
		button = "bg-emerald-600 hover:bg-emerald-700 text-white"
		check = "text-emerald-500"
	}

	return Div(
		Class(frame),
		g.Attr("data-testid", "pricing-card"),
		g.If(p.Highlighted, Div(
			Class("bg-emerald-500 text-white text-xs font-bold uppercase tracking-wider py-1 text-center"),
			g.Text("Most Popular"),
		)),
		Div(
			Class("p-6 bg-gray-800"),
			H3(Class("text-xl font-bold mb-1"), g.Text(p.Name)),
			Div(
				Class("flex items-baseline mb-4"),
				Span(Class("text-3xl font-bold"), g.Text(p.Price)),
				Span(Class("text-gray-400 ml-1"), g.Text(p.Period)),
			),
			P(Class("text-gray-300 mb-6"), g.Text(p.Description)),
			A(
				Href("#"+content.AnchorContact),
				Class("block w-full py-2 px-4 rounded-md text-center font-medium transition-colors "+button),
				g.Text(p.CTA),
			),
		),
		Div(
			Class("p-6 bg-gray-900"),
			Ul(
				Class("space-y-3"),
				g.Group(g.Map(p.Features, func(f string) g.Node {
					return Li(
						Class("flex"),
						icon("check-circle", "h-5 w-5 mr-3 flex-shrink-0 "+check),
						Span(Class("text-gray-300"), g.Text(f)),
					)
				})),
			),
		),
	)
}
