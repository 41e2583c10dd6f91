package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"etherlite-site/pkg/content"
	"etherlite-site/pkg/models"
)

func howItWorks() g.Node {
	return Section(
		ID(content.AnchorHowItWorks),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-gray-900"),
		Div(
			Class("container mx-auto"),
			sectionHeading(
				"How Etherlite Works",
				"Our platform provides end-to-end blockchain analysis with a simple, intuitive workflow.",
			),
			Div(
				Class("max-w-4xl mx-auto"),
				Div(
					Class("relative"),
					Div(Class("absolute left-0 md:left-1/2 transform md:-translate-x-1/2 h-full w-1 bg-gradient-to-b from-emerald-500 via-blue-500 to-purple-600")),
					Div(
						Class("space-y-12"),
						g.Group(g.Map(content.Steps(), timelineStep)),
					),
				),
			),
		),
	)
}

// timelineStep puts odd steps left of the line and even steps right of it.
func timelineStep(s models.Step) g.Node {
	marker := Div(
		Class("absolute left-0 md:left-1/2 transform md:-translate-x-1/2 flex items-center justify-center w-12 h-12 rounded-full bg-gray-800 border-4 border-"+s.Color+"-500 z-10"),
		Span(Class("text-white font-bold"), g.Text(strconv.Itoa(s.Number))),
	)
	body := func(class string) g.Node {
		return Div(
			Class(class),
			H3(Class("text-2xl font-bold text-"+s.Color+"-400 mb-2"), g.Text(s.Title)),
			P(Class("text-gray-300"), g.Text(s.Description)),
		)
	}

	if s.Number%2 == 1 {
		return Div(
			Class("relative flex flex-col md:flex-row items-center"),
			g.Attr("data-testid", "timeline-step"),
			body("flex-1 md:text-right md:pr-8 pb-8 md:pb-0"),
			marker,
			Div(Class("flex-1 md:pl-8 md:text-left")),
		)
	}
	return Div(
		Class("relative flex flex-col md:flex-row items-center"),
		g.Attr("data-testid", "timeline-step"),
		Div(Class("flex-1 md:text-right md:pr-8 md:hidden")),
		marker,
		body("flex-1 md:pl-8 pb-8 md:pb-0"),
	)
}
