package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"etherlite-site/pkg/content"
	"etherlite-site/pkg/models"
	"etherlite-site/pkg/state"
)

func faqSection(v state.View) g.Node {
	faqs := content.FAQs()
	items := make([]g.Node, 0, len(faqs))
	for i, f := range faqs {
		items = append(items, faqItem(v, i, f))
	}

	return Section(
		ID(content.AnchorFAQ),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-gray-800"),
		Div(
			Class("container mx-auto"),
			sectionHeading(
				"Frequently Asked Questions",
				"Find answers to common questions about Etherlite and our services.",
			),
			Div(Class("max-w-3xl mx-auto divide-y divide-gray-700"), g.Group(items)),
			Div(
				Class("text-center mt-12"),
				P(Class("text-gray-300 mb-4"), g.Text("Still have questions?")),
				A(
					Href("#"+content.AnchorContact),
					Class("inline-flex items-center px-6 py-3 bg-gray-700 hover:bg-gray-600 text-white font-medium rounded-md transition-colors"),
					g.Text("Contact Our Team"),
					icon("chevron-right", "ml-2 h-4 w-4"),
				),
			),
		),
	)
}

// faqItem links its question to the same page with only this item flipped.
func faqItem(v state.View, i int, f models.FAQ) g.Node {
	open := v.FAQ.Expanded(i)
	anchor := fmt.Sprintf("faq-%d", i)
	chevron := "chevron-down"
	if open {
		chevron = "chevron-up"
	}

	return Div(
		ID(anchor),
		Class("py-5"),
		g.Attr("data-testid", "faq-item"),
		A(
			Href(v.WithFAQToggled(i).Href(anchor)),
			Class("flex justify-between items-center w-full text-left"),
			Aria("expanded", strconv.FormatBool(open)),
			Aria("controls", anchor+"-answer"),
			H3(Class("text-lg font-medium text-white"), g.Text(f.Question)),
			icon(chevron, "h-5 w-5 text-gray-400"),
		),
		g.If(open, Div(
			ID(anchor+"-answer"),
			Class("mt-3"),
			g.Attr("data-testid", "faq-answer"),
			P(Class("text-gray-300"), g.Text(f.Answer)),
		)),
	)
}
