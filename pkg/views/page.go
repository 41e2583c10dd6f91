package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"etherlite-site/pkg/content"
	"etherlite-site/pkg/models"
	"etherlite-site/pkg/state"
)

// PageData is everything a single render of the landing page depends on
type PageData struct {
	View         state.View
	Draft        models.ContactFormData
	Errors       map[string]string
	Year         int
	CanonicalURL string
}

// NewPageData returns the data of a freshly loaded page.
func NewPageData(year int) PageData {
	return PageData{
		View:  state.NewView(len(content.FAQs())),
		Draft: models.NewContactFormData(),
		Year:  year,
	}
}

func LandingPage(data PageData) g.Node {
	return Layout(
		content.BrandName+" - Blockchain Intelligence for the Modern World",
		content.Lead,
		data.CanonicalURL,
		Div(
			Class("min-h-screen bg-gray-900 text-gray-100"),
			pageHeader(data.View),
			hero(),
			features(),
			howItWorks(),
			pricing(),
			contactSection(data),
			faqSection(data.View),
			cta(),
			pageFooter(data.Year),
		),
	)
}
