package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"etherlite-site/pkg/content"
	"etherlite-site/pkg/models"
	"etherlite-site/pkg/state"
)

const inputClass = "w-full px-4 py-2 bg-gray-700 border border-gray-600 rounded-md focus:outline-none focus:ring-2 focus:ring-emerald-500 focus:border-transparent text-white"

func contactSection(data PageData) g.Node {
	return Section(
		ID(content.AnchorContact),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-gray-900"),
		Div(
			Class("container mx-auto"),
			Div(
				Class("max-w-6xl mx-auto grid grid-cols-1 lg:grid-cols-2 gap-12"),
				Div(
					H2(Class("text-3xl sm:text-4xl font-bold mb-6"), g.Text("Ready to get started?")),
					P(
						Class("text-xl text-gray-300 mb-8"),
						g.Text("Fill out the form to request a demo or learn more about how Etherlite can help your organization with blockchain compliance and intelligence."),
					),
					Div(
						Class("space-y-6"),
						g.Group(g.Map(content.ContactHighlights(), func(h models.Highlight) g.Node {
							return Div(
								Class("flex items-start"),
								icon("check-circle", "h-6 w-6 text-emerald-500 mr-3 flex-shrink-0 mt-1"),
								P(
									Class("text-gray-300"),
									Span(Class("font-semibold text-white"), g.Text(h.Title)),
									g.Text(h.Body),
								),
							)
						})),
					),
					clientLogos(),
				),
				Div(
					Div(
						Class("bg-gray-800 p-8 rounded-lg border border-gray-700 shadow-xl"),
						H3(Class("text-2xl font-bold mb-6"), g.Text("Request Information")),
						g.If(data.View.Submitted, acknowledgment()),
						contactForm(data.View, data.Draft, data.Errors),
					),
				),
			),
		),
	)
}

func clientLogos() g.Node {
	slots := make([]int, content.ClientLogoSlots)
	return Div(
		Class("mt-12 p-6 bg-gray-800 rounded-lg border border-gray-700"),
		H3(Class("text-xl font-semibold mb-4"), g.Text("Our Clients Include")),
		Div(
			Class("grid grid-cols-2 sm:grid-cols-3 gap-6"),
			g.Group(g.Map(slots, func(int) g.Node {
				return Div(
					Class("h-12 bg-gray-700/50 rounded flex items-center justify-center"),
					Span(Class("text-gray-400 text-sm"), g.Text("Client Logo")),
				)
			})),
		),
	)
}

func acknowledgment() g.Node {
	return Div(
		Role("alert"),
		g.Attr("data-testid", "contact-ack"),
		Class("mb-6 rounded-md border border-emerald-500 bg-emerald-500/10 px-4 py-3 text-emerald-300"),
		g.Text(content.Acknowledgment),
	)
}

// contactForm posts back to the server. Required fields also carry the native
// required attribute so that browsers refuse to submit them empty.
func contactForm(v state.View, d models.ContactFormData, errs map[string]string) g.Node {
	action := "/contact"
	if q := v.Query().Encode(); q != "" {
		action += "?" + q
	}

	return Form(
		Method("post"),
		Action(action),
		Class("space-y-4"),
		Div(
			Class("grid grid-cols-1 sm:grid-cols-2 gap-4"),
			textField(models.FieldFirstName, "First Name*", "text", d.FirstName, true, errs),
			textField(models.FieldLastName, "Last Name*", "text", d.LastName, true, errs),
		),
		textField(models.FieldEmail, "Email Address*", "email", d.Email, true, errs),
		textField(models.FieldCompany, "Company*", "text", d.Company, true, errs),
		textField(models.FieldJobTitle, "Job Title", "text", d.JobTitle, false, errs),
		Div(
			Label(For(models.FieldMessage), Class("block text-sm font-medium text-gray-300 mb-1"), g.Text("Message")),
			Textarea(
				ID(models.FieldMessage),
				Name(models.FieldMessage),
				Rows("4"),
				Class(inputClass+" resize-none"),
				g.Text(d.Message),
			),
		),
		Div(
			Class("flex items-start"),
			Input(
				Type("checkbox"),
				ID(models.FieldSubscribe),
				Name(models.FieldSubscribe),
				Value("true"),
				g.If(d.Subscribe, Checked()),
				Class("h-4 w-4 mt-1 text-emerald-600 focus:ring-emerald-500 border-gray-600 rounded bg-gray-700"),
			),
			Label(
				For(models.FieldSubscribe),
				Class("ml-2 block text-sm text-gray-300"),
				g.Text("I agree to receive updates about Etherlite products, services, and events. You can unsubscribe at any time."),
			),
		),
		Button(
			Type("submit"),
			Class("w-full px-6 py-3 bg-emerald-600 hover:bg-emerald-700 text-white font-medium rounded-md transition-colors"),
			g.Text("Submit Request"),
		),
		P(Class("text-xs text-gray-400 mt-4"), g.Text("By submitting this form, you agree to our Privacy Policy and Terms of Service.")),
	)
}

func textField(name, label, inputType, value string, required bool, errs map[string]string) g.Node {
	msg, invalid := errs[name]
	return Div(
		Label(For(name), Class("block text-sm font-medium text-gray-300 mb-1"), g.Text(label)),
		Input(
			Type(inputType),
			ID(name),
			Name(name),
			Value(value),
			g.If(required, Required()),
			g.If(invalid, Aria("invalid", "true")),
			Class(inputClass),
		),
		g.If(invalid, P(
			Class("mt-1 text-sm text-red-400"),
			g.Attr("data-testid", "field-error"),
			g.Text(msg),
		)),
	)
}
