package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	iconifyCDN  = "https://code.iconify.design/3/3.1.1/iconify.min.js"
)

// Layout wraps the page body in the document shell.
func Layout(title, description, canonicalURL string, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(description)),
				TitleEl(g.Text(title)),
				g.If(canonicalURL != "", Link(Rel("canonical"), Href(canonicalURL))),
				Link(Rel("icon"), Type("image/svg+xml"), Href("/static/favicon.svg")),
				Script(Src(tailwindCDN)),
				Script(Src(iconifyCDN), Defer()),
				Link(Rel("stylesheet"), Href("/static/site.css")),
			),
			Body(
				Class("bg-gray-900 text-gray-100 antialiased"),
				g.Group(body),
			),
		),
	)
}

// icon renders a lucide icon through the iconify script.
func icon(name, class string) g.Node {
	return Span(
		Class("iconify inline-block "+class),
		g.Attr("data-icon", "lucide:"+name),
		Aria("hidden", "true"),
	)
}

func sectionHeading(title, lead string) g.Node {
	return Div(
		Class("text-center max-w-3xl mx-auto mb-16"),
		H2(Class("text-3xl sm:text-4xl font-bold mb-4"), g.Text(title)),
		P(Class("text-xl text-gray-300"), g.Text(lead)),
	)
}

func brand() g.Node {
	return Div(
		Class("flex items-center"),
		icon("shield", "h-8 w-8 text-emerald-500 mr-2"),
		Span(
			Class("text-xl font-bold bg-gradient-to-r from-emerald-400 to-blue-500 text-transparent bg-clip-text"),
			g.Text("Etherlite"),
		),
	)
}
