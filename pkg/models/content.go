package models

// Feature is one card of the feature grid
type Feature struct {
	Icon        string
	Color       string
	Title       string
	Description string
}

// Step is one entry of the "how it works" timeline
type Step struct {
	Number      int
	Title       string
	Description string
	Color       string
}

// PricingPlan is one pricing tier
type PricingPlan struct {
	Name        string
	Price       string
	Period      string
	Description string
	Features    []string
	CTA         string
	Highlighted bool
}

// FAQ is a question with its answer
type FAQ struct {
	Question string
	Answer   string
}

// Highlight is a selling point shown next to the contact form
type Highlight struct {
	Title string
	Body  string
}

// Link is an anchor with a label
type Link struct {
	Label string
	Href  string
	Icon  string
}

// FooterColumn groups footer links under a heading
type FooterColumn struct {
	Title string
	Links []Link
}
