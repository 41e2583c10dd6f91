// Package content holds the display copy of the Etherlite landing page.
// Every accessor returns a fresh slice so callers cannot alter the copy.
package content

import "etherlite-site/pkg/models"

const (
	BrandName      = "Etherlite"
	Tagline        = "Advanced blockchain intelligence for compliance and security."
	Headline       = "Blockchain Intelligence for the Modern World"
	Lead           = "Etherlite provides comprehensive blockchain analysis tools for AML compliance, address tracking, and transaction monitoring with real-time reporting."
	DashboardImage = "https://placehold.co/1200x600/1f2937/FFFFFF/png?text=Etherlite+Dashboard"

	// Acknowledgment is shown once a contact request went through.
	Acknowledgment = "Thank you for your interest! We will contact you shortly."

	// ClientLogoSlots is the number of placeholder tiles under "Our Clients Include".
	ClientLogoSlots = 6
)

// Section anchors used for in-page navigation.
const (
	AnchorFeatures   = "features"
	AnchorHowItWorks = "how-it-works"
	AnchorPricing    = "pricing"
	AnchorContact    = "contact"
	AnchorFAQ        = "faq"
)

func Features() []models.Feature {
	return []models.Feature{
		{
			Icon:        "shield",
			Color:       "text-emerald-500",
			Title:       "AML Scan",
			Description: "Advanced Anti-Money Laundering scanning to detect suspicious transactions and ensure compliance with global regulations.",
		},
		{
			Icon:        "user-check",
			Color:       "text-blue-500",
			Title:       "KYA (Know Your Address)",
			Description: "Comprehensive address analysis to identify ownership patterns and risk profiles associated with blockchain addresses.",
		},
		{
			Icon:        "activity",
			Color:       "text-purple-500",
			Title:       "KYT (Know Your Transaction)",
			Description: "Deep transaction monitoring to track fund flows and identify potentially suspicious activities in real-time.",
		},
		{
			Icon:        "map-pin",
			Color:       "text-red-500",
			Title:       "Address Tracker",
			Description: "Powerful blockchain address tracking to monitor transactions, balances, and interactions across multiple networks.",
		},
		{
			Icon:        "bar-chart-3",
			Color:       "text-amber-500",
			Title:       "Real-time Reports",
			Description: "Instant, comprehensive reporting with actionable insights for compliance teams and blockchain analysts.",
		},
		{
			Icon:        "search",
			Color:       "text-cyan-500",
			Title:       "Advanced Analytics",
			Description: "Sophisticated data analysis tools to uncover patterns and connections in blockchain transaction data.",
		},
	}
}

func Steps() []models.Step {
	return []models.Step{
		{
			Number:      1,
			Title:       "Data Collection",
			Description: "Our advanced algorithms continuously scan multiple blockchains, collecting transaction data, address information, and smart contract interactions.",
			Color:       "emerald",
		},
		{
			Number:      2,
			Title:       "Risk Analysis",
			Description: "Transactions and addresses are analyzed against known risk patterns, regulatory requirements, and machine learning models to identify potential compliance issues.",
			Color:       "blue",
		},
		{
			Number:      3,
			Title:       "Visualization & Alerts",
			Description: "Results are presented in intuitive dashboards with visual transaction flows, risk scores, and real-time alerts for suspicious activities.",
			Color:       "purple",
		},
		{
			Number:      4,
			Title:       "Reporting & Action",
			Description: "Generate comprehensive reports for compliance, investigations, or business intelligence, with actionable insights and recommended next steps.",
			Color:       "amber",
		},
	}
}

func PricingPlans() []models.PricingPlan {
	return []models.PricingPlan{
		{
			Name:        "Starter",
			Price:       "$99",
			Period:      "per month",
			Description: "Perfect for individuals and small teams getting started with blockchain analysis.",
			Features: []string{
				"Basic AML scanning",
				"Limited KYA checks",
				"Transaction monitoring",
				"5 address tracking slots",
				"Daily reports",
				"Email support",
			},
			CTA: "Get Started",
		},
		{
			Name:        "Professional",
			Price:       "$299",
			Period:      "per month",
			Description: "Ideal for growing businesses requiring comprehensive blockchain intelligence.",
			Features: []string{
				"Advanced AML scanning",
				"Full KYA capabilities",
				"Real-time KYT alerts",
				"25 address tracking slots",
				"Hourly reports",
				"Priority support",
			},
			CTA:         "Try Pro",
			Highlighted: true,
		},
		{
			Name:        "Enterprise",
			Price:       "Custom",
			Period:      "pricing",
			Description: "Tailored solutions for large organizations with complex compliance needs.",
			Features: []string{
				"Enterprise-grade AML tools",
				"Unlimited KYA/KYT",
				"Custom risk scoring",
				"Unlimited address tracking",
				"Real-time reporting",
				"Dedicated account manager",
			},
			CTA: "Contact Sales",
		},
	}
}

func FAQs() []models.FAQ {
	return []models.FAQ{
		{
			Question: "What is Etherlite?",
			Answer:   "Etherlite is a comprehensive blockchain analysis platform that provides AML scanning, KYA/KYT services, address tracking, and real-time reporting to help organizations maintain compliance and gain insights from blockchain data.",
		},
		{
			Question: "How does AML scanning work?",
			Answer:   "Our AML scanning technology analyzes blockchain transactions against known risk patterns, sanctioned addresses, and suspicious behavior models to identify potential money laundering activities and compliance risks.",
		},
		{
			Question: "What blockchains do you support?",
			Answer:   "Etherlite currently supports Ethereum, Bitcoin, Binance Smart Chain, Polygon, Solana, and Avalanche. We're constantly adding support for additional blockchains based on customer demand.",
		},
		{
			Question: "Can I integrate Etherlite with my existing systems?",
			Answer:   "Yes, Etherlite offers comprehensive API access that allows for seamless integration with your existing compliance, risk management, and business intelligence systems.",
		},
		{
			Question: "How accurate are your risk assessments?",
			Answer:   "Our risk assessment models are continuously trained on the latest blockchain data and regulatory requirements, achieving over 95% accuracy in identifying high-risk activities while minimizing false positives.",
		},
		{
			Question: "Do you offer custom solutions?",
			Answer:   "Absolutely. Our Enterprise plan includes custom risk models, tailored reporting, and dedicated support to meet the specific needs of your organization.",
		},
	}
}

func ContactHighlights() []models.Highlight {
	return []models.Highlight{
		{Title: "No credit card required", Body: " for your initial demo and consultation."},
		{Title: "Dedicated support", Body: " from our team of blockchain experts."},
		{Title: "Flexible implementation", Body: " with API access and custom integrations."},
	}
}

// NavLinks are shown in the header, on desktop and in the mobile panel.
func NavLinks() []models.Link {
	return []models.Link{
		{Label: "Features", Href: "#" + AnchorFeatures},
		{Label: "How It Works", Href: "#" + AnchorHowItWorks},
		{Label: "Pricing", Href: "#" + AnchorPricing},
		{Label: "FAQ", Href: "#" + AnchorFAQ},
	}
}

func SocialLinks() []models.Link {
	return []models.Link{
		{Label: "Twitter", Href: "#", Icon: "twitter"},
		{Label: "GitHub", Href: "#", Icon: "github"},
		{Label: "LinkedIn", Href: "#", Icon: "linkedin"},
	}
}

func FooterColumns() []models.FooterColumn {
	return []models.FooterColumn{
		{
			Title: "Product",
			Links: []models.Link{
				{Label: "Features", Href: "#" + AnchorFeatures},
				{Label: "Pricing", Href: "#" + AnchorPricing},
				{Label: "API", Href: "#"},
				{Label: "Integrations", Href: "#"},
				{Label: "Documentation", Href: "#"},
			},
		},
		{
			Title: "Company",
			Links: []models.Link{
				{Label: "About Us", Href: "#"},
				{Label: "Careers", Href: "#"},
				{Label: "Contact", Href: "#" + AnchorContact},
				{Label: "Blog", Href: "#"},
				{Label: "Press", Href: "#"},
			},
		},
		{
			Title: "Legal",
			Links: []models.Link{
				{Label: "Privacy Policy", Href: "#"},
				{Label: "Terms of Service", Href: "#"},
				{Label: "Cookie Policy", Href: "#"},
				{Label: "GDPR Compliance", Href: "#"},
				{Label: "Security", Href: "#"},
			},
		},
	}
}
