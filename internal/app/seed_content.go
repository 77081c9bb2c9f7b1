package app

import (
	"encoding/json"

	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
)

func defaultHeroImages() []*heroimages.HeroImage {
	return []*heroimages.HeroImage{
		{
			Title:    "Empowering Communities",
			ImageURL: "/carenage.jpg",
			Caption:  strutil.Ptr("Working together for a stronger Grenada."),
			Link:     strutil.Ptr("/about"),
			Order:    0,
			Active:   true,
		},
		{
			Title:    "Sustainable Development",
			ImageURL: "/placeholder.jpg",
			Caption:  strutil.Ptr("Building a resilient future for all."),
			Link:     strutil.Ptr("/about"),
			Order:    1,
			Active:   true,
		},
	}
}

type leader struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type policy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func section(page, name, title string, order int, content interface{}) *pages.PageContent {
	raw, err := json.Marshal(content)
	if err != nil {
		panic(err)
	}
	return &pages.PageContent{
		Page:    page,
		Section: name,
		Title:   strutil.Ptr(title),
		Content: raw,
		Order:   order,
		Active:  true,
	}
}

func defaultPageContent() []*pages.PageContent {
	return []*pages.PageContent{
		section(pages.PageAbout, "history", "Our History", 0, map[string][]string{
			"paragraphs": {
				"The New National Party (NNP) was founded in 1984 through the merger of the Grenada National Party and the National Democratic Party. Since its inception, the NNP has been committed to fostering economic growth, social development, and good governance in Grenada.",
				"Over the years, the NNP has played a significant role in shaping Grenada's political landscape, forming government multiple times and implementing policies aimed at improving the lives of Grenadians.",
			},
		}),
		section(pages.PageAbout, "leadership", "Our Leadership", 1, map[string][]leader{
			"leaders": {
				{Name: "Emmalin Pierre", Role: "Party Leader", Image: "/placeholder.svg?height=100&width=100"},
				{Name: "Norland Cox", Role: "Deputy Leader", Image: "/placeholder.svg?height=100&width=100"},
			},
		}),
		section(pages.PageAbout, "policies", "Our Key Policies", 2, map[string][]policy{
			"policies": {
				{Title: "Economic Growth", Description: "Promoting sustainable economic development through diversification, investment in key sectors, and support for small businesses."},
				{Title: "Education", Description: "Investing in quality education at all levels, focusing on skills development and preparing our youth for the global job market."},
				{Title: "Healthcare", Description: "Improving healthcare infrastructure, expanding access to medical services, and promoting preventive care and healthy lifestyles."},
				{Title: "Environmental Protection", Description: "Implementing policies to protect Grenada's natural resources, promote renewable energy, and build resilience against climate change."},
				{Title: "Tourism", Description: "Enhancing Grenada's tourism product through sustainable development, marketing, and improving infrastructure to attract more visitors."},
				{Title: "Youth Empowerment", Description: "Creating opportunities for young Grenadians through education, skills training, entrepreneurship support, and job creation initiatives."},
			},
		}),
		section(pages.PageAbout, "commitment", "Our Commitment", 3, map[string][]string{
			"paragraphs": {
				"The New National Party is dedicated to serving the people of Grenada, Carriacou, and Petite Martinique. We believe in transparent governance, inclusive development, and policies that benefit all Grenadians.",
				"As we move forward, we remain committed to our core values of integrity, accountability, and progress. We invite all Grenadians to join us in building a brighter future for our nation.",
			},
		}),
		section(pages.PageHome, "mission", "Our Mission", 0, map[string]string{
			"text": "To serve the people of Grenada with integrity, transparency, and dedication to building a prosperous and inclusive nation.",
		}),
		section(pages.PageHome, "vision", "Our Vision", 1, map[string]string{
			"text": "A united, progressive Grenada where every citizen has the opportunity to thrive and contribute to our nation's success.",
		}),
	}
}
