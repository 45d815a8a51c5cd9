// Package schemaorg builds schema.org JSON-LD values from extracted post
// metadata.
package schemaorg

import (
	"strings"

	"github.com/fwojciec/blogmeta"
)

// Context is the JSON-LD context for every top-level value.
const Context = "https://schema.org"

// FAQPage is a schema.org FAQPage.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is a single FAQ entry.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is the accepted answer of a Question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// NewFAQPage returns the FAQPage for items, or nil when there are none.
func NewFAQPage(items []blogmeta.FAQItem) *FAQPage {
	if len(items) == 0 {
		return nil
	}
	page := &FAQPage{
		Context:    Context,
		Type:       "FAQPage",
		MainEntity: make([]Question, 0, len(items)),
	}
	for _, item := range items {
		page.MainEntity = append(page.MainEntity, Question{
			Type:           "Question",
			Name:           item.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: item.Answer},
		})
	}
	return page
}

// Review is a schema.org Review of a single item.
type Review struct {
	Context      string `json:"@context"`
	Type         string `json:"@type"`
	ItemReviewed Thing  `json:"itemReviewed"`
	ReviewRating Rating `json:"reviewRating"`
	ReviewBody   string `json:"reviewBody,omitempty"`
}

// Thing names the reviewed item.
type Thing struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Rating is the score given in a Review.
type Rating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	BestRating  int     `json:"bestRating"`
	WorstRating int     `json:"worstRating"`
}

// NewReviews returns one Review per item, or nil when there are none.
func NewReviews(items []blogmeta.ReviewItem) []Review {
	if len(items) == 0 {
		return nil
	}
	reviews := make([]Review, 0, len(items))
	for _, item := range items {
		reviews = append(reviews, Review{
			Context:      Context,
			Type:         "Review",
			ItemReviewed: Thing{Type: "Thing", Name: item.ItemName},
			ReviewRating: Rating{
				Type:        "Rating",
				RatingValue: item.RatingValue,
				BestRating:  item.BestRating,
				WorstRating: item.WorstRating,
			},
			ReviewBody: item.ReviewBody,
		})
	}
	return reviews
}

// BreadcrumbList is a schema.org BreadcrumbList.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one step of a BreadcrumbList. Position starts at 1.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

// CategoryPath is the URL path prefix of category listing pages.
const CategoryPath = "/category/"

// NewBreadcrumbs returns the trail Home > category for a post in category,
// or nil when the category has no name.
func NewBreadcrumbs(site blogmeta.SiteConfig, category blogmeta.Category) *BreadcrumbList {
	if category.Name == "" {
		return nil
	}
	base := strings.TrimRight(site.URL, "/")
	return &BreadcrumbList{
		Context: Context,
		Type:    "BreadcrumbList",
		ItemListElement: []ListItem{
			{Type: "ListItem", Position: 1, Name: "Home", Item: base},
			{Type: "ListItem", Position: 2, Name: category.Name, Item: base + CategoryPath + category.Slug},
		},
	}
}
