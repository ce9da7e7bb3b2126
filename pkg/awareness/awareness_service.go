package awareness

import (
	"Food-Expiry-Tracker/domain"
)

type (
	AwarenessService interface {
		GetStats() domain.AwarenessStats
		GetTips() []string
		GetRecipeSuggestions() []domain.RecipeSuggestion
	}

	awarenessService struct{}
)

func NewAwarenessService() AwarenessService {
	return &awarenessService{}
}

// Static informational payloads, figures are in kg except meals.
var stats = domain.AwarenessStats{
	TotalFoodSaved:         120,
	MealsProvided:          300,
	CarbonFootprintReduced: 450,
}

var tips = []string{
	"Plan your meals before shopping to avoid waste.",
	"Store food properly to extend freshness.",
	"Use leftovers creatively for new meals.",
	"Check expiry dates regularly.",
}

var recipeSuggestions = []domain.RecipeSuggestion{
	{
		ID:          1,
		Title:       "Veggie Stir Fry",
		Ingredients: []string{"carrots", "broccoli", "soy sauce"},
		Steps:       []string{"Chop veggies", "Stir fry with sauce", "Serve hot"},
	},
	{
		ID:          2,
		Title:       "Banana Pancakes",
		Ingredients: []string{"ripe bananas", "flour", "milk", "eggs"},
		Steps:       []string{"Mash bananas", "Mix with other ingredients", "Cook on pan"},
	},
}

func (s *awarenessService) GetStats() domain.AwarenessStats {
	return stats
}

func (s *awarenessService) GetTips() []string {
	return tips
}

func (s *awarenessService) GetRecipeSuggestions() []domain.RecipeSuggestion {
	return recipeSuggestions
}
