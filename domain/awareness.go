package domain

var (
	MessageSuccessGetAwarenessStats = "awareness statistics retrieved successfully"
	MessageSuccessGetAwarenessTips  = "awareness tips retrieved successfully"
	MessageSuccessGetSuggestions    = "recipe suggestions retrieved successfully"
)

type (
	AwarenessStats struct {
		TotalFoodSaved         int `json:"totalFoodSaved"`
		MealsProvided          int `json:"mealsProvided"`
		CarbonFootprintReduced int `json:"carbonFootprintReduced"`
	}

	RecipeSuggestion struct {
		ID          int      `json:"id"`
		Title       string   `json:"title"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
	}
)
