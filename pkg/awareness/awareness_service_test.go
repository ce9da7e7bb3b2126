package awareness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticPayloads(t *testing.T) {
	svc := NewAwarenessService()

	stats := svc.GetStats()
	assert.Equal(t, 120, stats.TotalFoodSaved)
	assert.Equal(t, 300, stats.MealsProvided)
	assert.Equal(t, 450, stats.CarbonFootprintReduced)

	assert.Len(t, svc.GetTips(), 4)

	suggestions := svc.GetRecipeSuggestions()
	assert.Len(t, suggestions, 2)
	assert.Equal(t, "Veggie Stir Fry", suggestions[0].Title)
}
