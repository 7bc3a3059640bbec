package habit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		title string
		want  Category
	}{
		{"Morning Exercise Routine", CategoryHealth},
		{"Daily workout", CategoryHealth},
		{"Drink more water", CategoryHealth},
		{"Read 20 pages", CategoryProductivity},
		{"Study Spanish", CategoryProductivity},
		{"Deep work block", CategoryProductivity},
		{"Evening meditation", CategoryMindfulness},
		{"Practice mindfulness", CategoryMindfulness},
		{"Call mom", CategorySocial},
		{"Meet a friend", CategorySocial},
		// no keyword matches: defaults to health
		{"", CategoryHealth},
		{"Quantum basket weaving", CategoryHealth},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCategory(tt.title))
		})
	}
}

// The bucket order is observable: a title matching both health and
// productivity keywords must resolve to health because health is
// checked first.
func TestClassifyCategoryOrder(t *testing.T) {
	assert.Equal(t, CategoryHealth, ClassifyCategory("Run before work"))
	assert.Equal(t, CategoryProductivity, ClassifyCategory("Work on meditation app"))
}

func TestClassifyCategoryIsTotal(t *testing.T) {
	inputs := []string{"", " ", "ñ∆∂ƒ", "EXERCISE", "MeEt"}
	for _, in := range inputs {
		got := ClassifyCategory(in)
		assert.True(t, got.IsValid(), "ClassifyCategory(%q) returned invalid category %q", in, got)
	}
}
