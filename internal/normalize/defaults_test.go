package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_Shapes(t *testing.T) {
	assert.Len(t, DefaultRoundMapping(), 3)
	assert.Len(t, DefaultChecklist(), 2)
	assert.Len(t, DefaultPlan(), 7)
	assert.Len(t, DefaultQuestions(), 10)

	for i, day := range DefaultPlan() {
		assert.Equal(t, i+1, day.Day)
		assert.NotEmpty(t, day.Tasks)
	}
}

func TestDefaults_FreshSlices(t *testing.T) {
	plan := DefaultPlan()
	plan[0].Focus = "mutated"

	require.Equal(t, "Foundation", DefaultPlan()[0].Focus)

	questions := DefaultQuestions()
	questions[0] = "mutated"
	assert.NotEqual(t, "mutated", DefaultQuestions()[0])
}
