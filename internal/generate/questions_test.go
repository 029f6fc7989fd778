package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-advisor/internal/types"
)

func TestQuestions_CappedAtTen(t *testing.T) {
	// A broad skill set would produce far more than ten candidates.
	skills := types.ExtractedSkills{
		CoreCS:    []string{"DSA", "OOP", "DBMS", "OS", "Networks"},
		Languages: []string{"Java", "Python", "JavaScript", "C++"},
		Web:       []string{"React", "Node.js", "REST"},
		Data:      []string{"SQL", "MongoDB", "Redis"},
		Cloud:     []string{"AWS", "Docker", "Kubernetes", "CI/CD"},
		Testing:   []string{"Selenium"},
	}

	questions := Questions(skills)
	assert.Len(t, questions, MaxQuestions)
}

func TestQuestions_PriorityOrder(t *testing.T) {
	skills := types.ExtractedSkills{
		CoreCS:    []string{"DSA"},
		Languages: []string{"Java"},
	}

	questions := Questions(skills)
	require.Len(t, questions, 9)

	// DSA questions come first, then the language block.
	assert.Equal(t, "How would you optimize search in a sorted array? Compare linear vs binary search.", questions[0])
	assert.Equal(t, "Explain the Java memory model and garbage collection.", questions[5])
}

func TestQuestions_NoMatchesFallsBackToGeneric(t *testing.T) {
	questions := Questions(types.ExtractedSkills{
		Other: []string{"Communication", "Problem solving"},
	})

	assert.Equal(t, genericQuestions, questions)
}

func TestQuestions_SharedBlocks(t *testing.T) {
	// JavaScript and TypeScript share one question block; it must not double.
	both := Questions(types.ExtractedSkills{Languages: []string{"JavaScript", "TypeScript"}})
	jsOnly := Questions(types.ExtractedSkills{Languages: []string{"JavaScript"}})
	assert.Equal(t, jsOnly, both)

	// Same for REST/GraphQL and the cloud providers.
	restAndGraphQL := Questions(types.ExtractedSkills{Web: []string{"REST", "GraphQL"}})
	restOnly := Questions(types.ExtractedSkills{Web: []string{"REST"}})
	assert.Equal(t, restOnly, restAndGraphQL)
}

func TestQuestions_TestingBlockOnAnyTestingSkill(t *testing.T) {
	questions := Questions(types.ExtractedSkills{Testing: []string{"Cypress"}})

	assert.Contains(t, questions, "What is test-driven development (TDD)?")
}
