package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-advisor/internal/types"
)

func TestPlan_AlwaysSevenDays(t *testing.T) {
	plan := Plan(types.ExtractedSkills{})

	require.Len(t, plan, 7)
	for i, day := range plan {
		assert.Equal(t, i+1, day.Day)
		assert.NotEmpty(t, day.Focus)
		assert.NotEmpty(t, day.Tasks)
	}

	assert.Equal(t, "Basics + Core CS - Part 1", plan[0].Focus)
	assert.Equal(t, "Project + Resume Alignment", plan[4].Focus)
	assert.Equal(t, "Revision + Weak Areas", plan[6].Focus)
}

func TestPlan_SkillConditionals(t *testing.T) {
	skills := types.ExtractedSkills{
		CoreCS:    []string{"OOP", "DBMS", "OS"},
		Languages: []string{"Python", "Java"},
		Web:       []string{"React", "Node.js"},
		Data:      []string{"SQL"},
		Cloud:     []string{"AWS"},
		Testing:   []string{"Selenium"},
	}
	plan := Plan(skills)

	assert.Contains(t, plan[0].Tasks, "Review OOP principles: encapsulation, inheritance, polymorphism")
	assert.Contains(t, plan[1].Tasks, "Review database concepts: normalization, indexing, transactions")
	assert.Contains(t, plan[1].Tasks, "Study OS concepts: processes, threads, memory management")

	// First detected language drives the language-specific tasks.
	assert.Contains(t, plan[2].Tasks, "Review Python specific optimizations and best practices")
	assert.Contains(t, plan[6].Tasks, "Quick revision of Python syntax and common pitfalls")

	assert.Contains(t, plan[4].Tasks, "Review React, Node.js project architecture")
	assert.Contains(t, plan[4].Tasks, "Prepare database schema explanations for your projects")
	assert.Contains(t, plan[4].Tasks, "Document deployment and infrastructure details")

	assert.Contains(t, plan[5].Tasks, "Prepare for frontend/system design discussions")
	assert.Contains(t, plan[5].Tasks, "Review testing strategies and frameworks")
}

func TestPlan_NoSkillsIsSkeletonOnly(t *testing.T) {
	plan := Plan(types.ExtractedSkills{})

	assert.Len(t, plan[0].Tasks, 3)
	assert.Len(t, plan[2].Tasks, 3)
	assert.Len(t, plan[6].Tasks, 5)
}
