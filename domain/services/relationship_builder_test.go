package services

import (
	"testing"

	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConcept(t *testing.T, ctype entities.ConceptType, content string, keywords ...string) entities.Concept {
	t.Helper()
	concept, err := entities.NewConcept(ctype, content, valueobjects.NewKeywordSet(keywords))
	require.NoError(t, err)
	return concept
}

func TestRelationshipBuilder_EdgePerOverlappingPair(t *testing.T) {
	// Arrange
	builder := NewDefaultRelationshipGraphBuilder()
	concepts := []entities.Concept{
		mustConcept(t, entities.ConceptDefinition, "c0", "network", "layer"),
		mustConcept(t, entities.ConceptMethodology, "c1", "network", "training"),
		mustConcept(t, entities.ConceptResult, "c2", "training", "accuracy"),
	}

	// Act
	edges := builder.Build(concepts)

	// Assert: (0,1) share "network", (1,2) share "training", (0,2) share nothing
	require.Len(t, edges, 2)

	assert.Equal(t, 0, edges[0].SourceIndex)
	assert.Equal(t, 1, edges[0].TargetIndex)
	assert.Equal(t, []string{"network"}, edges[0].SharedKeywords.Values())

	assert.Equal(t, 1, edges[1].SourceIndex)
	assert.Equal(t, 2, edges[1].TargetIndex)
	assert.Equal(t, []string{"training"}, edges[1].SharedKeywords.Values())
}

func TestRelationshipBuilder_NoSelfOrReversedEdges(t *testing.T) {
	builder := NewDefaultRelationshipGraphBuilder()
	concepts := []entities.Concept{
		mustConcept(t, entities.ConceptDefinition, "c0", "shared"),
		mustConcept(t, entities.ConceptDefinition, "c1", "shared"),
	}

	edges := builder.Build(concepts)

	require.Len(t, edges, 1)
	assert.Less(t, edges[0].SourceIndex, edges[0].TargetIndex)
}

func TestRelationshipBuilder_DisjointConceptsYieldNoEdges(t *testing.T) {
	builder := NewDefaultRelationshipGraphBuilder()
	concepts := []entities.Concept{
		mustConcept(t, entities.ConceptDefinition, "c0", "alpha"),
		mustConcept(t, entities.ConceptResult, "c1", "beta"),
		mustConcept(t, entities.ConceptResult, "c2"),
	}

	edges := builder.Build(concepts)

	assert.Empty(t, edges)
}

func TestRelationshipBuilder_EmptyInput(t *testing.T) {
	builder := NewDefaultRelationshipGraphBuilder()

	assert.Empty(t, builder.Build(nil))
	assert.Empty(t, builder.Build([]entities.Concept{}))
}
