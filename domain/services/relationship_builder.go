package services

import (
	"paperplay-backend/domain/core/entities"
)

// RelationshipGraphBuilder computes the shared-keyword relationship
// graph over a concept sequence. The same procedure feeds both the
// simulation generator (fixed-strength attractions) and the puzzle
// generator (overlap-weighted connections); only the weighting policy
// differs downstream.
type RelationshipGraphBuilder interface {
	Build(concepts []entities.Concept) []entities.RelationshipEdge
}

// DefaultRelationshipGraphBuilder implements the pairwise overlap scan.
type DefaultRelationshipGraphBuilder struct{}

// NewDefaultRelationshipGraphBuilder creates a graph builder
func NewDefaultRelationshipGraphBuilder() *DefaultRelationshipGraphBuilder {
	return &DefaultRelationshipGraphBuilder{}
}

// Build emits an edge for every unordered pair (i, j), i < j, whose
// keyword sets intersect. Quadratic in the concept count, which is
// bounded by the qualifying sentences of a single paper.
func (b *DefaultRelationshipGraphBuilder) Build(concepts []entities.Concept) []entities.RelationshipEdge {
	edges := make([]entities.RelationshipEdge, 0)

	for i := 0; i < len(concepts); i++ {
		for j := i + 1; j < len(concepts); j++ {
			shared := concepts[i].Keywords().Intersect(concepts[j].Keywords())
			if shared.IsEmpty() {
				continue
			}
			edges = append(edges, entities.RelationshipEdge{
				SourceIndex:    i,
				TargetIndex:    j,
				SharedKeywords: shared,
			})
		}
	}

	return edges
}
