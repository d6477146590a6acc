package entities

import "paperplay-backend/domain/core/valueobjects"

// RelationshipEdge links two concepts that share at least one keyword.
// Indices point into the concept sequence the edge was built from, with
// SourceIndex < TargetIndex so no pair appears twice and no concept
// links to itself. SharedKeywords is non-empty by construction.
type RelationshipEdge struct {
	SourceIndex    int
	TargetIndex    int
	SharedKeywords valueobjects.KeywordSet
}
