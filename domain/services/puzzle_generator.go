package services

import (
	"fmt"
	"math/rand"

	"paperplay-backend/domain/config"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/games"
)

// PuzzleGenerator synthesizes a drag-and-drop concept map: each concept
// becomes a draggable node and shared-keyword relationships become
// labeled connections the player has to rebuild.
type PuzzleGenerator struct {
	cfg *config.DomainConfig
}

// NewPuzzleGenerator creates a puzzle generator
func NewPuzzleGenerator(cfg *config.DomainConfig) *PuzzleGenerator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &PuzzleGenerator{cfg: cfg}
}

// Generate builds nodes with randomized board positions and connections
// weighted by overlap size. Connection labels use the lexicographically
// smallest shared keyword so regeneration is deterministic given the
// same random source.
func (g *PuzzleGenerator) Generate(concepts []entities.Concept, edges []entities.RelationshipEdge, rng *rand.Rand) *games.PuzzleSpec {
	nodes := make([]games.PuzzleNode, 0, len(concepts))
	for i, concept := range concepts {
		nodes = append(nodes, g.node(concept, i, rng))
	}

	connections := make([]games.Connection, 0, len(edges))
	for _, edge := range edges {
		connections = append(connections, games.Connection{
			Source:   fmt.Sprintf("node_%d", edge.SourceIndex),
			Target:   fmt.Sprintf("node_%d", edge.TargetIndex),
			Label:    edge.SharedKeywords.Smallest(),
			Strength: edge.SharedKeywords.Len(),
		})
	}

	return &games.PuzzleSpec{
		Type:        games.TypePuzzle,
		Title:       "Concept Connection Challenge",
		Description: "Connect related concepts to build a knowledge map",
		PuzzleType:  "concept_map",
		Nodes:       nodes,
		Connections: connections,
		Settings: games.PuzzleSettings{
			GridSize: games.NodeSize{
				Width:  g.cfg.PuzzleGridWidth,
				Height: g.cfg.PuzzleGridHeight,
			},
			SnapToGrid:                   true,
			ConnectionStrengthMultiplier: g.cfg.PuzzleStrengthFactor,
			NodeSpacing:                  g.cfg.PuzzleNodeSpacing,
		},
	}
}

// node derives one puzzle piece. Positions land inside the board with a
// node-spacing margin on every side; the bounding box width scales with
// content length.
func (g *PuzzleGenerator) node(concept entities.Concept, index int, rng *rand.Rand) games.PuzzleNode {
	margin := g.cfg.PuzzleNodeSpacing
	position := games.Vector2{
		X: float64(margin + rng.Intn(g.cfg.PuzzleGridWidth-2*margin)),
		Y: float64(margin + rng.Intn(g.cfg.PuzzleGridHeight-2*margin)),
	}
	offset := g.cfg.PuzzleSnapOffset
	conceptType := string(concept.Type())

	return games.PuzzleNode{
		ID:       fmt.Sprintf("node_%d", index),
		Type:     conceptType,
		Content:  concept.Content(),
		Keywords: concept.Keywords().Values(),
		Position: position,
		Visual: games.NodeVisual{
			BackgroundColor: games.ColorForConceptType(conceptType),
			BorderColor:     "#333333",
			TextColor:       "#FFFFFF",
			Size: games.NodeSize{
				Width:  len(concept.Content())*g.cfg.NodeWidthPerChar + g.cfg.NodeBaseWidth,
				Height: g.cfg.NodeHeight,
			},
		},
		Interaction: games.NodeInteraction{
			Draggable:   true,
			Connectable: true,
			SnapPoints: []games.Vector2{
				{X: position.X, Y: position.Y - offset},
				{X: position.X + offset, Y: position.Y},
				{X: position.X, Y: position.Y + offset},
				{X: position.X - offset, Y: position.Y},
			},
		},
	}
}
