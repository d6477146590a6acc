package services

import (
	"fmt"
	"math/rand"

	"paperplay-backend/domain/config"
	"paperplay-backend/domain/core/entities"
	"paperplay-backend/domain/games"
)

// SimulationGenerator synthesizes a particle-system spec where each
// concept is a particle and shared-keyword relationships are
// fixed-strength attractions.
type SimulationGenerator struct {
	cfg *config.DomainConfig
}

// NewSimulationGenerator creates a simulation generator
func NewSimulationGenerator(cfg *config.DomainConfig) *SimulationGenerator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &SimulationGenerator{cfg: cfg}
}

// Generate maps concepts to elements and relationship edges to
// attraction interactions. The physics constants are configuration,
// not derived from paper content.
func (g *SimulationGenerator) Generate(concepts []entities.Concept, edges []entities.RelationshipEdge, rng *rand.Rand) *games.SimulationSpec {
	elements := make([]games.Element, 0, len(concepts))
	for i, concept := range concepts {
		elements = append(elements, g.element(concept, i, rng))
	}

	interactions := make([]games.Interaction, 0, len(edges))
	for _, edge := range edges {
		interactions = append(interactions, games.Interaction{
			Source:   fmt.Sprintf("element_%d", edge.SourceIndex),
			Target:   fmt.Sprintf("element_%d", edge.TargetIndex),
			Strength: g.cfg.SimulationAttractionStrength,
			Type:     "attraction",
		})
	}

	return &games.SimulationSpec{
		Type:           games.TypeSimulation,
		Title:          "Concept Interaction Simulator",
		Description:    "Explore how different concepts interact with each other",
		SimulationType: "particle_system",
		Elements:       elements,
		Interactions:   interactions,
		Settings: games.SimulationSettings{
			Gravity:            g.cfg.SimulationGravity,
			Friction:           g.cfg.SimulationFriction,
			AttractionStrength: g.cfg.SimulationAttractionStrength,
			RepulsionStrength:  g.cfg.SimulationRepulsionStrength,
			ParticleSpeed:      g.cfg.SimulationParticleSpeed,
		},
	}
}

// element derives one particle from a concept: mass grows with the
// concept index, charge alternates by parity, size tracks keyword count.
func (g *SimulationGenerator) element(concept entities.Concept, index int, rng *rand.Rand) games.Element {
	label := concept.Keywords().First()
	if label == "" {
		label = fmt.Sprintf("Concept %d", index)
	}

	charge := 1.0
	if index%2 == 0 {
		charge = -1.0
	}

	mass := float64(1 + index)
	size := concept.Keywords().Len() + g.cfg.ElementBaseSize
	conceptType := string(concept.Type())

	return games.Element{
		ID:          fmt.Sprintf("element_%d", index),
		Type:        conceptType,
		Label:       label,
		Description: concept.Content(),
		Properties: games.ElementProperties{
			Mass:   mass,
			Charge: charge,
			Size:   size,
		},
		Visual: games.ElementVisual{
			Color: games.ColorForConceptType(conceptType),
			Size:  size,
			Shape: games.ShapeForConceptType(conceptType),
		},
		Physics: games.ElementPhysics{
			Mass:   mass,
			Charge: charge,
			InitialVelocity: games.Vector2{
				X: rng.Float64()*2 - 1,
				Y: rng.Float64()*2 - 1,
			},
		},
	}
}
