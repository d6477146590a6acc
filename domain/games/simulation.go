package games

// Vector2 is a two-dimensional value used for velocities and positions
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ElementProperties are the physical attributes of a particle element
type ElementProperties struct {
	Mass   float64 `json:"mass"`
	Charge float64 `json:"charge"`
	Size   int     `json:"size"`
}

// ElementVisual describes how an element is drawn
type ElementVisual struct {
	Color string `json:"color"`
	Size  int    `json:"size"`
	Shape string `json:"shape"`
}

// ElementPhysics carries the runtime physics state of an element
type ElementPhysics struct {
	Mass            float64 `json:"mass"`
	Charge          float64 `json:"charge"`
	InitialVelocity Vector2 `json:"initial_velocity"`
}

// Element is one particle in the simulation, derived from one concept.
type Element struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Properties  ElementProperties `json:"properties"`
	Visual      ElementVisual     `json:"visual"`
	Physics     ElementPhysics    `json:"physics"`
}

// Interaction is an attraction between two related elements.
type Interaction struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Strength float64 `json:"strength"`
	Type     string  `json:"type"`
}

// SimulationSettings are global physics constants, fixed configuration
// independent of paper content.
type SimulationSettings struct {
	Gravity            float64 `json:"gravity"`
	Friction           float64 `json:"friction"`
	AttractionStrength float64 `json:"attraction_strength"`
	RepulsionStrength  float64 `json:"repulsion_strength"`
	ParticleSpeed      float64 `json:"particle_speed"`
}

// SimulationSpec is the complete description of a particle simulation.
type SimulationSpec struct {
	Type           GameType           `json:"type"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	SimulationType string             `json:"simulation_type"`
	Elements       []Element          `json:"elements"`
	Interactions   []Interaction      `json:"interactions"`
	Settings       SimulationSettings `json:"settings"`
}

// Kind implements Spec
func (s *SimulationSpec) Kind() GameType { return TypeSimulation }

func (s *SimulationSpec) isSpec() {}
