package games

// NodeSize is the bounding box of a puzzle node
type NodeSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NodeVisual describes how a puzzle node is drawn
type NodeVisual struct {
	BackgroundColor string   `json:"background_color"`
	BorderColor     string   `json:"border_color"`
	TextColor       string   `json:"text_color"`
	Size            NodeSize `json:"size"`
}

// NodeInteraction carries drag/connect affordances and the four snap
// points at +/-30 units along each axis from the node position.
type NodeInteraction struct {
	Draggable   bool      `json:"draggable"`
	Connectable bool      `json:"connectable"`
	SnapPoints  []Vector2 `json:"snap_points"`
}

// PuzzleNode is one draggable concept card in the puzzle.
type PuzzleNode struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Content     string          `json:"content"`
	Keywords    []string        `json:"keywords"`
	Position    Vector2         `json:"position"`
	Visual      NodeVisual      `json:"visual"`
	Interaction NodeInteraction `json:"interaction"`
}

// Connection is a labeled link between two related puzzle nodes.
// The label is the lexicographically smallest shared keyword and the
// strength is the shared-keyword count.
type Connection struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Label    string `json:"label"`
	Strength int    `json:"strength"`
}

// PuzzleSettings are fixed layout constants for the concept map board.
type PuzzleSettings struct {
	GridSize                     NodeSize `json:"grid_size"`
	SnapToGrid                   bool     `json:"snap_to_grid"`
	ConnectionStrengthMultiplier float64  `json:"connection_strength_multiplier"`
	NodeSpacing                  int      `json:"node_spacing"`
}

// PuzzleSpec is the complete description of a concept-map puzzle.
type PuzzleSpec struct {
	Type        GameType       `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	PuzzleType  string         `json:"puzzle_type"`
	Nodes       []PuzzleNode   `json:"nodes"`
	Connections []Connection   `json:"connections"`
	Settings    PuzzleSettings `json:"settings"`
}

// Kind implements Spec
func (s *PuzzleSpec) Kind() GameType { return TypePuzzle }

func (s *PuzzleSpec) isSpec() {}
