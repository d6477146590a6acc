package games

// Fixed visual vocabulary shared by the simulation and puzzle specs.
const (
	colorDefinition  = "#4CAF50"
	colorMethodology = "#2196F3"
	colorResult      = "#FF9800"
	colorDefault     = "#9C27B0"
)

// ColorForConceptType maps a concept type to its display color.
func ColorForConceptType(conceptType string) string {
	switch conceptType {
	case "definition":
		return colorDefinition
	case "methodology":
		return colorMethodology
	case "result":
		return colorResult
	default:
		return colorDefault
	}
}

// ShapeForConceptType maps a concept type to its particle shape.
func ShapeForConceptType(conceptType string) string {
	switch conceptType {
	case "definition":
		return "circle"
	case "methodology":
		return "hexagon"
	case "result":
		return "square"
	default:
		return "circle"
	}
}
