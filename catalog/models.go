package catalog

// Coordinates is a percentage position (0-100) on the schematic area map.
// They are not geographic coordinates.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Property struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Address     string      `json:"address"`
	Description string      `json:"description"`
	Source      string      `json:"source"` // e.g., "LoopNet"
	Price       int64       `json:"price"`  // whole dollars
	Acreage     float64     `json:"acreage"`
	Distance    float64     `json:"distance"` // miles from the reference point
	Zoning      string      `json:"zoning"`
	QOZEligible bool        `json:"qozEligible"`
	TractID     string      `json:"tractId"`
	Coordinates Coordinates `json:"coordinates"`
}
