package catalog

// ReferencePoint is the map label for the fixed point distances are measured from.
const ReferencePoint = "Alpharetta"

// MockProperties returns the built-in Alpharetta-area listings.
func MockProperties() []Property {
	return []Property{
		{
			ID:          "alp-001",
			Title:       "Windward Parkway Commercial Pad",
			Address:     "3000 Windward Pkwy, Alpharetta, GA 30005",
			Description: "Graded commercial pad with frontage on Windward Parkway, utilities at the lot line and shared access to GA-400.",
			Source:      "LoopNet",
			Price:       2_450_000,
			Acreage:     4.2,
			Distance:    2.8,
			Zoning:      "Commercial",
			QOZEligible: true,
			TractID:     "13121011625",
			Coordinates: Coordinates{X: 62, Y: 38},
		},
		{
			ID:          "alp-002",
			Title:       "Old Milton Mixed-Use Assemblage",
			Address:     "105 Old Milton Pkwy, Alpharetta, GA 30009",
			Description: "Two contiguous parcels near Avalon approved for ground-floor retail with residential above.",
			Source:      "Crexi",
			Price:       5_800_000,
			Acreage:     3.1,
			Distance:    0.9,
			Zoning:      "Mixed-Use",
			QOZEligible: true,
			TractID:     "13121011634",
			Coordinates: Coordinates{X: 54, Y: 46},
		},
		{
			ID:          "alp-003",
			Title:       "Haynes Bridge Residential Lots",
			Address:     "2200 Haynes Bridge Rd, Alpharetta, GA 30022",
			Description: "Wooded tract platted for twelve single-family lots with sewer available.",
			Source:      "Zillow",
			Price:       1_350_000,
			Acreage:     6.5,
			Distance:    3.4,
			Zoning:      "Residential",
			QOZEligible: false,
			TractID:     "13121011711",
			Coordinates: Coordinates{X: 44, Y: 68},
		},
		{
			ID:          "alp-004",
			Title:       "Mansell Road Flex Industrial Site",
			Address:     "1150 Mansell Rd, Alpharetta, GA 30022",
			Description: "Level site suited to flex warehouse or light manufacturing, rail spur within a mile.",
			Source:      "LoopNet",
			Price:       3_900_000,
			Acreage:     11.8,
			Distance:    4.1,
			Zoning:      "Industrial",
			QOZEligible: true,
			TractID:     "13121011724",
			Coordinates: Coordinates{X: 70, Y: 74},
		},
		{
			ID:          "alp-005",
			Title:       "Birmingham Highway Farm Parcel",
			Address:     "14900 Birmingham Hwy, Milton, GA 30004",
			Description: "Pasture and timber on rolling terrain with a year-round creek along the eastern boundary.",
			Source:      "County Records",
			Price:       2_100_000,
			Acreage:     24.5,
			Distance:    7.6,
			Zoning:      "Agricultural",
			QOZEligible: false,
			TractID:     "13121011403",
			Coordinates: Coordinates{X: 18, Y: 14},
		},
		{
			ID:          "alp-006",
			Title:       "Downtown Alpharetta Infill Lot",
			Address:     "42 Canton St, Alpharetta, GA 30009",
			Description: "Corner infill lot one block from City Center, entitled for a three-story office building.",
			Source:      "Crexi",
			Price:       1_750_000,
			Acreage:     0.6,
			Distance:    0.2,
			Zoning:      "Commercial",
			QOZEligible: true,
			TractID:     "13121011634",
			Coordinates: Coordinates{X: 51, Y: 48},
		},
		{
			ID:          "alp-007",
			Title:       "Kimball Bridge Townhome Site",
			Address:     "3675 Kimball Bridge Rd, Alpharetta, GA 30022",
			Description: "Rezoned for forty townhomes with amenity area; engineering drawings included.",
			Source:      "Zillow",
			Price:       4_600_000,
			Acreage:     8.9,
			Distance:    3.9,
			Zoning:      "Residential",
			QOZEligible: true,
			TractID:     "13121011718",
			Coordinates: Coordinates{X: 58, Y: 80},
		},
		{
			ID:          "alp-008",
			Title:       "North Point Retail Outparcel",
			Address:     "6500 North Point Pkwy, Alpharetta, GA 30022",
			Description: "Outparcel beside a regional mall with signalized access and cross-easements in place.",
			Source:      "LoopNet",
			Price:       3_250_000,
			Acreage:     2.3,
			Distance:    2.1,
			Zoning:      "Commercial",
			QOZEligible: false,
			TractID:     "13121011627",
			Coordinates: Coordinates{X: 66, Y: 56},
		},
		{
			ID:          "alp-009",
			Title:       "Webb Bridge Mixed-Use Parcel",
			Address:     "1000 Webb Bridge Rd, Alpharetta, GA 30005",
			Description: "Frontage parcel near the Big Creek Greenway with a concept plan for live-work units.",
			Source:      "Crexi",
			Price:       6_750_000,
			Acreage:     9.4,
			Distance:    2.6,
			Zoning:      "Mixed-Use",
			QOZEligible: true,
			TractID:     "13121011626",
			Coordinates: Coordinates{X: 72, Y: 32},
		},
		{
			ID:          "alp-010",
			Title:       "Hopewell Road Estate Acreage",
			Address:     "16200 Hopewell Rd, Milton, GA 30004",
			Description: "Large residential acreage suited to an estate subdivision, perc tests complete.",
			Source:      "County Records",
			Price:       8_900_000,
			Acreage:     28.0,
			Distance:    9.3,
			Zoning:      "Residential",
			QOZEligible: false,
			TractID:     "13121011402",
			Coordinates: Coordinates{X: 28, Y: 6},
		},
		{
			ID:          "alp-011",
			Title:       "McGinnis Ferry Industrial Yard",
			Address:     "5200 McGinnis Ferry Rd, Alpharetta, GA 30005",
			Description: "Fenced outdoor storage yard with a small office building and heavy-duty paving.",
			Source:      "LoopNet",
			Price:       2_950_000,
			Acreage:     5.0,
			Distance:    5.7,
			Zoning:      "Industrial",
			QOZEligible: true,
			TractID:     "13117130612",
			Coordinates: Coordinates{X: 88, Y: 22},
		},
		{
			ID:          "alp-012",
			Title:       "Rucker Road Residential Infill",
			Address:     "780 Rucker Rd, Alpharetta, GA 30004",
			Description: "Cleared infill tract zoned for six detached homes next to an established neighborhood.",
			Source:      "Zillow",
			Price:       980_000,
			Acreage:     2.7,
			Distance:    1.8,
			Zoning:      "Residential",
			QOZEligible: false,
			TractID:     "13121011410",
			Coordinates: Coordinates{X: 36, Y: 36},
		},
	}
}
