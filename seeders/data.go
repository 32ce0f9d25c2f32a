package seeders

import "github.com/aarondl/null/v8"

type equipmentSeed struct {
	Name        string
	Description null.String
	Length      float64
	Width       float64
	Height      float64
	Weight      float64
}

var equipmentData = []equipmentSeed{
	{
		Name:        "Hydraulic Excavator",
		Description: null.StringFrom("Tracked excavator for general earthworks"),
		Length:      949.5, Width: 299, Height: 315.4, Weight: 22100.5,
	},
	{
		Name:        "Tower Crane",
		Description: null.StringFrom("Fixed crane, 60m jib"),
		Length:      6000, Width: 180.25, Height: 4980.75, Weight: 68400,
	},
	{
		Name:        "Concrete Mixer",
		Length:      552.5, Width: 230, Height: 245.5, Weight: 2640.25,
	},
	{
		Name:        "Forklift",
		Description: null.StringFrom("Warehouse forklift, 2.5t capacity"),
		Length:      270.75, Width: 115.5, Height: 210, Weight: 3850.5,
	},
	{
		Name:        "Scissor Lift",
		Length:      243.5, Width: 81.25, Height: 199.9, Weight: 1542.125,
	},
}
