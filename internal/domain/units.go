package domain

const (
	DefaultMaterialCategory = "Building Materials"
	DefaultLaborCategory    = "Labor"
)

// MaterialUnits is the closed set of unit-of-measure tokens accepted for
// material lines. Mirrors the unit picker in the web client.
var MaterialUnits = map[string]bool{
	"sq_ft":     true,
	"sq_yd":     true,
	"sq_m":      true,
	"linear_ft": true,
	"linear_m":  true,
	"each":      true,
	"box":       true,
	"roll":      true,
	"sheet":     true,
	"gallon":    true,
	"quart":     true,
	"liter":     true,
	"pound":     true,
	"kg":        true,
	"bag":       true,
	"pallet":    true,
}

func ValidMaterialUnit(unit string) bool {
	return MaterialUnits[unit]
}
