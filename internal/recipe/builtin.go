package recipe

import "github.com/hammamikhairi/ottobar/internal/domain"

// Default pump layout used by the built-in recipes. A catalog file may use
// any layout that fits the configured bank.
const (
	PumpVodka = iota
	PumpWhiteRum
	PumpGin
	PumpTequila
	PumpTripleSec
	PumpLimeJuice
	PumpSimpleSyrup
	PumpCranberry
	PumpOrangeJuice
	PumpCola
	PumpSodaWater
	PumpTonic
	PumpGingerBeer
	PumpGrenadine
	PumpPineapple
	PumpCoconutCream
	PumpCoffeeLiqueur
)

// Builtin returns the recipes served when no catalog file is configured.
func Builtin() []*domain.Recipe {
	return []*domain.Recipe{
		{
			Name: "Cosmopolitan",
			Ingredients: []domain.Ingredient{
				{Name: "vodka", Actuator: PumpVodka, VolumeML: 40},
				{Name: "triple sec", Actuator: PumpTripleSec, VolumeML: 15},
				{Name: "lime juice", Actuator: PumpLimeJuice, VolumeML: 15},
				{Name: "cranberry juice", Actuator: PumpCranberry, VolumeML: 30},
			},
		},
		{
			Name: "Cuba Libre",
			Ingredients: []domain.Ingredient{
				{Name: "white rum", Actuator: PumpWhiteRum, VolumeML: 50},
				{Name: "cola", Actuator: PumpCola, VolumeML: 120},
				{Name: "lime juice", Actuator: PumpLimeJuice, VolumeML: 10},
			},
		},
		{
			Name: "Gin and Tonic",
			Ingredients: []domain.Ingredient{
				{Name: "gin", Actuator: PumpGin, VolumeML: 50},
				{Name: "tonic water", Actuator: PumpTonic, VolumeML: 150},
			},
		},
		{
			Name: "Moscow Mule",
			Ingredients: []domain.Ingredient{
				{Name: "vodka", Actuator: PumpVodka, VolumeML: 45},
				{Name: "ginger beer", Actuator: PumpGingerBeer, VolumeML: 120},
				{Name: "lime juice", Actuator: PumpLimeJuice, VolumeML: 10},
			},
		},
		{
			Name: "Tequila Sunrise",
			Ingredients: []domain.Ingredient{
				{Name: "tequila", Actuator: PumpTequila, VolumeML: 45},
				{Name: "orange juice", Actuator: PumpOrangeJuice, VolumeML: 90},
				{Name: "grenadine", Actuator: PumpGrenadine, VolumeML: 15},
			},
		},
		{
			Name: "Pina Colada",
			Ingredients: []domain.Ingredient{
				{Name: "white rum", Actuator: PumpWhiteRum, VolumeML: 50},
				{Name: "coconut cream", Actuator: PumpCoconutCream, VolumeML: 30},
				{Name: "pineapple juice", Actuator: PumpPineapple, VolumeML: 90},
			},
		},
		{
			Name: "Black Russian",
			Ingredients: []domain.Ingredient{
				{Name: "vodka", Actuator: PumpVodka, VolumeML: 50},
				{Name: "coffee liqueur", Actuator: PumpCoffeeLiqueur, VolumeML: 20},
			},
		},
		{
			Name: "Mojito Lite",
			Ingredients: []domain.Ingredient{
				{Name: "white rum", Actuator: PumpWhiteRum, VolumeML: 45},
				{Name: "lime juice", Actuator: PumpLimeJuice, VolumeML: 20},
				{Name: "simple syrup", Actuator: PumpSimpleSyrup, VolumeML: 15},
				{Name: "soda water", Actuator: PumpSodaWater, VolumeML: 90},
			},
		},
	}
}
