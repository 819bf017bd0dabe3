package utils

// ActivityMultipliers maps activity level strings to their TDEE
// multiplier. Single source of truth for valid activity levels.
var ActivityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

const defaultActivityMultiplier = 1.55 // moderately_active

// CalculateBMR estimates resting energy expenditure in kcal/day using the
// revised Harris-Benedict constants the original Viveo app shipped with.
// Weight in kg, height in cm. Any sex other than "female" uses the male
// constants.
func CalculateBMR(weightKg, heightCm float64, age int, sex string) float64 {
	if sex == "female" {
		return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}
	return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
}

// CalculateTDEE scales a BMR by the activity multiplier. Unknown levels
// fall back to the moderately-active multiplier.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	mult, ok := ActivityMultipliers[activityLevel]
	if !ok {
		mult = defaultActivityMultiplier
	}
	return bmr * mult
}
