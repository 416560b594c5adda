package conversion

// Exact converts miles to kilometers with the exact international factor.
func Exact(miles float64) float64 {
	return miles * KilometersPerMile
}
