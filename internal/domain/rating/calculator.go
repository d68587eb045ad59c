package rating

// Average calcula el promedio aritmético de las calificaciones activas de un producto.
// Sin calificaciones el rating resultante es 0.0 (nunca nulo ni el valor anterior).
func Average(grades []int) float64 {
	if len(grades) == 0 {
		return 0.0
	}
	sum := 0
	for _, g := range grades {
		sum += g
	}
	return float64(sum) / float64(len(grades))
}
