package analytics

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev: popülasyon standart sapması (N'e bölünür, N-1'e değil).
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// coefficientOfVariation: std/ortalama. Ortalama sıfır veya negatifse
// hesaplanamaz ve ok=false döner.
func coefficientOfVariation(values []float64) (cv float64, ok bool) {
	m := mean(values)
	if m <= 0 {
		return 0, false
	}
	return stddev(values) / m, true
}
