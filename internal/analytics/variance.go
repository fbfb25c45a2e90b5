package analytics

type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
	DirectionFlat     Direction = "flat"
)

// Band: yüzde değişimin işaretleme bandı. Eşikler sabit iş kurallarıdır,
// veriden türetilmez.
type Band string

const (
	BandStrongPositive Band = "strong_positive" // >= +30
	BandMildPositive   Band = "mild_positive"   // [+1, +30)
	BandFlat           Band = "flat"            // (-1, +1)
	BandMildNegative   Band = "mild_negative"   // (-30, -1]
	BandStrongNegative Band = "strong_negative" // <= -30
)

const (
	bandStrongPct = 30.0
	bandMildPct   = 1.0
)

type VarianceResult struct {
	Delta     float64   `json:"delta"`
	Percent   float64   `json:"percent"`
	Direction Direction `json:"direction"`
	Band      Band      `json:"band"`
}

// Variation: iki değer arasındaki mutlak ve yüzdesel fark. Sıfır tabandan
// pozitife çıkış %100 sayılır (matematiksel limit değil, açık bir kural);
// iki taraf da sıfırsa yüzde sıfırdır.
func Variation(actual, baseline float64) VarianceResult {
	res := VarianceResult{Delta: actual - baseline}

	switch {
	case baseline > 0:
		res.Percent = res.Delta / baseline * 100
	case actual > 0:
		res.Percent = 100
	default:
		res.Percent = 0
	}

	switch {
	case res.Delta > 0:
		res.Direction = DirectionPositive
	case res.Delta < 0:
		res.Direction = DirectionNegative
	default:
		res.Direction = DirectionFlat
	}

	res.Band = classify(res.Percent)
	return res
}

func classify(percent float64) Band {
	switch {
	case percent >= bandStrongPct:
		return BandStrongPositive
	case percent >= bandMildPct:
		return BandMildPositive
	case percent > -bandMildPct:
		return BandFlat
	case percent > -bandStrongPct:
		return BandMildNegative
	default:
		return BandStrongNegative
	}
}
