package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundInt arredonda para o inteiro mais próximo
func RoundInt(f float64) int {
	return int(math.Round(f))
}

// SafeDivide retorna numerator/denominator, ou zero quando o denominador é zero.
// Todas as métricas derivadas (CTR, CPC, CVR, custo por conversão) passam por aqui.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 || math.IsNaN(denominator) {
		return 0
	}

	return numerator / denominator
}

// Percentage retorna part/total*100 com a mesma regra de SafeDivide
func Percentage(part, total float64) float64 {
	return SafeDivide(part, total) * 100
}

// Clamp limita v ao intervalo [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
