package utils

import (
	"math"

	"github.com/dustin/go-humanize"
)

// RoundTo arredonda para a quantidade de casas decimais informada, sem produzir -0
func RoundTo(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	pow := math.Pow10(places)
	rounded := math.Round(f*pow) / pow
	if rounded == 0 {
		return 0
	}

	return rounded
}

// FormatDollars formata um valor em dólares com separador de milhar, ex: $10,516,000
func FormatDollars(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.Comma(-amount)
	}
	return "$" + humanize.Comma(amount)
}
