package analytics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Formatter renders display values with locale-specific affixes. The
// deployed dashboard uses Indonesian conventions ("Rp ", "jt", "rb",
// dot-separated thousands); all of them come from configuration.
type Formatter struct {
	CurrencyPrefix     string
	MillionSuffix      string
	ThousandSuffix     string
	ThousandsSeparator string
}

// FormatLarge compacts a value for a KPI card: millions with one decimal
// (trailing .0 stripped) plus the million suffix, whole thousands plus the
// thousand suffix, smaller values as whole numbers.
func (f Formatter) FormatLarge(n float64) string {
	if n >= 1000000 {
		s := strconv.FormatFloat(n/1000000, 'f', 1, 64)
		return strings.TrimSuffix(s, ".0") + f.MillionSuffix
	}
	if n >= 1000 {
		return strconv.FormatFloat(n/1000, 'f', 0, 64) + f.ThousandSuffix
	}
	return strconv.FormatFloat(n, 'f', 0, 64)
}

// FormatGrouped renders an integer with the configured thousands separator
func (f Formatter) FormatGrouped(n int) string {
	if n < 0 {
		return "-" + f.FormatGrouped(-n)
	}
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return f.FormatGrouped(n/1000) + f.ThousandsSeparator + fmt.Sprintf("%03d", n%1000)
}

// FormatCurrency renders an amount with the currency prefix and grouped
// thousands, rounded to whole units
func (f Formatter) FormatCurrency(amount float64) string {
	rounded := int(math.Round(amount))
	if rounded < 0 {
		return "-" + f.CurrencyPrefix + f.FormatGrouped(-rounded)
	}
	return f.CurrencyPrefix + f.FormatGrouped(rounded)
}
