package formatter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// Money renders an amount with grouped thousands and two decimals, e.g.
// 125,000.00.
func Money(amount float64) string {
	return moneyPrinter.Sprintf("%.2f", amount)
}
