package money

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders v in reais with pt-BR separators, e.g. "R$ 1.234,50".
func FormatBRL(v float64) string {
	return printer.Sprintf("%v %v", currency.Symbol(currency.BRL), number.Decimal(v, number.Scale(2)))
}
