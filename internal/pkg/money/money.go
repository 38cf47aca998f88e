package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultSymbol = "฿"

type Formatter struct {
	symbol  string
	printer *message.Printer
}

func NewFormatter(tag language.Tag, symbol string) *Formatter {
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// NewFormatterFromLocale falls back to Thai when the locale cannot be parsed.
func NewFormatterFromLocale(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Thai
	}
	return NewFormatter(tag, symbol)
}

// Format renders amount with two fixed decimals and locale grouping.
func (f *Formatter) Format(amount float64) string {
	return f.symbol + f.Amount(amount)
}

func (f *Formatter) Amount(amount float64) string {
	return f.printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
