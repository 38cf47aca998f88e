//go:build unit

package money_test

import (
	"testing"

	"rental-pricing/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatter_Format(t *testing.T) {
	th := money.NewFormatter(language.Thai, money.DefaultSymbol)

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "zero", amount: 0, want: "฿0.00"},
		{name: "small", amount: 500, want: "฿500.00"},
		{name: "thousands", amount: 1050, want: "฿1,050.00"},
		{name: "millions", amount: 1234567.5, want: "฿1,234,567.50"},
		{name: "fraction", amount: 99.25, want: "฿99.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, th.Format(tt.amount))
		})
	}
}

func TestFormatter_Locale(t *testing.T) {
	assert.Equal(t, "1,050.00", money.NewFormatter(language.English, "").Amount(1050))
	assert.Equal(t, "1.050,00", money.NewFormatter(language.German, "").Amount(1050))
}

func TestNewFormatterFromLocale(t *testing.T) {
	assert.Equal(t, "$2,000.00", money.NewFormatterFromLocale("en-US", "$").Format(2000))
	assert.Equal(t, "฿2,000.00", money.NewFormatterFromLocale("not a locale!", "฿").Format(2000))
}
