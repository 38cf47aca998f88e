// Package ratetext extracts per-day rates from option display text such as
// "Sony FX3 (฿1,500/วัน)".
package ratetext

import (
	"regexp"
	"strconv"
	"strings"
)

const DefaultMarker = "฿"

type Parser struct {
	pattern *regexp.Regexp
}

func NewParser(markers ...string) *Parser {
	if len(markers) == 0 {
		markers = []string{DefaultMarker}
	}
	quoted := make([]string, len(markers))
	for i, m := range markers {
		quoted[i] = regexp.QuoteMeta(m)
	}
	return &Parser{
		pattern: regexp.MustCompile(`(?:` + strings.Join(quoted, "|") + `)(\d[\d,]*)`),
	}
}

// Parse returns the first marked amount in label. Digits after a decimal
// point are not part of the group and are ignored.
func (p *Parser) Parse(label string) (float64, bool) {
	m := p.pattern.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	digits := strings.ReplaceAll(m[1], ",", "")
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (p *Parser) RateOrNil(label *string) *float64 {
	if label == nil {
		return nil
	}
	v, ok := p.Parse(*label)
	if !ok {
		return nil
	}
	return &v
}

var defaultParser = NewParser()

func Parse(label string) (float64, bool) {
	return defaultParser.Parse(label)
}

func RateOrNil(label *string) *float64 {
	return defaultParser.RateOrNil(label)
}
