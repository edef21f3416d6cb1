/*
format.go - Norwegian number parsing and formatting

The input contract accepts Norwegian-style numbers: comma as decimal
separator, spaces (regular, NBSP or narrow NBSP) grouping thousands.
Parsing is lenient - anything non-numeric means "no value yet", never an
error. Formatting mirrors the same convention for the explanation text.
*/
package salary

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber parses a Norwegian-formatted number. Empty or non-numeric
// input returns (zero, false): the caller withholds results until all
// fields parse.
func ParseNumber(s string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1 // drop thousands separators
		case ',':
			return '.'
		default:
			return r
		}
	}, strings.TrimSpace(s))

	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatThousands renders a decimal with space-separated thousands groups
// and a decimal comma, e.g. 616000 -> "616 000", 316.92 -> "316,92".
func FormatThousands(d decimal.Decimal, places int) string {
	s := d.StringFixed(int32(places))

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// kroner formats a money amount for the explanation text.
func kroner(d decimal.Decimal) string {
	if d.Equal(d.Round(0)) {
		return FormatThousands(d, 0) + " kr"
	}
	return FormatThousands(d, 2) + " kr"
}

// explain builds the human-readable breakdown shown next to the result.
func explain(method Method, inputs Inputs, counts DayCounts, r Result) string {
	var lines []string

	lines = append(lines,
		"Nominell årslønn: "+kroner(inputs.YearlyIncome),
		"Grunnlag ("+method.Name()+"): "+kroner(r.Base),
		"Feriepenger ("+FormatThousands(inputs.VacationPayPercent, 0)+" %): "+kroner(r.VacationPay),
	)

	if counts.Parental+counts.Parental80 > 0 {
		lines = append(lines, "Foreldrepenger fra Nav: "+kroner(r.NavParentalPay))
		if inputs.EmployerCoversAbove6G {
			lines = append(lines, "Arbeidsgiver dekker over 6G: "+kroner(r.EmployerParentalPay))
		}
	}

	if counts.Sick > 0 {
		lines = append(lines, "Sykepenger fra Nav: "+kroner(r.NavSickPay))
		if inputs.EmployerCoversSykeAbove6G {
			lines = append(lines, "Arbeidsgiver dekker sykelønn over 6G: "+kroner(r.EmployerSickPay))
		}
		lines = append(lines, "Feriepenger av sykepenger (inntil 48 dager): "+kroner(r.NavSickVacationPay))
		if inputs.EmployerPaysVacationOnNavSick && counts.Sick > navSickVacationCapDays {
			lines = append(lines, "Arbeidsgiver dekker feriepenger utover 48 dager: "+kroner(r.EmployerSickVacationPay))
		}
	}

	lines = append(lines,
		"Faktisk årslønn: "+kroner(r.ActualEarnings),
		"Reell timelønn: "+kroner(r.ActualHourlyRate),
	)

	return strings.Join(lines, "\n")
}
