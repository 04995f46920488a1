// Package currency converts between Money and Indonesian Rupiah text.
//
// Indonesian convention: "Rp" symbol, dot as the thousands separator
// and comma as the decimal separator (Rp 1.000.000 / Rp 1.000,50).
// Every function here is total: any input produces a result, never an
// error.
package currency

import (
	"strconv"
	"strings"

	"github.com/monman-id/monman/internal/model"
)

// Options controls Format output.
type Options struct {
	// ShowDecimals renders the ",dd" cent part. Default false.
	ShowDecimals bool
	// Compact switches to abbreviated magnitude suffixes (jt, rb, M).
	Compact bool
	// ShowSymbol renders the "Rp " prefix. Default true; construct
	// Options with DefaultOptions to get the default.
	ShowSymbol bool
}

// DefaultOptions returns the options Format assumes when the caller has
// no preference: symbol on, decimals off, standard notation.
func DefaultOptions() Options {
	return Options{ShowSymbol: true}
}

// Format renders an amount as Rupiah text. Without ShowDecimals a
// non-multiple-of-100 amount rounds half away from zero to whole
// Rupiah. The sign precedes the symbol: -Rp 1.000.
func Format(amount model.Money, opts Options) string {
	if opts.Compact {
		return FormatCompact(amount)
	}

	var b strings.Builder
	if amount < 0 {
		b.WriteByte('-')
	}
	if opts.ShowSymbol {
		b.WriteString("Rp ")
	}

	abs := int64(amount.Abs())
	if opts.ShowDecimals {
		b.WriteString(group(abs / 100))
		b.WriteByte(',')
		b.WriteString(pad2(abs % 100))
	} else {
		b.WriteString(group((abs + 50) / 100))
	}
	return b.String()
}

// Compact thresholds, in cents.
const (
	miliarCents = 1_000_000_000 * 100
	jutaCents   = 1_000_000 * 100
	ribuCents   = 1_000 * 100
)

// FormatCompact renders an amount with Indonesian magnitude suffixes:
// "Rp 2,5 jt" (juta), "Rp 25 rb" (ribu), "Rp 1,2 M" (miliar). The
// boundary is inclusive at the larger unit, so exactly one million
// Rupiah is "Rp 1,0 jt", not ribu. Sign is preserved as a leading "-".
func FormatCompact(amount model.Money) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	abs := int64(amount.Abs())

	switch {
	case abs >= miliarCents:
		return sign + "Rp " + oneDecimal(abs, miliarCents) + " M"
	case abs >= jutaCents:
		return sign + "Rp " + oneDecimal(abs, jutaCents) + " jt"
	case abs >= ribuCents:
		return sign + "Rp " + strconv.FormatInt((abs+ribuCents/2)/ribuCents, 10) + " rb"
	default:
		return sign + "Rp " + group((abs+50)/100)
	}
}

// Parse extracts a Money value from Rupiah text: "Rp 1.000.000",
// "1000000", or "2.500,50" all work. An optional case-insensitive "Rp"
// prefix and all whitespace are stripped, dots are treated as thousands
// separators and a comma as the decimal point. Text with no leading
// numeric content parses as 0; trailing junk after a number is ignored.
// The result is the parsed decimal rounded to whole cents.
func Parse(text string) model.Money {
	clean := strings.TrimSpace(text)
	for _, sym := range []string{"Rp", "rp", "RP", "rP"} {
		clean = strings.ReplaceAll(clean, sym, "")
	}
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	clean = numericPrefix(clean)
	if clean == "" {
		return 0
	}
	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	cents := value * 100
	if cents >= 0 {
		return model.Money(cents + 0.5)
	}
	return model.Money(cents - 0.5)
}

// Sign classifies an amount for display styling.
type Sign int

const (
	// SignZero marks a zero amount.
	SignZero Sign = iota
	// SignPositive marks an inflow.
	SignPositive
	// SignNegative marks an outflow.
	SignNegative
)

// Classify returns the sign category of an amount.
func Classify(amount model.Money) Sign {
	switch {
	case amount > 0:
		return SignPositive
	case amount < 0:
		return SignNegative
	default:
		return SignZero
	}
}

// Token returns the color token a view should use for this sign.
func (s Sign) Token() string {
	switch s {
	case SignPositive:
		return "income-green"
	case SignNegative:
		return "expense-red"
	default:
		return "neutral-gray"
	}
}

// group renders a non-negative integer with dots every three digits.
func group(n int64) string {
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}
	var parts []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{digits[start:i]}, parts...)
	}
	return strings.Join(parts, ".")
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// oneDecimal renders abs/unit with a single comma-separated decimal,
// rounding half up on tenths.
func oneDecimal(abs, unit int64) string {
	tenths := (abs + unit/20) / (unit / 10)
	return strconv.FormatInt(tenths/10, 10) + "," + strconv.FormatInt(tenths%10, 10)
}

// numericPrefix trims s to its leading decimal-number prefix, the same
// lenient reading a form input gets: sign, digits, at most one point.
func numericPrefix(s string) string {
	end := 0
	seenDigit := false
	seenPoint := false
loop:
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' && !seenPoint:
			seenPoint = true
		case (r == '+' || r == '-') && i == 0:
		default:
			break loop
		}
		end = i + 1
	}
	if !seenDigit {
		return ""
	}
	return strings.TrimSuffix(s[:end], ".")
}
