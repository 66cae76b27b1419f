// Package format renders numeric values as display strings.
package format

import (
	"math"
	"math/big"
	"strings"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

const groupSeparator = ","

// Number formats v according to cfg. NaN yields "".
func Number(v float64, cfg models.FormatConfig) string {
	if math.IsNaN(v) {
		return ""
	}
	s := toFixed(v, cfg.Precision)
	if cfg.GroupDigits {
		s = groupThousands(s)
	}
	if sep := cfg.DecimalSeparator; sep != "" && sep != "." {
		s = strings.Replace(s, ".", sep, 1)
	}
	return cfg.Prefix + s + cfg.Suffix
}

// Cell formats numeric cells with Number and returns text cells unchanged.
func Cell(c models.Cell, cfg models.FormatConfig) string {
	if v, ok := c.Float(); ok {
		return Number(v, cfg)
	}
	return c.String()
}

// Formatter returns a reusable formatting function bound to cfg.
func Formatter(cfg models.FormatConfig) func(float64) string {
	return func(v float64) string { return Number(v, cfg) }
}

// toFixed renders v with exactly precision fraction digits. Exact decimal
// ties round away from zero. Magnitudes of 1e21 and above use exponent form.
func toFixed(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if math.Abs(v) >= 1e21 {
		return models.FormatFloat(v)
	}

	neg := v < 0
	x := new(big.Float).SetPrec(2048).SetFloat64(math.Abs(v))
	scale := new(big.Float).SetPrec(2048).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil))
	x.Mul(x, scale)
	x.Add(x, big.NewFloat(0.5))
	n, _ := x.Int(nil)

	digits := n.String()
	if precision > 0 {
		if len(digits) <= precision {
			digits = strings.Repeat("0", precision-len(digits)+1) + digits
		}
		cut := len(digits) - precision
		digits = digits[:cut] + "." + digits[cut:]
	}
	if neg {
		digits = "-" + digits
	}
	return digits
}

// groupThousands inserts separators into the integer part of a fixed-point number.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return sign + s
		}
	}
	if len(intPart) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}
