package coupon

import (
	"strings"

	"github.com/shopspring/decimal"
)

const CodeLength = 6

// MinDiscountValue is the smallest discount that still has an effect.
var MinDiscountValue = decimal.RequireFromString("0.5")

type Code string

// NewCode strips everything except ASCII letters and digits, then requires
// exactly CodeLength characters to remain.
func NewCode(raw string) (Code, error) {
	normalized := NormalizeCode(raw)
	if len(normalized) != CodeLength {
		return Code(""), ErrInvalidCodeLength
	}
	return Code(normalized), nil
}

func NormalizeCode(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9') {
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func (c Code) String() string {
	return string(c)
}

type DiscountValue struct {
	value decimal.Decimal
}

func NewDiscountValue(v decimal.Decimal) (DiscountValue, error) {
	if v.LessThan(MinDiscountValue) {
		return DiscountValue{}, ErrDiscountBelowMinimum
	}
	return DiscountValue{value: v}, nil
}

func (d DiscountValue) Decimal() decimal.Decimal { return d.value }

func (d DiscountValue) String() string { return d.value.String() }
