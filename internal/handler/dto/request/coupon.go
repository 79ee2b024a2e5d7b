package request

import (
	"reflect"
	"strings"
	"time"

	"coupon-processor/internal/pkg/errs"
	"coupon-processor/internal/pkg/ptr"
	"coupon-processor/internal/usecase/commands"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Pointer fields let binding tell a missing value from a zero value.
// ID is accepted so clients can post a coupon they read back, but it never
// reaches the command: storage assigns the id.
type CreateCouponRequest struct {
	ID             *int64           `json:"id" swaggerignore:"true"`
	Code           *string          `json:"code" binding:"required"`
	Description    *string          `json:"description" binding:"omitempty,max=1000"`
	DiscountValue  *decimal.Decimal `json:"discountValue" binding:"required"`
	ExpirationDate *time.Time       `json:"expirationDate" binding:"required"`
	Published      *bool            `json:"published"`
}

func (r *CreateCouponRequest) ToCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Code:           ptr.Deref(r.Code, ""),
		Description:    r.Description,
		DiscountValue:  ptr.Deref(r.DiscountValue, decimal.Zero),
		ExpirationDate: ptr.Deref(r.ExpirationDate, time.Time{}),
		Published:      ptr.Deref(r.Published, false),
	}
}

// discount_value is NUMERIC(38, 2): at most 36 integer digits.
var maxStorableDiscount = decimal.New(1, 36)

var ErrDiscountOutOfRange = errs.New("discountValue is out of range")

// CheckStorable rejects values the coupons table cannot hold, so they fail as
// a bad request instead of a database error.
func (r *CreateCouponRequest) CheckStorable() error {
	if r.DiscountValue != nil && r.DiscountValue.Round(2).Abs().Cmp(maxStorableDiscount) >= 0 {
		return ErrDiscountOutOfRange
	}
	return nil
}

// BindingErrorMessage turns the first binding failure into a client-facing
// message keyed by the JSON field name.
func BindingErrorMessage(err error, target any) string {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}

	fe := verrs[0]
	field := jsonFieldName(target, fe.StructField())
	switch fe.Tag() {
	case "required":
		return field + " cannot be null"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}

func jsonFieldName(target any, structField string) string {
	t := reflect.TypeOf(target)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return structField
	}
	return name
}
