package readmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponRM is the stored state of a coupon as seen by callers.
type CouponRM struct {
	ID             int64           `json:"id"`
	Code           string          `json:"code"`
	Description    *string         `json:"description,omitempty"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	ExpirationDate time.Time       `json:"expiration_date"`
	Status         string          `json:"status"`
	Published      bool            `json:"published"`
	Redeemed       bool            `json:"redeemed"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
