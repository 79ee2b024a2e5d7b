package response

import (
	"encoding/json"
	"strconv"
	"time"

	"coupon-processor/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	ID             string      `json:"id" copier:"-"`
	Code           string      `json:"code"`
	Description    *string     `json:"description"`
	DiscountValue  json.Number `json:"discountValue" copier:"-"`
	ExpirationDate time.Time   `json:"expirationDate" copier:"-"`
	Status         string      `json:"status"`
	Published      bool        `json:"published"`
	Redeemed       bool        `json:"redeemed"`
}

func FromCouponRM(rm *readmodel.CouponRM) (*CouponResponse, error) {
	res := &CouponResponse{}
	if err := copier.Copy(res, rm); err != nil {
		return nil, err
	}
	res.ID = strconv.FormatInt(rm.ID, 10)
	res.DiscountValue = json.Number(rm.DiscountValue.String())
	res.ExpirationDate = rm.ExpirationDate.UTC()
	return res, nil
}
