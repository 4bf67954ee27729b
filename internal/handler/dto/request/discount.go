package request

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type ApplyPercentRequest struct {
	Percent int64 `json:"percent" binding:"required"`
}

// RemoveDiscountRequest is an optional body; without a code the product's
// active coupon is removed regardless of which one it is.
type RemoveDiscountRequest struct {
	Code *string `json:"code,omitempty"`
}
