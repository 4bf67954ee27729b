package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode  = errors.New("coupon code must be 4 to 20 alphanumeric characters")
	ErrInvalidType  = errors.New("coupon type must be either fixed or percent")
	ErrInvalidValue = errors.New("coupon value must be positive")
)

var codeRegex = regexp.MustCompile(`^[a-zA-Z0-9]{4,20}$`)

// Code is stored lowercase so uniqueness and lookups are case-insensitive.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if !codeRegex.MatchString(code) {
		return "", ErrInvalidCode
	}
	return Code(strings.ToLower(code)), nil
}

func (c Code) String() string {
	return string(c)
}

type Type string

const (
	TypeFixed   Type = "fixed"
	TypePercent Type = "percent"
)

func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case string(TypeFixed):
		return TypeFixed, nil
	case string(TypePercent):
		return TypePercent, nil
	default:
		return "", ErrInvalidType
	}
}

// ValidateValue checks the discount value. For fixed coupons the value is in
// the smallest currency unit; for percent coupons it is a whole percent.
func ValidateValue(value int64) error {
	if value < 1 {
		return ErrInvalidValue
	}
	return nil
}
