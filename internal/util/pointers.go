package util

import "github.com/shopspring/decimal"

func StrPtr(s string) *string {
	return &s
}

func Int32Ptr(i int32) *int32 {
	return &i
}

func FloatPtr(f float64) *float64 {
	return &f
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}
