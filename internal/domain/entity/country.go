// Package entity contains the core business objects of the project.
package entity

// Country is a supported market. Only Kuwait ("kw") is active in phase 1;
// the other Gulf markets are defined but disabled.
type Country struct {
	Code           string `json:"code" validate:"required,oneof=kw sa ae qa"`
	Name           string `json:"name" validate:"required"`
	NameEn         string `json:"nameEn" validate:"required"`
	Flag           string `json:"flag"`
	Currency       string `json:"currency" validate:"required"`
	CurrencySymbol string `json:"currencySymbol" validate:"required"`
	Active         bool   `json:"active"`
}
