package types

import "strconv"

// CurrencyRef names a currency either by numeric id or by code. Exactly one
// of the two is set; use CurrencyByID or CurrencyByCode to build one. The
// zero value refers to nothing and is rejected by the client.
type CurrencyRef struct {
	id     int
	code   string
	byCode bool
	set    bool
}

// CurrencyByID refers to a currency by its exchange id.
func CurrencyByID(id int) CurrencyRef {
	return CurrencyRef{id: id, set: true}
}

// CurrencyByCode refers to a currency by its ticker code, e.g. "BTC".
func CurrencyByCode(code string) CurrencyRef {
	return CurrencyRef{code: code, byCode: true, set: code != ""}
}

// Valid reports whether the reference names a currency.
func (c CurrencyRef) Valid() bool {
	return c.set
}

// ID returns the currency id and whether the reference is id based.
func (c CurrencyRef) ID() (int, bool) {
	return c.id, c.set && !c.byCode
}

// Code returns the currency code and whether the reference is code based.
func (c CurrencyRef) Code() (string, bool) {
	return c.code, c.set && c.byCode
}

// Param returns the form parameter name and value for this reference.
func (c CurrencyRef) Param() (string, string) {
	if c.byCode {
		return "currencycode", c.code
	}
	return "currencyid", strconv.Itoa(c.id)
}

func (c CurrencyRef) String() string {
	switch {
	case !c.set:
		return "<none>"
	case c.byCode:
		return c.code
	default:
		return "#" + strconv.Itoa(c.id)
	}
}
