// Package expr evaluates the short player-authored pricing and quantity
// expressions used by trading policies. Expressions are plain arithmetic
// plus a small set of macros (MP, MAX, PROD) that the tick simulation
// resolves later against live figures; this package only validates them
// and decides whether the stored policy value is a number or a retained
// macro string.
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/openmagnate/magnate/internal/common"
)

// Context identifies which field an expression was entered into, and with
// it the set of macros the sanitizer lets through.
type Context int

const (
	// MaterialPrice allows MP (material production cost basis).
	MaterialPrice Context = iota
	// SellQuantity allows MAX and PROD (material and product sell amounts).
	SellQuantity
	// ProductPrice allows MP.
	ProductPrice
	// ExportAmount allows MAX.
	ExportAmount
)

// baseRunes is the arithmetic character set every context accepts.
const baseRunes = "-()0123456789/*+."

func (c Context) macros() []string {
	switch c {
	case MaterialPrice, ProductPrice:
		return []string{"MP"}
	case SellQuantity:
		return []string{"MAX", "PROD"}
	case ExportAmount:
		return []string{"MAX"}
	}
	return nil
}

// Field returns the user-facing name of the input field, used in error
// messages so the UI can surface which box was wrong.
func (c Context) Field() string {
	switch c {
	case MaterialPrice, ProductPrice:
		return "sell price field"
	case SellQuantity:
		return "sell quantity field"
	case ExportAmount:
		return "export amount"
	}
	return "expression field"
}

// quantity contexts fold case so "max" and "MAX" mean the same macro.
func (c Context) foldsCase() bool {
	return c == SellQuantity || c == ExportAmount
}

// Result is the outcome of a successful evaluation: either a plain number,
// or a sanitized macro expression retained for later resolution by the
// simulation. Exactly one of the two is meaningful.
type Result struct {
	Num   float64
	Macro string
}

// IsMacro reports whether the result retained a macro expression.
func (r Result) IsMacro() bool { return r.Macro != "" }

// Evaluate sanitizes raw for the given context and validates it as a
// non-negative arithmetic expression. basis is substituted for MP during
// validation (callers pass the material's cost basis, or 1 when none is
// known); quantity macros always validate as 1. If the sanitized string
// still contains a macro the Result carries the macro string, otherwise
// the evaluated number.
func Evaluate(c Context, raw string, basis float64) (Result, error) {
	sanitized := Sanitize(c, raw)

	validation := sanitized
	for _, m := range c.macros() {
		sub := "1"
		if m == "MP" {
			sub = strconv.FormatFloat(basis, 'f', -1, 64)
		}
		validation = strings.ReplaceAll(validation, m, sub)
	}

	v, err := evalArithmetic(validation)
	if err != nil {
		return Result{}, fmt.Errorf("invalid value or expression for %s: %w", c.Field(), err)
	}
	if !common.IsFinite(v) {
		return Result{}, fmt.Errorf("invalid value or expression for %s: %w", c.Field(), ErrNotFinite)
	}
	if v < 0 {
		return Result{}, fmt.Errorf("invalid value or expression for %s: %w", c.Field(), ErrNegativeValue)
	}

	for _, m := range c.macros() {
		if strings.Contains(sanitized, m) {
			return Result{Macro: sanitized}, nil
		}
	}
	return Result{Num: v}, nil
}

// ErrNegativeValue is returned when an otherwise valid expression
// evaluates below zero.
var ErrNegativeValue = errors.New("value must be non-negative")

// ErrNotFinite is returned when evaluation overflows to an infinity or
// produces NaN.
var ErrNotFinite = errors.New("value must be finite")

// Sanitize strips whitespace and every rune outside the arithmetic set
// and the context's macro letters. Safety comes from this deletion, not
// from the parser: nothing outside the allowed set ever reaches it.
func Sanitize(c Context, raw string) string {
	if c.foldsCase() {
		raw = strings.ToUpper(raw)
	}
	allowed := baseRunes
	for _, m := range c.macros() {
		allowed += m
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if strings.ContainsRune(allowed, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContainsMacro reports whether s (already sanitized) still carries one of
// the context's macro tokens.
func ContainsMacro(c Context, s string) bool {
	for _, m := range c.macros() {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
