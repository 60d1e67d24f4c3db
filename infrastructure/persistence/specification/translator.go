/*
Package specification translates catalog specifications into SQL conditions.

A specification the translator does not understand is reported as not
translatable; the repository then loads rows and filters them in memory
with IsSatisfiedBy, so results are the same either way.
*/
package specification

import (
	"strings"

	"storefront/domain/catalog"
	"storefront/domain/shared"

	"gorm.io/gorm/clause"
)

// ProductTranslator converts product specifications into gorm clause expressions
type ProductTranslator struct{}

func NewProductTranslator() *ProductTranslator {
	return &ProductTranslator{}
}

// Translate returns the WHERE expression for spec. ok is false when any
// part of spec has no SQL form. A nil spec translates to a nil expression.
func (t *ProductTranslator) Translate(spec shared.Specification[catalog.Product]) (expr clause.Expression, ok bool) {
	if spec == nil {
		return nil, true
	}

	switch s := spec.(type) {
	case shared.AndSpecification[catalog.Product]:
		return t.binary(s.Left, s.Right, clause.And)
	case shared.OrSpecification[catalog.Product]:
		return t.binary(s.Left, s.Right, clause.Or)
	case shared.NotSpecification[catalog.Product]:
		inner, ok := t.Translate(s.Spec)
		if !ok || inner == nil {
			return nil, false
		}
		return clause.Not(inner), true
	}
	return t.concrete(spec)
}

func (t *ProductTranslator) binary(left, right shared.Specification[catalog.Product], join func(...clause.Expression) clause.Expression) (clause.Expression, bool) {
	l, ok := t.Translate(left)
	if !ok || l == nil {
		return nil, false
	}
	r, ok := t.Translate(right)
	if !ok || r == nil {
		return nil, false
	}
	return join(l, r), true
}

func (t *ProductTranslator) concrete(spec shared.Specification[catalog.Product]) (clause.Expression, bool) {
	switch s := spec.(type) {
	case catalog.ByCategorySpecification:
		return clause.Expr{SQL: "LOWER(category) = ?", Vars: []any{strings.ToLower(s.Category)}}, true
	case catalog.InStockSpecification:
		return clause.Eq{Column: "in_stock", Value: true}, true
	case catalog.PriceRangeSpecification:
		var exprs []clause.Expression
		if s.Min > 0 {
			exprs = append(exprs, clause.Gte{Column: "price", Value: s.Min})
		}
		if s.Max > 0 {
			exprs = append(exprs, clause.Lte{Column: "price", Value: s.Max})
		}
		if len(exprs) == 0 {
			return clause.Expr{SQL: "1 = 1"}, true
		}
		return clause.And(exprs...), true
	case catalog.NameContainsSpecification:
		// LIKE wildcards in the query would change its meaning
		if strings.ContainsAny(s.Query, `%_\`) {
			return nil, false
		}
		return clause.Expr{SQL: "LOWER(name) LIKE ?", Vars: []any{"%" + strings.ToLower(s.Query) + "%"}}, true
	}
	return nil, false
}
