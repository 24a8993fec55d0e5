package cart

import model "campustrade/internal/models"

// PromoLookup resolves a promo code to its discount. Lookups are exact; the
// cart service upper-cases user input before asking.
type PromoLookup interface {
	Lookup(code string) (model.PromoCode, bool)
}

// StaticPromoTable is a fixed code -> percentage table standing in for a
// discount service.
type StaticPromoTable map[string]int

// DefaultPromoTable returns the codes offered at launch
func DefaultPromoTable() StaticPromoTable {
	return StaticPromoTable{
		"STUDENT10": 10,
		"SAVE15":    15,
		"NEWUSER":   20,
	}
}

func (t StaticPromoTable) Lookup(code string) (model.PromoCode, bool) {
	pct, ok := t[code]
	if !ok {
		return model.PromoCode{}, false
	}
	return model.PromoCode{Code: code, Percentage: pct}, true
}
