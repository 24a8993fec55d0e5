package cart

import (
	model "campustrade/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Fees are the flat charges added to every order
type Fees struct {
	Delivery decimal.Decimal
	Service  decimal.Decimal
}

// DefaultFees returns the $5.00 delivery and $2.99 service fees
func DefaultFees() Fees {
	return Fees{
		Delivery: decimal.NewFromInt(5),
		Service:  decimal.RequireFromString("2.99"),
	}
}

// FeesFromFloat builds Fees from configuration values
func FeesFromFloat(delivery, service float64) Fees {
	return Fees{
		Delivery: decimal.NewFromFloat(delivery),
		Service:  decimal.NewFromFloat(service),
	}
}

// Breakdown is the exact pricing of a cart.
// Total always equals Subtotal - PromoDiscount + DeliveryFee + ServiceFee.
type Breakdown struct {
	Subtotal        decimal.Decimal
	TotalSavings    decimal.Decimal
	PromoDiscount   decimal.Decimal
	DeliveryFee     decimal.Decimal
	ServiceFee      decimal.Decimal
	Total           decimal.Decimal
	TotalCO2Savings decimal.Decimal
	ItemCount       int
}

// Calculate prices lines with an optional promo
func Calculate(lines []model.CartLine, promo *model.PromoCode, fees Fees) Breakdown {
	b := Breakdown{
		Subtotal:        decimal.Zero,
		TotalSavings:    decimal.Zero,
		PromoDiscount:   decimal.Zero,
		TotalCO2Savings: decimal.Zero,
		DeliveryFee:     fees.Delivery,
		ServiceFee:      fees.Service,
	}

	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		price := decimal.NewFromFloat(line.Price)
		original := price
		if line.OriginalPrice > 0 {
			original = decimal.NewFromFloat(line.OriginalPrice)
		}

		b.Subtotal = b.Subtotal.Add(price.Mul(qty))
		b.TotalSavings = b.TotalSavings.Add(original.Sub(price).Mul(qty))
		b.TotalCO2Savings = b.TotalCO2Savings.Add(decimal.NewFromFloat(line.CO2Savings).Mul(qty))
		b.ItemCount += line.Quantity
	}

	if promo != nil {
		b.PromoDiscount = b.Subtotal.Mul(decimal.NewFromInt(int64(promo.Percentage))).Div(hundred)
	}

	b.Total = b.Subtotal.Sub(b.PromoDiscount).Add(b.DeliveryFee).Add(b.ServiceFee)
	return b
}

// Summary rounds every amount to cents for display
func (b Breakdown) Summary() model.PriceSummary {
	cents := func(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }
	return model.PriceSummary{
		Subtotal:        cents(b.Subtotal),
		TotalSavings:    cents(b.TotalSavings),
		PromoDiscount:   cents(b.PromoDiscount),
		DeliveryFee:     cents(b.DeliveryFee),
		ServiceFee:      cents(b.ServiceFee),
		Total:           cents(b.Total),
		TotalCO2Savings: cents(b.TotalCO2Savings),
		ItemCount:       b.ItemCount,
	}
}
