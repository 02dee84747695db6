// Package order accumulates the lines of one call's in-room dining
// order and computes its totals.
package order

import (
	"fmt"
	"strings"
)

// Pricing constants applied to every order.
const (
	ServiceChargePercent = 20.0
	DeliveryFee          = 6.0
)

// Line is one ordered menu item. Quantity is always 1: repeated adds of
// the same item append new lines rather than incrementing.
type Line struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Totals is the breakdown of an order's price. Always recomputed from
// the current lines; never cached across mutations.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	ServiceCharge float64 `json:"serviceCharge"`
	DeliveryFee   float64 `json:"deliveryFee"`
	GrandTotal    float64 `json:"grandTotal"`
}

// Ledger is the append-only order for a single call. It is not safe for
// concurrent use; utterances within a call are strictly sequential and
// the owning session serializes access.
type Ledger struct {
	lines []Line
}

// Append adds a line at the end of the order. No merge with existing
// identical items.
func (l *Ledger) Append(name string, unitPrice float64) {
	l.lines = append(l.lines, Line{Name: name, UnitPrice: unitPrice, Quantity: 1})
}

// Lines returns a copy of the current order lines.
func (l *Ledger) Lines() []Line {
	return append([]Line{}, l.lines...)
}

// Len returns the number of order lines.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// IsEmpty reports whether the order has no lines.
func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

// Clear empties the order. Called only as part of a successful finalize.
func (l *Ledger) Clear() {
	l.lines = nil
}

// Total recomputes the price breakdown from the current lines.
func (l *Ledger) Total() Totals {
	var subtotal float64
	for _, line := range l.lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	charge := subtotal * ServiceChargePercent / 100
	return Totals{
		Subtotal:      subtotal,
		ServiceCharge: charge,
		DeliveryFee:   DeliveryFee,
		GrandTotal:    subtotal + charge + DeliveryFee,
	}
}

// Text renders the order with its totals for the responder context.
func (l *Ledger) Text() string {
	if len(l.lines) == 0 {
		return "No items in current order."
	}
	var b strings.Builder
	b.WriteString("Current order:\n")
	for _, line := range l.lines {
		fmt.Fprintf(&b, "- %s - $%.2f\n", line.Name, line.UnitPrice)
	}
	t := l.Total()
	fmt.Fprintf(&b, "Subtotal: $%.2f\n", t.Subtotal)
	fmt.Fprintf(&b, "Service charge (%.0f%%): $%.2f\n", ServiceChargePercent, t.ServiceCharge)
	fmt.Fprintf(&b, "Delivery fee: $%.2f\n", t.DeliveryFee)
	fmt.Fprintf(&b, "Total: $%.2f", t.GrandTotal)
	return b.String()
}
