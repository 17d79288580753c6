// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPrice formats a rupee amount.
func FormatPrice(rupees int) string {
	return "₹" + strconv.Itoa(rupees)
}

// FormatRating formats a rating with its review count, e.g. "★ 4.5 (128)".
func FormatRating(rating float64, reviews int) string {
	if reviews <= 0 {
		return fmt.Sprintf("★ %.1f", rating)
	}
	return fmt.Sprintf("★ %.1f (%d)", rating, reviews)
}

// Stars renders n filled stars out of five.
func Stars(n int) string {
	n = max(0, min(5, n))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// Pluralize returns "1 item" or "N items".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
