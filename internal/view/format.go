package view

import (
	"fmt"
	"strconv"
)

// Millions renders dollars as "$2.5M" with the given number of decimals.
func Millions(dollars float64, decimals int) string {
	return fmt.Sprintf("$%.*fM", decimals, dollars/1_000_000)
}

// Number renders v in its shortest form: 28 -> "28", 4.25 -> "4.25".
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ZoningLabel(tag string) string {
	if tag == "all" {
		return "All Zoning Types"
	}
	return tag
}

// Percent renders a map coordinate as a CSS percentage.
func Percent(v float64) string {
	return Number(v) + "%"
}
