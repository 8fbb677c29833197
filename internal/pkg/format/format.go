// Package format renders damage numbers for terminal output
package format

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Japanese)

// Number groups digits in threes: 1000000 -> "1,000,000"
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Float renders v with a fixed number of decimal places and no grouping
func Float(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// Percent renders a fraction as a percentage: 0.1234 -> "12.34%"
func Percent(v float64, digits int) string {
	return Float(v*100, digits) + "%"
}
