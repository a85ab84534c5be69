// Package numwords spells out amounts using the Indian numbering system
// (crore, lakh, thousand, hundred).
package numwords

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
	hundred  = 100
)

var (
	ones = [...]string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tens = [...]string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}

	indianPrinter = message.NewPrinter(language.MustParse("en-IN"))
)

// ToWords spells n, e.g. 1234567 → "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven".
func ToWords(n uint64) string {
	if n == 0 {
		return "Zero"
	}
	return strings.Join(strings.Fields(words(n)), " ")
}

func words(n uint64) string {
	var b strings.Builder
	if n >= crore {
		// crore counts above 99 are spelled recursively: "One Hundred Crore"
		b.WriteString(words(n / crore))
		b.WriteString(" Crore ")
		n %= crore
	}
	if n >= lakh {
		b.WriteString(belowHundred(n / lakh))
		b.WriteString(" Lakh ")
		n %= lakh
	}
	if n >= thousand {
		b.WriteString(belowHundred(n / thousand))
		b.WriteString(" Thousand ")
		n %= thousand
	}
	if n >= hundred {
		b.WriteString(ones[n/hundred])
		b.WriteString(" Hundred ")
		n %= hundred
		if n > 0 {
			b.WriteString("and ")
		}
	}
	if n > 0 {
		b.WriteString(belowHundred(n))
	}
	return b.String()
}

func belowHundred(n uint64) string {
	if n < 20 {
		return ones[n]
	}
	return strings.TrimSpace(tens[n/10] + " " + ones[n%10])
}

// RupeesInWords returns the compliance wording of an amount, e.g. "Rupees Forty Five Thousand Only".
func RupeesInWords(n uint64) string {
	return "Rupees " + ToWords(n) + " Only"
}

// FormatRupees returns the amount in figures with en-IN digit grouping, e.g. "Rs. 12,34,567".
func FormatRupees(n uint64) string {
	return indianPrinter.Sprintf("Rs. %d", n)
}
