package services

import "strings"

var (
	smallNumbers = [...]string{
		"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tensNumbers = [...]string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
	internationalScales = [...]string{
		"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion", "Quintillion",
	}
)

// spellBelowThousand appends the words for 1..999 to parts.
func spellBelowThousand(n uint64, parts []string) []string {
	if n >= 100 {
		parts = append(parts, smallNumbers[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, smallNumbers[n])
	default:
		parts = append(parts, tensNumbers[n/10])
		if n%10 != 0 {
			parts = append(parts, smallNumbers[n%10])
		}
	}
	return parts
}

// spellIndian spells n with crore, lakh and thousand groups.
// Amounts of a hundred crore and above repeat the grouping before "Crore".
func spellIndian(n uint64) string {
	if n == 0 {
		return smallNumbers[0]
	}
	return strings.Join(appendIndian(n, nil), " ")
}

func appendIndian(n uint64, parts []string) []string {
	if crore := n / 10_000_000; crore > 0 {
		parts = appendIndian(crore, parts)
		parts = append(parts, "Crore")
		n %= 10_000_000
	}
	if lakh := n / 100_000; lakh > 0 {
		parts = spellBelowThousand(lakh, parts)
		parts = append(parts, "Lakh")
		n %= 100_000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = spellBelowThousand(thousand, parts)
		parts = append(parts, "Thousand")
		n %= 1000
	}
	return spellBelowThousand(n, parts)
}

// spellInternational spells n with thousand, million, billion... groups.
func spellInternational(n uint64) string {
	if n == 0 {
		return smallNumbers[0]
	}

	var groups []uint64
	for v := n; v > 0; v /= 1000 {
		groups = append(groups, v%1000)
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		parts = spellBelowThousand(groups[i], parts)
		if scale := internationalScales[i]; scale != "" {
			parts = append(parts, scale)
		}
	}
	return strings.Join(parts, " ")
}
