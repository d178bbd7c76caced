package services

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/eshwarmore1993/invoice-generator/internal/core/domain"
)

// Grouping is the digit grouping used when spelling numbers.
type Grouping int

const (
	// GroupingInternational groups by thousands: thousand, million, billion.
	GroupingInternational Grouping = iota

	// GroupingIndian groups by thousand, lakh (10^5) and crore (10^7).
	GroupingIndian
)

// WordsLocale describes how amounts are spelled out.
type WordsLocale struct {
	// Code is the BCP 47 tag, e.g. "en-IN".
	Code string

	Grouping Grouping

	// CurrencySingular is used for an amount of exactly one.
	CurrencySingular string

	// CurrencyPlural is used for every other amount, zero included.
	CurrencyPlural string

	// Suffix closes the phrase, e.g. "Only".
	Suffix string

	// RowPrefix introduces the words row on the document.
	RowPrefix string
}

// SupportedWordsLocales returns the locales the formatter can spell in.
func SupportedWordsLocales() []WordsLocale {
	return []WordsLocale{
		{
			Code:             "en-IN",
			Grouping:         GroupingIndian,
			CurrencySingular: "Rupee",
			CurrencyPlural:   "Rupees",
			Suffix:           "Only",
			RowPrefix:        "Rs In words: ",
		},
		{
			Code:             "en-US",
			Grouping:         GroupingInternational,
			CurrencySingular: "Dollar",
			CurrencyPlural:   "Dollars",
			Suffix:           "Only",
			RowPrefix:        "Amount in words: ",
		},
	}
}

// Formatter converts raw values into display strings.
// It is immutable and safe for concurrent use.
type Formatter struct {
	locale WordsLocale
}

// NewFormatter creates a formatter for the given words locale.
// Codes are matched loosely ("en_IN", "en-in"); an unsupported locale
// returns an error matching domain.ErrConversion.
func NewFormatter(localeCode string) (*Formatter, error) {
	locale, err := ResolveWordsLocale(localeCode)
	if err != nil {
		return nil, err
	}
	return &Formatter{locale: locale}, nil
}

// ResolveWordsLocale finds the supported locale closest to code.
func ResolveWordsLocale(code string) (WordsLocale, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return WordsLocale{}, localeError(code, "unparseable locale")
	}

	locales := SupportedWordsLocales()
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = language.MustParse(l.Code)
	}

	_, index, confidence := language.NewMatcher(tags).Match(tag)
	if confidence < language.High {
		return WordsLocale{}, localeError(code, "unsupported locale")
	}
	return locales[index], nil
}

// Locale returns the words locale in use.
func (f *Formatter) Locale() WordsLocale {
	return f.locale
}

// RoundAmount rounds half away from zero to a whole currency unit.
// Every rounded figure on the document goes through this function.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0)
}

// FormatCurrency renders an amount as a whole number without separators or
// symbol. The output always parses back as an integer.
func (f *Formatter) FormatCurrency(amount decimal.Decimal) string {
	return RoundAmount(amount).StringFixed(0)
}

// FormatQuantity renders a quantity as entered, without rounding.
func (f *Formatter) FormatQuantity(quantity decimal.Decimal) string {
	return quantity.String()
}

// FormatDate renders YYYY/M/D without zero padding.
func (f *Formatter) FormatDate(date time.Time) string {
	return fmt.Sprintf("%d/%d/%d", date.Year(), int(date.Month()), date.Day())
}

// AmountInWords spells a whole amount with the currency name and suffix,
// e.g. "Ninety Five Thousand One Hundred Four Rupees Only".
// Negative amounts return an error matching domain.ErrConversion.
func (f *Formatter) AmountInWords(amount int64) (string, error) {
	if amount < 0 {
		return "", &domain.ConversionError{Amount: fmt.Sprint(amount), Reason: "negative amount"}
	}

	currency := f.locale.CurrencyPlural
	if amount == 1 {
		currency = f.locale.CurrencySingular
	}

	var words string
	switch f.locale.Grouping {
	case GroupingIndian:
		words = spellIndian(uint64(amount))
	default:
		words = spellInternational(uint64(amount))
	}

	return words + " " + currency + " " + f.locale.Suffix, nil
}

// AmountInWordsDecimal spells a decimal amount. The amount must be whole and
// fit in an int64.
func (f *Formatter) AmountInWordsDecimal(amount decimal.Decimal) (string, error) {
	if !amount.Equal(amount.Truncate(0)) {
		return "", &domain.ConversionError{Amount: amount.String(), Reason: "fractional amount"}
	}
	if amount.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return "", &domain.ConversionError{Amount: amount.String(), Reason: "amount out of range"}
	}
	return f.AmountInWords(amount.IntPart())
}

// WordsRow returns the text printed on the words row.
func (f *Formatter) WordsRow(words string) string {
	return f.locale.RowPrefix + words
}

func localeError(code, reason string) error {
	return &domain.ConversionError{Amount: fmt.Sprintf("locale %q", code), Reason: reason}
}
