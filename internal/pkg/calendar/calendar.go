// Package calendar converts dates between the Jalali (Persian) calendar used
// for input and display and the Gregorian calendar used for storage.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// Placeholder is rendered for empty dates.
const Placeholder = "—"

// Smallest year treated as Gregorian. Jalali years in use are 13xx/14xx.
const minGregorianYear = 1700

const isoLayout = "2006-01-02"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var digitReplacer = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// NormalizeDigits maps Persian and Arabic-Indic digits to ASCII and trims
// surrounding whitespace.
func NormalizeDigits(s string) string {
	return strings.TrimSpace(digitReplacer.Replace(s))
}

// leadingYear returns the numeric part before the first dash, 0 if none.
func leadingYear(dashed string) int {
	year, err := strconv.Atoi(strings.SplitN(dashed, "-", 2)[0])
	if err != nil {
		return 0
	}
	return year
}

func toDashed(s string) string {
	return strings.NewReplacer(".", "-", "/", "-").Replace(NormalizeDigits(s))
}

// IsGregorianDate reports whether s looks like YYYY-MM-DD (any of - . /
// as separator) with a year of at least 1700.
func IsGregorianDate(s string) bool {
	d := toDashed(s)
	if !isoDatePattern.MatchString(d) {
		return false
	}
	year, _ := strconv.Atoi(d[:4])
	return year >= minGregorianYear
}

// ToJalali renders a stored Gregorian date as YYYY/MM/DD in the Jalali
// calendar. Empty or unparseable input yields Placeholder.
func ToJalali(gregorianISO string) string {
	s := NormalizeDigits(gregorianISO)
	if len(s) > 10 && s[10] == 'T' {
		s = s[:10]
	}
	if s == "" {
		return Placeholder
	}
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Placeholder
	}
	jy, jm, jd, err := GregorianToJalali(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return Placeholder
	}
	return fmt.Sprintf("%04d/%02d/%02d", jy, jm, jd)
}

// ToJalaliPtr is ToJalali for nullable columns.
func ToJalaliPtr(gregorianISO *string) string {
	if gregorianISO == nil {
		return Placeholder
	}
	return ToJalali(*gregorianISO)
}

// FromJalali converts YYYY/MM/DD (also accepting - and . as separators and
// localized digits) into a Gregorian YYYY-MM-DD string.
func FromJalali(jalali string) (string, error) {
	s := strings.NewReplacer("-", "/", ".", "/").Replace(NormalizeDigits(jalali))
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: jalali date %q must have year, month and day", apperrors.ErrValidationFailed, jalali)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n == 0 {
			return "", fmt.Errorf("%w: jalali date %q has a missing or invalid component", apperrors.ErrValidationFailed, jalali)
		}
		nums[i] = n
	}

	gy, gm, gd, err := JalaliToGregorian(nums[0], nums[1], nums[2])
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	return fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd), nil
}

// PrepareDate turns raw user input in either calendar into a Gregorian
// YYYY-MM-DD string. Nil or blank input yields nil. A zero-padded date with a
// year of 1700 or later is Gregorian with any separator. Other slashed input,
// and dashed input with an earlier year, is Jalali and must have a year below
// 1700.
func PrepareDate(input *string, fieldLabel string) (*string, error) {
	if input == nil {
		return nil, nil
	}
	raw := NormalizeDigits(*input)
	if raw == "" {
		return nil, nil
	}

	dashed := toDashed(raw)
	if !IsGregorianDate(dashed) && (strings.Contains(raw, "/") || isoDatePattern.MatchString(dashed)) {
		if leadingYear(dashed) >= minGregorianYear {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s has an invalid Jalali date", fieldLabel))
		}
		converted, err := FromJalali(raw)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s has an invalid Jalali date", fieldLabel))
		}
		return &converted, nil
	}

	if !isoDatePattern.MatchString(dashed) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be in YYYY-MM-DD format", fieldLabel))
	}
	if _, err := time.Parse(isoLayout, dashed); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s is not a valid date", fieldLabel))
	}
	return &dashed, nil
}
