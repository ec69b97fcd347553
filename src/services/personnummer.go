package services

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var personnummerRx = regexp.MustCompile(`^\d{11}$`)

// ValidPersonnummer reports whether pn is exactly 11 digits.
func ValidPersonnummer(pn string) bool {
	return personnummerRx.MatchString(pn)
}

// AgeFromPersonnummer derives age at the given reference time from the
// personnummer's first six digits (DDMMYY).
//
// The century is resolved heuristically: a two-digit year greater than the
// reference year's last two digits is taken as 1900s, otherwise 2000s. A
// value exactly at the boundary resolves to the 2000s, which can be wrong
// for a centenarian born in the reference year minus 100.
func AgeFromPersonnummer(pn string, now time.Time) (int, error) {
	if len(pn) < 6 {
		return 0, fmt.Errorf("personnummer too short: %d digits", len(pn))
	}

	day, err := strconv.Atoi(pn[0:2])
	if err != nil {
		return 0, fmt.Errorf("invalid day in personnummer: %w", err)
	}
	month, err := strconv.Atoi(pn[2:4])
	if err != nil {
		return 0, fmt.Errorf("invalid month in personnummer: %w", err)
	}
	yearShort, err := strconv.Atoi(pn[4:6])
	if err != nil {
		return 0, fmt.Errorf("invalid year in personnummer: %w", err)
	}

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid birth date in personnummer: %02d.%02d", day, month)
	}

	currentYear := now.Year()
	birthYear := 2000 + yearShort
	if yearShort > currentYear%100 {
		birthYear = 1900 + yearShort
	}

	age := currentYear - birthYear
	if int(now.Month()) < month || (int(now.Month()) == month && now.Day() < day) {
		age--
	}

	return age, nil
}
