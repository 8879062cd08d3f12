package rainfall

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the proleptic Gregorian rule to a 1-based synthetic year:
// divisible by 4, except centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the length of a synthetic year (365 or 366).
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// MonthOfDay maps a 1-based day-of-year to (month 1-12, day-in-month), with
// February stretched to 29 days in leap years. Out-of-range days degrade to
// December rather than failing.
func MonthOfDay(dayOfYear, year int) (month, dayInMonth int) {
	rem := dayOfYear
	for idx, md := range monthDays {
		if idx == 1 && IsLeapYear(year) {
			md = 29
		}
		if rem > md {
			rem -= md
			continue
		}
		return idx + 1, rem
	}
	return 12, rem
}
