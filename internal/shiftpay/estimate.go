// Package shiftpay extracts per-shift pay mentions from vacancy texts and
// converts them to an estimated monthly salary. Vacancies that quote pay
// per shift are not comparable to monthly salaries without this
// conversion.
package shiftpay

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// fallbackShiftsPerMonth is used when no schedule can be inferred.
	// Matches a 2/2 schedule over a 30-day month.
	fallbackShiftsPerMonth = 15.0
	// weeksPerMonth is the average number of weeks in a month.
	weeksPerMonth = 4.33
	// Sanity bounds for inferred shift counts.
	minShiftsPerMonth = 6.0
	maxShiftsPerMonth = 26.0
)

// Building blocks for the pay patterns. Shift tokens cover common Russian
// forms (смена/см./выход/сутки) and English variants from mixed-language
// posts.
const (
	numPat      = `([0-9][0-9\s.,]{2,})`
	shiftPat    = `(?:смен[ауыея]?|см\.?|выход[а-я]*|сутк[а-я]*|сутох)`
	shiftEnPat  = `(?:per\s*shift|/\s*shift|a\s*shift)`
	rublePat    = `(?:₽|руб\.?|р\.?|rub|rur|rubles?|ruble|рубл(?:ей|я|и|ь)?)`
	thousandPat = `(?:тыс\.?|тысяч|т\.?\s*р\.?|тр|k|к)`
	dashPat     = `[-–—]`
)

// Patterns where a single per-shift amount appears next to an explicit
// per-shift marker.
var simplePayPatterns = []*regexp.Regexp{
	// за смену 3 500, оплата за смену: 4000, за см. 4000
	regexp.MustCompile(`за\s+` + shiftPat + `\s*[:\-–—]?\s*` + numPat),
	// 4500 ₽ за смену, 4500 руб/смена, 4000 в смену
	regexp.MustCompile(numPat + `\s*(?:` + rublePat + `)?\s*(?:/\s*|за\s+|в\s+)` + shiftPat),
	// 4,5 тыс/см. — thousand marker between the number and the shift token
	regexp.MustCompile(numPat + `\s*` + thousandPat + `\s*/\s*` + shiftPat),
	// смена 4500 руб, смена: 4500
	regexp.MustCompile(shiftPat + `\s*[:\-–—]?\s*` + numPat),
	// посменная оплата: 4500, посменно 4500
	regexp.MustCompile(`посмен[а-я]*\s*(?:оплата|ставка)?\s*[:\-–—]?\s*` + numPat),
	// оплата смены: 4500, ставка за смену 4500
	regexp.MustCompile(`(?:оплата|ставка)\s+(?:за\s+)?` + shiftPat + `\s*[:\-–—]?\s*` + numPat),
	// english: 4000 RUB per shift, 4000 per shift
	regexp.MustCompile(numPat + `\s*(?:` + rublePat + `)?\s*` + shiftEnPat),
}

// Patterns for per-shift pay ranges; the midpoint is used.
var rangePayPatterns = []*regexp.Regexp{
	// 4000–5000 руб/смена, 3 500 / 4 500 за смену
	regexp.MustCompile(numPat + `\s*` + dashPat + `\s*` + numPat + `\s*(?:` + rublePat + `)?\s*(?:/\s*|за\s+)` + shiftPat),
	// за смену 4000–5000
	regexp.MustCompile(`за\s+` + shiftPat + `\s*[:\-–—]?\s*` + numPat + `\s*` + dashPat + `\s*` + numPat),
	// смена: 4000–5000
	regexp.MustCompile(shiftPat + `\s*[:\-–—]?\s*` + numPat + `\s*` + dashPat + `\s*` + numPat),
	// посменная оплата: 4000–5000
	regexp.MustCompile(`посмен[а-я]*\s*(?:оплата|ставка)?\s*[:\-–—]?\s*` + numPat + `\s*` + dashPat + `\s*` + numPat),
	// от 4000 до 5000 за смену
	regexp.MustCompile(`от\s*` + numPat + `\s*(?:` + rublePat + `|` + thousandPat + `)?\s*до\s*` + numPat + `\s*(?:` + rublePat + `)?\s*(?:/\s*|за\s+)` + shiftPat),
	// english range: 4000-5000 per shift
	regexp.MustCompile(numPat + `\s*` + dashPat + `\s*` + numPat + `\s*(?:` + rublePat + `)?\s*` + shiftEnPat),
}

// Shift-count patterns, checked in priority order.
var (
	// 18 смен в месяц, 15-20 смен/мес, 18 выходов в месяц
	shiftsPerMonthRe = regexp.MustCompile(`(\d{1,2})\s*(?:` + dashPat + `\s*(\d{1,2}))?\s*(?:смен[аы]?|выход[а-я]*|сутк[а-я]*)\s*(?:в\s*мес[а-я]*|/\s*мес)`)
	// reversed: в мес 20 смен
	monthShiftsRe = regexp.MustCompile(`(?:в\s*мес[а-я]*|/\s*мес)\s*(\d{1,2})\s*(?:смен[аы]?|выход[а-я]*|сутк[а-я]*)`)
	// 3 смены в неделю, 3-4 смены/нед
	shiftsPerWeekRe = regexp.MustCompile(`(\d{1,2})\s*(?:` + dashPat + `\s*(\d{1,2}))?\s*(?:смен[аы]?|выход[а-я]*|сутк[а-я]*)\s*(?:в\s*недел[юи]|/\s*нед)`)
	// schedule ratio: 2/2, 5/2, 1/3
	scheduleRatioRe = regexp.MustCompile(`\b(\d{1,2})\s*/\s*(\d{1,2})\b`)

	daySchedulePhrases = []struct {
		re     *regexp.Regexp
		shifts float64
	}{
		{regexp.MustCompile(`сутки\s+через\s+двое`), 30.0 / 3.0},
		{regexp.MustCompile(`сутки\s+через\s+трое`), 30.0 / 4.0},
		{regexp.MustCompile(`сутки\s+через\s+сутки`), 30.0 / 2.0},
	}

	// A separator followed by a space ends the amount: "3000, 40 смен"
	// quotes 3000 rubles and 40 shifts, not 300040 rubles.
	amountEndRe = regexp.MustCompile(`[.,]\s`)

	spacedGroupedRe   = regexp.MustCompile(`^\d{1,3}(?:\s\d{3})+$`)
	thousandGroupedRe = regexp.MustCompile(`^\d{1,3}[.,]\d{3}$`)
	decimalRe         = regexp.MustCompile(`^\d+[.,]\d+$`)
	digitsRe          = regexp.MustCompile(`^\d+$`)
	thousandMarkerRe  = regexp.MustCompile(thousandPat)
)

// EstimateMonthly scans vacancy texts for per-shift pay and returns the
// estimated monthly salary. The boolean is false when no per-shift pay
// mention is found.
//
// Shift counts come, in priority order, from explicit statements
// ("18 смен в месяц", "3 смены в неделю"), schedule ratios ("2/2") over a
// 30-day month, day-shift phrases ("сутки через двое"), and finally a
// conservative 15 shifts fallback. The result is clamped to a plausible
// 6..26 shifts per month.
func EstimateMonthly(texts ...string) (float64, bool) {
	blob := strings.ToLower(strings.Join(texts, " "))
	blob = strings.ReplaceAll(blob, " ", " ")

	perShift, ok := perShiftPay(blob)
	if !ok {
		return 0, false
	}

	return perShift * shiftsPerMonth(blob), true
}

// perShiftPay extracts the per-shift amount. Range mentions win over
// single amounts; several candidates are averaged.
func perShiftPay(blob string) (float64, bool) {
	var ranges []float64
	for _, re := range rangePayPatterns {
		for _, m := range re.FindAllStringSubmatch(blob, -1) {
			lo, okLo := parseRubleAmount(m[0], m[1])
			hi, okHi := parseRubleAmount(m[0], m[2])
			if okLo && okHi {
				ranges = append(ranges, (lo+hi)/2)
			}
		}
	}

	candidates := ranges
	if len(candidates) == 0 {
		for _, re := range simplePayPatterns {
			for _, m := range re.FindAllStringSubmatch(blob, -1) {
				if v, ok := parseRubleAmount(m[0], m[1]); ok {
					candidates = append(candidates, v)
				}
			}
		}
	}

	if len(candidates) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, v := range candidates {
		sum += v
	}
	return sum / float64(len(candidates)), true
}

func shiftsPerMonth(blob string) float64 {
	shifts, ok := explicitShifts(blob)
	if !ok {
		shifts, ok = scheduleShifts(blob)
	}
	if !ok {
		shifts = fallbackShiftsPerMonth
	}

	if shifts < minShiftsPerMonth {
		shifts = minShiftsPerMonth
	}
	if shifts > maxShiftsPerMonth {
		shifts = maxShiftsPerMonth
	}
	return shifts
}

func explicitShifts(blob string) (float64, bool) {
	if m := shiftsPerMonthRe.FindStringSubmatch(blob); m != nil {
		return rangeMidpoint(m[1], m[2])
	}
	if m := monthShiftsRe.FindStringSubmatch(blob); m != nil {
		return rangeMidpoint(m[1], "")
	}
	if m := shiftsPerWeekRe.FindStringSubmatch(blob); m != nil {
		if perWeek, ok := rangeMidpoint(m[1], m[2]); ok {
			return perWeek * weeksPerMonth, true
		}
	}
	return 0, false
}

func scheduleShifts(blob string) (float64, bool) {
	if m := scheduleRatioRe.FindStringSubmatch(blob); m != nil {
		on, _ := strconv.Atoi(m[1])
		off, _ := strconv.Atoi(m[2])
		if on > 0 && on <= 31 && off > 0 && off <= 31 {
			return 30.0 * float64(on) / float64(on+off), true
		}
	}

	for _, phrase := range daySchedulePhrases {
		if phrase.re.MatchString(blob) {
			return phrase.shifts, true
		}
	}

	return 0, false
}

func rangeMidpoint(lo, hi string) (float64, bool) {
	low, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return 0, false
	}
	if hi == "" {
		return low, true
	}
	high, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return low, true
	}
	return (low + high) / 2, true
}

// parseRubleAmount turns a captured numeric snippet into rubles. It
// understands thousand-grouped forms ("3 500", "3.500"), decimals
// ("4,5") and thousand markers near the number ("4,5 тыс" → 4500).
func parseRubleAmount(full, numeric string) (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(numeric, " ", " "))
	if idx := amountEndRe.FindStringIndex(s); idx != nil {
		s = strings.TrimSpace(s[:idx[0]])
	}

	var base float64
	switch {
	case spacedGroupedRe.MatchString(s):
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, " ", ""), 64)
		if err != nil {
			return 0, false
		}
		base = v
	case thousandGroupedRe.MatchString(s):
		cleaned := strings.NewReplacer(".", "", ",", "").Replace(s)
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		base = v
	case decimalRe.MatchString(s):
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil {
			return 0, false
		}
		base = v
	default:
		cleaned := strings.NewReplacer(" ", "", ",", "", ".", "").Replace(s)
		if !digitsRe.MatchString(cleaned) {
			return 0, false
		}
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		base = v
	}

	// A thousand marker near the number means the value is in thousands.
	if base <= 1000 && thousandMarkerRe.MatchString(strings.ToLower(full)) {
		return base * 1000, true
	}
	return base, true
}
