package pressimport

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// NearReleaseWindow is how close (in bytes) a date must be to "For Immediate Release" to be preferred
const NearReleaseWindow = 200

// IsValidDate accepts years 2000 through 2100
func IsValidDate(t time.Time) bool {
	return !t.IsZero() && t.Year() >= 2000 && t.Year() <= 2100
}

// MakeDate builds a UTC date and reports false when the parts do not form a real calendar day.
func MakeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// ParseISODate parses YYYY-MM-DD and applies IsValidDate
func ParseISODate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil || !IsValidDate(t) {
		return time.Time{}, false
	}
	return t, true
}

var filenameDatePatterns = []struct {
	re                       *regexp.Regexp
	yearIdx, monthIdx, dayIdx int
}{
	{regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`), 1, 2, 3},
	{regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`), 3, 1, 2},
	{regexp.MustCompile(`(\d{4})_(\d{2})_(\d{2})`), 1, 2, 3},
}

// DateFromFilename looks for YYYY-MM-DD, MM/DD/YYYY or YYYY_MM_DD in name.
func DateFromFilename(name string) (time.Time, bool) {
	for _, p := range filenameDatePatterns {
		m := p.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[p.yearIdx])
		month, _ := strconv.Atoi(m[p.monthIdx])
		day, _ := strconv.Atoi(m[p.dayIdx])
		if t, ok := MakeDate(year, month, day); ok && IsValidDate(t) {
			return t, true
		}
	}
	return time.Time{}, false
}

// Candidate is a date-like fragment found in release text
type Candidate struct {
	Text  string
	Index int
	Date  time.Time
	Valid bool
}

type contentPattern struct {
	re *regexp.Regexp
	// dayFirst marks "30 June 2024" where the month word is the second group
	dayFirst bool
}

var contentDatePatterns = []contentPattern{
	{re: regexp.MustCompile(`(?i)(?:Date|Dated?|Published?|For Immediate Release)[:\s]+(\w+)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`)},
	{re: regexp.MustCompile(`(\w+)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`)},
	{re: regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)},
	{re: regexp.MustCompile(`(\d{1,2})\s+(\w+)\s+(\d{4})`), dayFirst: true},
}

var monthNames = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

// monthFromWord accepts full month names and prefixes of at least three letters ("Sept", "Nov").
func monthFromWord(word string) (int, bool) {
	w := strings.ToLower(word)
	if len(w) < 3 {
		return 0, false
	}
	for i, name := range monthNames {
		if strings.HasPrefix(name, w) {
			return i + 1, true
		}
	}
	return 0, false
}

// FindDateCandidates collects every date-like fragment of content in pattern
// priority order. Numeric forms are read as month/day unless the first number
// exceeds 12.
func FindDateCandidates(content string) []Candidate {
	var candidates []Candidate

	for _, p := range contentDatePatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(content, -1) {
			groups := make([]string, 4)
			for g := 0; g < 4; g++ {
				groups[g] = content[loc[2*g]:loc[2*g+1]]
			}
			year, err := strconv.Atoi(groups[3])
			if err != nil {
				continue
			}

			c := Candidate{Text: groups[0], Index: loc[0]}

			monthWord, dayWord := groups[1], groups[2]
			if p.dayFirst {
				monthWord, dayWord = groups[2], groups[1]
			}

			if month, ok := monthFromWord(monthWord); ok {
				day, err := strconv.Atoi(dayWord)
				if err != nil {
					continue
				}
				c.Date, c.Valid = MakeDate(year, month, day)
			} else {
				first, err1 := strconv.Atoi(groups[1])
				second, err2 := strconv.Atoi(groups[2])
				if err1 != nil || err2 != nil {
					continue
				}
				month, day := first, second
				if first > 12 {
					month, day = second, first
				}
				c.Date, c.Valid = MakeDate(year, month, day)
			}

			c.Valid = c.Valid && IsValidDate(c.Date)
			candidates = append(candidates, c)
		}
	}

	return candidates
}

// PickContentDate chooses among candidates: the first valid one within
// NearReleaseWindow of "For Immediate Release" wins, otherwise the first valid one.
func PickContentDate(content string, candidates []Candidate) (time.Time, bool) {
	var valid []Candidate
	for _, c := range candidates {
		if c.Valid {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return time.Time{}, false
	}

	if releaseIdx := strings.Index(strings.ToLower(content), "for immediate release"); releaseIdx >= 0 {
		for _, c := range valid {
			if abs(c.Index-releaseIdx) < NearReleaseWindow {
				return c.Date, true
			}
		}
	}

	return valid[0].Date, true
}

// InvalidCandidates returns the candidates that failed validation, for AI repair
func InvalidCandidates(candidates []Candidate) []Candidate {
	var invalid []Candidate
	for _, c := range candidates {
		if !c.Valid {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
