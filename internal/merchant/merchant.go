// Package merchant maps raw transaction descriptions to canonical vendor
// labels via an ordered first-match rule table.
package merchant

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// rule pairs a compiled pattern with either a literal label or an instruction
// to extract capture group 1 from the match.
type rule struct {
	re      *regexp.Regexp
	label   string
	capture bool
}

// Rules are ordered most specific first; the first match wins. Patterns are
// matched against the uppercased description, as substring searches.
var rules = []rule{
	{re: regexp.MustCompile(`AMAZON|AMZN`), label: "Amazon"},
	{re: regexp.MustCompile(`TESCO`), label: "Tesco"},
	{re: regexp.MustCompile(`EBAY`), label: "eBay"},
	{re: regexp.MustCompile(`GOOGLE.*YOUTUBE`), label: "Google YouTube Premium"},
	{re: regexp.MustCompile(`UBER`), label: "Uber"},
	{re: regexp.MustCompile(`STARBUCKS`), label: "Starbucks"},
	{re: regexp.MustCompile(`PANDA EXPRESS`), label: "Panda Express"},
	{re: regexp.MustCompile(`SAFEWAY`), label: "Safeway"},
	{re: regexp.MustCompile(`CIRCUIT GO`), label: "Circuit Laundry"},
	{re: regexp.MustCompile(`SUMUP \*\* (.*)`), capture: true},
	{re: regexp.MustCompile(`SQ \*(.*)`), capture: true},
	{re: regexp.MustCompile(`TIM HORTONS`), label: "Tim Hortons"},
	{re: regexp.MustCompile(`UNIVERSITY COLLEGE|STEPHENSON COLLEGE|DURHAM STUDENTS`), label: "Durham University"},
	{re: regexp.MustCompile(`CAPITAL ONE.*PYMT`), label: "Capital One Payment"},
	{re: regexp.MustCompile(`INTERNET PAYMENT|DIRECTPAY`), label: "Bank Payment"},
	{re: regexp.MustCompile(`CASH BACK|CASHBACK|REWARD`), label: "Cash Back / Rewards"},
}

// Classify returns the canonical vendor label for a raw description. It never
// fails: unmatched descriptions fall back to a title-cased copy of the input,
// and blank input yields "Unknown". Literal labels are returned verbatim;
// captured labels are trimmed and title-cased.
func Classify(description string) string {
	upper := strings.ToUpper(description)

	for _, r := range rules {
		if r.capture {
			if m := r.re.FindStringSubmatch(upper); m != nil {
				if name := strings.TrimSpace(m[1]); name != "" {
					return titleCase(name)
				}
				return "Unknown"
			}
			continue
		}
		if r.re.MatchString(upper) {
			return r.label
		}
	}

	if strings.TrimSpace(upper) == "" {
		return "Unknown"
	}
	return titleCase(upper)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
