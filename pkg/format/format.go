// Package format holds the display helpers shared by the page
// routes: en-IN currency and date rendering, text truncation and
// slug generation.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Price renders an INR amount with Indian digit grouping and no
// fraction digits, e.g. Price(499) == "₹499".
func Price(v float64) string {
	d := number.Decimal(
		math.Round(v),
		number.MaxFractionDigits(0),
		number.MinFractionDigits(0),
	)
	return printer.Sprintf("₹%v", d)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Date renders a backend timestamp as a long en-IN date,
// e.g. "2 January 2006".
func Date(s string) (string, error) {
	const op = "format.Date"

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Format("2 January 2006"), nil
		}
	}
	return "", fmt.Errorf("%s: unrecognized date %q", op, s)
}

// Truncate shortens s to max runes, appending "..." only when
// something was cut.
func Truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max]) + "..."
}

var (
	nonWordRe = regexp.MustCompile(`[^\w ]+`)
	spacesRe  = regexp.MustCompile(` +`)
)

// Slugify lowercases s, drops non-word characters and joins the
// words with hyphens.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonWordRe.ReplaceAllString(s, "")
	return spacesRe.ReplaceAllString(s, "-")
}
