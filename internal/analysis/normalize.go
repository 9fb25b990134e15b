// Package analysis joins the per-source result sets and computes their
// intersection by company identity.
package analysis

import (
	"strings"
	"unicode"

	"github.com/mgrube/employerstocks/internal/models"
)

// Some employers on the lists are private companies or subsidiaries with no
// resolvable ticker; the normalized name keeps those comparable across
// sources. Stripping stops once a single token remains so names like
// "The Company" do not collapse to nothing.
var corporateSuffixes = map[string]struct{}{
	"inc":          {},
	"incorporated": {},
	"corp":         {},
	"corporation":  {},
	"co":           {},
	"company":      {},
	"ltd":          {},
	"limited":      {},
	"llc":          {},
	"llp":          {},
	"lp":           {},
	"plc":          {},
	"group":        {},
	"holdings":     {},
}

// NormalizeName case-folds, trims, drops punctuation and strips trailing
// corporate suffix tokens, so "Acme Corp." and "ACME CORP" compare equal.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	for len(fields) > 1 {
		if _, ok := corporateSuffixes[fields[len(fields)-1]]; !ok {
			break
		}
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

// IdentityKey is the cross-source identity of one entry: the ticker when
// resolution succeeded, otherwise the normalized company name. The prefixes
// keep the two namespaces from colliding.
func IdentityKey(s models.Snapshot) string {
	if s.Ticker != "" {
		return "ticker:" + strings.ToUpper(s.Ticker)
	}
	return "name:" + NormalizeName(s.CompanyName)
}
