// Package namecmp implements the name-comparison half of the lazy detail
// layer (spec.md §4.D): RDN-sequence equality for issuer/subject matching
// and self-issued detection, and the DNS wildcard matcher used for
// hostname verification.
package namecmp

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// foldString applies Unicode case-folding (via golang.org/x/text/cases,
// rather than ASCII-only strings.ToUpper/ToLower) and collapses runs of
// whitespace to a single space, the comparator spec.md §4.D requires for
// PrintableString/UTF8String/TeletexString/IA5String/BMPString attribute
// values.
func foldString(s string) string {
	return strings.Join(strings.Fields(folder.String(s)), " ")
}
