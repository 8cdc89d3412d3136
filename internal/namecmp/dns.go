package namecmp

import "strings"

// MatchDNS matches a dNSName from a certificate's SubjectAltName (or its
// CN fallback) against a candidate hostname. A trailing dot on either
// side is ignored. A bare pattern requires case-insensitive exact
// equality. A "*." prefix matches any candidate that has at least one
// label before a dot and whose suffix from that dot equals the
// pattern's suffix: "*.example.com" matches "www.example.com" but not
// bare "example.com".
func MatchDNS(pattern, candidate string) bool {
	pattern = strings.TrimSuffix(pattern, ".")
	candidate = strings.TrimSuffix(candidate, ".")
	if pattern == "" || candidate == "" {
		return false
	}

	if !strings.HasPrefix(pattern, "*.") {
		return strings.EqualFold(pattern, candidate)
	}

	k := strings.IndexByte(candidate, '.')
	if k <= 0 {
		return false
	}
	return strings.EqualFold(pattern[1:], candidate[k:])
}
