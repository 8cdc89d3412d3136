package verify

import "strings"

// Flags is the 32-bit defect word spec.md §6 defines. Every bit below
// reproduces the canonical meaning the table assigns it.
type Flags uint32

const (
	BadCertExpired      Flags = 1 << iota // valid_to is in the past
	BadCertRevoked                        // child serial present in a matching CRL
	BadCertCNMismatch                     // no DNS name matched
	BadCertNotTrusted                     // no path to a trust anchor (or signature failed on a link)
	BadCRLNotTrusted                      // a required CRL did not verify
	BadCRLExpired                         // next_update past
	BadCertMissing                        // chain truncated
	BadCertSkipVerify                     // verification was deliberately bypassed
	BadCertFuture                         // valid_from in the future
	BadCRLFuture                          // this_update in the future
	BadCertKeyUsage                       // key-usage check failed
	BadCertExtKeyUsage                    // extended-key-usage check failed
	BadCertNSCertType                     // Netscape cert type mismatch
	BadCertBadMD                          // hash not in profile
	BadCertBadPK                          // PK alg not in profile
	BadCertBadKey                         // key strength/curve not in profile
	BadCRLBadMD                           // same, for CRL
	BadCRLBadPK
	BadCRLBadKey
	BadCertOther // reserved for the verdict callback
)

var names = []struct {
	bit  Flags
	name string
}{
	{BadCertExpired, "BADCERT_EXPIRED"},
	{BadCertRevoked, "BADCERT_REVOKED"},
	{BadCertCNMismatch, "BADCERT_CN_MISMATCH"},
	{BadCertNotTrusted, "BADCERT_NOT_TRUSTED"},
	{BadCRLNotTrusted, "BADCRL_NOT_TRUSTED"},
	{BadCRLExpired, "BADCRL_EXPIRED"},
	{BadCertMissing, "BADCERT_MISSING"},
	{BadCertSkipVerify, "BADCERT_SKIP_VERIFY"},
	{BadCertFuture, "BADCERT_FUTURE"},
	{BadCRLFuture, "BADCRL_FUTURE"},
	{BadCertKeyUsage, "BADCERT_KEY_USAGE"},
	{BadCertExtKeyUsage, "BADCERT_EXT_KEY_USAGE"},
	{BadCertNSCertType, "BADCERT_NS_CERT_TYPE"},
	{BadCertBadMD, "BADCERT_BAD_MD"},
	{BadCertBadPK, "BADCERT_BAD_PK"},
	{BadCertBadKey, "BADCERT_BAD_KEY"},
	{BadCRLBadMD, "BADCRL_BAD_MD"},
	{BadCRLBadPK, "BADCRL_BAD_PK"},
	{BadCRLBadKey, "BADCRL_BAD_KEY"},
	{BadCertOther, "BADCERT_OTHER"},
}

// Has reports whether bit is set.
func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// Strings renders every set bit's canonical name, in table order. This
// supplements spec.md §6's bit table with the human-readable rendering
// a CLI or log line needs (the original exposes an equivalent info
// string for the same word).
func (f Flags) Strings() []string {
	var out []string
	for _, n := range names {
		if f.Has(n.bit) {
			out = append(out, n.name)
		}
	}
	return out
}

// Error renders f as a comma-joined list of set bit names, or "ok" if
// f is zero. Flags is not a Go error type (verification defects are
// not failures to call), but this mirrors the teacher's one-line
// status-to-string conventions where nothing richer is warranted.
func (f Flags) Error() string {
	if f == 0 {
		return "ok"
	}
	return strings.Join(f.Strings(), ", ")
}

// Status is the three-way outcome of a verification distinct from the
// flag word, per spec.md §7's second error stratum.
type Status int

const (
	// StatusOK means the flag word is zero.
	StatusOK Status = iota
	// StatusVerifyFailed means defects are present in the flag word.
	StatusVerifyFailed
	// StatusFatal means the search could not even complete (chain too
	// long, internal error); the flag word is set to all-ones.
	StatusFatal
)
