package verify

import "github.com/trailcert/x509chain/internal/certcache"

// RestartKind tags which suspension variant a RestartState holds, the
// tagged union spec.md §9 calls for in place of the original's
// goto-into-the-middle-of-a-loop pattern.
type RestartKind int

const (
	// RestartNone means no verification is in progress.
	RestartNone RestartKind = iota
	// RestartInFindParent means find-parent suspended mid-scan over a
	// candidate list.
	RestartInFindParent
	// RestartInSignatureVerify means a single signature check
	// suspended on an incremental-operation backend.
	RestartInSignatureVerify
)

// RestartState is the caller-owned suspension snapshot of spec.md
// §4.E.7. The Go standard library's signature primitives (rsa, ecdsa,
// ed25519) complete synchronously, so RestartInSignatureVerify is never
// actually produced by this implementation; the variant and its fields
// exist so a future backend that does support incremental elliptic-curve
// operations has somewhere to resume from without changing the call
// contract. See DESIGN.md.
type RestartState struct {
	Kind RestartKind

	// InFindParent fields.
	ScanIndex    int
	ScanTop      bool // true while still scanning trusted roots
	Fallback     *certcache.Certificate
	FallbackGood bool

	// Carried across the whole find-parent call regardless of kind.
	PathCnt  int
	SelfCnt  int
	ChainLen int
}
