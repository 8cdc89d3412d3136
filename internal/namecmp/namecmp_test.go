package namecmp_test

import (
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailcert/x509chain/internal/frame"
	"github.com/trailcert/x509chain/internal/namecmp"
	"github.com/trailcert/x509chain/internal/testfixtures"
)

func decodePEM(t *testing.T, pemText string) []byte {
	t.Helper()
	block, _ := pem.Decode([]byte(pemText))
	require.NotNil(t, block)
	return block.Bytes
}

func TestEqualNames_IssuerMatchesIssuerSubject(t *testing.T) {
	leaf := decodePEM(t, testfixtures.LeafPEM)
	inter := decodePEM(t, testfixtures.IntermediateCAPEM)

	lf, err := frame.Parse(leaf, frame.DefaultOptions)
	require.Nil(t, err)
	interF, err2 := frame.Parse(inter, frame.DefaultOptions)
	require.Nil(t, err2)

	issuerAtoms, ierr := namecmp.ParseRDNs(leaf, lf.IssuerRaw)
	require.Nil(t, ierr)
	subjectAtoms, serr := namecmp.ParseRDNs(inter, interF.SubjectRaw)
	require.Nil(t, serr)

	assert.True(t, namecmp.EqualNames(leaf, issuerAtoms, inter, subjectAtoms))
}

func TestEqualNames_UnrelatedNamesDiffer(t *testing.T) {
	leaf := decodePEM(t, testfixtures.LeafPEM)
	other := decodePEM(t, testfixtures.UnrelatedRootPEM)

	lf, err := frame.Parse(leaf, frame.DefaultOptions)
	require.Nil(t, err)
	otherF, err2 := frame.Parse(other, frame.DefaultOptions)
	require.Nil(t, err2)

	issuerAtoms, ierr := namecmp.ParseRDNs(leaf, lf.IssuerRaw)
	require.Nil(t, ierr)
	subjectAtoms, serr := namecmp.ParseRDNs(other, otherF.SubjectRaw)
	require.Nil(t, serr)

	assert.False(t, namecmp.EqualNames(leaf, issuerAtoms, other, subjectAtoms))
}

func TestEqualNames_SelfIssuedRootMatchesItself(t *testing.T) {
	root := decodePEM(t, testfixtures.RootCAPEM)
	rf, err := frame.Parse(root, frame.DefaultOptions)
	require.Nil(t, err)

	issuerAtoms, ierr := namecmp.ParseRDNs(root, rf.IssuerRaw)
	require.Nil(t, ierr)
	subjectAtoms, serr := namecmp.ParseRDNs(root, rf.SubjectRaw)
	require.Nil(t, serr)

	assert.True(t, namecmp.EqualNames(root, issuerAtoms, root, subjectAtoms))
}

func TestMatchDNS_ExactAndWildcard(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		{"exact match", "example.org", "example.org", true},
		{"case insensitive", "Example.ORG", "example.org", true},
		{"trailing dot ignored", "example.org.", "example.org", true},
		{"exact mismatch", "example.org", "example.com", false},
		{"wildcard matches subdomain", "*.example.org", "www.example.org", true},
		{"wildcard does not match bare domain", "*.example.org", "example.org", false},
		{"wildcard does not match different suffix", "*.example.org", "www.example.com", false},
		{"empty candidate", "example.org", "", false},
		{"empty pattern", "", "example.org", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, namecmp.MatchDNS(tt.pattern, tt.candidate))
		})
	}
}
