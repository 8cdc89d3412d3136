package verify_test

import (
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailcert/x509chain/internal/certcache"
	"github.com/trailcert/x509chain/crl"
	"github.com/trailcert/x509chain/internal/frame"
	"github.com/trailcert/x509chain/internal/testfixtures"
	"github.com/trailcert/x509chain/internal/verify"
)

func decodePEM(t *testing.T, pemText, blockType string) []byte {
	t.Helper()
	rest := []byte(pemText)
	for {
		block, next := pem.Decode(rest)
		require.NotNil(t, block, "no %s block found", blockType)
		if block.Type == blockType {
			return block.Bytes
		}
		rest = next
	}
}

func newCert(t *testing.T, pemText string) *certcache.Certificate {
	t.Helper()
	raw := decodePEM(t, pemText, "CERTIFICATE")
	return certcache.New(raw, frame.DefaultOptions)
}

func TestVerify_SelfSignedSuccess(t *testing.T) {
	ee := newCert(t, testfixtures.SelfSignedPEM)
	root := newCert(t, testfixtures.SelfSignedPEM)

	opts := verify.DefaultOptions()
	res, err := verify.Verify(ee, []*certcache.Certificate{root}, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, verify.StatusOK, res.Status)
	assert.Zero(t, res.Flags)
	require.Len(t, res.Chain, 1)
}

func TestVerify_ThreeCertChainSuccess(t *testing.T) {
	leaf := newCert(t, testfixtures.LeafPEM)
	inter := newCert(t, testfixtures.IntermediateCAPEM)
	root := newCert(t, testfixtures.RootCAPEM)
	leaf.Next = inter

	opts := verify.DefaultOptions()
	res, err := verify.Verify(leaf, []*certcache.Certificate{root}, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, verify.StatusOK, res.Status, "unexpected flags: %v", res.Flags)
	assert.Zero(t, res.Flags)
	require.Len(t, res.Chain, 3)
	assert.Same(t, leaf, res.Chain[0].Cert)
	assert.Same(t, inter, res.Chain[1].Cert)
	assert.Same(t, root, res.Chain[2].Cert)
}

func TestVerify_ExpiredLeafFlagged(t *testing.T) {
	leaf := newCert(t, testfixtures.LeafPEM)
	inter := newCert(t, testfixtures.IntermediateCAPEM)
	root := newCert(t, testfixtures.RootCAPEM)
	leaf.Next = inter

	opts := verify.DefaultOptions()
	opts.Now = time.Date(2027, 9, 1, 0, 0, 0, 0, time.UTC) // past leaf's notAfter, well before inter/root expiry

	res, err := verify.Verify(leaf, []*certcache.Certificate{root}, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, verify.StatusVerifyFailed, res.Status)
	assert.True(t, res.Flags.Has(verify.BadCertExpired))
	require.NotEmpty(t, res.Chain)
	assert.True(t, res.Chain[0].Flags.Has(verify.BadCertExpired))
}

func TestVerify_ChainTooLongIsFatal(t *testing.T) {
	leaf := newCert(t, testfixtures.LeafPEM)
	inter := newCert(t, testfixtures.IntermediateCAPEM)
	root := newCert(t, testfixtures.RootCAPEM)
	leaf.Next = inter

	opts := verify.DefaultOptions()
	opts.MaxIntermediateCA = 0

	res, err := verify.Verify(leaf, []*certcache.Certificate{root}, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, verify.StatusFatal, res.Status)
	assert.Equal(t, verify.Flags(0xFFFFFFFF), res.Flags)
}

func TestVerify_NonCAIntermediateNotTrusted(t *testing.T) {
	leaf := newCert(t, testfixtures.LeafBadIssuerPEM)
	nonCA := newCert(t, testfixtures.NonCAIntermediatePEM)
	root := newCert(t, testfixtures.RootCAPEM)
	leaf.Next = nonCA

	opts := verify.DefaultOptions()
	res, err := verify.Verify(leaf, []*certcache.Certificate{root}, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, verify.StatusVerifyFailed, res.Status)
	assert.True(t, res.Flags.Has(verify.BadCertNotTrusted))
}

func TestVerify_RevokedLeafFlagged(t *testing.T) {
	leaf := newCert(t, testfixtures.LeafPEM)
	inter := newCert(t, testfixtures.IntermediateCAPEM)
	root := newCert(t, testfixtures.RootCAPEM)
	leaf.Next = inter

	crlRaw := decodePEM(t, testfixtures.IntermediateCRLPEM, "X509 CRL")
	c, cerr := crl.Parse(crlRaw)
	require.Nil(t, cerr)

	opts := verify.DefaultOptions()
	res, err := verify.Verify(leaf, []*certcache.Certificate{root}, []*crl.CRL{c}, opts)
	require.NoError(t, err)

	assert.Equal(t, verify.StatusVerifyFailed, res.Status)
	assert.True(t, res.Flags.Has(verify.BadCertRevoked))
}

func TestVerify_NonRevokedLeafPassesWithCRL(t *testing.T) {
	leaf := newCert(t, testfixtures.LeafGoodPEM)
	inter := newCert(t, testfixtures.IntermediateCAPEM)
	root := newCert(t, testfixtures.RootCAPEM)
	leaf.Next = inter

	crlRaw := decodePEM(t, testfixtures.IntermediateCRLPEM, "X509 CRL")
	c, cerr := crl.Parse(crlRaw)
	require.Nil(t, cerr)

	opts := verify.DefaultOptions()
	opts.Now = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC) // inside the fixture CRL's thisUpdate/nextUpdate window
	res, err := verify.Verify(leaf, []*certcache.Certificate{root}, []*crl.CRL{c}, opts)
	require.NoError(t, err)

	assert.Equal(t, verify.StatusOK, res.Status, "unexpected flags: %v", res.Flags)
	assert.False(t, res.Flags.Has(verify.BadCertRevoked))
}

func TestVerify_HostnameMatchesSAN(t *testing.T) {
	leaf := newCert(t, testfixtures.LeafPEM)
	inter := newCert(t, testfixtures.IntermediateCAPEM)
	root := newCert(t, testfixtures.RootCAPEM)
	leaf.Next = inter

	opts := verify.DefaultOptions()
	opts.Hostname = "www.example.org"
	res, err := verify.Verify(leaf, []*certcache.Certificate{root}, nil, opts)
	require.NoError(t, err)

	assert.False(t, res.Flags.Has(verify.BadCertCNMismatch))
}

func TestVerify_HostnameMismatchedSAN(t *testing.T) {
	leaf := newCert(t, testfixtures.LeafPEM)
	inter := newCert(t, testfixtures.IntermediateCAPEM)
	root := newCert(t, testfixtures.RootCAPEM)
	leaf.Next = inter

	opts := verify.DefaultOptions()
	opts.Hostname = "not-in-san.example.org"
	res, err := verify.Verify(leaf, []*certcache.Certificate{root}, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, verify.StatusVerifyFailed, res.Status)
	assert.True(t, res.Flags.Has(verify.BadCertCNMismatch))
}

func TestVerify_HostnameMatchesSelfSignedSAN(t *testing.T) {
	ee := newCert(t, testfixtures.SelfSignedPEM)
	root := newCert(t, testfixtures.SelfSignedPEM)

	opts := verify.DefaultOptions()
	opts.Hostname = "selfsigned.example.org"
	res, err := verify.Verify(ee, []*certcache.Certificate{root}, nil, opts)
	require.NoError(t, err)

	assert.False(t, res.Flags.Has(verify.BadCertCNMismatch))
}

func TestVerify_VerdictCallbackCanOverrideFlags(t *testing.T) {
	leaf := newCert(t, testfixtures.LeafPEM)
	inter := newCert(t, testfixtures.IntermediateCAPEM)
	root := newCert(t, testfixtures.RootCAPEM)
	leaf.Next = inter

	opts := verify.DefaultOptions()
	called := 0
	opts.Verdict = func(cert *certcache.Certificate, depth int, flags *verify.Flags) error {
		called++
		*flags |= verify.BadCertOther
		return nil
	}

	res, err := verify.Verify(leaf, []*certcache.Certificate{root}, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, called)
	assert.True(t, res.Flags.Has(verify.BadCertOther))
	assert.Equal(t, verify.StatusVerifyFailed, res.Status)
}

func TestVerify_RootLookupCallback(t *testing.T) {
	leaf := newCert(t, testfixtures.LeafPEM)
	inter := newCert(t, testfixtures.IntermediateCAPEM)
	root := newCert(t, testfixtures.RootCAPEM)
	leaf.Next = inter

	opts := verify.DefaultOptions()
	opts.RootLookup = func(child *certcache.Certificate) ([]*certcache.Certificate, error) {
		return []*certcache.Certificate{root}, nil
	}

	res, err := verify.Verify(leaf, nil, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, verify.StatusOK, res.Status, "unexpected flags: %v", res.Flags)
}
