package x509chain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509chain "github.com/trailcert/x509chain"
	"github.com/trailcert/x509chain/internal/testfixtures"
)

func mustCert(t *testing.T, pemText string) *x509chain.Certificate {
	t.Helper()
	cert, err := x509chain.New(decodePEM(t, pemText))
	require.NoError(t, err)
	return cert
}

func TestFacadeVerify_ThreeCertChainSuccess(t *testing.T) {
	leaf := mustCert(t, testfixtures.LeafPEM)
	inter := mustCert(t, testfixtures.IntermediateCAPEM)
	root := mustCert(t, testfixtures.RootCAPEM)
	leaf.SetNext(inter)

	opts := x509chain.DefaultOptions()
	res, err := x509chain.Verify(leaf, []*x509chain.Certificate{root}, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, x509chain.StatusOK, res.Status, "unexpected flags: %v", res.Flags)
	require.Len(t, res.Chain, 3)
}

func TestFacadeVerify_ExpiredLeaf(t *testing.T) {
	leaf := mustCert(t, testfixtures.LeafPEM)
	inter := mustCert(t, testfixtures.IntermediateCAPEM)
	root := mustCert(t, testfixtures.RootCAPEM)
	leaf.SetNext(inter)

	opts := x509chain.DefaultOptions()
	opts.Now = time.Date(2027, 9, 1, 0, 0, 0, 0, time.UTC)

	res, err := x509chain.Verify(leaf, []*x509chain.Certificate{root}, nil, opts)
	require.NoError(t, err)
	assert.True(t, res.Flags.Has(x509chain.BadCertExpired))
}

func TestFacadeVerify_CRLRevocation(t *testing.T) {
	leaf := mustCert(t, testfixtures.LeafPEM)
	inter := mustCert(t, testfixtures.IntermediateCAPEM)
	root := mustCert(t, testfixtures.RootCAPEM)
	leaf.SetNext(inter)

	crlBytes := decodePEM(t, testfixtures.IntermediateCRLPEM)
	c, cerr := x509chain.ParseCRL(crlBytes)
	require.NoError(t, cerr)

	opts := x509chain.DefaultOptions()
	res, err := x509chain.Verify(leaf, []*x509chain.Certificate{root}, []*x509chain.CRL{c}, opts)
	require.NoError(t, err)

	assert.True(t, res.Flags.Has(x509chain.BadCertRevoked))
}

func TestFacadeVerify_RootLookupCallback(t *testing.T) {
	leaf := mustCert(t, testfixtures.LeafPEM)
	inter := mustCert(t, testfixtures.IntermediateCAPEM)
	root := mustCert(t, testfixtures.RootCAPEM)
	leaf.SetNext(inter)

	opts := x509chain.DefaultOptions()
	var seen []*x509chain.Certificate
	opts.RootLookup = func(child *x509chain.Certificate) ([]*x509chain.Certificate, error) {
		seen = append(seen, child)
		return []*x509chain.Certificate{root}, nil
	}

	res, err := x509chain.Verify(leaf, nil, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, x509chain.StatusOK, res.Status, "unexpected flags: %v", res.Flags)
	assert.NotEmpty(t, seen)
}

func TestFacadeVerify_VerdictCallback(t *testing.T) {
	leaf := mustCert(t, testfixtures.LeafPEM)
	inter := mustCert(t, testfixtures.IntermediateCAPEM)
	root := mustCert(t, testfixtures.RootCAPEM)
	leaf.SetNext(inter)

	opts := x509chain.DefaultOptions()
	opts.Verdict = func(cert *x509chain.Certificate, depth int, flags *x509chain.Flags) error {
		if depth == 0 {
			*flags |= x509chain.BadCertOther
		}
		return nil
	}

	res, err := x509chain.Verify(leaf, []*x509chain.Certificate{root}, nil, opts)
	require.NoError(t, err)
	assert.True(t, res.Flags.Has(x509chain.BadCertOther))
}

func TestFacadeVerifyRestartable_AlwaysCompletesSynchronously(t *testing.T) {
	leaf := mustCert(t, testfixtures.LeafPEM)
	inter := mustCert(t, testfixtures.IntermediateCAPEM)
	root := mustCert(t, testfixtures.RootCAPEM)
	leaf.SetNext(inter)

	opts := x509chain.DefaultOptions()
	res, state, err := x509chain.VerifyRestartable(leaf, []*x509chain.Certificate{root}, nil, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, x509chain.StatusOK, res.Status, "unexpected flags: %v", res.Flags)
	require.NotNil(t, state)
}

func TestLoadProfile_ReturnsBuiltinVariants(t *testing.T) {
	assert.NotEqual(t, x509chain.DefaultProfile, x509chain.SuiteBProfile)
	assert.NotEqual(t, x509chain.DefaultProfile, x509chain.NextProfile)
}
