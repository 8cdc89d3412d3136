package certcache_test

import (
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailcert/x509chain/internal/certcache"
	"github.com/trailcert/x509chain/internal/frame"
	"github.com/trailcert/x509chain/internal/testfixtures"
)

func decodePEM(t *testing.T, pemText string) []byte {
	t.Helper()
	block, _ := pem.Decode([]byte(pemText))
	require.NotNil(t, block)
	return block.Bytes
}

func TestCertificate_FrameCachesAcrossCalls(t *testing.T) {
	raw := decodePEM(t, testfixtures.LeafPEM)
	c := certcache.New(raw, frame.DefaultOptions)

	f1, err1 := c.Frame()
	require.Nil(t, err1)
	f2, err2 := c.Frame()
	require.Nil(t, err2)

	assert.Same(t, f1, f2, "Frame should return the same cached pointer")
}

func TestCertificate_FlushForcesReparse(t *testing.T) {
	raw := decodePEM(t, testfixtures.LeafPEM)
	c := certcache.New(raw, frame.DefaultOptions)

	f1, err1 := c.Frame()
	require.Nil(t, err1)

	c.Flush()

	f2, err2 := c.Frame()
	require.Nil(t, err2)
	assert.NotSame(t, f1, f2, "Flush should force a new Frame on next call")
	assert.Equal(t, f1.SerialNumber, f2.SerialNumber)
}

func TestCertificate_PublicKeyCachesAndRequiresFrame(t *testing.T) {
	raw := decodePEM(t, testfixtures.LeafPEM)
	c := certcache.New(raw, frame.DefaultOptions)

	pk1, err1 := c.PublicKey()
	require.NoError(t, err1)
	pk2, err2 := c.PublicKey()
	require.NoError(t, err2)

	assert.Same(t, pk1, pk2)
}

func TestCertificate_IssuerAndSubjectRDNs(t *testing.T) {
	leaf := certcache.New(decodePEM(t, testfixtures.LeafPEM), frame.DefaultOptions)
	inter := certcache.New(decodePEM(t, testfixtures.IntermediateCAPEM), frame.DefaultOptions)

	issued, err := leaf.IssuedBy(inter)
	require.Nil(t, err)
	assert.True(t, issued)
}

func TestCertificate_IsSelfIssued(t *testing.T) {
	root := certcache.New(decodePEM(t, testfixtures.RootCAPEM), frame.DefaultOptions)
	self, err := root.IsSelfIssued()
	require.Nil(t, err)
	assert.True(t, self)

	leaf := certcache.New(decodePEM(t, testfixtures.LeafPEM), frame.DefaultOptions)
	self2, err2 := leaf.IsSelfIssued()
	require.Nil(t, err2)
	assert.False(t, self2)
}

func TestCertificate_DNSNames(t *testing.T) {
	leaf := certcache.New(decodePEM(t, testfixtures.LeafPEM), frame.DefaultOptions)
	names, err := leaf.DNSNames()
	require.Nil(t, err)
	assert.Contains(t, names, "www.example.org")
	assert.Contains(t, names, "example.org")
}

func TestCertificate_DNSNames_AbsentExtensionYieldsEmptySlice(t *testing.T) {
	root := certcache.New(decodePEM(t, testfixtures.RootCAPEM), frame.DefaultOptions)
	names, err := root.DNSNames()
	require.Nil(t, err)
	assert.Empty(t, names)
}

func TestCertificate_ExtKeyUsageOIDs(t *testing.T) {
	leaf := certcache.New(decodePEM(t, testfixtures.LeafPEM), frame.DefaultOptions)
	oids, err := leaf.ExtKeyUsageOIDs()
	require.Nil(t, err)
	assert.NotEmpty(t, oids)
}

func TestCertificate_CommonName(t *testing.T) {
	leaf := certcache.New(decodePEM(t, testfixtures.LeafPEM), frame.DefaultOptions)
	cn, err := leaf.CommonName()
	require.Nil(t, err)
	assert.Equal(t, "www.example.org", cn)
}

func TestCertificate_CommonName_Root(t *testing.T) {
	root := certcache.New(decodePEM(t, testfixtures.RootCAPEM), frame.DefaultOptions)
	cn, err := root.CommonName()
	require.Nil(t, err)
	assert.Equal(t, "Trail Test Root CA", cn)
}
