package certio_test

import (
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailcert/x509chain/certio"
	"github.com/trailcert/x509chain/internal/testfixtures"
)

func decodeDER(t *testing.T, pemText string) []byte {
	t.Helper()
	block, _ := pem.Decode([]byte(pemText))
	require.NotNil(t, block)
	return block.Bytes
}

func TestIsPEM(t *testing.T) {
	assert.True(t, certio.IsPEM([]byte(testfixtures.LeafPEM)))
	assert.False(t, certio.IsPEM(decodeDER(t, testfixtures.LeafPEM)))
}

func TestDecodeOne_PEM(t *testing.T) {
	cert, err := certio.DecodeOne([]byte(testfixtures.LeafPEM))
	require.NoError(t, err)
	cn, cerr := cert.CommonName()
	require.NoError(t, cerr)
	assert.Equal(t, "www.example.org", cn)
}

func TestDecodeOne_DER(t *testing.T) {
	der := decodeDER(t, testfixtures.LeafPEM)
	cert, err := certio.DecodeOne(der)
	require.NoError(t, err)
	assert.Equal(t, der, cert.Raw())
}

func TestDecodeAll_PEMChainLinksNext(t *testing.T) {
	bundle := append([]byte(testfixtures.LeafPEM), []byte(testfixtures.IntermediateCAPEM)...)
	certs, err := certio.DecodeAll(bundle)
	require.NoError(t, err)
	require.Len(t, certs, 2)

	assert.NotNil(t, certs[0].Next())
	assert.Equal(t, certs[1].Raw(), certs[0].Next().Raw())
	assert.Nil(t, certs[1].Next())
}

func TestDecodeAll_GarbageInputRejected(t *testing.T) {
	_, err := certio.DecodeAll([]byte("not a certificate"))
	assert.Error(t, err)
}

func TestEncodePEM_RoundTrips(t *testing.T) {
	cert, err := certio.DecodeOne([]byte(testfixtures.LeafPEM))
	require.NoError(t, err)

	reencoded := certio.EncodePEM(cert)
	cert2, err2 := certio.DecodeOne(reencoded)
	require.NoError(t, err2)

	assert.Equal(t, cert.Raw(), cert2.Raw())
}

func TestEncodeDER_ReturnsRawBytes(t *testing.T) {
	cert, err := certio.DecodeOne([]byte(testfixtures.LeafPEM))
	require.NoError(t, err)
	assert.Equal(t, cert.Raw(), certio.EncodeDER(cert))
}

func TestEncodeMultiplePEM(t *testing.T) {
	bundle := append([]byte(testfixtures.LeafPEM), []byte(testfixtures.IntermediateCAPEM)...)
	certs, err := certio.DecodeAll(bundle)
	require.NoError(t, err)

	out := certio.EncodeMultiplePEM(certs)
	reparsed, rerr := certio.DecodeAll(out)
	require.NoError(t, rerr)
	require.Len(t, reparsed, 2)
	assert.Equal(t, certs[0].Raw(), reparsed[0].Raw())
	assert.Equal(t, certs[1].Raw(), reparsed[1].Raw())
}

func TestEncodeMultipleDER(t *testing.T) {
	bundle := append([]byte(testfixtures.LeafPEM), []byte(testfixtures.IntermediateCAPEM)...)
	certs, err := certio.DecodeAll(bundle)
	require.NoError(t, err)

	out := certio.EncodeMultipleDER(certs)
	assert.Equal(t, append(append([]byte{}, certs[0].Raw()...), certs[1].Raw()...), out)
}
