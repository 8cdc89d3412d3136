package x509chain_test

import (
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509chain "github.com/trailcert/x509chain"
	"github.com/trailcert/x509chain/internal/testfixtures"
)

func decodePEM(t *testing.T, pemText string) []byte {
	t.Helper()
	block, _ := pem.Decode([]byte(pemText))
	require.NotNil(t, block)
	return block.Bytes
}

func TestNew_ParsesValidCertificate(t *testing.T) {
	cert, err := x509chain.New(decodePEM(t, testfixtures.LeafPEM))
	require.NoError(t, err)
	assert.NotNil(t, cert)
}

func TestNew_RejectsGarbage(t *testing.T) {
	_, err := x509chain.New([]byte("not a certificate at all"))
	assert.Error(t, err)
}

func TestCertificate_Accessors(t *testing.T) {
	cert, err := x509chain.New(decodePEM(t, testfixtures.LeafPEM))
	require.NoError(t, err)

	cn, cerr := cert.CommonName()
	require.NoError(t, cerr)
	assert.Equal(t, "www.example.org", cn)

	names, nerr := cert.DNSNames()
	require.NoError(t, nerr)
	assert.Contains(t, names, "example.org")

	isCA, ierr := cert.IsCA()
	require.NoError(t, ierr)
	assert.False(t, isCA)

	notBefore, nberr := cert.NotBefore()
	require.NoError(t, nberr)
	notAfter, naerr := cert.NotAfter()
	require.NoError(t, naerr)
	assert.True(t, notAfter.After(notBefore))

	serial, serr := cert.SerialNumber()
	require.NoError(t, serr)
	assert.NotNil(t, serial)
}

func TestCertificate_SetNextAndNext(t *testing.T) {
	leaf, err := x509chain.New(decodePEM(t, testfixtures.LeafPEM))
	require.NoError(t, err)
	inter, err2 := x509chain.New(decodePEM(t, testfixtures.IntermediateCAPEM))
	require.NoError(t, err2)

	assert.Nil(t, leaf.Next())
	leaf.SetNext(inter)
	require.NotNil(t, leaf.Next())
	assert.Equal(t, inter.Raw(), leaf.Next().Raw())

	leaf.SetNext(nil)
	assert.Nil(t, leaf.Next())
}
