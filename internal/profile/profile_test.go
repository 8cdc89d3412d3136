package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailcert/x509chain/internal/pkalg"
	"github.com/trailcert/x509chain/internal/profile"
)

func TestDefaultProfile_Acceptability(t *testing.T) {
	p := profile.Default
	assert.True(t, p.AllowsHash(pkalg.SHA256))
	assert.False(t, p.AllowsHash(pkalg.MD5))
	assert.True(t, p.AllowsPK(pkalg.RSA))
	assert.True(t, p.AllowsPK(pkalg.ECDSA))
	assert.True(t, p.AllowsCurve(pkalg.P256))
	assert.Equal(t, 2048, p.MinRSABits)
}

func TestNextProfile_StricterThanDefault(t *testing.T) {
	p := profile.Next
	assert.False(t, p.AllowsHash(pkalg.SHA224))
	assert.True(t, p.AllowsHash(pkalg.SHA256))
	assert.Equal(t, 3072, p.MinRSABits)
}

func TestSuiteBProfile_ECDSAOnly(t *testing.T) {
	p := profile.SuiteB
	assert.False(t, p.AllowsPK(pkalg.RSA))
	assert.True(t, p.AllowsPK(pkalg.ECDSA))
	assert.True(t, p.AllowsCurve(pkalg.P256))
	assert.False(t, p.AllowsCurve(pkalg.P521))
}

func TestProfile_AllowsCurve_NonECKeyAlwaysAllowed(t *testing.T) {
	p := profile.SuiteB
	assert.True(t, p.AllowsCurve(pkalg.CurveNone))
}

func TestLoadFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	yamlText := `
hashes: [sha256, sha384]
pk_algorithms: [rsa, ecdsa]
curves: [p256, p384]
min_rsa_bits: 3072
`
	require.NoError(t, os.WriteFile(path, []byte(yamlText), 0o600))

	p, err := profile.LoadFile(path)
	require.NoError(t, err)

	assert.True(t, p.AllowsHash(pkalg.SHA256))
	assert.False(t, p.AllowsHash(pkalg.SHA1))
	assert.True(t, p.AllowsPK(pkalg.RSA))
	assert.False(t, p.AllowsPK(pkalg.Ed25519))
	assert.True(t, p.AllowsCurve(pkalg.P384))
	assert.Equal(t, 3072, p.MinRSABits)
}

func TestLoadFile_UnknownHashRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hashes: [sha3]\n"), 0o600))

	_, err := profile.LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := profile.LoadFile("/nonexistent/path/profile.yaml")
	assert.Error(t, err)
}
