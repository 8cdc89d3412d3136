package ext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailcert/x509chain/internal/ext"
)

func TestKind_Has(t *testing.T) {
	set := ext.BasicConstraints | ext.KeyUsage
	assert.True(t, set.Has(ext.BasicConstraints))
	assert.True(t, set.Has(ext.KeyUsage))
	assert.False(t, set.Has(ext.SubjectAltName))
}

func TestKeyUsageBits_Has(t *testing.T) {
	ku := ext.KeyUsageKeyCertSign | ext.KeyUsageCRLSign
	assert.True(t, ku.Has(ext.KeyUsageKeyCertSign))
	assert.True(t, ku.Has(ext.KeyUsageCRLSign))
	assert.False(t, ku.Has(ext.KeyUsageDigitalSignature))
}

func TestNSCertTypeBits_Has(t *testing.T) {
	nsct := ext.NSCertSSLServer | ext.NSCertSSLCA
	assert.True(t, nsct.Has(ext.NSCertSSLServer))
	assert.True(t, nsct.Has(ext.NSCertSSLCA))
	assert.False(t, nsct.Has(ext.NSCertSMIME))
}
