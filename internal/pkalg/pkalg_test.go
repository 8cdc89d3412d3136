package pkalg_test

import (
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailcert/x509chain/internal/frame"
	"github.com/trailcert/x509chain/internal/pkalg"
	"github.com/trailcert/x509chain/internal/testfixtures"
)

func decodePEM(t *testing.T, pemText string) []byte {
	t.Helper()
	block, _ := pem.Decode([]byte(pemText))
	require.NotNil(t, block)
	return block.Bytes
}

func TestParseSPKI_RSA(t *testing.T) {
	raw := decodePEM(t, testfixtures.LeafPEM)
	f, err := frame.Parse(raw, frame.DefaultOptions)
	require.Nil(t, err)

	pub, perr := pkalg.ParseSPKI(f.PubKeyRaw.Bytes(raw))
	require.NoError(t, perr)
	assert.Equal(t, pkalg.RSA, pub.PK)
	assert.GreaterOrEqual(t, pub.Bits, 2048)
}

func TestPublicKey_VerifyRealChainSignature(t *testing.T) {
	leafRaw := decodePEM(t, testfixtures.LeafPEM)
	interRaw := decodePEM(t, testfixtures.IntermediateCAPEM)

	leafFrame, err := frame.Parse(leafRaw, frame.DefaultOptions)
	require.Nil(t, err)
	interFrame, err2 := frame.Parse(interRaw, frame.DefaultOptions)
	require.Nil(t, err2)

	interPub, perr := pkalg.ParseSPKI(interFrame.PubKeyRaw.Bytes(interRaw))
	require.NoError(t, perr)

	tbs := leafFrame.TBS.Bytes(leafRaw)
	sig := leafFrame.SigValue.Bytes(leafRaw)

	verr := interPub.Verify(leafFrame.SigAlgorithm, tbs, sig)
	assert.NoError(t, verr, "intermediate's public key should verify the leaf's signature")
}

func TestPublicKey_VerifyRejectsTamperedMessage(t *testing.T) {
	leafRaw := decodePEM(t, testfixtures.LeafPEM)
	interRaw := decodePEM(t, testfixtures.IntermediateCAPEM)

	leafFrame, err := frame.Parse(leafRaw, frame.DefaultOptions)
	require.Nil(t, err)
	interFrame, err2 := frame.Parse(interRaw, frame.DefaultOptions)
	require.Nil(t, err2)

	interPub, perr := pkalg.ParseSPKI(interFrame.PubKeyRaw.Bytes(interRaw))
	require.NoError(t, perr)

	tbs := append([]byte{}, leafFrame.TBS.Bytes(leafRaw)...)
	tbs[0] ^= 0xFF
	sig := leafFrame.SigValue.Bytes(leafRaw)

	verr := interPub.Verify(leafFrame.SigAlgorithm, tbs, sig)
	assert.ErrorIs(t, verr, pkalg.ErrBadSignature)
}

func TestPublicKey_VerifyRejectsWrongKey(t *testing.T) {
	leafRaw := decodePEM(t, testfixtures.LeafPEM)
	rootRaw := decodePEM(t, testfixtures.UnrelatedRootPEM)

	leafFrame, err := frame.Parse(leafRaw, frame.DefaultOptions)
	require.Nil(t, err)
	rootFrame, err2 := frame.Parse(rootRaw, frame.DefaultOptions)
	require.Nil(t, err2)

	wrongPub, perr := pkalg.ParseSPKI(rootFrame.PubKeyRaw.Bytes(rootRaw))
	require.NoError(t, perr)

	tbs := leafFrame.TBS.Bytes(leafRaw)
	sig := leafFrame.SigValue.Bytes(leafRaw)

	verr := wrongPub.Verify(leafFrame.SigAlgorithm, tbs, sig)
	assert.Error(t, verr)
}

func TestClassify_SHA256WithRSA(t *testing.T) {
	leafRaw := decodePEM(t, testfixtures.LeafPEM)
	leafFrame, err := frame.Parse(leafRaw, frame.DefaultOptions)
	require.Nil(t, err)

	assert.Equal(t, pkalg.RSA, leafFrame.SigAlgorithm.PK)
	assert.Equal(t, pkalg.SHA256, leafFrame.SigAlgorithm.Hash)
}

func TestPublicKey_CanDo(t *testing.T) {
	k := &pkalg.PublicKey{PK: pkalg.RSA}
	assert.True(t, k.CanDo(pkalg.RSA))
	assert.True(t, k.CanDo(pkalg.RSAPSS))
	assert.False(t, k.CanDo(pkalg.ECDSA))
}
