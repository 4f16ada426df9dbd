package keychain_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"testing"

	"github.com/ndnwire/ndnclient/an"
	"github.com/ndnwire/ndnclient/core/testenv"
	"github.com/ndnwire/ndnclient/keychain"
	"github.com/ndnwire/ndnclient/tlv"
)

var makeAR = testenv.MakeAR

func TestECPublicKey(t *testing.T) {
	assert, require := makeAR(t)

	pvt, e := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(e)

	wire, e := keychain.MarshalECPublicKey(&pvt.PublicKey)
	require.NoError(e)

	// stdlib must accept our encoding
	stdKey, e := x509.ParsePKIXPublicKey(wire)
	require.NoError(e)
	assert.True(pvt.PublicKey.Equal(stdKey.(*ecdsa.PublicKey)))

	// and the inverse must accept stdlib's
	stdWire, e := x509.MarshalPKIXPublicKey(&pvt.PublicKey)
	require.NoError(e)
	assert.Equal(stdWire, wire)

	pub, e := keychain.ParseECPublicKey(wire)
	require.NoError(e)
	assert.True(pvt.PublicKey.Equal(pub))
}

func TestSafeBag(t *testing.T) {
	assert, require := makeAR(t)

	pvt, e := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(e)
	passphrase := []byte("correct horse")

	encrypted, e := keychain.ExportPrivateKey(pvt, passphrase)
	require.NoError(e)

	var certEb tlv.EncodingBuffer
	certEb.PrependBlob(an.TtData, []byte{0xC0, 0xC1, 0xC2})
	cert, e := certEb.Output()
	require.NoError(e)

	wire, e := keychain.SafeBag{Certificate: cert, EncryptedKey: encrypted}.MarshalBinary()
	require.NoError(e)

	var bag keychain.SafeBag
	require.NoError(bag.UnmarshalBinary(wire))
	assert.Equal(cert, bag.Certificate)

	decrypted, e := keychain.ImportPrivateKey(bag.EncryptedKey, passphrase)
	require.NoError(e)
	assert.True(pvt.Equal(decrypted))

	_, e = keychain.ImportPrivateKey(bag.EncryptedKey, []byte("wrong"))
	assert.Error(e)
}
