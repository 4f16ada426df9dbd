package keychain

import (
	"crypto/ecdsa"

	"github.com/youmark/pkcs8"

	"github.com/ndnwire/ndnclient/an"
	"github.com/ndnwire/ndnclient/tlv"
)

// SafeBag carries exported credentials: a certificate in wire form and the
// corresponding passphrase-encrypted PKCS#8 private key.
// https://named-data.net/doc/ndn-cxx/0.8.0/specs/safe-bag.html
type SafeBag struct {
	// Certificate is the full certificate element in wire form.
	// The codec treats it as opaque; interpretation belongs to higher layers.
	Certificate []byte

	// EncryptedKey is the encrypted PKCS#8 PrivateKeyInfo.
	EncryptedKey []byte
}

// MarshalBinary encodes the SafeBag element.
func (bag SafeBag) MarshalBinary() ([]byte, error) {
	var eb tlv.EncodingBuffer
	eb.PrependBlob(an.TtSafeBagEncryptedKey, bag.EncryptedKey)
	eb.PrependBytes(bag.Certificate)
	eb.PrependTypeAndLength(an.TtSafeBag, eb.Length())
	return eb.Output()
}

// UnmarshalBinary decodes the SafeBag element.
// Certificate and EncryptedKey alias the input buffer.
func (bag *SafeBag) UnmarshalBinary(wire []byte) error {
	d := tlv.NewDecoder(wire)
	end, e := d.ReadNestedStart(an.TtSafeBag)
	if e != nil {
		return e
	}

	certBegin := d.Position()
	if _, e = d.ReadBlob(an.TtData); e != nil {
		return e
	}
	bag.Certificate = d.Slice(certBegin, d.Position())

	if bag.EncryptedKey, e = d.ReadBlob(an.TtSafeBagEncryptedKey); e != nil {
		return e
	}
	return d.FinishNested(end)
}

// ExportPrivateKey encrypts an ECDSA private key into PKCS#8 form suitable
// for SafeBag.EncryptedKey.
func ExportPrivateKey(key *ecdsa.PrivateKey, passphrase []byte) ([]byte, error) {
	return pkcs8.ConvertPrivateKeyToPKCS8(key, passphrase)
}

// ImportPrivateKey decrypts SafeBag.EncryptedKey.
func ImportPrivateKey(wire, passphrase []byte) (*ecdsa.PrivateKey, error) {
	key, e := pkcs8.ParsePKCS8PrivateKey(wire, passphrase)
	if e != nil {
		return nil, e
	}
	ecKey, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, ErrKeyFormat
	}
	return ecKey, nil
}
