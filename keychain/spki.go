// Package keychain handles private key and certificate material.
package keychain

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"errors"
	"math/big"

	"github.com/ndnwire/ndnclient/der"
)

// Error conditions.
var (
	ErrKeyFormat = errors.New("bad key format")
	ErrCurve     = errors.New("unsupported elliptic curve")
)

var (
	oidECPublicKey = der.OID{1, 2, 840, 10045, 2, 1}
	oidP256        = der.OID{1, 2, 840, 10045, 3, 1, 7}
	oidP384        = der.OID{1, 3, 132, 0, 34}
)

func curveOID(curve elliptic.Curve) (der.OID, bool) {
	switch curve {
	case elliptic.P256():
		return oidP256, true
	case elliptic.P384():
		return oidP384, true
	}
	return nil, false
}

func curveByOID(oid der.OID) (elliptic.Curve, bool) {
	switch {
	case oid.Equal(oidP256):
		return elliptic.P256(), true
	case oid.Equal(oidP384):
		return elliptic.P384(), true
	}
	return nil, false
}

// MarshalECPublicKey encodes an ECDSA public key in SubjectPublicKeyInfo
// structure: an algorithm identifier naming the curve, and the uncompressed
// curve point as a bit string.
func MarshalECPublicKey(pub *ecdsa.PublicKey) ([]byte, error) {
	oid, ok := curveOID(pub.Curve)
	if !ok {
		return nil, ErrCurve
	}
	point := elliptic.Marshal(pub.Curve, pub.X, pub.Y)
	spki := der.NewSequence(
		der.NewSequence(der.NewOID(oidECPublicKey), der.NewOID(oid)),
		der.NewBitString(point, 0),
	)
	return spki.Encode(), nil
}

// ParseECPublicKey decodes a SubjectPublicKeyInfo structure into an ECDSA
// public key.
func ParseECPublicKey(wire []byte) (*ecdsa.PublicKey, error) {
	root, _, e := der.Parse(wire)
	if e != nil {
		return nil, e
	}
	if root.Tag() != der.TagSequence || len(root.Children()) != 2 {
		return nil, ErrKeyFormat
	}

	algo := root.Children()[0]
	if algo.Tag() != der.TagSequence || len(algo.Children()) != 2 {
		return nil, ErrKeyFormat
	}
	algoOID, e := algo.Children()[0].OID()
	if e != nil || !algoOID.Equal(oidECPublicKey) {
		return nil, ErrKeyFormat
	}
	oid, e := algo.Children()[1].OID()
	if e != nil {
		return nil, ErrKeyFormat
	}
	curve, ok := curveByOID(oid)
	if !ok {
		return nil, ErrCurve
	}

	point, unusedBits, e := root.Children()[1].BitString()
	if e != nil || unusedBits != 0 {
		return nil, ErrKeyFormat
	}
	x, y := elliptic.Unmarshal(curve, point)
	if x == nil {
		return nil, ErrKeyFormat
	}
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: new(big.Int).Set(y)}, nil
}
