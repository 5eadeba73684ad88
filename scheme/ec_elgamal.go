package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/curve"
	"github.com/shieldphe/gophe/prng"
)

const (
	ecElGamalDefaultForm = curve.Weierstrass
	// ecElGamalDefaultDLPBound bounds the brute-force ECDLP search decryption
	// needs to recover m from mG, mirroring exponential ElGamal's bound.
	ecElGamalDefaultDLPBound = 1 << 20
)

func ecElGamalCapability() Capability {
	return Capability{
		Name:             EllipticCurveElGamal,
		PlaintextModulo:  ecElGamalOrder,
		CiphertextModulo: ecElGamalOrder,
		KeyGen:           ecElGamalKeyGen,
		Encrypt:          ecElGamalEncrypt,
		Decrypt:          ecElGamalDecrypt,
		Add:              ecElGamalAdd,
		MultiplyScalar:   ecElGamalMultiplyScalar,
	}
}

func ecElGamalOrder(km KeyMaterial) *big.Int {
	c, err := curve.Lookup(km.Form, km.CurveName)
	if err != nil {
		return nil
	}
	return c.Params.Order
}

func ecElGamalKeyGen(src *prng.Source, opts Options) (KeyMaterial, error) {
	form := opts.Form
	if form == "" {
		form = ecElGamalDefaultForm
	}
	c, err := curve.Lookup(form, opts.CurveName)
	if err != nil {
		return KeyMaterial{}, newError(EllipticCurveElGamal, "keygen", KindKeyGenFailure, err)
	}
	name := opts.CurveName
	if name == "" {
		name, _ = curve.DefaultName(form)
	}
	order := c.Params.Order
	ka := src.IntRange(big.NewInt(1), new(big.Int).Sub(order, big.NewInt(1)))
	qa := c.ScalarMultiply(c.BasePoint(), ka)
	return KeyMaterial{
		Form:          form,
		CurveName:     name,
		PublicPoint:   &qa,
		PrivateScalar: ka,
		Public:        map[string]*big.Int{"limit": limitOrDefault(opts.PlaintextLimit, ecElGamalDefaultDLPBound)},
	}, nil
}

func limitOrDefault(limit *big.Int, def int64) *big.Int {
	if limit != nil {
		return limit
	}
	return big.NewInt(def)
}

func ecElGamalEncrypt(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error) {
	if km.PublicPoint == nil {
		return Ciphertext{}, newError(EllipticCurveElGamal, "encrypt", KindMissingKey, nil)
	}
	c, err := curve.Lookup(km.Form, km.CurveName)
	if err != nil {
		return Ciphertext{}, newError(EllipticCurveElGamal, "encrypt", KindInvalidInput, err)
	}
	order := c.Params.Order
	r := src.IntRange(big.NewInt(1), new(big.Int).Sub(order, big.NewInt(1)))
	p1 := c.ScalarMultiply(c.BasePoint(), r)
	mg := c.ScalarMultiply(c.BasePoint(), m)
	p2 := c.Add(c.ScalarMultiply(*km.PublicPoint, r), mg)
	return Ciphertext{Kind: KindECPair, P1: p1, P2: p2}, nil
}

// ecElGamalDecrypt recovers mG = c2 - ka*c1, then solves the discrete log by
// bounded linear search over the base point's multiples.
func ecElGamalDecrypt(km KeyMaterial, ct Ciphertext) (*big.Int, error) {
	if km.PrivateScalar == nil {
		return nil, newError(EllipticCurveElGamal, "decrypt", KindMissingKey, nil)
	}
	c, err := curve.Lookup(km.Form, km.CurveName)
	if err != nil {
		return nil, newError(EllipticCurveElGamal, "decrypt", KindInvalidInput, err)
	}
	shared := c.ScalarMultiply(ct.P1, km.PrivateScalar)
	mg := c.Add(ct.P2, c.Negate(shared))

	limit := int64(ecElGamalDefaultDLPBound)
	if l, ok := km.Public["limit"]; ok && l != nil {
		limit = l.Int64()
	}
	candidate := c.Identity()
	g := c.BasePoint()
	for i := int64(0); i < limit; i++ {
		if candidate.Equal(mg) {
			return big.NewInt(i), nil
		}
		candidate = c.Add(candidate, g)
	}
	return nil, newError(EllipticCurveElGamal, "decrypt", KindDecryptionFailure, nil)
}

func ecElGamalAdd(km KeyMaterial, a, b Ciphertext) (Ciphertext, error) {
	c, err := curve.Lookup(km.Form, km.CurveName)
	if err != nil {
		return Ciphertext{}, newError(EllipticCurveElGamal, "add", KindInvalidInput, err)
	}
	return Ciphertext{Kind: KindECPair, P1: c.Add(a.P1, b.P1), P2: c.Add(a.P2, b.P2)}, nil
}

func ecElGamalMultiplyScalar(src *prng.Source, km KeyMaterial, a Ciphertext, k *big.Int) (Ciphertext, error) {
	c, err := curve.Lookup(km.Form, km.CurveName)
	if err != nil {
		return Ciphertext{}, newError(EllipticCurveElGamal, "scalar_multiply", KindInvalidInput, err)
	}
	return Ciphertext{Kind: KindECPair, P1: c.ScalarMultiply(a.P1, k), P2: c.ScalarMultiply(a.P2, k)}, nil
}
