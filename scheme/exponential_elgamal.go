package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/bigmod"
	"github.com/shieldphe/gophe/prng"
)

const (
	expElGamalDefaultKeySize = 256
	// expElGamalDefaultDLPBound bounds the brute-force discrete-log search
	// exponential ElGamal's decryption needs to recover m from g^m; scheme
	// misuse (plaintext too large for this bound) surfaces as
	// KindDecryptionFailure rather than searching forever.
	expElGamalDefaultDLPBound = 1 << 20
)

func exponentialElGamalCapability() Capability {
	return Capability{
		Name:             ExponentialElGamal,
		PlaintextModulo:  func(km KeyMaterial) *big.Int { return km.Public["p"] },
		CiphertextModulo: func(km KeyMaterial) *big.Int { return km.Public["p"] },
		KeyGen:           expElGamalKeyGen,
		Encrypt:          expElGamalEncrypt,
		Decrypt:          expElGamalDecrypt,
		Add:              expElGamalAdd,
		MultiplyScalar:   expElGamalMultiplyScalar,
		ReEncrypt:        expElGamalReEncrypt,
	}
}

func expElGamalKeyGen(src *prng.Source, opts Options) (KeyMaterial, error) {
	bits := opts.KeySize
	if bits <= 0 {
		bits = expElGamalDefaultKeySize
	}
	p, err := bigmod.RandomPrime(src, bits, bits)
	if err != nil {
		return KeyMaterial{}, newError(ExponentialElGamal, "keygen", KindKeyGenFailure, err)
	}
	g := src.IntRange(big.NewInt(2), new(big.Int).Sub(p, big.NewInt(1)))
	x := src.IntRange(big.NewInt(1), new(big.Int).Sub(p, big.NewInt(1)))
	y, err := bigmod.ModPow(g, x, p)
	if err != nil {
		return KeyMaterial{}, newError(ExponentialElGamal, "keygen", KindKeyGenFailure, err)
	}
	limit := opts.PlaintextLimit
	if limit == nil {
		limit = big.NewInt(expElGamalDefaultDLPBound)
	}
	return KeyMaterial{
		Public:  map[string]*big.Int{"p": p, "g": g, "y": y, "limit": limit},
		Private: map[string]*big.Int{"x": x},
	}, nil
}

func expElGamalEncrypt(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error) {
	if err := requirePublic(ExponentialElGamal, "encrypt", km); err != nil {
		return Ciphertext{}, err
	}
	p, g, y := km.Public["p"], km.Public["g"], km.Public["y"]
	r := src.IntRange(big.NewInt(1), new(big.Int).Sub(p, big.NewInt(1)))
	c1, err := bigmod.ModPow(g, r, p)
	if err != nil {
		return Ciphertext{}, newError(ExponentialElGamal, "encrypt", KindInvalidInput, err)
	}
	gm, err := bigmod.ModPow(g, bigmod.PositiveMod(m, p), p)
	if err != nil {
		return Ciphertext{}, newError(ExponentialElGamal, "encrypt", KindInvalidInput, err)
	}
	yr, err := bigmod.ModPow(y, r, p)
	if err != nil {
		return Ciphertext{}, newError(ExponentialElGamal, "encrypt", KindInvalidInput, err)
	}
	c2 := new(big.Int).Mod(new(big.Int).Mul(gm, yr), p)
	return Ciphertext{Kind: KindPair, C1: c1, C2: c2}, nil
}

// expElGamalDecrypt recovers g^m then solves the discrete log by linear
// search up to the key's configured bound, per §4.6 "decryption requires
// brute-force DLP".
func expElGamalDecrypt(km KeyMaterial, c Ciphertext) (*big.Int, error) {
	if err := requirePrivate(ExponentialElGamal, "decrypt", km); err != nil {
		return nil, err
	}
	p, g, x := km.Public["p"], km.Public["g"], km.Private["x"]
	s, err := bigmod.ModPow(c.C1, x, p)
	if err != nil {
		return nil, newError(ExponentialElGamal, "decrypt", KindInvalidInput, err)
	}
	sInv, err := bigmod.ModInverse(s, p)
	if err != nil {
		return nil, newError(ExponentialElGamal, "decrypt", KindInvalidInput, err)
	}
	gm := new(big.Int).Mod(new(big.Int).Mul(c.C2, sInv), p)

	limit := km.Public["limit"]
	if limit == nil {
		limit = big.NewInt(expElGamalDefaultDLPBound)
	}
	candidate := big.NewInt(1) // g^0
	for i := int64(0); new(big.Int).SetInt64(i).Cmp(limit) < 0; i++ {
		if candidate.Cmp(gm) == 0 {
			return big.NewInt(i), nil
		}
		candidate.Mod(candidate.Mul(candidate, g), p)
	}
	return nil, newError(ExponentialElGamal, "decrypt", KindDecryptionFailure, nil)
}

func expElGamalAdd(km KeyMaterial, a, b Ciphertext) (Ciphertext, error) {
	if err := requirePublic(ExponentialElGamal, "add", km); err != nil {
		return Ciphertext{}, err
	}
	p := km.Public["p"]
	c1 := new(big.Int).Mod(new(big.Int).Mul(a.C1, b.C1), p)
	c2 := new(big.Int).Mod(new(big.Int).Mul(a.C2, b.C2), p)
	return Ciphertext{Kind: KindPair, C1: c1, C2: c2}, nil
}

func expElGamalMultiplyScalar(src *prng.Source, km KeyMaterial, a Ciphertext, k *big.Int) (Ciphertext, error) {
	if err := requirePublic(ExponentialElGamal, "scalar_multiply", km); err != nil {
		return Ciphertext{}, err
	}
	p := km.Public["p"]
	kk := bigmod.PositiveMod(k, p)
	c1, err := bigmod.ModPow(a.C1, kk, p)
	if err != nil {
		return Ciphertext{}, newError(ExponentialElGamal, "scalar_multiply", KindInvalidInput, err)
	}
	c2, err := bigmod.ModPow(a.C2, kk, p)
	if err != nil {
		return Ciphertext{}, newError(ExponentialElGamal, "scalar_multiply", KindInvalidInput, err)
	}
	return Ciphertext{Kind: KindPair, C1: c1, C2: c2}, nil
}

// expElGamalReEncrypt is add(c, encrypt(0)), the additive identity.
func expElGamalReEncrypt(src *prng.Source, km KeyMaterial, a Ciphertext) (Ciphertext, error) {
	identity, err := expElGamalEncrypt(src, km, big.NewInt(0))
	if err != nil {
		return Ciphertext{}, err
	}
	return expElGamalAdd(km, a, identity)
}
