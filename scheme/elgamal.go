package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/bigmod"
	"github.com/shieldphe/gophe/prng"
)

const elGamalDefaultKeySize = 256

func elGamalCapability() Capability {
	return Capability{
		Name:             ElGamal,
		PlaintextModulo:  func(km KeyMaterial) *big.Int { return km.Public["p"] },
		CiphertextModulo: func(km KeyMaterial) *big.Int { return km.Public["p"] },
		KeyGen:           elGamalKeyGen,
		Encrypt:          elGamalEncrypt,
		Decrypt:          elGamalDecrypt,
		Multiply:         elGamalMultiply,
		ReEncrypt:        elGamalReEncrypt,
	}
}

func elGamalKeyGen(src *prng.Source, opts Options) (KeyMaterial, error) {
	bits := opts.KeySize
	if bits <= 0 {
		bits = elGamalDefaultKeySize
	}
	p, err := bigmod.RandomPrime(src, bits, bits)
	if err != nil {
		return KeyMaterial{}, newError(ElGamal, "keygen", KindKeyGenFailure, err)
	}
	g := src.IntRange(big.NewInt(2), new(big.Int).Sub(p, big.NewInt(1)))
	x := src.IntRange(big.NewInt(1), new(big.Int).Sub(p, big.NewInt(1)))
	y, err := bigmod.ModPow(g, x, p)
	if err != nil {
		return KeyMaterial{}, newError(ElGamal, "keygen", KindKeyGenFailure, err)
	}
	return KeyMaterial{
		Public:  map[string]*big.Int{"p": p, "g": g, "y": y},
		Private: map[string]*big.Int{"x": x},
	}, nil
}

func elGamalEncrypt(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error) {
	if err := requirePublic(ElGamal, "encrypt", km); err != nil {
		return Ciphertext{}, err
	}
	p, g, y := km.Public["p"], km.Public["g"], km.Public["y"]
	r := src.IntRange(big.NewInt(1), new(big.Int).Sub(p, big.NewInt(1)))
	c1, err := bigmod.ModPow(g, r, p)
	if err != nil {
		return Ciphertext{}, newError(ElGamal, "encrypt", KindInvalidInput, err)
	}
	yr, err := bigmod.ModPow(y, r, p)
	if err != nil {
		return Ciphertext{}, newError(ElGamal, "encrypt", KindInvalidInput, err)
	}
	c2 := new(big.Int).Mod(new(big.Int).Mul(bigmod.PositiveMod(m, p), yr), p)
	return Ciphertext{Kind: KindPair, C1: c1, C2: c2}, nil
}

func elGamalDecrypt(km KeyMaterial, c Ciphertext) (*big.Int, error) {
	if err := requirePrivate(ElGamal, "decrypt", km); err != nil {
		return nil, err
	}
	p, x := km.Public["p"], km.Private["x"]
	s, err := bigmod.ModPow(c.C1, x, p)
	if err != nil {
		return nil, newError(ElGamal, "decrypt", KindInvalidInput, err)
	}
	sInv, err := bigmod.ModInverse(s, p)
	if err != nil {
		return nil, newError(ElGamal, "decrypt", KindInvalidInput, err)
	}
	m := new(big.Int).Mod(new(big.Int).Mul(c.C2, sInv), p)
	return m, nil
}

func elGamalMultiply(km KeyMaterial, a, b Ciphertext) (Ciphertext, error) {
	if err := requirePublic(ElGamal, "multiply", km); err != nil {
		return Ciphertext{}, err
	}
	p := km.Public["p"]
	c1 := new(big.Int).Mod(new(big.Int).Mul(a.C1, b.C1), p)
	c2 := new(big.Int).Mod(new(big.Int).Mul(a.C2, b.C2), p)
	return Ciphertext{Kind: KindPair, C1: c1, C2: c2}, nil
}

// elGamalReEncrypt is multiply(c, encrypt(1)), the multiplicative identity,
// per §4.6 "Re-encryption is defined as... multiply(c, encrypt(identity))
// for multiplicative [schemes], where identity is... 1".
func elGamalReEncrypt(src *prng.Source, km KeyMaterial, a Ciphertext) (Ciphertext, error) {
	identity, err := elGamalEncrypt(src, km, big.NewInt(1))
	if err != nil {
		return Ciphertext{}, err
	}
	return elGamalMultiply(km, a, identity)
}
