package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/bigmod"
	"github.com/shieldphe/gophe/prng"
)

const okamotoUchiyamaDefaultKeySize = 768

func okamotoUchiyamaCapability() Capability {
	return Capability{
		Name:             OkamotoUchiyama,
		PlaintextModulo:  okamotoUchiyamaPlaintextModulo,
		CiphertextModulo: func(km KeyMaterial) *big.Int { return km.Public["n"] },
		KeyGen:           okamotoUchiyamaKeyGen,
		Encrypt:          okamotoUchiyamaEncrypt,
		Decrypt:          okamotoUchiyamaDecrypt,
		Add:              okamotoUchiyamaAdd,
		MultiplyScalar:   okamotoUchiyamaMultiplyScalar,
		ReEncrypt:        okamotoUchiyamaReEncrypt,
	}
}

// okamotoUchiyamaPlaintextModulo returns the exact factor p when the private
// key is present, else the public bit-length bound 2^k; the true plaintext
// modulus p is never exposed by the public key alone.
func okamotoUchiyamaPlaintextModulo(km KeyMaterial) *big.Int {
	if p, ok := km.Private["p"]; ok && p != nil {
		return p
	}
	k, ok := km.Public["k"]
	if !ok || k == nil {
		return nil
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(k.Int64()))
}

// okamotoUchiyamaKeyGen builds n = p^2*q and a generator g whose order mod
// p^2 is a multiple of p, i.e. g^(p-1) != 1 (mod p^2); h = g^n mod n hides p
// from the public key (§4.6A).
func okamotoUchiyamaKeyGen(src *prng.Source, opts Options) (KeyMaterial, error) {
	bits := opts.KeySize
	if bits <= 0 {
		bits = okamotoUchiyamaDefaultKeySize
	}
	third := bits / 3

	for try := 0; try < opts.maxTries(); try++ {
		p, err := bigmod.RandomPrime(src, third, third)
		if err != nil {
			continue
		}
		q, err := bigmod.RandomPrime(src, third, third)
		if err != nil || p.Cmp(q) == 0 {
			continue
		}
		pSquared := new(big.Int).Mul(p, p)
		n := new(big.Int).Mul(pSquared, q)

		g := src.IntRange(big.NewInt(2), new(big.Int).Sub(n, big.NewInt(1)))
		gp, err := bigmod.ModPow(g, new(big.Int).Sub(p, big.NewInt(1)), pSquared)
		if err != nil || gp.Cmp(big.NewInt(1)) == 0 {
			continue
		}
		h, err := bigmod.ModPow(g, n, n)
		if err != nil {
			continue
		}
		return KeyMaterial{
			Public:  map[string]*big.Int{"n": n, "g": g, "h": h, "k": big.NewInt(int64(third))},
			Private: map[string]*big.Int{"p": p},
		}, nil
	}
	return KeyMaterial{}, newError(OkamotoUchiyama, "keygen", KindKeyGenFailure, nil)
}

func okamotoUchiyamaEncrypt(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error) {
	if err := requirePublic(OkamotoUchiyama, "encrypt", km); err != nil {
		return Ciphertext{}, err
	}
	n, g, h := km.Public["n"], km.Public["g"], km.Public["h"]
	r := src.IntRange(big.NewInt(1), n)
	gm, err := bigmod.ModPow(g, m, n)
	if err != nil {
		return Ciphertext{}, newError(OkamotoUchiyama, "encrypt", KindInvalidInput, err)
	}
	hr, err := bigmod.ModPow(h, r, n)
	if err != nil {
		return Ciphertext{}, newError(OkamotoUchiyama, "encrypt", KindInvalidInput, err)
	}
	c := new(big.Int).Mod(new(big.Int).Mul(gm, hr), n)
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

// okamotoUchiyamaL computes the base-p L function (x-1)/p.
func okamotoUchiyamaL(x, p *big.Int) *big.Int {
	return new(big.Int).Div(new(big.Int).Sub(x, big.NewInt(1)), p)
}

func okamotoUchiyamaDecrypt(km KeyMaterial, c Ciphertext) (*big.Int, error) {
	if err := requirePrivate(OkamotoUchiyama, "decrypt", km); err != nil {
		return nil, err
	}
	p, g := km.Private["p"], km.Public["g"]
	pSquared := new(big.Int).Mul(p, p)
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))

	a, err := bigmod.ModPow(c.Value, pMinus1, pSquared)
	if err != nil {
		return nil, newError(OkamotoUchiyama, "decrypt", KindInvalidInput, err)
	}
	b, err := bigmod.ModPow(g, pMinus1, pSquared)
	if err != nil {
		return nil, newError(OkamotoUchiyama, "decrypt", KindInvalidInput, err)
	}
	bInv, err := bigmod.ModInverse(okamotoUchiyamaL(b, p), p)
	if err != nil {
		return nil, newError(OkamotoUchiyama, "decrypt", KindInvalidInput, err)
	}
	m := new(big.Int).Mod(new(big.Int).Mul(okamotoUchiyamaL(a, p), bInv), p)
	return m, nil
}

func okamotoUchiyamaAdd(km KeyMaterial, a, b Ciphertext) (Ciphertext, error) {
	if err := requirePublic(OkamotoUchiyama, "add", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	c := new(big.Int).Mod(new(big.Int).Mul(a.Value, b.Value), n)
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

func okamotoUchiyamaMultiplyScalar(src *prng.Source, km KeyMaterial, a Ciphertext, k *big.Int) (Ciphertext, error) {
	if err := requirePublic(OkamotoUchiyama, "scalar_multiply", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	c, err := bigmod.ModPow(a.Value, k, n)
	if err != nil {
		return Ciphertext{}, newError(OkamotoUchiyama, "scalar_multiply", KindInvalidInput, err)
	}
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

func okamotoUchiyamaReEncrypt(src *prng.Source, km KeyMaterial, a Ciphertext) (Ciphertext, error) {
	identity, err := okamotoUchiyamaEncrypt(src, km, big.NewInt(0))
	if err != nil {
		return Ciphertext{}, err
	}
	return okamotoUchiyamaAdd(km, a, identity)
}
