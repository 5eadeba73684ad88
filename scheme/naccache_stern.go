package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/bigmod"
	"github.com/shieldphe/gophe/prng"
)

const naccacheSternDefaultKeySize = 768

// naccacheSternDefaultPrimes is the default small-prime set σ is built from
// (§4.6A); callers who need a different plaintext block size can still reach
// the larger-block schemes (Paillier, Damgård-Jurik) instead.
var naccacheSternDefaultPrimes = []int64{3, 5, 7, 11, 13, 17, 19, 23}

func naccacheSternCapability() Capability {
	return Capability{
		Name:             NaccacheStern,
		PlaintextModulo:  func(km KeyMaterial) *big.Int { return km.Public["sigma"] },
		CiphertextModulo: func(km KeyMaterial) *big.Int { return km.Public["n"] },
		KeyGen:           naccacheSternKeyGen,
		Encrypt:          naccacheSternEncrypt,
		Decrypt:          naccacheSternDecrypt,
		Add:              naccacheSternAdd,
		MultiplyScalar:   naccacheSternMultiplyScalar,
	}
}

func naccacheSternSigma() *big.Int {
	sigma := big.NewInt(1)
	for _, p := range naccacheSternDefaultPrimes {
		sigma.Mul(sigma, big.NewInt(p))
	}
	return sigma
}

// naccacheSternFindModulusPrime finds p = 2*sigma*u+1 prime, so every small
// prime factor of sigma divides p-1 and the corresponding order-p_i
// subgroups exist in Z_p^*.
func naccacheSternFindModulusPrime(src *prng.Source, bits int, sigma *big.Int, maxTries int) (*big.Int, error) {
	twoSigma := new(big.Int).Mul(sigma, big.NewInt(2))
	for try := 0; try < maxTries; try++ {
		u := src.Int(bits)
		candidate := new(big.Int).Add(new(big.Int).Mul(twoSigma, u), big.NewInt(1))
		if candidate.BitLen() < bits {
			continue
		}
		if candidate.ProbablyPrime(20) {
			return candidate, nil
		}
	}
	return nil, newError(NaccacheStern, "keygen", KindKeyGenFailure, nil)
}

func naccacheSternKeyGen(src *prng.Source, opts Options) (KeyMaterial, error) {
	bits := opts.KeySize
	if bits <= 0 {
		bits = naccacheSternDefaultKeySize
	}
	half := bits / 2
	sigma := naccacheSternSigma()

	for try := 0; try < opts.maxTries(); try++ {
		p, err := naccacheSternFindModulusPrime(src, half, sigma, opts.maxTries())
		if err != nil {
			continue
		}
		q, err := bigmod.RandomPrime(src, half, half)
		if err != nil || p.Cmp(q) == 0 {
			continue
		}
		qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
		if bigmod.GCD(sigma, qMinus1).Cmp(big.NewInt(1)) != 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(new(big.Int).Sub(p, big.NewInt(1)), qMinus1)

		g, ok := naccacheSternFindGenerator(src, n, phi, opts.maxTries())
		if !ok {
			continue
		}

		return KeyMaterial{
			Public:  map[string]*big.Int{"n": n, "g": g, "sigma": sigma},
			Private: map[string]*big.Int{"p": p, "q": q, "phi": phi},
		}, nil
	}
	return KeyMaterial{}, newError(NaccacheStern, "keygen", KindKeyGenFailure, nil)
}

// naccacheSternFindGenerator searches for g whose order mod n is a multiple
// of every small prime in the σ factorisation, i.e. g^(phi/p_i) != 1 for
// each p_i.
func naccacheSternFindGenerator(src *prng.Source, n, phi *big.Int, maxTries int) (*big.Int, bool) {
	for try := 0; try < maxTries; try++ {
		g := src.IntRange(big.NewInt(2), new(big.Int).Sub(n, big.NewInt(1)))
		full := true
		for _, pi := range naccacheSternDefaultPrimes {
			e := new(big.Int).Div(phi, big.NewInt(pi))
			test, err := bigmod.ModPow(g, e, n)
			if err != nil || test.Cmp(big.NewInt(1)) == 0 {
				full = false
				break
			}
		}
		if full {
			return g, true
		}
	}
	return nil, false
}

func naccacheSternEncrypt(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error) {
	if err := requirePublic(NaccacheStern, "encrypt", km); err != nil {
		return Ciphertext{}, err
	}
	n, g, sigma := km.Public["n"], km.Public["g"], km.Public["sigma"]
	mm := bigmod.PositiveMod(m, sigma)
	c, err := bigmod.ModPow(g, mm, n)
	if err != nil {
		return Ciphertext{}, newError(NaccacheStern, "encrypt", KindInvalidInput, err)
	}
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

// naccacheSternDecrypt solves the discrete log modulo each small prime p_i
// by bounded search, then recombines the residues by CRT to recover m
// modulo sigma.
func naccacheSternDecrypt(km KeyMaterial, c Ciphertext) (*big.Int, error) {
	if err := requirePrivate(NaccacheStern, "decrypt", km); err != nil {
		return nil, err
	}
	n, g, phi := km.Public["n"], km.Public["g"], km.Private["phi"]

	terms := make([]bigmod.CRTTerm, 0, len(naccacheSternDefaultPrimes))
	for _, pi := range naccacheSternDefaultPrimes {
		piBig := big.NewInt(pi)
		e := new(big.Int).Div(phi, piBig)
		a, err := bigmod.ModPow(c.Value, e, n)
		if err != nil {
			return nil, newError(NaccacheStern, "decrypt", KindInvalidInput, err)
		}
		base, err := bigmod.ModPow(g, e, n)
		if err != nil {
			return nil, newError(NaccacheStern, "decrypt", KindInvalidInput, err)
		}
		mi, found := int64(-1), false
		candidate := big.NewInt(1)
		for i := int64(0); i < pi; i++ {
			if candidate.Cmp(a) == 0 {
				mi, found = i, true
				break
			}
			candidate.Mod(candidate.Mul(candidate, base), n)
		}
		if !found {
			return nil, newError(NaccacheStern, "decrypt", KindDecryptionFailure, nil)
		}
		terms = append(terms, bigmod.CRTTerm{Remainder: big.NewInt(mi), Modulus: piBig})
	}

	m, _, err := bigmod.SolveCRT(terms)
	if err != nil {
		return nil, newError(NaccacheStern, "decrypt", KindDecryptionFailure, err)
	}
	return m, nil
}

func naccacheSternAdd(km KeyMaterial, a, b Ciphertext) (Ciphertext, error) {
	if err := requirePublic(NaccacheStern, "add", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	c := new(big.Int).Mod(new(big.Int).Mul(a.Value, b.Value), n)
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

func naccacheSternMultiplyScalar(src *prng.Source, km KeyMaterial, a Ciphertext, k *big.Int) (Ciphertext, error) {
	if err := requirePublic(NaccacheStern, "scalar_multiply", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	c, err := bigmod.ModPow(a.Value, k, n)
	if err != nil {
		return Ciphertext{}, newError(NaccacheStern, "scalar_multiply", KindInvalidInput, err)
	}
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

// TestVectorKeys returns a deterministic key pair built from a keyed PRNG,
// for tests that need stable Naccache-Stern parameters (Open Question:
// pre-generated test vectors). The keygen search runs on every call, from the
// same fixed seed, so every call yields the same key material.
func TestVectorKeys() (KeyMaterial, error) {
	src, err := prng.NewKeyed([]byte("naccache-stern-fixed-test-vector"))
	if err != nil {
		return KeyMaterial{}, err
	}
	return naccacheSternKeyGen(src, Options{KeySize: 256, MaxTries: 200000})
}
