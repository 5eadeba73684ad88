package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/bigmod"
	"github.com/shieldphe/gophe/prng"
)

const rsaDefaultKeySize = 1024

var rsaDefaultExponent = big.NewInt(65537)

func rsaCapability() Capability {
	return Capability{
		Name:             RSA,
		PlaintextModulo:  func(km KeyMaterial) *big.Int { return km.Public["n"] },
		CiphertextModulo: func(km KeyMaterial) *big.Int { return km.Public["n"] },
		KeyGen:           rsaKeyGen,
		Encrypt:          rsaEncrypt,
		Decrypt:          rsaDecrypt,
		Multiply:         rsaMultiply,
	}
}

// rsaKeyGen picks two distinct primes of roughly key_size/2 bits, tries the
// conventional public exponent 65537 first (per the original LightPHE
// implementation) and falls back to a random odd candidate when 65537 does
// not satisfy gcd(e, phi) = 1.
func rsaKeyGen(src *prng.Source, opts Options) (KeyMaterial, error) {
	bits := opts.KeySize
	if bits <= 0 {
		bits = rsaDefaultKeySize
	}
	half := bits / 2

	for try := 0; try < opts.maxTries(); try++ {
		p, err := bigmod.RandomPrime(src, half, half)
		if err != nil {
			continue
		}
		q, err := bigmod.RandomPrime(src, half, half)
		if err != nil {
			continue
		}
		if p.Cmp(q) == 0 {
			continue
		}
		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(
			new(big.Int).Sub(p, big.NewInt(1)),
			new(big.Int).Sub(q, big.NewInt(1)),
		)

		e := new(big.Int).Set(rsaDefaultExponent)
		if bigmod.GCD(e, phi).Cmp(big.NewInt(1)) != 0 {
			found := false
			for inner := 0; inner < 64; inner++ {
				candidate := src.IntRange(big.NewInt(2), phi)
				if candidate.Bit(0) == 0 {
					candidate.Add(candidate, big.NewInt(1))
				}
				if bigmod.GCD(candidate, phi).Cmp(big.NewInt(1)) == 0 {
					e = candidate
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}

		d, err := bigmod.ModInverse(e, phi)
		if err != nil {
			continue
		}

		return KeyMaterial{
			Public:  map[string]*big.Int{"n": n, "e": e},
			Private: map[string]*big.Int{"d": d},
		}, nil
	}
	return KeyMaterial{}, newError(RSA, "keygen", KindKeyGenFailure, nil)
}

func rsaEncrypt(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error) {
	if err := requirePublic(RSA, "encrypt", km); err != nil {
		return Ciphertext{}, err
	}
	n, e := km.Public["n"], km.Public["e"]
	c, err := bigmod.ModPow(m, e, n)
	if err != nil {
		return Ciphertext{}, newError(RSA, "encrypt", KindInvalidInput, err)
	}
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

func rsaDecrypt(km KeyMaterial, c Ciphertext) (*big.Int, error) {
	if err := requirePrivate(RSA, "decrypt", km); err != nil {
		return nil, err
	}
	n, d := km.Public["n"], km.Private["d"]
	m, err := bigmod.ModPow(c.Value, d, n)
	if err != nil {
		return nil, newError(RSA, "decrypt", KindInvalidInput, err)
	}
	return m, nil
}

func rsaMultiply(km KeyMaterial, a, b Ciphertext) (Ciphertext, error) {
	if err := requirePublic(RSA, "multiply", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	product := new(big.Int).Mul(a.Value, b.Value)
	product.Mod(product, n)
	return Ciphertext{Kind: KindSingle, Value: product}, nil
}
