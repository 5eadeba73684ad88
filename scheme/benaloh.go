package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/bigmod"
	"github.com/shieldphe/gophe/prng"
)

const (
	benalohDefaultKeySize = 512
	benalohDefaultBlock   = 1009 // a prime block size r; plaintexts live in Z_r
)

func benalohCapability() Capability {
	return Capability{
		Name:             Benaloh,
		PlaintextModulo:  func(km KeyMaterial) *big.Int { return km.Public["r"] },
		CiphertextModulo: func(km KeyMaterial) *big.Int { return km.Public["n"] },
		KeyGen:           benalohKeyGen,
		Encrypt:          benalohEncrypt,
		Decrypt:          benalohDecrypt,
		Add:              benalohAdd,
		MultiplyScalar:   benalohMultiplyScalar,
		ReEncrypt:        benalohReEncrypt,
	}
}

// benalohFindPrimeFactor finds a prime p = k*r+1 for random k, so the block
// size r divides p-1 and the order-r subgroup Benaloh's scheme relies on
// exists in Z_p^*. Both this search and keygen's outer retry loop share the
// single Options.MaxTries knob (§4.6A).
func benalohFindPrimeFactor(src *prng.Source, bits int, r *big.Int, maxTries int) (*big.Int, error) {
	for try := 0; try < maxTries; try++ {
		k := src.Int(bits)
		candidate := new(big.Int).Add(new(big.Int).Mul(k, r), big.NewInt(1))
		if candidate.BitLen() < bits {
			continue
		}
		if candidate.ProbablyPrime(20) {
			return candidate, nil
		}
	}
	return nil, newError(Benaloh, "keygen", KindKeyGenFailure, nil)
}

func benalohKeyGen(src *prng.Source, opts Options) (KeyMaterial, error) {
	bits := opts.KeySize
	if bits <= 0 {
		bits = benalohDefaultKeySize
	}
	half := bits / 2
	r := opts.PlaintextLimit
	if r == nil {
		r = big.NewInt(benalohDefaultBlock)
	}

	for try := 0; try < opts.maxTries(); try++ {
		p, err := benalohFindPrimeFactor(src, half, r, opts.maxTries())
		if err != nil {
			continue
		}
		q, err := bigmod.RandomPrime(src, half, half)
		if err != nil || p.Cmp(q) == 0 {
			continue
		}
		qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
		if bigmod.GCD(r, qMinus1).Cmp(big.NewInt(1)) != 0 {
			continue
		}
		pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
		if bigmod.GCD(r, new(big.Int).Div(pMinus1, r)).Cmp(big.NewInt(1)) != 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(pMinus1, qMinus1)
		phiOverR := new(big.Int).Div(phi, r)

		var y *big.Int
		found := false
		for inner := 0; inner < opts.maxTries(); inner++ {
			candidate := src.IntRange(big.NewInt(2), new(big.Int).Sub(n, big.NewInt(1)))
			test, err := bigmod.ModPow(candidate, phiOverR, n)
			if err == nil && test.Cmp(big.NewInt(1)) != 0 {
				y = candidate
				found = true
				break
			}
		}
		if !found {
			continue
		}

		return KeyMaterial{
			Public:  map[string]*big.Int{"n": n, "y": y, "r": r},
			Private: map[string]*big.Int{"p": p, "q": q, "phi": phi},
		}, nil
	}
	return KeyMaterial{}, newError(Benaloh, "keygen", KindKeyGenFailure, nil)
}

func benalohEncrypt(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error) {
	if err := requirePublic(Benaloh, "encrypt", km); err != nil {
		return Ciphertext{}, err
	}
	n, y, r := km.Public["n"], km.Public["y"], km.Public["r"]
	u := src.IntRange(big.NewInt(1), new(big.Int).Sub(n, big.NewInt(1)))
	ym, err := bigmod.ModPow(y, bigmod.PositiveMod(m, r), n)
	if err != nil {
		return Ciphertext{}, newError(Benaloh, "encrypt", KindInvalidInput, err)
	}
	ur, err := bigmod.ModPow(u, r, n)
	if err != nil {
		return Ciphertext{}, newError(Benaloh, "encrypt", KindInvalidInput, err)
	}
	c := new(big.Int).Mod(new(big.Int).Mul(ym, ur), n)
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

// benalohDecrypt raises the ciphertext into the order-r subgroup, then
// solves the discrete log there by bounded linear search, failing
// KindDecryptionFailure past r attempts.
func benalohDecrypt(km KeyMaterial, c Ciphertext) (*big.Int, error) {
	if err := requirePrivate(Benaloh, "decrypt", km); err != nil {
		return nil, err
	}
	n, y, r, phi := km.Public["n"], km.Public["y"], km.Public["r"], km.Private["phi"]
	phiOverR := new(big.Int).Div(phi, r)

	a, err := bigmod.ModPow(c.Value, phiOverR, n)
	if err != nil {
		return nil, newError(Benaloh, "decrypt", KindInvalidInput, err)
	}
	base, err := bigmod.ModPow(y, phiOverR, n)
	if err != nil {
		return nil, newError(Benaloh, "decrypt", KindInvalidInput, err)
	}

	candidate := big.NewInt(1)
	limit := r.Int64()
	for i := int64(0); i < limit; i++ {
		if candidate.Cmp(a) == 0 {
			return big.NewInt(i), nil
		}
		candidate.Mod(candidate.Mul(candidate, base), n)
	}
	return nil, newError(Benaloh, "decrypt", KindDecryptionFailure, nil)
}

func benalohAdd(km KeyMaterial, a, b Ciphertext) (Ciphertext, error) {
	if err := requirePublic(Benaloh, "add", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	c := new(big.Int).Mod(new(big.Int).Mul(a.Value, b.Value), n)
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

func benalohMultiplyScalar(src *prng.Source, km KeyMaterial, a Ciphertext, k *big.Int) (Ciphertext, error) {
	if err := requirePublic(Benaloh, "scalar_multiply", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	kk := bigmod.PositiveMod(k, km.Public["r"])
	c, err := bigmod.ModPow(a.Value, kk, n)
	if err != nil {
		return Ciphertext{}, newError(Benaloh, "scalar_multiply", KindInvalidInput, err)
	}
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

func benalohReEncrypt(src *prng.Source, km KeyMaterial, a Ciphertext) (Ciphertext, error) {
	identity, err := benalohEncrypt(src, km, big.NewInt(0))
	if err != nil {
		return Ciphertext{}, err
	}
	return benalohAdd(km, a, identity)
}
