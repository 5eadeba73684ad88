package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/bigmod"
	"github.com/shieldphe/gophe/prng"
)

const (
	damgardJurikDefaultKeySize  = 1024
	damgardJurikDefaultExponent = 2
)

func damgardJurikCapability() Capability {
	return Capability{
		Name:             DamgardJurik,
		PlaintextModulo:  damgardJurikPlaintextModulo,
		CiphertextModulo: damgardJurikCiphertextModulo,
		KeyGen:           damgardJurikKeyGen,
		Encrypt:          damgardJurikEncrypt,
		Decrypt:          damgardJurikDecrypt,
		Add:              damgardJurikAdd,
		MultiplyScalar:   damgardJurikMultiplyScalar,
		ReEncrypt:        damgardJurikReEncrypt,
	}
}

func damgardJurikExponent(km KeyMaterial) int {
	s, ok := km.Public["s"]
	if !ok || s == nil {
		return damgardJurikDefaultExponent
	}
	return int(s.Int64())
}

func damgardJurikPlaintextModulo(km KeyMaterial) *big.Int {
	n := km.Public["n"]
	return new(big.Int).Exp(n, big.NewInt(int64(damgardJurikExponent(km))), nil)
}

func damgardJurikCiphertextModulo(km KeyMaterial) *big.Int {
	n := km.Public["n"]
	return new(big.Int).Exp(n, big.NewInt(int64(damgardJurikExponent(km)+1)), nil)
}

// damgardJurikKeyGen picks n=pq as Paillier does, then derives a decryption
// exponent d satisfying d≡0 (mod λ) and d≡1 (mod n^s) by CRT, the
// generalisation that lets decryption strip the r^(n^s) blinding term while
// leaving (1+n)^m intact (§4.6A).
func damgardJurikKeyGen(src *prng.Source, opts Options) (KeyMaterial, error) {
	bits := opts.KeySize
	if bits <= 0 {
		bits = damgardJurikDefaultKeySize
	}
	s := opts.Exponent
	if s <= 0 {
		s = damgardJurikDefaultExponent
	}
	half := bits / 2

	for try := 0; try < opts.maxTries(); try++ {
		p, err := bigmod.RandomPrime(src, half, half)
		if err != nil {
			continue
		}
		q, err := bigmod.RandomPrime(src, half, half)
		if err != nil || p.Cmp(q) == 0 {
			continue
		}
		n := new(big.Int).Mul(p, q)
		lambda := bigmod.GCD(
			new(big.Int).Sub(p, big.NewInt(1)),
			new(big.Int).Sub(q, big.NewInt(1)),
		)
		lambda = new(big.Int).Div(
			new(big.Int).Mul(new(big.Int).Sub(p, big.NewInt(1)), new(big.Int).Sub(q, big.NewInt(1))),
			lambda,
		)
		nS := new(big.Int).Exp(n, big.NewInt(int64(s)), nil)
		if bigmod.GCD(lambda, nS).Cmp(big.NewInt(1)) != 0 {
			continue
		}
		d, _, err := bigmod.SolveCRT([]bigmod.CRTTerm{
			{Remainder: big.NewInt(0), Modulus: lambda},
			{Remainder: big.NewInt(1), Modulus: nS},
		})
		if err != nil {
			continue
		}
		return KeyMaterial{
			Public:  map[string]*big.Int{"n": n, "s": big.NewInt(int64(s))},
			Private: map[string]*big.Int{"d": d},
		}, nil
	}
	return KeyMaterial{}, newError(DamgardJurik, "keygen", KindKeyGenFailure, nil)
}

func damgardJurikEncrypt(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error) {
	if err := requirePublic(DamgardJurik, "encrypt", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	s := damgardJurikExponent(km)
	nS := new(big.Int).Exp(n, big.NewInt(int64(s)), nil)
	nS1 := new(big.Int).Mul(nS, n)

	var r *big.Int
	for {
		r = src.IntRange(big.NewInt(1), n)
		if bigmod.GCD(r, n).Cmp(big.NewInt(1)) == 0 {
			break
		}
	}
	mm := bigmod.PositiveMod(m, nS)
	gm := new(big.Int).Mod(new(big.Int).Add(big.NewInt(1), new(big.Int).Mul(mm, n)), nS1)
	if s > 1 {
		// For s>1, (1+n)^m mod n^(s+1) is not simply 1+mn; recompute exactly.
		var err error
		gm, err = bigmod.ModPow(new(big.Int).Add(n, big.NewInt(1)), mm, nS1)
		if err != nil {
			return Ciphertext{}, newError(DamgardJurik, "encrypt", KindInvalidInput, err)
		}
	}
	rn, err := bigmod.ModPow(r, nS, nS1)
	if err != nil {
		return Ciphertext{}, newError(DamgardJurik, "encrypt", KindInvalidInput, err)
	}
	c := new(big.Int).Mod(new(big.Int).Mul(gm, rn), nS1)
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

// damgardJurikDecrypt recovers m one base-n digit at a time from the n-adic
// expansion of (1+n)^m: digit j is exposed by comparing c^d against
// (1+n)^(m mod n^j) one further power of n out (§4.6A).
func damgardJurikDecrypt(km KeyMaterial, c Ciphertext) (*big.Int, error) {
	if err := requirePrivate(DamgardJurik, "decrypt", km); err != nil {
		return nil, err
	}
	n, d := km.Public["n"], km.Private["d"]
	s := damgardJurikExponent(km)
	nS1 := new(big.Int).Exp(n, big.NewInt(int64(s+1)), nil)

	cd, err := bigmod.ModPow(c.Value, d, nS1)
	if err != nil {
		return nil, newError(DamgardJurik, "decrypt", KindInvalidInput, err)
	}

	base := new(big.Int).Add(n, big.NewInt(1))
	m := big.NewInt(0)
	nPow := big.NewInt(1) // n^j
	for j := 0; j < s; j++ {
		modulus := new(big.Int).Mul(nPow, new(big.Int).Mul(n, n)) // n^(j+2)
		if modulus.Cmp(nS1) > 0 {
			modulus = nS1
		}
		a, err := bigmod.ModPow(base, m, modulus)
		if err != nil {
			return nil, newError(DamgardJurik, "decrypt", KindInvalidInput, err)
		}
		diff := new(big.Int).Mod(new(big.Int).Sub(new(big.Int).Mod(cd, modulus), a), modulus)
		digit := new(big.Int).Mod(new(big.Int).Div(diff, new(big.Int).Mul(nPow, n)), n)
		m.Add(m, new(big.Int).Mul(digit, nPow))
		nPow.Mul(nPow, n)
	}
	return m, nil
}

func damgardJurikAdd(km KeyMaterial, a, b Ciphertext) (Ciphertext, error) {
	if err := requirePublic(DamgardJurik, "add", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	s := damgardJurikExponent(km)
	nS1 := new(big.Int).Exp(n, big.NewInt(int64(s+1)), nil)
	c := new(big.Int).Mod(new(big.Int).Mul(a.Value, b.Value), nS1)
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

func damgardJurikMultiplyScalar(src *prng.Source, km KeyMaterial, a Ciphertext, k *big.Int) (Ciphertext, error) {
	if err := requirePublic(DamgardJurik, "scalar_multiply", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	s := damgardJurikExponent(km)
	nS := new(big.Int).Exp(n, big.NewInt(int64(s)), nil)
	nS1 := new(big.Int).Mul(nS, n)
	kk := bigmod.PositiveMod(k, nS)
	c, err := bigmod.ModPow(a.Value, kk, nS1)
	if err != nil {
		return Ciphertext{}, newError(DamgardJurik, "scalar_multiply", KindInvalidInput, err)
	}
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

func damgardJurikReEncrypt(src *prng.Source, km KeyMaterial, a Ciphertext) (Ciphertext, error) {
	identity, err := damgardJurikEncrypt(src, km, big.NewInt(0))
	if err != nil {
		return Ciphertext{}, err
	}
	return damgardJurikAdd(km, a, identity)
}
