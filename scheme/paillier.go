package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/bigmod"
	"github.com/shieldphe/gophe/prng"
)

const paillierDefaultKeySize = 1024

func paillierCapability() Capability {
	return Capability{
		Name:             Paillier,
		PlaintextModulo:  func(km KeyMaterial) *big.Int { return km.Public["n"] },
		CiphertextModulo: func(km KeyMaterial) *big.Int { return new(big.Int).Mul(km.Public["n"], km.Public["n"]) },
		KeyGen:           paillierKeyGen,
		Encrypt:          paillierEncrypt,
		Decrypt:          paillierDecrypt,
		Add:              paillierAdd,
		MultiplyScalar:   paillierMultiplyScalar,
		ReEncrypt:        paillierReEncrypt,
	}
}

// paillierKeyGen always sets g = 1+n, the scheme's original simplification,
// rather than searching for a random generator (§4.6A).
func paillierKeyGen(src *prng.Source, opts Options) (KeyMaterial, error) {
	bits := opts.KeySize
	if bits <= 0 {
		bits = paillierDefaultKeySize
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
		phi := new(big.Int).Mul(
			new(big.Int).Sub(p, big.NewInt(1)),
			new(big.Int).Sub(q, big.NewInt(1)),
		)
		g := new(big.Int).Add(n, big.NewInt(1))
		return KeyMaterial{
			Public:  map[string]*big.Int{"n": n, "g": g},
			Private: map[string]*big.Int{"phi": phi},
		}, nil
	}
	return KeyMaterial{}, newError(Paillier, "keygen", KindKeyGenFailure, nil)
}

func paillierEncrypt(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error) {
	if err := requirePublic(Paillier, "encrypt", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	nSquared := new(big.Int).Mul(n, n)
	var r *big.Int
	for {
		r = src.IntRange(big.NewInt(1), n)
		if bigmod.GCD(r, n).Cmp(big.NewInt(1)) == 0 {
			break
		}
	}
	mm := bigmod.PositiveMod(m, n)
	// (1+n)^m mod n^2 == 1+m*n mod n^2, the standard Paillier optimization.
	gm := new(big.Int).Mod(new(big.Int).Add(big.NewInt(1), new(big.Int).Mul(mm, n)), nSquared)
	rn, err := bigmod.ModPow(r, n, nSquared)
	if err != nil {
		return Ciphertext{}, newError(Paillier, "encrypt", KindInvalidInput, err)
	}
	c := new(big.Int).Mod(new(big.Int).Mul(gm, rn), nSquared)
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

// paillierL computes L(x) = (x-1)/n.
func paillierL(x, n *big.Int) *big.Int {
	num := new(big.Int).Sub(x, big.NewInt(1))
	return new(big.Int).Div(num, n)
}

func paillierDecrypt(km KeyMaterial, c Ciphertext) (*big.Int, error) {
	if err := requirePrivate(Paillier, "decrypt", km); err != nil {
		return nil, err
	}
	n, phi := km.Public["n"], km.Private["phi"]
	nSquared := new(big.Int).Mul(n, n)
	cPhi, err := bigmod.ModPow(c.Value, phi, nSquared)
	if err != nil {
		return nil, newError(Paillier, "decrypt", KindInvalidInput, err)
	}
	mu, err := bigmod.ModInverse(phi, n)
	if err != nil {
		return nil, newError(Paillier, "decrypt", KindInvalidInput, err)
	}
	m := new(big.Int).Mod(new(big.Int).Mul(paillierL(cPhi, n), mu), n)
	return m, nil
}

func paillierAdd(km KeyMaterial, a, b Ciphertext) (Ciphertext, error) {
	if err := requirePublic(Paillier, "add", km); err != nil {
		return Ciphertext{}, err
	}
	nSquared := new(big.Int).Mul(km.Public["n"], km.Public["n"])
	c := new(big.Int).Mod(new(big.Int).Mul(a.Value, b.Value), nSquared)
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

func paillierMultiplyScalar(src *prng.Source, km KeyMaterial, a Ciphertext, k *big.Int) (Ciphertext, error) {
	if err := requirePublic(Paillier, "scalar_multiply", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	nSquared := new(big.Int).Mul(n, n)
	kk := bigmod.PositiveMod(k, n)
	c, err := bigmod.ModPow(a.Value, kk, nSquared)
	if err != nil {
		return Ciphertext{}, newError(Paillier, "scalar_multiply", KindInvalidInput, err)
	}
	return Ciphertext{Kind: KindSingle, Value: c}, nil
}

func paillierReEncrypt(src *prng.Source, km KeyMaterial, a Ciphertext) (Ciphertext, error) {
	identity, err := paillierEncrypt(src, km, big.NewInt(0))
	if err != nil {
		return Ciphertext{}, err
	}
	return paillierAdd(km, a, identity)
}
