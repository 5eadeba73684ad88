package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/bigmod"
	"github.com/shieldphe/gophe/prng"
)

const goldwasserMicaliDefaultKeySize = 512

func goldwasserMicaliCapability() Capability {
	return Capability{
		Name:             GoldwasserMicali,
		PlaintextModulo:  func(KeyMaterial) *big.Int { return big.NewInt(2) },
		CiphertextModulo: func(km KeyMaterial) *big.Int { return km.Public["n"] },
		KeyGen:           goldwasserMicaliKeyGen,
		Encrypt:          goldwasserMicaliEncrypt,
		Decrypt:          goldwasserMicaliDecrypt,
		Xor:              goldwasserMicaliXor,
	}
}

// goldwasserMicaliKeyGen picks n=pq and a quadratic non-residue x that is a
// non-residue modulo both p and q (Jacobi symbol -1 against each), the
// standard pseudo-square used as the public key (§4.6A).
func goldwasserMicaliKeyGen(src *prng.Source, opts Options) (KeyMaterial, error) {
	bits := opts.KeySize
	if bits <= 0 {
		bits = goldwasserMicaliDefaultKeySize
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

		var x *big.Int
		found := false
		for inner := 0; inner < opts.maxTries(); inner++ {
			candidate := src.IntRange(big.NewInt(2), new(big.Int).Sub(n, big.NewInt(1)))
			if bigmod.Jacobi(candidate, p) == -1 && bigmod.Jacobi(candidate, q) == -1 {
				x = candidate
				found = true
				break
			}
		}
		if !found {
			continue
		}

		return KeyMaterial{
			Public:  map[string]*big.Int{"n": n, "x": x},
			Private: map[string]*big.Int{"p": p, "q": q},
		}, nil
	}
	return KeyMaterial{}, newError(GoldwasserMicali, "keygen", KindKeyGenFailure, nil)
}

// goldwasserMicaliEncrypt encrypts m bit by bit: m's binary digits (MSB
// first) each become a ciphertext in Z_n^*, a quadratic residue for a 0 bit
// and x times a quadratic residue for a 1 bit.
func goldwasserMicaliEncrypt(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error) {
	if err := requirePublic(GoldwasserMicali, "encrypt", km); err != nil {
		return Ciphertext{}, err
	}
	n, x := km.Public["n"], km.Public["x"]
	if m.Sign() < 0 {
		return Ciphertext{}, newError(GoldwasserMicali, "encrypt", KindInvalidInput, nil)
	}
	bitLen := m.BitLen()
	if bitLen == 0 {
		bitLen = 1
	}
	bits := make([]*big.Int, bitLen)
	for i := 0; i < bitLen; i++ {
		bitIdx := bitLen - 1 - i
		r := src.IntRange(big.NewInt(1), new(big.Int).Sub(n, big.NewInt(1)))
		rSquared := new(big.Int).Mod(new(big.Int).Mul(r, r), n)
		if m.Bit(bitIdx) == 1 {
			rSquared.Mod(rSquared.Mul(rSquared, x), n)
		}
		bits[i] = rSquared
	}
	return Ciphertext{Kind: KindBits, Bits: bits}, nil
}

// goldwasserMicaliDecrypt recovers each bit by testing whether the
// ciphertext element is a quadratic residue mod p (equivalently mod q): a 0
// bit is a QR, a 1 bit is not.
func goldwasserMicaliDecrypt(km KeyMaterial, c Ciphertext) (*big.Int, error) {
	if err := requirePrivate(GoldwasserMicali, "decrypt", km); err != nil {
		return nil, err
	}
	p := km.Private["p"]
	m := big.NewInt(0)
	for _, ct := range c.Bits {
		m.Lsh(m, 1)
		if bigmod.Jacobi(ct, p) == -1 {
			m.Or(m, big.NewInt(1))
		}
	}
	return m, nil
}

// goldwasserMicaliXor multiplies corresponding bit-ciphertexts mod n, which
// flips the decrypted bit of either operand whenever the other carries a 1,
// i.e. computes bitwise XOR of the two plaintexts. An operand with fewer
// bits is zero-padded at its most-significant end with fresh encryptions of
// 0 before combining, so shorter plaintexts need not be re-encoded at the
// longer operand's bit width (§4.6A).
func goldwasserMicaliXor(src *prng.Source, km KeyMaterial, a, b Ciphertext) (Ciphertext, error) {
	if err := requirePublic(GoldwasserMicali, "xor", km); err != nil {
		return Ciphertext{}, err
	}
	n := km.Public["n"]
	aBits, bBits := a.Bits, b.Bits
	switch {
	case len(aBits) < len(bBits):
		pad, err := goldwasserMicaliZeroPad(src, km, len(bBits)-len(aBits))
		if err != nil {
			return Ciphertext{}, err
		}
		aBits = append(pad, aBits...)
	case len(bBits) < len(aBits):
		pad, err := goldwasserMicaliZeroPad(src, km, len(aBits)-len(bBits))
		if err != nil {
			return Ciphertext{}, err
		}
		bBits = append(pad, bBits...)
	}
	bits := make([]*big.Int, len(aBits))
	for i := range aBits {
		bits[i] = new(big.Int).Mod(new(big.Int).Mul(aBits[i], bBits[i]), n)
	}
	return Ciphertext{Kind: KindBits, Bits: bits}, nil
}

// goldwasserMicaliZeroPad returns count fresh encryptions of the 0 bit.
func goldwasserMicaliZeroPad(src *prng.Source, km KeyMaterial, count int) ([]*big.Int, error) {
	n := km.Public["n"]
	if err := requirePublic(GoldwasserMicali, "xor", km); err != nil {
		return nil, err
	}
	pad := make([]*big.Int, count)
	for i := range pad {
		r := src.IntRange(big.NewInt(1), new(big.Int).Sub(n, big.NewInt(1)))
		pad[i] = new(big.Int).Mod(new(big.Int).Mul(r, r), n)
	}
	return pad, nil
}
