package scheme

import (
	"math/big"

	"github.com/shieldphe/gophe/curve"
	"github.com/shieldphe/gophe/prng"
)

// Name is one of the nine exact scheme-name strings §6 specifies.
type Name string

const (
	RSA                  Name = "RSA"
	ElGamal              Name = "ElGamal"
	ExponentialElGamal   Name = "Exponential-ElGamal"
	EllipticCurveElGamal Name = "EllipticCurve-ElGamal"
	Paillier             Name = "Paillier"
	DamgardJurik         Name = "Damgard-Jurik"
	OkamotoUchiyama      Name = "Okamoto-Uchiyama"
	Benaloh              Name = "Benaloh"
	NaccacheStern        Name = "Naccache-Stern"
	GoldwasserMicali     Name = "Goldwasser-Micali"
)

// Op names a homomorphic operator or re-encryption, for UnsupportedOperation
// reporting.
type Op string

const (
	OpAdd            Op = "add"
	OpMultiply       Op = "multiply"
	OpScalarMultiply Op = "scalar_multiply"
	OpXor            Op = "xor"
	OpReEncrypt      Op = "re_encrypt"
)

// KeyMaterial is a keyed record with two optional parts. Public is always
// present after keygen; Private is nil for a public-only handle. EC-ElGamal
// additionally carries curve identity (Form, CurveName) and its public key
// as a concrete curve point (PublicPoint), since a point doesn't fit the
// Public map's *big.Int value type.
type KeyMaterial struct {
	Public  map[string]*big.Int
	Private map[string]*big.Int

	// EC-ElGamal only.
	Form        curve.Form
	CurveName   string
	PublicPoint *curve.Point
	// PrivateScalar is EC-ElGamal's ka; kept separate from Private since it
	// is a scalar, not a ciphertext-group element.
	PrivateScalar *big.Int
}

// HasPublic reports whether the public key half is present.
func (k KeyMaterial) HasPublic() bool {
	return len(k.Public) > 0 || k.PublicPoint != nil
}

// HasPrivate reports whether the private key half is present.
func (k KeyMaterial) HasPrivate() bool {
	return len(k.Private) > 0 || k.PrivateScalar != nil
}

// PublicOnly returns an independent KeyMaterial whose Private half is empty,
// for handles exported for cloud/public use (§5: "creating a public-only
// copy must produce an independent handle whose key material contains no
// private components").
func (k KeyMaterial) PublicOnly() KeyMaterial {
	cp := KeyMaterial{Form: k.Form, CurveName: k.CurveName}
	if k.Public != nil {
		cp.Public = make(map[string]*big.Int, len(k.Public))
		for key, v := range k.Public {
			cp.Public[key] = new(big.Int).Set(v)
		}
	}
	if k.PublicPoint != nil {
		p := *k.PublicPoint
		cp.PublicPoint = &p
	}
	return cp
}

// CiphertextKind tags which of the four wire shapes a Ciphertext uses.
type CiphertextKind string

const (
	// KindSingle is used by RSA, Paillier, Damgård-Jurik, Okamoto-Uchiyama,
	// Benaloh, Naccache-Stern: a single integer.
	KindSingle CiphertextKind = "single"
	// KindPair is used by ElGamal and Exponential ElGamal: two integers.
	KindPair CiphertextKind = "pair"
	// KindECPair is used by EC-ElGamal: two curve points.
	KindECPair CiphertextKind = "ec_pair"
	// KindBits is used by Goldwasser-Micali: one ciphertext per plaintext bit.
	KindBits CiphertextKind = "bits"
)

// Ciphertext is the tagged ciphertext value every scheme produces.
type Ciphertext struct {
	Kind CiphertextKind

	Value *big.Int // KindSingle

	C1, C2 *big.Int // KindPair

	P1, P2 curve.Point // KindECPair

	Bits []*big.Int // KindBits, MSB-first
}

// Options configures scheme construction and keygen.
type Options struct {
	KeySize        int
	Precision      int
	Form           curve.Form
	CurveName      string
	PlaintextLimit *big.Int
	MaxTries       int
	// Exponent is Damgård-Jurik's s, the ciphertext-expansion level
	// (plaintext space Z_{n^s}, ciphertext space Z_{n^(s+1)}^*). Zero means
	// DamgardJurikDefaultExponent.
	Exponent int
}

// DefaultMaxTries is used when Options.MaxTries is zero.
const DefaultMaxTries = 10000

func (o Options) maxTries() int {
	if o.MaxTries <= 0 {
		return DefaultMaxTries
	}
	return o.MaxTries
}

// Capability is a scheme variant's full set of supported operations,
// represented as a record of function pointers rather than a class
// hierarchy (Design Note "Scheme polymorphism"). A nil function pointer
// means the scheme does not support that capability; dispatchers must
// check for nil and fail with KindUnsupportedOperation.
type Capability struct {
	Name Name

	// PlaintextModulo and CiphertextModulo expose the two public integers
	// every scheme's parameters carry (§3 "Scheme parameters").
	PlaintextModulo  func(km KeyMaterial) *big.Int
	CiphertextModulo func(km KeyMaterial) *big.Int

	KeyGen  func(src *prng.Source, opts Options) (KeyMaterial, error)
	Encrypt func(src *prng.Source, km KeyMaterial, m *big.Int) (Ciphertext, error)
	Decrypt func(km KeyMaterial, c Ciphertext) (*big.Int, error)

	Add            func(km KeyMaterial, a, b Ciphertext) (Ciphertext, error)
	Multiply       func(km KeyMaterial, a, b Ciphertext) (Ciphertext, error)
	MultiplyScalar func(src *prng.Source, km KeyMaterial, a Ciphertext, k *big.Int) (Ciphertext, error)
	// Xor takes a source since a differing-length pair is zero-padded with
	// fresh encryptions of 0 before the element-wise combine (§4.6A).
	Xor       func(src *prng.Source, km KeyMaterial, a, b Ciphertext) (Ciphertext, error)
	ReEncrypt func(src *prng.Source, km KeyMaterial, a Ciphertext) (Ciphertext, error)
}

// requirePublic fails with MissingKey unless km carries a public key.
func requirePublic(name Name, op string, km KeyMaterial) error {
	if !km.HasPublic() {
		return newError(name, op, KindMissingKey, nil)
	}
	return nil
}

// requirePrivate fails with MissingKey unless km carries a private key.
func requirePrivate(name Name, op string, km KeyMaterial) error {
	if !km.HasPrivate() {
		return newError(name, op, KindMissingKey, nil)
	}
	return nil
}

func unsupported(name Name, op Op) error {
	return newError(name, string(op), KindUnsupportedOperation, nil)
}
