// catalogue.go is the static registry mapping (form, curve-name) to curve
// parameters - CurveCatalogue in spec terms. Parameters below are the
// standard public values for each curve (SEC2 for the Weierstrass and
// Koblitz/binary curves, RFC 7748/8032 and the Bernstein-Hamburg papers for
// the Edwards curves, BSI TR-03111 for brainpool, the Zcash protocol spec
// for JubJub) - nothing here is invented.
package curve

import "math/big"

// Params is the immutable parameter set for one catalogue entry.
type Params struct {
	Form Form
	Name string
	// Modulus is the field prime p for Weierstrass/Edwards, or the
	// irreducible reduction polynomial f(x) (as a GF(2)[x] bit pattern) for
	// Koblitz curves.
	Modulus *big.Int
	// A, B are the Weierstrass/Koblitz curve coefficients (y^2=x^3+Ax+B, or
	// y^2+xy=x^3+Ax^2+B). For Edwards curves A is the "a" coefficient and D
	// holds "d" in a*x^2+y^2=1+d*x^2*y^2.
	A, B, D *big.Int
	Gx, Gy  *big.Int
	Order   *big.Int
}

func hex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex constant: " + s)
	}
	return n
}

// binaryPoly builds a GF(2)[x] polynomial with 1-bits at each exponent in
// taps (e.g. binaryPoly(163,7,6,3,0) for x^163+x^7+x^6+x^3+1).
func binaryPoly(taps ...int) *big.Int {
	p := new(big.Int)
	for _, t := range taps {
		p.SetBit(p, t, 1)
	}
	return p
}

var registry = map[Form]map[string]Params{}

func register(p Params) {
	if registry[p.Form] == nil {
		registry[p.Form] = map[string]Params{}
	}
	registry[p.Form][p.Name] = p
}

// DefaultName returns the canonical default curve name for a form.
func DefaultName(form Form) (string, error) {
	switch form {
	case Weierstrass:
		return "secp256k1", nil
	case Edwards:
		return "ed25519", nil
	case Koblitz:
		return "k163", nil
	}
	return "", newError("default_name", KindUnsupportedForm, nil)
}

// Lookup returns the catalogue entry for (form, name), resolving name=""
// to the form's default.
func Lookup(form Form, name string) (Curve, error) {
	if name == "" {
		def, err := DefaultName(form)
		if err != nil {
			return Curve{}, err
		}
		name = def
	}
	forms, ok := registry[form]
	if !ok {
		return Curve{}, newError("lookup", KindUnsupportedForm, nil)
	}
	p, ok := forms[name]
	if !ok {
		return Curve{}, newError("lookup", KindUnsupportedCurve, nil)
	}
	return newCurve(p)
}

// Names lists every registered curve name for a form.
func Names(form Form) []string {
	var names []string
	for name := range registry[form] {
		names = append(names, name)
	}
	return names
}

func init() {
	registerWeierstrass()
	registerEdwards()
	registerKoblitz()
}

func registerWeierstrass() {
	register(Params{
		Form: Weierstrass, Name: "secp256k1",
		Modulus: hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
		A:       big.NewInt(0),
		B:       big.NewInt(7),
		Gx:      hex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		Gy:      hex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		Order:   hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
	})
	register(Params{
		Form: Weierstrass, Name: "p192",
		Modulus: hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF"),
		A:       hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFC"),
		B:       hex("64210519E59C80E70FA7E9AB72243049FEB8DEECC146B9B1"),
		Gx:      hex("188DA80EB03090F67CBF20EB43A18800F4FF0AFD82FF1012"),
		Gy:      hex("07192B95FFC8DA78631011ED6B24CDD573F977A11E794811"),
		Order:   hex("FFFFFFFFFFFFFFFFFFFFFFFF99DEF836146BC9B1B4D22831"),
	})
	register(Params{
		Form: Weierstrass, Name: "p224",
		Modulus: hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF000000000000000000000001"),
		A:       hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFE"),
		B:       hex("B4050A850C04B3ABF54132565044B0B7D7BFD8BA270B39432355FFB4"),
		Gx:      hex("B70E0CBD6BB4BF7F321390B94A03C1D356C21122343280D6115C1D21"),
		Gy:      hex("BD376388B5F723FB4C22DFE6CD4375A05A07476444D5819985007E34"),
		Order:   hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFF16A2E0B8F03E13DD29455C5C2A3D"),
	})
	register(Params{
		Form: Weierstrass, Name: "p256",
		Modulus: hex("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF"),
		A:       hex("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFC"),
		B:       hex("5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B"),
		Gx:      hex("6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296"),
		Gy:      hex("4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5"),
		Order:   hex("FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551"),
	})
	register(Params{
		Form: Weierstrass, Name: "p384",
		Modulus: hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFF"),
		A:       hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFC"),
		B:       hex("B3312FA7E23EE7E4988E056BE3F82D19181D9C6EFE8141120314088F5013875AC656398D8A2ED19D2A85C8EDD3EC2AEF"),
		Gx:      hex("AA87CA22BE8B05378EB1C71EF320AD746E1D3B628BA79B9859F741E082542A385502F25DBF55296C3A545E3872760AB7"),
		Gy:      hex("3617DE4A96262C6F5D9E98BF9292DC29F8F41DBD289A147CE9DA3113B5F0B8C00A60B1CE1D7E819D7A431D7C90EA0E5F"),
		Order:   hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC7634D81F4372DDF581A0DB248B0A77AECEC196ACCC52973"),
	})
	register(Params{
		Form: Weierstrass, Name: "p521",
		Modulus: hex("01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"),
		A:       hex("01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC"),
		B:       hex("0051953EB9618E1C9A1F929A21A0B68540EEA2DA725B99B315F3B8B489918EF109E156193951EC7E937B1652C0BD3BB1BF073573DF883D2C34F1EF451FD46B503F00"),
		Gx:      hex("00C6858E06B70404E9CD9E3ECB662395B4429C648139053FB521F828AF606B4D3DBAA14B5E77EFE75928FE1DC127A2FFA8DE3348B3C1856A429BF97E7E31C2E5BD66"),
		Gy:      hex("011839296A789A3BC0045C8A5FB42C7D1BD998F54449579B446817AFBD17273E662C97EE72995EF42640C550B9013FAD0761353C7086A272C24088BE94769FD16650"),
		Order:   hex("01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFA51868783BF2F966B7FCC0148F709A5D03BB5C9B8899C47AEBB6FB71E91386409"),
	})
	register(Params{
		Form: Weierstrass, Name: "brainpoolP256r1",
		Modulus: hex("A9FB57DBA1EEA9BC3E660A909D838D726E3BF623D52620282013481D1F6E5377"),
		A:       hex("7D5A0975FC2C3057EEF67530417AFFE7FB8055C126DC5C6CE94A4B44F330B5D9"),
		B:       hex("26DC5C6CE94A4B44F330B5D9BBD77CBF958416295CF7E1CE6BCCDC18FF8C07B6"),
		Gx:      hex("8BD2AEB9CB7E57CB2C4B482FFC81B7AFB9DE27E1E3BD23C23A4453BD9ACE3262"),
		Gy:      hex("547EF835C3DAC4FD97F8461A14611DC9C27745132DED8E545C1D54C72F046997"),
		Order:   hex("A9FB57DBA1EEA9BC3E660A909D838D718C397AA3B561A6F7901E0E82974856A7"),
	})
	register(Params{
		Form: Weierstrass, Name: "brainpoolP384r1",
		Modulus: hex("8CB91E82A3386D280F5D6F7E50E641DF152F7109ED5456B412B1DA197FB71123ACD3A729901D1A71874700133107EC53"),
		A:       hex("7BC382C63D8C150C3C72080ACE05AFA0C2BEA28E4FB22787139165EFBA91F90F8AA5814A503AD4EB04A8C7DD22CE2826"),
		B:       hex("04A8C7DD22CE28268B39B55416F0447C2FB77DE107DCD2A62E880EA53EEB62D57CB4390295DBC9943AB78696FA504C11"),
		Gx:      hex("1D1C64F068CF45FFA2A63A81B7C13F6B8847A3E77EF14FE3DB7FCAFE0CBD10E8E826E03436D646AAEF87B2E247D4AF1E"),
		Gy:      hex("8ABE1D7520F9C2A45CB1EB8E95CFD55262B70B29FEEC5864E19C054FF99129280E4646217791811142820341263C5315"),
		Order:   hex("8CB91E82A3386D280F5D6F7E50E641DF152F7109ED5456B31F166E6CAC0425A7CF3AB6AF6B7FC3103B883202E9046565"),
	})
	register(Params{
		Form: Weierstrass, Name: "brainpoolP512r1",
		Modulus: hex("AADD9DB8DBE9C48B3FD4E6AE33C9FC07CB308DB3B3C9D20ED6639CCA703308717D4D9B009BC66842AECDA12AE6A380E62881FF2F2D82C68528AA6056583A48F3"),
		A:       hex("7830A3318B603B89E2327145AC234CC594CBDD8D3DF91610A83441CAEA9863BC2DED5D5AA8253AA10A2EF1C98B9AC8B57F1117A72BF2C7B9E7C1AC4D77FC94CA"),
		B:       hex("3DF91610A83441CAEA9863BC2DED5D5AA8253AA10A2EF1C98B9AC8B57F1117A72BF2C7B9E7C1AC4D77FC94CADC083E67984050B75EBAE5DD2809BD638016F723"),
		Gx:      hex("81AEE4BDD82ED9645A21322E9C4C6A9385ED9F70B5D916C1B43B62EEF4D0098EFF3B1F78E2D0D48D50D1687B93B97D5F7C6D5047406A5E688B352209BCB9F822"),
		Gy:      hex("7DDE385D566332ECC0EABFA9CF7822FDF209F70024A57B1AA000C55B881F8111B2DCDE494A5F485E5BCA4BD88A2763AED1CA2B2FA8F0540678CD1E0F3AD80892"),
		Order:   hex("AADD9DB8DBE9C48B3FD4E6AE33C9FC07CB308DB3B3C9D20ED6639CCA70330870553E5C414CA92619418661197FAC10471DB1D381085DDADDB58796829CA90069"),
	})
}

func registerEdwards() {
	p25519 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
	register(Params{
		Form: Edwards, Name: "ed25519",
		Modulus: p25519,
		A:       new(big.Int).Sub(p25519, big.NewInt(1)), // a = -1 mod p
		D:       hex("52036CEE2B6FFE738CC740797779E89800700A4D4141D8AB75EB4DCA135978A3"),
		Gx:      hex("216936D3CD6E53FEC0A4E231FDD6DC5C692CC7609525A7B2C9562D608F25D51A"),
		Gy:      hex("6666666666666666666666666666666666666666666666666666666666666658"),
		Order:   hex("1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED"),
	})
	p448 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 448), new(big.Int).Lsh(big.NewInt(1), 224))
	p448.Sub(p448, big.NewInt(1))
	register(Params{
		Form: Edwards, Name: "ed448",
		Modulus: p448,
		A:       big.NewInt(1),
		D:       new(big.Int).Sub(p448, big.NewInt(39081)),
		Gx:      hex("4F1970C66BED0DED221D15A622BF36DA9E146570470F1767EA6DE324A3D3A46412AE1AF72AB66511433B80E18B00938E2626A82BC70CC05E"),
		Gy:      hex("693F46716EB6BC248876203756C9C7624BEA73736CA3984087789C1E05A0C2D73AD3FF1CE67C39C4FDBD132C4ED7C8AD9808795BF230FA14"),
		Order:   hex("3FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7CCA23E9C44EDB49AED63690216CC2728DC58F552378C292AB5844F3"),
	})
	p521e := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 521), big.NewInt(1))
	register(Params{
		Form: Edwards, Name: "e521",
		Modulus: p521e,
		A:       big.NewInt(1),
		D:       new(big.Int).Sub(p521e, big.NewInt(376014)),
		Gx:      hex("752CB45C48648B189DF90CB2296B2878A3BFD9F42FC6C818EC8BF3C9C0C6203913F6ECC5CCC72434B1AE949D568FC99C6059D0FB13364838AA302A940A2F19BA6C"),
		Gy:      big.NewInt(12),
		Order:   hex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFD15B6C64746FC85F736B8AF5E7EC53F04FBD8C4569A8F1F4540EA2435F5180D6B"),
	})
	p41417 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 414), big.NewInt(17))
	register(Params{
		Form: Edwards, Name: "curve41417",
		Modulus: p41417,
		A:       big.NewInt(1),
		D:       big.NewInt(3617),
		Gx:      hex("1A334905141443300218C0631C326E5FCD46369F44C03EC7F57FF35498A4AB4D6D6BA111301A73FAA8537C64C4FD3812F3CBC595"),
		Gy:      big.NewInt(34),
		Order:   hex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEB3CC92414CF706022B36F1C0338AD63CF181B0E71A5E106AF79"),
	})
	jubjubP := hex("73EDA753299D7D483339D80809A1D80553BDA402FFFE5BFEFFFFFFFF00000001")
	register(Params{
		Form: Edwards, Name: "jubjub",
		Modulus: jubjubP,
		A:       new(big.Int).Sub(jubjubP, big.NewInt(1)), // a = -1 mod p
		D:       hex("2A9318E74BFA2B48F5FD9207E6BD7FD4292D7F6D37579D2601065FD6D6343EB1"),
		Gx:      hex("11DAFE5D23E1218086A365B99FBF3D3BE72F6AFD7D1F72623E6B071492D1122B"),
		Gy:      hex("1D523CF1DDAB1A1793132E78C866C0C33E26BA5CC220FED7CC3F870E59D292AA"),
		Order:   hex("E7DB4EA6533AFA906673B0101343B00A6682093CCC81082D0970E5ED6F72CB7"),
	})
}

func registerKoblitz() {
	register(Params{
		Form: Koblitz, Name: "k163",
		Modulus: binaryPoly(163, 7, 6, 3, 0),
		A:       big.NewInt(1),
		B:       big.NewInt(1),
		Gx:      hex("2FE13C0537BBC11ACAA07D793DE4E6D5E5C94EEE8"),
		Gy:      hex("289070FB05D38FF58321F2E800536D538CCDAA3D9"),
		Order:   hex("4000000000000000000020108A2E0CC0D99F8A5EF"),
	})
	register(Params{
		Form: Koblitz, Name: "k233",
		Modulus: binaryPoly(233, 74, 0),
		A:       big.NewInt(0),
		B:       big.NewInt(1),
		Gx:      hex("17232BA853A7E731AF129F22FF4149563A419C26BF50A4C9D6EEFAD6126"),
		Gy:      hex("1DB537DECE819B7F70F555A67C427A8CD9BF18AEB9B56E0C11056FAE6A3"),
		Order:   hex("8000000000000000000000000000069D5BB915BCD46EFB1AD5F173ABDF"),
	})
	register(Params{
		Form: Koblitz, Name: "k283",
		Modulus: binaryPoly(283, 12, 7, 5, 0),
		A:       big.NewInt(0),
		B:       big.NewInt(1),
		Gx:      hex("503213F78CA44883F1A3B8162F188E553CD265F23C1567A16876913B0C2AC2458492836"),
		Gy:      hex("1CCDA380F1C9E318D90F95D07E5426FE87E45C0E8184698E45962364E34116177DD2259"),
		Order:   hex("1FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE9AE2ED07577265DFF7F94451E061E163C61"),
	})
	register(Params{
		Form: Koblitz, Name: "k409",
		Modulus: binaryPoly(409, 87, 0),
		A:       big.NewInt(0),
		B:       big.NewInt(1),
		Gx:      hex("60F05F658F49C1AD3AB1890F7184210EFD0987E307C84C27ACCFB8F9F67CC2C460189EB5AAAA62EE222EB1B35540CFE9023746"),
		Gy:      hex("1E369050B7C4E42ACBA1DACBF04299C3460782F918EA427E6325165E9EA10E3DA5F6C42E9C55215AA9CA27A5863EC48D8E0286B"),
		Order:   hex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE5F83B2D4EA20400EC4557D5ED3E3E7CA5B4B5C83B8E01E5FCF"),
	})
	register(Params{
		Form: Koblitz, Name: "k571",
		Modulus: binaryPoly(571, 10, 5, 2, 0),
		A:       big.NewInt(0),
		B:       big.NewInt(1),
		Gx:      hex("26EB7A859923FBC82189631F8103FE4AC9CA2970012D5D46024804801841CA44370958493B205E647DA304DB4CEB08CBBD1BA39494776FB988B47174DCA88C7E2945283A01C8972"),
		Gy:      hex("349DC807F4FBF374F4AEADE3BCA95314DD58CEC9F307A54FFC61EFC006D8A2C9D4979C0AC44AEA74FBEBBB9F772AEDCB620B01A7BA7AF1B320430C8591984F601CD4C143EF1C7A3"),
		Order:   hex("3FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE661CE18FF55987308059B186823851EC7DD9CA1161DE93D5174D66E8382E9BB2FE84E47"),
	})
}
