package scheme

// Get resolves a scheme name to its Capability record, failing with
// KindUnsupportedScheme for anything outside the nine catalogued variants.
func Get(name Name) (Capability, error) {
	switch name {
	case RSA:
		return rsaCapability(), nil
	case ElGamal:
		return elGamalCapability(), nil
	case ExponentialElGamal:
		return exponentialElGamalCapability(), nil
	case EllipticCurveElGamal:
		return ecElGamalCapability(), nil
	case Paillier:
		return paillierCapability(), nil
	case DamgardJurik:
		return damgardJurikCapability(), nil
	case OkamotoUchiyama:
		return okamotoUchiyamaCapability(), nil
	case Benaloh:
		return benalohCapability(), nil
	case NaccacheStern:
		return naccacheSternCapability(), nil
	case GoldwasserMicali:
		return goldwasserMicaliCapability(), nil
	default:
		return Capability{}, newError(name, "get", KindUnsupportedScheme, nil)
	}
}

// Names lists every scheme name the registry knows.
func Names() []Name {
	return []Name{
		RSA, ElGamal, ExponentialElGamal, EllipticCurveElGamal, Paillier,
		DamgardJurik, OkamotoUchiyama, Benaloh, NaccacheStern, GoldwasserMicali,
	}
}
