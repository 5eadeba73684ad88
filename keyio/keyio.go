package keyio

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math/big"

	"github.com/shieldphe/gophe/curve"
	"github.com/shieldphe/gophe/scheme"
	"golang.org/x/crypto/blake2b"
)

// wirePoint is curve.Point's JSON shape: hex-encoded coordinates.
type wirePoint struct {
	X        string `json:"x"`
	Y        string `json:"y"`
	Infinity bool   `json:"infinity,omitempty"`
}

// wireKeyMaterial is scheme.KeyMaterial's JSON shape: every *big.Int becomes
// a hex string so arbitrarily large moduli round-trip exactly.
type wireKeyMaterial struct {
	Public        map[string]string `json:"public,omitempty"`
	Private       map[string]string `json:"private,omitempty"`
	Form          string            `json:"form,omitempty"`
	CurveName     string            `json:"curve_name,omitempty"`
	PublicPoint   *wirePoint        `json:"public_point,omitempty"`
	PrivateScalar string            `json:"private_scalar,omitempty"`
}

// envelope is the on-disk/on-wire document ExportKeys produces: the scheme
// name, the key material, and a checksum over the key material's canonical
// JSON bytes.
type envelope struct {
	Scheme   scheme.Name     `json:"scheme"`
	Key      wireKeyMaterial `json:"key"`
	Checksum string          `json:"checksum"`
}

func hexEncode(v *big.Int) string {
	if v == nil {
		return ""
	}
	return hex.EncodeToString(v.Bytes())
}

func hexDecode(op, s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, newError(op, KindInvalidInput, err)
	}
	return new(big.Int).SetBytes(b), nil
}

func toWire(km scheme.KeyMaterial) wireKeyMaterial {
	w := wireKeyMaterial{Form: string(km.Form), CurveName: km.CurveName}
	if len(km.Public) > 0 {
		w.Public = make(map[string]string, len(km.Public))
		for k, v := range km.Public {
			w.Public[k] = hexEncode(v)
		}
	}
	if len(km.Private) > 0 {
		w.Private = make(map[string]string, len(km.Private))
		for k, v := range km.Private {
			w.Private[k] = hexEncode(v)
		}
	}
	if km.PublicPoint != nil {
		w.PublicPoint = &wirePoint{
			X:        hexEncode(km.PublicPoint.X),
			Y:        hexEncode(km.PublicPoint.Y),
			Infinity: km.PublicPoint.Infinity,
		}
	}
	if km.PrivateScalar != nil {
		w.PrivateScalar = hexEncode(km.PrivateScalar)
	}
	return w
}

func fromWire(op string, w wireKeyMaterial) (scheme.KeyMaterial, error) {
	km := scheme.KeyMaterial{Form: curve.Form(w.Form), CurveName: w.CurveName}
	var err error
	if len(w.Public) > 0 {
		km.Public = make(map[string]*big.Int, len(w.Public))
		for k, v := range w.Public {
			if km.Public[k], err = hexDecode(op, v); err != nil {
				return scheme.KeyMaterial{}, err
			}
		}
	}
	if len(w.Private) > 0 {
		km.Private = make(map[string]*big.Int, len(w.Private))
		for k, v := range w.Private {
			if km.Private[k], err = hexDecode(op, v); err != nil {
				return scheme.KeyMaterial{}, err
			}
		}
	}
	if w.PublicPoint != nil {
		x, err := hexDecode(op, w.PublicPoint.X)
		if err != nil {
			return scheme.KeyMaterial{}, err
		}
		y, err := hexDecode(op, w.PublicPoint.Y)
		if err != nil {
			return scheme.KeyMaterial{}, err
		}
		p := curve.Point{X: x, Y: y, Infinity: w.PublicPoint.Infinity}
		km.PublicPoint = &p
	}
	if w.PrivateScalar != "" {
		if km.PrivateScalar, err = hexDecode(op, w.PrivateScalar); err != nil {
			return scheme.KeyMaterial{}, err
		}
	}
	return km, nil
}

func checksum(key wireKeyMaterial) (string, []byte, error) {
	keyBytes, err := json.Marshal(key)
	if err != nil {
		return "", nil, err
	}
	sum := blake2b.Sum256(keyBytes)
	return hex.EncodeToString(sum[:]), keyBytes, nil
}

// ExportKeys serializes name and km into a checksummed JSON document.
func ExportKeys(name scheme.Name, km scheme.KeyMaterial) ([]byte, error) {
	wire := toWire(km)
	sum, _, err := checksum(wire)
	if err != nil {
		return nil, newError("export_keys", KindMalformed, err)
	}
	env := envelope{Scheme: name, Key: wire, Checksum: sum}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return nil, newError("export_keys", KindMalformed, err)
	}
	return buf.Bytes(), nil
}

// RestoreKeys parses a document produced by ExportKeys, rejecting unknown
// fields and a mismatched checksum before ever constructing a KeyMaterial.
// This is the intentional, strict alternative to an eval-based restorer.
func RestoreKeys(data []byte) (scheme.Name, scheme.KeyMaterial, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var env envelope
	if err := dec.Decode(&env); err != nil {
		return "", scheme.KeyMaterial{}, newError("restore_keys", KindMalformed, err)
	}

	sum, _, err := checksum(env.Key)
	if err != nil {
		return "", scheme.KeyMaterial{}, newError("restore_keys", KindMalformed, err)
	}
	if sum != env.Checksum {
		return "", scheme.KeyMaterial{}, newError("restore_keys", KindChecksumMismatch, nil)
	}

	km, err := fromWire("restore_keys", env.Key)
	if err != nil {
		return "", scheme.KeyMaterial{}, err
	}
	return env.Scheme, km, nil
}
