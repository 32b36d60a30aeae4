// Package account implements the key material used to view ledger records:
// private keys, view keys, and the addresses they control.
package account

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	// PrivateKeyPrefix starts the text form of every private key.
	PrivateKeyPrefix = "APrivateKey1"
	// ViewKeyPrefix starts the text form of every view key.
	ViewKeyPrefix = "AViewKey1"
	// AddressHRP is the bech32 human readable part of addresses.
	AddressHRP = "aleo"

	// SeedSize is the size of a private key seed in bytes.
	SeedSize = 32

	privateKeyVersion byte = 0x8a
	viewKeyVersion    byte = 0x0e

	viewKeyDomain = "view_key"
)

var errZeroViewKey = errors.New("view key scalar is zero")

// Coordinate is the canonical 32-byte encoding of an address point. It is
// derived once per view key and compared against the owner of every record.
type Coordinate [32]byte

func (c Coordinate) String() string {
	return hex.EncodeToString(c[:])
}

// PrivateKey is the spending secret. Scanning only ever needs the view key
// derived from it.
type PrivateKey struct {
	seed [SeedSize]byte
}

// NewPrivateKey samples a fresh private key from rand.
func NewPrivateKey(rand io.Reader) (PrivateKey, error) {
	var k PrivateKey
	if _, err := io.ReadFull(rand, k.seed[:]); err != nil {
		return PrivateKey{}, fmt.Errorf("read private key seed: %w", err)
	}
	return k, nil
}

// PrivateKeyFromSeed builds a private key from a 32-byte seed.
func PrivateKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != SeedSize {
		return PrivateKey{}, fmt.Errorf("private key seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	var k PrivateKey
	copy(k.seed[:], seed)
	return k, nil
}

// ParsePrivateKey decodes the APrivateKey1 text form.
func ParsePrivateKey(s string) (PrivateKey, error) {
	raw, err := decodeKey(s, PrivateKeyPrefix, privateKeyVersion)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("parse private key: %w", err)
	}
	return PrivateKeyFromSeed(raw)
}

func (k PrivateKey) String() string {
	return PrivateKeyPrefix + base58.CheckEncode(k.seed[:], privateKeyVersion)
}

// ViewKey derives the view key controlled by this private key.
func (k PrivateKey) ViewKey() ViewKey {
	h := blake2b.Sum512(append([]byte(viewKeyDomain), k.seed[:]...))
	scalar, err := edwards25519.NewScalar().SetUniformBytes(h[:])
	if err != nil {
		panic("account: derive view key: " + err.Error())
	}
	return ViewKey{scalar: scalar}
}

// Address is shorthand for k.ViewKey().Address().
func (k PrivateKey) Address() Address {
	return k.ViewKey().Address()
}

// ViewKey grants the ability to recognise and decrypt records without the
// ability to spend them.
type ViewKey struct {
	scalar *edwards25519.Scalar
}

// ParseViewKey decodes the AViewKey1 text form.
func ParseViewKey(s string) (ViewKey, error) {
	raw, err := decodeKey(s, ViewKeyPrefix, viewKeyVersion)
	if err != nil {
		return ViewKey{}, fmt.Errorf("parse view key: %w", err)
	}
	scalar, err := edwards25519.NewScalar().SetCanonicalBytes(raw)
	if err != nil {
		return ViewKey{}, fmt.Errorf("parse view key: %w", err)
	}
	if scalar.Equal(edwards25519.NewScalar()) == 1 {
		return ViewKey{}, fmt.Errorf("parse view key: %w", errZeroViewKey)
	}
	return ViewKey{scalar: scalar}, nil
}

// IsZero reports whether k is the zero value.
func (k ViewKey) IsZero() bool {
	return k.scalar == nil
}

func (k ViewKey) String() string {
	if k.scalar == nil {
		return ""
	}
	return ViewKeyPrefix + base58.CheckEncode(k.scalar.Bytes(), viewKeyVersion)
}

// Address returns the address whose records this view key can see.
func (k ViewKey) Address() Address {
	if k.scalar == nil {
		return Address{}
	}
	var a Address
	copy(a.point[:], new(edwards25519.Point).ScalarBaseMult(k.scalar).Bytes())
	return a
}

// SharedSecret multiplies the record nonce point by the view key. It reports
// false when the nonce is not a valid point encoding.
func (k ViewKey) SharedSecret(nonce [32]byte) ([32]byte, bool) {
	var out [32]byte
	if k.scalar == nil {
		return out, false
	}
	p, err := new(edwards25519.Point).SetBytes(nonce[:])
	if err != nil {
		return out, false
	}
	copy(out[:], new(edwards25519.Point).ScalarMult(k.scalar, p).Bytes())
	return out, true
}

// Address is a point on the curve, shown as a bech32 string.
type Address struct {
	point [32]byte
}

// ParseAddress decodes the bech32 aleo1... form.
func ParseAddress(s string) (Address, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("parse address: %w", err)
	}
	if hrp != AddressHRP {
		return Address{}, fmt.Errorf("parse address: unexpected prefix %q", hrp)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("parse address: %w", err)
	}
	if len(raw) != len(Address{}.point) {
		return Address{}, fmt.Errorf("parse address: expected %d bytes, got %d", len(Address{}.point), len(raw))
	}
	if _, err := new(edwards25519.Point).SetBytes(raw); err != nil {
		return Address{}, fmt.Errorf("parse address: %w", err)
	}
	var a Address
	copy(a.point[:], raw)
	return a, nil
}

// Coordinate returns the value ownership checks compare against.
func (a Address) Coordinate() Coordinate {
	return Coordinate(a.point)
}

func (a Address) String() string {
	data, err := bech32.ConvertBits(a.point[:], 8, 5, true)
	if err != nil {
		return ""
	}
	s, err := bech32.Encode(AddressHRP, data)
	if err != nil {
		return ""
	}
	return s
}

// NewSharedSecret samples an ephemeral scalar r and returns the nonce r·G
// together with the secret r·A that only the holder of a's view key can
// recompute from the nonce.
func (a Address) NewSharedSecret(rand io.Reader) (nonce, secret [32]byte, err error) {
	owner, err := new(edwards25519.Point).SetBytes(a.point[:])
	if err != nil {
		return nonce, secret, fmt.Errorf("decode address point: %w", err)
	}
	var wide [64]byte
	if _, err = io.ReadFull(rand, wide[:]); err != nil {
		return nonce, secret, fmt.Errorf("read nonce randomness: %w", err)
	}
	r, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nonce, secret, fmt.Errorf("derive nonce scalar: %w", err)
	}
	copy(nonce[:], new(edwards25519.Point).ScalarBaseMult(r).Bytes())
	copy(secret[:], new(edwards25519.Point).ScalarMult(r, owner).Bytes())
	return nonce, secret, nil
}

func decodeKey(s, prefix string, version byte) ([]byte, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(s), prefix)
	if !ok {
		return nil, fmt.Errorf("expected prefix %q", prefix)
	}
	raw, gotVersion, err := base58.CheckDecode(body)
	if err != nil {
		return nil, err
	}
	if gotVersion != version {
		return nil, fmt.Errorf("unexpected key version %#x", gotVersion)
	}
	if len(raw) != SeedSize {
		return nil, fmt.Errorf("expected %d key bytes, got %d", SeedSize, len(raw))
	}
	return raw, nil
}
