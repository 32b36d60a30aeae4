// Package record implements encrypted ledger records: how they are sealed
// for an owner, recognised by a view key, decrypted, and identified.
package record

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/account"
)

const (
	// CiphertextHRP is the bech32 prefix of record ciphertexts.
	CiphertextHRP = "record"

	ownerDomain      = "owner"
	payloadDomain    = "payload"
	commitmentDomain = "commitment"
)

// ErrNotOwner is returned when decrypting a record with a view key that does
// not own it.
var ErrNotOwner = errors.New("record is not owned by view key")

var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("record: cbor enc mode: " + err.Error())
	}
	return em
}()

// Field identifies a record on the ledger (its commitment).
type Field [32]byte

// ParseField decodes the hex form of a field.
func ParseField(s string) (Field, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Field{}, fmt.Errorf("parse field: %w", err)
	}
	if len(raw) != len(Field{}) {
		return Field{}, fmt.Errorf("parse field: expected %d bytes, got %d", len(Field{}), len(raw))
	}
	var f Field
	copy(f[:], raw)
	return f, nil
}

func (f Field) String() string {
	return hex.EncodeToString(f[:])
}

// MarshalText implements encoding.TextMarshaler.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Ciphertext is a record as it appears on the ledger.
type Ciphertext struct {
	// Owner is the owner's address coordinate masked with the shared secret.
	Owner [32]byte `cbor:"1,keyasint"`
	// Payload is the sealed record body.
	Payload []byte `cbor:"2,keyasint"`
	// Nonce is the encoded point r·G.
	Nonce [32]byte `cbor:"3,keyasint"`
}

type payload struct {
	Gates uint64 `cbor:"1,keyasint"`
}

// Encrypt seals a record holding gates for owner.
func Encrypt(owner account.Address, gates uint64, rand io.Reader) (Ciphertext, error) {
	nonce, secret, err := owner.NewSharedSecret(rand)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("encrypt record: %w", err)
	}

	ct := Ciphertext{Nonce: nonce}
	mask := ownerMask(secret)
	coordinate := owner.Coordinate()
	for i := range ct.Owner {
		ct.Owner[i] = coordinate[i] ^ mask[i]
	}

	body, err := encMode.Marshal(payload{Gates: gates})
	if err != nil {
		return Ciphertext{}, fmt.Errorf("encode record payload: %w", err)
	}
	aead, err := chacha20poly1305.New(payloadKey(secret))
	if err != nil {
		return Ciphertext{}, fmt.Errorf("init record cipher: %w", err)
	}
	ct.Payload = aead.Seal(nil, make([]byte, aead.NonceSize()), body, ct.Nonce[:])
	return ct, nil
}

// IsOwner reports whether the record belongs to the address with the given
// coordinate, using vk to recover the masked owner. It never fails: records
// that cannot belong to vk simply return false.
func IsOwner(ct Ciphertext, vk account.ViewKey, coordinate account.Coordinate) bool {
	secret, ok := vk.SharedSecret(ct.Nonce)
	if !ok {
		return false
	}
	mask := ownerMask(secret)
	var owner [32]byte
	for i := range owner {
		owner[i] = ct.Owner[i] ^ mask[i]
	}
	return subtle.ConstantTimeCompare(owner[:], coordinate[:]) == 1
}

// Decrypt opens the record with vk.
func (c Ciphertext) Decrypt(vk account.ViewKey) (Plaintext, error) {
	owner := vk.Address()
	if !IsOwner(c, vk, owner.Coordinate()) {
		return Plaintext{}, ErrNotOwner
	}
	secret, _ := vk.SharedSecret(c.Nonce)

	aead, err := chacha20poly1305.New(payloadKey(secret))
	if err != nil {
		return Plaintext{}, fmt.Errorf("init record cipher: %w", err)
	}
	body, err := aead.Open(nil, make([]byte, aead.NonceSize()), c.Payload, c.Nonce[:])
	if err != nil {
		return Plaintext{}, fmt.Errorf("open record payload: %w", err)
	}
	var p payload
	if err := cbor.Unmarshal(body, &p); err != nil {
		return Plaintext{}, fmt.Errorf("decode record payload: %w", err)
	}
	return Plaintext{Owner: owner, Gates: p.Gates, Nonce: c.Nonce}, nil
}

// Commitment is the identifier the ledger assigns to this record.
func (c Ciphertext) Commitment() (Field, error) {
	encoded, err := encMode.Marshal(c)
	if err != nil {
		return Field{}, fmt.Errorf("encode record: %w", err)
	}
	return Field(blake2b.Sum256(append([]byte(commitmentDomain), encoded...))), nil
}

// ParseCiphertext decodes the record1... text form.
func ParseCiphertext(s string) (Ciphertext, error) {
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("parse record: %w", err)
	}
	if hrp != CiphertextHRP {
		return Ciphertext{}, fmt.Errorf("parse record: unexpected prefix %q", hrp)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("parse record: %w", err)
	}
	var ct Ciphertext
	if err := cbor.Unmarshal(raw, &ct); err != nil {
		return Ciphertext{}, fmt.Errorf("parse record: %w", err)
	}
	return ct, nil
}

// Text returns the record1... form of the ciphertext.
func (c Ciphertext) Text() (string, error) {
	encoded, err := encMode.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	data, err := bech32.ConvertBits(encoded, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return bech32.Encode(CiphertextHRP, data)
}

func (c Ciphertext) String() string {
	s, err := c.Text()
	if err != nil {
		return ""
	}
	return s
}

// Plaintext is a decrypted record.
type Plaintext struct {
	Owner account.Address
	Gates uint64
	Nonce [32]byte
}

func (p Plaintext) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  owner: %s.private,\n", p.Owner)
	fmt.Fprintf(&b, "  gates: %du64.private,\n", p.Gates)
	fmt.Fprintf(&b, "  _nonce: %sgroup.public\n", hex.EncodeToString(p.Nonce[:]))
	b.WriteString("}")
	return b.String()
}

func ownerMask(secret [32]byte) [32]byte {
	return blake2b.Sum256(append([]byte(ownerDomain), secret[:]...))
}

func payloadKey(secret [32]byte) []byte {
	key := blake2b.Sum256(append([]byte(payloadDomain), secret[:]...))
	return key[:]
}
