package record

import (
	"errors"
	"strings"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/account"
)

// ViewingCredential recognises the records of a single view key.
type ViewingCredential struct {
	viewKey account.ViewKey
}

// NewViewingCredential wraps vk.
func NewViewingCredential(vk account.ViewKey) *ViewingCredential {
	return &ViewingCredential{viewKey: vk}
}

// ParseCredential accepts either a private key or a view key in text form.
func ParseCredential(key string) (*ViewingCredential, error) {
	key = strings.TrimSpace(key)
	switch {
	case strings.HasPrefix(key, account.PrivateKeyPrefix):
		pk, err := account.ParsePrivateKey(key)
		if err != nil {
			return nil, err
		}
		return NewViewingCredential(pk.ViewKey()), nil
	case strings.HasPrefix(key, account.ViewKeyPrefix):
		vk, err := account.ParseViewKey(key)
		if err != nil {
			return nil, err
		}
		return NewViewingCredential(vk), nil
	default:
		return nil, errors.New("expected a private key or a view key")
	}
}

// ViewKey returns the wrapped view key.
func (c *ViewingCredential) ViewKey() account.ViewKey {
	return c.viewKey
}

// Address returns the address the credential views.
func (c *ViewingCredential) Address() account.Address {
	return c.viewKey.Address()
}

// AddressCoordinate derives the address coordinate. It costs a scalar
// multiplication, so callers checking many records compute it once.
func (c *ViewingCredential) AddressCoordinate() account.Coordinate {
	return c.viewKey.Address().Coordinate()
}

// IsOwner reports whether ct belongs to this credential.
func (c *ViewingCredential) IsOwner(ct Ciphertext, coordinate account.Coordinate) bool {
	return IsOwner(ct, c.viewKey, coordinate)
}
