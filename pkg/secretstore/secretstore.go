// Package secretstore keeps exchange API credentials in an encrypted Badger
// database so they need not live in config files or the environment.
package secretstore

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/betbot/cryptsy/cryptsy/types"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// Keys under which the credential pair is stored.
const (
	KeyPublic  = "cryptsy/public_key"
	KeyPrivate = "cryptsy/private_key"
)

var (
	ErrNotOpened = errors.New("secretstore: not opened")
	ErrEmptyKey  = errors.New("secretstore: key is empty")
)

// Store wraps a Badger database. Encryption at rest is Badger's own, enabled
// when OpenOptions.EncryptionKey is set.
type Store struct {
	db *badger.DB
}

type OpenOptions struct {
	Path          string
	EncryptionKey []byte // 32 bytes; nil opens the database unencrypted
	ReadOnly      bool
}

func Open(opts OpenOptions) (*Store, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, errors.New("secretstore: path is required")
	}
	bopts := badger.DefaultOptions(opts.Path).
		WithLogger(nil).
		WithReadOnly(opts.ReadOnly)
	if len(opts.EncryptionKey) > 0 {
		// encrypted tables need an index cache
		bopts = bopts.
			WithEncryptionKey(opts.EncryptionKey).
			WithIndexCacheSize(16 << 20)
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.Wrapf(err, "secretstore: open %s", opts.Path)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// GetString returns the value under key and whether it exists.
func (s *Store) GetString(key string) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, ErrNotOpened
	}
	k := []byte(strings.TrimSpace(key))
	if len(k) == 0 {
		return "", false, ErrEmptyKey
	}
	var (
		out   string
		found bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			out = string(val)
			return nil
		})
	})
	if err != nil {
		return "", false, errors.Wrapf(err, "secretstore: get %s", key)
	}
	return out, found, nil
}

func (s *Store) SetString(key, val string) error {
	if s == nil || s.db == nil {
		return ErrNotOpened
	}
	k := []byte(strings.TrimSpace(key))
	if len(k) == 0 {
		return ErrEmptyKey
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k, []byte(val))
	})
}

// LoadCredentials reads the stored key pair. ok is false unless both halves
// are present.
func (s *Store) LoadCredentials() (creds types.Credentials, ok bool, err error) {
	key, hasKey, err := s.GetString(KeyPublic)
	if err != nil {
		return types.Credentials{}, false, err
	}
	secret, hasSecret, err := s.GetString(KeyPrivate)
	if err != nil {
		return types.Credentials{}, false, err
	}
	if !hasKey || !hasSecret {
		return types.Credentials{}, false, nil
	}
	return types.Credentials{Key: key, Secret: secret}, true, nil
}

// SaveCredentials stores both halves in one transaction.
func (s *Store) SaveCredentials(creds types.Credentials) error {
	if s == nil || s.db == nil {
		return ErrNotOpened
	}
	if creds.Empty() {
		return errors.New("secretstore: refusing to store empty credentials")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(KeyPublic), []byte(creds.Key)); err != nil {
			return err
		}
		return txn.Set([]byte(KeyPrivate), []byte(creds.Secret))
	})
}

// ParseKey accepts a 32 byte key as hex (optionally 0x prefixed) or base64.
// An empty input yields a nil key.
func ParseKey(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if b, err := hex.DecodeString(strings.TrimPrefix(raw, "0x")); err == nil {
		if len(b) != 32 {
			return nil, errors.Errorf("secretstore: decoded key length must be 32, got %d", len(b))
		}
		return b, nil
	}
	if b, err := base64.StdEncoding.DecodeString(raw); err == nil {
		if len(b) != 32 {
			return nil, errors.Errorf("secretstore: decoded key length must be 32, got %d", len(b))
		}
		return b, nil
	}
	return nil, errors.New("secretstore: key must be base64(32 bytes) or hex(32 bytes)")
}
