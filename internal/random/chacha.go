package random

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"

	"github.com/pgen-dev/pgen/internal/entropy"
)

// ChaCha is a Stream backed by the ChaCha20 keystream.
type ChaCha struct {
	buf    [8]byte
	cipher *chacha20.Cipher
}

// NewChaCha keys a ChaCha stream with chacha20.KeySize bytes from src.
func NewChaCha(src entropy.Source) (*ChaCha, error) {
	key := make([]byte, chacha20.KeySize)
	if err := src.Fill(key); err != nil {
		return nil, errors.Wrap(err, "failed to read chacha20 key")
	}

	nonce := make([]byte, chacha20.NonceSize)

	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chacha20 cipher")
	}

	return &ChaCha{cipher: cipher}, nil
}

// Uint64 implements Stream.
func (c *ChaCha) Uint64() uint64 {
	b := c.buf[:]
	clear(b)
	c.cipher.XORKeyStream(b, b)

	return binary.LittleEndian.Uint64(b)
}
