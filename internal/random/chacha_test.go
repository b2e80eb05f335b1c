package random

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgen-dev/pgen/internal/entropy"
)

func TestChaChaKnownKeystream(t *testing.T) {
	// all-zero key and nonce, block 0: keystream starts 76 b8 e0 ad a0 f1 3d 90
	c, err := NewChaCha(entropy.Reader(bytes.NewReader(make([]byte, 32))))
	require.NoError(t, err)

	assert.Equal(t, uint64(0x903df1a0ade0b876), c.Uint64())
}

func TestChaChaShortKey(t *testing.T) {
	_, err := NewChaCha(entropy.Reader(bytes.NewReader(make([]byte, 16))))
	require.Error(t, err)
	assert.ErrorIs(t, err, entropy.ErrUnavailable)
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name      string
		algorithm string
		wantType  Stream
		wantErr   error
	}{
		{name: "default", algorithm: "", wantType: &Mixer{}},
		{name: "mix64", algorithm: AlgorithmMix64, wantType: &Mixer{}},
		{name: "chacha20", algorithm: AlgorithmChaCha20, wantType: &ChaCha{}},
		{name: "unknown", algorithm: "xorshift", wantErr: ErrUnknownAlgorithm},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(entropy.OS(), tc.algorithm)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, s)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tc.wantType, s)
		})
	}
}

func TestNewEntropyFailure(t *testing.T) {
	for _, algorithm := range []string{AlgorithmMix64, AlgorithmChaCha20} {
		t.Run(algorithm, func(t *testing.T) {
			s, err := New(entropy.Reader(bytes.NewReader(nil)), algorithm)
			require.ErrorIs(t, err, entropy.ErrUnavailable)
			assert.Nil(t, s)
		})
	}
}
