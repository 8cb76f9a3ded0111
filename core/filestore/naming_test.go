package filestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photos/cat.png", "photos/cat.png"},
		{`photos\cat.png`, "photos/cat.png"},
		{"/photos//cat.png", "photos/cat.png"},
		{"./photos/./cat.png", "photos/cat.png"},
		{"", ""},
		{".", ""},
		{"/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestHashedKey(t *testing.T) {
	assert.Equal(t, "photos/abc123.png", HashedKey("photos/cat.png", "abc123"))
	assert.Equal(t, "abc123.png", HashedKey("cat.png", "abc123"))
	assert.Equal(t, "a/b/abc123", HashedKey("a/b/README", "abc123"))
	assert.Equal(t, "abc123.gz", HashedKey("archive.tar.gz", "abc123"))
}

func TestNewNamer(t *testing.T) {
	n, err := NewNamer("", "")
	assert.NoError(t, err)
	assert.IsType(t, IdentityNamer{}, n)

	n, err = NewNamer("hashed", "murmur3")
	assert.NoError(t, err)
	assert.IsType(t, HashedNamer{}, n)

	_, err = NewNamer("hashed", "md4")
	assert.Error(t, err)

	_, err = NewNamer("other", "")
	assert.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "stored", OutcomeStored.String())
	assert.Equal(t, "connection-unavailable", OutcomeConnectionUnavailable.String())
	text, err := OutcomeWriteFailed.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "write-failed", string(text))
}
