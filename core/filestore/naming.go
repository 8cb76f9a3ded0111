package filestore

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"path"
	"strings"

	"minio-storage/core/storage"

	"github.com/spaolacci/murmur3"
)

// Namer derives the object key for a payload. It returns the key and the
// reader the upload must consume, which is content itself unless the namer had
// to buffer it.
type Namer interface {
	Key(name string, content Content) (key string, body io.Reader, size int64, err error)
}

// NewNamer returns the namer for the configured policy.
func NewNamer(policy, algorithm string) (Namer, error) {
	switch policy {
	case "", storage.NamingIdentity:
		return IdentityNamer{}, nil
	case storage.NamingHashed:
		switch algorithm {
		case "", storage.HashSHA256:
			return HashedNamer{New: sha256.New}, nil
		case storage.HashMurmur3:
			return HashedNamer{New: func() hash.Hash { return murmur3.New128() }}, nil
		}
		return nil, fmt.Errorf("unknown hash algorithm %q", algorithm)
	}
	return nil, fmt.Errorf("unknown naming policy %q", policy)
}

// IdentityNamer stores content under its normalized file name.
type IdentityNamer struct{}

func (IdentityNamer) Key(name string, content Content) (string, io.Reader, int64, error) {
	key := NormalizeName(name)
	if key == "" {
		return "", nil, 0, ErrInvalidName
	}
	body, size := unread(content, offset(content))
	return key, body, size, nil
}

// HashedNamer stores content under "{dir}/{digest}{ext}".
type HashedNamer struct {
	New func() hash.Hash
}

func (n HashedNamer) Key(name string, content Content) (string, io.Reader, int64, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return "", nil, 0, ErrInvalidName
	}

	h := n.New()
	body, size, err := digest(h, content)
	if err != nil {
		return "", nil, 0, err
	}
	return HashedKey(normalized, hex.EncodeToString(h.Sum(nil))), body, size, nil
}

// digest feeds content from its current position into h and returns a reader
// over the same bytes. Seekable payloads are rewound; anything else is buffered.
func digest(h hash.Hash, content Content) (io.Reader, int64, error) {
	if s, ok := content.(io.Seeker); ok {
		if start, err := s.Seek(0, io.SeekCurrent); err == nil {
			n, err := io.Copy(h, content)
			if err != nil {
				return nil, 0, fmt.Errorf("failed to hash content: %w", err)
			}
			if _, err := s.Seek(start, io.SeekStart); err != nil {
				return nil, 0, fmt.Errorf("failed to rewind content: %w", err)
			}
			body, _ := unread(content, start)
			return body, n, nil
		}
	}

	var buf bytes.Buffer
	n, err := io.Copy(io.MultiWriter(h, &buf), content)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to hash content: %w", err)
	}
	return bytes.NewReader(buf.Bytes()), n, nil
}

// offset reports the read position of seekable content, 0 otherwise.
func offset(content Content) int64 {
	if s, ok := content.(io.Seeker); ok {
		if pos, err := s.Seek(0, io.SeekCurrent); err == nil {
			return pos
		}
	}
	return 0
}

// unread returns the part of content from pos on and its length. The client
// rewinds seekable bodies to offset 0 before sending, so content that is
// already part way through loses its Seek method.
func unread(content Content, pos int64) (io.Reader, int64) {
	size := content.Size()
	if pos <= 0 {
		return content, size
	}
	if size < 0 {
		return struct{ io.Reader }{content}, -1
	}
	return io.LimitReader(content, size-pos), size - pos
}

// HashedKey replaces the base name of name with digest, keeping the directory
// and the extension.
func HashedKey(name, digest string) string {
	dir, file := path.Split(name)
	return dir + digest + path.Ext(file)
}

// NormalizeName converts name to a clean forward-slash key without a leading
// slash. It returns "" for names that do not address an object.
func NormalizeName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	if name == "" {
		return ""
	}
	name = strings.TrimLeft(path.Clean(name), "/")
	if name == "." {
		return ""
	}
	return name
}
