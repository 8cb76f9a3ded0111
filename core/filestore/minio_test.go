package filestore_test

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"minio-storage/core/filestore"
	"minio-storage/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// s3Stub answers the path-style requests minio-go sends for the adapter's
// operations. Bodies are kept decoded; signatures are not checked.
type s3Stub struct {
	mu      sync.Mutex
	buckets map[string]map[string]stubObject
	puts    int
}

type stubObject struct {
	data        []byte
	contentType string
}

func newS3Stub(t *testing.T) (*s3Stub, storage.Config) {
	t.Helper()
	stub := &s3Stub{buckets: make(map[string]map[string]stubObject)}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	return stub, storage.Config{
		Endpoint:       srv.URL,
		AccessKey:      "minioadmin",
		SecretKey:      "minioadmin",
		Bucket:         "media",
		Region:         "us-east-1",
		TimeoutSeconds: 5,
	}
}

func (s *s3Stub) Puts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

func (s *s3Stub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")

	s.mu.Lock()
	defer s.mu.Unlock()

	objects, exists := s.buckets[bucket]
	if key == "" {
		switch r.Method {
		case http.MethodHead:
			if !exists {
				w.WriteHeader(http.StatusNotFound)
			}
		case http.MethodPut:
			if !exists {
				s.buckets[bucket] = make(map[string]stubObject)
			}
		default:
			w.WriteHeader(http.StatusNotImplemented)
		}
		return
	}

	if !exists {
		writeS3Error(w, r, http.StatusNotFound, "NoSuchBucket")
		return
	}

	switch r.Method {
	case http.MethodPut:
		data, err := readS3Body(r)
		if err != nil {
			writeS3Error(w, r, http.StatusBadRequest, "IncompleteBody")
			return
		}
		objects[key] = stubObject{data: data, contentType: r.Header.Get("Content-Type")}
		s.puts++
		w.Header().Set("ETag", `"stub"`)
	case http.MethodHead, http.MethodGet:
		obj, ok := objects[key]
		if !ok {
			writeS3Error(w, r, http.StatusNotFound, "NoSuchKey")
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(obj.data)))
		w.Header().Set("Content-Type", obj.contentType)
		w.Header().Set("ETag", `"stub"`)
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		if r.Method == http.MethodGet {
			_, _ = w.Write(obj.data)
		}
	case http.MethodDelete:
		delete(objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func writeS3Error(w http.ResponseWriter, r *http.Request, status int, code string) {
	if r.Method == http.MethodHead {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	fmt.Fprintf(w, "<Error><Code>%s</Code><Message>%s</Message></Error>", code, code)
}

// readS3Body returns the object bytes, undoing aws-chunked framing when the
// client used a streaming signature.
func readS3Body(r *http.Request) ([]byte, error) {
	if r.Header.Get("X-Amz-Decoded-Content-Length") == "" {
		return io.ReadAll(r.Body)
	}

	br := bufio.NewReader(r.Body)
	var out bytes.Buffer
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, err
		}
		sizeHex, _, _ := strings.Cut(strings.TrimSpace(line), ";")
		n, err := strconv.ParseInt(sizeHex, 16, 64)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return out.Bytes(), nil
		}
		if _, err := io.CopyN(&out, br, n); err != nil {
			return nil, err
		}
		if _, err := br.Discard(2); err != nil {
			return nil, err
		}
	}
}

func TestAdapter_SaveThroughMinioClient(t *testing.T) {
	payloads := []struct {
		name    string
		content func() filestore.Content
	}{
		{"seekable", func() filestore.Content {
			return filestore.BytesContent([]byte("streamed"), "")
		}},
		{"non seekable known size", func() filestore.Content {
			r := io.MultiReader(strings.NewReader("stream"), strings.NewReader("ed"))
			return filestore.NewContent(r, 8, "")
		}},
	}

	for _, naming := range []string{storage.NamingIdentity, storage.NamingHashed} {
		for _, p := range payloads {
			t.Run(naming+"/"+p.name, func(t *testing.T) {
				ctx := context.Background()
				stub, cfg := newS3Stub(t)
				cfg.Naming = naming

				a, err := filestore.New(cfg)
				require.NoError(t, err)

				res, err := a.Save(ctx, "logs/out.txt", p.content())
				require.NoError(t, err)
				assert.Equal(t, filestore.OutcomeStored, res.Outcome)
				assert.Equal(t, int64(8), res.Size)
				assert.Equal(t, 1, stub.Puts())

				ok, err := a.Exists(ctx, res.Name)
				require.NoError(t, err)
				assert.True(t, ok)

				size, err := a.Size(ctx, res.Name)
				require.NoError(t, err)
				assert.Equal(t, int64(8), size)

				rc, err := a.Open(ctx, res.Name)
				require.NoError(t, err)
				data, err := io.ReadAll(rc)
				require.NoError(t, rc.Close())
				require.NoError(t, err)
				assert.Equal(t, "streamed", string(data))

				entry, err := a.Stat(ctx, res.Name)
				require.NoError(t, err)
				assert.Equal(t, "text/plain; charset=utf-8", entry.ContentType)
			})
		}
	}
}

func TestAdapter_SavePartlyReadContent(t *testing.T) {
	for _, naming := range []string{storage.NamingIdentity, storage.NamingHashed} {
		t.Run(naming, func(t *testing.T) {
			ctx := context.Background()
			_, cfg := newS3Stub(t)
			cfg.Naming = naming

			a, err := filestore.New(cfg)
			require.NoError(t, err)

			r := strings.NewReader("header:payload")
			_, err = r.Seek(int64(len("header:")), io.SeekStart)
			require.NoError(t, err)

			res, err := a.Save(ctx, "data/body.bin", filestore.NewContent(r, r.Size(), ""))
			require.NoError(t, err)
			assert.Equal(t, int64(len("payload")), res.Size)
			if naming == storage.NamingHashed {
				assert.Equal(t, "data/"+sha256Hex("payload")+".bin", res.Name)
			}

			rc, err := a.Open(ctx, res.Name)
			require.NoError(t, err)
			data, _ := io.ReadAll(rc)
			_ = rc.Close()
			assert.Equal(t, "payload", string(data))
		})
	}
}

func TestAdapter_MissingThroughMinioClient(t *testing.T) {
	ctx := context.Background()
	_, cfg := newS3Stub(t)
	a, err := filestore.New(cfg)
	require.NoError(t, err)

	ok, err := a.Exists(ctx, "nope.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.EnsureBucket(ctx))

	ok, err = a.Exists(ctx, "nope.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = a.Size(ctx, "nope.txt")
	assert.ErrorIs(t, err, filestore.ErrNotFound)

	_, err = a.Open(ctx, "nope.txt")
	assert.ErrorIs(t, err, filestore.ErrNotFound)
}
