package filestore

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"sync"
	"time"

	"minio-storage/core/storage"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Dialer creates the storage client for a configuration.
type Dialer func(cfg storage.Config) (storage.Client, error)

// Option configures an Adapter.
type Option func(*Adapter)

// WithDialer replaces storage.NewClient as the client factory.
func WithDialer(d Dialer) Option {
	return func(a *Adapter) { a.dial = d }
}

// WithLogger sets the logger used for connection and best-effort write failures.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// Adapter implements the file storage contract against one bucket.
// It is safe for concurrent use.
type Adapter struct {
	cfg    storage.Config
	namer  Namer
	dial   Dialer
	logger *zap.Logger

	mu     sync.Mutex
	dialed bool
	client storage.Client
}

// Entry describes a stored object.
type Entry struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type,omitempty"`
	ETag         string    `json:"etag,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// New creates an Adapter. No connection is attempted until the first operation.
func New(cfg storage.Config, opts ...Option) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage configuration: %w", err)
	}
	namer, err := NewNamer(cfg.Naming, cfg.Hash)
	if err != nil {
		return nil, err
	}

	a := &Adapter{
		cfg:    cfg,
		namer:  namer,
		dial:   storage.NewClient,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// NewWithClient creates an Adapter around an existing client.
func NewWithClient(client storage.Client, cfg storage.Config, opts ...Option) (*Adapter, error) {
	a, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	a.dialed = true
	a.client = client
	return a, nil
}

// Bucket returns the target bucket name.
func (a *Adapter) Bucket() string {
	return a.cfg.Bucket
}

// Available reports whether a storage client exists, creating it if needed.
func (a *Adapter) Available() bool {
	return a.connection() != nil
}

// connection returns the memoized client, or nil when it could not be created.
// Creation is attempted once.
func (a *Adapter) connection() storage.Client {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.dialed {
		a.dialed = true
		client, err := a.dial(a.cfg)
		if err != nil {
			a.logger.Warn("Storage client unavailable",
				zap.String("endpoint", a.cfg.Endpoint),
				zap.Error(err))
		} else {
			a.client = client
		}
	}
	return a.client
}

// target resolves the client and normalized key for name.
func (a *Adapter) target(op, name string) (storage.Client, string, error) {
	key := NormalizeName(name)
	if key == "" {
		return nil, "", &fs.PathError{Op: op, Path: name, Err: ErrInvalidName}
	}
	client := a.connection()
	if client == nil {
		return nil, "", &fs.PathError{Op: op, Path: key, Err: ErrConnectionUnavailable}
	}
	return client, key, nil
}

// Open returns a reader for the object stored under name.
// The caller must close it.
func (a *Adapter) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	client, key, err := a.target("open", name)
	if err != nil {
		return nil, err
	}

	obj, err := client.GetObject(ctx, a.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, pathError("open", key, err)
	}
	return obj, nil
}

// objectStater is implemented by readers that carry their object's metadata,
// such as *minio.Object.
type objectStater interface {
	Stat() (minio.ObjectInfo, error)
}

// OpenEntry opens name and returns its metadata along with the reader. The
// metadata comes from the open object when the reader carries it, so no
// separate stat request is made. The caller must close the reader.
func (a *Adapter) OpenEntry(ctx context.Context, name string) (Entry, io.ReadCloser, error) {
	client, key, err := a.target("open", name)
	if err != nil {
		return Entry{}, nil, err
	}

	obj, err := client.GetObject(ctx, a.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return Entry{}, nil, pathError("open", key, err)
	}

	var info minio.ObjectInfo
	if st, ok := obj.(objectStater); ok {
		info, err = st.Stat()
	} else {
		info, err = client.StatObject(ctx, a.cfg.Bucket, key, minio.StatObjectOptions{})
	}
	if err != nil {
		_ = obj.Close()
		return Entry{}, nil, pathError("open", key, err)
	}

	e := entry(info)
	e.Name = key
	return e, obj, nil
}

// Save stores content and returns the key it was stored under. The bucket is
// created first if it does not exist.
func (a *Adapter) Save(ctx context.Context, name string, content Content) (SaveResult, error) {
	ct := contentType(name, content)
	key, body, size, err := a.namer.Key(name, content)
	if err != nil {
		return SaveResult{}, &fs.PathError{Op: "save", Path: name, Err: err}
	}

	res := SaveResult{Name: key, ContentType: ct, Size: size}

	client := a.connection()
	if client == nil {
		return a.settle(res, OutcomeConnectionUnavailable, ErrConnectionUnavailable)
	}

	if err := a.ensureBucket(ctx, client); err != nil {
		return a.settle(res, OutcomeBucketCreateFailed, fmt.Errorf("%w: %s: %w", ErrBucketCreate, a.cfg.Bucket, err))
	}

	_, err = client.PutObject(ctx, a.cfg.Bucket, key, body, size, minio.PutObjectOptions{
		ContentType: ct,
	})
	if err != nil {
		return a.settle(res, OutcomeWriteFailed, fmt.Errorf("%w: %s: %w", ErrWrite, key, err))
	}

	res.Outcome = OutcomeStored
	return res, nil
}

func (a *Adapter) ensureBucket(ctx context.Context, client storage.Client) error {
	exists, err := client.BucketExists(ctx, a.cfg.Bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	a.logger.Info("Creating bucket", zap.String("bucket", a.cfg.Bucket))
	return client.MakeBucket(ctx, a.cfg.Bucket, minio.MakeBucketOptions{Region: a.cfg.Region})
}

// BucketExists reports whether the target bucket exists.
func (a *Adapter) BucketExists(ctx context.Context) (bool, error) {
	client := a.connection()
	if client == nil {
		return false, ErrConnectionUnavailable
	}
	return client.BucketExists(ctx, a.cfg.Bucket)
}

// EnsureBucket creates the target bucket if it does not exist.
func (a *Adapter) EnsureBucket(ctx context.Context) error {
	client := a.connection()
	if client == nil {
		return ErrConnectionUnavailable
	}
	if err := a.ensureBucket(ctx, client); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBucketCreate, a.cfg.Bucket, err)
	}
	return nil
}

// settle records a failed outcome and applies the write mode.
func (a *Adapter) settle(res SaveResult, outcome Outcome, err error) (SaveResult, error) {
	res.Outcome = outcome
	res.Err = err
	if a.cfg.WriteMode == storage.WriteBestEffort {
		a.logger.Warn("Save dropped",
			zap.String("name", res.Name),
			zap.Stringer("outcome", outcome),
			zap.Error(err))
		return res, nil
	}
	return res, err
}

// Delete removes the object stored under name. Removing a missing object is
// not an error.
func (a *Adapter) Delete(ctx context.Context, name string) error {
	client, key, err := a.target("delete", name)
	if err != nil {
		return err
	}
	if err := client.RemoveObject(ctx, a.cfg.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return &fs.PathError{Op: "delete", Path: key, Err: err}
	}
	return nil
}

// Exists reports whether an object is stored under name. A missing object or
// bucket is (false, nil); any other failure is returned with the name attached.
func (a *Adapter) Exists(ctx context.Context, name string) (bool, error) {
	client, key, err := a.target("stat", name)
	if err != nil {
		return false, err
	}
	if _, err := client.StatObject(ctx, a.cfg.Bucket, key, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, &fs.PathError{Op: "stat", Path: key, Err: err}
	}
	return true, nil
}

// Stat returns the metadata of the object stored under name.
func (a *Adapter) Stat(ctx context.Context, name string) (Entry, error) {
	client, key, err := a.target("stat", name)
	if err != nil {
		return Entry{}, err
	}
	info, err := client.StatObject(ctx, a.cfg.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return Entry{}, pathError("stat", key, err)
	}
	e := entry(info)
	e.Name = key
	return e, nil
}

// Size returns the byte length of the object stored under name. A missing
// object is an error, never zero.
func (a *Adapter) Size(ctx context.Context, name string) (int64, error) {
	e, err := a.Stat(ctx, name)
	if err != nil {
		return 0, err
	}
	return e.Size, nil
}

// URL returns "{endpoint}/{bucket}/{name}". It performs no I/O and does not
// check that the object exists. Unlike the other operations it does not
// normalize name, so pass the key returned by Save.
func (a *Adapter) URL(name string) string {
	return fmt.Sprintf("%s/%s/%s", a.cfg.Endpoint, a.cfg.Bucket, name)
}

// List returns the objects under prefix. A non-empty pattern filters keys
// with doublestar glob syntax (e.g. "photos/**/*.png").
func (a *Adapter) List(ctx context.Context, prefix, pattern string) ([]Entry, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid match pattern %q", pattern)
	}
	client := a.connection()
	if client == nil {
		return nil, &fs.PathError{Op: "list", Path: prefix, Err: ErrConnectionUnavailable}
	}

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	entries := []Entry{}
	for obj := range client.ListObjects(ctx, a.cfg.Bucket, opts) {
		if obj.Err != nil {
			if storage.IsNotFound(obj.Err) {
				return entries, nil
			}
			return nil, &fs.PathError{Op: "list", Path: prefix, Err: obj.Err}
		}
		if obj.Key == "" || obj.Key[len(obj.Key)-1] == '/' {
			continue
		}
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, obj.Key); !ok {
				continue
			}
		}
		entries = append(entries, entry(obj))
	}
	return entries, nil
}

func entry(info minio.ObjectInfo) Entry {
	return Entry{
		Name:         info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}
}

// pathError maps backend not-found responses onto ErrNotFound.
func pathError(op, key string, err error) error {
	if storage.IsNotFound(err) {
		return &fs.PathError{Op: op, Path: key, Err: ErrNotFound}
	}
	return &fs.PathError{Op: op, Path: key, Err: err}
}
