package mocks

import (
	"bytes"
	"context"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

/*
Memory is an in-memory storage.Client backed by maps. It is only suitable for
tests; it reports missing keys and buckets with the same error codes as S3.
*/

type memObject struct {
	data        []byte
	contentType string
	modified    time.Time
}

// Memory is an in-memory storage client.
type Memory struct {
	mtx     sync.RWMutex
	buckets map[string]map[string]memObject
	puts    int
}

// NewMemory returns an empty in-memory client.
func NewMemory() *Memory {
	return &Memory{buckets: make(map[string]map[string]memObject)}
}

// Puts returns the number of successful PutObject calls.
func (m *Memory) Puts() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.puts
}

func (m *Memory) BucketExists(_ context.Context, bucketName string) (bool, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	_, ok := m.buckets[bucketName]
	return ok, nil
}

func (m *Memory) MakeBucket(_ context.Context, bucketName string, _ minio.MakeBucketOptions) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if _, ok := m.buckets[bucketName]; ok {
		return minio.ErrorResponse{Code: "BucketAlreadyOwnedByYou", BucketName: bucketName, StatusCode: 409}
	}
	m.buckets[bucketName] = make(map[string]memObject)
	return nil
}

// PutObject rewinds seekable readers to offset 0 first, as minio-go does.
func (m *Memory) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if s, ok := reader.(io.Seeker); ok {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return minio.UploadInfo{}, err
		}
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	m.mtx.Lock()
	defer m.mtx.Unlock()
	bucket, ok := m.buckets[bucketName]
	if !ok {
		return minio.UploadInfo{}, noSuchBucket(bucketName)
	}
	bucket[objectName] = memObject{data: data, contentType: opts.ContentType, modified: time.Now()}
	m.puts++
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(data))}, nil
}

func (m *Memory) GetObject(_ context.Context, bucketName, objectName string, _ minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := m.lookup(bucketName, objectName)
	if err != nil {
		return nil, err
	}
	return &memReader{Reader: bytes.NewReader(obj.data), info: objectInfo(objectName, obj)}, nil
}

// memReader mirrors *minio.Object, which carries its metadata.
type memReader struct {
	*bytes.Reader
	info minio.ObjectInfo
}

func (r *memReader) Close() error { return nil }

func (r *memReader) Stat() (minio.ObjectInfo, error) { return r.info, nil }

func (m *Memory) StatObject(_ context.Context, bucketName, objectName string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	obj, err := m.lookup(bucketName, objectName)
	if err != nil {
		return minio.ObjectInfo{}, err
	}
	return objectInfo(objectName, obj), nil
}

func (m *Memory) ListObjects(_ context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	bucket, ok := m.buckets[bucketName]
	if !ok {
		return ObjectChannel(minio.ObjectInfo{Err: noSuchBucket(bucketName)})
	}
	keys := make([]string, 0, len(bucket))
	for k := range bucket {
		if strings.HasPrefix(k, opts.Prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	infos := make([]minio.ObjectInfo, 0, len(keys))
	for _, k := range keys {
		infos = append(infos, objectInfo(k, bucket[k]))
	}
	return ObjectChannel(infos...)
}

func (m *Memory) RemoveObject(_ context.Context, bucketName, objectName string, _ minio.RemoveObjectOptions) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	bucket, ok := m.buckets[bucketName]
	if !ok {
		return noSuchBucket(bucketName)
	}
	delete(bucket, objectName)
	return nil
}

func (m *Memory) lookup(bucketName, objectName string) (memObject, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	bucket, ok := m.buckets[bucketName]
	if !ok {
		return memObject{}, noSuchBucket(bucketName)
	}
	obj, ok := bucket[objectName]
	if !ok {
		return memObject{}, NotFound(objectName)
	}
	return obj, nil
}

func objectInfo(key string, obj memObject) minio.ObjectInfo {
	return minio.ObjectInfo{
		Key:          key,
		Size:         int64(len(obj.data)),
		ContentType:  obj.contentType,
		LastModified: obj.modified,
	}
}

func noSuchBucket(bucketName string) error {
	return minio.ErrorResponse{
		Code:       "NoSuchBucket",
		Message:    "The specified bucket does not exist",
		BucketName: bucketName,
		StatusCode: 404,
	}
}
