package filestore

import (
	"bytes"
	"io"
	"mime"
	"path"
)

// Content is a payload handed to Save. Size returns the byte length, or -1
// when it is unknown.
type Content interface {
	io.Reader
	Size() int64
}

// ContentTyper is implemented by payloads that know their own MIME type.
type ContentTyper interface {
	ContentType() string
}

type readerContent struct {
	io.Reader
	size        int64
	contentType string
}

func (c *readerContent) Size() int64         { return c.size }
func (c *readerContent) ContentType() string { return c.contentType }

// seekableContent is returned for readers that can seek, so uploads can be
// rewound and retried by the client.
type seekableContent struct {
	readerContent
}

func (c *seekableContent) Seek(offset int64, whence int) (int64, error) {
	return c.Reader.(io.Seeker).Seek(offset, whence)
}

// NewContent wraps r as a payload. An empty contentType defers to the file
// extension at save time. The payload implements io.Seeker only when r does.
func NewContent(r io.Reader, size int64, contentType string) Content {
	rc := readerContent{Reader: r, size: size, contentType: contentType}
	if _, ok := r.(io.Seeker); ok {
		return &seekableContent{rc}
	}
	return &rc
}

// BytesContent wraps an in-memory payload.
func BytesContent(data []byte, contentType string) Content {
	return NewContent(bytes.NewReader(data), int64(len(data)), contentType)
}

// contentType prefers the payload's declared type and falls back to the
// extension of name.
func contentType(name string, content Content) string {
	if ct, ok := content.(ContentTyper); ok {
		if t := ct.ContentType(); t != "" {
			return t
		}
	}
	return mime.TypeByExtension(path.Ext(name))
}
