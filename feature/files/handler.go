package files

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"minio-storage/core/filestore"
	"minio-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	// ErrCatalogDisabled is returned by catalog queries when no database is configured.
	ErrCatalogDisabled = errors.New("catalog disabled")
	// ErrInvalidQuery is returned for malformed query parameters.
	ErrInvalidQuery = errors.New("invalid query parameter")
)

// Handler handles HTTP requests for files.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the files routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/files")
	group.Get("/", h.HandleList)
	group.Put("/*", h.HandleUpload)
	group.Head("/*", h.HandleExists)
	group.Get("/*", h.HandleDownload)
	group.Delete("/*", h.HandleDelete)

	meta := app.Group("/meta")
	meta.Get("/url/*", h.HandleURL)
	meta.Get("/size/*", h.HandleSize)

	app.Get("/catalog", h.HandleCatalog)
}

// objectName returns the unescaped wildcard path of the request.
func objectName(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return "", filestore.ErrInvalidName
	}
	if filestore.NormalizeName(name) == "" {
		return "", filestore.ErrInvalidName
	}
	return name, nil
}

// statusFor maps file store errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, filestore.ErrInvalidName), errors.Is(err, ErrInvalidQuery):
		return fiber.StatusBadRequest
	case errors.Is(err, filestore.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, filestore.ErrConnectionUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, filestore.ErrBucketCreate), errors.Is(err, filestore.ErrWrite):
		return fiber.StatusBadGateway
	case errors.Is(err, ErrCatalogDisabled):
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleUpload stores the request body.
// @Summary Upload File
// @Description Stores the request body under the given name. The response name is the key to use afterwards; it differs from the path under the hashed naming policy.
// @Tags files
// @Accept octet-stream
// @Produce json
// @Param name path string true "File name (e.g. 'photos/cat.png')"
// @Success 201 {object} filestore.SaveResult "Stored"
// @Success 202 {object} filestore.SaveResult "Dropped in best-effort mode"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 502 {object} map[string]string "Backend write failed"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /files/{name} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	name, err := objectName(c)
	if err != nil {
		return h.fail(c, "Upload rejected", err)
	}

	content := filestore.BytesContent(c.Body(), c.Get(fiber.HeaderContentType))
	res, err := h.service.Upload(c.Context(), name, content)
	if err != nil {
		return h.fail(c, "Upload failed", err)
	}

	status := fiber.StatusCreated
	if !res.Stored() {
		status = fiber.StatusAccepted
	}
	return c.Status(status).JSON(fiber.Map{
		"name":         res.Name,
		"outcome":      res.Outcome,
		"content_type": res.ContentType,
		"size":         res.Size,
		"url":          h.service.URL(res.Name),
	})
}

// HandleDownload streams a stored file.
// @Summary Download File
// @Tags files
// @Produce octet-stream
// @Param name path string true "Object key"
// @Success 200 {file} binary "File content"
// @Failure 404 {object} map[string]string "Not found"
// @Router /files/{name} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	name, err := objectName(c)
	if err != nil {
		return h.fail(c, "Download rejected", err)
	}

	entry, rc, err := h.service.Fetch(c.Context(), name)
	if err != nil {
		return h.fail(c, "Download failed", err)
	}

	if entry.ContentType != "" {
		c.Set(fiber.HeaderContentType, entry.ContentType)
	}
	if entry.ETag != "" {
		c.Set(fiber.HeaderETag, entry.ETag)
	}
	return c.SendStream(rc, int(entry.Size))
}

// HandleExists reports whether a file exists.
// @Summary File Exists
// @Tags files
// @Param name path string true "Object key"
// @Success 200 "Exists"
// @Failure 404 "Not found"
// @Router /files/{name} [head]
func (h *Handler) HandleExists(c *fiber.Ctx) error {
	name, err := objectName(c)
	if err != nil {
		return c.SendStatus(statusFor(err))
	}

	ok, err := h.service.Exists(c.Context(), name)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Exists check failed", zap.Error(err))
		return c.SendStatus(statusFor(err))
	}
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusOK)
}

// HandleDelete removes a file.
// @Summary Delete File
// @Tags files
// @Param name path string true "Object key"
// @Success 204 "Deleted"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /files/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	name, err := objectName(c)
	if err != nil {
		return h.fail(c, "Delete rejected", err)
	}
	if err := h.service.Remove(c.Context(), name); err != nil {
		return h.fail(c, "Delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleList lists stored files.
// @Summary List Files
// @Tags files
// @Produce json
// @Param prefix query string false "Key prefix"
// @Param match query string false "Glob pattern (e.g. 'photos/**/*.png')"
// @Success 200 {array} filestore.Entry "Entries"
// @Router /files [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	entries, err := h.service.List(c.Context(), c.Query("prefix"), c.Query("match"))
	if err != nil {
		return h.fail(c, "List failed", err)
	}
	return c.JSON(entries)
}

// HandleURL returns the public URL of a file without checking that it exists.
// @Summary File URL
// @Tags files
// @Produce json
// @Param name path string true "Object key"
// @Success 200 {object} map[string]string "URL"
// @Router /meta/url/{name} [get]
func (h *Handler) HandleURL(c *fiber.Ctx) error {
	name, err := objectName(c)
	if err != nil {
		return h.fail(c, "URL rejected", err)
	}
	return c.JSON(fiber.Map{"name": name, "url": h.service.URL(name)})
}

// HandleSize returns the stored size of a file.
// @Summary File Size
// @Tags files
// @Produce json
// @Param name path string true "Object key"
// @Success 200 {object} map[string]interface{} "Size"
// @Failure 404 {object} map[string]string "Not found"
// @Router /meta/size/{name} [get]
func (h *Handler) HandleSize(c *fiber.Ctx) error {
	name, err := objectName(c)
	if err != nil {
		return h.fail(c, "Size rejected", err)
	}
	size, err := h.service.Size(c.Context(), name)
	if err != nil {
		return h.fail(c, "Size failed", err)
	}
	return c.JSON(fiber.Map{"name": name, "size": size})
}

// HandleCatalog lists catalog rows.
// @Summary List Catalog
// @Description Lists the original-name to key mapping recorded for uploads. Requires the database.
// @Tags files
// @Produce json
// @Param original query string false "Original file name"
// @Param limit query int false "Maximum rows"
// @Success 200 {array} StoredFile "Rows"
// @Failure 400 {object} map[string]string "Bad limit"
// @Failure 501 {object} map[string]string "Catalog disabled"
// @Router /catalog [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return h.fail(c, "Catalog query rejected", fmt.Errorf("%w: limit %q", ErrInvalidQuery, raw))
		}
		limit = n
	}
	rows, err := h.service.Catalog(c.Context(), c.Query("original"), limit)
	if err != nil {
		return h.fail(c, "Catalog query failed", err)
	}
	return c.JSON(rows)
}
