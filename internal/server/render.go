package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pixelforge/qrcanvas/pkg/cache"
	"github.com/pixelforge/qrcanvas/pkg/canvas"
	qerrors "github.com/pixelforge/qrcanvas/pkg/errors"
	"github.com/pixelforge/qrcanvas/pkg/qr"
)

// contentTypes maps format names to their media types.
var contentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
}

// formatRegistered reports whether the encoder registry can serve format.
func formatRegistered(format string) bool {
	for _, f := range canvas.Formats() {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// renderRequest is the parsed and validated /v1/qr query.
type renderRequest struct {
	data   string
	level  qr.Level
	format string
	opts   qr.Options
}

// parseRenderRequest validates the query parameters for /v1/qr.
func (s *Server) parseRenderRequest(r *http.Request) (renderRequest, error) {
	q := r.URL.Query()

	req := renderRequest{
		data:   q.Get("data"),
		format: q.Get("format"),
	}
	if req.format == "" {
		req.format = canvas.DefaultFormat
	}

	if err := qerrors.ValidateData(req.data); err != nil {
		return req, err
	}
	if err := qerrors.ValidateFormatName(req.format); err != nil {
		return req, err
	}
	req.format = strings.ToLower(req.format)

	level, err := qr.ParseLevel(q.Get("level"))
	if err != nil {
		return req, err
	}
	req.level = level

	if v := q.Get("module_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, qerrors.New(qerrors.ErrCodeInvalidInput, "invalid module_size %q", v)
		}
		if n > s.cfg.MaxModuleSize {
			return req, qerrors.New(qerrors.ErrCodeInvalidInput, "module_size %d exceeds maximum %d", n, s.cfg.MaxModuleSize)
		}
		req.opts.ModuleSize = n
	}
	if v := q.Get("quiet_zone"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, qerrors.New(qerrors.ErrCodeInvalidInput, "invalid quiet_zone %q", v)
		}
		req.opts.QuietZone = n
	}
	if v := q.Get("fg"); v != "" {
		col, err := canvas.ParseColor(v)
		if err != nil {
			return req, err
		}
		req.opts.Foreground = col
	}
	if v := q.Get("bg"); v != "" {
		col, err := canvas.ParseColor(v)
		if err != nil {
			return req, err
		}
		req.opts.Background = col
	}
	if v := q.Get("rounded"); v != "" {
		rounded, err := strconv.ParseBool(v)
		if err != nil {
			return req, qerrors.New(qerrors.ErrCodeInvalidInput, "invalid rounded %q", v)
		}
		req.opts.Rounded = rounded
	}

	return req, nil
}

// cacheKey derives the cache key covering every output-affecting parameter.
func (req renderRequest) cacheKey() string {
	return cache.RenderKey(req.data, cache.RenderKeyOpts{
		Level:       req.level.String(),
		ModuleSize:  req.opts.ModuleSize,
		QuietZone:   req.opts.QuietZone,
		Rounded:     req.opts.Rounded,
		CornerRatio: req.opts.CornerRatio,
		Foreground:  uint32(req.opts.Foreground),
		Background:  uint32(req.opts.Background),
		Format:      req.format,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.requestLogger(ctx)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	// Pre-validate against the encoder registry so unsupported formats fail
	// before any rendering work happens.
	if !formatRegistered(req.format) {
		s.writeError(w, qerrors.New(qerrors.ErrCodeUnsupportedFormat, "no encoder registered for format %q", req.format))
		return
	}
	contentType, ok := contentTypes[req.format]
	if !ok {
		contentType = "application/octet-stream"
	}

	key := req.cacheKey()
	if data, hit, err := s.store.Get(ctx, key); err == nil && hit {
		logger.Debugf("Cache hit (%d bytes)", len(data))
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write(data)
		return
	} else if err != nil {
		logger.Warnf("Cache get failed: %v", err)
	}

	m, err := qr.Encode(req.data, req.level)
	if err != nil {
		s.writeError(w, err)
		return
	}

	c, err := qr.Render(m, req.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := c.Bytes(req.format)
	if err != nil {
		s.writeError(w, err)
		return
	}
	logger.Debugf("Rendered %d modules as %s (%d bytes)", m.Size(), req.format, len(data))

	if err := s.store.Set(ctx, key, data, s.cfg.CacheTTL()); err != nil {
		logger.Warnf("Cache set failed: %v", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Cache", "miss")
	_, _ = w.Write(data)
}
