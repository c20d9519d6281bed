package response // import "github.com/Xunop/e-livraria/internal/http/response"

import (
	"net/http"
	"strings"

	"github.com/Xunop/e-livraria/internal/log"
	"github.com/andybalholm/brotli"
	"go.uber.org/zap"
)

const compressionThreshold = 1024

// Compression enables brotli encoding of large bodies for clients that accept it.
var Compression = true

// Builder generates HTTP responses.
type Builder struct {
	w                 http.ResponseWriter
	r                 *http.Request
	statusCode        int
	headers           map[string]string
	enableCompression bool
	body              []byte
}

// New creates a new response builder.
func New(w http.ResponseWriter, r *http.Request) *Builder {
	return &Builder{w: w, r: r, statusCode: http.StatusOK, headers: make(map[string]string), enableCompression: Compression}
}

// WithStatus uses the given status code to build the response.
func (b *Builder) WithStatus(statusCode int) {
	b.statusCode = statusCode
}

// WithHeader adds the given HTTP header to the response.
func (b *Builder) WithHeader(key, value string) {
	b.headers[key] = value
}

// WithBody uses the given body to build the response.
func (b *Builder) WithBody(body []byte) {
	b.body = body
}

// WithoutCompression disables HTTP compression.
func (b *Builder) WithoutCompression() {
	b.enableCompression = false
}

// Write generates the HTTP response.
func (b *Builder) Write() {
	if b.body == nil {
		b.writeHeaders()
		return
	}
	b.compress(b.body)
}

func (b *Builder) writeHeaders() {
	b.headers["X-Content-Type-Options"] = "nosniff"
	b.headers["X-Frame-Options"] = "DENY"

	for key, value := range b.headers {
		b.w.Header().Set(key, value)
	}

	b.w.WriteHeader(b.statusCode)
}

func (b *Builder) compress(data []byte) {
	if b.enableCompression && len(data) > compressionThreshold {
		acceptEncoding := b.r.Header.Get("Accept-Encoding")
		if strings.Contains(acceptEncoding, "br") {
			b.headers["Content-Encoding"] = "br"
			// Keep any Vary set by middleware, e.g. Origin for CORS.
			b.w.Header().Add("Vary", "Accept-Encoding")
			b.writeHeaders()

			bw := brotli.NewWriterLevel(b.w, brotli.DefaultCompression)
			defer bw.Close()
			if _, err := bw.Write(data); err != nil {
				log.Debug("Unable to write compressed response", zap.Error(err))
			}
			return
		}
	}

	b.writeHeaders()
	if _, err := b.w.Write(data); err != nil {
		log.Debug("Unable to write response", zap.Error(err))
	}
}
