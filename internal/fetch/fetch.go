// Package fetch opens the input sources voca reads text from: standard
// input, local files and HTTP(S) URLs.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chriscorrea/voca/internal/charset"
)

// ErrTooLarge is returned (wrapped) when a source exceeds its size limit.
var ErrTooLarge = errors.New("content exceeds size limit")

// Limits bounds how much a single source may deliver.
type Limits struct {
	FileBytes int64         // files and stdin
	HTTPBytes int64         // HTTP bodies, which may not carry a Content-Length
	Timeout   time.Duration // whole HTTP request
}

// DefaultLimits returns 50MB for files, 100MB for HTTP and a 30s request timeout.
func DefaultLimits() Limits {
	return Limits{
		FileBytes: 50 * 1024 * 1024,
		HTTPBytes: 100 * 1024 * 1024,
		Timeout:   30 * time.Second,
	}
}

// withDefaults fills zero fields from DefaultLimits.
func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.FileBytes <= 0 {
		l.FileBytes = d.FileBytes
	}
	if l.HTTPBytes <= 0 {
		l.HTTPBytes = d.HTTPBytes
	}
	if l.Timeout <= 0 {
		l.Timeout = d.Timeout
	}
	return l
}

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, fmt.Errorf("reading %q: %w", l.source, ErrTooLarge)
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// newHTTPClient splits timeout across the request phases the same way for
// every client: a sixth each for dialing and TLS, half for headers.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: timeout / 6,
			}).DialContext,
			TLSHandshakeTimeout:   timeout / 6,
			ResponseHeaderTimeout: timeout / 2,
			DisableKeepAlives:     true,
		},
	}
}

// Open returns a reader for source:
//   - "-" reads from standard input
//   - URLs starting with "http://" or "https://" are fetched via HTTP
//   - everything else is treated as a local file path
//
// Zero fields of limits take their DefaultLimits value. Closing the reader
// returned for stdin leaves os.Stdin open.
func Open(ctx context.Context, source string, limits Limits) (io.ReadCloser, error) {
	limits = limits.withDefaults()
	switch {
	case source == "-":
		return &limitedReadCloser{
			ReadCloser: io.NopCloser(os.Stdin),
			N:          limits.FileBytes,
			source:     "stdin",
		}, nil
	case IsURL(source):
		return fetchURL(ctx, source, limits)
	default:
		return fetchFile(source, limits)
	}
}

// IsURL reports whether source is fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func fetchURL(ctx context.Context, url string, limits Limits) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "voca/"+charset.Version)

	resp, err := newHTTPClient(limits.Timeout).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %s", url, resp.Status)
	}

	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil && size > limits.HTTPBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("URL %q has %d bytes, limit is %d: %w",
				url, size, limits.HTTPBytes, ErrTooLarge)
		}
	}

	return &limitedReadCloser{
		ReadCloser: resp.Body,
		N:          limits.HTTPBytes,
		source:     url,
	}, nil
}

func fetchFile(path string, limits Limits) (io.ReadCloser, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}

	if fileInfo.Size() > limits.FileBytes {
		return nil, fmt.Errorf("file %q has %d bytes, limit is %d: %w",
			path, fileInfo.Size(), limits.FileBytes, ErrTooLarge)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	return file, nil
}
