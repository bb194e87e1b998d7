package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gabriel-vasile/mimetype"
)

// ErrSourceUnreadable is returned when an input cannot be read, whether a
// local file or a URL fetch.
var ErrSourceUnreadable = errors.New("source unreadable")

// Resolver turns an input argument into raw text, treating scheme-prefixed
// arguments as URLs and everything else as local paths.
type Resolver struct {
	Options
}

// New returns a Resolver.
func New(opts ...Option) *Resolver {
	ret := new(Resolver)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.client == nil {
		ret.client = http.DefaultClient
	}
	return ret
}

// IsURL reports whether the argument is an http(s) URL rather than a local
// path.
func IsURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

// Resolve obtains the raw text behind the argument. Any I/O or HTTP failure
// is reported as ErrSourceUnreadable.
func (r *Resolver) Resolve(ctx context.Context, arg string) (string, error) {
	if IsURL(arg) {
		return r.fetch(ctx, arg)
	}
	return r.readFile(arg)
}

func (r *Resolver) readFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrSourceUnreadable, path)
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}
	return string(bs), nil
}

func (r *Resolver) fetch(ctx context.Context, link string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, link, err)
	}
	httpResp, err := r.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, link, err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s: unexpected status %s", ErrSourceUnreadable, link, httpResp.Status)
	}
	bs, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, link, err)
	}
	if r.extractHTML && isHTML(httpResp.Header.Get("Content-Type"), bs) {
		md, err := htmltomarkdown.ConvertString(string(bs))
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, link, err)
		}
		return md, nil
	}
	return string(bs), nil
}

// isHTML checks the Content-Type header first and falls back to sniffing the
// payload when the header is missing or generic.
func isHTML(contentType string, body []byte) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	if contentType != "" && !strings.Contains(contentType, "octet-stream") {
		return false
	}
	return mimetype.Detect(body).Is("text/html")
}
