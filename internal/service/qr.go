package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// QRRenderer turns a join URL into a PNG image. Rendering itself is an
// external collaborator; the core only supplies the URL.
type QRRenderer interface {
	RenderPNG(ctx context.Context, joinURL string) ([]byte, error)
}

type httpQRRenderer struct {
	rendererURL string
	client      *http.Client
}

// NewHTTPQRRenderer proxies rendering to an external QR service that
// accepts the payload as a "data" query parameter and responds with PNG
// bytes.
func NewHTTPQRRenderer(rendererURL string, client *http.Client) QRRenderer {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpQRRenderer{rendererURL: rendererURL, client: client}
}

func (r *httpQRRenderer) RenderPNG(ctx context.Context, joinURL string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s?data=%s", r.rendererURL, url.QueryEscape(joinURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build qr request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("render qr: renderer returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
