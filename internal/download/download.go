package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Downloader streams remote files to disk. Bodies are copied through a
// small fixed buffer so large logos never sit in memory whole.
type Downloader struct {
	httpClient httpDoer
}

// New constructs a Downloader. A nil client gets a default with a timeout
// so a stalled CDN cannot hang a run.
func New(client *http.Client) *Downloader {
	return &Downloader{httpClient: resolveHTTPClient(client)}
}

// Fetch downloads url into dest. The destination file is only created
// after a successful status check; a copy failure leaves a partial file
// for the caller's cleanup to sweep.
func (d *Downloader) Fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("download %s: unexpected status %d: %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	buf := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(out, resp.Body, buf); err != nil {
		out.Close()
		return fmt.Errorf("download %s: %w", url, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dest, err)
	}
	return nil
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultTimeout}
}
