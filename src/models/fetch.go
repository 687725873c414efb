package models

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// maxParallelDownloads bounds concurrent model fetches.
const maxParallelDownloads = 4

// FetchAll downloads every configured model asset into the cache dir,
// skipping assets already present with a matching digest. Downloads run
// in parallel; the first failure cancels the rest.
func (p *Pipeline) FetchAll(ctx context.Context) error {
	if err := os.MkdirAll(p.Cfg.CacheDir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDownloads)

	for _, asset := range p.Cfg.Assets {
		g.Go(func() error {
			return p.fetchOne(ctx, asset.Name, asset.URL, asset.SHA256)
		})
	}
	return g.Wait()
}

// fetchOne downloads a single asset unless the cached copy already
// matches the expected digest.
func (p *Pipeline) fetchOne(ctx context.Context, name, url, wantSum string) error {
	dst := filepath.Join(p.Cfg.CacheDir, name)

	if _, err := os.Stat(dst); err == nil {
		if wantSum == "" {
			if p.Verbose {
				fmt.Fprintf(p.Stderr, "models: %s cached\n", name)
			}
			return nil
		}
		if sum, err := fileSHA256(dst); err == nil && sum == wantSum {
			if p.Verbose {
				fmt.Fprintf(p.Stderr, "models: %s cached (digest ok)\n", name)
			}
			return nil
		}
		// Stale or corrupt — refetch.
	}

	if p.Verbose {
		fmt.Fprintf(p.Stderr, "models: fetching %s\n", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: %d", name, resp.StatusCode)
	}

	tmp := dst + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	if wantSum != "" {
		sum, err := fileSHA256(tmp)
		if err != nil {
			return err
		}
		if sum != wantSum {
			os.Remove(tmp)
			return fmt.Errorf("digest mismatch for %s: got %s, want %s", name, sum, wantSum)
		}
	}

	return os.Rename(tmp, dst)
}

// fileSHA256 returns the hex digest of a file's contents.
func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
