package sea

import (
	"archive/tar"
	"bufio"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// minNodeVersion is the oldest Node release with a usable SEA feature.
const minNodeVersion = "20.0.0"

// ensureNode returns the path to the pinned Node binary, downloading
// and extracting it on first use.
func (b *Builder) ensureNode(ctx context.Context) (string, error) {
	if err := checkNodeVersion(b.NodeVersion); err != nil {
		return "", err
	}

	triple, err := nodeTriple(b.NodeVersion)
	if err != nil {
		return "", err
	}

	nodeBin := filepath.Join(b.OutputDir, triple, "node")
	if _, err := os.Stat(nodeBin); err == nil {
		if b.Verbose {
			fmt.Fprintf(b.Stderr, "sea: using cached %s\n", nodeBin)
		}
		return nodeBin, nil
	}

	tarball := triple + ".tar.gz"
	tarURL := fmt.Sprintf("%s/v%s/%s", strings.TrimRight(b.NodeDistURL, "/"), b.NodeVersion, tarball)
	sumsURL := fmt.Sprintf("%s/v%s/SHASUMS256.txt", strings.TrimRight(b.NodeDistURL, "/"), b.NodeVersion)

	wantSum, err := fetchChecksum(ctx, sumsURL, tarball)
	if err != nil {
		return "", err
	}

	tarPath := filepath.Join(b.OutputDir, tarball)
	if err := download(ctx, tarURL, tarPath); err != nil {
		return "", err
	}
	defer os.Remove(tarPath)

	gotSum, err := fileSHA256(tarPath)
	if err != nil {
		return "", err
	}
	if gotSum != wantSum {
		return "", fmt.Errorf("checksum mismatch for %s: got %s, want %s", tarball, gotSum, wantSum)
	}

	if err := extractNode(tarPath, triple, nodeBin); err != nil {
		return "", err
	}
	return nodeBin, nil
}

// checkNodeVersion enforces the SEA minimum on the pinned release.
func checkNodeVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid node version %q: %w", version, err)
	}
	min := semver.MustParse(minNodeVersion)
	if v.LessThan(min) {
		return fmt.Errorf("node %s does not support single executable applications (need >= %s)", version, minNodeVersion)
	}
	return nil
}

// nodeTriple returns the release directory name for the host platform,
// e.g. "node-v22.11.0-linux-x64".
func nodeTriple(version string) (string, error) {
	var osName string
	switch runtime.GOOS {
	case "linux":
		osName = "linux"
	case "darwin":
		osName = "darwin"
	default:
		return "", fmt.Errorf("sea builds are not supported on %s", runtime.GOOS)
	}

	var arch string
	switch runtime.GOARCH {
	case "amd64":
		arch = "x64"
	case "arm64":
		arch = "arm64"
	default:
		return "", fmt.Errorf("sea builds are not supported on %s", runtime.GOARCH)
	}

	return fmt.Sprintf("node-v%s-%s-%s", version, osName, arch), nil
}

// fetchChecksum reads the SHASUMS256.txt index and returns the digest
// for the named file.
func fetchChecksum(ctx context.Context, url, filename string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: %d", url, resp.StatusCode)
	}

	return parseChecksums(resp.Body, filename)
}

// parseChecksums scans "<sha256>  <filename>" lines for the named file.
func parseChecksums(r io.Reader, filename string) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[1] == filename {
			return fields[0], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no checksum entry for %s", filename)
}

// download streams a URL to a local file, overwriting it.
func download(ctx context.Context, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: %d", url, resp.StatusCode)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// extractNode pulls the single bin/node member out of the release tarball.
func extractNode(tarPath, triple, dst string) error {
	f, err := os.Open(tarPath)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("opening tarball: %w", err)
	}
	defer gz.Close()

	want := triple + "/bin/node"
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return fmt.Errorf("tarball has no %s member", want)
		}
		if err != nil {
			return fmt.Errorf("reading tarball: %w", err)
		}
		if hdr.Name != want {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	}
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
