// Package scan runs a local secrets scan over a working tree before
// anything is reported to the platform. Detection is delegated to the
// gitleaks ruleset; this package only walks files and shapes findings.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/zricethezav/gitleaks/v8/detect"

	"github.com/vigilhq/vigil/src/config"
)

// Finding is one detected secret occurrence.
type Finding struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	RuleID      string `json:"rule_id"`
	Description string `json:"description"`
}

// Report summarizes a completed scan.
type Report struct {
	FilesScanned int       `json:"files_scanned"`
	Findings     []Finding `json:"findings,omitempty"`
}

// Scanner walks a directory tree and detects committed secrets.
type Scanner struct {
	cfg      config.ScanConfig
	detector *detect.Detector
}

// NewScanner builds a scanner with the default gitleaks ruleset.
func NewScanner(cfg config.ScanConfig) (*Scanner, error) {
	d, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("loading secrets ruleset: %w", err)
	}
	return &Scanner{cfg: cfg, detector: d}, nil
}

// Scan walks rootDir and returns all findings. The walk honors the
// configured excludes and file-size cap; unreadable files are skipped.
func (s *Scanner) Scan(ctx context.Context, rootDir string) (*Report, error) {
	report := &Report{}

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if s.excluded(rel + "/") {
				return filepath.SkipDir
			}
			return nil
		}
		if s.excluded(rel) {
			return nil
		}

		if s.cfg.MaxFileSizeKB > 0 {
			if fi, statErr := d.Info(); statErr == nil && fi.Size() > int64(s.cfg.MaxFileSizeKB)*1024 {
				return nil
			}
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		report.FilesScanned++

		for _, hit := range s.detector.DetectBytes(data) {
			report.Findings = append(report.Findings, Finding{
				File:        rel,
				Line:        hit.StartLine + 1, // gitleaks is 0-indexed
				RuleID:      hit.RuleID,
				Description: hit.Description,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// excluded reports whether a relative path matches a configured exclude.
func (s *Scanner) excluded(rel string) bool {
	for _, pattern := range s.cfg.Exclude {
		if pattern == "" {
			continue
		}
		if strings.Contains(rel, pattern) {
			return true
		}
	}
	return false
}
