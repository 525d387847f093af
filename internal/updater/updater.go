// Package updater checks the releases feed for a newer shell build.
//
// Checks are single-attempt: a failed check is reported to the caller and
// dropped, never retried and never fatal to the shell. Delivering the update
// itself is out of scope; users are pointed at the release page.
package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/streamkit-io/streamkit-shell/internal/buildinfo"
)

const defaultReleasesURL = "https://api.github.com/repos/streamkit-io/streamkit-shell/releases/latest"

// ReleaseInfo is the subset of the GitHub release payload the shell reads.
type ReleaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Result is the transient outcome of one update check.
type Result struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
}

// Checker queries the releases endpoint and compares against the running
// build's version.
type Checker struct {
	URL     string
	Client  *http.Client
	Current string
}

// NewChecker creates a checker for the canonical releases endpoint.
func NewChecker() *Checker {
	return &Checker{
		URL:     defaultReleasesURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Current: buildinfo.Version,
	}
}

// Check performs one update check.
func (c *Checker) Check(ctx context.Context) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "streamkit-shell/"+c.Current)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// No releases yet
		return &Result{
			Available:      false,
			CurrentVersion: c.Current,
		}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("releases endpoint returned %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latestVersion := strings.TrimPrefix(release.TagName, "v")
	current, err := ParseSemver(c.Current)
	if err != nil {
		// Unparseable local version (dev build), treat as older
		return &Result{
			Available:      true,
			CurrentVersion: c.Current,
			LatestVersion:  latestVersion,
			ReleaseURL:     release.HTMLURL,
		}, nil
	}

	latest, err := ParseSemver(latestVersion)
	if err != nil {
		return nil, fmt.Errorf("parse latest version %q: %w", latestVersion, err)
	}

	return &Result{
		Available:      current.LessThan(latest),
		CurrentVersion: c.Current,
		LatestVersion:  latestVersion,
		ReleaseURL:     release.HTMLURL,
	}, nil
}
