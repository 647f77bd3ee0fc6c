package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const releaseAPIBase = "https://api.github.com"

type GitHubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		BrowserDownloadURL string `json:"browser_download_url"`
		Name               string `json:"name"`
	} `json:"assets"`
}

// LatestReleaseVersion fetches the latest release of a GitHub repository and
// parses its tag as a Version. A non-empty token is sent as a bearer token to
// avoid anonymous rate limits. A single request, no retries.
func LatestReleaseVersion(repo, token string) (Version, error) {
	return latestReleaseVersionFrom(releaseAPIBase, repo, token)
}

func latestReleaseVersionFrom(apiBase, repo, token string) (Version, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", apiBase, repo)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return Version{}, fmt.Errorf("failed to create request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Version{}, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Version{}, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Version{}, fmt.Errorf("failed to decode release JSON: %w", err)
	}

	if release.TagName == "" {
		return Version{}, fmt.Errorf("latest release has no tag")
	}

	return ParseVersion(release.TagName)
}
