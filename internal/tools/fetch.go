package tools

import (
	"context"
	"fmt"
	"net/http"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

const fetchTimeout = 30 * time.Second

// runFetchURL retrieves url, extracts its main content, and converts it to
// markdown. Fetch or extraction failures come back as error text; a page
// with no extractable content yields an empty string.
func runFetchURL(ctx context.Context, url string) string {
	client := &http.Client{Timeout: fetchTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Sprintf("Failed to fetch the url %s: %v", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Sprintf("Failed to fetch the url %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Sprintf("Failed to fetch the url %s: unexpected status %s", url, resp.Status)
	}

	article, err := readability.FromReader(resp.Body, resp.Request.URL)
	if err != nil {
		return fmt.Sprintf("Failed to fetch the url %s: %v", url, err)
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(article.Content)
	if err != nil {
		return fmt.Sprintf("Failed to fetch the url %s: %v", url, err)
	}
	return markdown
}
