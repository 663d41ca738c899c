package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FetchSnapshotImage abre a página de snapshot do anúncio e extrai a imagem de preview (og:image)
func (c *MetaClient) FetchSnapshotImage(ctx context.Context, snapshotURL string) (string, error) {
	if snapshotURL == "" {
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, snapshotURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao buscar snapshot do anúncio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("snapshot do anúncio retornou status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao interpretar HTML do snapshot: %w", err)
	}

	image := strings.TrimSpace(doc.Find(`meta[property="og:image"]`).AttrOr("content", ""))
	if image == "" {
		image = strings.TrimSpace(doc.Find(`meta[name="twitter:image"]`).AttrOr("content", ""))
	}

	return image, nil
}
