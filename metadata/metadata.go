// Package metadata busca, em melhor esforço, os metadados de uma URL
// (Open Graph) para pré-preencher o formulário de links publicados.
// Falhas de rede ou de parse nunca se propagam: o chamador recebe nil e
// segue com os valores fornecidos pelo usuário.
package metadata

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const defaultTimeout = 10 * time.Second

// URLMetadata são os campos aproveitáveis pelo formulário de links.
type URLMetadata struct {
	Title         string `json:"title,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
}

// clientTimeout lê o timeout das variáveis de ambiente (METADATA_TIMEOUT,
// ex: "5s"), com fallback para o padrão.
func clientTimeout() time.Duration {
	if raw := os.Getenv("METADATA_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
	}
	return defaultTimeout
}

// FetchURLMetadata baixa a página e extrai título, imagem e data de
// publicação das tags Open Graph (com fallback para <title>). Qualquer
// falha resulta em (nil, error); o chamador trata o erro como ausência
// de metadados, nunca como falha da ação.
func FetchURLMetadata(ctx context.Context, url string) (*URLMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição de metadata: %w", err)
	}
	req.Header.Set("User-Agent", "warroom-backend/1.0 (+link preview)")

	client := &http.Client{Timeout: clientTimeout()}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a página: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("página retornou status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao parsear HTML: %w", err)
	}

	meta := extractMetadata(doc)
	if meta.Title == "" && meta.ImageURL == "" && meta.PublishedDate == "" {
		return nil, fmt.Errorf("nenhum metadado encontrado na página")
	}
	return meta, nil
}

// extractMetadata percorre a árvore HTML coletando as tags relevantes.
func extractMetadata(doc *html.Node) *URLMetadata {
	meta := &URLMetadata{}
	var pageTitle string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				property, content := metaAttrs(n)
				switch property {
				case "og:title":
					meta.Title = content
				case "og:image":
					meta.ImageURL = content
				case "article:published_time", "og:published_time":
					meta.PublishedDate = content
				}
			case "title":
				if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					pageTitle = strings.TrimSpace(n.FirstChild.Data)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	// <title> é o fallback quando não há og:title.
	if meta.Title == "" {
		meta.Title = pageTitle
	}
	return meta
}

// metaAttrs lê os atributos property/name e content de uma tag <meta>.
func metaAttrs(n *html.Node) (property, content string) {
	for _, attr := range n.Attr {
		switch attr.Key {
		case "property", "name":
			property = attr.Val
		case "content":
			content = attr.Val
		}
	}
	return property, content
}
