package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>Título da página</title>
<meta property="og:title" content="Coletiva: novo plano de mobilidade" />
<meta property="og:image" content="https://cdn.example.com/capa.jpg" />
<meta property="article:published_time" content="2024-06-10T09:00:00Z" />
</head>
<body><p>conteúdo</p></body>
</html>`

func TestFetchURLMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	meta, err := FetchURLMetadata(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Coletiva: novo plano de mobilidade", meta.Title)
	assert.Equal(t, "https://cdn.example.com/capa.jpg", meta.ImageURL)
	assert.Equal(t, "2024-06-10T09:00:00Z", meta.PublishedDate)
}

func TestFetchURLMetadataTitleFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Só o título</title></head><body></body></html>`))
	}))
	defer srv.Close()

	meta, err := FetchURLMetadata(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Só o título", meta.Title)
	assert.Empty(t, meta.ImageURL)
}

func TestFetchURLMetadataFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "fora do ar", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	// Erros viram (nil, error); o chamador segue sem metadados.
	meta, err := FetchURLMetadata(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Nil(t, meta)

	meta, err = FetchURLMetadata(context.Background(), "http://127.0.0.1:1/nada")
	assert.Error(t, err)
	assert.Nil(t, meta)
}

func TestFetchURLMetadataEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head></head><body></body></html>`))
	}))
	defer srv.Close()

	meta, err := FetchURLMetadata(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Nil(t, meta)
}
