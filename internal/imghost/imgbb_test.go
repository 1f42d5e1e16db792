package imghost

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasarim-galerisi/backend/internal/models"
)

func TestUploadSendsBase64FormField(t *testing.T) {
	image := []byte("fake-png-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		encoded := r.FormValue("image")
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		assert.Equal(t, image, decoded)

		w.Write([]byte(`{"data":{"url":"https://i.ibb.co/abc/helmet.png"},"success":true}`))
	}))
	defer server.Close()

	client := NewImgbbClient(server.URL, "test-key")
	url, err := client.Upload(context.Background(), strings.NewReader(string(image)))
	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/abc/helmet.png", url)
}

func TestUploadServerErrorWrapsUploadFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewImgbbClient(server.URL, "test-key")
	_, err := client.Upload(context.Background(), strings.NewReader("img"))
	assert.ErrorIs(t, err, models.ErrUploadFailed)
}

func TestUploadRejectedByHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer server.Close()

	client := NewImgbbClient(server.URL, "test-key")
	_, err := client.Upload(context.Background(), strings.NewReader("img"))
	assert.ErrorIs(t, err, models.ErrUploadFailed)
}

func TestUploadEmptyImage(t *testing.T) {
	client := NewImgbbClient("http://unused.example", "test-key")
	_, err := client.Upload(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, models.ErrUploadFailed)
}

func TestUploadMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-json"))
	}))
	defer server.Close()

	client := NewImgbbClient(server.URL, "test-key")
	_, err := client.Upload(context.Background(), strings.NewReader("img"))
	assert.ErrorIs(t, err, models.ErrUploadFailed)
}
