package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestS3(endpoint string) *s3.Client {
	return s3.New(s3.Options{
		Region:                     "us-east-1",
		Credentials:                credentials.NewStaticCredentialsProvider("key", "secret", ""),
		BaseEndpoint:               aws.String(endpoint),
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	})
}

func TestObjectStore_Put(t *testing.T) {
	var gotPath, gotType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := NewObjectStore(newTestS3(server.URL), "restaurant-assets", "https://cdn.example.com")

	err := store.Put(context.Background(), "logos/owner/logo.png", []byte("png-bytes"), "image/png")

	require.NoError(t, err)
	assert.Equal(t, "/restaurant-assets/logos/owner/logo.png", gotPath)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, "png-bytes", string(gotBody))
}

func TestObjectStore_PutFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	store := NewObjectStore(newTestS3(server.URL), "restaurant-assets", "")

	err := store.Put(context.Background(), "avatars/u/a.jpg", []byte("x"), "image/jpeg")
	assert.Error(t, err)
}

func TestObjectStore_URLs(t *testing.T) {
	store := NewObjectStore(newTestS3("http://localhost:9000"), "restaurant-assets", "https://cdn.example.com/public")

	assert.Equal(t, "https://cdn.example.com/public/restaurant-assets/avatars/u/a.jpg", store.PublicURL("avatars/u/a.jpg"))

	signed, err := store.SignedURL(context.Background(), "menu-images/u/dish.webp", time.Hour)
	require.NoError(t, err)
	assert.Contains(t, signed, "http://localhost:9000/restaurant-assets/menu-images/u/dish.webp")
	assert.Contains(t, signed, "X-Amz-Expires=3600")
	assert.Contains(t, signed, "X-Amz-Signature=")
}
