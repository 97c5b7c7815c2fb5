package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]string
	types   map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = string(body)
		f.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newFakeStore(t *testing.T) (*S3Store, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: map[string]string{}, types: map[string]string{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store, err := NewS3Store(context.Background(), S3Config{
		Bucket:          "rental",
		Region:          "us-east-1",
		Endpoint:        srv.URL,
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	return store, fake
}

func TestS3StorePutAndDelete(t *testing.T) {
	store, fake := newFakeStore(t)
	ctx := context.Background()

	url, err := store.Put(ctx, "properties/1/a.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "/rental/properties/1/a.jpg"), url)

	fake.mu.Lock()
	assert.Equal(t, "jpeg-bytes", fake.objects["/rental/properties/1/a.jpg"])
	assert.Equal(t, "image/jpeg", fake.types["/rental/properties/1/a.jpg"])
	fake.mu.Unlock()

	require.NoError(t, store.Delete(ctx, "properties/1/a.jpg"))
	fake.mu.Lock()
	assert.Empty(t, fake.objects)
	fake.mu.Unlock()
}

func TestS3StoreRejectsEmptyKey(t *testing.T) {
	store, _ := newFakeStore(t)
	_, err := store.Put(context.Background(), "", "", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestNewS3StoreRequiresBucket(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Config{})
	assert.Error(t, err)
}

func TestS3StoreURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  S3Config
		want string
	}{
		{"aws", S3Config{Bucket: "b", Region: "eu-west-1"}, "https://b.s3.eu-west-1.amazonaws.com/k/x.png"},
		{"public base", S3Config{Bucket: "b", PublicBaseURL: "https://cdn.example.com/"}, "https://cdn.example.com/k/x.png"},
		{"path style", S3Config{Bucket: "b", Endpoint: "http://minio:9000", UsePathStyle: true}, "http://minio:9000/b/k/x.png"},
		{"virtual host", S3Config{Bucket: "b", Endpoint: "https://s3.local"}, "https://b.s3.local/k/x.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &S3Store{cfg: tt.cfg}
			assert.Equal(t, tt.want, s.URL("k/x.png"))
		})
	}
}

func TestDisabledStore(t *testing.T) {
	_, err := Disabled{}.Put(context.Background(), "k", "", strings.NewReader(""))
	assert.True(t, IsDisabled(err))
	assert.True(t, IsDisabled(Disabled{}.Delete(context.Background(), "k")))
}
