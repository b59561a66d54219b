package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	policyErr       error

	madeBucket string
	policy     string

	putErr         error
	putKey         string
	putBody        []byte
	putSize        int64
	putContentType string

	removeErr error
	removed   string
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, bucket string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeBucketErr
}

func (f *fakeMinio) SetBucketPolicy(_ context.Context, _ string, policy string) error {
	f.policy = policy
	return f.policyErr
}

func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return minioLib.UploadInfo{}, err
	}
	f.putKey, f.putBody, f.putSize, f.putContentType = key, body, size, opts.ContentType
	return minioLib.UploadInfo{Key: key, Size: int64(len(body))}, nil
}

func (f *fakeMinio) RemoveObject(_ context.Context, _ string, key string, _ minioLib.RemoveObjectOptions) error {
	f.removed = key
	return f.removeErr
}

var testOpts = Options{Endpoint: "localhost:9000", Bucket: "recipe-images"}

func TestNewClientWithAPI_Bucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		api        *fakeMinio
		wantErr    string
		wantMade   bool
		wantPolicy bool
	}{
		{name: "existing bucket is kept", api: &fakeMinio{bucketExists: true}},
		{name: "missing bucket is created public", api: &fakeMinio{}, wantMade: true, wantPolicy: true},
		{name: "exists check fails", api: &fakeMinio{bucketExistsErr: errors.New("x")}, wantErr: "failed to check bucket existence"},
		{name: "create fails", api: &fakeMinio{makeBucketErr: errors.New("x")}, wantErr: "failed to create bucket", wantMade: true},
		{name: "policy fails", api: &fakeMinio{policyErr: errors.New("x")}, wantErr: "failed to set bucket policy", wantMade: true, wantPolicy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewClientWithAPI(context.Background(), tt.api, testOpts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "recipe-images", c.bucket)
			}

			assert.Equal(t, tt.wantMade, tt.api.madeBucket == "recipe-images")
			if tt.wantPolicy {
				assert.Contains(t, tt.api.policy, "arn:aws:s3:::recipe-images/*")
				assert.Contains(t, tt.api.policy, "s3:GetObject")
			} else {
				assert.Empty(t, tt.api.policy)
			}
		})
	}
}

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, testOpts)
	require.NoError(t, err)

	err = c.Upload(context.Background(), "recipes/a/b/c.png", bytes.NewBufferString("data"), 4, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "recipes/a/b/c.png", api.putKey)
	assert.Equal(t, []byte("data"), api.putBody)
	assert.Equal(t, int64(4), api.putSize)
	assert.Equal(t, "image/png", api.putContentType)

	api.putErr = errors.New("put failed")
	err = c.Upload(context.Background(), "k", bytes.NewBufferString("data"), 4, "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload object")
}

func TestClient_Delete(t *testing.T) {
	t.Parallel()

	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, testOpts)
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), "k"))
	assert.Equal(t, "k", api.removed)

	api.removeErr = errors.New("rm failed")
	err = c.Delete(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete object")
}

func TestClient_URL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "endpoint",
			opts: Options{Endpoint: "localhost:9000", Bucket: "imgs"},
			want: "http://localhost:9000/imgs/recipes/u/r/x.jpg",
		},
		{
			name: "ssl endpoint",
			opts: Options{Endpoint: "s3.example.com", Bucket: "imgs", UseSSL: true},
			want: "https://s3.example.com/imgs/recipes/u/r/x.jpg",
		},
		{
			name: "public url",
			opts: Options{Endpoint: "minio:9000", Bucket: "imgs", PublicURL: "https://cdn.example.com/"},
			want: "https://cdn.example.com/imgs/recipes/u/r/x.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewClientWithAPI(context.Background(), &fakeMinio{bucketExists: true}, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.URL("recipes/u/r/x.jpg"))
		})
	}
}
