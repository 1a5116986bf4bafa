package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/config"
)

func TestObjectKey(t *testing.T) {
	now := time.Unix(0, 1_700_000_000_123)
	key := ObjectKey("topics/7", "Lecture Notes.PDF", now)

	assert.True(t, strings.HasPrefix(key, "topics/7/"))
	assert.True(t, strings.HasSuffix(key, "-1700000000123.pdf"))
	assert.NotEqual(t, key, ObjectKey("topics/7", "Lecture Notes.PDF", now), "keys must not collide")

	assert.NotContains(t, ObjectKey("", "../../etc/passwd", now), "..")
}

func TestDiskStore_SaveAndDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	obj, err := store.Save(ctx, "topics/1/a.txt", strings.NewReader("hello"), 5, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/topics/1/a.txt", obj.URL)
	assert.Equal(t, int64(5), obj.Size)

	data, err := os.ReadFile(filepath.Join(store.Root, "topics", "1", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Delete(ctx, "topics/1/a.txt"))
	_, err = os.Stat(filepath.Join(store.Root, "topics", "1", "a.txt"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, "topics/1/a.txt"), "deleting twice is fine")
}

func TestDiskStore_RejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	for _, key := range []string{"", "../x", "a/../../x", "a//b", `a\..\b`} {
		_, err := store.Save(context.Background(), key, strings.NewReader("x"), 1, "")
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

type fakeS3 struct {
	objects   map[string]string
	putErr    error
	bucketErr error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, _ := io.ReadAll(in.Body)
	f.objects[*in.Bucket+"/"+*in.Key] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) CreateBucket(context.Context, *s3.CreateBucketInput, ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	return &s3.CreateBucketOutput{}, f.bucketErr
}

func TestS3Store(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{}}
	store := NewS3Store(fake, config.S3Config{Endpoint: "http://minio:9000", Bucket: "campuslearn"})
	ctx := context.Background()

	require.NoError(t, store.EnsureBucket(ctx))

	obj, err := store.Save(ctx, "topics/2/b.pdf", strings.NewReader("pdf"), 3, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/campuslearn/topics/2/b.pdf", obj.URL)
	assert.Equal(t, "pdf", fake.objects["campuslearn/topics/2/b.pdf"])

	require.NoError(t, store.Delete(ctx, "topics/2/b.pdf"))
	assert.Empty(t, fake.objects)

	fake.putErr = errors.New("boom")
	_, err = store.Save(ctx, "k", strings.NewReader("x"), 1, "")
	assert.Error(t, err)

	fake.bucketErr = errors.New("denied")
	assert.Error(t, store.EnsureBucket(ctx))
}

func TestS3Store_PublicURL(t *testing.T) {
	store := NewS3Store(&fakeS3{objects: map[string]string{}}, config.S3Config{
		Bucket:    "b",
		PublicURL: "https://cdn.example.com/files/",
	})
	obj, err := store.Save(context.Background(), "x.png", strings.NewReader("1"), 1, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/files/x.png", obj.URL)
}
