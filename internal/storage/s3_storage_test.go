package storage

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 implements just enough ListObjectsV2/PutObject/DeleteObject
// semantics to exercise the gateway, including paginated listings.
type fakeS3 struct {
	objects  map[string]int64 // key -> size
	pageSize int
	putErr   error
	delErr   error
	listErr  error

	putKeys []string
	delKeys []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		objects:  make(map[string]int64),
		pageSize: 2,
	}
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putKeys = append(f.putKeys, *params.Key)
	f.objects[*params.Key] = 0
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.delErr != nil {
		return nil, f.delErr
	}
	f.delKeys = append(f.delKeys, *params.Key)
	delete(f.objects, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	prefix := aws.ToString(params.Prefix)

	var contents []string
	prefixSet := map[string]bool{}
	for key := range f.objects {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		rest := strings.TrimPrefix(key, prefix)
		if idx := strings.Index(rest, "/"); idx >= 0 {
			prefixSet[prefix+rest[:idx+1]] = true
		} else {
			contents = append(contents, key)
		}
	}
	sort.Strings(contents)

	offset := 0
	if tok := aws.ToString(params.ContinuationToken); tok != "" {
		offset, _ = strconv.Atoi(tok)
	}

	end := offset + f.pageSize
	if end > len(contents) {
		end = len(contents)
	}

	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(end < len(contents))}
	for _, key := range contents[offset:end] {
		out.Contents = append(out.Contents, types.Object{
			Key:  aws.String(key),
			Size: aws.Int64(f.objects[key]),
		})
	}
	if offset == 0 {
		var subs []string
		for p := range prefixSet {
			subs = append(subs, p)
		}
		sort.Strings(subs)
		for _, p := range subs {
			out.CommonPrefixes = append(out.CommonPrefixes, types.CommonPrefix{Prefix: aws.String(p)})
		}
	}
	if end < len(contents) {
		out.NextContinuationToken = aws.String(strconv.Itoa(end))
	}
	return out, nil
}

func newTestStorage(fake *fakeS3) *S3Storage {
	return &S3Storage{
		client:  fake,
		bucket:  "misircafe",
		region:  "eu-central-1",
		baseURL: "https://cdn.misircafe.com",
		now:     func() time.Time { return time.UnixMilli(1756307258668) },
	}
}

func TestS3Storage_Upload(t *testing.T) {
	fake := newFakeS3()
	store := newTestStorage(fake)

	url, err := store.Upload(context.Background(), strings.NewReader("fake-bytes"), "photo.png", "image/png", PrefixCategory)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.misircafe.com/category/1756307258668.png", url)
	require.Len(t, fake.putKeys, 1)
	assert.Equal(t, "category/1756307258668.png", fake.putKeys[0])
}

func TestS3Storage_Upload_StoreFailure(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = assert.AnError
	store := newTestStorage(fake)

	url, err := store.Upload(context.Background(), strings.NewReader("x"), "a.jpg", "image/jpeg", PrefixEvent)
	assert.Error(t, err)
	assert.Empty(t, url)
}

func TestS3Storage_Delete(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantOK  bool
		wantKey string
	}{
		{
			name:    "CDN base URL",
			url:     "https://cdn.misircafe.com/category/1756308429880.png",
			wantOK:  true,
			wantKey: "category/1756308429880.png",
		},
		{
			name:    "Virtual-hosted S3 URL",
			url:     "https://misircafe.s3.eu-central-1.amazonaws.com/event/1.jpg",
			wantOK:  true,
			wantKey: "event/1.jpg",
		},
		{
			name:    "Path-style URL",
			url:     "https://s3.eu-central-1.amazonaws.com/misircafe/special_menu/2.webp",
			wantOK:  true,
			wantKey: "special_menu/2.webp",
		},
		{
			name:   "Empty URL",
			url:    "",
			wantOK: false,
		},
		{
			name:   "Foreign bucket",
			url:    "https://other-bucket.s3.eu-central-1.amazonaws.com/x.png",
			wantOK: false,
		},
		{
			name:   "Not a URL",
			url:    "::::",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeS3()
			store := newTestStorage(fake)

			ok := store.Delete(context.Background(), tt.url)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Len(t, fake.delKeys, 1)
				assert.Equal(t, tt.wantKey, fake.delKeys[0])
			} else {
				assert.Empty(t, fake.delKeys)
			}
		})
	}
}

func TestS3Storage_Delete_StoreFailure(t *testing.T) {
	fake := newFakeS3()
	fake.delErr = assert.AnError
	store := newTestStorage(fake)

	// Store failures degrade to false, never an error
	ok := store.Delete(context.Background(), "https://cdn.misircafe.com/category/1.png")
	assert.False(t, ok)
}

func TestS3Storage_TotalSize_EmptyBucket(t *testing.T) {
	store := newTestStorage(newFakeS3())

	total, err := store.TotalSize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestS3Storage_TotalSize_SumsAcrossPrefixesAndPages(t *testing.T) {
	fake := newFakeS3()
	// More files per prefix than the fake's page size to force
	// pagination inside each prefix listing.
	fake.objects = map[string]int64{
		"category/a.png":      100,
		"category/b.png":      250,
		"category/c.png":      50,
		"event/a.jpg":         1024,
		"event/b.jpg":         2048,
		"special_menu/a.webp": 7,
	}
	store := newTestStorage(fake)

	total, err := store.TotalSize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(100+250+50+1024+2048+7), total)
}

func TestS3Storage_TotalSize_ListFailure(t *testing.T) {
	fake := newFakeS3()
	fake.listErr = assert.AnError
	store := newTestStorage(fake)

	total, err := store.TotalSize(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int64(0), total)
}

func TestS3Storage_Validators(t *testing.T) {
	store := newTestStorage(newFakeS3())

	assert.NoError(t, store.ValidateFileSize(MaxImageSize, MaxImageSize))
	assert.Error(t, store.ValidateFileSize(MaxImageSize+1, MaxImageSize))

	assert.NoError(t, store.ValidateContentType("image/png", AllowedImageTypes))
	assert.Error(t, store.ValidateContentType("application/pdf", AllowedImageTypes))
}
