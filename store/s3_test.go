package store_test

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/johannesboyne/gofakes3"
	"github.com/johannesboyne/gofakes3/backend/s3mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/store"
)

func testS3Client(t *testing.T) (*s3.S3, string) {
	t.Helper()
	backend := s3mem.New()
	faker := gofakes3.New(backend)
	ts := httptest.NewServer(faker.Server())
	t.Cleanup(ts.Close)

	s3Config := &aws.Config{
		Credentials: credentials.NewStaticCredentials(
			"TEST-ACCESSKEYID",
			"TEST-SECRETACCESSKEY",
			"",
		),
		Endpoint:         aws.String(ts.URL),
		Region:           aws.String("ca-west-1"),
		DisableSSL:       aws.Bool(true),
		S3ForcePathStyle: aws.Bool(true),
	}
	newSession, err := session.NewSession(s3Config)
	require.NoError(t, err)
	bucketName := randBucketName(t)
	client := s3.New(newSession)
	_, err = client.CreateBucket(&s3.CreateBucketInput{Bucket: &bucketName})
	require.NoError(t, err)

	return client, bucketName
}

func randBucketName(t *testing.T) string {
	t.Helper()
	i, err := rand.Int(rand.Reader, big.NewInt(math.MaxUint32))
	require.NoError(t, err)

	return fmt.Sprintf("bucket-%s", i)
}

func TestS3Store_SaveLoad(t *testing.T) {
	client, bucketName := testS3Client(t)

	p := store.NewS3Store(client, bucketName, "matrices/")
	err := p.Save(ctx, "m.txt", []byte("rows=2\ncols=2\n(0, 0, 5)"))
	require.NoError(t, err)
	b, err := p.Load(ctx, "m.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("rows=2\ncols=2\n(0, 0, 5)"), b)

	// second load is served from the memo; still the same bytes
	b, err = p.Load(ctx, "m.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("rows=2\ncols=2\n(0, 0, 5)"), b)
}

func TestS3Store_OverwriteRefreshesMemo(t *testing.T) {
	client, bucketName := testS3Client(t)

	p := store.NewS3Store(client, bucketName, "")
	require.NoError(t, p.Save(ctx, "m.txt", []byte("old")))
	require.NoError(t, p.Save(ctx, "m.txt", []byte("new")))
	b, err := p.Load(ctx, "m.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), b)
}

func TestS3Store_MissingObjectIsStorageError(t *testing.T) {
	client, bucketName := testS3Client(t)

	p := store.NewS3Store(client, bucketName, "")
	_, err := p.Load(ctx, "absent.txt")
	require.ErrorIs(t, err, store.ErrStorage)
}
