package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/hashicorp/golang-lru/simplelru"
)

// loadCacheSize bounds the LRU memo of recently loaded objects.
const loadCacheSize = 128

// S3Interface is the narrow slice of the S3 client the store needs; it lets
// tests substitute a fake without the full aws-sdk service surface.
type S3Interface interface {
	GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error)
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// S3Store implements Store over objects in a single S3 bucket under an
// optional key prefix. Recently loaded objects are memoized in an LRU;
// the memo assumes this store is the bucket's only writer.
type S3Store struct {
	s3         S3Interface
	BucketName string
	Prefix     string
	lru        *simplelru.LRU
}

// NewS3Store returns an S3Store that loads and saves blobs as objects with
// the given client, bucket name and key prefix.
func NewS3Store(client S3Interface, bucketName, prefix string) *S3Store {
	lru, err := simplelru.NewLRU(loadCacheSize, nil)
	if err != nil {
		// simplelru.NewLRU only fails on non-positive size
		panic(err)
	}

	return &S3Store{s3: client, BucketName: bucketName, Prefix: prefix, lru: lru}
}

// Load returns the bytes of the named object, serving repeat reads from the
// in-process memo.
func (p *S3Store) Load(ctx context.Context, name string) ([]byte, error) {
	if cached, ok := p.lru.Get(name); ok {
		return cached.([]byte), nil
	}
	input := s3.GetObjectInput{
		Bucket: &p.BucketName,
		Key:    aws.String(p.Prefix + name),
	}
	output, err := p.s3.GetObjectWithContext(ctx, &input)
	if err != nil {
		return nil, fmt.Errorf("get object %q: %v: %w", name, err, ErrStorage)
	}
	defer output.Body.Close()
	b, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %q: %v: %w", name, err, ErrStorage)
	}
	p.lru.Add(name, b)

	return b, nil
}

// Save stores the given bytes as the named object, replacing any previous
// version, and refreshes the memo.
func (p *S3Store) Save(ctx context.Context, name string, b []byte) error {
	input := s3.PutObjectInput{
		Bucket: &p.BucketName,
		Key:    aws.String(p.Prefix + name),
		Body:   bytes.NewReader(b),
	}
	if _, err := p.s3.PutObjectWithContext(ctx, &input); err != nil {
		return fmt.Errorf("put object %q: %v: %w", name, err, ErrStorage)
	}
	p.lru.Add(name, b)

	return nil
}
