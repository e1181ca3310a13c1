package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrKey    = "s3.key"
	otelAttrBucket = "s3.bucket"
	otelAttrSize   = "s3.size"

	region = "auto"
)

// Object is a stored file: its key inside the bucket and the public URL it is served from.
type Object struct {
	Key string
	URL string
}

// S3 stores uploaded images in the configured bucket.
type S3 interface {
	// Upload stores file under directory with a generated name that keeps the original extension.
	Upload(ctx context.Context, directory string, file multipart.File, header *multipart.FileHeader) (Object, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL returns the key behind a URL produced by Upload, or "" for foreign URLs.
	KeyFromURL(rawURL string) string
}

type s3Impl struct {
	client       Client
	bucket       string
	publicDomain string
	apiEndpoint  string
	otel         otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	s3Cfg := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, "")),
		awsConfig.WithRegion(region),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load object storage configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s3Cfg.APIEndpoint)
		o.UsePathStyle = true
	})

	return NewWithClient(client, cfg, otel)
}

func NewWithClient(client Client, cfg *config.Config, otel otel.Otel) S3 {
	return &s3Impl{
		client:       client,
		bucket:       cfg.External.S3.BucketName,
		publicDomain: strings.TrimRight(cfg.External.S3.PublicDomain, "/"),
		apiEndpoint:  strings.TrimRight(cfg.External.S3.APIEndpoint, "/"),
		otel:         otel,
	}
}

func (svc *s3Impl) Upload(ctx context.Context, directory string, file multipart.File, header *multipart.FileHeader) (obj Object, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := path.Join(directory, uuid.NewString()+strings.ToLower(filepath.Ext(header.Filename)))

	scope.SetAttributes(map[string]any{
		otelAttrKey:    key,
		otelAttrBucket: svc.bucket,
		otelAttrSize:   header.Size,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentType:   aws.String(header.Header.Get(constant.RequestHeaderContentType)),
		ContentLength: aws.Int64(header.Size),
	})
	if err != nil {
		return Object{}, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	publicURL, err := url.JoinPath(svc.publicDomain, key)
	if err != nil {
		return Object{}, fmt.Errorf("failed to build public url for %s: %w", key, err)
	}

	log.Debug().Str("key", key).Int64("size", header.Size).Msg("uploaded object")

	return Object{Key: key, URL: publicURL}, nil
}

func (svc *s3Impl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		otelAttrKey:    key,
		otelAttrBucket: svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

// KeyFromURL accepts both the public domain form and the path style API form.
func (svc *s3Impl) KeyFromURL(rawURL string) string {
	prefixes := []string{
		svc.publicDomain + "/",
		svc.apiEndpoint + "/" + svc.bucket + "/",
	}

	for _, prefix := range prefixes {
		if prefix == "/" {
			continue
		}

		if key, ok := strings.CutPrefix(rawURL, prefix); ok && key != constant.Empty {
			return key
		}
	}

	return constant.Empty
}
