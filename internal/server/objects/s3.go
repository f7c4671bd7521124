package objects

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API подмножество клиента S3, которое использует хранилище
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config параметры подключения к S3-совместимому хранилищу
type S3Config struct {
	Region    string
	Bucket    string
	Endpoint  string // пусто для AWS, иначе адрес MinIO и т.п.
	AccessKey string
	SecretKey string
}

// S3Store хранит объекты в одном bucket S3, логический bucket становится префиксом ключа
type S3Store struct {
	client S3API
	bucket string
}

// NewS3Store создает клиент S3 по конфигурации
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3StoreWithClient(client, cfg.Bucket), nil
}

// NewS3StoreWithClient создает хранилище поверх готового клиента
func NewS3StoreWithClient(client S3API, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}

// Put загружает объект. Без upsert используется условная запись If-None-Match: *.
func (s *S3Store) Put(ctx context.Context, bucket, key string, body io.Reader, contentType string, upsert bool) error {
	if err := ValidateKey(bucket, key); err != nil {
		return err
	}

	// SDK требует известную длину тела для подписи запроса
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read object: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey(bucket, key)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentTypeOrDefault(contentType)),
	}
	if !upsert {
		input.IfNoneMatch = aws.String("*")
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		if errorCode(err) == "PreconditionFailed" {
			return ErrObjectExists
		}
		return fmt.Errorf("failed to put object: %w", err)
	}

	return nil
}

// Get скачивает объект
func (s *S3Store) Get(ctx context.Context, bucket, key string) (*Object, error) {
	if err := ValidateKey(bucket, key); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey(bucket, key)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) || errorCode(err) == "NotFound" {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	obj := &Object{
		Body:        out.Body,
		ContentType: contentTypeOrDefault(aws.ToString(out.ContentType)),
		Size:        aws.ToInt64(out.ContentLength),
	}
	if out.LastModified != nil {
		obj.ModTime = *out.LastModified
	}

	return obj, nil
}

// errorCode возвращает код ошибки API S3, если он есть
func errorCode(err error) string {
	var apiErr interface{ ErrorCode() string }
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
