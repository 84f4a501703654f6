package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"cooknextdoor/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AllowImage lists the content types accepted for uploaded pictures.
var AllowImage = []string{"image/jpeg", "image/png", "image/webp"}

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(region),
	}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return &awsS3{bucket: bucket, region: region}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	if a.client == nil || a.bucket == "" {
		return "", fmt.Errorf("s3 storage is not configured")
	}

	contentType := file.Header.Get("Content-Type")
	if len(allowedTypes) > 0 {
		allowed := false
		for _, t := range allowedTypes {
			if t == contentType {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", fmt.Errorf("content type %s is not allowed", contentType)
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectKey := fmt.Sprintf("%s/%s%s", dir, fileName, filepath.Ext(file.Filename))
	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	if a.client == nil || a.bucket == "" {
		return fmt.Errorf("s3 storage is not configured")
	}

	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	return strings.TrimPrefix(link, prefix)
}
