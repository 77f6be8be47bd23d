// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/lamsh/lamsh/internal/log"
)

// S3API is the subset of the S3 client used by BucketService.
type S3API interface {
	PutBucketNotificationConfiguration(ctx context.Context, params *s3v2.PutBucketNotificationConfigurationInput, optFns ...func(*s3v2.Options)) (*s3v2.PutBucketNotificationConfigurationOutput, error)
}

// BucketService applies notification configurations to buckets.
type BucketService struct {
	api S3API
}

// NewBucketService constructs a BucketService over the given client.
func NewBucketService(api S3API) *BucketService {
	return &BucketService{api: api}
}

// ApplyNotification replaces the bucket's notification configuration with
// cfg. The caller must already hold the invoke-permission grant, or S3
// rejects the configuration.
func (s *BucketService) ApplyNotification(ctx context.Context, bucket string, cfg *s3types.NotificationConfiguration) error {
	_, err := s.api.PutBucketNotificationConfiguration(ctx, &s3v2.PutBucketNotificationConfigurationInput{
		Bucket:                    awsv2.String(bucket),
		NotificationConfiguration: cfg,
	})
	if err != nil {
		return fmt.Errorf("PutBucketNotificationConfiguration %s: %w", bucket, err)
	}
	log.Infof("applied notification configuration to bucket %s", bucket)
	return nil
}
