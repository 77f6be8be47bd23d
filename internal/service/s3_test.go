// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package service

import (
	"context"
	"errors"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamsh/lamsh/internal/notification"
)

type fakeS3 struct {
	puts []s3v2.PutBucketNotificationConfigurationInput
	err  error
}

func (f *fakeS3) PutBucketNotificationConfiguration(_ context.Context, params *s3v2.PutBucketNotificationConfigurationInput, _ ...func(*s3v2.Options)) (*s3v2.PutBucketNotificationConfigurationOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, *params)
	return &s3v2.PutBucketNotificationConfigurationOutput{}, nil
}

func TestApplyNotification(t *testing.T) {
	fake := &fakeS3{}
	svc := NewBucketService(fake)

	doc, err := notification.Load("")
	require.NoError(t, err)
	doc.Resolve("arn:aws:lambda:us-east-1:123456789012:function:foo")

	require.NoError(t, svc.ApplyNotification(context.Background(), "my-bucket", doc.ToS3()))
	require.Len(t, fake.puts, 1)
	put := fake.puts[0]
	assert.Equal(t, "my-bucket", awsv2.ToString(put.Bucket))
	require.Len(t, put.NotificationConfiguration.LambdaFunctionConfigurations, 1)
	assert.Equal(t,
		"arn:aws:lambda:us-east-1:123456789012:function:foo",
		awsv2.ToString(put.NotificationConfiguration.LambdaFunctionConfigurations[0].LambdaFunctionArn))
}

func TestApplyNotificationError(t *testing.T) {
	svc := NewBucketService(&fakeS3{err: errors.New("denied")})

	doc, err := notification.Load("")
	require.NoError(t, err)

	err = svc.ApplyNotification(context.Background(), "my-bucket", doc.ToS3())
	assert.ErrorContains(t, err, "my-bucket")
}
