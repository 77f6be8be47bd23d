// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/lamsh/lamsh/internal/log"
)

// LambdaAPI is the subset of the Lambda client used by FunctionService.
type LambdaAPI interface {
	GetFunction(ctx context.Context, params *lambda.GetFunctionInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error)
	CreateFunction(ctx context.Context, params *lambda.CreateFunctionInput, optFns ...func(*lambda.Options)) (*lambda.CreateFunctionOutput, error)
	UpdateFunctionCode(ctx context.Context, params *lambda.UpdateFunctionCodeInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionCodeOutput, error)
	DeleteFunction(ctx context.Context, params *lambda.DeleteFunctionInput, optFns ...func(*lambda.Options)) (*lambda.DeleteFunctionOutput, error)
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
	AddPermission(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error)
	CreateEventSourceMapping(ctx context.Context, params *lambda.CreateEventSourceMappingInput, optFns ...func(*lambda.Options)) (*lambda.CreateEventSourceMappingOutput, error)
}

// CreateParams carries everything needed to create a function.
type CreateParams struct {
	Name    string
	Handler string
	RoleARN string
	Zip     []byte
	Memory  int32
	Timeout int32
	// LayerARN references the custom runtime layer that executes the script.
	LayerARN string
	// FreshRole signals the role was created in this invocation; creation is
	// then retried across IAM propagation lag for up to PropagationWait.
	FreshRole       bool
	PropagationWait time.Duration
}

// FunctionService manages the Lambda function and its triggers.
type FunctionService struct {
	api LambdaAPI

	// retryInterval is the pause between creation attempts while IAM
	// propagation settles. Overridden in tests.
	retryInterval time.Duration
}

// NewFunctionService constructs a FunctionService over the given client.
func NewFunctionService(api LambdaAPI) *FunctionService {
	return &FunctionService{api: api, retryInterval: 2 * time.Second}
}

// Lookup fetches the function. Returns nil, nil when it does not exist.
func (s *FunctionService) Lookup(ctx context.Context, name string) (*lambda.GetFunctionOutput, error) {
	out, err := s.api.GetFunction(ctx, &lambda.GetFunctionInput{FunctionName: awsv2.String(name)})
	if err != nil {
		if isAPIErrorCode(err, "ResourceNotFoundException") {
			return nil, nil
		}
		return nil, fmt.Errorf("GetFunction %s: %w", name, err)
	}
	return out, nil
}

// Create creates the function with the custom runtime layer. When the
// execution role was created moments ago, IAM may not have propagated it yet
// and CreateFunction fails with InvalidParameterValueException ("cannot be
// assumed"); creation is retried until PropagationWait elapses. This
// tolerates propagation lag without assuming a constant delay.
func (s *FunctionService) Create(ctx context.Context, p CreateParams) (string, error) {
	input := &lambda.CreateFunctionInput{
		FunctionName: awsv2.String(p.Name),
		Role:         awsv2.String(p.RoleARN),
		Handler:      awsv2.String(p.Handler),
		Runtime:      lambdatypes.RuntimeProvidedal2,
		Code:         &lambdatypes.FunctionCode{ZipFile: p.Zip},
		MemorySize:   awsv2.Int32(p.Memory),
		Timeout:      awsv2.Int32(p.Timeout),
		Layers:       []string{p.LayerARN},
	}

	deadline := time.Now().Add(p.PropagationWait)
	for {
		out, err := s.api.CreateFunction(ctx, input)
		if err == nil {
			log.Infof("created function %s", p.Name)
			return awsv2.ToString(out.FunctionArn), nil
		}
		if !p.FreshRole || !isRoleAssumeError(err) || time.Now().After(deadline) {
			return "", fmt.Errorf("CreateFunction %s: %w", p.Name, err)
		}
		log.Debugf("role not assumable yet, retrying: err=%v", err)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.retryInterval):
		}
	}
}

// isRoleAssumeError matches the IAM propagation failure mode of
// CreateFunction.
func isRoleAssumeError(err error) bool {
	return isAPIErrorCode(err, "InvalidParameterValueException") &&
		strings.Contains(err.Error(), "assumed")
}

// UpdateCode replaces only the function's code. Configuration, role, and
// triggers are untouched.
func (s *FunctionService) UpdateCode(ctx context.Context, name string, zip []byte) error {
	_, err := s.api.UpdateFunctionCode(ctx, &lambda.UpdateFunctionCodeInput{
		FunctionName: awsv2.String(name),
		ZipFile:      zip,
	})
	if err != nil {
		return fmt.Errorf("UpdateFunctionCode %s: %w", name, err)
	}
	log.Infof("updated code for function %s", name)
	return nil
}

// Delete removes the function. Returns found=false without error when the
// function does not exist, so destroy can warn and continue.
func (s *FunctionService) Delete(ctx context.Context, name string) (found bool, err error) {
	_, err = s.api.DeleteFunction(ctx, &lambda.DeleteFunctionInput{FunctionName: awsv2.String(name)})
	if err != nil {
		if isAPIErrorCode(err, "ResourceNotFoundException") {
			return false, nil
		}
		return true, fmt.Errorf("DeleteFunction %s: %w", name, err)
	}
	log.Infof("deleted function %s", name)
	return true, nil
}

// Invoke runs the function synchronously with tail logging and returns the
// decoded log segment. The response payload is discarded.
func (s *FunctionService) Invoke(ctx context.Context, name string) (string, error) {
	out, err := s.api.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: awsv2.String(name),
		LogType:      lambdatypes.LogTypeTail,
	})
	if err != nil {
		return "", fmt.Errorf("Invoke %s: %w", name, err)
	}

	decoded, err := base64.StdEncoding.DecodeString(awsv2.ToString(out.LogResult))
	if err != nil {
		return "", fmt.Errorf("decoding log result for %s: %w", name, err)
	}
	return string(decoded), nil
}

// AllowBucket grants the S3 service permission to invoke the function for
// events from the given bucket.
func (s *FunctionService) AllowBucket(ctx context.Context, name, bucket string) error {
	_, err := s.api.AddPermission(ctx, &lambda.AddPermissionInput{
		FunctionName: awsv2.String(name),
		StatementId:  awsv2.String(fmt.Sprintf("s3-%s-invoke", bucket)),
		Action:       awsv2.String("lambda:InvokeFunction"),
		Principal:    awsv2.String("s3.amazonaws.com"),
		SourceArn:    awsv2.String("arn:aws:s3:::" + bucket),
	})
	// An identical grant from an earlier deploy is fine.
	if err != nil && !isAPIErrorCode(err, "ResourceConflictException") {
		return fmt.Errorf("AddPermission for bucket %s on %s: %w", bucket, name, err)
	}
	return nil
}

// MapEventSource creates an enabled event-source mapping from sourceARN to
// the function and returns the mapping UUID.
func (s *FunctionService) MapEventSource(ctx context.Context, name, sourceARN string) (string, error) {
	out, err := s.api.CreateEventSourceMapping(ctx, &lambda.CreateEventSourceMappingInput{
		FunctionName:   awsv2.String(name),
		EventSourceArn: awsv2.String(sourceARN),
		Enabled:        awsv2.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("CreateEventSourceMapping %s -> %s: %w", sourceARN, name, err)
	}
	log.Infof("created event source mapping %s", awsv2.ToString(out.UUID))
	return awsv2.ToString(out.UUID), nil
}
