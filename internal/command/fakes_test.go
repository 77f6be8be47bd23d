// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/lamsh/lamsh/internal/names"
	"github.com/lamsh/lamsh/internal/service"
)

// fakeCloud is an in-memory stand-in for the four AWS services the command
// layer touches, tracking just enough state for the lifecycle tests.
type fakeCloud struct {
	roles     map[string]bool
	attached  map[string][]string
	functions map[string][]byte

	createFunctionCalls int
	updateCodeCalls     int

	permissions []lambda.AddPermissionInput
	mappings    []lambda.CreateEventSourceMappingInput
	puts        []s3v2.PutBucketNotificationConfigurationInput
}

func newFakeCloud() *fakeCloud {
	return &fakeCloud{
		roles:     map[string]bool{},
		attached:  map[string][]string{},
		functions: map[string][]byte{},
	}
}

func notFound(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: "not found"}
}

// IAMAPI

func (f *fakeCloud) GetRole(_ context.Context, params *iam.GetRoleInput, _ ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	name := awsv2.ToString(params.RoleName)
	if !f.roles[name] {
		return nil, notFound("NoSuchEntity")
	}
	return &iam.GetRoleOutput{Role: &iamtypes.Role{
		RoleName: params.RoleName,
		Arn:      awsv2.String("arn:aws:iam::123456789012:role/" + name),
	}}, nil
}

func (f *fakeCloud) CreateRole(_ context.Context, params *iam.CreateRoleInput, _ ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
	name := awsv2.ToString(params.RoleName)
	f.roles[name] = true
	return &iam.CreateRoleOutput{Role: &iamtypes.Role{
		RoleName: params.RoleName,
		Arn:      awsv2.String("arn:aws:iam::123456789012:role/" + name),
	}}, nil
}

func (f *fakeCloud) AttachRolePolicy(_ context.Context, params *iam.AttachRolePolicyInput, _ ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error) {
	name := awsv2.ToString(params.RoleName)
	f.attached[name] = append(f.attached[name], awsv2.ToString(params.PolicyArn))
	return &iam.AttachRolePolicyOutput{}, nil
}

func (f *fakeCloud) ListAttachedRolePolicies(_ context.Context, params *iam.ListAttachedRolePoliciesInput, _ ...func(*iam.Options)) (*iam.ListAttachedRolePoliciesOutput, error) {
	name := awsv2.ToString(params.RoleName)
	var policies []iamtypes.AttachedPolicy
	for _, arn := range f.attached[name] {
		policies = append(policies, iamtypes.AttachedPolicy{PolicyArn: awsv2.String(arn)})
	}
	return &iam.ListAttachedRolePoliciesOutput{AttachedPolicies: policies}, nil
}

func (f *fakeCloud) DetachRolePolicy(_ context.Context, params *iam.DetachRolePolicyInput, _ ...func(*iam.Options)) (*iam.DetachRolePolicyOutput, error) {
	name := awsv2.ToString(params.RoleName)
	f.attached[name] = nil
	return &iam.DetachRolePolicyOutput{}, nil
}

func (f *fakeCloud) DeleteRole(_ context.Context, params *iam.DeleteRoleInput, _ ...func(*iam.Options)) (*iam.DeleteRoleOutput, error) {
	name := awsv2.ToString(params.RoleName)
	if !f.roles[name] {
		return nil, notFound("NoSuchEntity")
	}
	delete(f.roles, name)
	return &iam.DeleteRoleOutput{}, nil
}

// LambdaAPI

func (f *fakeCloud) GetFunction(_ context.Context, params *lambda.GetFunctionInput, _ ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
	name := awsv2.ToString(params.FunctionName)
	if _, ok := f.functions[name]; !ok {
		return nil, notFound("ResourceNotFoundException")
	}
	return &lambda.GetFunctionOutput{Configuration: &lambdatypes.FunctionConfiguration{
		FunctionName: params.FunctionName,
		FunctionArn:  awsv2.String("arn:aws:lambda:us-east-1:123456789012:function:" + name),
	}}, nil
}

func (f *fakeCloud) CreateFunction(_ context.Context, params *lambda.CreateFunctionInput, _ ...func(*lambda.Options)) (*lambda.CreateFunctionOutput, error) {
	f.createFunctionCalls++
	name := awsv2.ToString(params.FunctionName)
	f.functions[name] = params.Code.ZipFile
	return &lambda.CreateFunctionOutput{
		FunctionArn: awsv2.String("arn:aws:lambda:us-east-1:123456789012:function:" + name),
	}, nil
}

func (f *fakeCloud) UpdateFunctionCode(_ context.Context, params *lambda.UpdateFunctionCodeInput, _ ...func(*lambda.Options)) (*lambda.UpdateFunctionCodeOutput, error) {
	f.updateCodeCalls++
	name := awsv2.ToString(params.FunctionName)
	if _, ok := f.functions[name]; !ok {
		return nil, notFound("ResourceNotFoundException")
	}
	f.functions[name] = params.ZipFile
	return &lambda.UpdateFunctionCodeOutput{}, nil
}

func (f *fakeCloud) DeleteFunction(_ context.Context, params *lambda.DeleteFunctionInput, _ ...func(*lambda.Options)) (*lambda.DeleteFunctionOutput, error) {
	name := awsv2.ToString(params.FunctionName)
	if _, ok := f.functions[name]; !ok {
		return nil, notFound("ResourceNotFoundException")
	}
	delete(f.functions, name)
	return &lambda.DeleteFunctionOutput{}, nil
}

func (f *fakeCloud) Invoke(_ context.Context, params *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	name := awsv2.ToString(params.FunctionName)
	if _, ok := f.functions[name]; !ok {
		return nil, notFound("ResourceNotFoundException")
	}
	return &lambda.InvokeOutput{
		StatusCode: 200,
		LogResult:  awsv2.String("aGVsbG8K"), // "hello\n"
	}, nil
}

func (f *fakeCloud) AddPermission(_ context.Context, params *lambda.AddPermissionInput, _ ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error) {
	f.permissions = append(f.permissions, *params)
	return &lambda.AddPermissionOutput{}, nil
}

func (f *fakeCloud) CreateEventSourceMapping(_ context.Context, params *lambda.CreateEventSourceMappingInput, _ ...func(*lambda.Options)) (*lambda.CreateEventSourceMappingOutput, error) {
	f.mappings = append(f.mappings, *params)
	return &lambda.CreateEventSourceMappingOutput{UUID: awsv2.String("uuid-1")}, nil
}

// LogsAPI

func (f *fakeCloud) FilterLogEvents(_ context.Context, _ *cw.FilterLogEventsInput, _ ...func(*cw.Options)) (*cw.FilterLogEventsOutput, error) {
	return &cw.FilterLogEventsOutput{}, nil
}

// S3API

func (f *fakeCloud) PutBucketNotificationConfiguration(_ context.Context, params *s3v2.PutBucketNotificationConfigurationInput, _ ...func(*s3v2.Options)) (*s3v2.PutBucketNotificationConfigurationOutput, error) {
	f.puts = append(f.puts, *params)
	return &s3v2.PutBucketNotificationConfigurationOutput{}, nil
}

// fakeServices wires a fakeCloud into the command-layer service bundle.
func fakeServices(fake *fakeCloud, script string) *services {
	return &services{
		names:     names.Derive(script),
		region:    "us-east-1",
		settings:  loadSettings("us-east-1"),
		roles:     service.NewRoleService(fake),
		functions: service.NewFunctionService(fake),
		logs:      service.NewLogService(fake),
		buckets:   service.NewBucketService(fake),
	}
}
