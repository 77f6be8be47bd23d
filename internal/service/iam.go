// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"

	"github.com/lamsh/lamsh/internal/log"
)

// lambdaTrustPolicy lets the Lambda service assume the execution role.
const lambdaTrustPolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"Service":"lambda.amazonaws.com"},"Action":"sts:AssumeRole"}]}`

// managedPolicyPrefix expands short policy names into AWS-managed policy ARNs.
const managedPolicyPrefix = "arn:aws:iam::aws:policy/"

// IAMAPI is the subset of the IAM client used by RoleService.
type IAMAPI interface {
	GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
	CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
	AttachRolePolicy(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error)
	ListAttachedRolePolicies(ctx context.Context, params *iam.ListAttachedRolePoliciesInput, optFns ...func(*iam.Options)) (*iam.ListAttachedRolePoliciesOutput, error)
	DetachRolePolicy(ctx context.Context, params *iam.DetachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DetachRolePolicyOutput, error)
	DeleteRole(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error)
}

// RoleService manages the function's execution role.
type RoleService struct {
	api IAMAPI
}

// NewRoleService constructs a RoleService over the given IAM client.
func NewRoleService(api IAMAPI) *RoleService {
	return &RoleService{api: api}
}

// PolicyARN expands a managed policy short name to its ARN. Values that are
// already ARNs pass through unchanged.
func PolicyARN(policy string) string {
	if strings.HasPrefix(policy, "arn:") {
		return policy
	}
	return managedPolicyPrefix + policy
}

// Lookup fetches the role. Returns nil, nil when the role does not exist.
func (s *RoleService) Lookup(ctx context.Context, name string) (*iamtypes.Role, error) {
	out, err := s.api.GetRole(ctx, &iam.GetRoleInput{RoleName: awsv2.String(name)})
	if err != nil {
		if isAPIErrorCode(err, "NoSuchEntity", "NoSuchEntityException") {
			return nil, nil
		}
		return nil, fmt.Errorf("GetRole %s: %w", name, err)
	}
	return out.Role, nil
}

// Ensure returns the role's ARN, creating the role with the Lambda trust
// policy and attaching policyARN when it does not exist yet. The returned
// created flag tells the caller whether propagation lag must be tolerated
// before the role is usable.
func (s *RoleService) Ensure(ctx context.Context, name, policyARN string) (arn string, created bool, err error) {
	role, err := s.Lookup(ctx, name)
	if err != nil {
		return "", false, err
	}
	if role != nil {
		log.Debugf("role %s exists: arn=%s", name, awsv2.ToString(role.Arn))
		return awsv2.ToString(role.Arn), false, nil
	}

	out, err := s.api.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 awsv2.String(name),
		AssumeRolePolicyDocument: awsv2.String(lambdaTrustPolicy),
	})
	if err != nil {
		// Lost a race with a concurrent deploy; fall back to the lookup.
		if isAPIErrorCode(err, "EntityAlreadyExists", "EntityAlreadyExistsException") {
			if role, lerr := s.Lookup(ctx, name); lerr == nil && role != nil {
				return awsv2.ToString(role.Arn), false, nil
			}
		}
		return "", false, fmt.Errorf("CreateRole %s: %w", name, err)
	}

	if _, err := s.api.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
		RoleName:  awsv2.String(name),
		PolicyArn: awsv2.String(policyARN),
	}); err != nil {
		return "", false, fmt.Errorf("AttachRolePolicy %s to %s: %w", policyARN, name, err)
	}

	log.Infof("created role %s with policy %s", name, policyARN)
	return awsv2.ToString(out.Role.Arn), true, nil
}

// Teardown detaches every attached policy and deletes the role. Returns
// found=false without error when the role does not exist, so destroy can
// warn and continue.
func (s *RoleService) Teardown(ctx context.Context, name string) (found bool, err error) {
	role, err := s.Lookup(ctx, name)
	if err != nil {
		return false, err
	}
	if role == nil {
		return false, nil
	}

	attached, err := s.api.ListAttachedRolePolicies(ctx, &iam.ListAttachedRolePoliciesInput{
		RoleName: awsv2.String(name),
	})
	if err != nil {
		return true, fmt.Errorf("ListAttachedRolePolicies %s: %w", name, err)
	}

	for _, p := range attached.AttachedPolicies {
		if _, err := s.api.DetachRolePolicy(ctx, &iam.DetachRolePolicyInput{
			RoleName:  awsv2.String(name),
			PolicyArn: p.PolicyArn,
		}); err != nil && !isAPIErrorCode(err, "NoSuchEntity", "NoSuchEntityException") {
			return true, fmt.Errorf("DetachRolePolicy %s from %s: %w", awsv2.ToString(p.PolicyArn), name, err)
		}
		log.Debugf("detached policy %s from %s", awsv2.ToString(p.PolicyArn), name)
	}

	if _, err := s.api.DeleteRole(ctx, &iam.DeleteRoleInput{RoleName: awsv2.String(name)}); err != nil {
		if isAPIErrorCode(err, "NoSuchEntity", "NoSuchEntityException") {
			return false, nil
		}
		return true, fmt.Errorf("DeleteRole %s: %w", name, err)
	}

	log.Infof("deleted role %s", name)
	return true, nil
}
