// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestIsAPIErrorCode(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "NoSuchEntity", Message: "nope"}

	assert.True(t, isAPIErrorCode(apiErr, "NoSuchEntity"))
	assert.True(t, isAPIErrorCode(apiErr, "Other", "NoSuchEntity"))
	assert.False(t, isAPIErrorCode(apiErr, "ResourceNotFoundException"))
	assert.False(t, isAPIErrorCode(nil, "NoSuchEntity"))
	assert.False(t, isAPIErrorCode(errors.New("plain"), "NoSuchEntity"))

	// Wrapped API errors still match.
	wrapped := fmt.Errorf("GetRole: %w", apiErr)
	assert.True(t, isAPIErrorCode(wrapped, "NoSuchEntity"))
}

func TestIsRoleAssumeError(t *testing.T) {
	assume := &smithy.GenericAPIError{
		Code:    "InvalidParameterValueException",
		Message: "The role defined for the function cannot be assumed by Lambda.",
	}
	assert.True(t, isRoleAssumeError(assume))

	other := &smithy.GenericAPIError{
		Code:    "InvalidParameterValueException",
		Message: "Unsupported memory size",
	}
	assert.False(t, isRoleAssumeError(other))
}
