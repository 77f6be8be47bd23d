// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"

	"github.com/aws/smithy-go"
)

// isAPIErrorCode reports whether err is an AWS API error with one of the
// given codes.
func isAPIErrorCode(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.ErrorCode() == code {
			return true
		}
	}
	return false
}
