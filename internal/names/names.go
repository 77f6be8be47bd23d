// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"os"
	"path/filepath"
	"strings"
)

// RoleSuffix is appended to the function name to form the execution role name.
const RoleSuffix = "_lambdarole"

// Names holds every identifier derived from a script path. All fields are
// deterministic pure functions of the script's base filename, so repeated
// invocations against the same script always target the same remote
// resources.
type Names struct {
	// Script is the path as given on the command line.
	Script string
	// File is the script's base filename with extension (zip entry name).
	File string
	// Function is the base filename with path and extension stripped.
	Function string
	// Role is the derived execution role name.
	Role string
	// Handler is the handler string the runtime layer resolves.
	Handler string
	// LogGroup is the CloudWatch log group the function writes to.
	LogGroup string
}

// Derive computes all resource names for the given script path. It does not
// touch the filesystem; callers validate existence separately.
func Derive(script string) Names {
	file := filepath.Base(script)
	fn := strings.TrimSuffix(file, filepath.Ext(file))
	return Names{
		Script:   script,
		File:     file,
		Function: fn,
		Role:     fn + RoleSuffix,
		Handler:  fn + ".handler",
		LogGroup: "/aws/lambda/" + fn,
	}
}

// CheckScript verifies that the script path exists and is a regular file.
func CheckScript(script string) error {
	info, err := os.Stat(script)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.ErrInvalid
	}
	return nil
}
