// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package region

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lamsh/lamsh/internal/config"
)

// known is the commercial region table. Validation must happen before any
// remote call is made, so this is a built-in table rather than a live
// enumeration; additional names can be supplied via the regions.extra config
// key.
var known = map[string]struct{}{
	"af-south-1":     {},
	"ap-east-1":      {},
	"ap-northeast-1": {},
	"ap-northeast-2": {},
	"ap-northeast-3": {},
	"ap-south-1":     {},
	"ap-south-2":     {},
	"ap-southeast-1": {},
	"ap-southeast-2": {},
	"ap-southeast-3": {},
	"ap-southeast-4": {},
	"ca-central-1":   {},
	"ca-west-1":      {},
	"eu-central-1":   {},
	"eu-central-2":   {},
	"eu-north-1":     {},
	"eu-south-1":     {},
	"eu-south-2":     {},
	"eu-west-1":      {},
	"eu-west-2":      {},
	"eu-west-3":      {},
	"il-central-1":   {},
	"me-central-1":   {},
	"me-south-1":     {},
	"sa-east-1":      {},
	"us-east-1":      {},
	"us-east-2":      {},
	"us-west-1":      {},
	"us-west-2":      {},
}

// Resolve picks the effective region: the explicit flag value, then the
// AWS_REGION / AWS_DEFAULT_REGION environment variables, then the region
// config key. An empty result is an error; validation happens separately.
func Resolve(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if r := os.Getenv("AWS_REGION"); r != "" {
		return r, nil
	}
	if r := os.Getenv("AWS_DEFAULT_REGION"); r != "" {
		return r, nil
	}
	if r, err := config.GetString("region", ""); err == nil && r != "" {
		return r, nil
	}
	return "", fmt.Errorf("no region given and neither AWS_REGION nor AWS_DEFAULT_REGION is set")
}

// Validate rejects any region name not present in the known table or in the
// regions.extra config list.
func Validate(region string) error {
	if _, ok := known[region]; ok {
		return nil
	}
	extra, _ := config.GetStringSlice("regions.extra", nil)
	for _, r := range extra {
		if r == region {
			return nil
		}
	}
	return fmt.Errorf("unknown region %q, known regions: %s", region, strings.Join(All(), " "))
}

// All returns the built-in region names, sorted.
func All() []string {
	regions := make([]string, 0, len(known))
	for r := range known {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}
