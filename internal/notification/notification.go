// Copyright (c) 2026 lamsh authors.
// SPDX-License-Identifier: Apache-2.0

package notification

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

//go:embed template.json
var defaultTemplate []byte

// KeyFilterRule narrows matching object keys by prefix or suffix.
type KeyFilterRule struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// KeyFilter holds the object-key rules of one configuration entry.
type KeyFilter struct {
	FilterRules []KeyFilterRule `json:"FilterRules"`
}

// Filter restricts which objects trigger the notification.
type Filter struct {
	Key *KeyFilter `json:"Key,omitempty"`
}

// LambdaConfiguration is one Lambda target entry in a bucket-notification
// document, in the same JSON shape the S3 API uses.
type LambdaConfiguration struct {
	ID                string   `json:"Id,omitempty"`
	LambdaFunctionArn string   `json:"LambdaFunctionArn"`
	Events            []string `json:"Events"`
	Filter            *Filter  `json:"Filter,omitempty"`
}

// Document is an S3 bucket-notification configuration restricted to Lambda
// targets. It is built fresh for every deploy and handed straight to the S3
// API; the source template is never modified.
type Document struct {
	LambdaFunctionConfigurations []LambdaConfiguration `json:"LambdaFunctionConfigurations"`
}

// Load parses a notification document from the file at path, or from the
// embedded default template when path is empty.
func Load(path string) (*Document, error) {
	raw := defaultTemplate
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading notification template: %w", err)
		}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing notification template: %w", err)
	}
	if len(doc.LambdaFunctionConfigurations) == 0 {
		return nil, fmt.Errorf("notification template has no LambdaFunctionConfigurations")
	}
	return &doc, nil
}

// Resolve substitutes the function ARN into every Lambda configuration entry.
func (d *Document) Resolve(functionARN string) {
	for i := range d.LambdaFunctionConfigurations {
		d.LambdaFunctionConfigurations[i].LambdaFunctionArn = functionARN
	}
}

// ToS3 converts the document to the SDK notification configuration type.
func (d *Document) ToS3() *s3types.NotificationConfiguration {
	confs := make([]s3types.LambdaFunctionConfiguration, 0, len(d.LambdaFunctionConfigurations))
	for _, c := range d.LambdaFunctionConfigurations {
		events := make([]s3types.Event, 0, len(c.Events))
		for _, e := range c.Events {
			events = append(events, s3types.Event(e))
		}
		conf := s3types.LambdaFunctionConfiguration{
			LambdaFunctionArn: awsv2.String(c.LambdaFunctionArn),
			Events:            events,
		}
		if c.ID != "" {
			conf.Id = awsv2.String(c.ID)
		}
		if c.Filter != nil && c.Filter.Key != nil {
			rules := make([]s3types.FilterRule, 0, len(c.Filter.Key.FilterRules))
			for _, r := range c.Filter.Key.FilterRules {
				rules = append(rules, s3types.FilterRule{
					Name:  s3types.FilterRuleName(r.Name),
					Value: awsv2.String(r.Value),
				})
			}
			conf.Filter = &s3types.NotificationConfigurationFilter{
				Key: &s3types.S3KeyFilter{FilterRules: rules},
			}
		}
		confs = append(confs, conf)
	}
	return &s3types.NotificationConfiguration{
		LambdaFunctionConfigurations: confs,
	}
}
