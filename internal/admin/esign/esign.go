// Copyright 2026 CareConnect Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package esign

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/retry"
)

// Config holds the signing-provider connection settings.
type Config struct {
	BaseUrl       string `mapstructure:"baseUrl"`
	ApiKey        string `mapstructure:"apiKey"`
	WebhookSecret string `mapstructure:"webhookSecret"`
	// Timeout in seconds for provider API calls.
	Timeout    int `mapstructure:"timeout"`
	RetryCount int `mapstructure:"retryCount"`
}

// Submission is the provider's view of one signing request.
type Submission struct {
	Id          string     `json:"id"`
	TemplateId  string     `json:"template_id"`
	Status      string     `json:"status"`
	SignerEmail string     `json:"signer_email"`
	SignerName  string     `json:"signer_name"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	DocumentUrl string     `json:"document_url"`
	AuditLogUrl string     `json:"audit_log_url"`
}

type CreateSubmissionReq struct {
	TemplateId  string `json:"template_id"`
	SignerEmail string `json:"signer_email"`
	SignerName  string `json:"signer_name"`
	SendEmail   bool   `json:"send_email"`
}

type ISignProvider interface {
	CreateSubmission(ctx context.Context, req *CreateSubmissionReq) (*Submission, error)
	GetSubmission(ctx context.Context, submissionId string) (*Submission, error)
	VoidSubmission(ctx context.Context, submissionId string) error
	VerifyWebhookSignature(body []byte, signature string) bool
}

type Client struct {
	conf   Config
	client *resty.Client
}

func NewClient(conf Config) *Client {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 15
	}
	c := resty.New().
		SetBaseURL(conf.BaseUrl).
		SetTimeout(time.Duration(timeout) * time.Second).
		SetHeader("X-Auth-Token", conf.ApiKey).
		SetHeader("Content-Type", "application/json")

	return &Client{conf: conf, client: c}
}

// providerError is a non-2xx provider response. 4xx responses are
// terminal and must not be retried.
type providerError struct {
	op   string
	code int
	body string
}

func (e *providerError) Error() string {
	return fmt.Sprintf("%s: provider returned %d: %s", e.op, e.code, e.body)
}

// do retries transient transport failures with exponential backoff.
func (c *Client) do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := c.conf.RetryCount + 1
	if attempts < 1 {
		attempts = 1
	}
	return retry.Do(ctx, fn,
		retry.WithMaxAttempts(attempts),
		retry.WithBackoff(retry.Exponential(500*time.Millisecond, 10*time.Second)),
		retry.WithJitter(retry.FullJitter),
		retry.WithRetryIf(func(err error) bool {
			var pe *providerError
			if errors.As(err, &pe) && pe.code < 500 {
				return false
			}
			return retry.IsRetryableError(err)
		}),
	)
}

func (c *Client) CreateSubmission(ctx context.Context, req *CreateSubmissionReq) (*Submission, error) {
	var sub Submission
	err := c.do(ctx, func(ctx context.Context) error {
		resp, err := c.client.R().
			SetContext(ctx).
			SetBody(req).
			SetResult(&sub).
			Post("/submissions")
		if err != nil {
			return errors.Wrap(err, "create submission request failed")
		}
		if resp.IsError() {
			return &providerError{op: "create submission", code: resp.StatusCode(), body: resp.String()}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debugw("submission created", "submissionId", sub.Id, "templateId", req.TemplateId, "signer", req.SignerEmail)
	return &sub, nil
}

func (c *Client) GetSubmission(ctx context.Context, submissionId string) (*Submission, error) {
	var sub Submission
	err := c.do(ctx, func(ctx context.Context) error {
		resp, err := c.client.R().
			SetContext(ctx).
			SetResult(&sub).
			Get(fmt.Sprintf("/submissions/%s", submissionId))
		if err != nil {
			return errors.Wrap(err, "get submission request failed")
		}
		if resp.IsError() {
			return &providerError{op: "get submission " + submissionId, code: resp.StatusCode(), body: resp.String()}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) VoidSubmission(ctx context.Context, submissionId string) error {
	return c.do(ctx, func(ctx context.Context) error {
		resp, err := c.client.R().
			SetContext(ctx).
			Delete(fmt.Sprintf("/submissions/%s", submissionId))
		if err != nil {
			return errors.Wrap(err, "void submission request failed")
		}
		if resp.IsError() {
			return &providerError{op: "void submission " + submissionId, code: resp.StatusCode(), body: resp.String()}
		}
		return nil
	})
}

// VerifyWebhookSignature checks the HMAC-SHA256 hex signature the provider
// attaches to webhook callbacks. An empty configured secret disables the
// check.
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	if c.conf.WebhookSecret == "" {
		return true
	}
	mac := hmac.New(sha256.New, []byte(c.conf.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
