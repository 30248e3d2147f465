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
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	c := NewClient(Config{WebhookSecret: "topsecret"})
	body := []byte(`{"event_type":"form.viewed"}`)

	assert.True(t, c.VerifyWebhookSignature(body, sign("topsecret", body)))
	assert.False(t, c.VerifyWebhookSignature(body, sign("wrong", body)))
	assert.False(t, c.VerifyWebhookSignature(body, ""))
	assert.False(t, c.VerifyWebhookSignature([]byte("tampered"), sign("topsecret", body)))
}

func TestVerifyWebhookSignatureNoSecret(t *testing.T) {
	c := NewClient(Config{})

	assert.True(t, c.VerifyWebhookSignature([]byte("anything"), "whatever"))
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{BaseUrl: "https://esign.example"})

	assert.NotNil(t, c.client)
}
