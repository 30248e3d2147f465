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

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", normalizeContentType("application/pdf"))
	assert.Equal(t, "application/pdf", normalizeContentType("Application/PDF"))
	assert.Equal(t, "text/plain", normalizeContentType("text/plain; charset=utf-8"))
	assert.Equal(t, "image/png", normalizeContentType(" image/png "))
	assert.Equal(t, "", normalizeContentType(""))
}

func TestAllowedContentTypes(t *testing.T) {
	for _, ct := range []string{"application/pdf", "image/png", "video/mp4", "text/plain"} {
		_, ok := allowedContentTypes[ct]
		assert.True(t, ok, ct)
	}
	for _, ct := range []string{"application/x-msdownload", "text/html", "application/octet-stream"} {
		_, ok := allowedContentTypes[ct]
		assert.False(t, ok, ct)
	}
}
