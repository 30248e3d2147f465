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

package storage

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	ProviderMinio = "minio"
	ProviderS3    = "s3"
)

// Storage holds blob storage configuration.
type Storage struct {
	Provider  string
	AccessKey string
	SecretKey string
	Endpoint  string
	Bucket    string
	Region    string
	UseTLS    bool
	BasePath  string
	// PublicBaseURL overrides the URL prefix returned for stored objects.
	// When empty the endpoint/bucket pair is used.
	PublicBaseURL string `mapstructure:"publicBaseUrl"`
}

// NewStorage creates a storage provider from configuration.
func NewStorage(s *Storage) (Provider, error) {
	switch s.Provider {
	case ProviderMinio:
		return newMinio(s)
	case ProviderS3:
		return newS3(s)
	default:
		return nil, errors.Errorf("unsupported storage provider: %s", s.Provider)
	}
}

func getFullPath(basePath, objectName string) string {
	if basePath == "" {
		return objectName
	}
	return strings.TrimSuffix(basePath, "/") + "/" + strings.TrimPrefix(objectName, "/")
}

func (s *Storage) publicURL(objectName string) string {
	fullPath := getFullPath(s.BasePath, objectName)
	if s.PublicBaseURL != "" {
		return strings.TrimSuffix(s.PublicBaseURL, "/") + "/" + fullPath
	}
	scheme := "http"
	if s.UseTLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.Endpoint, s.Bucket, fullPath)
}
