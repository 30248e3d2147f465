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
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/id"
	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/storage"
)

const maxUploadSize = 20 << 20 // 20 MB

// allowedContentTypes is the upload MIME allow-list.
var allowedContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"application/vnd.ms-powerpoint":                                     {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
	"video/mp4":  {},
	"text/plain": {},
}

type ResourceService struct {
	ctx      *ctx.Context
	repos    *repo.Repositories
	store    storage.Provider
	notifier realtime.Notifier
}

func NewResourceService(
	appCtx *ctx.Context,
	repos *repo.Repositories,
	store storage.Provider,
	notifier realtime.Notifier,
) *ResourceService {
	return &ResourceService{
		ctx:      appCtx,
		repos:    repos,
		store:    store,
		notifier: notifier,
	}
}

// UploadFile stores a file resource. Uploads are capped at 20 MB and
// restricted to the content type allow-list.
func (rs *ResourceService) UploadFile(
	file *multipart.FileHeader,
	title, description, category, tags, uploadedBy string,
) (*model.Resource, error) {
	if file == nil || title == "" {
		return nil, errors.New(http.BadRequest.Msg)
	}
	if file.Size > maxUploadSize {
		return nil, errors.New(http.FileTooLarge.Msg)
	}

	contentType := normalizeContentType(file.Header.Get("Content-Type"))
	if _, ok := allowedContentTypes[contentType]; !ok {
		return nil, errors.New(http.UnsupportedFileType.Msg)
	}

	resourceId := id.GetUUIDWithoutDashes()
	objectName := "resources/" + resourceId + strings.ToLower(filepath.Ext(file.Filename))
	fileUrl, err := rs.store.PutObject(rs.ctx, objectName, file, contentType)
	if err != nil {
		log.Errorw("failed to store resource file", "objectName", objectName, "error", err)
		return nil, err
	}

	r := &model.Resource{
		ResourceId:  resourceId,
		Title:       title,
		Description: description,
		Category:    category,
		Tags:        tags,
		Kind:        model.ResourceKindFile,
		FileUrl:     fileUrl,
		FileName:    file.Filename,
		ContentType: contentType,
		FileSize:    file.Size,
		UploadedBy:  uploadedBy,
	}
	if err := rs.repos.Resource.AddResource(r); err != nil {
		if delErr := rs.store.Delete(rs.ctx, objectName); delErr != nil {
			log.Errorw("failed to clean up orphaned object", "objectName", objectName, "error", delErr)
		}
		return nil, err
	}

	rs.notifier.Publish(consts.CollectionResources)
	return r, nil
}

// AddLink stores an external link resource.
func (rs *ResourceService) AddLink(req *model.AddLinkResourceReq, uploadedBy string) (*model.Resource, error) {
	if req.Title == "" || req.LinkUrl == "" {
		return nil, errors.New(http.BadRequest.Msg)
	}
	if !strings.HasPrefix(req.LinkUrl, "http://") && !strings.HasPrefix(req.LinkUrl, "https://") {
		return nil, errors.New("link must be an http or https URL")
	}

	r := &model.Resource{
		ResourceId:  id.GetUUIDWithoutDashes(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Kind:        model.ResourceKindLink,
		LinkUrl:     req.LinkUrl,
		UploadedBy:  uploadedBy,
	}
	if err := rs.repos.Resource.AddResource(r); err != nil {
		return nil, err
	}

	rs.notifier.Publish(consts.CollectionResources)
	return r, nil
}

func (rs *ResourceService) GetResource(resourceId string) (*model.Resource, error) {
	r, err := rs.repos.Resource.GetResource(resourceId)
	if err != nil {
		return nil, errors.New(http.ResourceNotExist.Msg)
	}
	return r, nil
}

func (rs *ResourceService) ListResources(category string, offset, pageSize int) ([]model.Resource, int64, error) {
	return rs.repos.Resource.ListResources(category, offset, pageSize)
}

func (rs *ResourceService) UpdateResource(resourceId string, r *model.Resource) error {
	if _, err := rs.repos.Resource.GetResource(resourceId); err != nil {
		return errors.New(http.ResourceNotExist.Msg)
	}
	if err := rs.repos.Resource.UpdateResource(resourceId, r); err != nil {
		return err
	}
	rs.notifier.Publish(consts.CollectionResources)
	return nil
}

// Download resolves the resource URL and bumps its download counter.
func (rs *ResourceService) Download(resourceId string) (string, error) {
	r, err := rs.repos.Resource.GetResource(resourceId)
	if err != nil {
		return "", errors.New(http.ResourceNotExist.Msg)
	}
	if err := rs.repos.Resource.IncrementDownloadCount(resourceId); err != nil {
		log.Errorw("failed to increment download count", "resourceId", resourceId, "error", err)
	}
	if r.Kind == model.ResourceKindLink {
		return r.LinkUrl, nil
	}
	return r.FileUrl, nil
}

func (rs *ResourceService) DeleteResource(resourceId string) error {
	r, err := rs.repos.Resource.GetResource(resourceId)
	if err != nil {
		return errors.New(http.ResourceNotExist.Msg)
	}
	if r.Kind == model.ResourceKindFile && r.FileUrl != "" {
		objectName := "resources/" + r.ResourceId + strings.ToLower(filepath.Ext(r.FileName))
		if err := rs.store.Delete(rs.ctx, objectName); err != nil {
			log.Errorw("failed to delete resource object", "resourceId", resourceId, "error", err)
		}
	}
	if err := rs.repos.Resource.DeleteResource(resourceId); err != nil {
		return err
	}
	rs.notifier.Publish(consts.CollectionResources)
	return nil
}

func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
