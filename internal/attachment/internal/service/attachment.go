// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ecodeclub/hirehub/internal/attachment/internal/domain"
	"github.com/ecodeclub/hirehub/internal/attachment/internal/storage"
	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/google/uuid"
)

const downloadURLTTL = 15 * time.Minute

var (
	ErrUnauthorized   = errors.New("无权操作该附件")
	ErrObjectNotFound = storage.ErrObjectNotFound
)

//go:generate mockgen -source=./attachment.go -package=attmocks -destination=../../mocks/attachment.mock.go Service
type Service interface {
	// Upload 先校验元数据，通过之后才写存储
	Upload(ctx context.Context, actor identity.Actor, file domain.FileMeta, r io.Reader) (domain.Ref, error)
	// DownloadURL 生成一个短期有效的下载链接
	DownloadURL(ctx context.Context, actor identity.Actor, storageKey string) (string, error)
}

type attachmentService struct {
	storage storage.Storage
	keyFunc func() string
	nowFunc func() time.Time
}

func NewService(st storage.Storage) Service {
	return &attachmentService{
		storage: st,
		keyFunc: uuid.NewString,
		nowFunc: time.Now,
	}
}

func (s *attachmentService) Upload(ctx context.Context, actor identity.Actor, file domain.FileMeta, r io.Reader) (domain.Ref, error) {
	if !actor.Valid() {
		return domain.Ref{}, ErrUnauthorized
	}
	ref := domain.Ref{
		Filename:    file.Filename,
		SizeBytes:   file.SizeBytes,
		ContentType: file.ContentType,
	}
	// 浏览器经常给出 application/octet-stream，这时候退回到文件名判断
	if ref.Kind() == domain.KindUnknown {
		if k := domain.KindOfFilename(file.Filename); k != domain.KindUnknown {
			ref.ContentType = k.MIME()
		}
	}
	if err := ref.ValidateMeta(); err != nil {
		return domain.Ref{}, err
	}
	ref.StorageKey = s.storageKey(actor.ID, ref.Kind())
	err := s.storage.Put(ctx, ref.StorageKey, r, ref.SizeBytes, ref.Kind().MIME())
	if err != nil {
		return domain.Ref{}, err
	}
	ref.UploadedAt = s.nowFunc().UnixMilli()
	return ref, nil
}

func (s *attachmentService) storageKey(uid int64, kind domain.Kind) string {
	return fmt.Sprintf("%s%s%s", ownerPrefix(uid), s.keyFunc(), kind.Ext())
}

func ownerPrefix(uid int64) string {
	return fmt.Sprintf("resumes/%d/", uid)
}

func (s *attachmentService) DownloadURL(ctx context.Context, actor identity.Actor, storageKey string) (string, error) {
	if !actor.Valid() {
		return "", ErrUnauthorized
	}
	// 候选人只能看自己上传的简历
	if actor.IsCandidate() && !strings.HasPrefix(storageKey, ownerPrefix(actor.ID)) {
		return "", ErrUnauthorized
	}
	return s.storage.PresignGet(ctx, storageKey, downloadURLTTL)
}
