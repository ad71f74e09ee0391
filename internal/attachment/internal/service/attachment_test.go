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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/hirehub/internal/attachment/internal/domain"
	"github.com/ecodeclub/hirehub/internal/attachment/internal/storage"
	storagemocks "github.com/ecodeclub/hirehub/internal/attachment/internal/storage/mocks"
	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAttachmentService_Upload(t *testing.T) {
	candidate := identity.Actor{ID: 7, Role: identity.RoleCandidate}
	now := time.UnixMilli(1700000000000)
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) storage.Storage
		actor   identity.Actor
		file    domain.FileMeta
		content string
		wantRef domain.Ref
		wantErr error
	}{
		{
			name: "上传pdf成功",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				st := storagemocks.NewMockStorage(ctrl)
				st.EXPECT().Put(gomock.Any(), "resumes/7/key-1.pdf", gomock.Any(), int64(8), "application/pdf").Return(nil)
				return st
			},
			actor:   candidate,
			file:    domain.FileMeta{Filename: "cv.pdf", SizeBytes: 8, ContentType: "application/pdf"},
			content: "%PDF-1.7",
			wantRef: domain.Ref{
				Filename:    "cv.pdf",
				SizeBytes:   8,
				ContentType: "application/pdf",
				StorageKey:  "resumes/7/key-1.pdf",
				UploadedAt:  now.UnixMilli(),
			},
		},
		{
			name: "octet-stream 根据文件名推断",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				st := storagemocks.NewMockStorage(ctrl)
				st.EXPECT().Put(gomock.Any(), "resumes/7/key-1.docx", gomock.Any(), int64(4),
					"application/vnd.openxmlformats-officedocument.wordprocessingml.document").Return(nil)
				return st
			},
			actor:   candidate,
			file:    domain.FileMeta{Filename: "cv.docx", SizeBytes: 4, ContentType: "application/octet-stream"},
			content: "PK..",
			wantRef: domain.Ref{
				Filename:    "cv.docx",
				SizeBytes:   4,
				ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				StorageKey:  "resumes/7/key-1.docx",
				UploadedAt:  now.UnixMilli(),
			},
		},
		{
			name: "不支持的类型不会写存储",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				return storagemocks.NewMockStorage(ctrl)
			},
			actor:   candidate,
			file:    domain.FileMeta{Filename: "cv.png", SizeBytes: 4, ContentType: "image/png"},
			content: "abcd",
			wantErr: domain.ErrUnsupportedContentType,
		},
		{
			name: "超过大小不会写存储",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				return storagemocks.NewMockStorage(ctrl)
			},
			actor:   candidate,
			file:    domain.FileMeta{Filename: "cv.pdf", SizeBytes: domain.MaxSizeBytes + 1, ContentType: "application/pdf"},
			wantErr: domain.ErrAttachmentTooLarge,
		},
		{
			name: "未知角色",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				return storagemocks.NewMockStorage(ctrl)
			},
			actor:   identity.Actor{ID: 7},
			file:    domain.FileMeta{Filename: "cv.pdf", SizeBytes: 8, ContentType: "application/pdf"},
			wantErr: ErrUnauthorized,
		},
		{
			name: "存储失败",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				st := storagemocks.NewMockStorage(ctrl)
				st.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("mock db error"))
				return st
			},
			actor:   candidate,
			file:    domain.FileMeta{Filename: "cv.doc", SizeBytes: 3, ContentType: "application/msword"},
			content: "doc",
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl)).(*attachmentService)
			svc.keyFunc = func() string { return "key-1" }
			svc.nowFunc = func() time.Time { return now }
			ref, err := svc.Upload(context.Background(), tc.actor, tc.file, strings.NewReader(tc.content))
			if tc.wantErr != nil {
				if errors.Is(tc.wantErr, domain.ErrInvalidAttachment) || errors.Is(tc.wantErr, ErrUnauthorized) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.Equal(t, tc.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRef, ref)
			assert.NoError(t, ref.Validate())
		})
	}
}

func TestAttachmentService_DownloadURL(t *testing.T) {
	st := storage.NewMemoryStorage()
	ctx := context.Background()
	require.NoError(t, st.Put(ctx, "resumes/7/a.pdf", strings.NewReader("%PDF"), 4, "application/pdf"))
	svc := NewService(st)

	testCases := []struct {
		name    string
		actor   identity.Actor
		key     string
		wantErr error
	}{
		{
			name:  "候选人下载自己的简历",
			actor: identity.Actor{ID: 7, Role: identity.RoleCandidate},
			key:   "resumes/7/a.pdf",
		},
		{
			name:    "候选人下载别人的简历",
			actor:   identity.Actor{ID: 8, Role: identity.RoleCandidate},
			key:     "resumes/7/a.pdf",
			wantErr: ErrUnauthorized,
		},
		{
			name:  "招聘者可以下载",
			actor: identity.Actor{ID: 100, Role: identity.RoleRecruiter},
			key:   "resumes/7/a.pdf",
		},
		{
			name:    "文件不存在",
			actor:   identity.Actor{ID: 1, Role: identity.RoleAdmin},
			key:     "resumes/7/none.pdf",
			wantErr: ErrObjectNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := svc.DownloadURL(ctx, tc.actor, tc.key)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Contains(t, u, tc.key)
			}
		})
	}
}
