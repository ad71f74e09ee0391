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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		contentType string
		want        Kind
	}{
		{contentType: "application/pdf", want: KindPDF},
		{contentType: "Application/PDF; charset=binary", want: KindPDF},
		{contentType: "application/msword", want: KindDOC},
		{contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", want: KindDOCX},
		{contentType: "pdf", want: KindPDF},
		{contentType: ".docx", want: KindDOCX},
		{contentType: "DOC", want: KindDOC},
		{contentType: "image/png", want: KindUnknown},
		{contentType: "text/plain", want: KindUnknown},
		{contentType: "", want: KindUnknown},
	}
	for _, tc := range testCases {
		t.Run(tc.contentType, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.contentType))
		})
	}
}

func TestKindOfFilename(t *testing.T) {
	assert.Equal(t, KindPDF, KindOfFilename("我的简历.PDF"))
	assert.Equal(t, KindDOCX, KindOfFilename("cv.v2.docx"))
	assert.Equal(t, KindUnknown, KindOfFilename("cv"))
	assert.Equal(t, ".doc", KindDOC.Ext())
	assert.Equal(t, "", KindUnknown.Ext())
	assert.Equal(t, "application/pdf", KindPDF.MIME())
}

func TestRef_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		ref     Ref
		wantErr error
	}{
		{
			name: "合法的pdf",
			ref: Ref{
				Filename:    "cv.pdf",
				SizeBytes:   1024,
				ContentType: "application/pdf",
				StorageKey:  "resumes/1/a.pdf",
			},
		},
		{
			name: "刚好10MB",
			ref: Ref{
				Filename:    "cv.docx",
				SizeBytes:   MaxSizeBytes,
				ContentType: "docx",
				StorageKey:  "resumes/1/a.docx",
			},
		},
		{
			name: "超过10MB",
			ref: Ref{
				Filename:    "cv.pdf",
				SizeBytes:   MaxSizeBytes + 1,
				ContentType: "application/pdf",
				StorageKey:  "resumes/1/a.pdf",
			},
			wantErr: ErrAttachmentTooLarge,
		},
		{
			name: "图片",
			ref: Ref{
				Filename:    "cv.png",
				SizeBytes:   1024,
				ContentType: "image/png",
				StorageKey:  "resumes/1/a.png",
			},
			wantErr: ErrUnsupportedContentType,
		},
		{
			name: "空文件",
			ref: Ref{
				Filename:    "cv.pdf",
				ContentType: "application/pdf",
				StorageKey:  "resumes/1/a.pdf",
			},
			wantErr: ErrEmptyAttachment,
		},
		{
			name: "没有存储路径",
			ref: Ref{
				Filename:    "cv.pdf",
				SizeBytes:   10,
				ContentType: "application/pdf",
			},
			wantErr: ErrMissingStorageKey,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ref.Validate()
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, ErrInvalidAttachment)
			}
		})
	}
}
