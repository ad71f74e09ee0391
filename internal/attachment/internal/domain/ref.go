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
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// MaxSizeBytes 简历大小上限 10 MiB
const MaxSizeBytes int64 = 10 << 20

var (
	ErrInvalidAttachment      = errors.New("附件不合法")
	ErrUnsupportedContentType = fmt.Errorf("%w: 只支持 pdf、doc、docx", ErrInvalidAttachment)
	ErrAttachmentTooLarge     = fmt.Errorf("%w: 文件不能超过 10MB", ErrInvalidAttachment)
	ErrEmptyAttachment        = fmt.Errorf("%w: 文件为空", ErrInvalidAttachment)
	ErrMissingStorageKey      = fmt.Errorf("%w: 缺少存储路径", ErrInvalidAttachment)
)

// Kind 简历文件类型
type Kind string

const (
	KindUnknown Kind = ""
	KindPDF     Kind = "pdf"
	KindDOC     Kind = "doc"
	KindDOCX    Kind = "docx"
)

var mimeKinds = map[string]Kind{
	"application/pdf":    KindPDF,
	"application/msword": KindDOC,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": KindDOCX,
}

var kindMimes = map[Kind]string{
	KindPDF:  "application/pdf",
	KindDOC:  "application/msword",
	KindDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// KindOf 同时接受 MIME、扩展名和简写，比如 application/pdf、.pdf、pdf
func KindOf(contentType string) Kind {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if ct == "" {
		return KindUnknown
	}
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		ct = mt
	}
	if k, ok := mimeKinds[ct]; ok {
		return k
	}
	switch k := Kind(strings.TrimPrefix(ct, ".")); k {
	case KindPDF, KindDOC, KindDOCX:
		return k
	}
	return KindUnknown
}

// KindOfFilename 根据文件名后缀推断类型
func KindOfFilename(filename string) Kind {
	return KindOf(filepath.Ext(filename))
}

func (k Kind) Ext() string {
	if k == KindUnknown {
		return ""
	}
	return "." + string(k)
}

func (k Kind) MIME() string {
	return kindMimes[k]
}

// Ref 已上传简历的元数据，文件内容在存储里
type Ref struct {
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"sizeBytes"`
	ContentType string `json:"contentType"`
	StorageKey  string `json:"storageKey"`
	// 毫秒
	UploadedAt int64 `json:"uploadedAt"`
}

func (r Ref) IsZero() bool {
	return r.StorageKey == ""
}

func (r Ref) Kind() Kind {
	return KindOf(r.ContentType)
}

// ValidateMeta 只校验类型和大小
func (r Ref) ValidateMeta() error {
	if r.Kind() == KindUnknown {
		return fmt.Errorf("%w, contentType=%q", ErrUnsupportedContentType, r.ContentType)
	}
	if r.SizeBytes <= 0 {
		return ErrEmptyAttachment
	}
	if r.SizeBytes > MaxSizeBytes {
		return fmt.Errorf("%w, size=%d", ErrAttachmentTooLarge, r.SizeBytes)
	}
	return nil
}

// Validate 关联到投递或者档案之前调用
func (r Ref) Validate() error {
	if err := r.ValidateMeta(); err != nil {
		return err
	}
	if r.IsZero() {
		return ErrMissingStorageKey
	}
	return nil
}

// FileMeta 上传时客户端给出的文件信息
type FileMeta struct {
	Filename    string
	SizeBytes   int64
	ContentType string
}
