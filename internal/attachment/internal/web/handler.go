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

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/attachment/internal/domain"
	"github.com/ecodeclub/hirehub/internal/attachment/internal/service"
	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/gin-gonic/gin"
)

const formFileField = "file"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/attachments")
	g.POST("/upload", ginx.S(h.Upload))
	g.POST("/url", ginx.BS[DownloadURLReq](h.DownloadURL))
}

// Upload multipart 上传，字段名是 file
func (h *Handler) Upload(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	fh, err := ctx.FormFile(formFileField)
	if err != nil {
		return invalidAttachmentResult, nil
	}
	f, err := fh.Open()
	if err != nil {
		return systemErrorResult, fmt.Errorf("打开上传文件失败 %w", err)
	}
	defer f.Close()
	ref, err := h.svc.Upload(ctx, actor, domain.FileMeta{
		Filename:    fh.Filename,
		SizeBytes:   fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
	}, f)
	switch {
	case err == nil:
		return ginx.Result{Data: newAttachmentRef(ref)}, nil
	case errors.Is(err, domain.ErrInvalidAttachment):
		return ginx.Result{
			Code: invalidAttachmentResult.Code,
			Msg:  err.Error(),
		}, nil
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) DownloadURL(ctx *ginx.Context, req DownloadURLReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	u, err := h.svc.DownloadURL(ctx, actor, req.StorageKey)
	switch {
	case err == nil:
		return ginx.Result{Data: DownloadURLResp{URL: u}}, nil
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorizedResult, nil
	case errors.Is(err, service.ErrObjectNotFound):
		return notFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
