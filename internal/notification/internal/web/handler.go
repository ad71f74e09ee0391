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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	"github.com/ecodeclub/hirehub/internal/notification/internal/service"
	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notifications")
	g.POST("/list", ginx.BS[Page](h.List))
	g.POST("/unread-count", ginx.S(h.UnreadCount))
	g.POST("/read", ginx.BS[ReadReq](h.MarkRead))
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	ns, total, err := h.svc.List(ctx, actor, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: NotificationList{
		Total: total,
		List: slice.Map(ns, func(idx int, src domain.Notification) Notification {
			return newNotification(src)
		}),
	}}, nil
}

func (h *Handler) UnreadCount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	cnt, err := h.svc.UnreadCount(ctx, actor)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: cnt}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req ReadReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	cnt, err := h.svc.MarkRead(ctx, actor, req.IDs)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: cnt}, nil
}
