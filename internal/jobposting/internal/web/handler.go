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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/errs"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/service"
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
	g := server.Group("/jobs")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/close", ginx.BS[IdReq](h.Close))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/mine", ginx.BS[Page](h.Mine))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	id, err := h.svc.Save(ctx, actor, req.Job.toDomain())
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Close(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	err = h.svc.Close(ctx, actor, req.ID)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	job, err := h.svc.GetJob(ctx, req.ID)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newJob(job)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	jobs, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJobList(jobs, total)}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil || !actor.IsStaff() {
		return unauthorizedResult, nil
	}
	jobs, total, err := h.svc.ListByOwner(ctx, actor.ID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJobList(jobs, total)}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return ginx.Result{Code: errs.Unauthorized.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrInvalidJob):
		return ginx.Result{Code: errs.InvalidJob.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult, nil
	case errors.Is(err, service.ErrJobClosed):
		return jobClosedResult, nil
	default:
		return systemErrorResult, err
	}
}
