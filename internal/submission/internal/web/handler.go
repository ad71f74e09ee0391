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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/attachment"
	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/ecodeclub/hirehub/internal/submission/internal/domain"
	"github.com/ecodeclub/hirehub/internal/submission/internal/errs"
	"github.com/ecodeclub/hirehub/internal/submission/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	pipeline service.PipelineService
}

func NewHandler(svc service.Service, pipeline service.PipelineService) *Handler {
	return &Handler{svc: svc, pipeline: pipeline}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/submissions")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/transition", ginx.BS[TransitionReq](h.Transition))
	g.POST("/withdraw", ginx.BS[WithdrawReq](h.Withdraw))
	g.POST("/has-applied", ginx.BS[PairReq](h.HasApplied))
	g.POST("/latest", ginx.BS[PairReq](h.Latest))
	g.POST("/mark-read", ginx.BS[IdReq](h.MarkRead))
	g.POST("/attach-resume", ginx.BS[AttachResumeReq](h.AttachResume))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))

	p := server.Group("/pipeline")
	p.POST("/stats", ginx.BS[FilterReq](h.Stats))
	p.POST("/stage-time", ginx.BS[StageTimeReq](h.StageTime))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	sub, err := h.svc.Create(ctx, actor, domain.Submission{
		JobID:    req.JobID,
		Resume:   req.Resume.toRef(),
		Comments: req.Comments,
	})
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) Transition(ctx *ginx.Context, req TransitionReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	sub, err := h.svc.Transition(ctx, actor, req.ID, parseStatus(req.Status), req.Note)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) Withdraw(ctx *ginx.Context, req WithdrawReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	sub, err := h.svc.Withdraw(ctx, actor, req.ID, req.Note)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) HasApplied(ctx *ginx.Context, req PairReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	applied, err := h.svc.HasApplied(ctx, actor, req.CandidateID, req.JobID)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: applied}, nil
}

func (h *Handler) Latest(ctx *ginx.Context, req PairReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	sub, err := h.svc.Latest(ctx, actor, req.CandidateID, req.JobID)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	if err = h.svc.MarkRead(ctx, actor, req.ID); err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) AttachResume(ctx *ginx.Context, req AttachResumeReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	sub, err := h.svc.AttachResume(ctx, actor, req.ID, req.Resume.toRef())
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	sub, err := h.svc.Detail(ctx, actor, req.ID)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	subs, total, err := h.svc.List(ctx, actor, req.FilterReq.toDomain(), req.Offset, req.Limit)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: SubmissionList{
		Total: total,
		List: slice.Map(subs, func(idx int, src domain.Submission) Submission {
			return newSubmission(src)
		}),
	}}, nil
}

func (h *Handler) Stats(ctx *ginx.Context, req FilterReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	stats, err := h.pipeline.Stats(ctx, actor, req.toDomain())
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newPipelineStats(stats)}, nil
}

func (h *Handler) StageTime(ctx *ginx.Context, req StageTimeReq, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil {
		return unauthorizedResult, nil
	}
	d, err := h.pipeline.StageTime(ctx, actor, req.FilterReq.toDomain(), parseStatus(req.From), parseStatus(req.To))
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newStageDuration(d)}, nil
}

// errorResult 业务错误返回具体的违反规则，系统错误交给 ginx 记录日志
func (h *Handler) errorResult(err error) (ginx.Result, error) {
	var illegal *domain.IllegalTransitionError
	switch {
	case errors.As(err, &illegal):
		return ginx.Result{
			Code: errs.IllegalTransition.Code,
			Msg:  illegal.Error(),
			Data: IllegalTransition{
				Current: illegal.Current.String(),
				Target:  illegal.Target.String(),
				AllowedTargets: slice.Map(illegal.Current.AllowedTargets(), func(idx int, src domain.Status) string {
					return src.String()
				}),
			},
		}, nil
	case errors.Is(err, service.ErrUnauthorized):
		return ginx.Result{Code: errs.Unauthorized.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrSubmissionNotFound):
		return submissionNotFoundResult, nil
	case errors.Is(err, service.ErrConflict):
		return conflictResult, nil
	case errors.Is(err, service.ErrJobNotFound):
		return ginx.Result{Code: errs.JobNotFound.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrJobClosed):
		return ginx.Result{Code: errs.JobClosed.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrInvalidStatus):
		return ginx.Result{Code: errs.InvalidStatus.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrTerminalSubmission):
		return ginx.Result{Code: errs.TerminalSubmission.Code, Msg: err.Error()}, nil
	case errors.Is(err, attachment.ErrInvalidAttachment):
		return ginx.Result{Code: errs.InvalidAttachment.Code, Msg: err.Error()}, nil
	default:
		return systemErrorResult, err
	}
}
