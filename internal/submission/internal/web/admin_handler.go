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
	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/ecodeclub/hirehub/internal/submission/internal/domain"
	"github.com/ecodeclub/hirehub/internal/submission/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 挂在管理后台上
type AdminHandler struct {
	pipeline service.PipelineService
}

func NewAdminHandler(pipeline service.PipelineService) *AdminHandler {
	return &AdminHandler{pipeline: pipeline}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/pipeline")
	g.POST("/recruiters", ginx.S(h.Recruiters))
}

func (h *AdminHandler) Recruiters(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	actor, err := identity.FromSession(sess)
	if err != nil || !actor.IsAdmin() {
		return unauthorizedResult, nil
	}
	stats, err := h.pipeline.Recruiters(ctx, actor)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(stats, func(idx int, src domain.RecruiterStat) RecruiterStat {
		return RecruiterStat{
			RecruiterID: src.RecruiterID,
			Total:       src.Total,
			Interviews:  src.Interviews,
			Offers:      src.Offers,
			Joined:      src.Joined,
			WinRate:     src.WinRate,
		}
	})}, nil
}
