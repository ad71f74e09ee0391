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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RoleGuardBuilder 只放行指定角色，解析出来的 Actor 会放进 request context
type RoleGuardBuilder struct {
	sp     session.Provider
	logger *elog.Component
}

func NewRoleGuardBuilder() *RoleGuardBuilder {
	return &RoleGuardBuilder{
		logger: elog.DefaultLogger,
	}
}

// SetProvider 不设置的话使用 session.DefaultProvider
func (b *RoleGuardBuilder) SetProvider(sp session.Provider) *RoleGuardBuilder {
	b.sp = sp
	return b
}

func (b *RoleGuardBuilder) Build(roles ...identity.Role) gin.HandlerFunc {
	if b.sp == nil {
		b.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := b.sp.Get(gctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusForbidden)
			b.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		actor, err := identity.FromSession(sess)
		if err != nil {
			ctx.AbortWithStatus(http.StatusForbidden)
			b.logger.Warn("无法识别用户角色", elog.FieldErr(err))
			return
		}
		if len(roles) > 0 && !slice.Contains(roles, actor.Role) {
			ctx.AbortWithStatus(http.StatusForbidden)
			b.logger.Warn("角色无权访问",
				elog.Int64("uid", actor.ID),
				elog.String("role", actor.Role.String()),
				elog.String("path", ctx.FullPath()))
			return
		}
		ctx.Request = ctx.Request.WithContext(identity.WithActor(ctx.Request.Context(), actor))
	}
}
