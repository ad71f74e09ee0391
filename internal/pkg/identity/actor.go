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

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ginx/session"
)

// RoleClaimKey 登录时写入 jwt data 的角色字段
const RoleClaimKey = "role"

var (
	ErrAnonymous   = errors.New("未登录")
	ErrUnknownRole = errors.New("未知角色")
)

// Actor 当前操作人
type Actor struct {
	ID   int64
	Role Role
}

func (a Actor) Valid() bool {
	return a.ID > 0 && a.Role.IsValid()
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsRecruiter() bool {
	return a.Role == RoleRecruiter
}

func (a Actor) IsCandidate() bool {
	return a.Role == RoleCandidate
}

// IsStaff 招聘方，也就是 RECRUITER 或者 ADMIN
func (a Actor) IsStaff() bool {
	return a.IsAdmin() || a.IsRecruiter()
}

// FromSession 从 session 里面解析出 Actor，不做任何凭证校验
func FromSession(sess session.Session) (Actor, error) {
	claims := sess.Claims()
	if claims.Uid <= 0 {
		return Actor{}, ErrAnonymous
	}
	raw := claims.Get(RoleClaimKey).StringOrDefault("")
	role := NormalizeRole(raw)
	if !role.IsValid() {
		return Actor{}, fmt.Errorf("%w: uid=%d, role=%q", ErrUnknownRole, claims.Uid, raw)
	}
	return Actor{ID: claims.Uid, Role: role}, nil
}

type actorCtxKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

func ActorFromCtx(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(Actor)
	return actor, ok
}
