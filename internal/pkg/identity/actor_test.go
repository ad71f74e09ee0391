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
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRole(t *testing.T) {
	testCases := []struct {
		raw  string
		want Role
	}{
		{raw: "ADMIN", want: RoleAdmin},
		{raw: "admin", want: RoleAdmin},
		{raw: " Recruiter ", want: RoleRecruiter},
		{raw: "TALENT_MANAGER", want: RoleRecruiter},
		{raw: "talent-manager", want: RoleRecruiter},
		{raw: "Talent Manager", want: RoleRecruiter},
		{raw: "CONSULTANT", want: RoleCandidate},
		{raw: "candidate", want: RoleCandidate},
		{raw: "", want: RoleUnknown},
		{raw: "SUPER_ADMIN", want: RoleUnknown},
		{raw: "guest", want: RoleUnknown},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeRole(tc.raw))
		})
	}
}

func TestFromSession(t *testing.T) {
	testCases := []struct {
		name    string
		claims  session.Claims
		want    Actor
		wantErr error
	}{
		{
			name: "招聘者",
			claims: session.Claims{
				Uid:  12,
				Data: map[string]string{RoleClaimKey: "talent_manager"},
			},
			want: Actor{ID: 12, Role: RoleRecruiter},
		},
		{
			name: "候选人",
			claims: session.Claims{
				Uid:  13,
				Data: map[string]string{RoleClaimKey: "CONSULTANT"},
			},
			want: Actor{ID: 13, Role: RoleCandidate},
		},
		{
			name: "未知角色",
			claims: session.Claims{
				Uid:  14,
				Data: map[string]string{RoleClaimKey: "intern"},
			},
			wantErr: ErrUnknownRole,
		},
		{
			name: "没有角色",
			claims: session.Claims{
				Uid:  15,
				Data: map[string]string{},
			},
			wantErr: ErrUnknownRole,
		},
		{
			name: "未登录",
			claims: session.Claims{
				Data: map[string]string{RoleClaimKey: "ADMIN"},
			},
			wantErr: ErrAnonymous,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actor, err := FromSession(session.NewMemorySession(tc.claims))
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, actor)
			assert.True(t, actor.Valid())
		})
	}
}

func TestActorCtx(t *testing.T) {
	_, ok := ActorFromCtx(context.Background())
	require.False(t, ok)
	ctx := WithActor(context.Background(), Actor{ID: 1, Role: RoleAdmin})
	actor, ok := ActorFromCtx(ctx)
	require.True(t, ok)
	assert.True(t, actor.IsAdmin())
	assert.True(t, actor.IsStaff())
	assert.False(t, actor.IsCandidate())
}
