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

import "strings"

// Role 是归一化之后的角色，只有三种合法取值
type Role string

const (
	RoleUnknown   Role = ""
	RoleAdmin     Role = "ADMIN"
	RoleRecruiter Role = "RECRUITER"
	RoleCandidate Role = "CANDIDATE"
)

// 历史上不同模块用了不同的叫法，统一在这里收口
var roleAliases = map[string]Role{
	"ADMIN":          RoleAdmin,
	"RECRUITER":      RoleRecruiter,
	"TALENT_MANAGER": RoleRecruiter,
	"CANDIDATE":      RoleCandidate,
	"CONSULTANT":     RoleCandidate,
}

// NormalizeRole 不认识的角色一律返回 RoleUnknown，调用方必须当作无权限处理
func NormalizeRole(raw string) Role {
	key := strings.ToUpper(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	return roleAliases[key]
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleRecruiter, RoleCandidate:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
