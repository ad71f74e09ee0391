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

package service

import (
	"fmt"

	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/ecodeclub/hirehub/internal/submission/internal/domain"
)

// scopeFilter 按照角色收窄查询范围
func scopeFilter(actor identity.Actor, f domain.Filter) (domain.Filter, error) {
	if !actor.Valid() {
		return domain.Filter{}, ErrUnauthorized
	}
	if f.Status != "" && !f.Status.IsValid() {
		return domain.Filter{}, fmt.Errorf("%w: %q", ErrInvalidStatus, f.Status)
	}
	switch {
	case actor.IsCandidate():
		f.CandidateID = actor.ID
	case actor.IsRecruiter():
		f.RecruiterID = actor.ID
	}
	return f, nil
}
