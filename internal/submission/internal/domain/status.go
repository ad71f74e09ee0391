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

package domain

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

type Status string

const (
	StatusSubmitted   Status = "SUBMITTED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusInterview   Status = "INTERVIEW"
	StatusOffer       Status = "OFFER"
	StatusJoined      Status = "JOINED"
	StatusRejected    Status = "REJECTED"
	StatusOnHold      Status = "ON_HOLD"
	StatusWithdrawn   Status = "WITHDRAWN"
)

// statuses 按照流程的先后排列
var statuses = []Status{
	StatusSubmitted,
	StatusUnderReview,
	StatusInterview,
	StatusOffer,
	StatusJoined,
	StatusRejected,
	StatusOnHold,
	StatusWithdrawn,
}

var transitions = map[Status][]Status{
	StatusSubmitted:   {StatusUnderReview, StatusInterview, StatusOnHold, StatusRejected, StatusWithdrawn},
	StatusUnderReview: {StatusInterview, StatusOffer, StatusOnHold, StatusRejected, StatusWithdrawn},
	StatusInterview:   {StatusOffer, StatusOnHold, StatusRejected, StatusWithdrawn},
	// 发了 offer 之后候选人也可能暂缓入职，所以允许 ON_HOLD
	StatusOffer:       {StatusJoined, StatusOnHold, StatusRejected, StatusWithdrawn},
	StatusOnHold:      {StatusUnderReview, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn},
}

func AllStatuses() []Status {
	res := make([]Status, len(statuses))
	copy(res, statuses)
	return res
}

// ParseStatus 忽略大小写，"under review" 和 "under-review" 都可以
func ParseStatus(raw string) (Status, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	st := Status(s)
	return st, st.IsValid()
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return slice.Contains(statuses, s)
}

// IsTerminal JOINED, REJECTED 和 WITHDRAWN 之后不能再流转
func (s Status) IsTerminal() bool {
	return s == StatusJoined || s == StatusRejected || s == StatusWithdrawn
}

func (s Status) AllowedTargets() []Status {
	targets := transitions[s]
	res := make([]Status, len(targets))
	copy(res, targets)
	return res
}

func (s Status) CanTransitTo(target Status) bool {
	return slice.Contains(transitions[s], target)
}
