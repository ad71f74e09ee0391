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

import "github.com/ecodeclub/hirehub/internal/attachment"

// Submission 一次投递。同一个候选人可以多次投递同一个职位，每次都是一条新记录
type Submission struct {
	ID          int64
	SN          string
	CandidateID int64
	JobID       int64
	// RecruiterID 创建时职位的负责人
	RecruiterID int64
	Status      Status
	// Resume 零值表示没有简历
	Resume        attachment.Ref
	Comments      string
	RecruiterRead bool
	Version       int64
	// History 只追加，最后一条的 To 等于 Status
	History []StatusChange
	Ctime   int64
	Utime   int64
}

func (s Submission) HasResume() bool {
	return !s.Resume.IsZero()
}

func (s Submission) IsOwnedByCandidate(uid int64) bool {
	return s.CandidateID == uid
}

type StatusChange struct {
	ID int64
	// From 创建时为空
	From      Status
	To        Status
	ChangedBy int64
	Note      string
	Ctime     int64
}

// Filter 零值字段不参与过滤
type Filter struct {
	CandidateID int64
	JobID       int64
	RecruiterID int64
	Status      Status
}
