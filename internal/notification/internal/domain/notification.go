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

import "github.com/ecodeclub/ekit/slice"

type Notification struct {
	ID           int64
	UID          int64
	EventID      int64
	SubmissionID int64
	SN           string
	JobID        int64
	FromStatus   string
	ToStatus     string
	ChangedBy    int64
	Note         string
	Read         bool
	Ctime        int64
}

// Transition 一次投递状态变更
type Transition struct {
	EventID          int64
	SubmissionID     int64
	SN               string
	JobID            int64
	FromStatus       string
	ToStatus         string
	CandidateID      int64
	RecruiterOwnerID int64
	ChangedBy        int64
	Note             string
	Ctime            int64
}

// Recipients 候选人和招聘负责人，操作人自己不需要收到通知
func (t Transition) Recipients() []int64 {
	res := make([]int64, 0, 2)
	for _, uid := range []int64{t.CandidateID, t.RecruiterOwnerID} {
		if uid <= 0 || uid == t.ChangedBy || slice.Contains(res, uid) {
			continue
		}
		res = append(res, uid)
	}
	return res
}

func (t Transition) Notifications() []Notification {
	return slice.Map(t.Recipients(), func(idx int, uid int64) Notification {
		return Notification{
			UID:          uid,
			EventID:      t.EventID,
			SubmissionID: t.SubmissionID,
			SN:           t.SN,
			JobID:        t.JobID,
			FromStatus:   t.FromStatus,
			ToStatus:     t.ToStatus,
			ChangedBy:    t.ChangedBy,
			Note:         t.Note,
			Ctime:        t.Ctime,
		}
	})
}
