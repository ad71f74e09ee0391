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

import "github.com/ecodeclub/hirehub/internal/notification/internal/domain"

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ReadReq struct {
	// IDs 为空表示全部已读
	IDs []int64 `json:"ids,omitempty"`
}

type Notification struct {
	ID           int64  `json:"id"`
	SubmissionID int64  `json:"submissionId"`
	SN           string `json:"sn"`
	JobID        int64  `json:"jobId"`
	FromStatus   string `json:"fromStatus"`
	ToStatus     string `json:"toStatus"`
	ChangedBy    int64  `json:"changedBy"`
	Note         string `json:"note,omitempty"`
	Read         bool   `json:"read"`
	Ctime        int64  `json:"ctime"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		ID:           n.ID,
		SubmissionID: n.SubmissionID,
		SN:           n.SN,
		JobID:        n.JobID,
		FromStatus:   n.FromStatus,
		ToStatus:     n.ToStatus,
		ChangedBy:    n.ChangedBy,
		Note:         n.Note,
		Read:         n.Read,
		Ctime:        n.Ctime,
	}
}

type NotificationList struct {
	Total int64          `json:"total"`
	List  []Notification `json:"list"`
}
