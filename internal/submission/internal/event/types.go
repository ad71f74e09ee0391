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

package event

const TransitionEventName = "submission_transition_events"

// TransitionEvent 投递状态变更之后发出，状态使用字符串方便下游解析
type TransitionEvent struct {
	EventID          int64  `json:"eventId"`
	SubmissionID     int64  `json:"submissionId"`
	SN               string `json:"sn"`
	JobID            int64  `json:"jobId"`
	FromStatus       string `json:"fromStatus"`
	ToStatus         string `json:"toStatus"`
	CandidateID      int64  `json:"candidateId"`
	RecruiterOwnerID int64  `json:"recruiterOwnerId"`
	ChangedBy        int64  `json:"changedBy"`
	Note             string `json:"note"`
	Ctime            int64  `json:"ctime"`
}
