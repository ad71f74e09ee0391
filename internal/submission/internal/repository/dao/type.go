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

package dao

import "github.com/ecodeclub/ekit/sqlx"

type Submission struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Sn          string `gorm:"type:varchar(64);uniqueIndex"`
	CandidateId int64  `gorm:"not null;index:idx_candidate_job"`
	JobId       int64  `gorm:"not null;index:idx_candidate_job;index"`
	RecruiterId int64  `gorm:"not null;index"`
	Status      string `gorm:"type:varchar(32);not null"`
	// 简历附件，JSON
	Resume        sqlx.JsonColumn[Resume] `gorm:"type:varchar(1024)"`
	Comments      string                  `gorm:"type:text"`
	RecruiterRead bool
	// 乐观锁
	Version int64 `gorm:"not null;default:1"`
	Ctime   int64
	Utime   int64
}

type Resume struct {
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"sizeBytes"`
	ContentType string `json:"contentType"`
	StorageKey  string `json:"storageKey"`
	UploadedAt  int64  `json:"uploadedAt"`
}

type StatusHistory struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	Sid        int64  `gorm:"not null;index"`
	FromStatus string `gorm:"type:varchar(32)"`
	ToStatus   string `gorm:"type:varchar(32);not null"`
	ChangedBy  int64
	Note       string `gorm:"type:varchar(1024)"`
	Ctime      int64
}

func (StatusHistory) TableName() string {
	return "submission_status_histories"
}

// Filter 零值字段不参与过滤
type Filter struct {
	CandidateId int64
	JobId       int64
	RecruiterId int64
	Status      string
}
