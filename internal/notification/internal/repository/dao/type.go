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

// Notification 主键由雪花算法生成
type Notification struct {
	Id           int64  `gorm:"primaryKey,autoIncrement:false"`
	EventId      int64  `gorm:"not null;uniqueIndex:uniq_event_uid"`
	Uid          int64  `gorm:"not null;uniqueIndex:uniq_event_uid;index:idx_uid_read"`
	IsRead       bool   `gorm:"not null;default:false;index:idx_uid_read"`
	SubmissionId int64  `gorm:"not null"`
	Sn           string `gorm:"type:varchar(64)"`
	JobId        int64
	FromStatus   string `gorm:"type:varchar(32)"`
	ToStatus     string `gorm:"type:varchar(32);not null"`
	ChangedBy    int64
	Note         string `gorm:"type:varchar(1024)"`
	Ctime        int64
	Utime        int64
}
