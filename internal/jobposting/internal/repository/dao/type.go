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

type Job struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Title       string `gorm:"type:varchar(256);not null"`
	Description string `gorm:"type:text"`
	// 技能要求，JSON 数组
	Skills          sqlx.JsonColumn[[]string] `gorm:"type:varchar(1024)"`
	ExperienceYears float64
	Location        string `gorm:"type:varchar(256)"`
	Status          string `gorm:"type:varchar(16);not null;index:idx_status_utime"`
	OwnerId         int64  `gorm:"not null;index"`
	Ctime           int64
	Utime           int64 `gorm:"index:idx_status_utime"`
}
