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

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrJobNotOpen 更新的时候职位已经不是 OPEN 状态了
	ErrJobNotOpen = errors.New("职位不是开放状态")
)

const (
	statusOpen   = "OPEN"
	statusClosed = "CLOSED"
)

type JobDAO interface {
	Create(ctx context.Context, job Job) (int64, error)
	// Update 只更新可编辑的字段，并且只有 OPEN 状态的职位可以更新
	Update(ctx context.Context, job Job) error
	Close(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (Job, error)
	ListOpen(ctx context.Context, offset, limit int) ([]Job, error)
	CountOpen(ctx context.Context) (int64, error)
	ListByOwner(ctx context.Context, ownerId int64, offset, limit int) ([]Job, error)
	CountByOwner(ctx context.Context, ownerId int64) (int64, error)
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (d *GORMJobDAO) Create(ctx context.Context, job Job) (int64, error) {
	now := time.Now().UnixMilli()
	job.Ctime = now
	job.Utime = now
	job.Status = statusOpen
	err := d.db.WithContext(ctx).Create(&job).Error
	return job.Id, err
}

func (d *GORMJobDAO) Update(ctx context.Context, job Job) error {
	res := d.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND status = ?", job.Id, statusOpen).
		Updates(map[string]any{
			"title":            job.Title,
			"description":      job.Description,
			"skills":           job.Skills,
			"experience_years": job.ExperienceYears,
			"location":         job.Location,
			"utime":            time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotOpen
	}
	return nil
}

func (d *GORMJobDAO) Close(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND status = ?", id, statusOpen).
		Updates(map[string]any{
			"status": statusClosed,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *GORMJobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var job Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	return job, err
}

func (d *GORMJobDAO) ListOpen(ctx context.Context, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).Where("status = ?", statusOpen).
		Offset(offset).Limit(limit).Order("utime DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

func (d *GORMJobDAO) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Job{}).Where("status = ?", statusOpen).Count(&count).Error
	return count, err
}

func (d *GORMJobDAO) ListByOwner(ctx context.Context, ownerId int64, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).Where("owner_id = ?", ownerId).
		Offset(offset).Limit(limit).Order("utime DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

func (d *GORMJobDAO) CountByOwner(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Job{}).Where("owner_id = ?", ownerId).Count(&count).Error
	return count, err
}
