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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrVersionConflict 读出来之后被别人改过了
	ErrVersionConflict = errors.New("投递已被修改")
)

//go:generate mockgen -source=./submission.go -package=daomocks -destination=./mocks/submission.mock.go SubmissionDAO
type SubmissionDAO interface {
	// Create 同时写入第一条状态记录，时间戳由调用方给出，没给才取当前时间
	Create(ctx context.Context, s Submission, h StatusHistory) (int64, error)
	FindById(ctx context.Context, id int64) (Submission, error)
	// Transition 基于 version 的乐观锁更新状态，并且追加一条状态记录
	Transition(ctx context.Context, id, version int64, clearRead bool, h StatusHistory) error
	MarkRead(ctx context.Context, id, version int64) error
	UpdateResume(ctx context.Context, id, version int64, resume Resume, utime int64) error
	// Latest 某个候选人对某个职位最近的一次投递
	Latest(ctx context.Context, candidateId, jobId int64) (Submission, error)
	Exists(ctx context.Context, candidateId, jobId int64) (bool, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]Submission, error)
	Count(ctx context.Context, f Filter) (int64, error)
	// FindAll 不分页，用于统计
	FindAll(ctx context.Context, f Filter) ([]Submission, error)
	FindHistories(ctx context.Context, sids []int64) ([]StatusHistory, error)
}

type GORMSubmissionDAO struct {
	db *egorm.Component
}

func NewGORMSubmissionDAO(db *egorm.Component) SubmissionDAO {
	return &GORMSubmissionDAO{db: db}
}

func (d *GORMSubmissionDAO) Create(ctx context.Context, s Submission, h StatusHistory) (int64, error) {
	if s.Ctime == 0 {
		s.Ctime = time.Now().UnixMilli()
	}
	if s.Utime == 0 {
		s.Utime = s.Ctime
	}
	s.Version = 1
	if h.Ctime == 0 {
		h.Ctime = s.Ctime
	}
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
		h.Sid = s.Id
		return tx.Create(&h).Error
	})
	if err != nil {
		return 0, err
	}
	return s.Id, nil
}

func (d *GORMSubmissionDAO) FindById(ctx context.Context, id int64) (Submission, error) {
	var s Submission
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (d *GORMSubmissionDAO) Transition(ctx context.Context, id, version int64, clearRead bool, h StatusHistory) error {
	h.Sid = id
	if h.Ctime == 0 {
		h.Ctime = time.Now().UnixMilli()
	}
	updates := map[string]any{
		"status":  h.ToStatus,
		"version": gorm.Expr("version + 1"),
		"utime":   h.Ctime,
	}
	if clearRead {
		updates["recruiter_read"] = false
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := d.updateWithVersion(tx, id, version, updates); err != nil {
			return err
		}
		return tx.Create(&h).Error
	})
}

func (d *GORMSubmissionDAO) MarkRead(ctx context.Context, id, version int64) error {
	return d.updateWithVersion(d.db.WithContext(ctx), id, version, map[string]any{
		"recruiter_read": true,
		"version":        gorm.Expr("version + 1"),
		"utime":          time.Now().UnixMilli(),
	})
}

func (d *GORMSubmissionDAO) UpdateResume(ctx context.Context, id, version int64, resume Resume, utime int64) error {
	return d.updateWithVersion(d.db.WithContext(ctx), id, version, map[string]any{
		"resume":  sqlx.JsonColumn[Resume]{Val: resume, Valid: true},
		"version": gorm.Expr("version + 1"),
		"utime":   utime,
	})
}

func (d *GORMSubmissionDAO) updateWithVersion(db *gorm.DB, id, version int64, updates map[string]any) error {
	res := db.Model(&Submission{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (d *GORMSubmissionDAO) Latest(ctx context.Context, candidateId, jobId int64) (Submission, error) {
	var s Submission
	err := d.db.WithContext(ctx).
		Where("candidate_id = ? AND job_id = ?", candidateId, jobId).
		Order("id DESC").First(&s).Error
	return s, err
}

func (d *GORMSubmissionDAO) Exists(ctx context.Context, candidateId, jobId int64) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Submission{}).
		Where("candidate_id = ? AND job_id = ?", candidateId, jobId).
		Limit(1).Count(&cnt).Error
	return cnt > 0, err
}

func (d *GORMSubmissionDAO) List(ctx context.Context, f Filter, offset, limit int) ([]Submission, error) {
	var res []Submission
	err := d.filter(d.db.WithContext(ctx), f).
		Offset(offset).Limit(limit).Order("utime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (d *GORMSubmissionDAO) Count(ctx context.Context, f Filter) (int64, error) {
	var cnt int64
	err := d.filter(d.db.WithContext(ctx).Model(&Submission{}), f).Count(&cnt).Error
	return cnt, err
}

func (d *GORMSubmissionDAO) FindAll(ctx context.Context, f Filter) ([]Submission, error) {
	var res []Submission
	err := d.filter(d.db.WithContext(ctx), f).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMSubmissionDAO) filter(db *gorm.DB, f Filter) *gorm.DB {
	if f.CandidateId > 0 {
		db = db.Where("candidate_id = ?", f.CandidateId)
	}
	if f.JobId > 0 {
		db = db.Where("job_id = ?", f.JobId)
	}
	if f.RecruiterId > 0 {
		db = db.Where("recruiter_id = ?", f.RecruiterId)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	return db
}

func (d *GORMSubmissionDAO) FindHistories(ctx context.Context, sids []int64) ([]StatusHistory, error) {
	var res []StatusHistory
	if len(sids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("sid IN ?", sids).
		Order("ctime ASC, id ASC").Find(&res).Error
	return res, err
}
