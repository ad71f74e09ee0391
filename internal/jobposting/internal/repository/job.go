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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/domain"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/repository/cache"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrJobNotFound = dao.ErrRecordNotFound
	ErrJobNotOpen  = dao.ErrJobNotOpen
)

//go:generate mockgen -source=./job.go -package=repomocks -destination=./mocks/job.mock.go JobRepository
type JobRepository interface {
	Create(ctx context.Context, job domain.Job) (int64, error)
	Update(ctx context.Context, job domain.Job) error
	Close(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Job, error)
	ListOpen(ctx context.Context, offset, limit int) ([]domain.Job, error)
	CountOpen(ctx context.Context) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Job, error)
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type jobRepository struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &jobRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("jobposting.repository")),
	}
}

func (r *jobRepository) Create(ctx context.Context, job domain.Job) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(job))
}

func (r *jobRepository) Update(ctx context.Context, job domain.Job) error {
	err := r.dao.Update(ctx, r.toEntity(job))
	if err != nil {
		return err
	}
	r.evict(ctx, job.ID)
	return nil
}

func (r *jobRepository) Close(ctx context.Context, id int64) error {
	err := r.dao.Close(ctx, id)
	if err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *jobRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.DelJob(ctx, id); err != nil {
		r.logger.Error("删除职位缓存失败", elog.Int64("jid", id), elog.FieldErr(err))
	}
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	job, err := r.cache.GetJob(ctx, id)
	if err == nil {
		return job, nil
	}
	if !errors.Is(err, cache.ErrJobNotFound) {
		r.logger.Error("查询职位缓存失败", elog.Int64("jid", id), elog.FieldErr(err))
	}
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	job = r.toDomain(entity)
	if err = r.cache.SetJob(ctx, job); err != nil {
		r.logger.Error("回写职位缓存失败", elog.Int64("jid", id), elog.FieldErr(err))
	}
	return job, nil
}

func (r *jobRepository) ListOpen(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.ListOpen(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepository) CountOpen(ctx context.Context) (int64, error) {
	return r.dao.CountOpen(ctx)
}

func (r *jobRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.ListByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	return r.dao.CountByOwner(ctx, ownerID)
}

func (r *jobRepository) toEntity(job domain.Job) dao.Job {
	return dao.Job{
		Id:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Skills: sqlx.JsonColumn[[]string]{
			Val:   job.RequiredSkills,
			Valid: len(job.RequiredSkills) > 0,
		},
		ExperienceYears: job.RequiredExperienceYears,
		Location:        job.Location,
		Status:          job.Status.String(),
		OwnerId:         job.OwnerID,
		Ctime:           job.Ctime,
		Utime:           job.Utime,
	}
}

func (r *jobRepository) toDomain(job dao.Job) domain.Job {
	return domain.Job{
		ID:                      job.Id,
		Title:                   job.Title,
		Description:             job.Description,
		RequiredSkills:          job.Skills.Val,
		RequiredExperienceYears: job.ExperienceYears,
		Location:                job.Location,
		Status:                  domain.JobStatus(job.Status),
		OwnerID:                 job.OwnerId,
		Ctime:                   job.Ctime,
		Utime:                   job.Utime,
	}
}
