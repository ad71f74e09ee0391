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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/hirehub/internal/jobposting/internal/domain"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/repository"
	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound  = repository.ErrJobNotFound
	ErrJobClosed    = domain.ErrJobClosed
	ErrInvalidJob   = domain.ErrInvalidJob
	ErrUnauthorized = errors.New("无权操作该职位")
)

//go:generate mockgen -source=./job.go -package=jobmocks -destination=../../mocks/job.mock.go Service
type Service interface {
	// Save ID 为 0 是创建，否则是更新
	Save(ctx context.Context, actor identity.Actor, job domain.Job) (int64, error)
	Close(ctx context.Context, actor identity.Actor, id int64) error
	GetJob(ctx context.Context, id int64) (domain.Job, error)
	JobExists(ctx context.Context, id int64) (bool, error)
	// List 只返回 OPEN 的职位
	List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error)
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Job, int64, error)
}

type jobService struct {
	repo repository.JobRepository
}

func NewService(repo repository.JobRepository) Service {
	return &jobService{repo: repo}
}

func (s *jobService) Save(ctx context.Context, actor identity.Actor, job domain.Job) (int64, error) {
	if !actor.Valid() || !actor.IsStaff() {
		return 0, fmt.Errorf("%w: 只有招聘者和管理员可以发布职位", ErrUnauthorized)
	}
	if err := job.Validate(); err != nil {
		return 0, err
	}
	job.RequiredSkills = domain.NormalizeSkills(job.RequiredSkills)
	if job.ID == 0 {
		job.Status = domain.JobStatusOpen
		job.OwnerID = actor.ID
		return s.repo.Create(ctx, job)
	}
	old, err := s.repo.FindById(ctx, job.ID)
	if err != nil {
		return 0, err
	}
	if err = s.checkOwner(actor, old); err != nil {
		return 0, err
	}
	if !old.IsOpen() {
		return 0, ErrJobClosed
	}
	// 状态和负责人不允许通过更新修改
	job.Status = old.Status
	job.OwnerID = old.OwnerID
	err = s.repo.Update(ctx, job)
	if errors.Is(err, repository.ErrJobNotOpen) {
		return 0, ErrJobClosed
	}
	return job.ID, err
}

func (s *jobService) checkOwner(actor identity.Actor, job domain.Job) error {
	if actor.IsAdmin() || job.OwnerID == actor.ID {
		return nil
	}
	return fmt.Errorf("%w: uid %d 不是职位 %d 的负责人", ErrUnauthorized, actor.ID, job.ID)
}

func (s *jobService) Close(ctx context.Context, actor identity.Actor, id int64) error {
	if !actor.Valid() || !actor.IsStaff() {
		return fmt.Errorf("%w: 只有招聘者和管理员可以关闭职位", ErrUnauthorized)
	}
	job, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if err = s.checkOwner(actor, job); err != nil {
		return err
	}
	if !job.IsOpen() {
		return nil
	}
	return s.repo.Close(ctx, id)
}

func (s *jobService) GetJob(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindById(ctx, id)
}

func (s *jobService) JobExists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.FindById(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrJobNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *jobService) List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.ListOpen(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountOpen(ctx)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *jobService) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.ListByOwner(ctx, ownerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByOwner(ctx, ownerID)
		return err
	})
	return jobs, total, eg.Wait()
}
