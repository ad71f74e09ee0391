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
	"fmt"

	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/ecodeclub/hirehub/internal/submission/internal/domain"
	"github.com/ecodeclub/hirehub/internal/submission/internal/repository"
)

type PipelineService interface {
	// Stats 统计当前角色可见范围内的投递
	Stats(ctx context.Context, actor identity.Actor, f domain.Filter) (domain.PipelineStats, error)
	StageTime(ctx context.Context, actor identity.Actor, f domain.Filter, from, to domain.Status) (domain.StageDuration, error)
	// Recruiters 按招聘者汇总，只有管理员可以查看
	Recruiters(ctx context.Context, actor identity.Actor) ([]domain.RecruiterStat, error)
}

type pipelineService struct {
	repo repository.SubmissionRepository
}

func NewPipelineService(repo repository.SubmissionRepository) PipelineService {
	return &pipelineService{repo: repo}
}

func (s *pipelineService) Stats(ctx context.Context, actor identity.Actor, f domain.Filter) (domain.PipelineStats, error) {
	subs, err := s.snapshot(ctx, actor, f)
	if err != nil {
		return domain.PipelineStats{}, err
	}
	return domain.Summarize(subs), nil
}

func (s *pipelineService) StageTime(ctx context.Context, actor identity.Actor, f domain.Filter,
	from, to domain.Status) (domain.StageDuration, error) {
	if !from.IsValid() || !to.IsValid() {
		return domain.StageDuration{}, fmt.Errorf("%w: from=%q, to=%q", ErrInvalidStatus, from, to)
	}
	subs, err := s.snapshot(ctx, actor, f)
	if err != nil {
		return domain.StageDuration{}, err
	}
	return domain.NewStageDuration(subs, from, to), nil
}

func (s *pipelineService) Recruiters(ctx context.Context, actor identity.Actor) ([]domain.RecruiterStat, error) {
	if !actor.Valid() || !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: 只有管理员可以查看", ErrUnauthorized)
	}
	subs, err := s.repo.Snapshot(ctx, domain.Filter{})
	if err != nil {
		return nil, err
	}
	return domain.RecruiterReport(subs), nil
}

func (s *pipelineService) snapshot(ctx context.Context, actor identity.Actor, f domain.Filter) ([]domain.Submission, error) {
	f, err := scopeFilter(actor, f)
	if err != nil {
		return nil, err
	}
	return s.repo.Snapshot(ctx, f)
}
