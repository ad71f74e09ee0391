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
	"time"

	"github.com/ecodeclub/hirehub/internal/attachment"
	"github.com/ecodeclub/hirehub/internal/jobposting"
	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/ecodeclub/hirehub/internal/pkg/sngenerator"
	"github.com/ecodeclub/hirehub/internal/submission/internal/domain"
	"github.com/ecodeclub/hirehub/internal/submission/internal/event"
	"github.com/ecodeclub/hirehub/internal/submission/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSubmissionNotFound = repository.ErrSubmissionNotFound
	// ErrConflict 并发修改，调用方重新读取之后可以重试
	ErrConflict           = repository.ErrVersionConflict
	ErrUnauthorized       = domain.ErrUnauthorized
	ErrJobNotFound        = domain.ErrJobNotFound
	ErrJobClosed          = domain.ErrJobClosed
	ErrInvalidStatus      = domain.ErrInvalidStatus
	ErrTerminalSubmission = domain.ErrTerminalSubmission
)

type Service interface {
	// Create 只有候选人可以为自己投递，并且职位必须是 OPEN
	Create(ctx context.Context, actor identity.Actor, s domain.Submission) (domain.Submission, error)
	Transition(ctx context.Context, actor identity.Actor, id int64, target domain.Status, note string) (domain.Submission, error)
	Withdraw(ctx context.Context, actor identity.Actor, id int64, note string) (domain.Submission, error)
	HasApplied(ctx context.Context, actor identity.Actor, candidateID, jobID int64) (bool, error)
	Latest(ctx context.Context, actor identity.Actor, candidateID, jobID int64) (domain.Submission, error)
	MarkRead(ctx context.Context, actor identity.Actor, id int64) error
	AttachResume(ctx context.Context, actor identity.Actor, id int64, ref attachment.Ref) (domain.Submission, error)
	// Detail 带上完整的状态记录
	Detail(ctx context.Context, actor identity.Actor, id int64) (domain.Submission, error)
	List(ctx context.Context, actor identity.Actor, f domain.Filter, offset, limit int) ([]domain.Submission, int64, error)
}

type submissionService struct {
	repo     repository.SubmissionRepository
	jobSvc   jobposting.Service
	notifier event.Notifier
	sn       *sngenerator.Generator
	nowFunc  func() time.Time
	logger   *elog.Component
}

func NewService(repo repository.SubmissionRepository,
	jobSvc jobposting.Service,
	notifier event.Notifier) Service {
	return &submissionService{
		repo:     repo,
		jobSvc:   jobSvc,
		notifier: notifier,
		sn:       sngenerator.NewGenerator("S"),
		nowFunc:  time.Now,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("submission.service")),
	}
}

func (s *submissionService) Create(ctx context.Context, actor identity.Actor, sub domain.Submission) (domain.Submission, error) {
	if !actor.Valid() || !actor.IsCandidate() {
		return domain.Submission{}, fmt.Errorf("%w: 只有候选人可以投递", ErrUnauthorized)
	}
	if sub.CandidateID == 0 {
		sub.CandidateID = actor.ID
	}
	if sub.CandidateID != actor.ID {
		return domain.Submission{}, fmt.Errorf("%w: 不能替别人投递", ErrUnauthorized)
	}
	if sub.HasResume() {
		if err := sub.Resume.Validate(); err != nil {
			return domain.Submission{}, err
		}
	}
	job, err := s.jobSvc.GetJob(ctx, sub.JobID)
	if errors.Is(err, jobposting.ErrJobNotFound) {
		return domain.Submission{}, fmt.Errorf("%w: jobId=%d", ErrJobNotFound, sub.JobID)
	}
	if err != nil {
		return domain.Submission{}, err
	}
	if !job.IsOpen() {
		return domain.Submission{}, fmt.Errorf("%w: jobId=%d", ErrJobClosed, sub.JobID)
	}

	now := s.nowFunc().UnixMilli()
	res := domain.Submission{
		SN:          s.sn.Generate(actor.ID),
		CandidateID: actor.ID,
		JobID:       job.ID,
		RecruiterID: job.OwnerID,
		Status:      domain.StatusSubmitted,
		Resume:      sub.Resume,
		Comments:    sub.Comments,
		Version:     1,
		History: []domain.StatusChange{
			{To: domain.StatusSubmitted, ChangedBy: actor.ID, Ctime: now},
		},
		Ctime: now,
		Utime: now,
	}
	res.ID, err = s.repo.Create(ctx, res)
	if err != nil {
		return domain.Submission{}, err
	}
	return res, nil
}

func (s *submissionService) Transition(ctx context.Context, actor identity.Actor, id int64,
	target domain.Status, note string) (domain.Submission, error) {
	if !actor.Valid() {
		return domain.Submission{}, ErrUnauthorized
	}
	if !target.IsValid() {
		return domain.Submission{}, fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}
	if actor.IsCandidate() && target != domain.StatusWithdrawn {
		return domain.Submission{}, fmt.Errorf("%w: 候选人只能撤回投递", ErrUnauthorized)
	}
	sub, err := s.repo.FindWithHistory(ctx, id)
	if err != nil {
		return domain.Submission{}, err
	}
	if err = s.checkAccess(actor, sub); err != nil {
		return domain.Submission{}, err
	}
	if !sub.Status.CanTransitTo(target) {
		return domain.Submission{}, &domain.IllegalTransitionError{Current: sub.Status, Target: target}
	}

	now := s.nowFunc().UnixMilli()
	change := domain.StatusChange{
		From:      sub.Status,
		To:        target,
		ChangedBy: actor.ID,
		Note:      note,
		Ctime:     now,
	}
	// 候选人撤回之后，招聘者需要重新查看
	clearRead := actor.IsCandidate()
	if err = s.repo.Transition(ctx, sub, change, clearRead); err != nil {
		return domain.Submission{}, err
	}

	sub.Status = target
	sub.Version++
	sub.Utime = now
	if clearRead {
		sub.RecruiterRead = false
	}
	sub.History = append(sub.History, change)
	s.notify(ctx, sub, change)
	return sub, nil
}

// notify 通知失败不影响状态变更
func (s *submissionService) notify(ctx context.Context, sub domain.Submission, change domain.StatusChange) {
	err := s.notifier.Notify(ctx, event.TransitionEvent{
		SubmissionID:     sub.ID,
		SN:               sub.SN,
		JobID:            sub.JobID,
		FromStatus:       change.From.String(),
		ToStatus:         change.To.String(),
		CandidateID:      sub.CandidateID,
		RecruiterOwnerID: sub.RecruiterID,
		ChangedBy:        change.ChangedBy,
		Note:             change.Note,
		Ctime:            change.Ctime,
	})
	if err != nil {
		s.logger.Error("发送投递状态变更通知失败",
			elog.Int64("submissionId", sub.ID),
			elog.String("from", change.From.String()),
			elog.String("to", change.To.String()),
			elog.FieldErr(err))
	}
}

func (s *submissionService) Withdraw(ctx context.Context, actor identity.Actor, id int64, note string) (domain.Submission, error) {
	return s.Transition(ctx, actor, id, domain.StatusWithdrawn, note)
}

func (s *submissionService) HasApplied(ctx context.Context, actor identity.Actor, candidateID, jobID int64) (bool, error) {
	candidateID, err := s.candidateOf(actor, candidateID)
	if err != nil {
		return false, err
	}
	return s.repo.HasApplied(ctx, candidateID, jobID)
}

func (s *submissionService) Latest(ctx context.Context, actor identity.Actor, candidateID, jobID int64) (domain.Submission, error) {
	candidateID, err := s.candidateOf(actor, candidateID)
	if err != nil {
		return domain.Submission{}, err
	}
	sub, err := s.repo.Latest(ctx, candidateID, jobID)
	if err != nil {
		return domain.Submission{}, err
	}
	if err = s.checkAccess(actor, sub); err != nil {
		return domain.Submission{}, err
	}
	return sub, nil
}

// candidateOf 候选人只能查询自己，0 表示自己
func (s *submissionService) candidateOf(actor identity.Actor, candidateID int64) (int64, error) {
	if !actor.Valid() {
		return 0, ErrUnauthorized
	}
	if !actor.IsCandidate() {
		return candidateID, nil
	}
	if candidateID != 0 && candidateID != actor.ID {
		return 0, fmt.Errorf("%w: 不能查询别人的投递", ErrUnauthorized)
	}
	return actor.ID, nil
}

func (s *submissionService) MarkRead(ctx context.Context, actor identity.Actor, id int64) error {
	if !actor.Valid() || !actor.IsStaff() {
		return fmt.Errorf("%w: 只有招聘者可以标记已读", ErrUnauthorized)
	}
	sub, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if err = s.checkAccess(actor, sub); err != nil {
		return err
	}
	if sub.RecruiterRead {
		return nil
	}
	return s.repo.MarkRead(ctx, id, sub.Version)
}

func (s *submissionService) AttachResume(ctx context.Context, actor identity.Actor, id int64, ref attachment.Ref) (domain.Submission, error) {
	if !actor.Valid() || actor.IsRecruiter() {
		return domain.Submission{}, fmt.Errorf("%w: 只有投递人和管理员可以更换简历", ErrUnauthorized)
	}
	if err := ref.Validate(); err != nil {
		return domain.Submission{}, err
	}
	sub, err := s.repo.FindWithHistory(ctx, id)
	if err != nil {
		return domain.Submission{}, err
	}
	if err = s.checkAccess(actor, sub); err != nil {
		return domain.Submission{}, err
	}
	if sub.Status.IsTerminal() {
		return domain.Submission{}, fmt.Errorf("%w: 当前状态 %s，不能更换简历", ErrTerminalSubmission, sub.Status)
	}
	now := s.nowFunc().UnixMilli()
	if err = s.repo.UpdateResume(ctx, id, sub.Version, ref, now); err != nil {
		return domain.Submission{}, err
	}
	sub.Resume = ref
	sub.Version++
	sub.Utime = now
	return sub, nil
}

func (s *submissionService) Detail(ctx context.Context, actor identity.Actor, id int64) (domain.Submission, error) {
	if !actor.Valid() {
		return domain.Submission{}, ErrUnauthorized
	}
	sub, err := s.repo.FindWithHistory(ctx, id)
	if err != nil {
		return domain.Submission{}, err
	}
	if err = s.checkAccess(actor, sub); err != nil {
		return domain.Submission{}, err
	}
	return sub, nil
}

func (s *submissionService) List(ctx context.Context, actor identity.Actor, f domain.Filter,
	offset, limit int) ([]domain.Submission, int64, error) {
	f, err := scopeFilter(actor, f)
	if err != nil {
		return nil, 0, err
	}
	var (
		eg    errgroup.Group
		subs  []domain.Submission
		total int64
	)
	eg.Go(func() error {
		var err error
		subs, err = s.repo.List(ctx, f, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, f)
		return err
	})
	return subs, total, eg.Wait()
}

// checkAccess 候选人只能操作自己的投递，招聘者只能操作自己职位下的投递
func (s *submissionService) checkAccess(actor identity.Actor, sub domain.Submission) error {
	switch {
	case actor.IsAdmin():
		return nil
	case actor.IsRecruiter() && sub.RecruiterID == actor.ID:
		return nil
	case actor.IsCandidate() && sub.IsOwnedByCandidate(actor.ID):
		return nil
	}
	return fmt.Errorf("%w: uid=%d, submissionId=%d", ErrUnauthorized, actor.ID, sub.ID)
}
