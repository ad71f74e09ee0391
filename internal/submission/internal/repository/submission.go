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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hirehub/internal/attachment"
	"github.com/ecodeclub/hirehub/internal/submission/internal/domain"
	"github.com/ecodeclub/hirehub/internal/submission/internal/repository/cache"
	"github.com/ecodeclub/hirehub/internal/submission/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

// historyBatchSize 查询状态记录时 IN 条件的最大长度
const historyBatchSize = 500

var (
	ErrSubmissionNotFound = dao.ErrRecordNotFound
	ErrVersionConflict    = dao.ErrVersionConflict
)

//go:generate mockgen -source=./submission.go -package=repomocks -destination=./mocks/submission.mock.go SubmissionRepository
type SubmissionRepository interface {
	// Create History 里面的第一条作为初始状态记录
	Create(ctx context.Context, s domain.Submission) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Submission, error)
	FindWithHistory(ctx context.Context, id int64) (domain.Submission, error)
	// Transition 使用 s.Version 做乐观锁
	Transition(ctx context.Context, s domain.Submission, change domain.StatusChange, clearRead bool) error
	MarkRead(ctx context.Context, id, version int64) error
	UpdateResume(ctx context.Context, id, version int64, ref attachment.Ref, utime int64) error
	Latest(ctx context.Context, candidateID, jobID int64) (domain.Submission, error)
	HasApplied(ctx context.Context, candidateID, jobID int64) (bool, error)
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Submission, error)
	Count(ctx context.Context, f domain.Filter) (int64, error)
	// Snapshot 符合条件的全部投递，带状态记录
	Snapshot(ctx context.Context, f domain.Filter) ([]domain.Submission, error)
}

type submissionRepository struct {
	dao    dao.SubmissionDAO
	cache  cache.AppliedCache
	logger *elog.Component
}

func NewSubmissionRepository(d dao.SubmissionDAO, c cache.AppliedCache) SubmissionRepository {
	return &submissionRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("submission.repository")),
	}
}

func (r *submissionRepository) Create(ctx context.Context, s domain.Submission) (int64, error) {
	var first domain.StatusChange
	if len(s.History) > 0 {
		first = s.History[0]
	}
	id, err := r.dao.Create(ctx, r.toEntity(s), r.toHistoryEntity(first))
	if err != nil {
		return 0, err
	}
	if err = r.cache.SetApplied(ctx, s.CandidateID, s.JobID); err != nil {
		r.logger.Error("写入投递缓存失败",
			elog.Int64("candidateId", s.CandidateID),
			elog.Int64("jobId", s.JobID),
			elog.FieldErr(err))
	}
	return id, nil
}

func (r *submissionRepository) FindById(ctx context.Context, id int64) (domain.Submission, error) {
	s, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Submission{}, err
	}
	return r.toDomain(s), nil
}

func (r *submissionRepository) FindWithHistory(ctx context.Context, id int64) (domain.Submission, error) {
	s, err := r.FindById(ctx, id)
	if err != nil {
		return domain.Submission{}, err
	}
	hs, err := r.dao.FindHistories(ctx, []int64{id})
	if err != nil {
		return domain.Submission{}, err
	}
	s.History = slice.Map(hs, func(idx int, src dao.StatusHistory) domain.StatusChange {
		return r.toStatusChange(src)
	})
	return s, nil
}

func (r *submissionRepository) Transition(ctx context.Context, s domain.Submission, change domain.StatusChange, clearRead bool) error {
	return r.dao.Transition(ctx, s.ID, s.Version, clearRead, r.toHistoryEntity(change))
}

func (r *submissionRepository) MarkRead(ctx context.Context, id, version int64) error {
	return r.dao.MarkRead(ctx, id, version)
}

func (r *submissionRepository) UpdateResume(ctx context.Context, id, version int64, ref attachment.Ref, utime int64) error {
	return r.dao.UpdateResume(ctx, id, version, toResumeEntity(ref), utime)
}

func (r *submissionRepository) Latest(ctx context.Context, candidateID, jobID int64) (domain.Submission, error) {
	s, err := r.dao.Latest(ctx, candidateID, jobID)
	if err != nil {
		return domain.Submission{}, err
	}
	return r.toDomain(s), nil
}

func (r *submissionRepository) HasApplied(ctx context.Context, candidateID, jobID int64) (bool, error) {
	applied, err := r.cache.IsApplied(ctx, candidateID, jobID)
	if err != nil {
		r.logger.Error("查询投递缓存失败",
			elog.Int64("candidateId", candidateID),
			elog.Int64("jobId", jobID),
			elog.FieldErr(err))
	}
	if applied {
		return true, nil
	}
	applied, err = r.dao.Exists(ctx, candidateID, jobID)
	if err != nil || !applied {
		return false, err
	}
	if err = r.cache.SetApplied(ctx, candidateID, jobID); err != nil {
		r.logger.Error("写入投递缓存失败",
			elog.Int64("candidateId", candidateID),
			elog.Int64("jobId", jobID),
			elog.FieldErr(err))
	}
	return true, nil
}

func (r *submissionRepository) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Submission, error) {
	subs, err := r.dao.List(ctx, toFilterEntity(f), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(subs, func(idx int, src dao.Submission) domain.Submission {
		return r.toDomain(src)
	}), nil
}

func (r *submissionRepository) Count(ctx context.Context, f domain.Filter) (int64, error) {
	return r.dao.Count(ctx, toFilterEntity(f))
}

func (r *submissionRepository) Snapshot(ctx context.Context, f domain.Filter) ([]domain.Submission, error) {
	entities, err := r.dao.FindAll(ctx, toFilterEntity(f))
	if err != nil {
		return nil, err
	}
	subs := slice.Map(entities, func(idx int, src dao.Submission) domain.Submission {
		return r.toDomain(src)
	})
	index := make(map[int64]int, len(subs))
	for i, s := range subs {
		index[s.ID] = i
	}
	ids := slice.Map(subs, func(idx int, src domain.Submission) int64 {
		return src.ID
	})
	for start := 0; start < len(ids); start += historyBatchSize {
		end := min(start+historyBatchSize, len(ids))
		hs, err := r.dao.FindHistories(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		for _, h := range hs {
			i, ok := index[h.Sid]
			if !ok {
				continue
			}
			subs[i].History = append(subs[i].History, r.toStatusChange(h))
		}
	}
	return subs, nil
}

func (r *submissionRepository) toEntity(s domain.Submission) dao.Submission {
	return dao.Submission{
		Id:          s.ID,
		Sn:          s.SN,
		CandidateId: s.CandidateID,
		JobId:       s.JobID,
		RecruiterId: s.RecruiterID,
		Status:      s.Status.String(),
		Resume: sqlx.JsonColumn[dao.Resume]{
			Val:   toResumeEntity(s.Resume),
			Valid: !s.Resume.IsZero(),
		},
		Comments:      s.Comments,
		RecruiterRead: s.RecruiterRead,
		Version:       s.Version,
		Ctime:         s.Ctime,
		Utime:         s.Utime,
	}
}

func (r *submissionRepository) toDomain(s dao.Submission) domain.Submission {
	res := domain.Submission{
		ID:            s.Id,
		SN:            s.Sn,
		CandidateID:   s.CandidateId,
		JobID:         s.JobId,
		RecruiterID:   s.RecruiterId,
		Status:        domain.Status(s.Status),
		Comments:      s.Comments,
		RecruiterRead: s.RecruiterRead,
		Version:       s.Version,
		Ctime:         s.Ctime,
		Utime:         s.Utime,
	}
	if s.Resume.Valid {
		res.Resume = attachment.Ref{
			Filename:    s.Resume.Val.Filename,
			SizeBytes:   s.Resume.Val.SizeBytes,
			ContentType: s.Resume.Val.ContentType,
			StorageKey:  s.Resume.Val.StorageKey,
			UploadedAt:  s.Resume.Val.UploadedAt,
		}
	}
	return res
}

func (r *submissionRepository) toHistoryEntity(c domain.StatusChange) dao.StatusHistory {
	return dao.StatusHistory{
		Id:         c.ID,
		FromStatus: c.From.String(),
		ToStatus:   c.To.String(),
		ChangedBy:  c.ChangedBy,
		Note:       c.Note,
		Ctime:      c.Ctime,
	}
}

func (r *submissionRepository) toStatusChange(h dao.StatusHistory) domain.StatusChange {
	return domain.StatusChange{
		ID:        h.Id,
		From:      domain.Status(h.FromStatus),
		To:        domain.Status(h.ToStatus),
		ChangedBy: h.ChangedBy,
		Note:      h.Note,
		Ctime:     h.Ctime,
	}
}

func toResumeEntity(ref attachment.Ref) dao.Resume {
	return dao.Resume{
		Filename:    ref.Filename,
		SizeBytes:   ref.SizeBytes,
		ContentType: ref.ContentType,
		StorageKey:  ref.StorageKey,
		UploadedAt:  ref.UploadedAt,
	}
}

func toFilterEntity(f domain.Filter) dao.Filter {
	return dao.Filter{
		CandidateId: f.CandidateID,
		JobId:       f.JobID,
		RecruiterId: f.RecruiterID,
		Status:      f.Status.String(),
	}
}
