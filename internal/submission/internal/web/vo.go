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

package web

import (
	"github.com/ecodeclub/ekit/mapx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirehub/internal/attachment"
	"github.com/ecodeclub/hirehub/internal/submission/internal/domain"
)

type Resume struct {
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"sizeBytes"`
	ContentType string `json:"contentType"`
	StorageKey  string `json:"storageKey"`
	UploadedAt  int64  `json:"uploadedAt"`
}

func newResume(ref attachment.Ref) *Resume {
	if ref.IsZero() {
		return nil
	}
	return &Resume{
		Filename:    ref.Filename,
		SizeBytes:   ref.SizeBytes,
		ContentType: ref.ContentType,
		StorageKey:  ref.StorageKey,
		UploadedAt:  ref.UploadedAt,
	}
}

func (r *Resume) toRef() attachment.Ref {
	if r == nil {
		return attachment.Ref{}
	}
	return attachment.Ref{
		Filename:    r.Filename,
		SizeBytes:   r.SizeBytes,
		ContentType: r.ContentType,
		StorageKey:  r.StorageKey,
		UploadedAt:  r.UploadedAt,
	}
}

type StatusChange struct {
	From      string `json:"from,omitempty"`
	To        string `json:"to"`
	ChangedBy int64  `json:"changedBy"`
	Note      string `json:"note,omitempty"`
	Ctime     int64  `json:"ctime"`
}

type Submission struct {
	ID            int64   `json:"id"`
	SN            string  `json:"sn"`
	CandidateID   int64   `json:"candidateId"`
	JobID         int64   `json:"jobId"`
	RecruiterID   int64   `json:"recruiterId"`
	Status        string  `json:"status"`
	Resume        *Resume `json:"resume,omitempty"`
	Comments      string  `json:"comments,omitempty"`
	RecruiterRead bool    `json:"recruiterRead"`
	Version       int64   `json:"version"`
	// AllowedTargets 当前状态可以流转到的状态，方便前端展示按钮
	AllowedTargets []string       `json:"allowedTargets"`
	History        []StatusChange `json:"history,omitempty"`
	Ctime          int64          `json:"ctime"`
	Utime          int64          `json:"utime"`
}

func newSubmission(s domain.Submission) Submission {
	return Submission{
		ID:            s.ID,
		SN:            s.SN,
		CandidateID:   s.CandidateID,
		JobID:         s.JobID,
		RecruiterID:   s.RecruiterID,
		Status:        s.Status.String(),
		Resume:        newResume(s.Resume),
		Comments:      s.Comments,
		RecruiterRead: s.RecruiterRead,
		Version:       s.Version,
		AllowedTargets: slice.Map(s.Status.AllowedTargets(), func(idx int, src domain.Status) string {
			return src.String()
		}),
		History: slice.Map(s.History, func(idx int, src domain.StatusChange) StatusChange {
			return StatusChange{
				From:      src.From.String(),
				To:        src.To.String(),
				ChangedBy: src.ChangedBy,
				Note:      src.Note,
				Ctime:     src.Ctime,
			}
		}),
		Ctime: s.Ctime,
		Utime: s.Utime,
	}
}

type CreateReq struct {
	JobID    int64   `json:"jobId"`
	Resume   *Resume `json:"resume,omitempty"`
	Comments string  `json:"comments,omitempty"`
}

type TransitionReq struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type WithdrawReq struct {
	ID   int64  `json:"id"`
	Note string `json:"note,omitempty"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

// PairReq 候选人查询自己时 candidateId 可以不传
type PairReq struct {
	CandidateID int64 `json:"candidateId,omitempty"`
	JobID       int64 `json:"jobId"`
}

type AttachResumeReq struct {
	ID     int64  `json:"id"`
	Resume Resume `json:"resume"`
}

type FilterReq struct {
	CandidateID int64  `json:"candidateId,omitempty"`
	JobID       int64  `json:"jobId,omitempty"`
	RecruiterID int64  `json:"recruiterId,omitempty"`
	Status      string `json:"status,omitempty"`
}

func (f FilterReq) toDomain() domain.Filter {
	return domain.Filter{
		CandidateID: f.CandidateID,
		JobID:       f.JobID,
		RecruiterID: f.RecruiterID,
		Status:      parseStatus(f.Status),
	}
}

// parseStatus 不合法的状态原样交给 service 报错
func parseStatus(raw string) domain.Status {
	if raw == "" {
		return ""
	}
	st, ok := domain.ParseStatus(raw)
	if !ok {
		return domain.Status(raw)
	}
	return st
}

type ListReq struct {
	FilterReq
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type SubmissionList struct {
	Total int64        `json:"total"`
	List  []Submission `json:"list"`
}

type StageTimeReq struct {
	FilterReq
	From string `json:"from"`
	To   string `json:"to"`
}

// IllegalTransition 非法流转时返回当前状态，前端据此刷新
type IllegalTransition struct {
	Current        string   `json:"current"`
	Target         string   `json:"target"`
	AllowedTargets []string `json:"allowedTargets"`
}

type StatusShare struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type FunnelStage struct {
	Status         string  `json:"status"`
	Count          int     `json:"count"`
	ConversionRate float64 `json:"conversionRate"`
}

// StageDuration 数据不足的时候 avgDays 是 null
type StageDuration struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	AvgDays *float64 `json:"avgDays"`
}

func newStageDuration(d domain.StageDuration) StageDuration {
	res := StageDuration{From: d.From.String(), To: d.To.String()}
	if d.Valid {
		avg := d.AvgDays
		res.AvgDays = &avg
	}
	return res
}

type StageTime struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	AvgDays float64 `json:"avgDays"`
	Count   int     `json:"count"`
}

type PipelineStats struct {
	Total         int             `json:"total"`
	CountByStatus map[string]int  `json:"countByStatus"`
	Shares        []StatusShare   `json:"shares"`
	WinRate       float64         `json:"winRate"`
	Unread        int             `json:"unread"`
	Funnel        []FunnelStage   `json:"funnel"`
	Durations     []StageDuration `json:"durations"`
	StageTimes    []StageTime     `json:"stageTimes"`
}

func newPipelineStats(s domain.PipelineStats) PipelineStats {
	counts := make(map[string]int, len(s.CountByStatus))
	for _, st := range mapx.Keys(s.CountByStatus) {
		counts[st.String()] = s.CountByStatus[st]
	}
	return PipelineStats{
		Total:         s.Total,
		CountByStatus: counts,
		Shares: slice.Map(s.Shares, func(idx int, src domain.StatusShare) StatusShare {
			return StatusShare{Status: src.Status.String(), Count: src.Count, Percentage: src.Percentage}
		}),
		WinRate: s.WinRate,
		Unread:  s.Unread,
		Funnel: slice.Map(s.Funnel, func(idx int, src domain.FunnelStage) FunnelStage {
			return FunnelStage{Status: src.Status.String(), Count: src.Count, ConversionRate: src.ConversionRate}
		}),
		Durations: slice.Map(s.Durations, func(idx int, src domain.StageDuration) StageDuration {
			return newStageDuration(src)
		}),
		StageTimes: slice.Map(s.StageTimes, func(idx int, src domain.StageTime) StageTime {
			return StageTime{From: src.From.String(), To: src.To.String(), AvgDays: src.AvgDays, Count: src.Count}
		}),
	}
}

type RecruiterStat struct {
	RecruiterID int64   `json:"recruiterId"`
	Total       int     `json:"total"`
	Interviews  int     `json:"interviews"`
	Offers      int     `json:"offers"`
	Joined      int     `json:"joined"`
	WinRate     float64 `json:"winRate"`
}
