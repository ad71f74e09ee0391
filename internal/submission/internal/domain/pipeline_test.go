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

package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = int64(24 * 60 * 60 * 1000)

// sub 按照给定的状态顺序构造历史，每一步间隔 gapDays 天
func sub(id, recruiter int64, read bool, gapDays int64, path ...Status) Submission {
	history := make([]StatusChange, 0, len(path))
	var prev Status
	for i, st := range path {
		history = append(history, StatusChange{
			ID:    id*100 + int64(i),
			From:  prev,
			To:    st,
			Ctime: int64(i) * gapDays * day,
		})
		prev = st
	}
	return Submission{
		ID:            id,
		RecruiterID:   recruiter,
		Status:        path[len(path)-1],
		RecruiterRead: read,
		History:       history,
	}
}

func samples() []Submission {
	return []Submission{
		sub(1, 100, false, 1, StatusSubmitted),
		sub(2, 100, true, 2, StatusSubmitted, StatusUnderReview, StatusInterview, StatusOffer, StatusJoined),
		sub(3, 101, false, 3, StatusSubmitted, StatusInterview, StatusRejected),
		sub(4, 101, true, 1, StatusSubmitted, StatusOnHold, StatusOffer, StatusJoined),
		sub(5, 100, false, 4, StatusSubmitted, StatusWithdrawn),
	}
}

func TestCountByStatus(t *testing.T) {
	assert.Equal(t, map[Status]int{
		StatusSubmitted: 1,
		StatusJoined:    2,
		StatusRejected:  1,
		StatusWithdrawn: 1,
	}, CountByStatus(samples()))
	assert.Empty(t, CountByStatus(nil))
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, 0.0, WinRate(nil))
	assert.InDelta(t, 0.4, WinRate(samples()), 1e-9)
}

func TestAverageDaysInStage(t *testing.T) {
	testCases := []struct {
		name   string
		subs   []Submission
		from   Status
		to     Status
		want   float64
		wantOk bool
	}{
		{
			name: "没有数据",
			from: StatusSubmitted,
			to:   StatusInterview,
		},
		{
			name: "没有投递经历过这两个阶段",
			subs: samples(),
			from: StatusInterview,
			to:   StatusWithdrawn,
		},
		{
			name: "SUBMITTED 到 INTERVIEW",
			subs: samples(),
			from: StatusSubmitted,
			to:   StatusInterview,
			// 2 号 4 天，3 号 3 天
			want:   3.5,
			wantOk: true,
		},
		{
			name: "OFFER 到 JOINED",
			subs: samples(),
			from: StatusOffer,
			to:   StatusJoined,
			// 2 号 2 天，4 号 1 天
			want:   1.5,
			wantOk: true,
		},
		{
			name: "to 在 from 之前出现不算",
			subs: []Submission{
				sub(1, 100, false, 1, StatusSubmitted, StatusOnHold, StatusInterview, StatusOnHold),
			},
			from:   StatusInterview,
			to:     StatusOnHold,
			want:   1,
			wantOk: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AverageDaysInStage(tc.subs, tc.from, tc.to)
			assert.Equal(t, tc.wantOk, ok)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestUnreadCount(t *testing.T) {
	assert.Equal(t, 3, UnreadCount(samples()))
	assert.Equal(t, 0, UnreadCount(nil))
}

func TestStatusShares(t *testing.T) {
	assert.Equal(t, []StatusShare{
		{Status: StatusJoined, Count: 2, Percentage: 40},
		{Status: StatusRejected, Count: 1, Percentage: 20},
		{Status: StatusSubmitted, Count: 1, Percentage: 20},
		{Status: StatusWithdrawn, Count: 1, Percentage: 20},
	}, StatusShares(samples()))

	three := []Submission{
		sub(1, 1, false, 1, StatusSubmitted),
		sub(2, 1, false, 1, StatusSubmitted),
		sub(3, 1, false, 1, StatusSubmitted, StatusRejected),
	}
	assert.Equal(t, []StatusShare{
		{Status: StatusSubmitted, Count: 2, Percentage: 66.67},
		{Status: StatusRejected, Count: 1, Percentage: 33.33},
	}, StatusShares(three))
}

func TestFunnel(t *testing.T) {
	assert.Equal(t, []FunnelStage{
		{Status: StatusSubmitted, Count: 5, ConversionRate: 100},
		// 2，3，4 号。4 号跳过了 INTERVIEW 也算
		{Status: StatusInterview, Count: 3, ConversionRate: 60},
		{Status: StatusOffer, Count: 2, ConversionRate: 66.67},
		{Status: StatusJoined, Count: 2, ConversionRate: 100},
	}, Funnel(samples()))

	assert.Equal(t, []FunnelStage{
		{Status: StatusSubmitted},
		{Status: StatusInterview},
		{Status: StatusOffer},
		{Status: StatusJoined},
	}, Funnel(nil))
}

func TestRecruiterReport(t *testing.T) {
	assert.Equal(t, []RecruiterStat{
		{RecruiterID: 100, Total: 3, Interviews: 1, Offers: 1, Joined: 1, WinRate: 33.33},
		{RecruiterID: 101, Total: 2, Interviews: 2, Offers: 1, Joined: 1, WinRate: 50},
	}, RecruiterReport(samples()))
}

func TestStageTimes(t *testing.T) {
	res := StageTimes(samples())
	require.NotEmpty(t, res)
	// 每个投递都从 SUBMITTED 出发，一共 4 次
	total := 0
	for _, st := range res {
		if st.From == StatusSubmitted {
			total += st.Count
		}
	}
	assert.Equal(t, 4, total)
	assert.Contains(t, res, StageTime{From: StatusOffer, To: StatusJoined, AvgDays: 1.5, Count: 2})
}

// 聚合结果和输入顺序无关
func TestPipeline_OrderIndependent(t *testing.T) {
	base := samples()
	wantAvg, _ := AverageDaysInStage(base, StatusSubmitted, StatusInterview)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]Submission, len(base))
		copy(shuffled, base)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, CountByStatus(base), CountByStatus(shuffled))
		assert.Equal(t, WinRate(base), WinRate(shuffled))
		assert.Equal(t, UnreadCount(base), UnreadCount(shuffled))
		assert.Equal(t, StatusShares(base), StatusShares(shuffled))
		assert.Equal(t, Funnel(base), Funnel(shuffled))
		assert.Equal(t, RecruiterReport(base), RecruiterReport(shuffled))
		assert.Equal(t, StageTimes(base), StageTimes(shuffled))
		avg, ok := AverageDaysInStage(shuffled, StatusSubmitted, StatusInterview)
		assert.True(t, ok)
		assert.Equal(t, wantAvg, avg)
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize(samples())
	assert.Equal(t, 5, stats.Total)
	assert.InDelta(t, 0.4, stats.WinRate, 1e-9)
	assert.Equal(t, 3, stats.Unread)
	assert.Equal(t, StatusShares(samples()), stats.Shares)
	assert.Equal(t, Funnel(samples()), stats.Funnel)
	assert.Equal(t, []StageDuration{
		{From: StatusSubmitted, To: StatusInterview, AvgDays: 3.5, Valid: true},
		{From: StatusInterview, To: StatusOffer, AvgDays: 2, Valid: true},
		{From: StatusOffer, To: StatusJoined, AvgDays: 1.5, Valid: true},
	}, stats.Durations)

	empty := Summarize(nil)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0.0, empty.WinRate)
	require.Len(t, empty.Durations, 3)
	for _, d := range empty.Durations {
		assert.False(t, d.Valid)
	}
}
