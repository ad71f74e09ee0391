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
	"math"
	"sort"
)

const msPerDay = float64(24 * 60 * 60 * 1000)

// funnelStages 漏斗的阶段，顺序有意义
var funnelStages = []Status{StatusSubmitted, StatusInterview, StatusOffer, StatusJoined}

type StatusShare struct {
	Status Status
	Count  int
	// Percentage 百分比，保留两位小数
	Percentage float64
}

type FunnelStage struct {
	Status Status
	Count  int
	// ConversionRate 相对上一阶段的转化率，百分比
	ConversionRate float64
}

type RecruiterStat struct {
	RecruiterID int64
	Total       int
	Interviews  int
	Offers      int
	Joined      int
	// WinRate 百分比
	WinRate float64
}

// StageTime 相邻两次状态变更之间的平均耗时
type StageTime struct {
	From    Status
	To      Status
	AvgDays float64
	Count   int
}

func CountByStatus(subs []Submission) map[Status]int {
	res := make(map[Status]int, len(statuses))
	for _, s := range subs {
		res[s.Status]++
	}
	return res
}

// WinRate JOINED 的占比，没有数据的时候是 0
func WinRate(subs []Submission) float64 {
	if len(subs) == 0 {
		return 0
	}
	joined := 0
	for _, s := range subs {
		if s.Status == StatusJoined {
			joined++
		}
	}
	return float64(joined) / float64(len(subs))
}

// AverageDaysInStage 从第一次进入 from 到之后第一次进入 to 的平均天数。
// 没有任何投递同时经历过这两个状态的时候，第二个返回值是 false
func AverageDaysInStage(subs []Submission, from, to Status) (float64, bool) {
	var total int64
	n := 0
	for _, s := range subs {
		d, ok := stageDuration(s.History, from, to)
		if !ok {
			continue
		}
		total += d
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(total) / float64(n) / msPerDay, true
}

func stageDuration(history []StatusChange, from, to Status) (int64, bool) {
	for i, h := range history {
		if h.To != from {
			continue
		}
		for _, next := range history[i+1:] {
			if next.To == to {
				return next.Ctime - h.Ctime, true
			}
		}
		return 0, false
	}
	return 0, false
}

func UnreadCount(subs []Submission) int {
	cnt := 0
	for _, s := range subs {
		if !s.RecruiterRead {
			cnt++
		}
	}
	return cnt
}

// StatusShares 按照数量倒序，数量相同按照状态名排序
func StatusShares(subs []Submission) []StatusShare {
	counts := CountByStatus(subs)
	res := make([]StatusShare, 0, len(counts))
	for st, cnt := range counts {
		res = append(res, StatusShare{
			Status:     st,
			Count:      cnt,
			Percentage: percent(cnt, len(subs)),
		})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Status < res[j].Status
	})
	return res
}

// Funnel 进入过某个阶段或者之后的阶段，都算到达了这个阶段
func Funnel(subs []Submission) []FunnelStage {
	counts := make([]int, len(funnelStages))
	for _, s := range subs {
		reached := furthestStage(s)
		for i := 0; i <= reached; i++ {
			counts[i]++
		}
	}
	res := make([]FunnelStage, 0, len(funnelStages))
	for i, st := range funnelStages {
		rate := 0.0
		switch {
		case i == 0:
			if counts[0] > 0 {
				rate = 100
			}
		default:
			rate = percent(counts[i], counts[i-1])
		}
		res = append(res, FunnelStage{Status: st, Count: counts[i], ConversionRate: rate})
	}
	return res
}

// furthestStage 返回漏斗里面走到的最远阶段的下标
func furthestStage(s Submission) int {
	reached := 0
	visit := func(st Status) {
		for i := len(funnelStages) - 1; i > reached; i-- {
			if funnelStages[i] == st {
				reached = i
				return
			}
		}
	}
	for _, h := range s.History {
		visit(h.To)
	}
	visit(s.Status)
	return reached
}

// RecruiterReport 按照招聘者汇总，按照招聘者 ID 排序
func RecruiterReport(subs []Submission) []RecruiterStat {
	stats := make(map[int64]*RecruiterStat)
	for _, s := range subs {
		st, ok := stats[s.RecruiterID]
		if !ok {
			st = &RecruiterStat{RecruiterID: s.RecruiterID}
			stats[s.RecruiterID] = st
		}
		st.Total++
		reached := furthestStage(s)
		if reached >= 1 {
			st.Interviews++
		}
		if reached >= 2 {
			st.Offers++
		}
		if s.Status == StatusJoined {
			st.Joined++
		}
	}
	res := make([]RecruiterStat, 0, len(stats))
	for _, st := range stats {
		st.WinRate = percent(st.Joined, st.Total)
		res = append(res, *st)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].RecruiterID < res[j].RecruiterID
	})
	return res
}

// StageTimes 统计每一对相邻状态变更的平均耗时，按照次数倒序
func StageTimes(subs []Submission) []StageTime {
	type key struct{ from, to Status }
	type acc struct {
		total int64
		count int
	}
	accs := make(map[key]*acc)
	for _, s := range subs {
		for i := 1; i < len(s.History); i++ {
			prev, cur := s.History[i-1], s.History[i]
			k := key{from: prev.To, to: cur.To}
			a, ok := accs[k]
			if !ok {
				a = &acc{}
				accs[k] = a
			}
			a.total += cur.Ctime - prev.Ctime
			a.count++
		}
	}
	res := make([]StageTime, 0, len(accs))
	for k, a := range accs {
		res = append(res, StageTime{
			From:    k.from,
			To:      k.to,
			AvgDays: round2(float64(a.total) / float64(a.count) / msPerDay),
			Count:   a.count,
		})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		if res[i].From != res[j].From {
			return res[i].From < res[j].From
		}
		return res[i].To < res[j].To
	})
	return res
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) * 100 / float64(total))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// standardStages 报表默认展示的阶段耗时
var standardStages = [][2]Status{
	{StatusSubmitted, StatusInterview},
	{StatusInterview, StatusOffer},
	{StatusOffer, StatusJoined},
}

// StageDuration Valid 为 false 表示数据不足
type StageDuration struct {
	From    Status
	To      Status
	AvgDays float64
	Valid   bool
}

func NewStageDuration(subs []Submission, from, to Status) StageDuration {
	avg, ok := AverageDaysInStage(subs, from, to)
	return StageDuration{From: from, To: to, AvgDays: round2(avg), Valid: ok}
}

type PipelineStats struct {
	Total         int
	CountByStatus map[Status]int
	Shares        []StatusShare
	// WinRate 比例，不是百分比
	WinRate    float64
	Unread     int
	Funnel     []FunnelStage
	Durations  []StageDuration
	StageTimes []StageTime
}

func Summarize(subs []Submission) PipelineStats {
	durations := make([]StageDuration, 0, len(standardStages))
	for _, st := range standardStages {
		durations = append(durations, NewStageDuration(subs, st[0], st[1]))
	}
	return PipelineStats{
		Total:         len(subs),
		CountByStatus: CountByStatus(subs),
		Shares:        StatusShares(subs),
		WinRate:       WinRate(subs),
		Unread:        UnreadCount(subs),
		Funnel:        Funnel(subs),
		Durations:     durations,
		StageTimes:    StageTimes(subs),
	}
}
