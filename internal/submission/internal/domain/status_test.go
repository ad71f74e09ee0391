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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransitTo(t *testing.T) {
	allowed := map[Status][]Status{
		StatusSubmitted:   {StatusUnderReview, StatusInterview, StatusOnHold, StatusRejected, StatusWithdrawn},
		StatusUnderReview: {StatusInterview, StatusOffer, StatusOnHold, StatusRejected, StatusWithdrawn},
		StatusInterview:   {StatusOffer, StatusOnHold, StatusRejected, StatusWithdrawn},
		StatusOffer:       {StatusJoined, StatusOnHold, StatusRejected, StatusWithdrawn},
		StatusOnHold:      {StatusUnderReview, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn},
		StatusJoined:      nil,
		StatusRejected:    nil,
		StatusWithdrawn:   nil,
	}
	for _, from := range AllStatuses() {
		want := make(map[Status]bool)
		for _, to := range allowed[from] {
			want[to] = true
		}
		for _, to := range AllStatuses() {
			assert.Equalf(t, want[to], from.CanTransitTo(to), "%s -> %s", from, to)
		}
		assert.ElementsMatch(t, allowed[from], from.AllowedTargets())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, st := range AllStatuses() {
		terminal := st == StatusJoined || st == StatusRejected || st == StatusWithdrawn
		assert.Equal(t, terminal, st.IsTerminal(), st.String())
		// 终态没有出边，非终态一定有出边
		assert.Equal(t, terminal, len(st.AllowedTargets()) == 0, st.String())
		// 任何状态都不能流转到自己
		assert.False(t, st.CanTransitTo(st), st.String())
	}
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		raw    string
		want   Status
		wantOk bool
	}{
		{raw: "SUBMITTED", want: StatusSubmitted, wantOk: true},
		{raw: " under review ", want: StatusUnderReview, wantOk: true},
		{raw: "on-hold", want: StatusOnHold, wantOk: true},
		{raw: "Joined", want: StatusJoined, wantOk: true},
		{raw: "HIRED", want: Status("HIRED")},
		{raw: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			st, ok := ParseStatus(tc.raw)
			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.want, st)
		})
	}
}

func TestIllegalTransitionError(t *testing.T) {
	var err error = &IllegalTransitionError{Current: StatusJoined, Target: StatusOffer}
	var target *IllegalTransitionError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, StatusJoined, target.Current)
	assert.Contains(t, err.Error(), "JOINED")

	err = fmt.Errorf("流转失败: %w", &IllegalTransitionError{Current: StatusInterview, Target: StatusJoined})
	require.True(t, errors.As(err, &target))
	assert.Equal(t, StatusJoined, target.Target)
	assert.Contains(t, err.Error(), "不能从 INTERVIEW 流转到 JOINED")
	assert.False(t, errors.Is(err, ErrInvalidStatus))
}
