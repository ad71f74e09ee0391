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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkills(t *testing.T) {
	testCases := []struct {
		name   string
		skills []string
		want   []string
	}{
		{
			name:   "nil",
			skills: nil,
			want:   []string{},
		},
		{
			name:   "去重和去空白",
			skills: []string{" Go ", "go", "", "MySQL", "  ", "Redis", "mysql"},
			want:   []string{"Go", "MySQL", "Redis"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSkills(tc.skills))
		})
	}
}

func TestJob_Validate(t *testing.T) {
	assert.NoError(t, Job{Title: "后端工程师", RequiredExperienceYears: 3}.Validate())
	assert.ErrorIs(t, Job{Title: "  "}.Validate(), ErrInvalidJob)
	assert.ErrorIs(t, Job{Title: "后端工程师", RequiredExperienceYears: -1}.Validate(), ErrInvalidJob)
}
