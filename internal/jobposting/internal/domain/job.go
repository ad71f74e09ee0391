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
	"strings"
)

var (
	ErrJobClosed  = errors.New("职位已关闭")
	ErrInvalidJob = errors.New("职位信息不合法")
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

func (s JobStatus) String() string {
	return string(s)
}

func (s JobStatus) IsOpen() bool {
	return s == JobStatusOpen
}

type Job struct {
	ID          int64
	Title       string
	Description string
	// RequiredSkills 是一个集合，顺序没有意义
	RequiredSkills          []string
	RequiredExperienceYears float64
	Location                string
	Status                  JobStatus
	OwnerID                 int64
	Ctime                   int64
	Utime                   int64
}

func (j Job) IsOpen() bool {
	return j.Status.IsOpen()
}

// Validate 只校验调用方可以填写的字段
func (j Job) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return fmt.Errorf("%w: 标题不能为空", ErrInvalidJob)
	}
	if j.RequiredExperienceYears < 0 {
		return fmt.Errorf("%w: 工作年限不能为负数", ErrInvalidJob)
	}
	return nil
}

// NormalizeSkills 去掉首尾空白，去掉空串，按照忽略大小写的方式去重，保留第一次出现的写法
func NormalizeSkills(skills []string) []string {
	res := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, s)
	}
	return res
}
