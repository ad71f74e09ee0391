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
)

var (
	ErrUnauthorized  = errors.New("无权操作该投递")
	ErrJobNotFound   = errors.New("职位不存在")
	ErrJobClosed     = errors.New("职位已关闭，不能投递")
	ErrInvalidStatus = errors.New("未知的投递状态")

	// ErrTerminalSubmission 终态的投递不能再修改简历
	ErrTerminalSubmission = errors.New("投递已结束")
)

// IllegalTransitionError 状态机不允许的流转，带上当前状态方便调用方重新展示
type IllegalTransitionError struct {
	Current Status
	Target  Status
}

func (e *IllegalTransitionError) Error() string {
	if e.Current.IsTerminal() {
		return fmt.Sprintf("投递已处于终态 %s，不能流转到 %s", e.Current, e.Target)
	}
	return fmt.Sprintf("不能从 %s 流转到 %s", e.Current, e.Target)
}
