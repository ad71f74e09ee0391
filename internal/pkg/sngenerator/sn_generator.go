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

package sngenerator

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// randomLen 随机部分取 shortuuid 的前几位
const randomLen = 10

type ClockFunc func() time.Time

type RandomFunc func() string

// Generator 生成给人看的编号：前缀 + 日期 + 用户 ID 后四位 + 随机串
type Generator struct {
	prefix string
	clock  ClockFunc
	random RandomFunc
}

func NewGeneratorWith(prefix string, clock ClockFunc, random RandomFunc) *Generator {
	return &Generator{
		prefix: prefix,
		clock:  clock,
		random: random,
	}
}

func NewGenerator(prefix string) *Generator {
	return NewGeneratorWith(prefix, time.Now, shortuuid.New)
}

func (g *Generator) Generate(uid int64) string {
	random := g.random()
	if len(random) > randomLen {
		random = random[:randomLen]
	}
	return fmt.Sprintf("%s%s%04d%s", g.prefix, g.clock().Format("20060102"), uid%10000, random)
}
