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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Biz 放在 node 的高 5 位，低 5 位是机器编号
type Biz uint

const (
	BizTransitionEvent Biz = iota
	BizNotification
)

const (
	maxNode uint = 31
	maxBiz  Biz  = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedBiz  = errors.New("biz超出限制")
	ErrUnknownBiz = errors.New("未知的biz")
)

type Generator interface {
	Next(biz Biz) (int64, error)
}

// NodeGenerator 创建之后只读，可以并发使用
type NodeGenerator struct {
	nodes map[Biz]*snowflake.Node
}

func NewNodeGenerator(nodeID uint, bizs ...Biz) (*NodeGenerator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	nodes := make(map[Biz]*snowflake.Node, len(bizs))
	for _, biz := range bizs {
		if biz > maxBiz {
			return nil, fmt.Errorf("%w: %d", ErrExceedBiz, biz)
		}
		n, err := snowflake.NewNode(int64(uint(biz)<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		nodes[biz] = n
	}
	return &NodeGenerator{nodes: nodes}, nil
}

func (g *NodeGenerator) Next(biz Biz) (int64, error) {
	n, ok := g.nodes[biz]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBiz, biz)
	}
	return n.Generate().Int64(), nil
}

// BizOf 从 ID 里面解析出 Biz
func BizOf(id int64) Biz {
	return Biz(snowflake.ID(id).Node() >> 5)
}
