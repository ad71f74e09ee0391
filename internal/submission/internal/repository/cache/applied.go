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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// 投递不会被删除，所以"已投递"这个结果永远不会过期，这里的过期时间只是为了回收内存
const appliedExpiration = 7 * 24 * time.Hour

//go:generate mockgen -source=./applied.go -package=cachemocks -destination=./mocks/applied.mock.go AppliedCache
type AppliedCache interface {
	SetApplied(ctx context.Context, candidateID, jobID int64) error
	// IsApplied 只缓存了已投递，false 表示缓存里面没有
	IsApplied(ctx context.Context, candidateID, jobID int64) (bool, error)
}

type appliedCache struct {
	ec ecache.Cache
}

func NewAppliedCache(ec ecache.Cache) AppliedCache {
	return &appliedCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "submission:",
		},
	}
}

func (c *appliedCache) SetApplied(ctx context.Context, candidateID, jobID int64) error {
	return c.ec.Set(ctx, c.key(candidateID, jobID), "1", appliedExpiration)
}

func (c *appliedCache) IsApplied(ctx context.Context, candidateID, jobID int64) (bool, error) {
	val := c.ec.Get(ctx, c.key(candidateID, jobID))
	if val.KeyNotFound() {
		return false, nil
	}
	if val.Err != nil {
		return false, errors.Wrap(val.Err, "查询缓存出错")
	}
	return true, nil
}

func (c *appliedCache) key(candidateID, jobID int64) string {
	return fmt.Sprintf("applied:%d:%d", candidateID, jobID)
}
