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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	"github.com/ecodeclub/hirehub/internal/notification/internal/repository"
	"github.com/ecodeclub/hirehub/internal/pkg/identity"
	"github.com/ecodeclub/hirehub/internal/pkg/snowflake"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var ErrUnauthorized = errors.New("未登录或者角色未知")

//go:generate mockgen -source=./notification.go -package=notificationmocks -destination=../../mocks/notification.mock.go Service
type Service interface {
	// Deliver 给每个收件人写一条通知，同一个事件重复投递是幂等的
	Deliver(ctx context.Context, t domain.Transition) error
	List(ctx context.Context, actor identity.Actor, offset, limit int) ([]domain.Notification, int64, error)
	UnreadCount(ctx context.Context, actor identity.Actor) (int64, error)
	// MarkRead 返回实际被标记的条数
	MarkRead(ctx context.Context, actor identity.Actor, ids []int64) (int64, error)
}

type service struct {
	repo repository.NotificationRepository
	ids  snowflake.Generator
}

func NewService(repo repository.NotificationRepository, ids snowflake.Generator) Service {
	return &service{repo: repo, ids: ids}
}

func (s *service) Deliver(ctx context.Context, t domain.Transition) error {
	ns := t.Notifications()
	if len(ns) == 0 {
		return nil
	}
	for i := range ns {
		id, err := s.ids.Next(snowflake.BizNotification)
		if err != nil {
			return fmt.Errorf("生成通知ID失败: %w", err)
		}
		ns[i].ID = id
	}
	return s.repo.Save(ctx, ns)
}

func (s *service) List(ctx context.Context, actor identity.Actor, offset, limit int) ([]domain.Notification, int64, error) {
	if !actor.Valid() {
		return nil, 0, ErrUnauthorized
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	var (
		eg    errgroup.Group
		ns    []domain.Notification
		total int64
	)
	eg.Go(func() error {
		var err error
		ns, err = s.repo.List(ctx, actor.ID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, actor.ID)
		return err
	})
	return ns, total, eg.Wait()
}

func (s *service) UnreadCount(ctx context.Context, actor identity.Actor) (int64, error) {
	if !actor.Valid() {
		return 0, ErrUnauthorized
	}
	return s.repo.CountUnread(ctx, actor.ID)
}

func (s *service) MarkRead(ctx context.Context, actor identity.Actor, ids []int64) (int64, error) {
	if !actor.Valid() {
		return 0, ErrUnauthorized
	}
	return s.repo.MarkRead(ctx, actor.ID, ids)
}
