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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	"github.com/ecodeclub/hirehub/internal/notification/internal/repository/dao"
)

//go:generate mockgen -source=./notification.go -package=repomocks -destination=./mocks/notification.mock.go NotificationRepository
type NotificationRepository interface {
	Save(ctx context.Context, ns []domain.Notification) error
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	Count(ctx context.Context, uid int64) (int64, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error)
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (r *notificationRepository) Save(ctx context.Context, ns []domain.Notification) error {
	return r.dao.InsertBatch(ctx, slice.Map(ns, func(idx int, src domain.Notification) dao.Notification {
		return r.toEntity(src)
	}))
}

func (r *notificationRepository) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.List(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), nil
}

func (r *notificationRepository) Count(ctx context.Context, uid int64) (int64, error) {
	return r.dao.Count(ctx, uid)
}

func (r *notificationRepository) CountUnread(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountUnread(ctx, uid)
}

func (r *notificationRepository) MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error) {
	return r.dao.MarkRead(ctx, uid, ids)
}

func (r *notificationRepository) toEntity(n domain.Notification) dao.Notification {
	return dao.Notification{
		Id:           n.ID,
		EventId:      n.EventID,
		Uid:          n.UID,
		IsRead:       n.Read,
		SubmissionId: n.SubmissionID,
		Sn:           n.SN,
		JobId:        n.JobID,
		FromStatus:   n.FromStatus,
		ToStatus:     n.ToStatus,
		ChangedBy:    n.ChangedBy,
		Note:         n.Note,
		Ctime:        n.Ctime,
	}
}

func (r *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:           n.Id,
		UID:          n.Uid,
		EventID:      n.EventId,
		SubmissionID: n.SubmissionId,
		SN:           n.Sn,
		JobID:        n.JobId,
		FromStatus:   n.FromStatus,
		ToStatus:     n.ToStatus,
		ChangedBy:    n.ChangedBy,
		Note:         n.Note,
		Read:         n.IsRead,
		Ctime:        n.Ctime,
	}
}
