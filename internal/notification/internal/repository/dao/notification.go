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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./notification.go -package=daomocks -destination=./mocks/notification.mock.go NotificationDAO
type NotificationDAO interface {
	// InsertBatch 同一个事件重复投递不会产生重复的通知
	InsertBatch(ctx context.Context, ns []Notification) error
	List(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	Count(ctx context.Context, uid int64) (int64, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	// MarkRead ids 为空的时候标记全部
	MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error)
}

type GORMNotificationDAO struct {
	db *egorm.Component
}

func NewGORMNotificationDAO(db *egorm.Component) NotificationDAO {
	return &GORMNotificationDAO{db: db}
}

func (d *GORMNotificationDAO) InsertBatch(ctx context.Context, ns []Notification) error {
	if len(ns) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range ns {
		ns[i].Utime = now
		if ns[i].Ctime == 0 {
			ns[i].Ctime = now
		}
	}
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ns).Error
}

func (d *GORMNotificationDAO) List(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMNotificationDAO) Count(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ?", uid).
		Count(&res).Error
	return res, err
}

func (d *GORMNotificationDAO) CountUnread(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND is_read = ?", uid, false).
		Count(&res).Error
	return res, err
}

func (d *GORMNotificationDAO) MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error) {
	query := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND is_read = ?", uid, false)
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	res := query.Updates(map[string]any{
		"is_read": true,
		"utime":   time.Now().UnixMilli(),
	})
	return res.RowsAffected, res.Error
}
