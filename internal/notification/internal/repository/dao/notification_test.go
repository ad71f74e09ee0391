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
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDAO(t *testing.T, mockDB *sql.DB) NotificationDAO {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: mockDB,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return NewGORMNotificationDAO(db)
}

func TestGORMNotificationDAO_InsertBatch(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		ns      []Notification
		wantErr error
	}{
		{
			name: "重复的事件直接忽略",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `notifications` .* ON DUPLICATE KEY UPDATE .*").
					WillReturnResult(sqlmock.NewResult(0, 2))
				return mockDB
			},
			ns: []Notification{
				{Id: 1, EventId: 9, Uid: 7, ToStatus: "INTERVIEW"},
				{Id: 2, EventId: 9, Uid: 100, ToStatus: "INTERVIEW"},
			},
		},
		{
			name: "没有收件人不访问数据库",
			mock: func(t *testing.T) *sql.DB {
				mockDB, _, err := sqlmock.New()
				require.NoError(t, err)
				return mockDB
			},
		},
		{
			name: "插入失败",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `notifications` .*").
					WillReturnError(errors.New("mock db error"))
				return mockDB
			},
			ns:      []Notification{{Id: 1, EventId: 9, Uid: 7, ToStatus: "INTERVIEW"}},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDAO(t, tc.mock(t))
			err := d.InsertBatch(context.Background(), tc.ns)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestGORMNotificationDAO_MarkRead(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(t *testing.T) *sql.DB
		ids       []int64
		wantCount int64
	}{
		{
			name: "标记指定的通知",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `notifications` SET .* WHERE .*uid = \\? AND is_read = \\?.* AND id IN \\(\\?,\\?\\)").
					WillReturnResult(sqlmock.NewResult(0, 2))
				return mockDB
			},
			ids:       []int64{1, 2},
			wantCount: 2,
		},
		{
			name: "标记全部",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `notifications` SET .* WHERE uid = \\? AND is_read = \\?").
					WillReturnResult(sqlmock.NewResult(0, 5))
				return mockDB
			},
			wantCount: 5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDAO(t, tc.mock(t))
			cnt, err := d.MarkRead(context.Background(), 7, tc.ids)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCount, cnt)
		})
	}
}
