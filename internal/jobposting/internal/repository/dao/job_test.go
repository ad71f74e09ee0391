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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: mockDB,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestGORMJobDAO_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		job     Job
		wantId  int64
		wantErr error
	}{
		{
			name: "创建成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `jobs` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				return mockDB
			},
			job: Job{
				Title:   "后端工程师",
				Skills:  sqlx.JsonColumn[[]string]{Val: []string{"Go"}, Valid: true},
				OwnerId: 100,
			},
			wantId: 3,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `jobs` .*").
					WillReturnError(errors.New("mock db error"))
				return mockDB
			},
			job:     Job{Title: "后端工程师"},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMJobDAO(newTestDB(t, tc.mock(t)))
			id, err := d.Create(context.Background(), tc.job)
			assert.Equal(t, tc.wantErr, err)
			if err == nil {
				assert.Equal(t, tc.wantId, id)
			}
		})
	}
}

func TestGORMJobDAO_Update(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "更新成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `jobs` SET .* WHERE id = \\? AND status = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
		},
		{
			name: "职位已关闭",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `jobs` SET .* WHERE id = \\? AND status = \\?").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
			wantErr: ErrJobNotOpen,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMJobDAO(newTestDB(t, tc.mock(t)))
			err := d.Update(context.Background(), Job{Id: 1, Title: "后端工程师"})
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestGORMJobDAO_FindById(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantJob Job
		wantErr error
	}{
		{
			name: "查找成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "title", "skills", "status", "owner_id"}).
					AddRow(1, "后端工程师", `["Go","MySQL"]`, "OPEN", 100)
				mock.ExpectQuery("SELECT \\* FROM `jobs` WHERE id = \\?.*").WillReturnRows(rows)
				return mockDB
			},
			wantJob: Job{
				Id:      1,
				Title:   "后端工程师",
				Skills:  sqlx.JsonColumn[[]string]{Val: []string{"Go", "MySQL"}, Valid: true},
				Status:  "OPEN",
				OwnerId: 100,
			},
		},
		{
			name: "不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "title"})
				mock.ExpectQuery("SELECT \\* FROM `jobs` WHERE id = \\?.*").WillReturnRows(rows)
				return mockDB
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMJobDAO(newTestDB(t, tc.mock(t)))
			job, err := d.FindById(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantJob, job)
		})
	}
}
