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

func newTestDAO(t *testing.T, mockDB *sql.DB) SubmissionDAO {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: mockDB,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return NewGORMSubmissionDAO(db)
}

func TestGORMSubmissionDAO_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantId  int64
		wantErr error
	}{
		{
			name: "投递和第一条状态记录在同一个事务",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `submissions` .*").
					WillReturnResult(sqlmock.NewResult(5, 1))
				mock.ExpectExec("INSERT INTO `submission_status_histories` .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantId: 5,
		},
		{
			name: "写状态记录失败回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `submissions` .*").
					WillReturnResult(sqlmock.NewResult(5, 1))
				mock.ExpectExec("INSERT INTO `submission_status_histories` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDAO(t, tc.mock(t))
			id, err := d.Create(context.Background(), Submission{
				CandidateId: 7,
				JobId:       11,
				RecruiterId: 100,
				Status:      "SUBMITTED",
			}, StatusHistory{ToStatus: "SUBMITTED", ChangedBy: 7})
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestGORMSubmissionDAO_Transition(t *testing.T) {
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
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `submissions` SET .*`version`=version \\+ 1 WHERE id = \\? AND version = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `submission_status_histories` .*").
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "版本冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `submissions` SET .* WHERE id = \\? AND version = \\?").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrVersionConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDAO(t, tc.mock(t))
			err := d.Transition(context.Background(), 5, 1, true, StatusHistory{
				FromStatus: "SUBMITTED",
				ToStatus:   "WITHDRAWN",
				ChangedBy:  7,
			})
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

// 时间戳以调用方传入的为准
func TestGORMSubmissionDAO_KeepCallerTime(t *testing.T) {
	const ctime = int64(1704189600000)
	t.Run("创建", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `submissions` .*").
			WillReturnResult(sqlmock.NewResult(5, 1))
		mock.ExpectExec("INSERT INTO `submission_status_histories` .*").
			WithArgs(int64(5), "", "SUBMITTED", int64(7), "", ctime).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
		d := newTestDAO(t, mockDB)
		_, err = d.Create(context.Background(), Submission{
			CandidateId: 7,
			JobId:       11,
			RecruiterId: 100,
			Status:      "SUBMITTED",
			Ctime:       ctime,
			Utime:       ctime,
		}, StatusHistory{ToStatus: "SUBMITTED", ChangedBy: 7, Ctime: ctime})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("流转", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `submissions` SET .* WHERE id = \\? AND version = \\?").
			WithArgs(false, "WITHDRAWN", ctime, int64(5), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO `submission_status_histories` .*").
			WithArgs(int64(5), "SUBMITTED", "WITHDRAWN", int64(7), "", ctime).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()
		d := newTestDAO(t, mockDB)
		err = d.Transition(context.Background(), 5, 1, true, StatusHistory{
			FromStatus: "SUBMITTED",
			ToStatus:   "WITHDRAWN",
			ChangedBy:  7,
			Ctime:      ctime,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGORMSubmissionDAO_MarkRead(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("UPDATE `submissions` SET .*recruiter_read.* WHERE id = \\? AND version = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	d := newTestDAO(t, mockDB)
	err = d.MarkRead(context.Background(), 5, 3)
	assert.Equal(t, ErrVersionConflict, err)
}

func TestGORMSubmissionDAO_Latest(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	rows := sqlmock.NewRows([]string{"id", "candidate_id", "job_id", "status", "resume", "version"}).
		AddRow(9, 7, 11, "SUBMITTED", `{"filename":"cv.pdf","sizeBytes":8}`, 1)
	mock.ExpectQuery("SELECT \\* FROM `submissions` WHERE candidate_id = \\? AND job_id = \\? ORDER BY id DESC.*").
		WillReturnRows(rows)
	d := newTestDAO(t, mockDB)
	s, err := d.Latest(context.Background(), 7, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(9), s.Id)
	assert.True(t, s.Resume.Valid)
	assert.Equal(t, "cv.pdf", s.Resume.Val.Filename)
}
