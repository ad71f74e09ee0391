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
	"testing"

	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	"github.com/ecodeclub/hirehub/internal/notification/internal/repository/dao"
	daomocks "github.com/ecodeclub/hirehub/internal/notification/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockNotificationDAO(ctrl)
	d.EXPECT().InsertBatch(gomock.Any(), []dao.Notification{
		{Id: 1, EventId: 9, Uid: 7, SubmissionId: 21, Sn: "S1", JobId: 11, FromStatus: "SUBMITTED", ToStatus: "INTERVIEW", ChangedBy: 100, Ctime: 123},
	}).Return(nil)
	d.EXPECT().List(gomock.Any(), int64(7), 0, 10).Return([]dao.Notification{
		{Id: 1, EventId: 9, Uid: 7, IsRead: true, SubmissionId: 21, Sn: "S1", JobId: 11, FromStatus: "SUBMITTED", ToStatus: "INTERVIEW", ChangedBy: 100, Ctime: 123},
	}, nil)

	repo := NewNotificationRepository(d)
	err := repo.Save(context.Background(), []domain.Notification{
		{ID: 1, EventID: 9, UID: 7, SubmissionID: 21, SN: "S1", JobID: 11, FromStatus: "SUBMITTED", ToStatus: "INTERVIEW", ChangedBy: 100, Ctime: 123},
	})
	require.NoError(t, err)

	ns, err := repo.List(context.Background(), 7, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.Notification{
		{ID: 1, EventID: 9, UID: 7, Read: true, SubmissionID: 21, SN: "S1", JobID: 11, FromStatus: "SUBMITTED", ToStatus: "INTERVIEW", ChangedBy: 100, Ctime: 123},
	}, ns)
}
