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

package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	notificationmocks "github.com/ecodeclub/hirehub/internal/notification/mocks"
	"github.com/ecodeclub/hirehub/internal/pkg/mqx"
	"github.com/ecodeclub/hirehub/internal/submission"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMQ(t *testing.T) mq.MQ {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), submission.TransitionEventName, 1))
	return q
}

func TestInboxConsumer_Consume(t *testing.T) {
	evt := submission.TransitionEvent{
		EventID:          9,
		SubmissionID:     21,
		SN:               "S1",
		JobID:            11,
		FromStatus:       "SUBMITTED",
		ToStatus:         "INTERVIEW",
		CandidateID:      7,
		RecruiterOwnerID: 100,
		ChangedBy:        100,
		Ctime:            123,
	}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *notificationmocks.MockService
		produce func(t *testing.T, q mq.MQ)
		wantErr bool
	}{
		{
			name: "写入通知",
			mock: func(ctrl *gomock.Controller) *notificationmocks.MockService {
				svc := notificationmocks.NewMockService(ctrl)
				svc.EXPECT().Deliver(gomock.Any(), domain.Transition{
					EventID:          9,
					SubmissionID:     21,
					SN:               "S1",
					JobID:            11,
					FromStatus:       "SUBMITTED",
					ToStatus:         "INTERVIEW",
					CandidateID:      7,
					RecruiterOwnerID: 100,
					ChangedBy:        100,
					Ctime:            123,
				}).Return(nil)
				return svc
			},
			produce: func(t *testing.T, q mq.MQ) {
				p, err := mqx.NewGeneralProducer[submission.TransitionEvent](q, submission.TransitionEventName)
				require.NoError(t, err)
				require.NoError(t, p.Produce(context.Background(), evt))
			},
		},
		{
			name: "消息体非法",
			mock: func(ctrl *gomock.Controller) *notificationmocks.MockService {
				return notificationmocks.NewMockService(ctrl)
			},
			produce: func(t *testing.T, q mq.MQ) {
				p, err := q.Producer(submission.TransitionEventName)
				require.NoError(t, err)
				_, err = p.Produce(context.Background(), &mq.Message{Value: []byte("not json")})
				require.NoError(t, err)
			},
			wantErr: true,
		},
		{
			name: "写入失败",
			mock: func(ctrl *gomock.Controller) *notificationmocks.MockService {
				svc := notificationmocks.NewMockService(ctrl)
				svc.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				return svc
			},
			produce: func(t *testing.T, q mq.MQ) {
				p, err := mqx.NewGeneralProducer[submission.TransitionEvent](q, submission.TransitionEventName)
				require.NoError(t, err)
				require.NoError(t, p.Produce(context.Background(), evt))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			q := newTestMQ(t)
			c, err := NewInboxConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)
			defer func() {
				_ = c.Stop(context.Background())
			}()
			tc.produce(t, q)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			err = c.Consume(ctx)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInboxConsumer_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := newTestMQ(t)
	delivered := make(chan domain.Transition, 1)
	svc := notificationmocks.NewMockService(ctrl)
	svc.EXPECT().Deliver(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, tr domain.Transition) error {
		delivered <- tr
		return nil
	})
	c, err := NewInboxConsumer(svc, q)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx)

	p, err := mqx.NewGeneralProducer[submission.TransitionEvent](q, submission.TransitionEventName)
	require.NoError(t, err)
	require.NoError(t, p.Produce(context.Background(), submission.TransitionEvent{EventID: 9, SubmissionID: 21}))

	select {
	case tr := <-delivered:
		assert.Equal(t, int64(21), tr.SubmissionID)
	case <-time.After(3 * time.Second):
		t.Fatal("没有消费到事件")
	}
}
