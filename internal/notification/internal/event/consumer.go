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
	"fmt"

	"github.com/ecodeclub/hirehub/internal/notification/internal/domain"
	"github.com/ecodeclub/hirehub/internal/notification/internal/service"
	"github.com/ecodeclub/hirehub/internal/pkg/mqx"
	"github.com/ecodeclub/hirehub/internal/submission"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const inboxGroupID = "notification.inbox"

// InboxConsumer 把投递状态变更写到收件人的站内信里
type InboxConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewInboxConsumer(svc service.Service, q mq.MQ) (*InboxConsumer, error) {
	consumer, err := q.Consumer(submission.TransitionEventName, inboxGroupID)
	if err != nil {
		return nil, err
	}
	return &InboxConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.inbox.consumer")),
	}, nil
}

func (c *InboxConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费投递状态变更事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *InboxConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	evt, err := mqx.Unmarshal[submission.TransitionEvent](msg)
	if err != nil {
		return err
	}
	err = c.svc.Deliver(ctx, domain.Transition{
		EventID:          evt.EventID,
		SubmissionID:     evt.SubmissionID,
		SN:               evt.SN,
		JobID:            evt.JobID,
		FromStatus:       evt.FromStatus,
		ToStatus:         evt.ToStatus,
		CandidateID:      evt.CandidateID,
		RecruiterOwnerID: evt.RecruiterOwnerID,
		ChangedBy:        evt.ChangedBy,
		Note:             evt.Note,
		Ctime:            evt.Ctime,
	})
	if err != nil {
		return fmt.Errorf("写入通知失败, submissionId=%d: %w", evt.SubmissionID, err)
	}
	return nil
}

func (c *InboxConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
