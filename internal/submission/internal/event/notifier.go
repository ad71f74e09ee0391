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
	"strconv"

	"github.com/ecodeclub/hirehub/internal/pkg/mqx"
	"github.com/ecodeclub/hirehub/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./notifier.go -package=evtmocks -destination=./mocks/notifier.mock.go Notifier
type Notifier interface {
	Notify(ctx context.Context, evt TransitionEvent) error
}

// MQNotifier 同一个投递的事件使用相同的 key，保证下游按顺序消费
type MQNotifier struct {
	producer mqx.Producer[TransitionEvent]
	ids      snowflake.Generator
}

func NewMQNotifier(q mq.MQ, ids snowflake.Generator) (*MQNotifier, error) {
	p, err := mqx.NewKeyedProducer[TransitionEvent](q, TransitionEventName, func(evt TransitionEvent) string {
		return strconv.FormatInt(evt.SubmissionID, 10)
	})
	if err != nil {
		return nil, err
	}
	return &MQNotifier{producer: p, ids: ids}, nil
}

func (n *MQNotifier) Notify(ctx context.Context, evt TransitionEvent) error {
	if evt.EventID == 0 {
		id, err := n.ids.Next(snowflake.BizTransitionEvent)
		if err != nil {
			return fmt.Errorf("生成事件 ID 失败: %w", err)
		}
		evt.EventID = id
	}
	return n.producer.Produce(ctx, evt)
}
