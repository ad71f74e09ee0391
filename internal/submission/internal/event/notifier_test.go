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
	"testing"
	"time"

	"github.com/ecodeclub/hirehub/internal/pkg/mqx"
	"github.com/ecodeclub/hirehub/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMQNotifier_Notify(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, TransitionEventName, 1))
	c, err := q.Consumer(TransitionEventName, "test")
	require.NoError(t, err)
	ids, err := snowflake.NewNodeGenerator(1, snowflake.BizTransitionEvent)
	require.NoError(t, err)
	n, err := NewMQNotifier(q, ids)
	require.NoError(t, err)

	evt := TransitionEvent{
		SubmissionID:     12,
		SN:               "S2024010100011234567890",
		JobID:            3,
		FromStatus:       "SUBMITTED",
		ToStatus:         "UNDER_REVIEW",
		CandidateID:      1,
		RecruiterOwnerID: 100,
		ChangedBy:        100,
		Note:             "简历不错",
		Ctime:            1700000000000,
	}
	require.NoError(t, n.Notify(ctx, evt))

	msg, err := c.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12", string(msg.Key))
	got, err := mqx.Unmarshal[TransitionEvent](msg)
	require.NoError(t, err)
	assert.True(t, got.EventID > 0)
	assert.Equal(t, snowflake.BizTransitionEvent, snowflake.BizOf(got.EventID))
	got.EventID = 0
	assert.Equal(t, evt, got)
}

func TestMQNotifier_KeepEventID(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, TransitionEventName, 1))
	c, err := q.Consumer(TransitionEventName, "test")
	require.NoError(t, err)
	ids, err := snowflake.NewNodeGenerator(1, snowflake.BizTransitionEvent)
	require.NoError(t, err)
	n, err := NewMQNotifier(q, ids)
	require.NoError(t, err)

	require.NoError(t, n.Notify(ctx, TransitionEvent{EventID: 99, SubmissionID: 1}))
	msg, err := c.Consume(ctx)
	require.NoError(t, err)
	got, err := mqx.Unmarshal[TransitionEvent](msg)
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.EventID)
}
