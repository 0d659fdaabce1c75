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

package mqx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func TestGeneralProducer_Produce(t *testing.T) {
	const topic = "general_producer_test_events"
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, topic, 1))
	consumer, err := q.Consumer(topic, "test")
	require.NoError(t, err)

	producer, err := NewGeneralProducer[testEvent](NewTraceMQ(q), topic)
	require.NoError(t, err)
	evt := testEvent{ID: 1, Email: "a@example.com"}
	require.NoError(t, producer.Produce(ctx, evt))

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var got testEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, evt, got)
}
