// Copyright 2024 vyralabs
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
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/vyralabs/vyra/internal/challenge/internal/service"
)

const ProgressEventName = "challenge_progress_events"

// ProgressEvent 和互动侧发的事件结构保持一致
type ProgressEvent struct {
	Uid    int64  `json:"uid"`
	Action string `json:"action"`
	Biz    string `json:"biz"`
	BizID  int64  `json:"bizId"`
}

type ProgressConsumer struct {
	consumer mq.Consumer
	svc      service.Service
	logger   *elog.Component
}

func NewProgressConsumer(svc service.Service, q mq.MQ) (*ProgressConsumer, error) {
	groupID := "challenge_group"
	consumer, err := q.Consumer(ProgressEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ProgressConsumer{
		consumer: consumer,
		svc:      svc,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ProgressConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ProgressEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.svc.HandleProgress(ctx, evt.Uid, evt.Action)
	if err != nil {
		c.logger.Error("累计挑战进度失败", elog.Any("progress_event", evt))
	}
	return err
}

func (c *ProgressConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费挑战进度事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *ProgressConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
