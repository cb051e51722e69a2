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
	"github.com/vyralabs/vyra/internal/notification/internal/domain"
	"github.com/vyralabs/vyra/internal/notification/internal/service"
)

const NotificationEventName = "notification_events"

// NotificationEvent 和各互动模块发出的事件结构保持一致
type NotificationEvent struct {
	Biz          string `json:"biz"`
	BizID        int64  `json:"bizId"`
	Action       string `json:"action"`
	ActorUid     int64  `json:"actorUid"`
	RecipientUid int64  `json:"recipientUid"`
}

type NotificationConsumer struct {
	consumer mq.Consumer
	svc      service.Service
	logger   *elog.Component
}

func NewNotificationConsumer(svc service.Service, q mq.MQ) (*NotificationConsumer, error) {
	groupID := "notification_group"
	consumer, err := q.Consumer(NotificationEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &NotificationConsumer{
		consumer: consumer,
		svc:      svc,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *NotificationConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt NotificationEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	_, err = c.svc.Create(ctx, domain.Notification{
		Uid:      evt.RecipientUid,
		ActorUid: evt.ActorUid,
		Biz:      evt.Biz,
		BizID:    evt.BizID,
		Action:   evt.Action,
	})
	if err != nil {
		c.logger.Error("写入通知失败", elog.Any("notification_event", evt))
	}
	return err
}

func (c *NotificationConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费通知事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *NotificationConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
