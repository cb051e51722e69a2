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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/vyralabs/vyra/internal/notification/internal/domain"
	"github.com/vyralabs/vyra/internal/notification/internal/repository/dao"
)

var ErrNotificationNotFound = dao.ErrNotFound

type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, id, uid int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (r *notificationRepository) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(n))
}

func (r *notificationRepository) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountUnread(ctx, uid)
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, uid int64) error {
	return r.dao.MarkRead(ctx, id, uid)
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, uid int64) error {
	return r.dao.MarkAllRead(ctx, uid)
}

func (r *notificationRepository) toEntity(n domain.Notification) dao.Notification {
	return dao.Notification{
		Id:       n.ID,
		Uid:      n.Uid,
		ActorUid: n.ActorUid,
		Biz:      n.Biz,
		BizId:    n.BizID,
		Action:   n.Action,
		Read:     n.Read,
	}
}

func (r *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:       n.Id,
		Uid:      n.Uid,
		ActorUid: n.ActorUid,
		Biz:      n.Biz,
		BizID:    n.BizId,
		Action:   n.Action,
		Read:     n.Read,
		Ctime:    n.Ctime,
	}
}
