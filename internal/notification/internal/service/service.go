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

package service

import (
	"context"

	"github.com/vyralabs/vyra/internal/notification/internal/domain"
	"github.com/vyralabs/vyra/internal/notification/internal/repository"
)

var ErrNotificationNotFound = repository.ErrNotificationNotFound

//go:generate mockgen -source=./service.go -destination=../../mocks/notification.mock.go -package=notificationmocks Service
type Service interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, id, uid int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewService(repo repository.NotificationRepository) Service {
	return &notificationService{repo: repo}
}

func (s *notificationService) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return s.repo.Create(ctx, n)
}

func (s *notificationService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	return s.repo.List(ctx, uid, offset, limit)
}

func (s *notificationService) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.UnreadCount(ctx, uid)
}

func (s *notificationService) MarkRead(ctx context.Context, id, uid int64) error {
	return s.repo.MarkRead(ctx, id, uid)
}

func (s *notificationService) MarkAllRead(ctx context.Context, uid int64) error {
	return s.repo.MarkAllRead(ctx, uid)
}
