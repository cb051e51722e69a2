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
	"errors"
	"fmt"

	"github.com/vyralabs/vyra/internal/credit/internal/domain"
	"github.com/vyralabs/vyra/internal/credit/internal/repository"
)

var (
	ErrPointsNotEnough     = repository.ErrPointsNotEnough
	ErrDuplicatedCreditLog = repository.ErrDuplicatedCreditLog
	ErrInvalidCreditLog    = errors.New("积分流水信息非法")
)

const leaderboardSize = 10

// Service 积分账户与流水。
// AddPoints/DeductPoints 依赖流水的幂等键去重，
// 没有幂等键保护的调用方不允许对同一逻辑动作重复调用
//
//go:generate mockgen -source=./service.go -destination=../../mocks/credit.mock.go -package=creditmocks Service
type Service interface {
	AddPoints(ctx context.Context, l domain.CreditLog) error
	DeductPoints(ctx context.Context, l domain.CreditLog) error
	GetCreditByUID(ctx context.Context, uid int64) (domain.Credit, error)
	GetBalance(ctx context.Context, uid int64) (int64, error)
	IncrTotalLikes(ctx context.Context, uid int64, delta int64) error
	IncrTotalBuzz(ctx context.Context, uid int64) error
	IncrUploadCnt(ctx context.Context, uid int64) error
	WeeklyLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type service struct {
	repo repository.CreditRepository
}

func NewCreditService(repo repository.CreditRepository) Service {
	return &service{repo: repo}
}

func (s *service) AddPoints(ctx context.Context, l domain.CreditLog) error {
	if l.Key == "" || l.ChangeAmount <= 0 {
		return fmt.Errorf("%w: key=%q, amount=%d", ErrInvalidCreditLog, l.Key, l.ChangeAmount)
	}
	return s.repo.AddPoints(ctx, l)
}

func (s *service) DeductPoints(ctx context.Context, l domain.CreditLog) error {
	if l.Key == "" || l.ChangeAmount >= 0 {
		return fmt.Errorf("%w: key=%q, amount=%d", ErrInvalidCreditLog, l.Key, l.ChangeAmount)
	}
	return s.repo.DeductPoints(ctx, l)
}

func (s *service) GetCreditByUID(ctx context.Context, uid int64) (domain.Credit, error) {
	return s.repo.GetCreditByUID(ctx, uid)
}

func (s *service) GetBalance(ctx context.Context, uid int64) (int64, error) {
	return s.repo.GetBalance(ctx, uid)
}

func (s *service) IncrTotalLikes(ctx context.Context, uid int64, delta int64) error {
	return s.repo.IncrTotalLikes(ctx, uid, delta)
}

func (s *service) IncrTotalBuzz(ctx context.Context, uid int64) error {
	return s.repo.IncrTotalBuzz(ctx, uid)
}

func (s *service) IncrUploadCnt(ctx context.Context, uid int64) error {
	return s.repo.IncrUploadCnt(ctx, uid)
}

func (s *service) WeeklyLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.repo.WeeklyLeaderboard(ctx, leaderboardSize)
}
