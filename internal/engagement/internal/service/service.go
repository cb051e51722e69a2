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

	"github.com/gotomicro/ego/core/elog"
	"github.com/vyralabs/vyra/internal/content"
	"github.com/vyralabs/vyra/internal/credit"
	"github.com/vyralabs/vyra/internal/engagement/internal/domain"
	"github.com/vyralabs/vyra/internal/engagement/internal/event"
	"github.com/vyralabs/vyra/internal/engagement/internal/repository"
	"github.com/vyralabs/vyra/internal/pkg/mqx"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicatedAction = repository.ErrDuplicatedAction
	ErrTargetNotFound   = errors.New("互动对象不存在")
	ErrUnknownAction    = errors.New("未知的互动动作")
)

const bizVideo = "video"

//go:generate mockgen -source=./service.go -destination=../../mocks/engagement.mock.go -package=engagementmocks Service
type Service interface {
	// Record 记录一次互动并给互动的人发积分。
	// 对 like 返回这次操作之后是否处于点赞状态，其它动作恒为 true。
	// buzz 和 share 重复提交返回 ErrDuplicatedAction
	Record(ctx context.Context, i domain.Interaction) (bool, error)
	Get(ctx context.Context, biz string, id int64, uid int64) (domain.Interactive, error)
	GetByIds(ctx context.Context, biz string, ids []int64) ([]domain.Interactive, error)
	IncrCommentCnt(ctx context.Context, biz string, bizId int64, delta int64) error
	AddBoostScore(ctx context.Context, biz string, bizId int64, score int64) error
	// LikedIds 用户点赞过的内容 id，按点赞时间倒序
	LikedIds(ctx context.Context, biz string, uid int64, limit int) ([]int64, error)
	Schedule() domain.Schedule
}

type engagementService struct {
	repo         repository.EngagementRepository
	creditSvc    credit.Service
	contentSvc   content.Service
	schedule     domain.Schedule
	notifier     mqx.Producer[event.NotificationEvent]
	progressProd mqx.Producer[event.ProgressEvent]
	logger       *elog.Component
}

func NewService(repo repository.EngagementRepository,
	creditSvc credit.Service,
	contentSvc content.Service,
	schedule domain.Schedule,
	notifier mqx.Producer[event.NotificationEvent],
	progressProd mqx.Producer[event.ProgressEvent]) Service {
	return &engagementService{
		repo:         repo,
		creditSvc:    creditSvc,
		contentSvc:   contentSvc,
		schedule:     schedule,
		notifier:     notifier,
		progressProd: progressProd,
		logger:       elog.DefaultLogger,
	}
}

func (s *engagementService) Record(ctx context.Context, i domain.Interaction) (bool, error) {
	if i.Action == domain.ActionView {
		return true, s.repo.IncrViewCnt(ctx, i.Biz, i.BizID)
	}
	owner, err := s.ownerOf(ctx, i.Biz, i.BizID)
	if err != nil {
		return false, err
	}
	switch i.Action {
	case domain.ActionLike:
		return s.recordLike(ctx, i, owner)
	case domain.ActionBuzz, domain.ActionShare:
		return true, s.recordOnce(ctx, i, owner)
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownAction, i.Action)
	}
}

func (s *engagementService) recordLike(ctx context.Context, i domain.Interaction, owner int64) (bool, error) {
	liked, err := s.repo.LikeToggle(ctx, i.Biz, i.BizID, i.Uid)
	if err != nil {
		return false, err
	}
	if liked {
		s.award(ctx, i)
		s.bumpOwnerCounter(ctx, i, owner, 1)
		s.notify(ctx, i, owner)
		s.reportProgress(ctx, i)
		return true, nil
	}
	s.bumpOwnerCounter(ctx, i, owner, -1)
	if !s.schedule.StickyAward {
		s.refund(ctx, i)
	}
	return false, nil
}

func (s *engagementService) recordOnce(ctx context.Context, i domain.Interaction, owner int64) error {
	err := s.repo.AddAction(ctx, i.Biz, i.BizID, i.Uid, i.Action)
	if err != nil {
		return err
	}
	s.award(ctx, i)
	s.bumpOwnerCounter(ctx, i, owner, 1)
	s.notify(ctx, i, owner)
	s.reportProgress(ctx, i)
	return nil
}

// award 给互动的人发积分，失败只记日志。
// 幂等键保证取消再点赞不会重复发
func (s *engagementService) award(ctx context.Context, i domain.Interaction) {
	amount := s.schedule.Reward(i.Action)
	if amount == 0 {
		return
	}
	err := s.creditSvc.AddPoints(ctx, credit.CreditLog{
		Key:          actionKey(i),
		Uid:          i.Uid,
		ChangeAmount: amount,
		Kind:         credit.KindEarned,
		Biz:          i.Biz,
		BizId:        i.BizID,
		Desc:         fmt.Sprintf("互动奖励: %s", i.Action),
	})
	if err != nil && !errors.Is(err, credit.ErrDuplicatedCreditLog) {
		s.logger.Error("发放互动奖励失败",
			elog.FieldErr(err),
			elog.Any("interaction", i))
	}
}

func (s *engagementService) refund(ctx context.Context, i domain.Interaction) {
	amount := s.schedule.Reward(i.Action)
	if amount == 0 {
		return
	}
	err := s.creditSvc.DeductPoints(ctx, credit.CreditLog{
		Key:          actionKey(i) + "-refund",
		Uid:          i.Uid,
		ChangeAmount: -amount,
		Kind:         credit.KindPenalty,
		Biz:          i.Biz,
		BizId:        i.BizID,
		Desc:         fmt.Sprintf("互动取消追回: %s", i.Action),
	})
	if err != nil && !errors.Is(err, credit.ErrDuplicatedCreditLog) {
		s.logger.Error("追回互动奖励失败",
			elog.FieldErr(err),
			elog.Any("interaction", i))
	}
}

func (s *engagementService) bumpOwnerCounter(ctx context.Context, i domain.Interaction, owner int64, delta int64) {
	if owner == 0 {
		return
	}
	var err error
	switch i.Action {
	case domain.ActionLike:
		err = s.creditSvc.IncrTotalLikes(ctx, owner, delta)
	case domain.ActionBuzz:
		err = s.creditSvc.IncrTotalBuzz(ctx, owner)
	default:
		return
	}
	if err != nil {
		s.logger.Error("更新作者互动计数失败",
			elog.FieldErr(err),
			elog.Int64("owner", owner),
			elog.Any("interaction", i))
	}
}

func (s *engagementService) notify(ctx context.Context, i domain.Interaction, owner int64) {
	if owner == 0 || owner == i.Uid {
		// 自己互动自己的内容不通知
		return
	}
	err := s.notifier.Produce(ctx, event.NotificationEvent{
		Biz:          i.Biz,
		BizID:        i.BizID,
		Action:       string(i.Action),
		ActorUid:     i.Uid,
		RecipientUid: owner,
	})
	if err != nil {
		s.logger.Error("发送通知事件失败",
			elog.FieldErr(err),
			elog.Any("interaction", i))
	}
}

func (s *engagementService) reportProgress(ctx context.Context, i domain.Interaction) {
	err := s.progressProd.Produce(ctx, event.ProgressEvent{
		Uid:    i.Uid,
		Action: string(i.Action),
		Biz:    i.Biz,
		BizID:  i.BizID,
	})
	if err != nil {
		s.logger.Error("发送挑战进度事件失败",
			elog.FieldErr(err),
			elog.Any("interaction", i))
	}
}

func (s *engagementService) ownerOf(ctx context.Context, biz string, id int64) (int64, error) {
	if biz != bizVideo {
		return 0, nil
	}
	vs, err := s.contentSvc.GetByIds(ctx, []int64{id})
	if err != nil {
		return 0, err
	}
	if len(vs) == 0 {
		return 0, ErrTargetNotFound
	}
	return vs[0].Uid, nil
}

func (s *engagementService) Get(ctx context.Context, biz string, id int64, uid int64) (domain.Interactive, error) {
	intr, err := s.repo.Get(ctx, biz, id)
	if err != nil {
		return domain.Interactive{}, err
	}
	var eg errgroup.Group
	eg.Go(func() error {
		var er error
		intr.Liked, er = s.repo.HasAction(ctx, biz, id, uid, domain.ActionLike)
		return er
	})
	eg.Go(func() error {
		var er error
		intr.Buzzed, er = s.repo.HasAction(ctx, biz, id, uid, domain.ActionBuzz)
		return er
	})
	return intr, eg.Wait()
}

func (s *engagementService) GetByIds(ctx context.Context, biz string, ids []int64) ([]domain.Interactive, error) {
	return s.repo.GetByIds(ctx, biz, ids)
}

func (s *engagementService) IncrCommentCnt(ctx context.Context, biz string, bizId int64, delta int64) error {
	return s.repo.IncrCommentCnt(ctx, biz, bizId, delta)
}

func (s *engagementService) AddBoostScore(ctx context.Context, biz string, bizId int64, score int64) error {
	return s.repo.AddBoostScore(ctx, biz, bizId, score)
}

func (s *engagementService) LikedIds(ctx context.Context, biz string, uid int64, limit int) ([]int64, error) {
	return s.repo.ListActedIds(ctx, uid, biz, domain.ActionLike, limit)
}

func (s *engagementService) Schedule() domain.Schedule {
	return s.schedule
}

func actionKey(i domain.Interaction) string {
	return fmt.Sprintf("%s-%s-%d-%d", i.Action, i.Biz, i.BizID, i.Uid)
}
