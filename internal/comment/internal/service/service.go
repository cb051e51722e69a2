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
	"github.com/vyralabs/vyra/internal/comment/internal/domain"
	"github.com/vyralabs/vyra/internal/comment/internal/event"
	"github.com/vyralabs/vyra/internal/comment/internal/repository"
	"github.com/vyralabs/vyra/internal/content"
	"github.com/vyralabs/vyra/internal/credit"
	"github.com/vyralabs/vyra/internal/engagement"
	"github.com/vyralabs/vyra/internal/pkg/mqx"
)

var (
	ErrNotOwner       = repository.ErrNotOwner
	ErrVideoNotFound  = errors.New("视频不存在")
	ErrInvalidComment = errors.New("评论内容非法")
)

const bizVideo = "video"

//go:generate mockgen -source=./service.go -destination=../../mocks/comment.mock.go -package=commentmocks Service
type Service interface {
	// Create 发表评论，给评论的人发积分。
	// 每条评论都发，幂等键按评论 id 走
	Create(ctx context.Context, c domain.Comment) (int64, error)
	List(ctx context.Context, vid int64, offset, limit int) ([]domain.Comment, error)
	Delete(ctx context.Context, uid, id int64) error
}

type commentService struct {
	repo          repository.CommentRepository
	creditSvc     credit.Service
	contentSvc    content.Service
	engagementSvc engagement.Service
	notifier      mqx.Producer[event.NotificationEvent]
	progressProd  mqx.Producer[event.ProgressEvent]
	logger        *elog.Component
}

func NewService(repo repository.CommentRepository,
	creditSvc credit.Service,
	contentSvc content.Service,
	engagementSvc engagement.Service,
	notifier mqx.Producer[event.NotificationEvent],
	progressProd mqx.Producer[event.ProgressEvent]) Service {
	return &commentService{
		repo:          repo,
		creditSvc:     creditSvc,
		contentSvc:    contentSvc,
		engagementSvc: engagementSvc,
		notifier:      notifier,
		progressProd:  progressProd,
		logger:        elog.DefaultLogger,
	}
}

func (s *commentService) Create(ctx context.Context, c domain.Comment) (int64, error) {
	if c.Content == "" {
		return 0, ErrInvalidComment
	}
	vs, err := s.contentSvc.GetByIds(ctx, []int64{c.Vid})
	if err != nil {
		return 0, err
	}
	if len(vs) == 0 {
		return 0, ErrVideoNotFound
	}
	owner := vs[0].Uid
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return 0, err
	}
	if err = s.engagementSvc.IncrCommentCnt(ctx, bizVideo, c.Vid, 1); err != nil {
		s.logger.Error("更新评论计数失败",
			elog.FieldErr(err),
			elog.Int64("vid", c.Vid))
	}
	s.award(ctx, id, c)
	s.notify(ctx, c, owner)
	s.reportProgress(ctx, c)
	return id, nil
}

func (s *commentService) award(ctx context.Context, id int64, c domain.Comment) {
	amount := s.engagementSvc.Schedule().Reward(engagement.ActionComment)
	if amount == 0 {
		return
	}
	err := s.creditSvc.AddPoints(ctx, credit.CreditLog{
		Key:          fmt.Sprintf("comment-%d", id),
		Uid:          c.Uid,
		ChangeAmount: amount,
		Kind:         credit.KindEarned,
		Biz:          bizVideo,
		BizId:        c.Vid,
		Desc:         "评论奖励",
	})
	if err != nil && !errors.Is(err, credit.ErrDuplicatedCreditLog) {
		s.logger.Error("发放评论奖励失败",
			elog.FieldErr(err),
			elog.Int64("uid", c.Uid),
			elog.Int64("comment", id))
	}
}

func (s *commentService) notify(ctx context.Context, c domain.Comment, owner int64) {
	if owner == c.Uid {
		return
	}
	err := s.notifier.Produce(ctx, event.NotificationEvent{
		Biz:          bizVideo,
		BizID:        c.Vid,
		Action:       "comment",
		ActorUid:     c.Uid,
		RecipientUid: owner,
	})
	if err != nil {
		s.logger.Error("发送评论通知失败",
			elog.FieldErr(err),
			elog.Int64("vid", c.Vid))
	}
}

func (s *commentService) reportProgress(ctx context.Context, c domain.Comment) {
	err := s.progressProd.Produce(ctx, event.ProgressEvent{
		Uid:    c.Uid,
		Action: "comment",
		Biz:    bizVideo,
		BizID:  c.Vid,
	})
	if err != nil {
		s.logger.Error("发送挑战进度事件失败",
			elog.FieldErr(err),
			elog.Int64("vid", c.Vid))
	}
}

func (s *commentService) List(ctx context.Context, vid int64, offset, limit int) ([]domain.Comment, error) {
	return s.repo.List(ctx, vid, offset, limit)
}

func (s *commentService) Delete(ctx context.Context, uid, id int64) error {
	c, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrNotOwner
	}
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, uid, id); err != nil {
		return err
	}
	if err = s.engagementSvc.IncrCommentCnt(ctx, bizVideo, c.Vid, -1); err != nil {
		s.logger.Error("更新评论计数失败",
			elog.FieldErr(err),
			elog.Int64("vid", c.Vid))
	}
	return nil
}
