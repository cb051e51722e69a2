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

package engagement

import (
	"github.com/vyralabs/vyra/internal/engagement/internal/domain"
	"github.com/vyralabs/vyra/internal/engagement/internal/service"
	"github.com/vyralabs/vyra/internal/engagement/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.Service
type Interaction = domain.Interaction
type Interactive = domain.Interactive
type Action = domain.Action
type Schedule = domain.Schedule

const (
	ActionLike    = domain.ActionLike
	ActionBuzz    = domain.ActionBuzz
	ActionShare   = domain.ActionShare
	ActionView    = domain.ActionView
	ActionComment = domain.ActionComment
)

var (
	ErrDuplicatedAction = service.ErrDuplicatedAction
	ErrTargetNotFound   = service.ErrTargetNotFound

	DefaultSchedule = domain.DefaultSchedule
)
