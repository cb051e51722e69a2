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

package challenge

import (
	"github.com/vyralabs/vyra/internal/challenge/internal/domain"
	"github.com/vyralabs/vyra/internal/challenge/internal/event"
	"github.com/vyralabs/vyra/internal/challenge/internal/service"
	"github.com/vyralabs/vyra/internal/challenge/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
	// C 消费互动侧的进度事件，应用启动时 Start
	C *event.ProgressConsumer
}

type Handler = web.Handler
type Service = service.Service
type Challenge = domain.Challenge
type ChallengeProgress = service.ChallengeProgress

var (
	ErrChallengeNotFound = service.ErrChallengeNotFound
	ErrNotCompleted      = service.ErrNotCompleted
	ErrAlreadyClaimed    = service.ErrAlreadyClaimed
)
