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

package battle

import (
	"github.com/vyralabs/vyra/internal/battle/internal/domain"
	"github.com/vyralabs/vyra/internal/battle/internal/service"
	"github.com/vyralabs/vyra/internal/battle/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.Service
type Battle = domain.Battle
type Vote = domain.Vote
type Status = domain.Status

const (
	StatusOngoing  = domain.StatusOngoing
	StatusFinished = domain.StatusFinished
)

var (
	ErrBattleNotFound = service.ErrBattleNotFound
	ErrAlreadyVoted   = service.ErrAlreadyVoted
	ErrBattleFinished = service.ErrBattleFinished
)
