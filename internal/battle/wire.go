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

//go:build wireinject

package battle

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/vyralabs/vyra/internal/battle/internal/repository"
	"github.com/vyralabs/vyra/internal/battle/internal/repository/dao"
	"github.com/vyralabs/vyra/internal/battle/internal/service"
	"github.com/vyralabs/vyra/internal/battle/internal/web"
	"github.com/vyralabs/vyra/internal/credit"
)

func InitModule(db *egorm.Component, cm *credit.Module) (*Module, error) {
	wire.Build(
		InitService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, cm *credit.Module) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewBattleDAO(db)
		r := repository.NewBattleRepository(d)
		svc = service.NewService(r, cm.Svc, credit.DefaultRewardSchedule())
	})
	return svc
}
