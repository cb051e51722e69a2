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

package feed

import (
	"sync"

	"github.com/google/wire"
	"github.com/vyralabs/vyra/internal/content"
	"github.com/vyralabs/vyra/internal/engagement"
	"github.com/vyralabs/vyra/internal/feed/internal/domain"
	"github.com/vyralabs/vyra/internal/feed/internal/service"
	"github.com/vyralabs/vyra/internal/feed/internal/web"
	"github.com/vyralabs/vyra/internal/relation"
)

func InitModule(ctm *content.Module, em *engagement.Module, rm *relation.Module) (*Module, error) {
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

func InitService(ctm *content.Module, em *engagement.Module, rm *relation.Module) Service {
	once.Do(func() {
		svc = service.NewService(ctm.Svc, em.Svc, rm.Svc, domain.DefaultWeights())
	})
	return svc
}
