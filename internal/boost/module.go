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

package boost

import (
	"github.com/vyralabs/vyra/internal/boost/internal/domain"
	"github.com/vyralabs/vyra/internal/boost/internal/service"
	"github.com/vyralabs/vyra/internal/boost/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.Service
type Tier = domain.Tier
type Record = domain.Record
type Purchase = domain.Purchase
type Type = domain.Type

const (
	TypeGlow    = domain.TypeGlow
	TypeCampus  = domain.TypeCampus
	TypeHashtag = domain.TypeHashtag
	TypeProduct = domain.TypeProduct
)

var (
	ErrPointsNotEnough = service.ErrPointsNotEnough
	ErrUnknownType     = service.ErrUnknownType
	ErrNotOwner        = service.ErrNotOwner
)
