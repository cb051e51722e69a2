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

package feed

import (
	"github.com/vyralabs/vyra/internal/feed/internal/domain"
	"github.com/vyralabs/vyra/internal/feed/internal/service"
	"github.com/vyralabs/vyra/internal/feed/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.Service
type FeedItem = service.FeedItem
type Weights = domain.Weights

var (
	ErrInvalidCoordinates = service.ErrInvalidCoordinates

	DefaultWeights = domain.DefaultWeights
)
