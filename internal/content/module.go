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

package content

import (
	"github.com/vyralabs/vyra/internal/content/internal/domain"
	"github.com/vyralabs/vyra/internal/content/internal/service"
	"github.com/vyralabs/vyra/internal/content/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.Service
type Video = domain.Video
type Product = domain.Product
type Visibility = domain.Visibility

const (
	VisibilityPublic    = domain.VisibilityPublic
	VisibilityPrivate   = domain.VisibilityPrivate
	VisibilityFollowers = domain.VisibilityFollowers
)

var (
	ErrVideoNotFound = service.ErrVideoNotFound
)
