// Copyright 2023 ecodeclub
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

package submission

import (
	"github.com/ecodeclub/hirehub/internal/submission/internal/domain"
	"github.com/ecodeclub/hirehub/internal/submission/internal/event"
	"github.com/ecodeclub/hirehub/internal/submission/internal/service"
	"github.com/ecodeclub/hirehub/internal/submission/internal/web"
)

type Module struct {
	Svc         Service
	PipelineSvc PipelineService
	Hdl         *Handler
	AdminHdl    *AdminHandler
}

type (
	Service         = service.Service
	PipelineService = service.PipelineService
	Handler         = web.Handler
	AdminHandler    = web.AdminHandler
	Submission      = domain.Submission
	Status          = domain.Status
	TransitionEvent = event.TransitionEvent
)

const TransitionEventName = event.TransitionEventName

var (
	ErrSubmissionNotFound = service.ErrSubmissionNotFound
	ErrConflict           = service.ErrConflict
	ErrUnauthorized       = service.ErrUnauthorized
)
