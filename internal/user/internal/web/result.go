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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pfehub/internal/user/internal/errs"
	"github.com/ecodeclub/pfehub/internal/user/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrNotFound):
		return ginx.Result{Code: errs.UserNotFound.Code, Msg: errs.UserNotFound.Msg}, nil
	case errors.Is(err, service.ErrDuplicate):
		return ginx.Result{Code: errs.UserDuplicate.Code, Msg: errs.UserDuplicate.Msg}, nil
	case errors.Is(err, service.ErrInvalidCredentials):
		return ginx.Result{Code: errs.InvalidCredentials.Code, Msg: errs.InvalidCredentials.Msg}, nil
	case errors.Is(err, service.ErrInactive):
		return ginx.Result{Code: errs.UserInactive.Code, Msg: errs.UserInactive.Msg}, nil
	default:
		return systemErrorResult, err
	}
}
