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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/errs"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/service"
	"github.com/go-playground/validator/v10"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrNotFound):
		return ginx.Result{Code: errs.NotFound.Code, Msg: errs.NotFound.Msg}, nil
	case errors.Is(err, service.ErrConflict):
		return ginx.Result{Code: errs.StatusConflict.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	default:
		return systemErrorResult, err
	}
}

func invalidInputResult(err error) ginx.Result {
	return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg + ": " + err.Error()}
}

// validB 先用 validator 校验请求，再交给 fn
func validB[Req any](fn func(ctx *ginx.Context, req Req) (ginx.Result, error)) func(ctx *ginx.Context, req Req) (ginx.Result, error) {
	return func(ctx *ginx.Context, req Req) (ginx.Result, error) {
		if err := validate.Struct(req); err != nil {
			return invalidInputResult(err), nil
		}
		return fn(ctx, req)
	}
}

func validBS[Req any](fn func(ctx *ginx.Context, req Req, sess session.Session) (ginx.Result, error)) func(ctx *ginx.Context, req Req, sess session.Session) (ginx.Result, error) {
	return func(ctx *ginx.Context, req Req, sess session.Session) (ginx.Result, error) {
		if err := validate.Struct(req); err != nil {
			return invalidInputResult(err), nil
		}
		return fn(ctx, req, sess)
	}
}
