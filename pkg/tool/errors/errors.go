/*
Copyright 2024 The KodeRover Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type HTTPError struct {
	code int
	err  string
	desc string
}

func NewHTTPError(code int, errStr string, args ...string) *HTTPError {
	var desc string
	if len(args) > 0 {
		desc = args[0]
	}

	return &HTTPError{
		code: code,
		err:  errStr,
		desc: desc,
	}
}

func (e *HTTPError) Code() int {
	return e.code
}

func (e *HTTPError) Error() string {
	return e.err
}

func (e *HTTPError) Desc() string {
	return e.desc
}

// AddDesc returns a copy of e carrying desc, the predefined errors stay untouched.
func (e *HTTPError) AddDesc(desc string) *HTTPError {
	err := *e
	err.desc = desc
	return &err
}

func (e *HTTPError) AddErr(err error) *HTTPError {
	return e.AddDesc(err.Error())
}

// ErrorMessage returns the status code and body for gin's JSON helpers.
func ErrorMessage(err error) (int, map[string]interface{}) {
	var v *HTTPError
	if errors.As(err, &v) {
		code := v.Code()
		if code >= 1000 {
			code = http.StatusBadRequest
		}
		return code, map[string]interface{}{
			"type":        "error",
			"message":     v.Error(),
			"code":        v.Code(),
			"description": v.Desc(),
		}
	}

	return ErrInternalError.Code(), map[string]interface{}{
		"type":        "error",
		"message":     ErrInternalError.Error(),
		"code":        ErrInternalError.Code(),
		"description": err.Error(),
	}
}

func String(err error) string {
	var v *HTTPError
	if errors.As(err, &v) {
		if v.desc != "" {
			return fmt.Sprintf("%s: %s", v.Error(), v.Desc())
		}
		return v.err
	}
	return err.Error()
}
