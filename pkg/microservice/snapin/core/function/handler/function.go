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

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/koderover/snapin/pkg/microservice/snapin/core/function/service"
	internalhandler "github.com/koderover/snapin/pkg/shared/handler"
	e "github.com/koderover/snapin/pkg/tool/errors"
	"github.com/koderover/snapin/pkg/types"
)

type functionList struct {
	Functions []string `json:"functions"`
}

// @Summary List Functions
// @Description List the names of the registered functions
// @Tags 	function
// @Produce json
// @Success 200 {object} handler.functionList
// @Router /api/v1/functions [get]
func (r *Router) ListFunctions(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	ctx.Resp = &functionList{Functions: r.registry.Names()}
}

// RunFunction runs the named function over the event batch in the request body and
// answers with the batch report.
// @Summary Run Function
// @Description Run a function over a batch of events, one event at a time
// @Tags 	function
// @Accept 	json
// @Produce json
// @Param 	name	path		string			true	"function name"
// @Param 	body	body		[]types.Event	true	"event batch"
// @Success 200 	{object} 	service.Report
// @Failure 400 	{object} 	map[string]interface{}
// @Failure 404 	{object} 	map[string]interface{}
// @Router /api/v1/functions/{name} [post]
func (r *Router) RunFunction(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	name := c.Param("name")
	if _, err := r.registry.Get(name); err != nil {
		ctx.Err = e.ErrFunctionNotFound.AddDesc(name)
		return
	}

	var events []*types.Event
	if err := c.ShouldBindJSON(&events); err != nil {
		ctx.Err = e.ErrInvalidEvents.AddErr(err)
		return
	}

	report, err := r.registry.Run(c.Request.Context(), name, events, ctx.Logger)
	if err != nil {
		if errors.Is(err, service.ErrFunctionNotFound) {
			ctx.Err = e.ErrFunctionNotFound.AddDesc(name)
			return
		}
		ctx.Err = e.ErrRunFunction.AddErr(err)
		return
	}
	ctx.Resp = report
}
