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
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/koderover/snapin/pkg/setting"
	e "github.com/koderover/snapin/pkg/tool/errors"
	"github.com/koderover/snapin/pkg/tool/log"
)

// Context carries the per-request logger and the outcome rendered by JSONResponse.
type Context struct {
	Logger    *zap.SugaredLogger
	RequestID string
	Err       error
	Resp      interface{}
}

func NewContext(c *gin.Context) *Context {
	requestID := c.GetString(setting.RequestID)

	return &Context{
		Logger:    log.SugaredLogger().With(setting.RequestID, requestID),
		RequestID: requestID,
	}
}

// JSONResponse writes ctx.Err as an error body, or ctx.Resp with status 200.
func JSONResponse(c *gin.Context, ctx *Context) {
	if ctx.Err != nil {
		ctx.Logger.Errorf("request failed: %s", e.String(ctx.Err))
		_ = c.Error(ctx.Err)
		c.JSON(e.ErrorMessage(ctx.Err))
		c.Abort()
		return
	}

	if ctx.Resp != nil {
		c.JSON(http.StatusOK, ctx.Resp)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
