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

package rest

import (
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	commonhandler "github.com/koderover/snapin/pkg/microservice/snapin/core/common/handler"
	functionhandler "github.com/koderover/snapin/pkg/microservice/snapin/core/function/handler"
	"github.com/koderover/snapin/pkg/tool/metrics"

	// registers the generated API doc with swag
	_ "github.com/koderover/snapin/pkg/microservice/snapin/server/rest/doc"
)

// @title Snapin function service REST APIs
// @version 1.0
// @description Runs snap-in functions such as the /workflow command over event batches.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

func (s *engine) injectRouterGroup(router *gin.RouterGroup) {
	public := router.Group("/api")
	{
		public.GET("/health", commonhandler.Health)
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	for name, r := range map[string]injector{
		"/api/v1": functionhandler.NewRouter(s.registry),
	} {
		r.Inject(router.Group(name))
	}

	router.GET("/api/apidocs/*any", ginswagger.WrapHandler(swaggerfiles.Handler))
}

type injector interface {
	Inject(router *gin.RouterGroup)
}
