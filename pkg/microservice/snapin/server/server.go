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

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/koderover/snapin/pkg/microservice/snapin/core/function/service"
	"github.com/koderover/snapin/pkg/microservice/snapin/server/rest"
	"github.com/koderover/snapin/pkg/tool/log"
)

// Serve runs the function API on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, registry *service.Registry) error {
	log.Infof("App Snapin Started at %s, functions: %v", time.Now(), registry.Names())

	engine := rest.NewEngine(registry)
	server := &http.Server{
		Addr:         addr,
		WriteTimeout: 10 * time.Minute,
		ReadTimeout:  time.Minute,
		IdleTimeout:  5 * time.Minute,
		Handler:      engine,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Failed to start http server, error: %s", err)
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Failed to stop server, error: %s", err)
			return err
		}
		return nil
	})

	return g.Wait()
}
