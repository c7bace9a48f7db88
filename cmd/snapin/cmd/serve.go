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

package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/koderover/snapin/pkg/config"
	"github.com/koderover/snapin/pkg/microservice/snapin/core/function/service"
	"github.com/koderover/snapin/pkg/microservice/snapin/server"
	"github.com/koderover/snapin/pkg/setting"
)

func init() {
	serveCmd.Flags().String("listen-addr", setting.DefaultListenAddr, "listen address of snapin serve")
	bindFlags(serveCmd.Flags(), map[string]string{"listen-addr": setting.ENVListenAddr})

	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the function API",
	Long:  "serve exposes every registered function at POST /api/v1/functions/:name.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		return server.Serve(ctx, config.ListenAddr(), service.DefaultRegistry())
	},
}

