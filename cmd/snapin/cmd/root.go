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
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/koderover/snapin/pkg/config"
	"github.com/koderover/snapin/pkg/setting"
	"github.com/koderover/snapin/pkg/tool/log"
)

var rootCmd = &cobra.Command{
	Use:           setting.ProductName,
	Short:         "Snap-in function runtime",
	Long:          `snapin runs the workflow, repo_health and on_pr_creation functions, either behind an HTTP API or once over a fixture file.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-file", "", "also write JSON logs to this file")
	flags.String("github-api-base", "", "GitHub REST API base URL")
	flags.Duration("request-timeout", 0, "timeout of every outbound HTTP request")
	flags.String("llm-cache", "", "LLM response cache: memory, redis or none")

	bindFlags(flags, map[string]string{
		"log-level":       setting.ENVLogLevel,
		"log-file":        setting.ENVLogFile,
		"github-api-base": setting.ENVGithubAPIBase,
		"request-timeout": setting.ENVRequestTimeout,
		"llm-cache":       setting.ENVLLMCacheType,
	})
}

func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		_ = viper.BindPFlag(key, fs.Lookup(flag))
	}
}

func initConfig() {
	viper.AutomaticEnv()

	log.Init(&log.Config{
		Level:       config.LogLevel(),
		Filename:    config.LogFile(),
		Development: config.Mode() != setting.ReleaseMode,
		MaxSize:     5,
		MaxBackups:  3,
		MaxAge:      7,
	})
}
