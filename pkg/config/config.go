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

package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/koderover/snapin/pkg/setting"
)

func Mode() string {
	mode := viper.GetString(setting.ENVMode)
	if mode == "" {
		return setting.DebugMode
	}

	return mode
}

func LogLevel() string {
	level := viper.GetString(setting.ENVLogLevel)
	if level == "" {
		return "info"
	}

	return level
}

// LogFile is empty when logs go to the console only.
func LogFile() string {
	return viper.GetString(setting.ENVLogFile)
}

func RequestLogFile() string {
	if LogFile() == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(LogFile()), "request.log")
}

func ListenAddr() string {
	addr := viper.GetString(setting.ENVListenAddr)
	if addr == "" {
		return fmt.Sprintf(":%d", setting.SnapinService.Port)
	}

	return addr
}

func RequestTimeout() time.Duration {
	timeout := viper.GetDuration(setting.ENVRequestTimeout)
	if timeout <= 0 {
		return setting.DefaultRequestTimeout
	}

	return timeout
}

func GithubAPIBase() string {
	base := viper.GetString(setting.ENVGithubAPIBase)
	if base == "" {
		return setting.DefaultGithubAPIBase
	}

	return base
}

// OpenAIBaseURL is empty when the public OpenAI endpoint is used.
func OpenAIBaseURL() string {
	return viper.GetString(setting.ENVOpenAIBaseURL)
}

func OpenAIModel() string {
	model := viper.GetString(setting.ENVOpenAIModel)
	if model == "" {
		return setting.DefaultSummaryModel
	}

	return model
}

func ReviewModel() string {
	model := viper.GetString(setting.ENVReviewModel)
	if model == "" {
		return setting.DefaultReviewModel
	}

	return model
}

func SummaryMaxTokens() int {
	n := viper.GetInt(setting.ENVSummaryMaxTokens)
	if n <= 0 {
		return setting.DefaultSummaryMaxTokens
	}

	return n
}

// SummaryPromptTokenLimit returns 0 when prompts are sent untruncated.
func SummaryPromptTokenLimit() int {
	return viper.GetInt(setting.ENVSummaryPromptTokenLimit)
}

func LLMCacheType() string {
	t := viper.GetString(setting.ENVLLMCacheType)
	if t == "" {
		return "memory"
	}

	return t
}

func RedisHost() string {
	return viper.GetString(setting.ENVRedisHost)
}

func RedisPort() int64 {
	port := viper.GetInt64(setting.ENVRedisPort)
	if port == 0 {
		return 6379
	}

	return port
}

func RedisUserName() string {
	return viper.GetString(setting.ENVRedisUserName)
}

func RedisPassword() string {
	return viper.GetString(setting.ENVRedisPassword)
}

func RedisCommonCacheTokenDB() int {
	return viper.GetInt(setting.ENVRedisCommonCacheDB)
}
