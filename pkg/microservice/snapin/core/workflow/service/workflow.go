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

package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/koderover/snapin/pkg/config"
	"github.com/koderover/snapin/pkg/microservice/snapin/core/workflow/command"
	"github.com/koderover/snapin/pkg/setting"
	"github.com/koderover/snapin/pkg/tool/cache"
	"github.com/koderover/snapin/pkg/tool/timeline"
	"github.com/koderover/snapin/pkg/types"
)

type Config struct {
	GithubAPIBase           string
	RequestTimeout          time.Duration
	OpenAIBaseURL           string
	SummaryModel            string
	SummaryMaxTokens        int
	SummaryPromptTokenLimit int
	Cache                   cache.ICache
}

func ConfigFromEnv() *Config {
	return &Config{
		GithubAPIBase:           config.GithubAPIBase(),
		RequestTimeout:          config.RequestTimeout(),
		OpenAIBaseURL:           config.OpenAIBaseURL(),
		SummaryModel:            config.OpenAIModel(),
		SummaryMaxTokens:        config.SummaryMaxTokens(),
		SummaryPromptTokenLimit: config.SummaryPromptTokenLimit(),
		Cache:                   cache.New(false, cache.CacheType(config.LLMCacheType())),
	}
}

// Workflow is the /workflow command function.
type Workflow struct {
	cfg           *Config
	newSummarizer func(token string) (Summarizer, error)
}

func New(cfg *Config) *Workflow {
	w := &Workflow{cfg: cfg}
	w.newSummarizer = func(token string) (Summarizer, error) {
		return NewLLMSummarizer(SummarizerConfig{
			Token:            token,
			BaseURL:          cfg.OpenAIBaseURL,
			Model:            cfg.SummaryModel,
			MaxTokens:        cfg.SummaryMaxTokens,
			PromptTokenLimit: cfg.SummaryPromptTokenLimit,
		}, cfg.Cache)
	}
	return w
}

func (w *Workflow) Name() string {
	return setting.FunctionWorkflow
}

// Handle runs the command carried by event and posts exactly one reply on its source.
// Only a failure to post the reply is returned.
func (w *Workflow) Handle(ctx context.Context, event *types.Event, logger *zap.SugaredLogger) error {
	sourceID := event.SourceID()
	if sourceID == "" {
		return errors.New("event has no source id to reply to")
	}

	message := w.Execute(ctx, event.Parameters(),
		event.Keyring(setting.KeyringGithubAPIKey),
		event.Keyring(setting.KeyringOpenAIAPIKey),
		logger,
	)

	sink := timeline.NewClient(event.Endpoint(), event.Secret(setting.SecretServiceAccountToken), w.cfg.RequestTimeout)
	if err := sink.CreateTimelineComment(ctx, sourceID, message, setting.TimelineVisibilityExternal); err != nil {
		logger.Errorf("failed to post workflow reply on %s: %v", sourceID, err)
		return err
	}
	return nil
}

// Execute parses and runs input, returning the message to show to the user.
// Every failure is folded into the message.
func (w *Workflow) Execute(ctx context.Context, input, githubToken, openAIToken string, logger *zap.SugaredLogger) string {
	var summarizer Summarizer
	formatter := NewFormatter(nil)

	cmd, err := command.Parse(input)
	if err != nil {
		logger.Infof("workflow input %q not executed: %v", input, err)
		return formatter.FormatError(err)
	}

	result, err := NewDispatcher(w.cfg.GithubAPIBase, githubToken, w.cfg.RequestTimeout).Dispatch(ctx, cmd)
	if err != nil {
		logger.Errorf("workflow command %s failed: %v", cmd.Name(), err)
		return formatter.FormatError(err)
	}

	if cmd.Summary() {
		summarizer, err = w.newSummarizer(openAIToken)
		if err != nil {
			logger.Errorf("failed to create summarizer: %v", err)
			return formatter.FormatError(&UpstreamError{Message: err.Error()})
		}
		formatter = NewFormatter(summarizer)
	}

	message, err := formatter.Format(ctx, result)
	if err != nil {
		logger.Errorf("failed to format result of %s: %v", cmd.Name(), err)
		return formatter.FormatError(err)
	}
	return message
}
