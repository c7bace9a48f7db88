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
	"fmt"

	"github.com/pkg/errors"

	"github.com/koderover/snapin/pkg/setting"
	"github.com/koderover/snapin/pkg/tool/cache"
	"github.com/koderover/snapin/pkg/tool/llm"
)

// Summarizer condenses a command result into a short natural-language text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type SummarizerConfig struct {
	Token     string
	BaseURL   string
	Model     string
	MaxTokens int
	// PromptTokenLimit truncates the text before it is sent, 0 disables truncation.
	PromptTokenLimit int
}

type llmSummarizer struct {
	client llm.ILLM
	cache  cache.ICache
	cfg    SummarizerConfig
}

func NewLLMSummarizer(cfg SummarizerConfig, c cache.ICache) (Summarizer, error) {
	if cfg.Model == "" {
		cfg.Model = setting.DefaultSummaryModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = setting.DefaultSummaryMaxTokens
	}
	if c == nil {
		c = cache.NewMemCache(true)
	}

	client, err := llm.NewClient(llm.ProviderOpenAI)
	if err != nil {
		return nil, err
	}
	err = client.Configure(llm.LLMConfig{
		ProviderName: llm.ProviderOpenAI,
		Model:        cfg.Model,
		Token:        cfg.Token,
		BaseURL:      cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "configure summarizer")
	}

	return &llmSummarizer{
		client: client,
		cache:  c,
		cfg:    cfg,
	}, nil
}

func (s *llmSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	text, err := llm.TruncatePrompt(text, s.cfg.Model, s.cfg.PromptTokenLimit)
	if err != nil {
		return "", err
	}

	return s.client.Parse(ctx, fmt.Sprintf(setting.SummaryUserPrompt, text), s.cache,
		llm.WithModel(s.cfg.Model),
		llm.WithSystemPrompt(setting.SummarySystemPrompt),
		llm.WithMaxTokens(s.cfg.MaxTokens),
	)
}
