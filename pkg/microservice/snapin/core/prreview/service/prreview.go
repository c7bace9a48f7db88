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
	"encoding/json"
	"strings"
	"time"

	"github.com/google/go-github/v35/github"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/koderover/snapin/pkg/config"
	"github.com/koderover/snapin/pkg/setting"
	"github.com/koderover/snapin/pkg/tool/cache"
	githubtool "github.com/koderover/snapin/pkg/tool/git/github"
	"github.com/koderover/snapin/pkg/tool/llm"
	"github.com/koderover/snapin/pkg/tool/timeline"
	"github.com/koderover/snapin/pkg/types"
)

const actionOpened = "opened"

type Config struct {
	GithubAPIBase  string
	RequestTimeout time.Duration
	OpenAIBaseURL  string
	ReviewModel    string
	Cache          cache.ICache
	GithubCache    *githubtool.ResponseCache
}

func ConfigFromEnv() *Config {
	return &Config{
		GithubAPIBase:  config.GithubAPIBase(),
		RequestTimeout: config.RequestTimeout(),
		OpenAIBaseURL:  config.OpenAIBaseURL(),
		ReviewModel:    config.ReviewModel(),
		Cache:          cache.New(false, cache.CacheType(config.LLMCacheType())),
		GithubCache:    githubtool.NewResponseCache(),
	}
}

// PRReview reviews newly opened pull requests with the LLM and posts the comments on GitHub.
type PRReview struct {
	cfg *Config
}

func New(cfg *Config) *PRReview {
	if cfg.ReviewModel == "" {
		cfg.ReviewModel = setting.DefaultReviewModel
	}
	if cfg.GithubCache == nil {
		cfg.GithubCache = githubtool.NewResponseCache()
	}
	return &PRReview{cfg: cfg}
}

func (p *PRReview) Name() string {
	return setting.FunctionOnPRCreation
}

// Handle ignores events that are not a forwarded "opened" pull_request webhook.
func (p *PRReview) Handle(ctx context.Context, event *types.Event, logger *zap.SugaredLogger) error {
	body := event.WebhookBody()
	if strings.TrimSpace(body) == "" {
		logger.Info("event is empty")
		return nil
	}

	prEvent := &github.PullRequestEvent{}
	if err := json.Unmarshal([]byte(body), prEvent); err != nil {
		logger.Warnf("failed to decode pull request webhook: %v", err)
		return nil
	}
	if prEvent.GetAction() != actionOpened {
		logger.Debugf("skip pull request action %q", prEvent.GetAction())
		return nil
	}

	owner, repo, ok := strings.Cut(prEvent.GetRepo().GetFullName(), "/")
	if !ok {
		return errors.Errorf("invalid repository full name %q", prEvent.GetRepo().GetFullName())
	}
	number := prEvent.GetPullRequest().GetNumber()

	gh, err := githubtool.NewClient(ctx, &githubtool.Config{
		BaseURL: p.cfg.GithubAPIBase,
		Token:   event.Keyring(setting.KeyringGithub),
		Timeout: p.cfg.RequestTimeout,
		Cache:   p.cfg.GithubCache,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create github client")
	}

	client, err := llm.NewClient(llm.ProviderOpenAI)
	if err != nil {
		return err
	}
	err = client.Configure(llm.LLMConfig{
		ProviderName: llm.ProviderOpenAI,
		Model:        p.cfg.ReviewModel,
		Token:        event.Keyring(setting.KeyringOpenAI),
		BaseURL:      p.cfg.OpenAIBaseURL,
	})
	if err != nil {
		return errors.Wrap(err, "failed to configure llm client")
	}
	reviewer := NewReviewer(client, p.cfg.Cache, p.cfg.ReviewModel)

	diff, err := gh.GetPullRequestDiff(ctx, owner, repo, number)
	if err != nil {
		return errors.Wrapf(err, "failed to get diff of %s/%s#%d", owner, repo, number)
	}

	if issueID := ExtractIssueID(prEvent.GetPullRequest().GetBody()); issueID != "" {
		sink := timeline.NewClient(event.Endpoint(), event.Secret(setting.SecretServiceAccountToken), p.cfg.RequestTimeout)
		if err := p.updateIssue(ctx, reviewer, sink, issueID, diff); err != nil {
			logger.Errorf("failed to update issue %s: %v", issueID, err)
		}
	}

	comments, err := reviewer.Review(ctx, diff)
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		logger.Infof("no review comments for %s/%s#%d", owner, repo, number)
		return nil
	}

	pr, err := gh.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		return errors.Wrapf(err, "failed to get pull request %s/%s#%d", owner, repo, number)
	}
	if _, err := gh.CreateReview(ctx, owner, repo, number, pr.GetHead().GetSHA(), toReviewComments(comments)); err != nil {
		return errors.Wrapf(err, "failed to post review on %s/%s#%d", owner, repo, number)
	}

	logger.Infof("posted %d review comments on %s/%s#%d", len(comments), owner, repo, number)
	return nil
}

func (p *PRReview) updateIssue(ctx context.Context, reviewer *Reviewer, sink *timeline.Client, issueID, diff string) error {
	draft, err := reviewer.DraftIssue(ctx, diff)
	if err != nil {
		return err
	}
	return sink.UpdateWork(ctx, issueID, draft.Title, draft.Description)
}
