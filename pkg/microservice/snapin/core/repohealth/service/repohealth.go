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
	"github.com/koderover/snapin/pkg/setting"
	githubtool "github.com/koderover/snapin/pkg/tool/git/github"
	"github.com/koderover/snapin/pkg/tool/timeline"
	"github.com/koderover/snapin/pkg/types"
)

type Config struct {
	GithubAPIBase  string
	RequestTimeout time.Duration
	GithubCache    *githubtool.ResponseCache
}

func ConfigFromEnv() *Config {
	return &Config{
		GithubAPIBase:  config.GithubAPIBase(),
		RequestTimeout: config.RequestTimeout(),
		GithubCache:    githubtool.NewResponseCache(),
	}
}

// RepoHealth answers a repository URL with a health report on the source object.
type RepoHealth struct {
	cfg *Config
}

func New(cfg *Config) *RepoHealth {
	if cfg.GithubCache == nil {
		cfg.GithubCache = githubtool.NewResponseCache()
	}
	return &RepoHealth{cfg: cfg}
}

func (h *RepoHealth) Name() string {
	return setting.FunctionRepoHealth
}

func (h *RepoHealth) Handle(ctx context.Context, event *types.Event, logger *zap.SugaredLogger) error {
	owner, repo, err := ParseRepositoryURL(event.Parameters())
	if err != nil {
		return err
	}

	client, err := githubtool.NewClient(ctx, &githubtool.Config{
		BaseURL: h.cfg.GithubAPIBase,
		Token:   event.Keyring(setting.KeyringGithubConnection),
		Timeout: h.cfg.RequestTimeout,
		Cache:   h.cfg.GithubCache,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create github client")
	}

	repository, err := client.GetRepository(ctx, owner, repo)
	if err != nil {
		return errors.Wrapf(err, "failed to fetch repo details of %s/%s", owner, repo)
	}

	report := NewReport(repository)
	logger.Infof("repository %s scored %d", report.FullName, report.Score)

	sink := timeline.NewClient(event.Endpoint(), event.Secret(setting.SecretServiceAccountToken), h.cfg.RequestTimeout)
	return sink.CreateTimelineComment(ctx, event.SourceID(), report.Render(), setting.TimelineVisibilityInternal)
}
