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

package github

import (
	"context"

	"github.com/google/go-github/v35/github"
)

func (c *Client) GetPullRequest(ctx context.Context, owner string, repo string, number int) (*github.PullRequest, error) {
	pr, err := wrap(c.PullRequests.Get(ctx, owner, repo, number))
	if p, ok := pr.(*github.PullRequest); ok {
		return p, err
	}

	return nil, err
}

// GetPullRequestDiff returns the unified diff of a pull request.
func (c *Client) GetPullRequestDiff(ctx context.Context, owner string, repo string, number int) (string, error) {
	diff, err := wrap(c.PullRequests.GetRaw(ctx, owner, repo, number, github.RawOptions{Type: github.Diff}))
	if d, ok := diff.(string); ok {
		return d, err
	}

	return "", err
}

type ReviewComment struct {
	Path string
	Line int
	Body string
}

// CreateReview posts a COMMENT review with inline comments on the given commit.
func (c *Client) CreateReview(ctx context.Context, owner, repo string, number int, commitID string, comments []*ReviewComment) (*github.PullRequestReview, error) {
	req := &github.PullRequestReviewRequest{
		CommitID: github.String(commitID),
		Event:    github.String("COMMENT"),
	}
	for _, cm := range comments {
		req.Comments = append(req.Comments, &github.DraftReviewComment{
			Path: github.String(cm.Path),
			Line: github.Int(cm.Line),
			Body: github.String(cm.Body),
		})
	}

	review, err := wrap(c.PullRequests.CreateReview(ctx, owner, repo, number, req))
	if r, ok := review.(*github.PullRequestReview); ok {
		return r, err
	}

	return nil, err
}
