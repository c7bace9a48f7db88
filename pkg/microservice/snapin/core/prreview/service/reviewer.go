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
	"fmt"

	"github.com/pkg/errors"

	"github.com/koderover/snapin/pkg/tool/cache"
	githubtool "github.com/koderover/snapin/pkg/tool/git/github"
	"github.com/koderover/snapin/pkg/tool/llm"
)

const reviewPrompt = `Review this PR diff and provide specific feedback for problematic lines. Format your response as a JSON object with a "comments" array, where each entry has:
- line_number: the line number (found at the start of each line before the | character)
- comment: your specific feedback for that line
- path: the file path (found in the diff headers, without the a/ or b/ prefix)
Only include entries where you have concrete suggestions or concerns.

Note: Each code line starts with a line number followed by | character. Use these line numbers in your response.
Output: {"comments": [{...}, {...}]}

PR diff:

%s`

const issuePrompt = `Generate a title and description for the issue based on the following PR diff: %s
Give a short title and a detailed description of the issue in JSON format.
Output: {"title": "...", "description": "..."}`

const reviewTemperature = 0.7

type Comment struct {
	LineNumber int    `json:"line_number"`
	Comment    string `json:"comment"`
	Path       string `json:"path"`
}

type IssueDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Reviewer asks the model for inline review comments and issue drafts.
type Reviewer struct {
	client llm.ILLM
	cache  cache.ICache
	model  string
}

func NewReviewer(client llm.ILLM, c cache.ICache, model string) *Reviewer {
	if c == nil {
		c = cache.NewMemCache(true)
	}
	return &Reviewer{client: client, cache: c, model: model}
}

func (r *Reviewer) ask(ctx context.Context, prompt string, out interface{}) error {
	answer, err := r.client.Parse(ctx, prompt, r.cache,
		llm.WithModel(r.model),
		llm.WithTemperature(reviewTemperature),
		llm.WithJSONResponse(),
	)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(answer), out); err != nil {
		return errors.Wrapf(err, "model answered with invalid JSON: %s", answer)
	}
	return nil
}

// Review returns the comments the model has on diff.
func (r *Reviewer) Review(ctx context.Context, diff string) ([]*Comment, error) {
	resp := &struct {
		Comments []*Comment `json:"comments"`
	}{}
	if err := r.ask(ctx, fmt.Sprintf(reviewPrompt, AnnotateDiff(diff)), resp); err != nil {
		return nil, errors.Wrap(err, "failed to get AI review")
	}

	var comments []*Comment
	for _, c := range resp.Comments {
		if c == nil || c.Path == "" || c.LineNumber <= 0 || c.Comment == "" {
			continue
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// DraftIssue proposes a title and description for the issue a PR resolves.
func (r *Reviewer) DraftIssue(ctx context.Context, diff string) (*IssueDraft, error) {
	draft := &IssueDraft{}
	if err := r.ask(ctx, fmt.Sprintf(issuePrompt, diff), draft); err != nil {
		return nil, errors.Wrap(err, "failed to draft issue")
	}
	if draft.Title == "" {
		return nil, errors.New("model returned an empty issue title")
	}
	return draft, nil
}

func toReviewComments(comments []*Comment) []*githubtool.ReviewComment {
	res := make([]*githubtool.ReviewComment, 0, len(comments))
	for _, c := range comments {
		res = append(res, &githubtool.ReviewComment{
			Path: c.Path,
			Line: c.LineNumber,
			Body: c.Comment,
		})
	}
	return res
}
