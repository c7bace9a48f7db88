/*
Copyright 2023 The K8sGPT Authors.
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

// Some parts of this file have been modified to make it functional in Snapin

package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"

	"github.com/koderover/snapin/pkg/tool/cache"
	"github.com/koderover/snapin/pkg/tool/log"
)

const (
	DefaultOpenAIModel = openai.GPT3Dot5Turbo
)

type OpenAIClient struct {
	name   string
	model  string
	token  string
	client *openai.Client
}

func (c *OpenAIClient) Configure(config LLMConfig) error {
	defaultConfig := openai.DefaultConfig(config.GetToken())
	if config.GetBaseURL() != "" {
		defaultConfig.BaseURL = config.GetBaseURL()
	}

	client := openai.NewClientWithConfig(defaultConfig)
	if client == nil {
		return errors.New("error creating OpenAI client")
	}

	c.client = client
	c.name = config.GetName()
	c.model = config.GetModel()
	c.token = config.GetToken()
	return nil
}

func (c *OpenAIClient) GetCompletion(ctx context.Context, prompt string, options ...ParamOption) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client is not configured")
	}

	opts := ParamOptions{}
	for _, opt := range options {
		opt(&opts)
	}

	var messages []openai.ChatCompletionMessage
	if opts.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: opts.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       c.resolveModel(opts),
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	if opts.JSONResponse {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("create chat completion failed: empty choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) resolveModel(opts ParamOptions) string {
	if opts.Model != "" {
		return opts.Model
	}
	if c.model != "" {
		return c.model
	}
	return DefaultOpenAIModel
}

// Parse behaves like GetCompletion but serves repeated prompts from cache.
func (c *OpenAIClient) Parse(ctx context.Context, prompt string, cache cache.ICache, options ...ParamOption) (string, error) {
	opts := ParamOptions{}
	for _, opt := range options {
		opt(&opts)
	}
	cacheKey := GetCacheKey(c.GetName(), c.token, fmt.Sprintf("%s|%s|%s", c.resolveModel(opts), opts.SystemPrompt, prompt))

	if !cache.IsCacheDisabled() && cache.Exists(cacheKey) {
		response, err := cache.Load(cacheKey)
		if err != nil {
			return "", err
		}

		if response != "" {
			output, err := base64.StdEncoding.DecodeString(response)
			if err != nil {
				log.Errorf("error decoding cached data: %v", err)
			} else {
				return string(output), nil
			}
		}
	}

	response, err := c.GetCompletion(ctx, prompt, options...)
	if err != nil {
		return "", err
	}

	if !cache.IsCacheDisabled() {
		if err := cache.Store(cacheKey, base64.StdEncoding.EncodeToString([]byte(response))); err != nil {
			log.Errorf("error storing value to cache: %v", err)
		}
	}

	return response, nil
}

func (c *OpenAIClient) GetName() string {
	if c.name == "" {
		return string(ProviderOpenAI)
	}
	return c.name
}

func (c *OpenAIClient) GetModel() string {
	return c.model
}

// TruncatePrompt cuts prompt down to at most limit tokens of the model's encoding.
func TruncatePrompt(prompt, model string, limit int) (string, error) {
	if limit <= 0 {
		return prompt, nil
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return "", fmt.Errorf("EncodingForModel error: %w", err)
	}

	tokens := tkm.Encode(prompt, nil, nil)
	if len(tokens) <= limit {
		return prompt, nil
	}
	log.Debugf("prompt truncated from %d to %d tokens", len(tokens), limit)
	return tkm.Decode(tokens[:limit]), nil
}
