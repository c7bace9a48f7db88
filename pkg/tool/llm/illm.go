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
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/koderover/snapin/pkg/tool/cache"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
)

var (
	clients = map[Provider]func() ILLM{
		ProviderOpenAI: func() ILLM { return &OpenAIClient{} },
	}
)

type ILLM interface {
	Configure(config LLMConfig) error
	GetCompletion(ctx context.Context, prompt string, options ...ParamOption) (string, error)
	Parse(ctx context.Context, prompt string, cache cache.ICache, options ...ParamOption) (string, error)
	GetName() string
	GetModel() string
}

// NewClient returns an unconfigured client. Every call returns a new instance since
// credentials differ per event.
func NewClient(provider Provider) (ILLM, error) {
	if c, ok := clients[provider]; !ok {
		return nil, fmt.Errorf("provider %s not supported", provider)
	} else {
		return c(), nil
	}
}

type LLMConfig struct {
	Name         string
	ProviderName Provider
	Model        string
	Token        string
	BaseURL      string
}

func (p *LLMConfig) GetName() string {
	return p.Name
}

func (p *LLMConfig) GetBaseURL() string {
	return p.BaseURL
}

func (p *LLMConfig) GetToken() string {
	return p.Token
}

func (p *LLMConfig) GetModel() string {
	return p.Model
}

// GetCacheKey scopes cached completions to the credential that produced them.
func GetCacheKey(provider, token, sEnc string) string {
	tokenHash := sha256.Sum256([]byte(token))
	data := fmt.Sprintf("%s-%s-%s", provider, hex.EncodeToString(tokenHash[:]), sEnc)

	hash := sha256.Sum256([]byte(data))

	return hex.EncodeToString(hash[:])
}
