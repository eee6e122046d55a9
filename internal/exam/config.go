// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package exam

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ecodeclub/examsite/internal/exam/internal/event"
	"github.com/ecodeclub/examsite/internal/exam/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
)

// BaseURLEnv 前端构建时用的同一个变量，配置文件里没有 exam.baseURL 的时候使用
const BaseURLEnv = "VITE_API_BASE_URL"

var errMissingBaseURL = fmt.Errorf("未配置考试服务地址，请设置 exam.baseURL 或者环境变量 %s", BaseURLEnv)

type Config struct {
	BaseURL string              `yaml:"baseURL"`
	Timeout time.Duration       `yaml:"timeout"`
	Retry   service.RetryConfig `yaml:"retry"`
}

// LoadConfig 读取 exam 配置，baseURL 按照 配置文件 > 环境变量 的顺序确定
func LoadConfig() (Config, error) {
	var cfg Config
	if econf.Get("exam") != nil {
		if err := econf.UnmarshalKey("exam", &cfg); err != nil {
			return Config{}, fmt.Errorf("读取 exam 配置失败: %w", err)
		}
	}
	return cfg.withDefaults(os.Getenv(BaseURLEnv))
}

func (c Config) withDefaults(envBaseURL string) (Config, error) {
	if c.BaseURL == "" {
		c.BaseURL = envBaseURL
	}
	if c.BaseURL == "" {
		return Config{}, errMissingBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	return c, nil
}

// NewBackend 使用 Config 创建调用考试后台的客户端
func NewBackend(cfg Config) *service.HTTPBackend {
	return service.NewHTTPBackend(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, cfg.Retry)
}

func initBackend() (service.Backend, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewBackend(cfg), nil
}

func initProducer(q mq.MQ) (event.ExamStartedEventProducer, error) {
	if q == nil {
		return nil, errors.New("mq 不能为空")
	}
	return event.NewExamStartedEventProducer(q)
}
