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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

func InitMQ() mq.MQ {
	type Config struct {
		Network   string        `yaml:"network"`
		Addresses []string      `yaml:"addresses"`
		Topics    []topicConfig `yaml:"topics"`
	}

	var cfg Config
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}

	var q mq.MQ
	if len(cfg.Addresses) == 0 {
		// 没配 kafka 的时候退化为进程内的实现，开考事件只在本进程可见
		elog.DefaultLogger.Warn("未配置 kafka.addresses，使用内存 MQ")
		q = memory.NewMQ()
	} else {
		q, err = kafka.NewMQ(cfg.Network, cfg.Addresses)
		if err != nil {
			panic(err)
		}
	}
	createTopics(q, cfg.Topics)
	return q
}

func createTopics(q mq.MQ, topics []topicConfig) {
	ctx, cancelFunc := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelFunc()
	for _, t := range topics {
		if e := q.CreateTopic(ctx, t.Name, t.Partitions); e != nil {
			panic(fmt.Sprintf("创建Topic失败: %s : Topic = %s, Partitions = %d", e.Error(), t.Name, t.Partitions))
		}
	}
}
