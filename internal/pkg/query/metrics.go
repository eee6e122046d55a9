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

package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	eventHit    = "hit"
	eventMiss   = "miss"
	eventShared = "shared"
	eventFetch  = "fetch"
	eventRetry  = "retry"
	eventError  = "error"
)

var eventCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "examsite",
		Subsystem: "query",
		Name:      "events_total",
		Help:      "查询层缓存命中、合并、拉取、重试和失败次数",
	},
	[]string{"query", "event"},
)

func (c *Client[Q, R]) record(event string) {
	eventCounter.WithLabelValues(c.name, event).Inc()
}
