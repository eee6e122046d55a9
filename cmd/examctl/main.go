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

// examctl 运维用的命令行工具
//
//	examctl -config config/local.yaml list -status ACTIVE -keyword go
//	examctl -config config/local.yaml start -exam exam-1 -uid 123
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ecodeclub/examsite/internal/competition"
	"github.com/ecodeclub/examsite/internal/exam"
	"github.com/ecodeclub/examsite/internal/pkg/types"
	"github.com/ecodeclub/examsite/ioc"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/fatih/color"
	"github.com/gotomicro/ego/core/econf"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		color.Red("执行失败: %v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	root := flag.NewFlagSet("examctl", flag.ContinueOnError)
	cfgPath := root.String("config", "config/local.yaml", "配置文件")
	if err := root.Parse(args); err != nil {
		return err
	}
	if root.NArg() == 0 {
		return errors.New("缺少子命令: list | start")
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := loadConfig(*cfgPath); err != nil {
		return err
	}
	sub, rest := root.Arg(0), root.Args()[1:]
	switch sub {
	case "list":
		return runList(rest)
	case "start":
		return runStart(rest)
	default:
		return fmt.Errorf("未知子命令 %q", sub)
	}
}

func loadConfig(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}
	return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
}

func runList(args []string) error {
	set := flag.NewFlagSet("list", flag.ContinueOnError)
	status := set.String("status", "", "ACTIVE | INACTIVE | PENDING | COMPLETED，为空表示全部")
	keyword := set.String("keyword", "", "按标题搜索")
	sortBy := set.String("sort", string(competition.SortByStartAt), "排序字段")
	desc := set.Bool("desc", false, "倒序")
	offset := set.Int("offset", 0, "偏移量")
	limit := set.Int("limit", 0, "条数，0 表示默认值")
	if err := set.Parse(args); err != nil {
		return err
	}
	q := competition.ListQuery{
		Keyword: *keyword,
		SortBy:  competition.SortField(*sortBy),
		Desc:    *desc,
		Offset:  *offset,
		Limit:   *limit,
	}
	if *status != "" {
		st, err := types.ParseStatus(*status)
		if err != nil {
			return err
		}
		q.Status = st
	}

	db := ioc.InitDB()
	module := competition.InitModule(db, ioc.InitCache(ioc.InitRedis()))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	res := module.ListQuery.Observe().Result(ctx, q.Normalize())
	if res.IsError() {
		return res.Err
	}
	renderCompetitions(os.Stdout, res.Data)
	return nil
}

func runStart(args []string) error {
	set := flag.NewFlagSet("start", flag.ContinueOnError)
	examID := set.String("exam", "", "考试 ID")
	uid := set.Int64("uid", 0, "以该用户身份开考")
	if err := set.Parse(args); err != nil {
		return err
	}
	cfg, err := exam.LoadConfig()
	if err != nil {
		return err
	}
	// 开考事件只写进内存，不污染线上 kafka
	module, err := exam.InitModuleWithBackend(memory.NewMQ(), exam.NewBackend(cfg))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout*2)
	defer cancel()
	sess, err := module.Svc.Start(ctx, *uid, types.ID(*examID))
	if err != nil {
		return err
	}
	renderSession(os.Stdout, sess)
	return nil
}
