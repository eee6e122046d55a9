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

package dao

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/examsite/internal/pkg/types"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type CompetitionDAO interface {
	List(ctx context.Context, filter Filter, offset, limit int) ([]Competition, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	GetByID(ctx context.Context, id string) (Competition, error)
}

type Filter struct {
	Status  string
	Keyword string
	// OrderBy 列名，由调用方保证合法
	OrderBy string
	Desc    bool
}

type CompetitionGORMDAO struct {
	db *egorm.Component
}

func NewCompetitionGORMDAO(db *egorm.Component) CompetitionDAO {
	return &CompetitionGORMDAO{db: db}
}

func (dao *CompetitionGORMDAO) List(ctx context.Context, filter Filter, offset, limit int) ([]Competition, error) {
	var res []Competition
	order := filter.OrderBy
	if filter.Desc {
		order += " DESC"
	}
	err := dao.where(dao.db.WithContext(ctx), filter).
		Order(order).Order("id").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *CompetitionGORMDAO) Count(ctx context.Context, filter Filter) (int64, error) {
	var res int64
	err := dao.where(dao.db.WithContext(ctx).Model(&Competition{}), filter).
		Count(&res).Error
	return res, err
}

func (dao *CompetitionGORMDAO) GetByID(ctx context.Context, id string) (Competition, error) {
	var res Competition
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *CompetitionGORMDAO) where(db *gorm.DB, filter Filter) *gorm.DB {
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		db = db.Where("title LIKE ?", fmt.Sprintf("%%%s%%", escapeLike(filter.Keyword)))
	}
	return db
}

// MySQL 默认用反斜杠做 LIKE 的转义字符
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike 关键字里的 % 和 _ 按字面匹配
func escapeLike(keyword string) string {
	return likeEscaper.Replace(keyword)
}

// Competition 列名都是 snake_case，时间都是毫秒
type Competition struct {
	Id               types.ID     `gorm:"primaryKey;type:varchar(64)"`
	Title            string       `gorm:"type:varchar(256)"`
	Description      string       `gorm:"type:text"`
	Status           types.Status `gorm:"type:varchar(16);index"`
	ExamId           types.ID     `gorm:"type:varchar(64)"`
	StartAt          int64        `gorm:"index"`
	EndAt            int64
	ParticipantCount int64
	Ctime            int64
	Utime            int64
}

func (Competition) TableName() string {
	return "competitions"
}
