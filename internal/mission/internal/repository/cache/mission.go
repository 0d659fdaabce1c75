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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/studio/internal/mission/internal/domain"
	"github.com/pkg/errors"
)

const (
	missionExpiration = 10 * time.Minute
)

var (
	ErrMissionNotFound = errors.New("任务没找到")
)

//go:generate mockgen -source=./mission.go -package=cachemocks -destination=mocks/mission.mock.go MissionCache
type MissionCache interface {
	SetMission(ctx context.Context, m domain.Mission) error
	GetMission(ctx context.Context, id int64) (domain.Mission, error)
}

type missionCache struct {
	ec ecache.Cache
}

func NewMissionCache(ec ecache.Cache) MissionCache {
	return &missionCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "mission:",
		},
	}
}

func (c *missionCache) SetMission(ctx context.Context, m domain.Mission) error {
	val, err := json.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "序列化任务失败")
	}
	return c.ec.Set(ctx, c.missionKey(m.ID), string(val), missionExpiration)
}

func (c *missionCache) GetMission(ctx context.Context, id int64) (domain.Mission, error) {
	val := c.ec.Get(ctx, c.missionKey(id))
	if val.KeyNotFound() {
		return domain.Mission{}, ErrMissionNotFound
	}
	if val.Err != nil {
		return domain.Mission{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var m domain.Mission
	err := json.Unmarshal([]byte(val.Val.(string)), &m)
	if err != nil {
		return domain.Mission{}, errors.Wrap(err, "反序列化任务失败")
	}
	return m, nil
}

func (c *missionCache) missionKey(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
