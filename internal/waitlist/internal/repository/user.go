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

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/studio/internal/waitlist/internal/domain"
	"github.com/ecodeclub/studio/internal/waitlist/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrAlreadyJoined = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{
		dao: d,
	}
}

func (ur *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.toEntity(u))
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dao.ErrDataNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return ur.toDomain(u), nil
}

func (ur *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:     u.Id,
		Email:  u.Email,
		Status: domain.UserStatus(u.Status),
		Ctime:  time.UnixMilli(u.Ctime),
		Utime:  time.UnixMilli(u.Utime),
	}
}

func (ur *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:     u.ID,
		Email:  u.Email,
		Status: string(u.Status),
	}
}
