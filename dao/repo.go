package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各实体 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// IsExist 按条件判断记录是否存在
func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByWhere 按条件取一条，未命中返回 gorm.ErrRecordNotFound
func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindOne 按条件取一条，未命中返回 nil 而不是错误
func (r Repo[T]) FindOne(ctx context.Context, where string, args ...any) (*T, error) {
	item, err := r.FindByWhere(ctx, where, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r Repo[T]) CountByWhere(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Count(&count).Error
	return count, err
}

// DeleteByWhere 按条件删除，返回删除的行数
func (r Repo[T]) DeleteByWhere(ctx context.Context, where string, args ...any) (int64, error) {
	var model T
	res := r.Db.WithContext(ctx).Where(where, args...).Delete(&model)
	return res.RowsAffected, res.Error
}
