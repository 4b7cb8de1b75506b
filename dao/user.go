package dao

import (
	"context"

	"VideoTube/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// GetByID 按 ID 查询用户，未命中返回 nil
func (d *UserDAO) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	return d.FindOne(ctx, "id = ?", userID)
}

// GetByUserName 按用户名查询，未命中返回 nil
func (d *UserDAO) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	return d.FindOne(ctx, "user_name = ?", userName)
}

// IsUserNameExist 判断用户名是否已占用
func (d *UserDAO) IsUserNameExist(ctx context.Context, userName string) bool {
	exist, _ := d.IsExist(ctx, "user_name = ?", userName)
	return exist
}

// IsEmailExist 判断邮箱是否已占用
func (d *UserDAO) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := d.IsExist(ctx, "email = ?", email)
	return exist
}

// BatchGetByIDs 批量查询用户，返回 id -> user 映射
func (d *UserDAO) BatchGetByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	result := make(map[int64]*models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []*models.User
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}
