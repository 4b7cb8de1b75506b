package pagination

import (
	"strings"

	"gorm.io/gorm"
)

const DefaultLimit = 10

// Meta 分页元信息
type Meta struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	Limit       int   `json:"limit"`
}

// Normalize 把外部传入的 page/limit 收敛为合法值（page>=1, limit>=1）
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// Offset 计算偏移量
func Offset(page, limit int) int {
	page, limit = Normalize(page, limit)
	return (page - 1) * limit
}

// NewMeta 根据总数计算分页元信息
// totalPages = ceil(total/limit)
func NewMeta(page, limit int, total int64) Meta {
	page, limit = Normalize(page, limit)
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Meta{
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
		Limit:       limit,
	}
}

// PageSize 第 page 页应返回的条数：min(limit, total-(page-1)*limit)，不为负
func PageSize(page, limit int, total int64) int {
	page, limit = Normalize(page, limit)
	remain := total - int64(page-1)*int64(limit)
	if remain <= 0 {
		return 0
	}
	if remain > int64(limit) {
		return limit
	}
	return int(remain)
}

// 允许排序的列，防止把任意参数拼进 ORDER BY
var sortableColumns = map[string]bool{
	"created_at": true,
	"views":      true,
	"duration":   true,
	"title":      true,
}

// OrderClause 生成稳定排序子句：排序键相同的行再按 id 定序，
// 保证翻页时边界不漂移。默认 created_at DESC
func OrderClause(sortBy, sortDir string) string {
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortDir, "asc") {
		dir = "ASC"
	}
	return sortBy + " " + dir + ", id " + dir
}

// Scope 可直接挂在 gorm 查询链上的分页+稳定排序
func Scope(page, limit int, sortBy, sortDir string) func(*gorm.DB) *gorm.DB {
	page, limit = Normalize(page, limit)
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(OrderClause(sortBy, sortDir)).
			Offset(Offset(page, limit)).
			Limit(limit)
	}
}
