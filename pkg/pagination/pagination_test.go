package pagination

import "testing"

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		wantPages  int
		wantOffset int
	}{
		{"整除", 1, 10, 100, 10, 0},
		{"有余数", 2, 10, 101, 11, 10},
		{"空结果", 1, 10, 0, 0, 0},
		{"单条", 1, 10, 1, 1, 0},
		{"page非法收敛到1", 0, 10, 50, 5, 0},
		{"limit非法收敛到默认", 3, 0, 95, 10, 20},
		{"limit为1", 5, 1, 7, 7, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.limit, tt.total)
			if meta.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if got := Offset(tt.page, tt.limit); got != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", got, tt.wantOffset)
			}
			if meta.Total != tt.total {
				t.Errorf("Total = %d, want %d", meta.Total, tt.total)
			}
		})
	}
}

// 不变量：对 [1, totalPages] 内任意 page，
// 该页条数 == min(limit, total-(page-1)*limit)
func TestPageSize_Invariant(t *testing.T) {
	totals := []int64{0, 1, 9, 10, 11, 99, 100, 101}
	limits := []int{1, 3, 10, 20}

	for _, total := range totals {
		for _, limit := range limits {
			meta := NewMeta(1, limit, total)
			var sum int64
			for page := 1; page <= meta.TotalPages; page++ {
				n := PageSize(page, limit, total)
				if n < 1 || n > limit {
					t.Fatalf("total=%d limit=%d page=%d: size %d out of range", total, limit, page, n)
				}
				sum += int64(n)
			}
			if sum != total {
				t.Fatalf("total=%d limit=%d: page sizes sum to %d", total, limit, sum)
			}
			// 页码越界应返回 0
			if got := PageSize(meta.TotalPages+1, limit, total); got != 0 {
				t.Fatalf("total=%d limit=%d: page past end returned %d", total, limit, got)
			}
		}
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sortBy  string
		sortDir string
		want    string
	}{
		{"", "", "created_at DESC, id DESC"},
		{"created_at", "asc", "created_at ASC, id ASC"},
		{"views", "desc", "views DESC, id DESC"},
		{"title", "ASC", "title ASC, id ASC"},
		// 不在白名单里的列回退到默认排序
		{"password; DROP TABLE users", "asc", "created_at ASC, id ASC"},
	}

	for _, tt := range tests {
		if got := OrderClause(tt.sortBy, tt.sortDir); got != tt.want {
			t.Errorf("OrderClause(%q, %q) = %q, want %q", tt.sortBy, tt.sortDir, got, tt.want)
		}
	}
}
