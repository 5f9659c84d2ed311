package paging

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params is offset pagination: 1-based page, bounded page size. Handlers
// validate the raw request; Normalize only fills defaults for zero values.
type Params struct {
	Page     int
	PageSize int
}

func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func Paginate(p Params) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PageSize)
	}
}

// SortSpec whitelists the sortable columns of one collection. Unknown or
// empty keys resolve to Default. Every ordering ends with "id ASC" so that
// rows with equal sort values keep a stable position across pages.
type SortSpec struct {
	Columns  map[string][]string
	Default  string
	TieBreak string
}

func (s SortSpec) OrderBy(key string, asc bool) string {
	cols, ok := s.Columns[key]
	if !ok || len(cols) == 0 {
		cols = s.Columns[s.Default]
	}
	dir := "DESC"
	if asc {
		dir = "ASC"
	}
	tie := s.TieBreak
	if tie == "" {
		tie = "id ASC"
	}
	parts := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		parts = append(parts, c+" "+dir)
	}
	parts = append(parts, tie)
	return strings.Join(parts, ", ")
}

// Conjunctive range filters; an absent bound is a no-op, never an exclusion.

const dateLayout = "2006-01-02"

// DateRange filters column to the inclusive [from, to] day range. Bounds are
// "YYYY-MM-DD" strings straight from the query; handlers validate the format,
// so an unparseable bound here is simply skipped.
func DateRange(column string, from, to string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != "" {
			if t, err := time.Parse(dateLayout, from); err == nil {
				db = db.Where(column+" >= ?", t)
			}
		}
		if to != "" {
			if t, err := time.Parse(dateLayout, to); err == nil {
				db = db.Where(column+" < ?", t.AddDate(0, 0, 1))
			}
		}
		return db
	}
}

func Int64Range(column string, min, max *int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if min != nil {
			db = db.Where(column+" >= ?", *min)
		}
		if max != nil {
			db = db.Where(column+" <= ?", *max)
		}
		return db
	}
}

func IntRange(column string, min, max *int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if min != nil {
			db = db.Where(column+" >= ?", *min)
		}
		if max != nil {
			db = db.Where(column+" <= ?", *max)
		}
		return db
	}
}
