package repository

import "gorm.io/gorm"

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page is skip/limit pagination.
type Page struct {
	Skip  int
	Limit int
}

func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p Page) apply(q *gorm.DB) *gorm.DB {
	p = p.Normalize()
	return q.Offset(p.Skip).Limit(p.Limit)
}
