package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by UUID primary key.
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByFarmerID filters rows owned by a farmer (text id).
type ByFarmerID struct {
	FarmerID string
}

func (s ByFarmerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("farmer_id = ?", s.FarmerID)
}

// ILike performs a case-insensitive substring match on a column.
type ILike struct {
	Field string
	Value string
}

func (s ILike) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("LOWER(%s) LIKE LOWER(?)", s.Field)
	return db.Where(query, "%"+s.Value+"%")
}

// OrderBy applies ordering.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination limits result windows.
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}
