package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// SchemeChunk backs the pgvector index backend. DocKey is the stable
// composite document id, so re-indexing upserts instead of duplicating.
type SchemeChunk struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocKey         string          `gorm:"type:varchar(128);uniqueIndex;not null"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 uses 768 dimensions
	SchemeName     string          `gorm:"type:varchar(512);index"`
	Ministry       string          `gorm:"type:varchar(512);index"`
	ChunkKind      string          `gorm:"type:varchar(32);index"`
	LastUpdated    string          `gorm:"type:varchar(64)"`
	ReferenceLink  string          `gorm:"type:varchar(1024)"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (SchemeChunk) TableName() string {
	return "scheme_chunks"
}
