// internal/adapters/database/records.go
package database

import (
	"time"

	"github.com/google/uuid"

	"inference-back/internal/core/model"
)

type userRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null"`
	Email          string    `gorm:"not null"`
	HashedPassword string    `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (userRecord) TableName() string { return "users" }

type modelRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"not null"`
	SubscribingTopic string    `gorm:"not null"`
	PublishingTopic  string    `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (modelRecord) TableName() string { return "models" }

type inferenceRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Age       int       `gorm:"not null"`
	Sex       string    `gorm:"not null"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ModelID   uuid.UUID `gorm:"type:uuid;not null"`
	Status    string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (inferenceRecord) TableName() string { return "inferences" }

type resultRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InferenceID uuid.UUID `gorm:"type:uuid;index;not null"`
	Output      float64   `gorm:"not null"`
	Diagnosis   string    `gorm:"not null"`
	CreatedAt   time.Time
}

func (resultRecord) TableName() string { return "results" }

func (r userRecord) toUser() *model.User {
	return &model.User{
		ID:       r.ID.String(),
		Username: r.Username,
		Email:    r.Email,
	}
}

func (r userRecord) toAuthUser() *model.AuthenticationUser {
	return &model.AuthenticationUser{
		ID:             r.ID.String(),
		Username:       r.Username,
		Email:          r.Email,
		HashedPassword: r.HashedPassword,
	}
}

func (r modelRecord) toModel() *model.Model {
	return &model.Model{
		ID:               r.ID.String(),
		Name:             r.Name,
		SubscribingTopic: r.SubscribingTopic,
		PublishingTopic:  r.PublishingTopic,
	}
}

func (r inferenceRecord) toInference() *model.Inference {
	return &model.Inference{
		ID:      r.ID.String(),
		Age:     r.Age,
		Sex:     r.Sex,
		UserID:  r.UserID.String(),
		ModelID: r.ModelID.String(),
		Status:  r.Status,
	}
}

func (r resultRecord) toResult() *model.Result {
	return &model.Result{
		ID:          r.ID.String(),
		InferenceID: r.InferenceID.String(),
		Output:      r.Output,
		Diagnosis:   r.Diagnosis,
	}
}
