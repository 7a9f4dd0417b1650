// internal/adapters/database/adapter.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"inference-back/internal/core/model"
)

// GormAdapter implements ports.DatabasePort on a Postgres database through
// GORM. Absent rows come back as (nil, nil); malformed identifiers as an
// error wrapping model.ErrMalformedID.
type GormAdapter struct {
	db *gorm.DB
}

func NewGormAdapter(db *gorm.DB) *GormAdapter {
	return &GormAdapter{db: db}
}

// Open connects to Postgres.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the backing tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRecord{}, &modelRecord{}, &inferenceRecord{}, &resultRecord{})
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", model.ErrMalformedID, id)
	}
	return parsed, nil
}

func (a *GormAdapter) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	id, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	var record userRecord
	if err := a.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.toUser(), nil
}

func (a *GormAdapter) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var record userRecord
	if err := a.db.WithContext(ctx).First(&record, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.toUser(), nil
}

func (a *GormAdapter) GetAuthUserByUsername(ctx context.Context, username string) (*model.AuthenticationUser, error) {
	var record userRecord
	if err := a.db.WithContext(ctx).First(&record, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.toAuthUser(), nil
}

func (a *GormAdapter) InsertUser(ctx context.Context, user model.AuthenticationUser) (string, error) {
	record := userRecord{
		ID:             uuid.New(),
		Username:       user.Username,
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
	}
	if err := a.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", err
	}
	return record.ID.String(), nil
}

func (a *GormAdapter) GetInferenceByID(ctx context.Context, inferenceID, userID string) (*model.Inference, error) {
	id, err := parseID(inferenceID)
	if err != nil {
		return nil, err
	}
	owner, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	var record inferenceRecord
	if err := a.db.WithContext(ctx).First(&record, "id = ? AND user_id = ?", id, owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.toInference(), nil
}

func (a *GormAdapter) GetInferenceList(ctx context.Context, userID string) ([]model.Inference, error) {
	owner, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	var records []inferenceRecord
	if err := a.db.WithContext(ctx).Where("user_id = ?", owner).Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	inferences := make([]model.Inference, 0, len(records))
	for _, record := range records {
		inferences = append(inferences, *record.toInference())
	}
	return inferences, nil
}

func (a *GormAdapter) InsertInference(ctx context.Context, creation model.InferenceCreation) (string, error) {
	owner, err := parseID(creation.UserID)
	if err != nil {
		return "", err
	}
	modelID, err := parseID(creation.ModelID)
	if err != nil {
		return "", err
	}
	record := inferenceRecord{
		ID:      uuid.New(),
		Age:     creation.Age,
		Sex:     creation.Sex,
		UserID:  owner,
		ModelID: modelID,
		Status:  creation.Status,
	}
	if err := a.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", err
	}
	return record.ID.String(), nil
}

func (a *GormAdapter) UpdateInferenceStatus(ctx context.Context, inferenceID, status string) error {
	id, err := parseID(inferenceID)
	if err != nil {
		return err
	}
	tx := a.db.WithContext(ctx).Model(&inferenceRecord{}).Where("id = ?", id).Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("inference %s not found", inferenceID)
	}
	return nil
}

func (a *GormAdapter) GetModelByID(ctx context.Context, modelID string) (*model.Model, error) {
	id, err := parseID(modelID)
	if err != nil {
		return nil, err
	}
	var record modelRecord
	if err := a.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.toModel(), nil
}

func (a *GormAdapter) GetModelList(ctx context.Context) ([]model.Model, error) {
	var records []modelRecord
	if err := a.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, err
	}
	models := make([]model.Model, 0, len(records))
	for _, record := range records {
		models = append(models, *record.toModel())
	}
	return models, nil
}

// UpdateResult stores a worker's output. The matching inference must already
// exist; a result must never be persisted for a row that was never created.
func (a *GormAdapter) UpdateResult(ctx context.Context, update model.ResultUpdate) error {
	inferenceID, err := parseID(update.InferenceID)
	if err != nil {
		return err
	}
	var count int64
	if err := a.db.WithContext(ctx).Model(&inferenceRecord{}).Where("id = ?", inferenceID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("inference %s not found", update.InferenceID)
	}
	record := resultRecord{
		ID:          uuid.New(),
		InferenceID: inferenceID,
		Output:      update.Output,
		Diagnosis:   update.Diagnosis,
	}
	return a.db.WithContext(ctx).Create(&record).Error
}

func (a *GormAdapter) GetResultByInferenceID(ctx context.Context, inferenceID string) (*model.Result, error) {
	id, err := parseID(inferenceID)
	if err != nil {
		return nil, err
	}
	var record resultRecord
	if err := a.db.WithContext(ctx).Order("created_at").First(&record, "inference_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.toResult(), nil
}
