// internal/core/model/inference.go
package model

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Inference is one user-submitted unit of work, owned by exactly one user and
// tracked from processing to completed.
type Inference struct {
	ID      string `json:"id"`
	Age     int    `json:"age"`
	Sex     string `json:"sex"`
	UserID  string `json:"user_id"`
	ModelID string `json:"model_id"`
	Status  string `json:"status"`
}

// InferenceCreationForm is what the caller submits.
type InferenceCreationForm struct {
	Age     int    `json:"age"`
	Sex     string `json:"sex"`
	ModelID string `json:"model_id"`
}

// InferenceCreation is the initial row persisted for a new inference and the
// payload published to the model's channel.
type InferenceCreation struct {
	Age     int    `json:"age"`
	Sex     string `json:"sex"`
	UserID  string `json:"user_id"`
	ModelID string `json:"model_id"`
	Status  string `json:"status"`
}

const (
	FileTypeImage = "image"
	FileTypeMask  = "mask"
)

// InferenceFile is one uploaded binary payload.
type InferenceFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// InferenceFiles groups the payloads accompanying a new inference. Each entry
// is stored as one blob keyed by (inference_id, file type).
type InferenceFiles struct {
	Image InferenceFile
	Mask  InferenceFile
}

// ByType lists the files keyed by their storage file type.
func (f InferenceFiles) ByType() map[string]InferenceFile {
	return map[string]InferenceFile{
		FileTypeImage: f.Image,
		FileTypeMask:  f.Mask,
	}
}
