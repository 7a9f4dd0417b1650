// internal/core/model/result.go
package model

// Result is a model worker's output for one inference, 1:1 with a completed
// inference and immutable after creation.
type Result struct {
	ID          string  `json:"id"`
	InferenceID string  `json:"inference_id"`
	Output      float64 `json:"output"`
	Diagnosis   string  `json:"diagnosis"`
}

// ResultUpdate is the payload a worker publishes on the central result
// channel when it finishes an inference.
type ResultUpdate struct {
	InferenceID string  `json:"inference_id"`
	Output      float64 `json:"output"`
	Diagnosis   string  `json:"diagnosis"`
}
