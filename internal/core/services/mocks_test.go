// internal/core/services/mocks_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"inference-back/internal/core/model"
	"inference-back/internal/core/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuth maps opaque tokens to usernames.
type fakeAuth struct {
	tokens map[string]string
}

func (f *fakeAuth) DecodeToken(token string) (model.TokenData, error) {
	username, ok := f.tokens[token]
	if !ok {
		return model.TokenData{}, errors.New("signature is invalid")
	}
	return model.TokenData{Username: username}, nil
}

func (f *fakeAuth) ValidateToken(token string) bool {
	_, ok := f.tokens[token]
	return ok
}

// fakeDB is an in-memory DatabasePort mirroring the adapter's contract:
// (nil, nil) for absent rows, model.ErrMalformedID for non-UUID ids. The
// calls slice records the mutation order so tests can assert the
// persist-then-store-then-publish sequence.
type fakeDB struct {
	usersByName map[string]model.User
	models      map[string]model.Model
	inferences  map[string]model.Inference
	results     map[string][]model.Result

	insertErr error
	listErr   error

	calls *[]string
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		usersByName: map[string]model.User{},
		models:      map[string]model.Model{},
		inferences:  map[string]model.Inference{},
		results:     map[string][]model.Result{},
		calls:       &[]string{},
	}
}

func (f *fakeDB) record(call string) {
	*f.calls = append(*f.calls, call)
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", model.ErrMalformedID, id)
	}
	return nil
}

func (f *fakeDB) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	if err := checkID(userID); err != nil {
		return nil, err
	}
	for _, user := range f.usersByName {
		if user.ID == userID {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, ok := f.usersByName[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeDB) GetAuthUserByUsername(ctx context.Context, username string) (*model.AuthenticationUser, error) {
	user, ok := f.usersByName[username]
	if !ok {
		return nil, nil
	}
	return &model.AuthenticationUser{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

func (f *fakeDB) InsertUser(ctx context.Context, user model.AuthenticationUser) (string, error) {
	id := uuid.NewString()
	f.usersByName[user.Username] = model.User{ID: id, Username: user.Username, Email: user.Email}
	return id, nil
}

func (f *fakeDB) GetInferenceByID(ctx context.Context, inferenceID, userID string) (*model.Inference, error) {
	if err := checkID(inferenceID); err != nil {
		return nil, err
	}
	inference, ok := f.inferences[inferenceID]
	if !ok || inference.UserID != userID {
		return nil, nil
	}
	return &inference, nil
}

func (f *fakeDB) GetInferenceList(ctx context.Context, userID string) ([]model.Inference, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var list []model.Inference
	for _, inference := range f.inferences {
		if inference.UserID == userID {
			list = append(list, inference)
		}
	}
	return list, nil
}

func (f *fakeDB) InsertInference(ctx context.Context, creation model.InferenceCreation) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	id := uuid.NewString()
	f.inferences[id] = model.Inference{
		ID:      id,
		Age:     creation.Age,
		Sex:     creation.Sex,
		UserID:  creation.UserID,
		ModelID: creation.ModelID,
		Status:  creation.Status,
	}
	f.record("insert_inference")
	return id, nil
}

func (f *fakeDB) UpdateInferenceStatus(ctx context.Context, inferenceID, status string) error {
	inference, ok := f.inferences[inferenceID]
	if !ok {
		return fmt.Errorf("inference %s not found", inferenceID)
	}
	inference.Status = status
	f.inferences[inferenceID] = inference
	return nil
}

func (f *fakeDB) GetModelByID(ctx context.Context, modelID string) (*model.Model, error) {
	if err := checkID(modelID); err != nil {
		return nil, err
	}
	mdl, ok := f.models[modelID]
	if !ok {
		return nil, nil
	}
	return &mdl, nil
}

func (f *fakeDB) GetModelList(ctx context.Context) ([]model.Model, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var list []model.Model
	for _, mdl := range f.models {
		list = append(list, mdl)
	}
	return list, nil
}

func (f *fakeDB) UpdateResult(ctx context.Context, update model.ResultUpdate) error {
	if err := checkID(update.InferenceID); err != nil {
		return err
	}
	if _, ok := f.inferences[update.InferenceID]; !ok {
		return fmt.Errorf("inference %s not found", update.InferenceID)
	}
	f.results[update.InferenceID] = append(f.results[update.InferenceID], model.Result{
		ID:          uuid.NewString(),
		InferenceID: update.InferenceID,
		Output:      update.Output,
		Diagnosis:   update.Diagnosis,
	})
	return nil
}

func (f *fakeDB) GetResultByInferenceID(ctx context.Context, inferenceID string) (*model.Result, error) {
	if err := checkID(inferenceID); err != nil {
		return nil, err
	}
	results := f.results[inferenceID]
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// fakeBus queues incoming payloads and records published letters. waitErrs
// are returned from WaitForMessage, one per call, before any queued payload.
type fakeBus struct {
	queue      chan []byte
	sent       []model.RequestLetter
	subscribed []string
	sendErr    error
	waitErrs   []error
	calls      *[]string
}

func newFakeBus(calls *[]string) *fakeBus {
	return &fakeBus{queue: make(chan []byte, 8), calls: calls}
}

func (f *fakeBus) SendMessage(ctx context.Context, letter model.RequestLetter) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, letter)
	if f.calls != nil {
		*f.calls = append(*f.calls, "publish")
	}
	return nil
}

func (f *fakeBus) Subscribe(ctx context.Context, channel string) error {
	f.subscribed = append(f.subscribed, channel)
	return nil
}

func (f *fakeBus) WaitForMessage(ctx context.Context, channel string) ([]byte, error) {
	if len(f.waitErrs) > 0 {
		err := f.waitErrs[0]
		f.waitErrs = f.waitErrs[1:]
		return nil, err
	}
	select {
	case payload := <-f.queue:
		return payload, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fakeStorage records stored blobs keyed by inference id and file type.
type fakeStorage struct {
	stored   map[string]model.InferenceFile
	storeErr error
	calls    *[]string
}

func newFakeStorage(calls *[]string) *fakeStorage {
	return &fakeStorage{stored: map[string]model.InferenceFile{}, calls: calls}
}

func (f *fakeStorage) StoreFile(ctx context.Context, inferenceID, fileType string, file model.InferenceFile) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.stored[inferenceID+"/"+fileType] = file
	if f.calls != nil {
		*f.calls = append(*f.calls, "store_file")
	}
	return nil
}

// testEnv wires the fakes into a Ports bundle with one registered user and
// one registered model.
type testEnv struct {
	ports   ports.Ports
	db      *fakeDB
	bus     *fakeBus
	storage *fakeStorage

	userID  string
	token   string
	modelID string
	channel string
}

func newTestEnv() *testEnv {
	db := newFakeDB()
	bus := newFakeBus(db.calls)
	store := newFakeStorage(db.calls)

	userID := uuid.NewString()
	db.usersByName["ada"] = model.User{ID: userID, Username: "ada", Email: "ada@example.com"}

	modelID := uuid.NewString()
	db.models[modelID] = model.Model{
		ID:               modelID,
		Name:             "pneumonia-classifier",
		SubscribingTopic: "central_results",
		PublishingTopic:  "pneumonia_requests",
	}

	auth := &fakeAuth{tokens: map[string]string{"ada-token": "ada"}}

	return &testEnv{
		ports: ports.Ports{
			Database:       db,
			Authentication: auth,
			MessageService: bus,
			SimpleStorage:  store,
		},
		db:      db,
		bus:     bus,
		storage: store,
		userID:  userID,
		token:   "ada-token",
		modelID: modelID,
		channel: "central_results",
	}
}
