package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IsuruKaushika/UNITUNES-sub000/middleware"
	"github.com/IsuruKaushika/UNITUNES-sub000/models"
	"github.com/IsuruKaushika/UNITUNES-sub000/ownership"
	"github.com/IsuruKaushika/UNITUNES-sub000/repository"
)

// In-memory stand-ins for the repository layer, mirroring its not-found
// semantics.

type memBoardings struct {
	mu    sync.Mutex
	items map[string]models.Boarding
}

func newMemBoardings() *memBoardings {
	return &memBoardings{items: map[string]models.Boarding{}}
}

var _ BoardingStore = (*memBoardings)(nil)

func (m *memBoardings) Insert(_ context.Context, b *models.Boarding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	m.items[b.ID.Hex()] = *b
	return nil
}

func (m *memBoardings) All(_ context.Context) ([]models.Boarding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Boarding{}
	for _, b := range m.items {
		out = append(out, b)
	}
	return out, nil
}

func (m *memBoardings) ByID(_ context.Context, id string) (*models.Boarding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (m *memBoardings) Replace(_ context.Context, id string, b *models.Boarding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	m.items[id] = *b
	return nil
}

func (m *memBoardings) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memBoardings) Mine(_ context.Context, p ownership.Principal) ([]models.Boarding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Boarding{}
	for _, b := range m.items {
		owner := ownership.Owner{ID: b.OwnerID, Type: ownership.Role(b.OwnerType)}
		if ownership.MineMatch(p, owner) {
			out = append(out, b)
		}
	}
	return out, nil
}

type memSkills struct {
	mu    sync.Mutex
	items map[string]models.Skill
}

func newMemSkills() *memSkills {
	return &memSkills{items: map[string]models.Skill{}}
}

var _ ResourceStore[models.Skill] = (*memSkills)(nil)

func (m *memSkills) Insert(_ context.Context, s *models.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	m.items[s.ID.Hex()] = *s
	return nil
}

func (m *memSkills) All(_ context.Context) ([]models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Skill{}
	for _, s := range m.items {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSkills) ByID(_ context.Context, id string) (*models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (m *memSkills) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memSkills) SetField(_ context.Context, id, field string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	switch field {
	case "status":
		s.Status = value.(string)
	default:
		return errors.New("unexpected field " + field)
	}
	m.items[id] = s
	return nil
}

type memRentItems struct {
	mu    sync.Mutex
	items map[string]models.RentItem
}

func newMemRentItems() *memRentItems {
	return &memRentItems{items: map[string]models.RentItem{}}
}

var _ ResourceStore[models.RentItem] = (*memRentItems)(nil)

func (m *memRentItems) Insert(_ context.Context, it *models.RentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if it.ID.IsZero() {
		it.ID = primitive.NewObjectID()
	}
	m.items[it.ID.Hex()] = *it
	return nil
}

func (m *memRentItems) All(_ context.Context) ([]models.RentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.RentItem{}
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *memRentItems) ByID(_ context.Context, id string) (*models.RentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &it, nil
}

func (m *memRentItems) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memRentItems) SetField(_ context.Context, id, field string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	switch field {
	case "isAvailable":
		it.IsAvailable = value.(bool)
	default:
		return errors.New("unexpected field " + field)
	}
	m.items[id] = it
	return nil
}

type memAccounts[T any] struct {
	mu    sync.Mutex
	docs  []T
	email func(*T) string
}

func (m *memAccounts[T]) Insert(_ context.Context, doc *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, *doc)
	return nil
}

func (m *memAccounts[T]) ByEmail(_ context.Context, email string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.email(&m.docs[i]) == email {
			doc := m.docs[i]
			return &doc, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeMedia struct {
	mu      sync.Mutex
	uploads int
	fail    bool
}

func (f *fakeMedia) Upload(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	f.mu.Lock()
	f.uploads++
	f.mu.Unlock()
	if f.fail {
		return "", errors.New("upload failed")
	}
	return "https://img.test/" + folder + "/" + file.Filename, nil
}

// Request helpers.

func multipartRequest(t *testing.T, path string, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()
	buf := &bytes.Buffer{}
	wr := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, wr.WriteField(k, v))
	}
	for field, filename := range files {
		fw, err := wr.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, wr.Close())

	req := httptest.NewRequest(http.MethodPost, path, buf)
	req.Header.Set("Content-Type", wr.FormDataContentType())
	return req
}

func asPrincipal(req *http.Request, p ownership.Principal) *http.Request {
	return req.WithContext(middleware.WithPrincipal(req.Context(), p))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
