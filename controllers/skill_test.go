package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IsuruKaushika/UNITUNES-sub000/models"
)

var skillAddFields = map[string]string{
	"skillTitle":  "Guitar lessons",
	"personName":  "Amal",
	"contact":     "0755556666",
	"price":       "1500",
	"description": "Weekend classes",
}

func TestAddAndListSkills(t *testing.T) {
	store := newMemSkills()

	req := multipartRequest(t, "/api/skill/add", skillAddFields, map[string]string{"image": "guitar.jpg"})
	rec := httptest.NewRecorder()
	AddSkill(store, &fakeMedia{})(rec, req)

	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	assert.Equal(t, "Skill Added Successfully", body["message"])

	rec = httptest.NewRecorder()
	ListSkills(store)(rec, httptest.NewRequest(http.MethodGet, "/api/skill/list", nil))

	body = decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	skills, ok := body["skills"].([]any)
	require.True(t, ok)
	require.Len(t, skills, 1)
	first := skills[0].(map[string]any)
	assert.Equal(t, "Guitar lessons", first["skillTitle"])
	assert.Equal(t, models.SkillStatusAvailable, first["status"], "new skills start available")
}

func TestAddSkillMissingFields(t *testing.T) {
	store := newMemSkills()

	req := multipartRequest(t, "/api/skill/add", map[string]string{"skillTitle": "x"}, nil)
	rec := httptest.NewRecorder()
	AddSkill(store, &fakeMedia{})(rec, req)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required fields", body["message"])
}

func TestSetSkillStatus(t *testing.T) {
	store := newMemSkills()
	skill := &models.Skill{ID: primitive.NewObjectID(), SkillTitle: "Guitar", Status: models.SkillStatusAvailable}
	require.NoError(t, store.Insert(context.Background(), skill))
	id := skill.ID.Hex()

	req := multipartRequest(t, "/api/skill/status", map[string]string{
		"id":     id,
		"status": models.SkillStatusUnavailable,
	}, nil)
	rec := httptest.NewRecorder()
	SetSkillStatus(store)(rec, req)

	require.Equal(t, true, decodeBody(t, rec)["success"])

	got, err := store.ByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.SkillStatusUnavailable, got.Status)
	assert.Equal(t, "Guitar", got.SkillTitle, "only the status field changes")
}

func TestSetSkillStatusRejectsUnknownValue(t *testing.T) {
	store := newMemSkills()
	skill := &models.Skill{ID: primitive.NewObjectID(), Status: models.SkillStatusAvailable}
	require.NoError(t, store.Insert(context.Background(), skill))

	req := multipartRequest(t, "/api/skill/status", map[string]string{
		"id":     skill.ID.Hex(),
		"status": "Busy",
	}, nil)
	rec := httptest.NewRecorder()
	SetSkillStatus(store)(rec, req)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid status", body["message"])
}

func TestRemoveSkill(t *testing.T) {
	store := newMemSkills()
	skill := &models.Skill{ID: primitive.NewObjectID()}
	require.NoError(t, store.Insert(context.Background(), skill))

	req := multipartRequest(t, "/api/skill/remove", map[string]string{"id": skill.ID.Hex()}, nil)
	rec := httptest.NewRecorder()
	RemoveSkill(store)(rec, req)

	require.Equal(t, true, decodeBody(t, rec)["success"])
	all, _ := store.All(context.Background())
	assert.Empty(t, all)
}

func TestSingleSkillNotFound(t *testing.T) {
	store := newMemSkills()

	req := multipartRequest(t, "/api/skill/single", map[string]string{"skillId": primitive.NewObjectID().Hex()}, nil)
	rec := httptest.NewRecorder()
	SingleSkill(store)(rec, req)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Skill not found", body["message"])
}
