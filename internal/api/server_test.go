package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/evently/evently-api/internal/config"
	"github.com/evently/evently-api/internal/repository/dao"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment: "test",
			BaseURL:     "localhost",
			Port:        "0",
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}

	return NewServer(conf, db)
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	s.Router.ServeHTTP(resp, req)

	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), dest))
}

func createEvent(t *testing.T, s *Server, name string) uint {
	t.Helper()

	resp := doRequest(t, s, http.MethodPost, "/api/events", gin.H{
		"name":        name,
		"description": "Description",
		"date":        "2024-12-01T12:00:00Z",
		"location":    "Online",
		"organizer":   "Test Organizer",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, resp, &created)

	return created.ID
}

func createUser(t *testing.T, s *Server, username string) uint {
	t.Helper()

	resp := doRequest(t, s, http.MethodPost, "/api/users", gin.H{
		"username": username,
		"password": "password123",
		"fullName": "Test User",
		"role":     "user",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, resp, &created)

	return created.ID
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t)

	resp := doRequest(t, s, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "OK", resp.Body.String())
}

func TestCreateAndListEvents(t *testing.T) {
	s := newTestServer(t)

	createEvent(t, s, "Test Event")

	resp := doRequest(t, s, http.MethodPost, "/api/events", gin.H{
		"name":        "Hackathon",
		"description": "24-hour coding event",
		"date":        "2024-12-15T09:00:00Z",
		"location":    "Campus",
		"organizer":   "FERI Crew",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, resp, &created)
	assert.Equal(t, uint(2), created.ID)

	listResp := doRequest(t, s, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, listResp.Code)

	var events []map[string]interface{}
	decodeBody(t, listResp, &events)
	require.Len(t, events, 2)
	assert.Equal(t, "Hackathon", events[1]["name"])
	assert.Equal(t, "24-hour coding event", events[1]["description"])
	assert.Equal(t, "2024-12-15T09:00:00Z", events[1]["date"])
	assert.Equal(t, "Campus", events[1]["location"])
	assert.Equal(t, "FERI Crew", events[1]["organizer"])
}

func TestCreateEventMissingField(t *testing.T) {
	s := newTestServer(t)

	resp := doRequest(t, s, http.MethodPost, "/api/events", gin.H{
		"description": "No name",
		"date":        "2024-12-15T09:00:00Z",
		"location":    "Campus",
		"organizer":   "FERI Crew",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateEventNotifiesRegisteredUsers(t *testing.T) {
	s := newTestServer(t)

	eventID := createEvent(t, s, "Test Event")
	userID := createUser(t, s, "testUser")

	regResp := doRequest(t, s, http.MethodPost, "/api/events/register", gin.H{
		"eventId": eventID,
		"userId":  userID,
	})
	require.Equal(t, http.StatusCreated, regResp.Code)

	updateResp := doRequest(t, s, http.MethodPut, fmt.Sprintf("/api/events/%d", eventID), gin.H{
		"name":        "Updated Event",
		"description": "Updated Description",
		"date":        "2024-12-01T12:00:00Z",
		"location":    "Updated Location",
		"organizer":   "Updated Organizer",
	})
	require.Equal(t, http.StatusOK, updateResp.Code)

	var updated struct {
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	decodeBody(t, updateResp, &updated)
	assert.Equal(t, eventID, updated.ID)
	assert.NotEmpty(t, updated.Message)

	notifResp := doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/events/notifications/%d", userID), nil)
	require.Equal(t, http.StatusOK, notifResp.Code)

	var messages []string
	decodeBody(t, notifResp, &messages)
	require.Len(t, messages, 1)
	assert.Equal(t, `Event "Updated Event" has been updated.`, messages[0])
}

func TestUpdateEventNotFound(t *testing.T) {
	s := newTestServer(t)

	userID := createUser(t, s, "lonely")
	doRequest(t, s, http.MethodPost, "/api/events/register", gin.H{
		"eventId": 999,
		"userId":  userID,
	})

	resp := doRequest(t, s, http.MethodPut, "/api/events/999", gin.H{
		"name":        "Ghost",
		"description": "Ghost",
		"date":        "2024-12-01T12:00:00Z",
		"location":    "Nowhere",
		"organizer":   "Nobody",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	notifResp := doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/events/notifications/%d", userID), nil)
	require.Equal(t, http.StatusOK, notifResp.Code)

	var messages []string
	decodeBody(t, notifResp, &messages)
	assert.Empty(t, messages)
}

func TestUpdateEventMissingField(t *testing.T) {
	s := newTestServer(t)

	eventID := createEvent(t, s, "Test Event")

	resp := doRequest(t, s, http.MethodPut, fmt.Sprintf("/api/events/%d", eventID), gin.H{
		"name":      "No description",
		"date":      "2024-12-01T12:00:00Z",
		"location":  "Somewhere",
		"organizer": "Someone",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeleteEvent(t *testing.T) {
	s := newTestServer(t)

	eventID := createEvent(t, s, "Short-lived")

	resp := doRequest(t, s, http.MethodDelete, fmt.Sprintf("/api/events/%d", eventID), nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	listResp := doRequest(t, s, http.MethodGet, "/api/events", nil)
	var events []map[string]interface{}
	decodeBody(t, listResp, &events)
	assert.Empty(t, events)
}

func TestDeregister(t *testing.T) {
	s := newTestServer(t)

	eventID := createEvent(t, s, "Test Event")
	userID := createUser(t, s, "testUser")

	regResp := doRequest(t, s, http.MethodPost, "/api/events/register", gin.H{
		"eventId": eventID,
		"userId":  userID,
	})
	require.Equal(t, http.StatusCreated, regResp.Code)

	deregPath := fmt.Sprintf("/api/events/deregister/%d", eventID)
	resp := doRequest(t, s, http.MethodPost, deregPath, gin.H{"userId": userID})
	assert.Equal(t, http.StatusOK, resp.Code)

	// Deregistering again still succeeds.
	resp = doRequest(t, s, http.MethodPost, deregPath, gin.H{"userId": userID})
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestComments(t *testing.T) {
	s := newTestServer(t)

	eventID := createEvent(t, s, "Test Event")
	userID := createUser(t, s, "commenter")

	addResp := doRequest(t, s, http.MethodPost, "/api/events/comment", gin.H{
		"eventId": eventID,
		"userId":  userID,
		"comment": "This is a test comment.",
	})
	require.Equal(t, http.StatusCreated, addResp.Code)

	var added struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	decodeBody(t, addResp, &added)
	require.NotZero(t, added.ID)

	listResp := doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/events/comments/%d", eventID), nil)
	require.Equal(t, http.StatusOK, listResp.Code)

	var comments []map[string]interface{}
	decodeBody(t, listResp, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "This is a test comment.", comments[0]["comment"])
	assert.Equal(t, "commenter", comments[0]["username"])

	deletePath := fmt.Sprintf("/api/events/comments/%d", added.ID)
	deleteResp := doRequest(t, s, http.MethodDelete, deletePath, nil)
	assert.Equal(t, http.StatusOK, deleteResp.Code)

	deleteResp = doRequest(t, s, http.MethodDelete, deletePath, nil)
	assert.Equal(t, http.StatusNotFound, deleteResp.Code)
}

func TestAddCommentMissingFields(t *testing.T) {
	s := newTestServer(t)

	resp := doRequest(t, s, http.MethodPost, "/api/events/comment", gin.H{
		"userId": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRatings(t *testing.T) {
	s := newTestServer(t)

	eventID := createEvent(t, s, "Rated Event")

	// Out of range means no write at all.
	resp := doRequest(t, s, http.MethodPost, "/api/events/rate", gin.H{
		"eventId": eventID,
		"userId":  1,
		"rating":  6,
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	ratingPath := fmt.Sprintf("/api/events/%d/rating", eventID)
	ratingResp := doRequest(t, s, http.MethodGet, ratingPath, nil)
	require.Equal(t, http.StatusOK, ratingResp.Code)

	var rating struct {
		AverageRating float64 `json:"averageRating"`
	}
	decodeBody(t, ratingResp, &rating)
	assert.Equal(t, float64(0), rating.AverageRating)

	for userID, value := range map[uint]int{1: 3, 2: 5} {
		resp := doRequest(t, s, http.MethodPost, "/api/events/rate", gin.H{
			"eventId": eventID,
			"userId":  userID,
			"rating":  value,
		})
		require.Equal(t, http.StatusOK, resp.Code)
	}

	ratingResp = doRequest(t, s, http.MethodGet, ratingPath, nil)
	require.Equal(t, http.StatusOK, ratingResp.Code)
	decodeBody(t, ratingResp, &rating)
	assert.Equal(t, float64(4), rating.AverageRating)

	// Rating again overwrites instead of adding a row: (5+5)/2 = 5.
	resp = doRequest(t, s, http.MethodPost, "/api/events/rate", gin.H{
		"eventId": eventID,
		"userId":  1,
		"rating":  5,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	ratingResp = doRequest(t, s, http.MethodGet, ratingPath, nil)
	decodeBody(t, ratingResp, &rating)
	assert.Equal(t, float64(5), rating.AverageRating)
}

func TestGetRatingUnknownEvent(t *testing.T) {
	s := newTestServer(t)

	resp := doRequest(t, s, http.MethodGet, "/api/events/999/rating", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUserCRUD(t *testing.T) {
	s := newTestServer(t)

	userID := createUser(t, s, "alice")

	// Duplicate username conflicts.
	resp := doRequest(t, s, http.MethodPost, "/api/users", gin.H{
		"username": "alice",
		"password": "password456",
		"fullName": "Other Alice",
		"role":     "user",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)

	listResp := doRequest(t, s, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, listResp.Code)

	var users []map[string]interface{}
	decodeBody(t, listResp, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0]["username"])
	assert.NotContains(t, users[0], "password")

	getResp := doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/users/%d", userID), nil)
	assert.Equal(t, http.StatusOK, getResp.Code)

	updateResp := doRequest(t, s, http.MethodPut, fmt.Sprintf("/api/users/%d", userID), gin.H{
		"username": "alice",
		"password": "newpassword1",
		"fullName": "Alice Updated",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusOK, updateResp.Code)

	missingResp := doRequest(t, s, http.MethodPut, "/api/users/999", gin.H{
		"username": "ghost",
		"password": "password123",
		"fullName": "Ghost",
		"role":     "user",
	})
	assert.Equal(t, http.StatusNotFound, missingResp.Code)

	deleteResp := doRequest(t, s, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), nil)
	assert.Equal(t, http.StatusOK, deleteResp.Code)

	notFoundResp := doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/users/%d", userID), nil)
	assert.Equal(t, http.StatusNotFound, notFoundResp.Code)
}

func TestCreateUserWeakPassword(t *testing.T) {
	s := newTestServer(t)

	resp := doRequest(t, s, http.MethodPost, "/api/users", gin.H{
		"username": "weak",
		"password": "short",
		"fullName": "Weak",
		"role":     "user",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
