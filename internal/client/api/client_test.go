package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebase/hirebase-go/internal/model"
)

func TestLogin_DecodesSuccessShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req model.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		json.NewEncoder(w).Encode(model.LoginResponse{
			Message: "Login successful",
			FoundUser: model.FoundUser{
				Name:     "Alice",
				Surname:  "Andersson",
				Email:    "alice@example.com",
				Username: "alice",
				RoleID:   model.RoleApplicant,
			},
		})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	resp, err := client.Login(context.Background(), "alice", "correct")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login successful", resp.Message)
	require.NotNil(t, resp.FoundUser)
	assert.Equal(t, "alice@example.com", resp.FoundUser.Email)
	assert.Nil(t, resp.Error)
}

func TestLogin_DecodesErrorShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"errorCode":1,"message":"Invalid credentials"}}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	resp, err := client.Login(context.Background(), "alice", "wrong")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 1, resp.Error.ErrorCode)
	assert.Equal(t, "Invalid credentials", resp.Error.Message)
}

func TestRegister_PlainTextBodyFailsDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("email is required"))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = client.Register(context.Background(), model.RegisterRequest{Username: "bob"})
	assert.Error(t, err)
}

func TestClient_CarriesSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "jwt", Value: "token-value", Path: "/", HttpOnly: true})
			json.NewEncoder(w).Encode(model.LoginResponse{
				Message:   "Login successful",
				FoundUser: model.FoundUser{Username: "alice"},
			})
		case "/applications":
			cookie, err := r.Cookie("jwt")
			if err != nil || cookie.Value != "token-value" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":{"errorCode":-1,"errorMsg":"unauthenticated"}}`))
				return
			}
			json.NewEncoder(w).Encode(model.ApplicationsResponse{
				Message:      "Applications gotten successfully",
				Applications: []model.Application{},
			})
		}
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "alice", "correct")
	require.NoError(t, err)

	resp, err := client.ListApplications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Applications gotten successfully", resp.Message)
}

func TestLogout_ReportsStatusOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/logout", r.URL.Path)
		w.Write([]byte("User logged out successfully"))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	status, err := client.Logout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}

func TestClient_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "alice", "correct")
	assert.Error(t, err)
}
