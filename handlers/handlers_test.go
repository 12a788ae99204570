package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"grandywoods/config"
	"grandywoods/db"
	"grandywoods/models"
	"grandywoods/storage"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	instance, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err = models.Init(instance); err != nil {
		t.Fatal(err)
	}
	db.Instance = instance
	storage.Default = storage.NewDiskStorage(t.TempDir(), "/media/")

	router := gin.New()
	router.Use(sessions.Sessions("test", cookie.NewStore([]byte("test secret"))))
	router.POST("/save-chat-message/", ChatMessageSave)
	router.GET("/save-chat-message/", ChatMessageBadMethod)
	router.POST("/editor-upload/", EditorUpload)
	return router
}

func TestChatMessageSave(t *testing.T) {
	router := setup(t)
	tests := []struct {
		name       string
		method     string
		body       string
		wantStatus int
		want       ChatResponse
		wantStored int64
	}{
		{
			name:       "complete",
			method:     http.MethodPost,
			body:       `{"name":"Ann","phone":"555","email":"ann@example.com","message":"Do you have parking?"}`,
			wantStatus: http.StatusOK,
			want:       ChatOKResponse,
			wantStored: 1,
		},
		{
			name:       "missing phone",
			method:     http.MethodPost,
			body:       `{"name":"Ann","email":"ann@example.com","message":"Hi"}`,
			wantStatus: http.StatusBadRequest,
			want:       ChatMissingFieldsResponse,
		},
		{
			name:       "blank name",
			method:     http.MethodPost,
			body:       `{"name":"   ","phone":"555","email":"ann@example.com","message":"Hi"}`,
			wantStatus: http.StatusBadRequest,
			want:       ChatMissingFieldsResponse,
		},
		{
			name:       "not json",
			method:     http.MethodPost,
			body:       `name=Ann`,
			wantStatus: http.StatusBadRequest,
			want:       ChatBadRequestResponse,
		},
		{
			name:       "get",
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
			want:       ChatBadMethodResponse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db.Instance.Where("1 = 1").Delete(&models.ChatMessage{})
			req := httptest.NewRequest(tt.method, "/save-chat-message/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var got ChatResponse
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("response = %+v, want %+v", got, tt.want)
			}
			var stored int64
			db.Instance.Model(&models.ChatMessage{}).Count(&stored)
			if stored != tt.wantStored {
				t.Errorf("%d messages stored, want %d", stored, tt.wantStored)
			}
		})
	}
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		fw, err := mw.CreateFormFile("upload", filename)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = fw.Write(content)
	}
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/editor-upload/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestEditorUpload(t *testing.T) {
	router := setup(t)
	var img bytes.Buffer
	if err := png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	defer func(v bool) { config.UPLOAD_REQUIRES_AUTH = v }(config.UPLOAD_REQUIRES_AUTH)

	tests := []struct {
		name         string
		requireAuth  bool
		filename     string
		content      []byte
		wantStatus   int
		wantUploaded bool
		wantURL      string
		wantError    string
	}{
		{"anonymous", true, "photo.png", img.Bytes(), http.StatusForbidden, false, "", UploadDeniedResponse.Error},
		{"image", false, "photo.png", img.Bytes(), http.StatusOK, true, "/media/images/photo.png", ""},
		{"pdf", false, "menu.pdf", []byte("%PDF-1.4"), http.StatusOK, true, "/media/pdfs/menu.pdf", ""},
		{"text", false, "notes.txt", []byte("hello"), http.StatusOK, false, "", UploadUnsupportedResponse.Error},
		{"no file", false, "", nil, http.StatusOK, false, "", UploadNoFileResponse.Error},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.UPLOAD_REQUIRES_AUTH = tt.requireAuth
			w := httptest.NewRecorder()
			router.ServeHTTP(w, uploadRequest(t, tt.filename, tt.content))
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var got UploadResponse
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatal(err)
			}
			if got.Uploaded != tt.wantUploaded || got.URL != tt.wantURL || got.Error != tt.wantError {
				t.Errorf("response = %+v", got)
			}
		})
	}
}
