package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/yungbote/portfolio-backend/internal/editor"
	"github.com/yungbote/portfolio-backend/internal/types"
)

func TestUploadSendsMultipartWithBearer(t *testing.T) {
	var gotAuth, gotField, gotName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotField = "file"
		gotName = header.Filename
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"data:image/png;base64,AAAA","name":"` + header.Filename + `","size":4}`))
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL, Tokens: StaticTokenSource("tok123")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := c.Upload(context.Background(), editor.FileInfo{
		Name:        "photo.png",
		Size:        4,
		ContentType: "image/png",
		Data:        []byte{0x89, 'P', 'N', 'G'},
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotField != "file" || gotName != "photo.png" {
		t.Fatalf("multipart field/name = %q/%q", gotField, gotName)
	}
	if res.URL == "" || res.Name != "photo.png" {
		t.Fatalf("result = %+v", res)
	}
}

func TestUploadUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"missing or invalid token","code":"unauthorized"}}`))
	}))
	defer srv.Close()

	c, _ := New(Options{BaseURL: srv.URL, Tokens: StaticTokenSource("bad")})
	_, err := c.Upload(context.Background(), editor.FileInfo{Name: "x.png", ContentType: "image/png"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err=%v, want ErrUnauthorized", err)
	}
}

func TestGetProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/profile" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Ada","blocks":[{"type":"title","content":"About"}]}`))
	}))
	defer srv.Close()

	c, _ := New(Options{BaseURL: srv.URL})
	doc, err := c.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if doc.Name != "Ada" || len(doc.Blocks) != 1 {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestReplaceProfileSendsJSON(t *testing.T) {
	var gotContentType, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := New(Options{BaseURL: srv.URL, Tokens: StaticTokenSource("tok")})
	err := c.ReplaceProfile(context.Background(), types.ProfileDocument{Name: "Ada"})
	if err != nil {
		t.Fatalf("ReplaceProfile: %v", err)
	}
	if gotContentType != "application/json" || gotAuth != "Bearer tok" {
		t.Fatalf("headers = %q / %q", gotContentType, gotAuth)
	}
}

func TestCookieTokenSource(t *testing.T) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	site, _ := url.Parse("http://localhost:8080")
	jar.SetCookies(site, []*http.Cookie{{Name: "auth_token", Value: "secret"}})

	src := NewCookieTokenSource(jar, site, "auth_token")
	if got := src.Token(); got != "secret" {
		t.Fatalf("Token()=%q", got)
	}

	missing := NewCookieTokenSource(jar, site, "other_cookie")
	if got := missing.Token(); got != "" {
		t.Fatalf("missing cookie Token()=%q, want empty", got)
	}
}
