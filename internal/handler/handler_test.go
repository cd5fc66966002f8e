package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cleanblog/internal/config"
	"github.com/cleanblog/internal/db"
	"github.com/cleanblog/internal/service"
	"github.com/cleanblog/web"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testBaseURL  = "http://blog.test"
	testAdmin    = "admin"
	testPassword = "correct-pass"
)

type stubNotifier struct {
	calls []db.ContactMessage
	err   error
}

func (n *stubNotifier) NotifyContact(_ context.Context, msg db.ContactMessage) error {
	n.calls = append(n.calls, msg)
	return n.err
}

type testEnv struct {
	t        *testing.T
	db       *gorm.DB
	api      *API
	engine   *gin.Engine
	notifier *stubNotifier
	jar      http.CookieJar
}

func setupHandlerTest(t *testing.T, perPage int) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	auth, err := service.NewAuthService(testAdmin, "", string(hash))
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}

	cfg := config.AppConfig{
		PostsPerPage:  perPage,
		UploadDir:     t.TempDir(),
		UploadURLPath: "/static/uploads",
		Site:          config.SiteConfig{Name: "Test Blog", Tagline: "testing"},
	}
	notifier := &stubNotifier{}
	api := NewAPI(gdb, cfg, auth, notifier)

	tmpl, err := web.Templates(nil)
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(RequestID())
	r.Use(sessions.Sessions(SessionName(), cookie.NewStore([]byte("test-secret"))))
	r.GET("/", api.ShowHome)
	r.GET("/post/:slug", api.ShowPost)
	r.GET("/about", api.ShowAbout)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)
	r.GET("/dashboard", api.ShowDashboard)
	r.POST("/dashboard", api.Login)
	r.GET("/logout", api.Logout)
	admin := r.Group("", api.AuthRequired())
	admin.GET("/edit/:id", api.ShowPostEdit)
	admin.POST("/edit/:id", api.SavePost)
	admin.GET("/delete/:id", api.DeletePost)
	admin.POST("/delete/:id", api.DeletePost)
	admin.POST("/uploader", api.UploadImage)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}

	return &testEnv{t: t, db: gdb, api: api, engine: r, notifier: notifier, jar: jar}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	e.t.Helper()
	for _, c := range e.jar.Cookies(req.URL) {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	e.jar.SetCookies(req.URL, w.Result().Cookies())
	return w
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	e.t.Helper()
	return e.do(httptest.NewRequest(http.MethodGet, testBaseURL+path, nil))
}

func (e *testEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	e.t.Helper()
	req := httptest.NewRequest(http.MethodPost, testBaseURL+path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req)
}

func (e *testEnv) login() {
	e.t.Helper()
	w := e.postForm("/dashboard", url.Values{"uname": {testAdmin}, "upass": {testPassword}})
	if w.Code != http.StatusOK {
		e.t.Fatalf("login failed with status %d", w.Code)
	}
}

func (e *testEnv) seedPosts(count int) []db.Post {
	e.t.Helper()
	posts := make([]db.Post, 0, count)
	for i := 1; i <= count; i++ {
		post := db.Post{
			Title:      "Post " + strconv.Itoa(i),
			Tagline:    "Tagline " + strconv.Itoa(i),
			Slug:       "post-" + strconv.Itoa(i),
			Content:    "Content " + strconv.Itoa(i),
			ImageURL:   "/static/img/" + strconv.Itoa(i) + ".jpg",
			AuthorName: "Ayaan",
		}
		if err := e.db.Create(&post).Error; err != nil {
			e.t.Fatalf("seed post %d: %v", i, err)
		}
		posts = append(posts, post)
	}
	return posts
}

func bodyOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	b, err := io.ReadAll(w.Result().Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func validPostForm(title, slug string) url.Values {
	return url.Values{
		"title":    {title},
		"tag_line": {"A tagline"},
		"slug":     {slug},
		"content":  {"Some **markdown** body"},
		"img_url":  {"/static/img/cover.jpg"},
		"name":     {"Ayaan"},
	}
}
