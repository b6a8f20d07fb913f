package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/dto"
	"coursehub/domain/errs"
	"coursehub/domain/models"
	"coursehub/pkg/utils"
)

const testCookieName = "sid"

type stubSessions struct {
	users map[string]*dto.SessionUser
}

func (s *stubSessions) Start(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (s *stubSessions) Verify(ctx context.Context, sid string) (*dto.SessionUser, error) {
	u, ok := s.users[sid]
	if !ok {
		return nil, errs.ErrUnauthorized
	}
	return u, nil
}

func (s *stubSessions) Destroy(ctx context.Context, sid string) error {
	delete(s.users, sid)
	return nil
}

func (s *stubSessions) TTL() time.Duration {
	return time.Hour
}

func newAuthTestApp(sessions *stubSessions) *fiber.App {
	app := fiber.New()

	app.Get("/courses", EnsureAuth(sessions, testCookieName), func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return err
		}
		return c.SendString(user.Email)
	})

	app.Get("/", EnsureGuest(sessions, testCookieName), func(c *fiber.Ctx) error {
		return c.SendString("landing")
	})

	return app
}

func withSessionCookie(req *http.Request, sid string) *http.Request {
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: sid})
	return req
}

func TestEnsureAuth_AnonymousRedirectsToLanding(t *testing.T) {
	app := newAuthTestApp(&stubSessions{users: map[string]*dto.SessionUser{}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/courses", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestEnsureAuth_InvalidSessionClearsCookieAndRedirects(t *testing.T) {
	app := newAuthTestApp(&stubSessions{users: map[string]*dto.SessionUser{}})

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/courses", nil), "stale-sid")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// cookie โดนเคลียร์ทิ้ง
	cleared := false
	for _, c := range resp.Cookies() {
		if c.Name == testCookieName && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "expected session cookie to be cleared")
}

func TestEnsureAuth_ValidSessionPassesIdentity(t *testing.T) {
	sessions := &stubSessions{users: map[string]*dto.SessionUser{
		"good-sid": {ID: primitive.NewObjectID(), Email: "alice@example.com"},
	}}
	app := newAuthTestApp(sessions)

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/courses", nil), "good-sid")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", string(body))
}

func TestEnsureGuest_AnonymousPassesThrough(t *testing.T) {
	app := newAuthTestApp(&stubSessions{users: map[string]*dto.SessionUser{}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "landing", string(body))
}

func TestEnsureGuest_AuthenticatedRedirectsToCourses(t *testing.T) {
	sessions := &stubSessions{users: map[string]*dto.SessionUser{
		"good-sid": {ID: primitive.NewObjectID(), Email: "alice@example.com"},
	}}
	app := newAuthTestApp(sessions)

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/", nil), "good-sid")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/courses", resp.Header.Get("Location"))
}
