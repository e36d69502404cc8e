package apiv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"leave-letter-backend/config"
	formsession "leave-letter-backend/lib/form-session"
	formsessionstore "leave-letter-backend/lib/form-session/store"
	letterdisplay "leave-letter-backend/lib/letter-display"
	"leave-letter-backend/lib/profile"
	authutils "leave-letter-backend/lib/utils/auth-utils"
	"leave-letter-backend/lib/ws"
	profileapimodels "leave-letter-backend/models/api/profile"
)

type stubProfiles struct{}

func (stubProfiles) Fetch(context.Context, string, string) (profileapimodels.ProfilesView, error) {
	return profileapimodels.ProfilesView{}, nil
}

func (stubProfiles) SaveInstitutional(context.Context, string, profileapimodels.InstitutionalProfile) error {
	return nil
}

func (stubProfiles) SaveGeneral(context.Context, string, profileapimodels.GeneralProfile) error {
	return nil
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp() *fiber.App {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60

	formsession.Instance = formsession.NewInstance(formsessionstore.NewMemoryInstance(time.Hour), stubProfiles{}, nil,
		formsession.Config{ProfileFetchTimeout: 50 * time.Millisecond}, nil)
	letterdisplay.Instance = letterdisplay.NewInstance(nil, nil, nil)
	profile.Instance = stubProfiles{}

	app := fiber.New()
	InitLetterApiRouters(app)
	InitDisplayApiRouters(app)
	InitProfileRouters(app)
	InitSessionRouters(app)

	wsRoute := fiber.New()
	app.Mount("/ws", wsRoute)
	ws.InitWs(wsRoute)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body, token string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode(t *testing.T, data []byte, out interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(data, &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

const institutionalBody = `{"student_name":"Ada","batch":"B12","manager_name":"Mr. Lee","leave_date":"2025-03-10","reason":"Fever"}`

func TestLetterApi(t *testing.T) {
	app := newTestApp()

	t.Run(`reasons`, func(t *testing.T) {
		resp, data := call(t, app, fiber.MethodGet, "/letter/reasons", "", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var view struct {
			General       []string `json:"general"`
			Institutional []string `json:"institutional"`
		}
		decode(t, data, &view)
		require.NotEmpty(t, view.General)
		require.NotEmpty(t, view.Institutional)
	})

	t.Run(`progress`, func(t *testing.T) {
		resp, data := call(t, app, fiber.MethodPost, "/letter/institutional/progress", `{"student_name":"Ada","batch":"B12"}`, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var view struct {
			Progress int `json:"progress"`
		}
		decode(t, data, &view)
		require.Equal(t, 40, view.Progress)
	})

	t.Run(`generate institutional`, func(t *testing.T) {
		resp, data := call(t, app, fiber.MethodPost, "/letter/institutional/generate", institutionalBody, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var view struct {
			Letter string `json:"letter"`
		}
		env := decode(t, data, &view)
		require.Equal(t, "success", env.Status)
		require.True(t, strings.HasPrefix(view.Letter, "Subject: Leave Request for Fever on March 10, 2025\n\nDear Mr. Lee,"))
		require.True(t, strings.HasSuffix(view.Letter, "Best regards,\nAda\nB12"))
	})

	t.Run(`generate with missing field`, func(t *testing.T) {
		resp, data := call(t, app, fiber.MethodPost, "/letter/general/generate", `{"company_name":"Acme"}`, "")
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		var view struct {
			Field string `json:"field"`
		}
		env := decode(t, data, &view)
		require.Equal(t, "fail", env.Status)
		require.Equal(t, "start_date", view.Field)
		require.Equal(t, "Please select start and end dates", env.Message)
	})
}

func TestDisplayApi(t *testing.T) {
	app := newTestApp()

	t.Run(`download`, func(t *testing.T) {
		resp, data := call(t, app, fiber.MethodPost, "/letter/download", `{"letter":"Dear Team,"}`, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "Dear Team,", string(data))
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "leave-application.txt")
	})

	t.Run(`empty letter`, func(t *testing.T) {
		resp, _ := call(t, app, fiber.MethodPost, "/letter/pdf", `{"letter":"  "}`, "")
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`pdf`, func(t *testing.T) {
		resp, data := call(t, app, fiber.MethodPost, "/letter/pdf", `{"letter":"Dear Team,"}`, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
		require.True(t, strings.HasPrefix(string(data), "%PDF"))
	})

	t.Run(`print`, func(t *testing.T) {
		resp, data := call(t, app, fiber.MethodPost, "/letter/print", `{"letter":"Dear <i>Team</i>,"}`, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, string(data), "Dear &lt;i&gt;Team&lt;/i&gt;,")
	})

	t.Run(`share requires auth`, func(t *testing.T) {
		resp, _ := call(t, app, fiber.MethodPost, "/letter/share", `{"letter":"Dear Team,"}`, "")
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`share without storage`, func(t *testing.T) {
		token, err := authutils.GetToken("u1", "ada@haca.edu", "Ada")
		require.NoError(t, err)
		resp, _ := call(t, app, fiber.MethodPost, "/letter/share", `{"letter":"Dear Team,"}`, token)
		require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestSessionApi(t *testing.T) {
	app := newTestApp()

	openSession := func(t *testing.T, token string) string {
		resp, data := call(t, app, fiber.MethodPost, "/session", `{"kind":"institutional"}`, token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var view struct {
			ID string `json:"id"`
		}
		decode(t, data, &view)
		require.NotEmpty(t, view.ID)
		return view.ID
	}

	t.Run(`unknown kind`, func(t *testing.T) {
		resp, _ := call(t, app, fiber.MethodPost, "/session", `{"kind":"other"}`, "")
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`anonymous flow`, func(t *testing.T) {
		id := openSession(t, "")
		fields := map[string]string{
			"student_name": "Ada",
			"batch":        "B12",
			"manager_name": "Mr. Lee",
			"leave_date":   "2025-03-10",
		}
		for field, value := range fields {
			body, _ := json.Marshal(map[string]string{"field": field, "value": value})
			resp, _ := call(t, app, fiber.MethodPatch, "/session/"+id+"/field", string(body), "")
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
		}

		resp, data := call(t, app, fiber.MethodPost, "/session/"+id+"/generate", "", "")
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		var failed struct {
			Field string `json:"field"`
		}
		decode(t, data, &failed)
		require.Equal(t, "reason", failed.Field)

		resp, _ = call(t, app, fiber.MethodPatch, "/session/"+id+"/field", `{"field":"reason","value":"Fever"}`, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, data = call(t, app, fiber.MethodPost, "/session/"+id+"/generate", "", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var result struct {
			Letter string `json:"letter"`
		}
		decode(t, data, &result)
		require.Contains(t, result.Letter, "Dear Mr. Lee,")

		resp, data = call(t, app, fiber.MethodGet, "/session/"+id, "", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var view struct {
			Progress int `json:"progress"`
			Letter   *struct {
				Letter string `json:"letter"`
			} `json:"letter"`
		}
		decode(t, data, &view)
		require.Equal(t, 100, view.Progress)
		require.NotNil(t, view.Letter)

		resp, _ = call(t, app, fiber.MethodDelete, "/session/"+id, "", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp, _ = call(t, app, fiber.MethodGet, "/session/"+id, "", "")
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run(`unknown field`, func(t *testing.T) {
		id := openSession(t, "")
		resp, _ := call(t, app, fiber.MethodPatch, "/session/"+id+"/field", `{"field":"salary","value":"1"}`, "")
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`foreign session`, func(t *testing.T) {
		owner, err := authutils.GetToken("u1", "ada@haca.edu", "Ada")
		require.NoError(t, err)
		other, err := authutils.GetToken("u2", "bob@haca.edu", "Bob")
		require.NoError(t, err)
		id := openSession(t, owner)

		resp, _ := call(t, app, fiber.MethodGet, "/session/"+id, "", other)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		resp, _ = call(t, app, fiber.MethodGet, "/session/"+id, "", owner)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`ws subscription only for session owner`, func(t *testing.T) {
		owner, err := authutils.GetToken("u1", "ada@haca.edu", "Ada")
		require.NoError(t, err)
		other, err := authutils.GetToken("u2", "bob@haca.edu", "Bob")
		require.NoError(t, err)
		id := openSession(t, owner)

		resp, _ := call(t, app, fiber.MethodGet, "/ws/session/"+id, "", other)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		resp, _ = call(t, app, fiber.MethodGet, "/ws/session/"+id+"?token="+other, "", "")
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		resp, _ = call(t, app, fiber.MethodGet, "/ws/session/"+id, "", "")
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		resp, _ = call(t, app, fiber.MethodGet, "/ws/session/"+id+"?token=broken", "", "")
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		resp, _ = call(t, app, fiber.MethodGet, "/ws/session/missing", "", owner)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		// владелец проходит проверку, без upgrade запроса получает 426
		resp, _ = call(t, app, fiber.MethodGet, "/ws/session/"+id, "", owner)
		require.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
		resp, _ = call(t, app, fiber.MethodGet, "/ws/session/"+id+"?token="+owner, "", "")
		require.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)

		anonymous := openSession(t, "")
		resp, _ = call(t, app, fiber.MethodGet, "/ws/session/"+anonymous, "", "")
		require.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
	})
}

func TestProfileApi(t *testing.T) {
	app := newTestApp()

	t.Run(`requires auth`, func(t *testing.T) {
		resp, _ := call(t, app, fiber.MethodGet, "/profile", "", "")
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`invalid email`, func(t *testing.T) {
		token, err := authutils.GetToken("u1", "ada@haca.edu", "Ada")
		require.NoError(t, err)
		resp, _ := call(t, app, fiber.MethodPut, "/profile/general", `{"email":"not-an-email"}`, token)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`fetch and save`, func(t *testing.T) {
		token, err := authutils.GetToken("u1", "ada@haca.edu", "Ada")
		require.NoError(t, err)
		resp, _ := call(t, app, fiber.MethodGet, "/profile", "", token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp, _ = call(t, app, fiber.MethodPut, "/profile/institutional", `{"student_name":"Ada","batch":"B12"}`, token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
