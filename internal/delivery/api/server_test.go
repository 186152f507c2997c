package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vplmon/config"
	apimiddleware "vplmon/internal/delivery/api/middleware"
	"vplmon/internal/delivery/api/router"
	"vplmon/internal/delivery/api/router/handler"
	deliverycontext "vplmon/internal/delivery/context"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"
	servicemocks "vplmon/internal/mocks/service"
	usecasemocks "vplmon/internal/mocks/usecase"
	"vplmon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const operatorToken = "operator-token"

type testAPI struct {
	echo        *echo.Echo
	monitor     *usecasemocks.MockMonitorUsecase
	auth        *usecasemocks.MockAuthUsecase
	terminal    *usecasemocks.MockTerminalUsecase
	mail        *usecasemocks.MockLogMailUsecase
	notices     *usecasemocks.MockNoticeUsecase
	preferences *usecasemocks.MockPreferenceUsecase
	fanout      *usecasemocks.MockAlertFanoutUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	tokens := servicemocks.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(operatorToken).Return(&service.Claims{Operator: "admin"}, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.MatchedBy(func(s string) bool { return s != operatorToken })).
		Return(nil, errors.New("token is malformed")).Maybe()

	a := &testAPI{
		monitor:     usecasemocks.NewMockMonitorUsecase(t),
		auth:        usecasemocks.NewMockAuthUsecase(t),
		terminal:    usecasemocks.NewMockTerminalUsecase(t),
		mail:        usecasemocks.NewMockLogMailUsecase(t),
		notices:     usecasemocks.NewMockNoticeUsecase(t),
		preferences: usecasemocks.NewMockPreferenceUsecase(t),
		fanout:      usecasemocks.NewMockAlertFanoutUsecase(t),
	}

	a.echo = newEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			HealthHandler:     handler.NewHealthHandler(a.monitor),
			AuthHandler:       handler.NewAuthHandler(a.auth, logger),
			MonitorHandler:    handler.NewMonitorHandler(a.monitor),
			LogHandler:        handler.NewLogHandler(a.terminal, a.mail, a.notices),
			PreferenceHandler: handler.NewPreferenceHandler(a.preferences, a.fanout, a.notices),
			NoticeHandler:     handler.NewNoticeHandler(a.notices),
			AuthMiddleware:    apimiddleware.NewAuthMiddleware(tokens, logger),
		},
	})

	return a
}

func (a *testAPI) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorized {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+operatorToken)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	env := decode(t, rec)
	require.NotNil(t, env.Error, rec.Body.String())

	return env.Error.Code
}

func TestHealth_IsPublic(t *testing.T) {
	a := newTestAPI(t)
	a.monitor.EXPECT().Status().Return(entity.SessionStatus{Connection: entity.StateConnected})

	rec := a.do(http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","connection":"connected"}`, rec.Body.String())
}

func TestAuthentication(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodGet, "/api/v1/status", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, rec))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
	rec = httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", errorCode(t, rec))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	req.Header.Set(echo.HeaderAuthorization, operatorToken)
	rec = httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	assert.Equal(t, "INVALID_TOKEN_FORMAT", errorCode(t, rec))
}

func TestLogin(t *testing.T) {
	a := newTestAPI(t)
	expires := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a.auth.EXPECT().Login(mock.Anything, "admin", "secret").
		Return(&usecase.LoginResult{AccessToken: "jwt", ExpiresAt: expires}, nil).Once()
	a.auth.EXPECT().Login(mock.Anything, "admin", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials).Once()

	rec := a.do(http.MethodPost, "/auth/login", `{"username":"admin","password":"secret"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"jwt","expires_at":"2024-05-01T12:00:00Z"}`, string(decode(t, rec).Data))

	rec = a.do(http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))

	rec = a.do(http.MethodPost, "/auth/login", `{"username":"admin"}`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `{"password":"required"}`, string(env.Error.Details))
}

func TestSendCommand(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "published", wantCode: http.StatusAccepted},
		{name: "offline", err: domainerrors.ErrNotConnected, wantCode: http.StatusServiceUnavailable, wantErr: "NOT_CONNECTED"},
		{name: "broker failure", err: domainerrors.NewTransportError("publish command", errors.New("EOF")), wantCode: http.StatusBadGateway, wantErr: "TRANSPORT_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAPI(t)
			operatorInContext := mock.MatchedBy(func(ctx context.Context) bool {
				return deliverycontext.GetOperatorFromContext(ctx) == "admin"
			})
			a.monitor.EXPECT().SendCommand(operatorInContext, "up").Return(tt.err).Once()

			rec := a.do(http.MethodPost, "/api/v1/commands", `{"command":"up"}`, true)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorCode(t, rec))
			}
		})
	}
}

func TestLogs_ListAndClear(t *testing.T) {
	a := newTestAPI(t)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a.terminal.EXPECT().Entries(entity.CategoryAlertRed).
		Return([]entity.LogEntry{{Category: entity.CategoryAlertRed, Text: "Door open", Timestamp: at}}).Once()
	a.terminal.EXPECT().Clear(entity.CategoryGeneral).Once()

	rec := a.do(http.MethodGet, "/api/v1/logs/red", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"category":"red","entries":[{"text":"Door open","timestamp":"2024-05-01T12:00:00Z"}]}`, string(decode(t, rec).Data))

	rec = a.do(http.MethodDelete, "/api/v1/logs/general", "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodGet, "/api/v1/logs/unknown", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_CATEGORY", errorCode(t, rec))
}

func TestLogs_Export(t *testing.T) {
	a := newTestAPI(t)
	a.terminal.EXPECT().Export(entity.ExportFormatCSV).Return([]byte("Type,Timestamp,Message\n"), nil).Once()
	a.terminal.EXPECT().Export(entity.ExportFormatText, entity.CategoryAlertRed, entity.CategoryAlertAmber).
		Return([]byte("=== Red ===\n"), nil).Once()

	rec := a.do(http.MethodGet, "/api/v1/logs/export", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Type,Timestamp,Message\n", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Regexp(t, `^attachment; filename="vpl-logs-\d{8}-\d{6}\.csv"$`, rec.Header().Get(echo.HeaderContentDisposition))

	rec = a.do(http.MethodGet, "/api/v1/logs/export?format=txt&categories=red,amber", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "=== Red ===\n", rec.Body.String())

	rec = a.do(http.MethodGet, "/api/v1/logs/export?format=pdf", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestLogs_Email(t *testing.T) {
	a := newTestAPI(t)
	a.mail.EXPECT().EmailLogs(mock.Anything, entity.CategoryCommand, "ops@example.com").Return(nil).Once()
	a.notices.EXPECT().Post(entity.NoticeSuccess, "Command logs sent to ops@example.com").Return(entity.Notice{}).Once()

	rec := a.do(http.MethodPost, "/api/v1/logs/command/email", `{"email":"ops@example.com"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodPost, "/api/v1/logs/command/email", `{"email":"not-an-address"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"email":"recipient_email"}`, string(env.Error.Details))
}

func TestPreferences_Recipients(t *testing.T) {
	a := newTestAPI(t)
	prefs := entity.NewNotificationPreferences()
	prefs.Recipients[entity.ChannelSMS] = []string{"+14155550123"}

	a.preferences.EXPECT().AddRecipient(mock.Anything, entity.ChannelSMS, "+14155550123").Return(prefs, nil).Once()
	a.preferences.EXPECT().AddRecipient(mock.Anything, entity.ChannelSMS, "+14155550123").
		Return(nil, domainerrors.ErrDuplicateRecipient.WithDetails("+14155550123")).Once()
	a.preferences.EXPECT().RemoveRecipient(mock.Anything, entity.ChannelSMS, "+14155550123").
		Return(entity.NewNotificationPreferences(), nil).Once()
	a.notices.EXPECT().Post(entity.NoticeSuccess, "SMS recipient added").Return(entity.Notice{}).Once()
	a.notices.EXPECT().Post(entity.NoticeWarning, mock.Anything).Return(entity.Notice{}).Once()
	a.notices.EXPECT().Post(entity.NoticeInfo, "SMS recipient removed").Return(entity.Notice{}).Once()

	rec := a.do(http.MethodPost, "/api/v1/preferences/recipients/sms", `{"value":"+14155550123"}`, true)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = a.do(http.MethodPost, "/api/v1/preferences/recipients/sms", `{"value":"+14155550123"}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "DUPLICATE_RECIPIENT", env.Error.Code)
	assert.JSONEq(t, `"+14155550123"`, string(env.Error.Details))

	rec = a.do(http.MethodDelete, "/api/v1/preferences/recipients/sms/%2B14155550123", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodPost, "/api/v1/preferences/recipients/fax", `{"value":"x"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_CHANNEL", errorCode(t, rec))
}

func TestPreferences_SetChannel(t *testing.T) {
	a := newTestAPI(t)
	enabled := true
	a.preferences.EXPECT().SetChannel(mock.Anything, entity.ChannelEmail, usecase.ChannelSettings{
		Enabled:    &enabled,
		Severities: map[entity.Severity]bool{entity.SeverityAmber: false},
	}).Return(entity.NewNotificationPreferences(), nil).Once()
	a.notices.EXPECT().Post(entity.NoticeSuccess, "Email notification settings saved").Return(entity.Notice{}).Once()

	rec := a.do(http.MethodPut, "/api/v1/preferences/channels/email", `{"enabled":true,"severities":{"amber":false}}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodPut, "/api/v1/preferences/channels/email", `{"severities":{"blue":true}}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestPreferences_SendTest(t *testing.T) {
	a := newTestAPI(t)
	a.fanout.EXPECT().SendTest(mock.Anything, entity.ChannelSMS).Return(nil, domainerrors.ErrNoRecipients).Once()
	a.fanout.EXPECT().SendTest(mock.Anything, entity.ChannelEmail).Return(&usecase.ChannelReport{
		Channel:   entity.ChannelEmail,
		Outcome:   entity.BatchAllSucceeded,
		Succeeded: 1,
		Results: []entity.DeliveryResult{
			{Recipient: "ops@example.com", Channel: entity.ChannelEmail, Outcome: entity.OutcomeSuccess},
		},
	}, nil).Once()

	rec := a.do(http.MethodPost, "/api/v1/preferences/test/sms", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_RECIPIENTS", errorCode(t, rec))

	rec = a.do(http.MethodPost, "/api/v1/preferences/test/email", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"channel":"email","outcome":"all_succeeded","succeeded":1,"failed":0,"results":[{"recipient":"ops@example.com","status":"success"}]}`,
		string(decode(t, rec).Data))
}

func TestNotices(t *testing.T) {
	a := newTestAPI(t)
	a.notices.EXPECT().Active().Return([]entity.Notice{{ID: "n1", Level: entity.NoticeWarning, Text: "SMS alert failed"}}).Once()

	rec := a.do(http.MethodGet, "/api/v1/notices", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), "SMS alert failed")
}
