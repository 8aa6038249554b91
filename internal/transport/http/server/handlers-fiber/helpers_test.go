package handlers_fiber

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/api"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorUnknownProject(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrUnknownProject)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "指定されたプロジェクトが見つかりません。", body.Error)
}

func TestWriteErrorNotFound(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "project", err: entities.ErrProjectNotFound, message: "指定されたプロジェクトが見つかりません。"},
		{name: "event", err: entities.ErrEventNotFound, message: "指定された予定が見つかりません。"},
		{name: "holiday", err: entities.ErrHolidayNotFound, message: "指定された休日が見つかりません。"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusNotFound, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.message, body.Error)
		})
	}
}

func TestWriteErrorValidation(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "project_name", err: entities.ErrProjectNameRequired, message: "プロジェクト名を入力してください。"},
		{name: "members", err: entities.ErrMembersRequired, message: "メンバーを 1 名以上入力してください。"},
		{name: "no_new_members", err: entities.ErrNoNewMembers, message: "追加可能な新しいメンバーが見つかりませんでした。"},
		{name: "facilitator", err: entities.ErrFacilitatorNotMember, message: "ファシリテーターに選択されたメンバーがプロジェクトに存在しません。"},
		{name: "date", err: entities.ErrInvalidDate, message: "日付を YYYY-MM-DD 形式で指定してください。"},
		{name: "time", err: entities.ErrInvalidTime, message: "開始時刻を HH:MM 形式で指定してください。"},
		{name: "event_type", err: entities.ErrInvalidEventType, message: "イベント種別が不正です。"},
		{name: "title", err: entities.ErrEventTitleRequired, message: "イベント名を入力してください。"},
		{name: "agenda", err: entities.ErrAgendaRequired, message: "アジェンダを入力するかテンプレートを選択してください。"},
		{name: "year_month", err: entities.ErrInvalidYearMonth, message: "year または month の値が不正です。"},
		{name: "holiday_fields", err: entities.ErrHolidayFieldsRequired, message: "休日の日付と名称を入力してください。"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.message, body.Error)
		})
	}
}

func TestWriteErrorUnmappedIsInternal(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, errors.New("disk on fire"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, msgInternalError, body.Error)
}
