package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/api"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"

	"github.com/gofiber/fiber/v2"
)

const (
	msgInvalidBody   = "リクエストの内容が不正です。"
	msgInternalError = "サーバーで問題が発生しました。"
)

// writeError maps domain sentinel errors to status codes and the localized
// messages the UI displays. Anything unmapped is a 500 with a generic
// message; the caller logged the details already.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := msgInternalError

	switch {
	case errors.Is(err, entities.ErrProjectNameRequired):
		status = http.StatusBadRequest
		msg = "プロジェクト名を入力してください。"
	case errors.Is(err, entities.ErrMembersRequired):
		status = http.StatusBadRequest
		msg = "メンバーを 1 名以上入力してください。"
	case errors.Is(err, entities.ErrNoNewMembers):
		status = http.StatusBadRequest
		msg = "追加可能な新しいメンバーが見つかりませんでした。"
	case errors.Is(err, entities.ErrProjectNotFound):
		status = http.StatusNotFound
		msg = "指定されたプロジェクトが見つかりません。"
	case errors.Is(err, entities.ErrUnknownProject):
		status = http.StatusBadRequest
		msg = "指定されたプロジェクトが見つかりません。"
	case errors.Is(err, entities.ErrFacilitatorNotMember):
		status = http.StatusBadRequest
		msg = "ファシリテーターに選択されたメンバーがプロジェクトに存在しません。"
	case errors.Is(err, entities.ErrInvalidDate):
		status = http.StatusBadRequest
		msg = "日付を YYYY-MM-DD 形式で指定してください。"
	case errors.Is(err, entities.ErrInvalidTime):
		status = http.StatusBadRequest
		msg = "開始時刻を HH:MM 形式で指定してください。"
	case errors.Is(err, entities.ErrInvalidEventType):
		status = http.StatusBadRequest
		msg = "イベント種別が不正です。"
	case errors.Is(err, entities.ErrEventTitleRequired):
		status = http.StatusBadRequest
		msg = "イベント名を入力してください。"
	case errors.Is(err, entities.ErrAgendaRequired):
		status = http.StatusBadRequest
		msg = "アジェンダを入力するかテンプレートを選択してください。"
	case errors.Is(err, entities.ErrInvalidYearMonth):
		status = http.StatusBadRequest
		msg = "year または month の値が不正です。"
	case errors.Is(err, entities.ErrEventNotFound):
		status = http.StatusNotFound
		msg = "指定された予定が見つかりません。"
	case errors.Is(err, entities.ErrHolidayNotFound):
		status = http.StatusNotFound
		msg = "指定された休日が見つかりません。"
	case errors.Is(err, entities.ErrHolidayFieldsRequired):
		status = http.StatusBadRequest
		msg = "休日の日付と名称を入力してください。"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = msgInvalidBody
	}

	return c.Status(status).JSON(api.ErrorResponse{Error: msg})
}
