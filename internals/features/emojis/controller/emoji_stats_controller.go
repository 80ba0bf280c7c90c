// internals/features/emojis/controller/emoji_stats_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"emojiku_backend/internals/constants"
	cModel "emojiku_backend/internals/features/courses/model"
	eRepo "emojiku_backend/internals/features/emojis/repository"
	"emojiku_backend/internals/features/emojis/service"
	helper "emojiku_backend/internals/helpers"
)

// EmojiStatsController: jalur teacher/admin — chart & export statistik emoji.
// Guard akses dijalankan SEBELUM query agregasi: teacher hanya boleh course
// yang dia ampu, admin boleh semua.
type EmojiStatsController struct {
	DB       *gorm.DB
	Repo     *eRepo.EmojiRepository
	Renderer *service.Renderer
}

func NewEmojiStatsController(db *gorm.DB) *EmojiStatsController {
	return &EmojiStatsController{
		DB:       db,
		Repo:     eRepo.NewEmojiRepository(db),
		Renderer: service.NewRenderer(),
	}
}

// format tanggal query start/end
const dateLayout = "2006-01-02"

/*
	=========================================================
	  TIMELINE 24 JAM (inline webp + panel total)
	=========================================================
*/

// GET /api/u/stats/courses/:course_id/timeline
func (ctrl *EmojiStatsController) Timeline(c *fiber.Ctx) error {
	course, ok, errResp := ctrl.authorizeCourse(c)
	if !ok {
		return errResp
	}

	now := time.Now().UTC()
	events, err := ctrl.Repo.QueryRecentEvents(course.CourseID, now.Add(-service.TimelineDuration))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	matrix, err := service.AggregateTimeline(events, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal agregasi timeline")
	}

	png, err := ctrl.Renderer.Timeline(matrix, service.RenderModeInline)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal render chart")
	}
	dataURI, err := service.InlineImageDataURI(png)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal encode chart")
	}

	return helper.JsonOK(c, "Timeline emoji 24 jam", fiber.Map{
		"course_id": course.CourseID,
		"chart":     dataURI,
		"totals":    categoryTotalsPayload(matrix),
		"total":     matrix.Total(),
	})
}

/*
	=========================================================
	  BAR & PIE (rentang tanggal bebas)
	=========================================================
*/

// GET /api/u/stats/courses/:course_id/bar?start=YYYY-MM-DD&end=YYYY-MM-DD
func (ctrl *EmojiStatsController) Bar(c *fiber.Ctx) error {
	return ctrl.rangeChart(c, "bar")
}

// GET /api/u/stats/courses/:course_id/pie?start=YYYY-MM-DD&end=YYYY-MM-DD
func (ctrl *EmojiStatsController) Pie(c *fiber.Ctx) error {
	return ctrl.rangeChart(c, "pie")
}

func (ctrl *EmojiStatsController) rangeChart(c *fiber.Ctx, kind string) error {
	course, ok, errResp := ctrl.authorizeCourse(c)
	if !ok {
		return errResp
	}
	w, err := parseRangeWindow(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	summary, err := ctrl.summarize(course.CourseID, w)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal agregasi rentang")
	}

	var png []byte
	if kind == "pie" {
		png, err = ctrl.Renderer.Pie(summary, service.RenderModeInline)
	} else {
		png, err = ctrl.Renderer.Bar(summary, service.RenderModeInline)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal render chart")
	}

	payload := fiber.Map{
		"course_id": course.CourseID,
		"start":     w.Start,
		"end":       w.End,
		"totals":    summary.BarData(),
		"total":     summary.Total(),
	}

	// total 0 → chart null, frontend tampilkan pesan kosong
	if png == nil {
		payload["chart"] = nil
		return helper.JsonOK(c, "Tidak ada data pada rentang ini", payload)
	}

	dataURI, err := service.InlineImageDataURI(png)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal encode chart")
	}
	payload["chart"] = dataURI

	return helper.JsonOK(c, "Statistik emoji", payload)
}

/*
	=========================================================
	  EXPORT (CSV & gambar resolusi penuh)
	=========================================================
*/

// GET /api/u/stats/courses/:course_id/export/csv?start=YYYY-MM-DD&end=YYYY-MM-DD
func (ctrl *EmojiStatsController) ExportCSV(c *fiber.Ctx) error {
	course, ok, errResp := ctrl.authorizeCourse(c)
	if !ok {
		return errResp
	}
	w, err := parseRangeWindow(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	summary, err := ctrl.summarize(course.CourseID, w)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal agregasi rentang")
	}

	// header tetap ditulis walau tidak ada baris
	data, err := service.CSVBytes(summary.Rows())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat CSV")
	}

	filename := service.ExportFilename("emoji", course.CourseID.String(), w, "csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// GET /api/u/stats/courses/:course_id/export/image?kind=timeline|bar|pie&start&end
func (ctrl *EmojiStatsController) ExportImage(c *fiber.Ctx) error {
	course, ok, errResp := ctrl.authorizeCourse(c)
	if !ok {
		return errResp
	}

	kind := strings.ToLower(strings.TrimSpace(c.Query("kind", "timeline")))

	var (
		png      []byte
		filename string
	)

	switch kind {
	case "timeline":
		now := time.Now().UTC()
		events, err := ctrl.Repo.QueryRecentEvents(course.CourseID, now.Add(-service.TimelineDuration))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
		}
		matrix, err := service.AggregateTimeline(events, now)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal agregasi timeline")
		}
		png, err = ctrl.Renderer.Timeline(matrix, service.RenderModeExport)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal render chart")
		}
		filename = service.ExportFilenameNow("timeline", course.CourseID.String(), now, "png")

	case "bar", "pie":
		w, err := parseRangeWindow(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		summary, err := ctrl.summarize(course.CourseID, w)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal agregasi rentang")
		}
		if kind == "pie" {
			png, err = ctrl.Renderer.Pie(summary, service.RenderModeExport)
		} else {
			png, err = ctrl.Renderer.Bar(summary, service.RenderModeExport)
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal render chart")
		}
		if png == nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada data pada rentang ini")
		}
		filename = service.ExportFilename(kind, course.CourseID.String(), w, "png")

	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "kind harus timeline, bar, atau pie")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(png)
}

/*
	=========================================================
	  UTIL INTERNAL
	=========================================================
*/

// authorizeCourse: parse :course_id, pastikan course ada, lalu guard role.
// Teacher hanya boleh course miliknya; admin bebas. ok=false berarti
// response error sudah ditulis — handler wajib langsung return errResp.
func (ctrl *EmojiStatsController) authorizeCourse(c *fiber.Ctx) (course *cModel.CourseModel, ok bool, errResp error) {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return nil, false, helper.JsonError(c, fiber.StatusBadRequest, "ID course tidak valid")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, false, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := helper.GetRoleFromToken(c)

	var m cModel.CourseModel
	if err := ctrl.DB.First(&m, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return nil, false, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	if role == constants.RoleAdmin {
		return &m, true, nil
	}
	if role == constants.RoleTeacher {
		if m.CourseTeacherID != nil && *m.CourseTeacherID == userID {
			return &m, true, nil
		}
		return nil, false, helper.JsonError(c, fiber.StatusForbidden, "Course ini bukan milik Anda")
	}
	return nil, false, helper.JsonError(c, fiber.StatusForbidden, "Statistik hanya untuk teacher/admin")
}

// parseRangeWindow: baca start/end (YYYY-MM-DD), end diperluas ke akhir hari.
func parseRangeWindow(c *fiber.Ctx) (service.TimeWindow, error) {
	startRaw := strings.TrimSpace(c.Query("start"))
	endRaw := strings.TrimSpace(c.Query("end"))
	if startRaw == "" || endRaw == "" {
		return service.TimeWindow{}, errors.New("start dan end wajib diisi (YYYY-MM-DD)")
	}

	start, err := time.ParseInLocation(dateLayout, startRaw, time.UTC)
	if err != nil {
		return service.TimeWindow{}, errors.New("start tidak valid (YYYY-MM-DD)")
	}
	end, err := time.ParseInLocation(dateLayout, endRaw, time.UTC)
	if err != nil {
		return service.TimeWindow{}, errors.New("end tidak valid (YYYY-MM-DD)")
	}

	w := service.NewDayRangeWindow(start, end)
	if err := w.Validate(time.Now().UTC()); err != nil {
		return service.TimeWindow{}, err
	}
	return w, nil
}

func (ctrl *EmojiStatsController) summarize(courseID uuid.UUID, w service.TimeWindow) (*service.RangeSummary, error) {
	events, err := ctrl.Repo.QueryEvents(courseID, w)
	if err != nil {
		return nil, err
	}
	return service.SummarizeRange(events, w)
}

// categoryTotalsPayload: total per kategori untuk panel samping timeline.
func categoryTotalsPayload(m *service.AggregationMatrix) []service.CategoryCount {
	totals := m.CategoryTotals()
	out := make([]service.CategoryCount, 0, constants.EmojiTypeMax)
	for _, id := range constants.EmojiTypeIDs {
		out = append(out, service.CategoryCount{
			Type:  id,
			Label: constants.EmojiTypeLabel(id),
			Count: totals[id-1],
		})
	}
	return out
}
