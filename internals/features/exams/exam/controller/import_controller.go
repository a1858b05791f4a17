package controller

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	auditsvc "pengawasku_backend/internals/features/audit/service"
	"pengawasku_backend/internals/features/exams/exam/dto"
	helper "pengawasku_backend/internals/helpers"
)

// CSV columns, one exam per row. ID lists are ';' separated national IDs:
// course_name,course_code,date,start_time,end_time,location,supervisor_ids,lecturer_ids,student_ids
const importColumns = 9

type importRowResult struct {
	Row    int    `json:"row"`
	ExamID string `json:"exam_id,omitempty"`
	Error  string `json:"error,omitempty"`
}

/* ===================== BULK IMPORT ===================== */
// POST /api/exams/import (multipart field "file")
// Each row goes through the regular create path, so the room/time conflict
// check applies per row; failing rows are reported, the rest proceed.
func (ctrl *ExamController) ImportExams(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing CSV file upload")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cannot open uploaded file")
	}
	defer f.Close()

	actorID, _ := helper.GetActorID(c, nil)

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Malformed CSV: "+err.Error())
	}

	var results []importRowResult
	created := 0
	for i, rec := range records {
		rowNum := i + 1
		if i == 0 && looksLikeHeader(rec) {
			continue
		}
		if len(rec) != importColumns {
			results = append(results, importRowResult{Row: rowNum, Error: "expected 9 columns"})
			continue
		}

		code, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			results = append(results, importRowResult{Row: rowNum, Error: "course_code must be an integer"})
			continue
		}

		req := dto.CreateExamRequest{
			ExamCourseName:        strings.TrimSpace(rec[0]),
			ExamCourseCode:        code,
			ExamDate:              strings.TrimSpace(rec[2]),
			ExamStartTime:         strings.TrimSpace(rec[3]),
			ExamEndTime:           strings.TrimSpace(rec[4]),
			ExamLocation:          strings.TrimSpace(rec[5]),
			SupervisorNationalIDs: splitIDList(rec[6]),
			LecturerNationalIDs:   splitIDList(rec[7]),
			StudentNationalIDs:    splitIDList(rec[8]),
		}

		exam, err := ctrl.createOne(&req)
		if err != nil {
			msg := err.Error()
			if fe, ok := err.(*fiber.Error); ok {
				msg = fe.Message
			}
			results = append(results, importRowResult{Row: rowNum, Error: msg})
			continue
		}
		created++
		results = append(results, importRowResult{Row: rowNum, ExamID: exam.ExamID.String()})
	}

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionExamBulkImported,
		fiber.Map{"created": created, "rows": len(records)})
	return helper.Success(c, "Import processed", fiber.Map{
		"created": created,
		"results": results,
	})
}

func splitIDList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func looksLikeHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "course_name")
}
