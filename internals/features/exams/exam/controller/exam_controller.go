package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengawasku_backend/internals/configs"
	"pengawasku_backend/internals/constants"
	auditsvc "pengawasku_backend/internals/features/audit/service"
	"pengawasku_backend/internals/features/exams/exam/dto"
	"pengawasku_backend/internals/features/exams/exam/model"
	examsvc "pengawasku_backend/internals/features/exams/exam/service"
	identitysvc "pengawasku_backend/internals/features/users/identity/service"
	helper "pengawasku_backend/internals/helpers"
)

type ExamController struct {
	DB        *gorm.DB
	Directory *identitysvc.Directory
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db, Directory: identitysvc.NewDirectory(db)}
}

var validate = validator.New()

// resolved roster IDs for one request
type rosterIDs struct {
	Supervisors []uuid.UUID
	Lecturers   []uuid.UUID
	Students    []uuid.UUID
}

// resolveRosters resolves all national IDs in req through the directory,
// collecting every identifier that does not resolve to the expected role.
func (ctrl *ExamController) resolveRosters(tx *gorm.DB, req *dto.CreateExamRequest) (*rosterIDs, error) {
	var out rosterIDs
	var missing []string

	sup, miss, err := ctrl.Directory.ResolveByNationalIDs(tx, constants.RoleSupervisor, req.SupervisorNationalIDs)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	out.Supervisors = sup
	for _, m := range miss {
		missing = append(missing, "supervisor:"+m)
	}

	lec, miss, err := ctrl.Directory.ResolveByNationalIDs(tx, constants.RoleLecturer, req.LecturerNationalIDs)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	out.Lecturers = lec
	for _, m := range miss {
		missing = append(missing, "lecturer:"+m)
	}

	stu, miss, err := ctrl.Directory.ResolveByNationalIDs(tx, constants.RoleStudent, req.StudentNationalIDs)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	out.Students = stu
	for _, m := range miss {
		missing = append(missing, "student:"+m)
	}

	if len(missing) > 0 {
		return nil, fiber.NewError(fiber.StatusNotFound,
			"Unresolved identifiers: "+strings.Join(missing, ", "))
	}
	return &out, nil
}

// parseWindow validates date/start/end and returns (date, startMin, endMin).
func parseWindow(req *dto.CreateExamRequest) (time.Time, int, int, error) {
	date, err := helper.ParseCivilDate(req.ExamDate, configs.ExamTimezone)
	if err != nil {
		return time.Time{}, 0, 0, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	startMin, err := helper.ParseClock(req.ExamStartTime)
	if err != nil {
		return time.Time{}, 0, 0, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	endMin, err := helper.ParseClock(req.ExamEndTime)
	if err != nil {
		return time.Time{}, 0, 0, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if endMin <= startMin {
		return time.Time{}, 0, 0, fiber.NewError(fiber.StatusBadRequest, "exam_end_time must be after exam_start_time")
	}
	return date, startMin, endMin, nil
}

func conflictMessage(c *model.ExamModel) string {
	return "Room " + c.ExamLocation + " is occupied " +
		helper.FormatClock(c.ExamStartMinutes) + "-" + helper.FormatClock(c.ExamEndMinutes) +
		" by " + c.ExamCourseName
}

func replaceRosters(tx *gorm.DB, examID uuid.UUID, ids *rosterIDs) error {
	if err := tx.Where("exam_supervisor_exam_id = ?", examID).Delete(&model.ExamSupervisorModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("exam_lecturer_exam_id = ?", examID).Delete(&model.ExamLecturerModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("exam_student_exam_id = ?", examID).Delete(&model.ExamStudentModel{}).Error; err != nil {
		return err
	}

	for _, id := range ids.Supervisors {
		if err := tx.Create(&model.ExamSupervisorModel{ExamSupervisorExamID: examID, ExamSupervisorUserID: id}).Error; err != nil {
			return err
		}
	}
	for _, id := range ids.Lecturers {
		if err := tx.Create(&model.ExamLecturerModel{ExamLecturerExamID: examID, ExamLecturerUserID: id}).Error; err != nil {
			return err
		}
	}
	for i, id := range ids.Students {
		if err := tx.Create(&model.ExamStudentModel{ExamStudentExamID: examID, ExamStudentUserID: id, ExamStudentPosition: i + 1}).Error; err != nil {
			return err
		}
	}
	return nil
}

/* ===================== CREATE ===================== */

// createOne runs the full create path (validation, identity resolution,
// conflict check, write) in one transaction. Shared by POST /exams and the
// CSV bulk import so invariant checks hold per row either way.
func (ctrl *ExamController) createOne(req *dto.CreateExamRequest) (*model.ExamModel, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	date, startMin, endMin, err := parseWindow(req)
	if err != nil {
		return nil, err
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	ids, err := ctrl.resolveRosters(tx, req)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	conflict, err := examsvc.FindRoomConflict(tx, req.ExamLocation, date, startMin, endMin, uuid.Nil)
	if err != nil {
		tx.Rollback()
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if conflict != nil {
		tx.Rollback()
		return nil, fiber.NewError(fiber.StatusConflict, conflictMessage(conflict))
	}

	exam := model.ExamModel{
		ExamCourseName:      req.ExamCourseName,
		ExamCourseCode:      req.ExamCourseCode,
		ExamDate:            date,
		ExamStartMinutes:    startMin,
		ExamEndMinutes:      endMin,
		ExamLocation:        req.ExamLocation,
		ExamDurationMinutes: endMin - startMin,
		ExamRules:           req.ExamRules,
		ExamStatus:          model.StatusScheduled,
	}
	if err := tx.Create(&exam).Error; err != nil {
		tx.Rollback()
		if helper.IsConflictViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Room occupied in that window")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam")
	}
	if err := replaceRosters(tx, exam.ExamID, ids); err != nil {
		tx.Rollback()
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to store rosters")
	}

	if err := tx.Commit().Error; err != nil {
		if helper.IsConflictViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Room occupied in that window")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &exam, nil
}

// POST /api/exams
func (ctrl *ExamController) CreateExam(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	actorID, _ := helper.GetActorID(c, req.ActorID)

	exam, err := ctrl.createOne(&req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionExamCreated, fiber.Map{"exam_id": exam.ExamID})
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam created", dto.NewExamResponse(*exam))
}

/* ===================== UPDATE ===================== */
// PUT /api/exams/:id
func (ctrl *ExamController) UpdateExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, startMin, endMin, err := parseWindow(&req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	actorID, _ := helper.GetActorID(c, req.ActorID)

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var exam model.ExamModel
	if err := tx.First(&exam, "exam_id = ?", examID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	ids, err := ctrl.resolveRosters(tx, &req)
	if err != nil {
		tx.Rollback()
		return helper.FromFiberError(c, err)
	}

	conflict, err := examsvc.FindRoomConflict(tx, req.ExamLocation, date, startMin, endMin, exam.ExamID)
	if err != nil {
		tx.Rollback()
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if conflict != nil {
		tx.Rollback()
		return helper.Error(c, fiber.StatusConflict, conflictMessage(conflict))
	}

	exam.ExamCourseName = req.ExamCourseName
	exam.ExamCourseCode = req.ExamCourseCode
	exam.ExamDate = date
	exam.ExamStartMinutes = startMin
	exam.ExamEndMinutes = endMin
	exam.ExamLocation = req.ExamLocation
	exam.ExamRules = req.ExamRules
	// Duration stays as-is: it is independently mutable via addTime and is
	// only derived from the window at creation.

	if err := tx.Save(&exam).Error; err != nil {
		tx.Rollback()
		if helper.IsConflictViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Room occupied in that window")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update exam")
	}
	if err := replaceRosters(tx, exam.ExamID, ids); err != nil {
		tx.Rollback()
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store rosters")
	}

	if err := tx.Commit().Error; err != nil {
		if helper.IsConflictViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Room occupied in that window")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionExamUpdated, fiber.Map{"exam_id": exam.ExamID})
	return helper.Success(c, "Exam updated", dto.NewExamResponse(exam))
}

/* ===================== FINISH ===================== */
// PATCH /api/exams/:id
func (ctrl *ExamController) FinishExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var req dto.FinishExamRequest
	_ = c.BodyParser(&req)
	actorID, _ := helper.GetActorID(c, req.ActorID)

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	next, changed, err := examsvc.NextStatus(exam.ExamStatus, examsvc.EventFinish)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !changed {
		// Re-finishing a finished exam: explicit no-op.
		return helper.Success(c, "Exam already finished", dto.NewExamResponse(exam))
	}

	if err := ctrl.DB.Model(&model.ExamModel{}).
		Where("exam_id = ?", exam.ExamID).
		Update("exam_status", next).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to finish exam")
	}
	exam.ExamStatus = next

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionExamFinished, fiber.Map{"exam_id": exam.ExamID})
	return helper.Success(c, "Exam finished", dto.NewExamResponse(exam))
}

/* ===================== DELETE ===================== */
// DELETE /api/exams/:id
// Destructive admin operation: removes the exam regardless of status and
// cascades to its attendance and roster rows.
func (ctrl *ExamController) DeleteExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	actorID, _ := helper.GetActorID(c, nil)

	res := ctrl.DB.Delete(&model.ExamModel{}, "exam_id = ?", examID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Exam not found")
	}

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionExamDeleted, fiber.Map{"exam_id": examID})
	return helper.Success(c, "Exam deleted", fiber.Map{"exam_id": examID})
}

/* ===================== ADD TIME ===================== */
// PATCH /api/exams/:id/addTime
func (ctrl *ExamController) AddExamTime(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var req dto.AddExamTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	actorID, _ := helper.GetActorID(c, req.ActorID)

	// Atomic increment, safe under concurrent extensions.
	res := ctrl.DB.Model(&model.ExamModel{}).
		Where("exam_id = ?", examID).
		Update("exam_duration_minutes", gorm.Expr("exam_duration_minutes + ?", req.MinutesToAdd))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Exam not found")
	}

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionExamTimeAdded,
		fiber.Map{"exam_id": examID, "minutes": req.MinutesToAdd})
	return helper.Success(c, "Exam time extended", dto.NewExamResponse(exam))
}

/* ===================== CALL LECTURER ===================== */
// PATCH /api/exams/:id/callLecturer
func (ctrl *ExamController) CallLecturer(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var req dto.CallLecturerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	actorID, _ := helper.GetActorID(c, req.ActorID)

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	lecIDs, missing, err := ctrl.Directory.ResolveByNationalIDs(nil, constants.RoleLecturer, []string{req.LecturerNationalID})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(missing) > 0 || len(lecIDs) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Unknown lecturer: "+req.LecturerNationalID)
	}
	lecturerID := lecIDs[0]

	var onRoster int64
	if err := ctrl.DB.Model(&model.ExamLecturerModel{}).
		Where("exam_lecturer_exam_id = ? AND exam_lecturer_user_id = ?", examID, lecturerID).
		Count(&onRoster).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if onRoster == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Lecturer is not assigned to this exam")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&model.ExamModel{}).
		Where("exam_id = ?", examID).
		Updates(map[string]interface{}{
			"exam_called_lecturer_id": lecturerID,
			"exam_called_lecturer_at": now,
		}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to call lecturer")
	}
	exam.ExamCalledLecturerID = &lecturerID
	exam.ExamCalledLecturerAt = &now

	auditsvc.Emit(ctrl.DB, actorID, auditsvc.ActionLecturerCalled,
		fiber.Map{"exam_id": examID, "lecturer_id": lecturerID})
	return helper.Success(c, "Lecturer called", dto.NewExamResponse(exam))
}

// DELETE /api/exams/:id/callLecturer
func (ctrl *ExamController) ClearCalledLecturer(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	res := ctrl.DB.Model(&model.ExamModel{}).
		Where("exam_id = ?", examID).
		Updates(map[string]interface{}{
			"exam_called_lecturer_id": nil,
			"exam_called_lecturer_at": nil,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Exam not found")
	}
	return helper.Success(c, "Lecturer call cleared", fiber.Map{"exam_id": examID})
}

/* ===================== READ ===================== */
// GET /api/exams/:id
func (ctrl *ExamController) GetExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid exam id")
	}
	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.NewExamResponse(exam))
}

// GET /api/exams
func (ctrl *ExamController) ListExams(c *fiber.Ctx) error {
	var exams []model.ExamModel
	q := ctrl.DB.Order("exam_date DESC, exam_start_minutes ASC")
	if status := c.Query("status"); status != "" {
		q = q.Where("exam_status = ?", status)
	}
	if err := q.Find(&exams).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	out := make([]dto.ExamResponse, 0, len(exams))
	for _, e := range exams {
		out = append(out, dto.NewExamResponse(e))
	}
	return helper.Success(c, "OK", out)
}
