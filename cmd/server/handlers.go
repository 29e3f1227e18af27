package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/go-exam-schedule/internal/csvio"
	"github.com/rhyrak/go-exam-schedule/internal/report"
	"github.com/rhyrak/go-exam-schedule/internal/scheduler"
	"github.com/rhyrak/go-exam-schedule/internal/store"
	"go.uber.org/zap"
)

type server struct {
	repo   store.Repository
	cfg    *scheduler.Configuration
	logger *zap.Logger
}

type unscheduledCourse struct {
	Name         string `json:"name"`
	ID           int    `json:"id"`
	StudentCount int    `json:"student_count"`
	ExamTime     string `json:"exam_time"`
}

func (s *server) handleGetSchedule(ctx *gin.Context) {
	records, err := s.repo.List(ctx.Request.Context())
	if err != nil {
		s.logger.Error("listing schedules", zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"schedules": records,
	})
}

func (s *server) handleGetScheduleWithId(ctx *gin.Context) {
	record, ok := s.lookup(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": record.Data,
	})
}

func (s *server) handleGetScheduleExcel(ctx *gin.Context) {
	record, ok := s.lookup(ctx)
	if !ok {
		return
	}
	if record.Status != store.StatusSuccess {
		ctx.Status(http.StatusConflict)
		return
	}

	rows, err := csvio.ReadScheduleRows(strings.NewReader(record.Data), s.cfg.Delim())
	if err != nil {
		s.logger.Error("reading stored schedule", zap.String("id", record.ID), zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", "attachment; filename="+record.ID+"-exam_schedule.xlsx")
	ctx.Status(http.StatusOK)
	if err := report.WriteExcel(ctx.Writer, rows); err != nil {
		s.logger.Error("writing excel", zap.String("id", record.ID), zap.Error(err))
	}
}

func (s *server) handleDeleteScheduleWithId(ctx *gin.Context) {
	id := ctx.Param("id")
	err := s.repo.Delete(ctx.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		ctx.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("deleting schedule", zap.String("id", id), zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (s *server) handlePostSchedule(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	if form.File["courses"] == nil || form.File["classrooms"] == nil {
		s.logger.Warn("missing file(s): courses? classrooms?")
		ctx.Status(http.StatusBadRequest)
		return
	}
	files := uploads{
		courses:    form.File["courses"][0],
		classrooms: form.File["classrooms"][0],
	}
	if form.File["reservations"] != nil {
		files.reservations = form.File["reservations"][0]
	}

	m := s.cfg.ConflictModel
	if v := ctx.PostForm("conflict_model"); v != "" {
		m = scheduler.ConflictModel(v)
	}
	if m != scheduler.SingleSlot && m != scheduler.SlotSet {
		ctx.String(http.StatusBadRequest, "unknown conflict model "+string(m))
		return
	}

	schedule, msg, err := createSchedule(files, m, s.cfg.Delim(), s.logger)
	if err != nil {
		record := store.NewRecord(store.StatusFailed, err.Error(), "")
		if saveErr := s.repo.Save(ctx.Request.Context(), record); saveErr != nil {
			s.logger.Error("saving failed run", zap.Error(saveErr))
		}
		s.logger.Info("schedule rejected", zap.String("id", record.ID), zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"id":     record.ID,
			"status": record.Status,
			"report": record.Report,
		})
		return
	}

	data, err := csvio.ExportScheduleString(schedule, s.cfg.Delim())
	if err != nil {
		s.logger.Error("exporting schedule", zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
		return
	}
	record := store.NewRecord(store.StatusSuccess, msg, data)
	if err := s.repo.Save(ctx.Request.Context(), record); err != nil {
		s.logger.Error("saving schedule", zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
		return
	}

	unscheduled := make([]unscheduledCourse, 0, len(schedule.Unscheduled))
	for _, c := range schedule.Unscheduled {
		unscheduled = append(unscheduled, unscheduledCourse{Name: c.Name, ID: c.ID, StudentCount: c.StudentCount, ExamTime: c.ExamTime})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":          record.ID,
		"status":      record.Status,
		"report":      record.Report,
		"assigned":    schedule.Rows(),
		"unscheduled": unscheduled,
	})
}

func (s *server) lookup(ctx *gin.Context) (*store.Record, bool) {
	id := ctx.Param("id")
	record, err := s.repo.Get(ctx.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		ctx.Status(http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		s.logger.Error("reading schedule", zap.String("id", id), zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
		return nil, false
	}
	return record, true
}
