package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rhyrak/go-timetable/internal/pipeline"
	"github.com/rhyrak/go-timetable/internal/timetable"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type server struct {
	cfg       *timetable.Configuration
	store     *store
	logger    *slog.Logger
	maxUpload int64
}

func newRouter(s *server, accessLog bool) *gin.Engine {
	r := gin.New()
	if accessLog {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})
	r.POST("/", s.handlePostTimetable)
	r.GET("/timetable", s.handleGetTimetables)
	r.GET("/timetable/:id", s.handleGetTimetableWithId)
	r.GET("/timetable/:id/report", s.handleGetReportWithId)
	r.DELETE("/timetable/:id", s.handleDeleteTimetableWithId)
	return r
}

func (s *server) handlePostTimetable(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing form file \"file\""})
		return
	}
	if fh.Size > s.maxUpload {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file exceeds %d bytes", s.maxUpload)})
		return
	}
	f, err := fh.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, s.maxUpload))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := pipeline.Input{Name: fh.Filename, Data: data, Delim: ','}
	if d := []rune(ctx.PostForm("delim")); len(d) == 1 {
		in.Delim = d[0]
	}
	switch ctx.PostForm("mode") {
	case "", "export":
	case "records":
		in.Mode = pipeline.ModeRecords
	case "rerender":
		in.Mode = pipeline.ModeRerender
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "mode must be export, records or rerender"})
		return
	}

	res, err := pipeline.Process(ctx.Request.Context(), in, pipeline.Options{Config: s.cfg, Logger: s.logger})
	if err != nil {
		s.logger.Warn("upload rejected", "file", fh.Filename, "error", err)
		status := http.StatusUnprocessableEntity
		if ctx.Request.Context().Err() != nil {
			status = http.StatusRequestTimeout
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	entry := &timetableEntry{
		ID:      uuid.NewString(),
		Name:    fh.Filename,
		OK:      res.OK,
		Status:  res.Status,
		Days:    res.Days,
		Created: time.Now(),
		Output:  res.Output,
	}
	s.store.put(entry)
	s.logger.Info("timetable created", "id", entry.ID, "file", fh.Filename, "days", len(entry.Days), "ok", entry.OK)

	ctx.JSON(http.StatusOK, gin.H{
		"id":     entry.ID,
		"ok":     entry.OK,
		"status": entry.Status,
		"days":   entry.Days,
	})
}

func (s *server) handleGetTimetables(ctx *gin.Context) {
	entries := s.store.list()
	if entries == nil {
		entries = []*timetableEntry{}
	}
	ctx.JSON(http.StatusOK, gin.H{
		"timetables": entries,
	})
}

func (s *server) handleGetTimetableWithId(ctx *gin.Context) {
	entry, ok := s.store.get(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "timetable-"+entry.ID+".xlsx"))
	ctx.Data(http.StatusOK, xlsxContentType, entry.Output)
}

func (s *server) handleGetReportWithId(ctx *gin.Context) {
	entry, ok := s.store.get(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

func (s *server) handleDeleteTimetableWithId(ctx *gin.Context) {
	if !s.store.remove(ctx.Param("id")) {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
