package api

import (
	"context"  // Service calls
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strconv"  // Query and path parsing

	"posyandu_system/internal/domain"  // Importing domain models
	"posyandu_system/internal/service" // Records service and errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// RecordService is the measurement-record behaviour the handlers depend on
type RecordService interface {
	List(ctx context.Context, p service.ListParams) (*service.ListResult, error)
	Create(ctx context.Context, rec *domain.HasilPemeriksaan) error
	GetByID(ctx context.Context, id uint) (*domain.HasilPemeriksaan, error)
	DeleteByID(ctx context.Context, id uint) error
	ChartData(ctx context.Context, month, year int) ([]int64, error)
}

// CreateHasilPemeriksaanRequest is the body of POST /hasil_pemeriksaan
type CreateHasilPemeriksaanRequest struct {
	NamaBalita     string `json:"nama_balita" validate:"required"`
	UmurBalita     *int   `json:"umur_balita" validate:"required,gte=0"`
	BeratBadan     *int   `json:"berat_badan" validate:"required,gt=0"`
	TinggiBadan    *int   `json:"tinggi_badan" validate:"required,gt=0"`
	JenisKelamin   string `json:"jenis_kelamin" validate:"required,oneof=laki-laki perempuan"`
	StatusGizi     string `json:"status_gizi" validate:"required"`
	TglPemeriksaan string `json:"tgl_pemeriksaan" validate:"required,tanggal"`
	NamaOrangtua   string `json:"nama_orangtua" validate:"required"`
}

// toModel converts a validated request into a record
func (r CreateHasilPemeriksaanRequest) toModel() (*domain.HasilPemeriksaan, error) {
	tgl, err := parseTanggal(r.TglPemeriksaan)
	if err != nil {
		return nil, err
	}
	return &domain.HasilPemeriksaan{
		NamaBalita:     r.NamaBalita,
		UmurBalita:     *r.UmurBalita,
		BeratBadan:     *r.BeratBadan,
		TinggiBadan:    *r.TinggiBadan,
		JenisKelamin:   r.JenisKelamin,
		StatusGizi:     r.StatusGizi,
		TglPemeriksaan: tgl,
		NamaOrangtua:   r.NamaOrangtua,
	}, nil
}

// queryInt reads an integer query parameter, 0 when absent or malformed
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

// pathID parses the :id parameter
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ListHasilPemeriksaanHandler returns one page of the records created in a month
func ListHasilPemeriksaanHandler(svc RecordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.List(c.Request.Context(), service.ListParams{
			Month: queryInt(c, "month"), // Defaults to current month
			Year:  queryInt(c, "year"),  // Defaults to current year
			Limit: queryInt(c, "limit"), // Defaults to 10
			Page:  queryInt(c, "page"),  // Defaults to 1
		})
		if err != nil {
			respondInternalError(c, "Error fetching hasil pemeriksaan", err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// CreateHasilPemeriksaanHandler stores a new measurement record
func CreateHasilPemeriksaanHandler(svc RecordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateHasilPemeriksaanRequest
		if !bindAndValidate(c, &req) {
			return
		}
		rec, err := req.toModel()
		if err != nil {
			RespondWithError(c, http.StatusBadRequest, "Invalid request data")
			return
		}
		if !domain.IsKnownStatusGizi(rec.StatusGizi) {
			// Stored anyway; it will not show up in chart data
			logrus.WithField("status_gizi", rec.StatusGizi).Warn("Unknown status gizi category")
		}
		if err := svc.Create(c.Request.Context(), rec); err != nil {
			respondInternalError(c, "Error creating hasil pemeriksaan", err)
			return
		}
		logrus.WithFields(logrus.Fields{"record_id": rec.ID, "status_gizi": rec.StatusGizi}).Info("Hasil pemeriksaan created")
		c.JSON(http.StatusCreated, gin.H{"message": "Hasil pemeriksaan created successfully", "hasilPemeriksaan": rec})
	}
}

// GetHasilPemeriksaanHandler returns a single record
func GetHasilPemeriksaanHandler(svc RecordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			RespondWithError(c, http.StatusNotFound, "Hasil pemeriksaan not found")
			return
		}
		rec, err := svc.GetByID(c.Request.Context(), id)
		if errors.Is(err, service.ErrRecordNotFound) {
			RespondWithError(c, http.StatusNotFound, "Hasil pemeriksaan not found")
			return
		} else if err != nil {
			respondInternalError(c, "Error fetching hasil pemeriksaan", err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// DeleteHasilPemeriksaanHandler removes a record
func DeleteHasilPemeriksaanHandler(svc RecordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			RespondWithError(c, http.StatusNotFound, "Hasil pemeriksaan not found")
			return
		}
		err := svc.DeleteByID(c.Request.Context(), id)
		if errors.Is(err, service.ErrRecordNotFound) {
			RespondWithError(c, http.StatusNotFound, "Hasil pemeriksaan not found")
			return
		} else if err != nil {
			respondInternalError(c, "Error deleting hasil pemeriksaan", err)
			return
		}
		logrus.WithField("record_id", id).Info("Hasil pemeriksaan deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Hasil pemeriksaan deleted successfully"})
	}
}

// ChartDataHandler returns the six status gizi counts for a month
func ChartDataHandler(svc RecordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := svc.ChartData(c.Request.Context(), queryInt(c, "month"), queryInt(c, "year"))
		if err != nil {
			respondInternalError(c, "Error fetching chart data", err)
			return
		}
		c.JSON(http.StatusOK, counts)
	}
}
