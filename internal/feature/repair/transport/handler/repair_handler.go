// Package handler はrepairフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"calc_backend/internal/feature/repair/domain"
	"calc_backend/internal/feature/repair/domain/entity"
	"calc_backend/internal/feature/repair/transport/http/dto"
)

// RepairUsecase は整合性チェックのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type RepairUsecase interface {
	Repair(ctx context.Context, calculationID uint) (*entity.Inconsistency, error)
	Report(ctx context.Context, calculationID uint) (*entity.GapReport, error)
}

// RepairHandler は整合性チェックのHTTPリクエストを処理します。
type RepairHandler struct {
	uc RepairUsecase
}

// NewRepairHandler は指定されたusecaseでRepairHandlerの新しいインスタンスを生成します。
func NewRepairHandler(uc RepairUsecase) *RepairHandler {
	return &RepairHandler{uc: uc}
}

// GetRepair は計算系列の最初の未説明ギャップを返します。
// 整合している場合は204を返します。
//
// エンドポイント例:
// GET /api/calculations/:id/repair
func (h *RepairHandler) GetRepair(c *gin.Context) {
	id, ok := calculationID(c)
	if !ok {
		return
	}

	inc, err := h.uc.Repair(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if inc == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, toRepairResponse(*inc))
}

// GetGaps は両系列のギャップ一覧と判定結果を返します。
//
// エンドポイント例:
// GET /api/calculations/:id/gaps
func (h *RepairHandler) GetGaps(c *gin.Context) {
	id, ok := calculationID(c)
	if !ok {
		return
	}

	report, err := h.uc.Report(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	out := dto.GapReportResponse{
		CalculationID: report.Parameters.CalculationID,
		ChartID:       report.Parameters.ChartID,
		RangeSize:     report.Parameters.RangeSizeMinutes(),
		DerivedCount:  report.DerivedCount,
		SourceCount:   report.SourceCount,
		DerivedGaps:   formatTimes(report.Gaps.DerivedGaps),
		SourceGaps:    formatTimes(report.Gaps.SourceGaps),
	}
	if report.Inconsistency != nil {
		r := toRepairResponse(*report.Inconsistency)
		out.Inconsistency = &r
	}
	c.JSON(http.StatusOK, out)
}

// calculationID はパスパラメータを正の整数として解釈します。失敗時は400を書き込みます。
func calculationID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "calculation id must be a positive integer"})
		return 0, false
	}
	return uint(n), true
}

// statusFor はusecaseのエラーをHTTPステータスに変換します。
// 期限切れはストア障害より先に判定します（どちらでラップされていても504）。
func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		slog.Error("repair request failed", "path", c.Request.URL.Path, "error", err)
		msg = "internal server error"
	case http.StatusServiceUnavailable:
		msg = domain.ErrStoreUnavailable.Error()
	}
	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

func toRepairResponse(inc entity.Inconsistency) dto.RepairResponse {
	return dto.RepairResponse{
		Time:      formatTime(inc.Time),
		RangeSize: inc.RangeSize,
	}
}

// formatTime は秒未満を落とさずUTCのRFC3339で整形します。
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimes(ts []time.Time) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, formatTime(t))
	}
	return out
}
