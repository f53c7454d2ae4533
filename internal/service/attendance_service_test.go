package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/elisam1/officattend/internal/dto"
	"github.com/elisam1/officattend/internal/model"
	"github.com/elisam1/officattend/internal/repository"
)

// ── 测试辅助 ──

const testDate = "2026-03-02"

// tsAt 构造 testDate 当天指定时分的本地毫秒时间戳
func tsAt(hour, min int) int64 {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.Local).UnixMilli()
}

func ptr(v int64) *int64 { return &v }

func setupTestAttendanceService() (AttendanceService, *mockCompanyRepo) {
	companyRepo := newMockCompanyRepo()
	repo := &repository.Repository{Company: companyRepo}
	svc := NewAttendanceService(repo, zap.NewNop())
	return svc, companyRepo
}

// seedCompany 预置一家公司：默认时刻表 10:00 / 16:00，在册员工 emp-1（张三）
func seedCompany(companyRepo *mockCompanyRepo) *model.Company {
	c := &model.Company{
		ID:   "co-1",
		Name: "测试公司",
		Employees: []model.Employee{
			{ID: "emp-1", Name: "张三"},
		},
		Attendance:  []model.AttendanceRecord{},
		Departments: []model.Department{},
		Shifts:      []model.Shift{},
		Settings: model.Settings{
			Schedule: model.Schedule{CheckInEnd: "10:00", CheckOutStart: "16:00"},
		},
	}
	_ = companyRepo.Create(context.Background(), c)
	return companyRepo.companies["co-1"]
}

func recordEvent(t *testing.T, svc AttendanceService, empID, typ string, ts int64) *dto.AttendanceRecordResponse {
	t.Helper()
	rec, err := svc.RecordEvent(context.Background(), "co-1", &dto.RecordAttendanceRequest{
		EmployeeID: empID,
		Type:       typ,
		Ts:         ptr(ts),
	})
	if err != nil {
		t.Fatalf("RecordEvent 应成功: %v", err)
	}
	return rec
}

// ── 事件记录测试 ──

func TestRecordEvent_LazyCreate(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	seedCompany(companyRepo)

	rec := recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(9, 30))

	if rec.Date != testDate {
		t.Errorf("期望 Date=%s，实际=%s", testDate, rec.Date)
	}
	if rec.CheckIn == nil || *rec.CheckIn != tsAt(9, 30) {
		t.Errorf("CheckIn 应为 09:30 的时间戳，实际=%v", rec.CheckIn)
	}
	if rec.EmployeeName != "张三" {
		t.Errorf("应写入姓名快照，实际=%q", rec.EmployeeName)
	}
	if rec.Late {
		t.Error("09:30 到岗不应迟到")
	}
	if len(companyRepo.companies["co-1"].Attendance) != 1 {
		t.Errorf("应只有一条考勤记录，实际=%d", len(companyRepo.companies["co-1"].Attendance))
	}
}

func TestRecordEvent_SameDayUnique(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	seedCompany(companyRepo)

	recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(9, 0))
	recordEvent(t, svc, "emp-1", model.EventCheckOut, tsAt(17, 0))

	records := companyRepo.companies["co-1"].Attendance
	if len(records) != 1 {
		t.Fatalf("同一员工同一天应只有一条记录，实际=%d", len(records))
	}
	if records[0].CheckIn == nil || records[0].CheckOut == nil {
		t.Error("到岗与离岗时间都应已写入")
	}
}

func TestRecordEvent_FirstWriteWins(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	seedCompany(companyRepo)

	// 09:59 首次到岗（未迟到），10:01 重复到岗不得覆盖
	first := recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(9, 59))
	second := recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(10, 1))

	if *second.CheckIn != *first.CheckIn {
		t.Errorf("重复到岗不应改写时间戳: 期望=%d，实际=%d", *first.CheckIn, *second.CheckIn)
	}
	if second.Late {
		t.Error("首次到岗未迟到，重复事件不得改判为迟到")
	}
}

func TestRecordEvent_LateStrictBoundary(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	seedCompany(companyRepo)

	// 恰好 10:00 到岗：不迟到（严格大于才算）
	onTime := recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(10, 0))
	if onTime.Late {
		t.Error("恰好在截止时刻到岗不应判迟到")
	}
}

func TestRecordEvent_LateAfterThreshold(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	seedCompany(companyRepo)

	late := recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(10, 0)+1)
	if !late.Late {
		t.Error("超过截止时刻 1 毫秒到岗应判迟到")
	}
}

func TestRecordEvent_EarlyLeaveStrictBoundary(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	seedCompany(companyRepo)

	// 恰好 16:00 离岗：不早退（严格小于才算）
	onTime := recordEvent(t, svc, "emp-1", model.EventCheckOut, tsAt(16, 0))
	if onTime.EarlyLeave {
		t.Error("恰好在开始时刻离岗不应判早退")
	}

	svc2, companyRepo2 := setupTestAttendanceService()
	seedCompany(companyRepo2)
	early := recordEvent(t, svc2, "emp-1", model.EventCheckOut, tsAt(16, 0)-1)
	if !early.EarlyLeave {
		t.Error("早于开始时刻 1 毫秒离岗应判早退")
	}
}

func TestRecordEvent_CheckOutOnlyRecord(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	seedCompany(companyRepo)

	rec := recordEvent(t, svc, "emp-1", model.EventCheckOut, tsAt(17, 0))

	if rec.CheckIn != nil {
		t.Error("仅离岗时 CheckIn 应保持为空")
	}
	if rec.CheckOut == nil {
		t.Error("CheckOut 应已写入")
	}
}

func TestRecordEvent_ShiftOverride(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	c := seedCompany(companyRepo)
	c.Shifts = append(c.Shifts, model.Shift{
		ID:       "shift-early",
		Name:     "早班",
		Schedule: model.Schedule{CheckInEnd: "09:00", CheckOutStart: "17:00"},
	})
	c.Employees[0].ShiftID = "shift-early"

	// 09:30 对公司默认（10:00）不迟到，但对早班（09:00）迟到
	rec := recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(9, 30))
	if !rec.Late {
		t.Error("班次时刻表应覆盖公司默认：09:30 到岗对早班应判迟到")
	}
}

func TestRecordEvent_DanglingShiftFallsBack(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	c := seedCompany(companyRepo)
	c.Employees[0].ShiftID = "shift-deleted"

	// 班次引用悬空时回退公司默认 10:00
	rec := recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(9, 30))
	if rec.Late {
		t.Error("悬空班次引用应回退公司默认时刻表")
	}
}

func TestRecordEvent_UnknownEmployee(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	seedCompany(companyRepo)

	// 未注册员工的事件仍被接受，姓名快照留空
	rec := recordEvent(t, svc, "emp-ghost", model.EventCheckIn, tsAt(9, 0))
	if rec.EmployeeID != "emp-ghost" {
		t.Errorf("期望 EmployeeID=emp-ghost，实际=%s", rec.EmployeeID)
	}
	if rec.EmployeeName != "" {
		t.Errorf("未知员工姓名快照应为空，实际=%q", rec.EmployeeName)
	}
}

func TestRecordEvent_MalformedScheduleFallsBackToMidnight(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	c := seedCompany(companyRepo)
	c.Settings.Schedule = model.Schedule{CheckInEnd: "invalid", CheckOutStart: ""}

	// 非法时刻表回退为午夜阈值：任何正常时刻的到岗都算迟到
	rec := recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(8, 0))
	if !rec.Late {
		t.Error("时刻表非法时阈值应回退午夜，08:00 到岗应判迟到")
	}
}

func TestRecordEvent_NameBackfill(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	c := seedCompany(companyRepo)
	// 预置一条姓名快照缺失的记录（例如此前未知员工的事件）
	c.Attendance = append(c.Attendance, model.AttendanceRecord{
		ID:         "rec-1",
		EmployeeID: "emp-1",
		Date:       testDate,
	})

	rec := recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(9, 0))
	if rec.EmployeeName != "张三" {
		t.Errorf("后续事件应回填缺失的姓名快照，实际=%q", rec.EmployeeName)
	}
}

func TestRecordEvent_CompanyNotFound(t *testing.T) {
	svc, _ := setupTestAttendanceService()

	_, err := svc.RecordEvent(context.Background(), "co-missing", &dto.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Type:       model.EventCheckIn,
	})
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("期望 ErrCompanyNotFound，实际: %v", err)
	}
}

// ── 日终结算测试 ──

func TestCloseDay_CreatesAndMarksAbsent(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	c := seedCompany(companyRepo)
	c.Employees = append(c.Employees, model.Employee{ID: "emp-2", Name: "李四"})

	// emp-1 到岗，emp-2 没有任何记录
	recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(9, 0))

	result, err := svc.CloseDay(context.Background(), "co-1", testDate)
	if err != nil {
		t.Fatalf("CloseDay 应成功: %v", err)
	}
	if result.CreatedAbsent != 1 {
		t.Errorf("期望为 emp-2 新建 1 条缺勤记录，实际=%d", result.CreatedAbsent)
	}
	if result.MarkedAbsent != 0 {
		t.Errorf("emp-1 已到岗不应被标缺勤，实际=%d", result.MarkedAbsent)
	}

	stored := companyRepo.companies["co-1"]
	rec2 := stored.FindAttendance("emp-2", testDate)
	if rec2 == nil || !rec2.Absent {
		t.Fatal("emp-2 的缺勤记录应已创建且 Absent=true")
	}
	if rec2.EmployeeName != "李四" {
		t.Errorf("缺勤记录应带姓名快照，实际=%q", rec2.EmployeeName)
	}
	rec1 := stored.FindAttendance("emp-1", testDate)
	if rec1.Absent {
		t.Error("已到岗员工不应被标缺勤")
	}
}

func TestCloseDay_MarksExistingRecordWithoutCheckIn(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	seedCompany(companyRepo)

	// 只有离岗时间的记录：视为未到岗，结算时标缺勤但保留离岗字段
	recordEvent(t, svc, "emp-1", model.EventCheckOut, tsAt(17, 0))

	result, err := svc.CloseDay(context.Background(), "co-1", testDate)
	if err != nil {
		t.Fatalf("CloseDay 应成功: %v", err)
	}
	if result.MarkedAbsent != 1 {
		t.Errorf("期望标记 1 条缺勤，实际=%d", result.MarkedAbsent)
	}

	rec := companyRepo.companies["co-1"].FindAttendance("emp-1", testDate)
	if !rec.Absent {
		t.Error("未到岗记录应被标缺勤")
	}
	if rec.CheckOut == nil {
		t.Error("结算不应清除已写入的离岗时间")
	}
}

func TestCloseDay_Idempotent(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	c := seedCompany(companyRepo)
	c.Employees = append(c.Employees, model.Employee{ID: "emp-2", Name: "李四"})

	first, err := svc.CloseDay(context.Background(), "co-1", testDate)
	if err != nil {
		t.Fatalf("首次 CloseDay 应成功: %v", err)
	}
	if first.CreatedAbsent != 2 {
		t.Errorf("期望新建 2 条缺勤记录，实际=%d", first.CreatedAbsent)
	}

	second, err := svc.CloseDay(context.Background(), "co-1", testDate)
	if err != nil {
		t.Fatalf("重复 CloseDay 应成功: %v", err)
	}
	if second.CreatedAbsent != 0 || second.MarkedAbsent != 0 {
		t.Errorf("重复结算不应产生新变更: created=%d marked=%d", second.CreatedAbsent, second.MarkedAbsent)
	}
	if len(companyRepo.companies["co-1"].Attendance) != 2 {
		t.Errorf("记录数不应增长，实际=%d", len(companyRepo.companies["co-1"].Attendance))
	}
}

func TestCloseDay_EventAfterCloseClearsAbsent(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	seedCompany(companyRepo)

	if _, err := svc.CloseDay(context.Background(), "co-1", testDate); err != nil {
		t.Fatalf("CloseDay 应成功: %v", err)
	}

	// 结算后补到的事件应清除缺勤标记
	rec := recordEvent(t, svc, "emp-1", model.EventCheckIn, tsAt(22, 0))
	if rec.Absent {
		t.Error("结算后的到岗事件应清除缺勤标记")
	}
	if !rec.Late {
		t.Error("22:00 到岗应判迟到")
	}
}

// ── 范围查询测试 ──

func TestListRange_Filtering(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	c := seedCompany(companyRepo)
	c.Attendance = append(c.Attendance,
		model.AttendanceRecord{ID: "r1", EmployeeID: "emp-1", Date: "2026-02-27"},
		model.AttendanceRecord{ID: "r2", EmployeeID: "emp-1", Date: "2026-03-01"},
		model.AttendanceRecord{ID: "r3", EmployeeID: "emp-1", Date: "2026-03-02"},
		model.AttendanceRecord{ID: "r4", EmployeeID: "emp-1", Date: "2026-03-05"},
	)

	records, err := svc.ListRange(context.Background(), "co-1", "2026-03-01", "2026-03-02")
	if err != nil {
		t.Fatalf("ListRange 应成功: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("期望命中 2 条记录，实际=%d", len(records))
	}
	if records[0].ID != "r2" || records[1].ID != "r3" {
		t.Errorf("范围过滤结果不符: %s, %s", records[0].ID, records[1].ID)
	}
}

func TestListRange_OpenBounds(t *testing.T) {
	svc, companyRepo := setupTestAttendanceService()
	c := seedCompany(companyRepo)
	c.Attendance = append(c.Attendance,
		model.AttendanceRecord{ID: "r1", EmployeeID: "emp-1", Date: "2026-02-27"},
		model.AttendanceRecord{ID: "r2", EmployeeID: "emp-1", Date: "2026-03-05"},
	)

	// 无边界返回全量历史
	all, err := svc.ListRange(context.Background(), "co-1", "", "")
	if err != nil {
		t.Fatalf("ListRange 应成功: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("无边界应返回全部记录，实际=%d", len(all))
	}

	// 仅起始边界
	tail, err := svc.ListRange(context.Background(), "co-1", "2026-03-01", "")
	if err != nil {
		t.Fatalf("ListRange 应成功: %v", err)
	}
	if len(tail) != 1 || tail[0].ID != "r2" {
		t.Errorf("仅起始边界过滤结果不符，实际条数=%d", len(tail))
	}
}

func TestListRange_CompanyNotFound(t *testing.T) {
	svc, _ := setupTestAttendanceService()

	_, err := svc.ListRange(context.Background(), "co-missing", "", "")
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("期望 ErrCompanyNotFound，实际: %v", err)
	}
}
