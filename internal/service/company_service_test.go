package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/elisam1/officattend/internal/dto"
	"github.com/elisam1/officattend/internal/model"
	"github.com/elisam1/officattend/internal/repository"
)

func setupTestCompanyService() (CompanyService, *mockCompanyRepo) {
	companyRepo := newMockCompanyRepo()
	repo := &repository.Repository{Company: companyRepo}
	svc := NewCompanyService(repo, zap.NewNop())
	return svc, companyRepo
}

func TestGetCompany_StripsCredentials(t *testing.T) {
	svc, companyRepo := setupTestCompanyService()
	c := seedCompany(companyRepo)
	c.Admins = []model.Admin{{
		ID:           "admin-1",
		Name:         "管理员",
		Email:        "boss@test.com",
		PasswordHash: "$2a$10$hash",
	}}

	result, err := svc.Get(context.Background(), "co-1")
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if len(result.Admins) != 1 {
		t.Fatalf("应返回 1 名管理员，实际=%d", len(result.Admins))
	}
	if result.Admins[0].Email != "boss@test.com" {
		t.Errorf("期望 Email=boss@test.com，实际=%s", result.Admins[0].Email)
	}
	// AdminResponse 不含凭证字段，此处仅验证映射完整
	if result.Admins[0].ID != "admin-1" || result.Admins[0].Name != "管理员" {
		t.Error("管理员基本字段映射不完整")
	}
}

func TestGetCompany_NotFound(t *testing.T) {
	svc, _ := setupTestCompanyService()

	_, err := svc.Get(context.Background(), "co-missing")
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("期望 ErrCompanyNotFound，实际: %v", err)
	}
}

func TestUpdateSettings_ReplacesSchedule(t *testing.T) {
	svc, companyRepo := setupTestCompanyService()
	seedCompany(companyRepo)

	settings, err := svc.UpdateSettings(context.Background(), "co-1", &dto.UpdateSettingsRequest{
		Schedule: &dto.ScheduleRequest{CheckInEnd: "09:30", CheckOutStart: "17:30"},
	})
	if err != nil {
		t.Fatalf("UpdateSettings 应成功: %v", err)
	}
	if settings.Schedule.CheckInEnd != "09:30" || settings.Schedule.CheckOutStart != "17:30" {
		t.Errorf("时刻表未正确更新: %+v", settings.Schedule)
	}

	stored := companyRepo.companies["co-1"]
	if stored.Settings.Schedule.CheckInEnd != "09:30" {
		t.Error("更新应已落盘")
	}
}

func TestUpdateSettings_OmittedScheduleUnchanged(t *testing.T) {
	svc, companyRepo := setupTestCompanyService()
	seedCompany(companyRepo)

	settings, err := svc.UpdateSettings(context.Background(), "co-1", &dto.UpdateSettingsRequest{})
	if err != nil {
		t.Fatalf("UpdateSettings 应成功: %v", err)
	}
	if settings.Schedule.CheckInEnd != "10:00" {
		t.Errorf("未给出的设置不应改变，实际=%s", settings.Schedule.CheckInEnd)
	}
}
