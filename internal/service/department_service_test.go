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

func setupTestDepartmentService() (DepartmentService, *mockCompanyRepo) {
	companyRepo := newMockCompanyRepo()
	repo := &repository.Repository{Company: companyRepo}
	svc := NewDepartmentService(repo, zap.NewNop())
	return svc, companyRepo
}

func TestCreateDepartment_Success(t *testing.T) {
	svc, companyRepo := setupTestDepartmentService()
	seedCompany(companyRepo)

	dept, err := svc.Create(context.Background(), "co-1", &dto.CreateDepartmentRequest{Name: "研发部"})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if dept.Name != "研发部" {
		t.Errorf("期望 Name=研发部，实际=%s", dept.Name)
	}
	if dept.ID == "" {
		t.Error("应生成部门 ID")
	}
}

func TestCreateDepartment_DefaultName(t *testing.T) {
	svc, companyRepo := setupTestDepartmentService()
	seedCompany(companyRepo)

	dept, err := svc.Create(context.Background(), "co-1", &dto.CreateDepartmentRequest{})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if dept.Name != "Department" {
		t.Errorf("缺省名称应为 Department，实际=%s", dept.Name)
	}
}

func TestListDepartments(t *testing.T) {
	svc, companyRepo := setupTestDepartmentService()
	c := seedCompany(companyRepo)
	c.Departments = append(c.Departments,
		model.Department{ID: "dept-1", Name: "研发部"},
		model.Department{ID: "dept-2", Name: "市场部"},
	)

	departments, err := svc.List(context.Background(), "co-1")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(departments) != 2 {
		t.Errorf("期望 2 个部门，实际=%d", len(departments))
	}
}

func TestDeleteDepartment_KeepsEmployeeRefs(t *testing.T) {
	svc, companyRepo := setupTestDepartmentService()
	c := seedCompany(companyRepo)
	c.Departments = append(c.Departments, model.Department{ID: "dept-1", Name: "研发部"})
	c.Employees[0].DepartmentID = "dept-1"

	if err := svc.Delete(context.Background(), "co-1", "dept-1"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}

	stored := companyRepo.companies["co-1"]
	if len(stored.Departments) != 0 {
		t.Errorf("部门应已删除，实际剩余=%d", len(stored.Departments))
	}
	// 弱引用不级联清理
	if stored.Employees[0].DepartmentID != "dept-1" {
		t.Error("员工上的部门引用不应被级联清除")
	}
}

func TestDeleteDepartment_CompanyNotFound(t *testing.T) {
	svc, _ := setupTestDepartmentService()

	err := svc.Delete(context.Background(), "co-missing", "dept-1")
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("期望 ErrCompanyNotFound，实际: %v", err)
	}
}
