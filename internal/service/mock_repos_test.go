package service

import (
	"context"
	"strings"

	"github.com/elisam1/officattend/internal/model"
	apperrors "github.com/elisam1/officattend/pkg/errors"
)

// ── Mock CompanyRepository ──

// mockCompanyRepo 内存版公司文档仓库
// Update 的闭包直接作用于存储中的公司对象，与真实实现的
// 读-改-写语义一致（闭包返回错误时不提交变更）
type mockCompanyRepo struct {
	companies map[string]*model.Company
	order     []string // 保持 List 顺序可预测
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: make(map[string]*model.Company)}
}

func (m *mockCompanyRepo) Create(_ context.Context, company *model.Company) error {
	cp := *company
	m.companies[company.ID] = &cp
	m.order = append(m.order, company.ID)
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id string) (*model.Company, error) {
	if c, ok := m.companies[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, apperrors.ErrRecordNotFound
}

func (m *mockCompanyRepo) GetByName(_ context.Context, name string) (*model.Company, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for _, c := range m.companies {
		if strings.ToLower(strings.TrimSpace(c.Name)) == norm {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrRecordNotFound
}

func (m *mockCompanyRepo) List(_ context.Context) ([]model.Company, error) {
	result := make([]model.Company, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, *m.companies[id])
	}
	return result, nil
}

func (m *mockCompanyRepo) Update(_ context.Context, id string, fn func(c *model.Company) error) (*model.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	// 与真实实现一致：闭包出错时不提交
	work := *c
	if err := fn(&work); err != nil {
		return nil, err
	}
	*c = work
	cp := work
	return &cp, nil
}
