package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/elisam1/officattend/config"
	"github.com/elisam1/officattend/internal/api/handler"
	"github.com/elisam1/officattend/internal/api/middleware"
	"github.com/elisam1/officattend/pkg/jwt"
	"github.com/elisam1/officattend/pkg/redis"
)

// maxBodyBytes 请求体上限，需容纳人脸特征向量数组
const maxBodyBytes = 2 << 20

// Setup 初始化并返回 Gin 路由引擎
//
// 鉴权边界与识别端工作流一致：读取、事件上报、员工录入与导出
// 无需 Token（考勤终端直接调用），管理性变更需要 Token 且限定本公司
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// 管理性变更的鉴权链：验证 Token 并限定操作本公司
	auth := middleware.JWTAuth(jwtMgr, rdb)
	scoped := middleware.CompanyScope()

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// ── 开户与认证 ──
	r.POST("/setup/company", h.Auth.SetupCompany)
	r.POST("/auth/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
	r.POST("/auth/logout", auth, h.Auth.Logout)
	r.GET("/auth/me", auth, h.Auth.Me)

	// ── 公司模块 ──
	company := r.Group("/company/:id")
	{
		company.GET("", h.Company.GetCompany)
		company.PUT("/settings", auth, scoped, h.Company.UpdateSettings)

		// 员工模块（录入来自考勤终端，开放）
		company.GET("/employees", h.Employee.ListEmployees)
		company.POST("/employees", h.Employee.CreateEmployee)
		company.PUT("/employees/:empId", auth, scoped, h.Employee.UpdateEmployee)
		company.DELETE("/employees/:empId", auth, scoped, h.Employee.DeleteEmployee)

		// 考勤模块（事件上报来自考勤终端，开放；结算是管理操作）
		company.POST("/attendance", h.Attendance.RecordEvent)
		company.GET("/attendance", h.Attendance.ListRange)
		company.GET("/attendance/today", h.Attendance.ListToday)
		company.POST("/attendance/closeDay", auth, scoped, h.Attendance.CloseDay)

		// 导出模块
		company.GET("/attendance.csv", h.Export.ExportCSV)
		company.GET("/attendance.xlsx", h.Export.ExportExcel)
		company.GET("/attendance.ics", h.Export.ExportICS)

		// 部门模块
		company.GET("/departments", h.Department.ListDepartments)
		company.POST("/departments", auth, scoped, h.Department.CreateDepartment)
		company.DELETE("/departments/:deptId", auth, scoped, h.Department.DeleteDepartment)

		// 班次模块
		company.GET("/shifts", h.Shift.ListShifts)
		company.POST("/shifts", auth, scoped, h.Shift.CreateShift)
		company.DELETE("/shifts/:shiftId", auth, scoped, h.Shift.DeleteShift)
	}

	return r
}
