package payrollhandler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"hrportal/internal/domain"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Store interface {
	GetPayroll(ctx context.Context, id int) (*domain.Payroll, error)
	ListPayrollsByEmployee(ctx context.Context, employeeID int) ([]domain.Payroll, error)
	CreatePayroll(ctx context.Context, values map[string]any) (*domain.Payroll, error)
	UpdatePayroll(ctx context.Context, id int, patch map[string]any) (*domain.Payroll, error)
	GetEmployee(ctx context.Context, id int) (*domain.Employee, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{employeeID}/payroll", h.handleListByEmployee)
	r.Post("/payroll", h.handleCreate)
	r.Get("/payroll/{payrollID}", h.handleGet)
	r.Put("/payroll/{payrollID}", h.handleUpdate)
	r.Get("/payroll/{payrollID}/payslip", h.handlePayslip)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := shared.URLID(r, "employeeID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}

	payrolls, err := h.Store.ListPayrollsByEmployee(r.Context(), employeeID)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to list payroll records")
		return
	}
	api.WriteJSON(w, http.StatusOK, payrolls)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "payrollID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Payroll record not found")
		return
	}

	payroll, err := h.Store.GetPayroll(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load payroll record")
		return
	}
	if payroll == nil {
		api.Message(w, http.StatusNotFound, "Payroll record not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, payroll)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := domain.PayrollSchema.ValidateInsert(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	payroll, err := h.Store.CreatePayroll(r.Context(), values)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to create payroll record")
		return
	}
	api.WriteJSON(w, http.StatusCreated, payroll)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "payrollID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Payroll record not found")
		return
	}

	body, err := shared.DecodeBody(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	patch, err := domain.PayrollSchema.ValidatePartial(body)
	if err != nil {
		api.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	payroll, err := h.Store.UpdatePayroll(r.Context(), id, patch)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to update payroll record")
		return
	}
	if payroll == nil {
		api.Message(w, http.StatusNotFound, "Payroll record not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, payroll)
}

// handlePayslip renders one payroll record as a PDF. The employee and user
// lookups are best effort; a payslip without a resolvable name still renders.
func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.URLID(r, "payrollID")
	if !ok {
		api.Message(w, http.StatusNotFound, "Payroll record not found")
		return
	}

	payroll, err := h.Store.GetPayroll(r.Context(), id)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to load payroll record")
		return
	}
	if payroll == nil {
		api.Message(w, http.StatusNotFound, "Payroll record not found")
		return
	}

	employeeName := fmt.Sprintf("Employee #%d", payroll.EmployeeID)
	employeeCode := ""
	if employee, err := h.Store.GetEmployee(r.Context(), payroll.EmployeeID); err == nil && employee != nil {
		employeeCode = employee.EmployeeID
		if user, err := h.Store.GetUser(r.Context(), employee.UserID); err == nil && user != nil {
			employeeName = user.FirstName + " " + user.LastName
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(7)
	if employeeCode != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Employee ID: %s", employeeCode))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", payroll.Period))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %.2f", payroll.BaseSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonus: %.2f", payroll.Bonus))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f", payroll.Deductions))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %.2f", payroll.NetSalary))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Payment date: %s", payroll.PaymentDate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", payroll.Status))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%d.pdf", payroll.ID))
	if err := pdf.Output(w); err != nil {
		api.Message(w, http.StatusInternalServerError, "failed to render payslip")
	}
}
