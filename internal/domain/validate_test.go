package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateInsertAggregatesAllViolations(t *testing.T) {
	_, err := EmployeeSchema.ValidateInsert(map[string]any{
		"userId":         "one",
		"department":     "astrology",
		"employmentType": EmploymentFullTime,
		"position":       "Recruiter",
	})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	// userId wrong type, department bad enum, employeeId and hireDate missing.
	if len(verr.Issues) != 4 {
		t.Fatalf("expected 4 issues, got %d: %v", len(verr.Issues), verr.Issues)
	}

	message := verr.Error()
	for _, fragment := range []string{"userId", "department", "employeeId", "hireDate"} {
		if !strings.Contains(message, fragment) {
			t.Fatalf("expected message to mention %q, got %q", fragment, message)
		}
	}
}

func TestValidateInsertAppliesDefaults(t *testing.T) {
	values, err := TaskSchema.ValidateInsert(map[string]any{
		"userId": float64(1),
		"title":  "File quarterly report",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["priority"] != TaskPriorityNormal {
		t.Fatalf("expected default priority, got %v", values["priority"])
	}
	if values["completed"] != false {
		t.Fatalf("expected completed default false, got %v", values["completed"])
	}
}

func TestValidateInsertRoleIsFreeText(t *testing.T) {
	// role is plain text with a default, not an enum; any string passes.
	values, err := UserSchema.ValidateInsert(map[string]any{
		"username":  "jdoe",
		"password":  "secret",
		"email":     "jdoe@example.com",
		"firstName": "Jordan",
		"lastName":  "Doe",
		"role":      "superintendent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["role"] != "superintendent" {
		t.Fatalf("expected role kept verbatim, got %v", values["role"])
	}
}

func TestValidateInsertRejectsEnumOutsideSet(t *testing.T) {
	_, err := LeaveSchema.ValidateInsert(map[string]any{
		"employeeId": float64(1),
		"startDate":  "2024-03-01",
		"endDate":    "2024-03-05",
		"type":       "sabbatical",
	})
	if err == nil {
		t.Fatal("expected enum violation")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Fatalf("expected enum reason, got %q", err.Error())
	}
}

func TestValidateInsertNormalizesDates(t *testing.T) {
	values, err := AttendanceSchema.ValidateInsert(map[string]any{
		"employeeId": float64(3),
		"date":       "2024-06-01T08:30:00Z",
		"checkIn":    "2024-06-01T08:30:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["date"] != "2024-06-01" {
		t.Fatalf("expected date trimmed to calendar day, got %v", values["date"])
	}
	if values["checkIn"] != "2024-06-01T08:30:00Z" {
		t.Fatalf("expected RFC3339 checkIn, got %v", values["checkIn"])
	}
	if values["status"] != "present" {
		t.Fatalf("expected status default present, got %v", values["status"])
	}
}

func TestValidatePartialSkipsAbsentFields(t *testing.T) {
	patch, err := EmployeeSchema.ValidatePartial(map[string]any{
		"position": "Senior Recruiter",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patch) != 1 {
		t.Fatalf("expected only the supplied field, got %v", patch)
	}
	if patch["position"] != "Senior Recruiter" {
		t.Fatalf("unexpected patch value: %v", patch["position"])
	}
}

func TestValidatePartialStillChecksKinds(t *testing.T) {
	_, err := EmployeeSchema.ValidatePartial(map[string]any{
		"department": "astrology",
	})
	if err == nil {
		t.Fatal("expected partial validation to reject bad enum value")
	}
}

func TestValidateInsertRejectsNullForRequiredField(t *testing.T) {
	_, err := UserSchema.ValidateInsert(map[string]any{
		"username":  nil,
		"password":  "secret",
		"email":     "x@example.com",
		"firstName": "X",
		"lastName":  "Y",
	})
	if err == nil {
		t.Fatal("expected null username to be rejected")
	}
}

func TestValidateInsertAcceptsNumericString(t *testing.T) {
	values, err := PayrollSchema.ValidateInsert(map[string]any{
		"employeeId":  float64(1),
		"period":      "2024-03",
		"baseSalary":  "5200.50",
		"netSalary":   float64(4800),
		"paymentDate": "2024-03-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["baseSalary"] != 5200.50 {
		t.Fatalf("expected coerced base salary, got %v", values["baseSalary"])
	}
	if values["bonus"] != float64(0) {
		t.Fatalf("expected bonus default 0, got %v", values["bonus"])
	}
}

func TestValidateInsertIgnoresUnknownKeys(t *testing.T) {
	values, err := AnnouncementSchema.ValidateInsert(map[string]any{
		"createdBy": float64(1),
		"title":     "Office closed Friday",
		"content":   "Maintenance work on the HVAC system.",
		"id":        float64(99),
		"postDate":  "2020-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := values["id"]; ok {
		t.Fatal("expected id to be stripped from insert values")
	}
	if _, ok := values["postDate"]; ok {
		t.Fatal("expected postDate to be stripped from insert values")
	}
}
