package store

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hrportal/internal/domain"
)

func mustCreateUser(t *testing.T, s *Store, username string) *domain.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), map[string]any{
		"username":  username,
		"password":  "secret",
		"email":     username + "@example.com",
		"firstName": "Test",
		"lastName":  "User",
		"role":      "employee",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestCreateUserAssignsSequentialIDs(t *testing.T) {
	s := New()

	first := mustCreateUser(t, s, "alpha")
	second := mustCreateUser(t, s, "beta")

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestGetUserRoundTrip(t *testing.T) {
	s := New()
	created := mustCreateUser(t, s, "round")

	got, err := s.GetUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got == nil {
		t.Fatal("expected user, got nil")
	}
	if got.Username != "round" || got.Password != "secret" {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatal("expected server timestamps to be set")
	}
}

func TestGetUserByUsernameAndEmail(t *testing.T) {
	s := New()
	mustCreateUser(t, s, "findme")

	byName, err := s.GetUserByUsername(context.Background(), "findme")
	if err != nil || byName == nil {
		t.Fatalf("lookup by username failed: %v, %v", byName, err)
	}

	byEmail, err := s.GetUserByEmail(context.Background(), "findme@example.com")
	if err != nil || byEmail == nil {
		t.Fatalf("lookup by email failed: %v, %v", byEmail, err)
	}

	missing, err := s.GetUserByUsername(context.Background(), "nobody")
	if err != nil || missing != nil {
		t.Fatalf("expected nil for unknown username, got %v, %v", missing, err)
	}
}

func TestMissingRecordsAreNotErrors(t *testing.T) {
	s := New()
	ctx := context.Background()

	if user, err := s.GetUser(ctx, 99); user != nil || err != nil {
		t.Fatalf("expected nil, nil for missing user, got %v, %v", user, err)
	}
	if user, err := s.UpdateUser(ctx, 99, map[string]any{"role": "admin"}); user != nil || err != nil {
		t.Fatalf("expected nil, nil for update of missing user, got %v, %v", user, err)
	}
	if task, err := s.ToggleTaskCompletion(ctx, 99); task != nil || err != nil {
		t.Fatalf("expected nil, nil for toggle of missing task, got %v, %v", task, err)
	}
	if leave, err := s.UpdateLeaveStatus(ctx, 99, domain.LeaveStatusApproved, nil); leave != nil || err != nil {
		t.Fatalf("expected nil, nil for status change of missing leave, got %v, %v", leave, err)
	}
	deleted, err := s.DeleteDocument(ctx, 99)
	if err != nil {
		t.Fatalf("delete missing document: %v", err)
	}
	if deleted {
		t.Fatal("expected delete of missing document to report false")
	}
}

func TestUpdateEmployeePreservesUntouchedFields(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateEmployee(ctx, map[string]any{
		"userId":         1,
		"employeeId":     "EMP-100",
		"hireDate":       "2023-01-15",
		"department":     domain.DepartmentEngineering,
		"position":       "Engineer",
		"employmentType": domain.EmploymentFullTime,
		"phone":          "555-0100",
	})
	if err != nil {
		t.Fatalf("create employee: %v", err)
	}

	updated, err := s.UpdateEmployee(ctx, created.ID, map[string]any{
		"position": "Senior Engineer",
	})
	if err != nil {
		t.Fatalf("update employee: %v", err)
	}

	if updated.Position != "Senior Engineer" {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Department != domain.DepartmentEngineering || updated.HireDate != "2023-01-15" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.Phone == nil || *updated.Phone != "555-0100" {
		t.Fatalf("optional field lost: %+v", updated.Phone)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("createdAt must not move on update")
	}
}

func TestUpdateEmployeeCanClearOptionalField(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateEmployee(ctx, map[string]any{
		"userId":         1,
		"employeeId":     "EMP-101",
		"hireDate":       "2023-01-15",
		"department":     domain.DepartmentSales,
		"position":       "Rep",
		"employmentType": domain.EmploymentPartTime,
		"phone":          "555-0101",
	})
	if err != nil {
		t.Fatalf("create employee: %v", err)
	}

	updated, err := s.UpdateEmployee(ctx, created.ID, map[string]any{"phone": nil})
	if err != nil {
		t.Fatalf("update employee: %v", err)
	}
	if updated.Phone != nil {
		t.Fatalf("expected phone cleared, got %v", *updated.Phone)
	}
}

func TestDocumentIDsNotReusedAfterDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	doc := map[string]any{
		"employeeId": 1,
		"name":       "contract.pdf",
		"type":       "contract",
		"path":       "/files/contract.pdf",
	}

	first, err := s.CreateDocument(ctx, doc)
	if err != nil {
		t.Fatalf("create document: %v", err)
	}

	deleted, err := s.DeleteDocument(ctx, first.ID)
	if err != nil || !deleted {
		t.Fatalf("delete document: deleted=%v err=%v", deleted, err)
	}

	second, err := s.CreateDocument(ctx, doc)
	if err != nil {
		t.Fatalf("create document again: %v", err)
	}
	if second.ID != first.ID+1 {
		t.Fatalf("expected id %d after delete, got %d", first.ID+1, second.ID)
	}
}

func TestToggleTaskCompletionFlipsBothWays(t *testing.T) {
	s := New()
	ctx := context.Background()

	task, err := s.CreateTask(ctx, map[string]any{
		"userId":    1,
		"title":     "Review timesheets",
		"priority":  domain.TaskPriorityHigh,
		"completed": false,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	toggled, err := s.ToggleTaskCompletion(ctx, task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Completed {
		t.Fatal("expected completed true after first toggle")
	}

	toggled, err = s.ToggleTaskCompletion(ctx, task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.Completed {
		t.Fatal("expected completed false after second toggle")
	}
}

func TestUpdateLeaveStatusRecordsApprover(t *testing.T) {
	s := New()
	ctx := context.Background()

	leave, err := s.CreateLeave(ctx, map[string]any{
		"employeeId": 1,
		"startDate":  "2024-03-01",
		"endDate":    "2024-03-05",
		"type":       domain.LeaveTypeAnnual,
		"status":     domain.LeaveStatusPending,
	})
	if err != nil {
		t.Fatalf("create leave: %v", err)
	}

	approver := 2
	updated, err := s.UpdateLeaveStatus(ctx, leave.ID, domain.LeaveStatusApproved, &approver)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.LeaveStatusApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}
	if updated.ApprovedBy == nil || *updated.ApprovedBy != 2 {
		t.Fatalf("expected approvedBy 2, got %v", updated.ApprovedBy)
	}

	// Any declared status is accepted, including moving off a terminal one.
	reverted, err := s.UpdateLeaveStatus(ctx, leave.ID, domain.LeaveStatusPending, nil)
	if err != nil {
		t.Fatalf("revert status: %v", err)
	}
	if reverted.Status != domain.LeaveStatusPending || reverted.ApprovedBy != nil {
		t.Fatalf("expected pending with no approver, got %+v", reverted)
	}
}

func TestListRecentActivitiesNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		stamp := base.Add(time.Duration(i) * time.Hour)
		s.now = func() time.Time { return stamp }
		_, err := s.CreateActivity(ctx, map[string]any{
			"employeeId":  1,
			"type":        domain.ActivityTypeTraining,
			"description": "Session",
			"status":      domain.ActivityStatusPending,
		})
		if err != nil {
			t.Fatalf("create activity: %v", err)
		}
	}

	recent, err := s.ListRecentActivities(ctx, 3)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(recent))
	}
	for i, wantID := range []int{4, 3, 2} {
		if recent[i].ID != wantID {
			t.Fatalf("position %d: expected id %d, got %d", i, wantID, recent[i].ID)
		}
	}
}

func TestUpdateActivityStatusKeepsDate(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateActivity(ctx, map[string]any{
		"employeeId":  1,
		"type":        domain.ActivityTypeOnboarding,
		"description": "First day",
		"status":      domain.ActivityStatusPending,
	})
	if err != nil {
		t.Fatalf("create activity: %v", err)
	}

	updated, err := s.UpdateActivityStatus(ctx, created.ID, domain.ActivityStatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.ActivityStatusCompleted {
		t.Fatalf("expected completed, got %s", updated.Status)
	}
	if !updated.Date.Equal(created.Date) {
		t.Fatal("activity date must not move on status change")
	}
}

func TestListUpcomingEventsFiltersAndSorts(t *testing.T) {
	s := New()
	ctx := context.Background()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	starts := []time.Time{
		now.Add(-time.Hour),      // past, filtered out
		now,                      // not strictly after, filtered out
		now.Add(48 * time.Hour),  // id 3
		now.Add(2 * time.Hour),   // id 4
		now.Add(240 * time.Hour), // id 5
	}
	for _, start := range starts {
		_, err := s.CreateEvent(ctx, map[string]any{
			"title":     "Town hall",
			"startDate": start.Format(time.RFC3339),
			"endDate":   start.Add(time.Hour).Format(time.RFC3339),
			"createdBy": 1,
		})
		if err != nil {
			t.Fatalf("create event: %v", err)
		}
	}

	upcoming, err := s.ListUpcomingEvents(ctx, 2)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 events, got %d", len(upcoming))
	}
	if upcoming[0].ID != 4 || upcoming[1].ID != 3 {
		t.Fatalf("expected ids [4 3], got [%d %d]", upcoming[0].ID, upcoming[1].ID)
	}
}

func TestListRecentAnnouncementsCapped(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		stamp := base.Add(time.Duration(i) * time.Minute)
		s.now = func() time.Time { return stamp }
		_, err := s.CreateAnnouncement(ctx, map[string]any{
			"createdBy": 1,
			"title":     "Notice",
			"content":   "Body",
		})
		if err != nil {
			t.Fatalf("create announcement: %v", err)
		}
	}

	recent, err := s.ListRecentAnnouncements(ctx, 5)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 announcements, got %d", len(recent))
	}
	if recent[0].ID != 7 || recent[4].ID != 3 {
		t.Fatalf("expected newest first 7..3, got %d..%d", recent[0].ID, recent[4].ID)
	}
}

func TestListAttendanceByDateMatchesCalendarDay(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, day := range []string{"2024-06-01", "2024-06-01", "2024-06-02"} {
		_, err := s.CreateAttendance(ctx, map[string]any{
			"employeeId": 1,
			"date":       day,
			"status":     "present",
		})
		if err != nil {
			t.Fatalf("create attendance: %v", err)
		}
	}

	// The hour of the query argument must not matter.
	query := time.Date(2024, 6, 1, 23, 45, 0, 0, time.UTC)
	records, err := s.ListAttendanceByDate(ctx, query)
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records for 2024-06-01, got %d", len(records))
	}
}

func TestGetEmployeeByUserID(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateEmployee(ctx, map[string]any{
		"userId":         7,
		"employeeId":     "EMP-200",
		"hireDate":       "2022-09-01",
		"department":     domain.DepartmentHR,
		"position":       "Generalist",
		"employmentType": domain.EmploymentFullTime,
	})
	if err != nil {
		t.Fatalf("create employee: %v", err)
	}

	found, err := s.GetEmployeeByUserID(ctx, 7)
	if err != nil || found == nil {
		t.Fatalf("lookup by user id failed: %v, %v", found, err)
	}
	if found.EmployeeID != "EMP-200" {
		t.Fatalf("unexpected employee: %+v", found)
	}

	missing, err := s.GetEmployeeByUserID(ctx, 99)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for unknown user id, got %v, %v", missing, err)
	}
}

func TestListTasksByUserFiltersOthers(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, userID := range []int{1, 2, 1} {
		_, err := s.CreateTask(ctx, map[string]any{
			"userId": userID,
			"title":  "Task",
		})
		if err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	tasks, err := s.ListTasksByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks for user 1, got %d", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[1].ID != 3 {
		t.Fatalf("expected insertion order [1 3], got [%d %d]", tasks[0].ID, tasks[1].ID)
	}
}

func TestSeedCreatesHashedAccountsOnce(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	admin, err := s.GetUserByUsername(ctx, "admin")
	if err != nil || admin == nil {
		t.Fatalf("expected seeded admin, got %v, %v", admin, err)
	}
	if admin.Password == "admin123" {
		t.Fatal("seeded password must not be stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")); err != nil {
		t.Fatalf("seeded hash does not verify: %v", err)
	}

	hr, err := s.GetUserByUsername(ctx, "hrmanager")
	if err != nil || hr == nil {
		t.Fatalf("expected seeded hrmanager, got %v, %v", hr, err)
	}

	// Running again must not duplicate accounts.
	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users after reseeding, got %d", len(users))
	}
}
