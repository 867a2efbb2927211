package service

import (
	"context"
	"errors"
	"testing"

	"studentregistry/internal/models"
	"studentregistry/internal/repository"
)

// mockStudentRepo is a lightweight in-test mock for repository.Students.
type mockStudentRepo struct {
	ListFn   func(ctx context.Context) ([]models.Student, error)
	GetFn    func(ctx context.Context, id int) (models.Student, error)
	CreateFn func(ctx context.Context, s models.Student) (int, error)
	UpdateFn func(ctx context.Context, s models.Student) error
	DeleteFn func(ctx context.Context, id int) error

	createCalls []models.Student
	updateCalls []models.Student
	deleteCalls []int
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	return m.ListFn(ctx)
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id int) (models.Student, error) {
	return m.GetFn(ctx, id)
}

func (m *mockStudentRepo) Create(ctx context.Context, s models.Student) (int, error) {
	m.createCalls = append(m.createCalls, s)
	return m.CreateFn(ctx, s)
}

func (m *mockStudentRepo) Update(ctx context.Context, s models.Student) error {
	m.updateCalls = append(m.updateCalls, s)
	return m.UpdateFn(ctx, s)
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFn(ctx, id)
}

func validInput() StudentInput {
	return StudentInput{Name: "Bob", Email: "b@x.com", Major: "CS", GPA: 3.5}
}

func TestStudentService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StudentInput)
		wantErr error
	}{
		{"missing name", func(in *StudentInput) { in.Name = " " }, ErrMissingFields},
		{"missing email", func(in *StudentInput) { in.Email = "" }, ErrMissingFields},
		{"missing major", func(in *StudentInput) { in.Major = "" }, ErrMissingFields},
		{"gpa below range", func(in *StudentInput) { in.GPA = -0.1 }, ErrInvalidGPA},
		{"gpa above range", func(in *StudentInput) { in.GPA = 4.01 }, ErrInvalidGPA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockStudentRepo{
				CreateFn: func(ctx context.Context, s models.Student) (int, error) {
					t.Fatal("Create should not reach the repository on invalid input")
					return 0, nil
				},
			}
			svc := NewStudentService(repo, &mockAuditRepo{})

			in := validInput()
			tt.mutate(&in)
			if _, err := svc.Create(context.Background(), "alice", in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestStudentService_Create_BoundaryGPAAllowed(t *testing.T) {
	for _, gpa := range []float64{0.0, 4.0} {
		repo := &mockStudentRepo{
			CreateFn: func(ctx context.Context, s models.Student) (int, error) { return 1, nil },
		}
		svc := NewStudentService(repo, &mockAuditRepo{})

		in := validInput()
		in.GPA = gpa
		if _, err := svc.Create(context.Background(), "alice", in); err != nil {
			t.Fatalf("gpa %.1f: unexpected error %v", gpa, err)
		}
	}
}

func TestStudentService_Create_AppendsAuditEvent(t *testing.T) {
	repo := &mockStudentRepo{
		CreateFn: func(ctx context.Context, s models.Student) (int, error) { return 11, nil },
	}
	audit := &mockAuditRepo{}
	svc := NewStudentService(repo, audit)

	id, err := svc.Create(context.Background(), "alice", validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}

	evs := audit.events()
	if len(evs) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(evs))
	}
	if evs[0].Type != models.EventStudentCreate || evs[0].Actor != "alice" {
		t.Fatalf("unexpected audit event: %+v", evs[0])
	}
}

func TestStudentService_Create_AuditFailureDoesNotFailMutation(t *testing.T) {
	repo := &mockStudentRepo{
		CreateFn: func(ctx context.Context, s models.Student) (int, error) { return 11, nil },
	}
	audit := &mockAuditRepo{appendErr: errors.New("trail unavailable")}
	svc := NewStudentService(repo, audit)

	if _, err := svc.Create(context.Background(), "alice", validInput()); err != nil {
		t.Fatalf("mutation must survive audit failure, got %v", err)
	}
}

func TestStudentService_Update(t *testing.T) {
	t.Run("full replace reaches repo with id set", func(t *testing.T) {
		repo := &mockStudentRepo{
			UpdateFn: func(ctx context.Context, s models.Student) error { return nil },
		}
		audit := &mockAuditRepo{}
		svc := NewStudentService(repo, audit)

		if err := svc.Update(context.Background(), "alice", 7, validInput()); err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if len(repo.updateCalls) != 1 || repo.updateCalls[0].ID != 7 {
			t.Fatalf("unexpected update calls: %+v", repo.updateCalls)
		}
		if evs := audit.events(); len(evs) != 1 || evs[0].Type != models.EventStudentUpdate {
			t.Fatalf("expected STUDENT_UPDATE audit event, got %+v", audit.events())
		}
	})

	t.Run("not found passes through", func(t *testing.T) {
		repo := &mockStudentRepo{
			UpdateFn: func(ctx context.Context, s models.Student) error {
				return repository.ErrStudentNotFound
			},
		}
		audit := &mockAuditRepo{}
		svc := NewStudentService(repo, audit)

		err := svc.Update(context.Background(), "alice", 404, validInput())
		if !errors.Is(err, repository.ErrStudentNotFound) {
			t.Fatalf("expected ErrStudentNotFound, got %v", err)
		}
		if len(audit.events()) != 0 {
			t.Fatalf("no audit event expected for a failed update")
		}
	})

	t.Run("invalid input never reaches repo", func(t *testing.T) {
		repo := &mockStudentRepo{
			UpdateFn: func(ctx context.Context, s models.Student) error {
				t.Fatal("Update should not reach the repository on invalid input")
				return nil
			},
		}
		svc := NewStudentService(repo, &mockAuditRepo{})

		in := validInput()
		in.Email = ""
		if err := svc.Update(context.Background(), "alice", 7, in); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	})
}

func TestStudentService_Delete(t *testing.T) {
	t.Run("success appends audit event", func(t *testing.T) {
		repo := &mockStudentRepo{
			DeleteFn: func(ctx context.Context, id int) error { return nil },
		}
		audit := &mockAuditRepo{}
		svc := NewStudentService(repo, audit)

		if err := svc.Delete(context.Background(), "alice", 7); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if evs := audit.events(); len(evs) != 1 || evs[0].Type != models.EventStudentDelete {
			t.Fatalf("expected STUDENT_DELETE audit event, got %+v", audit.events())
		}
	})

	t.Run("not found passes through", func(t *testing.T) {
		repo := &mockStudentRepo{
			DeleteFn: func(ctx context.Context, id int) error { return repository.ErrStudentNotFound },
		}
		svc := NewStudentService(repo, &mockAuditRepo{})

		if err := svc.Delete(context.Background(), "alice", 404); !errors.Is(err, repository.ErrStudentNotFound) {
			t.Fatalf("expected ErrStudentNotFound, got %v", err)
		}
	})
}

func TestStudentService_CreateThenGetRoundTrip(t *testing.T) {
	// A tiny in-memory repo exercising create→get→update→delete semantics.
	store := map[int]models.Student{}
	nextID := 0
	repo := &mockStudentRepo{
		CreateFn: func(ctx context.Context, s models.Student) (int, error) {
			nextID++
			s.ID = nextID
			store[s.ID] = s
			return s.ID, nil
		},
		GetFn: func(ctx context.Context, id int) (models.Student, error) {
			s, ok := store[id]
			if !ok {
				return models.Student{}, repository.ErrStudentNotFound
			}
			return s, nil
		},
		UpdateFn: func(ctx context.Context, s models.Student) error {
			if _, ok := store[s.ID]; !ok {
				return repository.ErrStudentNotFound
			}
			store[s.ID] = s
			return nil
		},
		DeleteFn: func(ctx context.Context, id int) error {
			if _, ok := store[id]; !ok {
				return repository.ErrStudentNotFound
			}
			delete(store, id)
			return nil
		},
	}
	svc := NewStudentService(repo, &mockAuditRepo{})
	ctx := context.Background()

	id, err := svc.Create(ctx, "alice", validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get after Create: %v", err)
	}
	want := validInput()
	if got.Name != want.Name || got.Email != want.Email || got.Major != want.Major || got.GPA != want.GPA {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	in := validInput()
	in.Major = "EE"
	if err := svc.Update(ctx, "alice", id, in); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got, _ = svc.Get(ctx, id); got.Major != "EE" {
		t.Fatalf("update not reflected: %+v", got)
	}

	if err := svc.Delete(ctx, "alice", id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, repository.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound after delete, got %v", err)
	}
}
