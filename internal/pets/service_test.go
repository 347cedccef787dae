package pets

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubPetRepo struct {
	pets map[uuid.UUID]*models.Pet
}

func newStubPetRepo() *stubPetRepo {
	return &stubPetRepo{pets: make(map[uuid.UUID]*models.Pet)}
}

func (s *stubPetRepo) Create(ctx context.Context, pet *models.Pet) (*models.Pet, error) {
	pet.ID = uuid.New()
	pet.CreatedAt = time.Now().UTC()
	s.pets[pet.ID] = pet
	return pet, nil
}

func (s *stubPetRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	pet, ok := s.pets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *pet
	return &copied, nil
}

func (s *stubPetRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Pet, error) {
	var rows []models.Pet
	for _, pet := range s.pets {
		if pet.OwnerID == ownerID {
			rows = append(rows, *pet)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (s *stubPetRepo) Update(ctx context.Context, pet *models.Pet) error {
	if _, ok := s.pets[pet.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *pet
	s.pets[pet.ID] = &copied
	return nil
}

func (s *stubPetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.pets, id)
	return nil
}

func buildService(t *testing.T, repo *stubPetRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{PetRepo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateRegistersPetUnderOwner(t *testing.T) {
	repo := newStubPetRepo()
	svc := buildService(t, repo)
	ownerID := uuid.New()

	breed := "Aspin"
	birthdate := "2022-06-12"
	dto, err := svc.Create(context.Background(), ownerID, CreateRequest{
		Name:      "Bantay",
		Type:      "dog",
		Breed:     &breed,
		Birthdate: &birthdate,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.OwnerID != ownerID {
		t.Fatalf("expected owner %s, got %s", ownerID, dto.OwnerID)
	}
	want := time.Date(2022, time.June, 12, 0, 0, 0, 0, time.UTC)
	if dto.Birthdate == nil || !dto.Birthdate.Equal(want) {
		t.Fatalf("expected birthdate %v, got %v", want, dto.Birthdate)
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := buildService(t, newStubPetRepo())

	cases := []CreateRequest{
		{Name: "", Type: "dog"},
		{Name: "Bantay", Type: " "},
	}
	for i, req := range cases {
		_, err := svc.Create(context.Background(), uuid.New(), req)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestListMineSortsByName(t *testing.T) {
	repo := newStubPetRepo()
	svc := buildService(t, repo)
	ownerID := uuid.New()

	for _, name := range []string{"Muning", "Bantay", "Chichi"} {
		if _, err := svc.Create(context.Background(), ownerID, CreateRequest{Name: name, Type: "dog"}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	if _, err := svc.Create(context.Background(), uuid.New(), CreateRequest{Name: "Aso", Type: "dog"}); err != nil {
		t.Fatalf("create other: %v", err)
	}

	rows, err := svc.ListMine(context.Background(), ownerID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 pets, got %d", len(rows))
	}
	wantOrder := []string{"Bantay", "Chichi", "Muning"}
	for i, want := range wantOrder {
		if rows[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, rows[i].Name)
		}
	}
}

func TestOwnershipScopesEveryOperation(t *testing.T) {
	repo := newStubPetRepo()
	svc := buildService(t, repo)
	ownerID := uuid.New()
	strangerID := uuid.New()

	dto, err := svc.Create(context.Background(), ownerID, CreateRequest{Name: "Bantay", Type: "dog"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(context.Background(), strangerID, dto.ID); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for stranger get, got %v", err)
	}
	newName := "Kidlat"
	if _, err := svc.Update(context.Background(), strangerID, dto.ID, UpdateRequest{Name: &newName}); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for stranger update, got %v", err)
	}
	if err := svc.Delete(context.Background(), strangerID, dto.ID); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for stranger delete, got %v", err)
	}

	// The owner still sees the pet untouched.
	got, err := svc.Get(context.Background(), ownerID, dto.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Name != "Bantay" {
		t.Fatalf("pet mutated by stranger: %q", got.Name)
	}
}

func TestUpdateEditsOnlyProvidedFields(t *testing.T) {
	repo := newStubPetRepo()
	svc := buildService(t, repo)
	ownerID := uuid.New()

	breed := "Puspin"
	dto, err := svc.Create(context.Background(), ownerID, CreateRequest{Name: "Muning", Type: "cat", Breed: &breed})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newName := "Mingming"
	updated, err := svc.Update(context.Background(), ownerID, dto.ID, UpdateRequest{Name: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Mingming" {
		t.Fatalf("expected renamed pet, got %q", updated.Name)
	}
	if updated.Type != "cat" || updated.Breed == nil || *updated.Breed != "Puspin" {
		t.Fatalf("untouched fields changed: type=%q breed=%v", updated.Type, updated.Breed)
	}
}

func TestDeleteRemovesPet(t *testing.T) {
	repo := newStubPetRepo()
	svc := buildService(t, repo)
	ownerID := uuid.New()

	dto, err := svc.Create(context.Background(), ownerID, CreateRequest{Name: "Bantay", Type: "dog"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), ownerID, dto.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), ownerID, dto.ID); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
