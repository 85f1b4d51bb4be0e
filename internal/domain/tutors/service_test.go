package tutors_test

import (
	"context"
	"testing"
	"time"

	"clinica-pet-feliz/internal/adapters/storage/memory"
	"clinica-pet-feliz/internal/domain/appointments"
	"clinica-pet-feliz/internal/domain/pets"
	"clinica-pet-feliz/internal/domain/registry"
	"clinica-pet-feliz/internal/domain/tutors"
	"clinica-pet-feliz/internal/domain/veterinarians"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_Validation(t *testing.T) {
	svc := tutors.NewService(memory.NewTutorStore(memory.NewDB()))
	ctx := context.Background()

	_, err := svc.Create(ctx, tutors.Input{CPF: "123"})
	assert.Equal(t, "nome is required", registry.Message(err))

	_, err = svc.Create(ctx, tutors.Input{Name: "Maria"})
	assert.Equal(t, "cpf is required", registry.Message(err))

	_, err = svc.Create(ctx, tutors.Input{Name: "Maria", CPF: "123.456.789-0000"})
	assert.ErrorIs(t, err, registry.ErrValidation)
	assert.Equal(t, "cpf must be at most 15 characters", registry.Message(err))

	tu, err := svc.Create(ctx, tutors.Input{Name: " Maria ", CPF: "123.456.789-00"})
	require.NoError(t, err)
	assert.Equal(t, "Maria", tu.Name)
}

func TestCreate_DuplicateCPF(t *testing.T) {
	svc := tutors.NewService(memory.NewTutorStore(memory.NewDB()))
	ctx := context.Background()

	_, err := svc.Create(ctx, tutors.Input{Name: "Maria", CPF: "123.456.789-00"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, tutors.Input{Name: "Joana", CPF: "123.456.789-00"})
	assert.ErrorIs(t, err, registry.ErrConflict)
	assert.Equal(t, "cpf already registered", registry.Message(err))
}

func TestUpdate_CPFConflictWithOtherTutor(t *testing.T) {
	svc := tutors.NewService(memory.NewTutorStore(memory.NewDB()))
	ctx := context.Background()

	a, err := svc.Create(ctx, tutors.Input{Name: "Maria", CPF: "111"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, tutors.Input{Name: "Joana", CPF: "222"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, a.ID, tutors.Input{Name: "Maria", CPF: "222"})
	assert.ErrorIs(t, err, registry.ErrConflict)

	_, err = svc.Update(ctx, 42, tutors.Input{Name: "Maria", CPF: "333"})
	assert.ErrorIs(t, err, registry.ErrNotFound)

	u, err := svc.Update(ctx, a.ID, tutors.Input{Name: "Maria Souza", CPF: "111", Contact: registry.Contact{Phone: "(11) 9999"}})
	require.NoError(t, err)
	assert.Equal(t, "(11) 9999", u.Phone)
}

func TestDelete_CascadesPetsAndAppointments(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()

	vetSvc := veterinarians.NewService(memory.NewVeterinarianStore(db))
	tutorSvc := tutors.NewService(memory.NewTutorStore(db))
	petSvc := pets.NewService(memory.NewPetStore(db))
	apptSvc := appointments.NewService(memory.NewAppointmentStore(db))

	vet, err := vetSvc.Create(ctx, veterinarians.Input{Name: "Dr. João", CRMV: "12345-SP"})
	require.NoError(t, err)
	maria, err := tutorSvc.Create(ctx, tutors.Input{Name: "Maria", CPF: "111"})
	require.NoError(t, err)
	joana, err := tutorSvc.Create(ctx, tutors.Input{Name: "Joana", CPF: "222"})
	require.NoError(t, err)

	born := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	newPet := func(name string, tutorID int64) pets.Pet {
		p, err := petSvc.Create(ctx, pets.CreateInput{
			ProfileInput: pets.ProfileInput{Name: name, BirthDate: &born, Species: "Gato"},
			TutorID:      tutorID,
		})
		require.NoError(t, err)
		return p
	}
	rex := newPet("Rex", maria.ID)
	_ = newPet("Mimi", maria.ID) // sin consultas
	bob := newPet("Bob", joana.ID)

	at := time.Date(2025, 11, 10, 14, 0, 0, 0, time.UTC)
	for i, p := range []pets.Pet{rex, rex, bob} {
		when := at.Add(time.Duration(i) * time.Hour)
		_, err := apptSvc.Create(ctx, appointments.CreateInput{VeterinarianID: vet.ID, PetID: p.ID, At: &when})
		require.NoError(t, err)
	}

	deleted, err := tutorSvc.Delete(ctx, maria.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", deleted.Name)

	_, err = tutorSvc.Update(ctx, maria.ID, tutors.Input{Name: "Maria", CPF: "111"})
	assert.ErrorIs(t, err, registry.ErrNotFound)

	remaining, err := petSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, bob.ID, remaining[0].ID)

	_, err = petSvc.Delete(ctx, rex.ID)
	assert.ErrorIs(t, err, registry.ErrNotFound)

	views, err := apptSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Bob", views[0].PetName)
	assert.Equal(t, "Joana", views[0].TutorName)
}

func TestDelete_TutorWithoutPets(t *testing.T) {
	svc := tutors.NewService(memory.NewTutorStore(memory.NewDB()))
	ctx := context.Background()

	tu, err := svc.Create(ctx, tutors.Input{Name: "Maria", CPF: "111"})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, tu.ID)
	require.NoError(t, err)

	_, err = svc.Delete(ctx, tu.ID)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}
