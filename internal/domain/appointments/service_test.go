package appointments_test

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

type clinic struct {
	svc        *appointments.Service
	vetA, vetB veterinarians.Veterinarian
	pet        pets.Pet
}

func setup(t *testing.T) clinic {
	t.Helper()
	ctx := context.Background()
	db := memory.NewDB()

	vets := veterinarians.NewService(memory.NewVeterinarianStore(db))
	a, err := vets.Create(ctx, veterinarians.Input{Name: "Dr. João", CRMV: "12345-SP"})
	require.NoError(t, err)
	b, err := vets.Create(ctx, veterinarians.Input{Name: "Dra. Ana", CRMV: "54321-RJ"})
	require.NoError(t, err)

	tu, err := tutors.NewService(memory.NewTutorStore(db)).Create(ctx, tutors.Input{Name: "Maria", CPF: "123.456.789-00"})
	require.NoError(t, err)

	born := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	p, err := pets.NewService(memory.NewPetStore(db)).Create(ctx, pets.CreateInput{
		ProfileInput: pets.ProfileInput{Name: "Rex", BirthDate: &born, Species: "Cachorro"},
		TutorID:      tu.ID,
	})
	require.NoError(t, err)

	return clinic{svc: appointments.NewService(memory.NewAppointmentStore(db)), vetA: a, vetB: b, pet: p}
}

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCreate_SlotConflictPerVet(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	at := ts("2025-11-10T14:30:00Z")

	first, err := c.svc.Create(ctx, appointments.CreateInput{VeterinarianID: c.vetA.ID, PetID: c.pet.ID, At: at})
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.ID)

	_, err = c.svc.Create(ctx, appointments.CreateInput{VeterinarianID: c.vetA.ID, PetID: c.pet.ID, At: at})
	assert.ErrorIs(t, err, registry.ErrConflict)

	// mismo instante en otra zona horaria también choca
	_, err = c.svc.Create(ctx, appointments.CreateInput{VeterinarianID: c.vetA.ID, PetID: c.pet.ID, At: ts("2025-11-10T11:30:00-03:00")})
	assert.ErrorIs(t, err, registry.ErrConflict)

	// otro veterinario, mismo horario: ok
	_, err = c.svc.Create(ctx, appointments.CreateInput{VeterinarianID: c.vetB.ID, PetID: c.pet.ID, At: at})
	assert.NoError(t, err)
}

func TestCreate_ReferencesPetFirst(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	at := ts("2025-11-10T14:30:00Z")

	_, err := c.svc.Create(ctx, appointments.CreateInput{VeterinarianID: 99, PetID: 99, At: at})
	assert.ErrorIs(t, err, registry.ErrReference)
	assert.Equal(t, "pet does not exist", registry.Message(err))

	_, err = c.svc.Create(ctx, appointments.CreateInput{VeterinarianID: 99, PetID: c.pet.ID, At: at})
	assert.ErrorIs(t, err, registry.ErrReference)
	assert.Equal(t, "veterinarian does not exist", registry.Message(err))
}

func TestCreate_Validation(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	at := ts("2025-11-10T14:30:00Z")
	neg := -1.0

	cases := map[string]struct {
		in   appointments.CreateInput
		want string
	}{
		"vet":  {appointments.CreateInput{PetID: 1, At: at}, "id_vet is required"},
		"pet":  {appointments.CreateInput{VeterinarianID: 1, At: at}, "id_pet is required"},
		"time": {appointments.CreateInput{VeterinarianID: 1, PetID: 1}, "data_hora is required"},
		"fee":  {appointments.CreateInput{VeterinarianID: 1, PetID: 1, At: at, Fee: &neg}, "valor is invalid"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.svc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, registry.ErrValidation)
			assert.Equal(t, tc.want, registry.Message(err))
		})
	}
}

func TestUpdate_UsesAssignedVet(t *testing.T) {
	c := setup(t)
	ctx := context.Background()
	fee := 150.0

	a1, err := c.svc.Create(ctx, appointments.CreateInput{VeterinarianID: c.vetA.ID, PetID: c.pet.ID, At: ts("2025-11-10T14:00:00Z"), Fee: &fee})
	require.NoError(t, err)
	_, err = c.svc.Create(ctx, appointments.CreateInput{VeterinarianID: c.vetA.ID, PetID: c.pet.ID, At: ts("2025-11-10T15:00:00Z")})
	require.NoError(t, err)
	_, err = c.svc.Create(ctx, appointments.CreateInput{VeterinarianID: c.vetB.ID, PetID: c.pet.ID, At: ts("2025-11-10T16:00:00Z")})
	require.NoError(t, err)

	_, err = c.svc.Update(ctx, a1.ID, appointments.UpdateInput{At: ts("2025-11-10T15:00:00Z")})
	assert.ErrorIs(t, err, registry.ErrConflict)

	// el horario del vetB no importa
	moved, err := c.svc.Update(ctx, a1.ID, appointments.UpdateInput{At: ts("2025-11-10T16:00:00Z")})
	require.NoError(t, err)
	assert.Equal(t, c.vetA.ID, moved.VeterinarianID)
	assert.Nil(t, moved.Fee)

	// reagendar a su propio horario no es conflicto
	_, err = c.svc.Update(ctx, a1.ID, appointments.UpdateInput{At: ts("2025-11-10T16:00:00Z"), Fee: &fee})
	assert.NoError(t, err)

	_, err = c.svc.Update(ctx, 404, appointments.UpdateInput{At: ts("2025-11-10T16:00:00Z")})
	assert.ErrorIs(t, err, registry.ErrNotFound)

	_, err = c.svc.Update(ctx, a1.ID, appointments.UpdateInput{})
	assert.ErrorIs(t, err, registry.ErrValidation)
}

func TestDelete(t *testing.T) {
	c := setup(t)
	ctx := context.Background()

	a, err := c.svc.Create(ctx, appointments.CreateInput{VeterinarianID: c.vetA.ID, PetID: c.pet.ID, At: ts("2025-11-10T14:00:00Z")})
	require.NoError(t, err)

	deleted, err := c.svc.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, deleted)

	_, err = c.svc.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, registry.ErrNotFound)

	items, err := c.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
