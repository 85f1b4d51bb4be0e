package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinica-pet-feliz/internal/domain/appointments"
	"clinica-pet-feliz/internal/domain/pets"
	"clinica-pet-feliz/internal/domain/registry"
	"clinica-pet-feliz/internal/domain/tutors"
	"clinica-pet-feliz/internal/domain/veterinarians"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInTx_RollbackRestoresTables(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	vets := NewVeterinarianStore(db)

	boom := errors.New("boom")
	err := vets.InTx(ctx, func(repo veterinarians.Repository) error {
		_, err := repo.Create(ctx, veterinarians.Veterinarian{Name: "Dr. João", CRMV: "12345-SP"})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, db.vets)

	// la secuencia no retrocede: el próximo id es 2
	var created veterinarians.Veterinarian
	require.NoError(t, vets.InTx(ctx, func(repo veterinarians.Repository) error {
		created, err = repo.Create(ctx, veterinarians.Veterinarian{Name: "Dra. Ana", CRMV: "999-RJ"})
		return err
	}))
	assert.EqualValues(t, 2, created.ID)
}

func TestInTx_PanicRollsBack(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	tutorStore := NewTutorStore(db)

	assert.Panics(t, func() {
		_ = tutorStore.InTx(ctx, func(repo tutors.Repository) error {
			_, _ = repo.Create(ctx, tutors.Tutor{Name: "Maria", CPF: "123"})
			panic("kaboom")
		})
	})
	assert.Empty(t, db.tutors)

	// el lock quedó liberado
	require.NoError(t, tutorStore.InTx(ctx, func(repo tutors.Repository) error { return nil }))
}

func TestInTx_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewPetStore(NewDB()).InTx(ctx, func(repo pets.Repository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestPetCreate_ForeignKey(t *testing.T) {
	ctx := context.Background()
	err := NewPetStore(NewDB()).InTx(ctx, func(repo pets.Repository) error {
		_, err := repo.Create(ctx, pets.Pet{Name: "Rex", Species: "Cachorro", TutorID: 999})
		return err
	})
	assert.ErrorIs(t, err, registry.ErrReference)
}

func TestAppointmentList_JoinsNames(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	at := time.Date(2025, 11, 10, 14, 30, 0, 0, time.UTC)
	fee := 150.0

	var vet veterinarians.Veterinarian
	var tutor tutors.Tutor
	var pet pets.Pet
	require.NoError(t, NewVeterinarianStore(db).InTx(ctx, func(repo veterinarians.Repository) (err error) {
		vet, err = repo.Create(ctx, veterinarians.Veterinarian{Name: "Dr. João", CRMV: "12345-SP"})
		return err
	}))
	require.NoError(t, NewTutorStore(db).InTx(ctx, func(repo tutors.Repository) (err error) {
		tutor, err = repo.Create(ctx, tutors.Tutor{Name: "Maria", CPF: "123.456.789-00"})
		return err
	}))
	require.NoError(t, NewPetStore(db).InTx(ctx, func(repo pets.Repository) (err error) {
		pet, err = repo.Create(ctx, pets.Pet{Name: "Rex", Species: "Cachorro", TutorID: tutor.ID})
		return err
	}))

	var views []appointments.View
	require.NoError(t, NewAppointmentStore(db).InTx(ctx, func(repo appointments.Repository) error {
		if _, err := repo.Create(ctx, appointments.Appointment{VeterinarianID: vet.ID, PetID: pet.ID, At: at, Fee: &fee}); err != nil {
			return err
		}
		var err error
		views, err = repo.List(ctx)
		return err
	}))

	require.Len(t, views, 1)
	assert.Equal(t, appointments.View{
		ID:        1,
		CRMV:      "12345-SP",
		VetName:   "Dr. João",
		CPF:       "123.456.789-00",
		TutorName: "Maria",
		PetName:   "Rex",
		At:        at,
		Fee:       &fee,
	}, views[0])
}
