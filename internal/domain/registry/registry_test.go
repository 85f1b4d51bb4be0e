package registry

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinica-pet-feliz/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("x"), http.StatusBadRequest},
		{NotFound("x"), http.StatusNotFound},
		{Conflict("x"), http.StatusConflict},
		{Reference("x"), http.StatusUnprocessableEntity},
		{Store("op", errors.New("conn refused")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StatusCode(c.err), "err %v", c.err)
	}
}

func TestStore_KeepsRegistryErrors(t *testing.T) {
	orig := Conflict("crmv already registered")
	assert.Same(t, orig, Store("create veterinarian", orig))
	assert.Nil(t, Store("noop", nil))
}

func TestStore_PromotesConstraintKinds(t *testing.T) {
	err := Store("insert", fmt.Errorf("%w: veterinario_crmv_key", ErrConflict))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, http.StatusConflict, StatusCode(err))
	assert.Equal(t, "record already exists", Message(err))

	err = Store("insert", fmt.Errorf("%w: pet_id_tutor_fkey", ErrReference))
	assert.ErrorIs(t, err, ErrReference)
}

func TestStore_HidesDriverMessage(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:5432: connection refused")
	err := Store("list tutors", cause)

	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal error", Message(err))
	assert.Contains(t, err.Error(), "list tutors")
}

type sampleInput struct {
	Name string     `label:"nome" validate:"required"`
	Code string     `label:"crmv" validate:"required,max=8"`
	When *time.Time `label:"data_hora" validate:"required"`
	Ref  int64      `label:"id_tutor" validate:"required"`
}

func TestValidate(t *testing.T) {
	now := time.Now()
	ok := sampleInput{Name: "Dr. João", Code: "12345-SP", When: &now, Ref: 1}
	require.NoError(t, Validate(ok))

	cases := map[string]struct {
		mut  func(*sampleInput)
		want string
	}{
		"missing name": {func(in *sampleInput) { in.Name = "" }, "nome is required"},
		"long code":    {func(in *sampleInput) { in.Code = "123456789" }, "crmv must be at most 8 characters"},
		"missing when": {func(in *sampleInput) { in.When = nil }, "data_hora is required"},
		"missing ref":  {func(in *sampleInput) { in.Ref = 0 }, "id_tutor is required"},
		"utf8 counted": {func(in *sampleInput) { in.Code = "ÇÇÇÇÇÇÇÇ" }, ""},
		"missing code": {func(in *sampleInput) { in.Code = "" }, "crmv is required"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			in := ok
			c.mut(&in)
			err := Validate(in)
			if c.want == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, c.want, Message(err))
		})
	}
}

func TestParseHelpers(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, ErrValidation, "id %q", bad)
	}

	d, err := ParseDate("data_nascimento", "1985-04-12")
	require.NoError(t, err)
	assert.Equal(t, "1985-04-12", *FormatDate(d))

	d, err = ParseDate("data_nascimento", "  ")
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.Nil(t, FormatDate(d))

	_, err = ParseDate("data_nascimento", "12/04/1985")
	assert.ErrorIs(t, err, ErrValidation)

	ts, err := ParseDateTime("data_hora", "2025-11-10T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 14, ts.Hour())

	_, err = ParseDateTime("data_hora", "2025-11-10 14:30")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWriteError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pet", nil)

	WriteError(rec, req, logger.Nop(), Reference("tutor does not exist"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"msg":"tutor does not exist"}`, rec.Body.String())
}

func TestDecodeJSON_Invalid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tutor", strings.NewReader("{nope"))
	var v map[string]any
	err := DecodeJSON(req, &v)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "invalid json", Message(err))
}
