package payment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
)

func TestServiceFormLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewPaymentService(result(true, nil), nil)

	a, err := svc.Open(ctx)
	require.NoError(t, err)
	b, err := svc.Open(ctx)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, model.StatusIdle, a.Status)

	_, err = svc.Edit(ctx, a.ID, []model.FieldEdit{{Field: model.FieldEmail, Value: "a@b.co"}})
	require.NoError(t, err)

	other, err := svc.State(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, other.Draft.Email, "forms do not share drafts")

	require.NoError(t, svc.Close(ctx, a.ID))

	_, err = svc.State(ctx, a.ID)
	require.ErrorIs(t, err, model.ErrFormNotFound)
	require.ErrorIs(t, svc.Close(ctx, a.ID), model.ErrFormNotFound)

	reopened, err := svc.Open(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentDraft{}, reopened.Draft, "a new form starts empty")
}

func TestServiceEditStopsAtFirstRejectedEdit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewPaymentService(result(true, nil), nil)

	form, err := svc.Open(ctx)
	require.NoError(t, err)

	state, err := svc.Edit(ctx, form.ID, []model.FieldEdit{
		{Field: model.FieldEmail, Value: "a@b.co"},
		{Field: model.Field("nickname"), Value: "x"},
		{Field: model.FieldCVV, Value: "123"},
	})
	require.ErrorIs(t, err, model.ErrUnknownField)
	assert.Equal(t, "a@b.co", state.Draft.Email)
	assert.Empty(t, state.Draft.CVV)
}

func TestServiceUnknownForm(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewPaymentService(result(true, nil), nil)
	id := uuid.New()

	calls := map[string]func() error{
		"State":  func() error { _, err := svc.State(ctx, id); return err },
		"Edit":   func() error { _, err := svc.Edit(ctx, id, nil); return err },
		"Submit": func() error { _, err := svc.Submit(ctx, id); return err },
		"Await":  func() error { _, err := svc.Await(ctx, id); return err },
		"Reset":  func() error { _, err := svc.Reset(ctx, id); return err },
		"Retry":  func() error { _, err := svc.Retry(ctx, id); return err },
		"Close":  func() error { return svc.Close(ctx, id) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, call(), model.ErrFormNotFound)
		})
	}
}

func TestServiceSubmitAndAwait(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewPaymentService(result(true, nil), nil)

	form, err := svc.Open(ctx)
	require.NoError(t, err)

	_, err = svc.Edit(ctx, form.ID, []model.FieldEdit{
		{Field: model.FieldEmail, Value: "a@b.co"},
		{Field: model.FieldCardNumber, Value: "4111111111111111"},
		{Field: model.FieldExpiryDate, Value: "01/30"},
		{Field: model.FieldCVV, Value: "999"},
		{Field: model.FieldCardholderName, Value: "A B"},
		{Field: model.FieldServiceCode, Value: string(model.ServiceConsultation)},
	})
	require.NoError(t, err)

	state, err := svc.Submit(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusProcessing, state.Status)

	state, err = svc.Await(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, state.Status)

	state, err = svc.Retry(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusIdle, state.Status)
	assert.Equal(t, "150", state.Draft.Amount)

	state, err = svc.Reset(ctx, form.ID)
	require.NoError(t, err)
	assert.Empty(t, state.Draft.Amount)
}

func TestServiceCloseAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	proc, _ := blocking(true)
	svc := NewPaymentService(proc, nil)

	form, err := svc.Open(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CloseAll(ctx))

	_, err = svc.State(ctx, form.ID)
	require.ErrorIs(t, err, model.ErrFormNotFound)
}

func TestServiceServices(t *testing.T) {
	t.Parallel()

	svc := NewPaymentService(result(true, nil), nil)
	assert.Equal(t, model.Catalogue(), svc.Services(context.Background()))
}
