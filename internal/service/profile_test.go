package service

import (
	"context"
	"testing"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdateMergesSections(t *testing.T) {
	st := newTestStore(t)
	svc := NewProfileService(st, testLogger())
	ctx := context.Background()

	updated, err := svc.Update(ctx, ProfilePatch{
		Name:    strOf("La Terraza"),
		Contact: &domain.Contact{Phone: "492 000 0000", Email: "hola@laterraza.mx"},
	})
	require.NoError(t, err)

	assert.Equal(t, "La Terraza", updated.Name)
	assert.Equal(t, "492 000 0000", updated.Contact.Phone)
	// untouched sections keep their values
	assert.Equal(t, "Pizzería", updated.Category)
	assert.Equal(t, domain.SubscriptionActive, updated.Subscription.Status)

	doc, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "La Terraza", doc.Name)
}

func TestProfileUpdateEmptyPatchIsNoOp(t *testing.T) {
	svc := NewProfileService(newTestStore(t), testLogger())
	ctx := context.Background()

	before, err := svc.Get(ctx)
	require.NoError(t, err)

	after, err := svc.Update(ctx, ProfilePatch{})
	require.NoError(t, err)

	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Contact, after.Contact)
	assert.Equal(t, before.Hours, after.Hours)
}

func TestProfileUpdateHoursReplaced(t *testing.T) {
	svc := NewProfileService(newTestStore(t), testLogger())
	ctx := context.Background()

	hours := map[string]domain.DayHours{
		"Lunes": {Open: "08:00", Close: "20:00"},
	}

	updated, err := svc.Update(ctx, ProfilePatch{Hours: hours})
	require.NoError(t, err)

	require.Len(t, updated.Hours, 1)
	assert.Equal(t, "08:00", updated.Hours["Lunes"].Open)
}
