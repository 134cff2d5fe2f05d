package services_test

import (
	"fmt"
	"testing"

	"antar/internal/models"
	"antar/internal/services"

	"github.com/stretchr/testify/assert"
)

// expectedTransitions mirrors the role/status rules the engine must
// enforce. Declared independently so a typo in the production table
// cannot hide behind the same typo here.
var expectedTransitions = map[string]map[string][]string{
	models.RoleRestaurantAdmin: {
		models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
		models.StatusConfirmed: {models.StatusPreparing},
		models.StatusPreparing: {models.StatusCompleted},
		models.StatusAccepted:  {models.StatusDispatched},
	},
	models.RoleDeliveryPerson: {
		models.StatusCompleted:  {models.StatusAccepted, models.StatusCancelled},
		models.StatusDispatched: {models.StatusDelivered},
	},
	models.RoleAdmin: {
		models.StatusPending:    {models.StatusConfirmed, models.StatusCancelled},
		models.StatusConfirmed:  {models.StatusPreparing, models.StatusCancelled},
		models.StatusPreparing:  {models.StatusCompleted},
		models.StatusCompleted:  {models.StatusAccepted, models.StatusCancelled},
		models.StatusAccepted:   {models.StatusDispatched},
		models.StatusDispatched: {models.StatusDelivered},
	},
}

func isExpected(role, from, to string) bool {
	for _, next := range expectedTransitions[role][from] {
		if next == to {
			return true
		}
	}
	return false
}

// TestCanTransitionMatrix checks every role against every (from, to)
// status pair, so forbidden moves (backward jumps, terminal exits,
// customer moves) are covered alongside the allowed ones.
func TestCanTransitionMatrix(t *testing.T) {
	roles := []string{
		models.RoleCustomer,
		models.RoleRestaurantAdmin,
		models.RoleDeliveryPerson,
		models.RoleAdmin,
	}

	for _, role := range roles {
		for _, from := range models.AllStatuses {
			for _, to := range models.AllStatuses {
				name := fmt.Sprintf("%s/%s->%s", role, from, to)
				t.Run(name, func(t *testing.T) {
					assert.Equal(t, isExpected(role, from, to), services.CanTransition(role, from, to))
				})
			}
		}
	}
}

func TestCanTransitionSpecificCases(t *testing.T) {
	// A restaurant admin confirms and preps, but never touches delivery.
	assert.True(t, services.CanTransition(models.RoleRestaurantAdmin, models.StatusPending, models.StatusConfirmed))
	assert.True(t, services.CanTransition(models.RoleRestaurantAdmin, models.StatusAccepted, models.StatusDispatched))
	assert.False(t, services.CanTransition(models.RoleRestaurantAdmin, models.StatusDispatched, models.StatusDelivered))
	assert.False(t, services.CanTransition(models.RoleRestaurantAdmin, models.StatusCompleted, models.StatusAccepted))

	// A delivery person picks up a completed order or declines it.
	assert.True(t, services.CanTransition(models.RoleDeliveryPerson, models.StatusCompleted, models.StatusAccepted))
	assert.True(t, services.CanTransition(models.RoleDeliveryPerson, models.StatusCompleted, models.StatusCancelled))
	assert.True(t, services.CanTransition(models.RoleDeliveryPerson, models.StatusDispatched, models.StatusDelivered))
	assert.False(t, services.CanTransition(models.RoleDeliveryPerson, models.StatusPending, models.StatusConfirmed))

	// Customers never drive the status machine directly.
	assert.False(t, services.CanTransition(models.RoleCustomer, models.StatusPending, models.StatusCancelled))

	// Terminal statuses have no exits, even for admins.
	assert.False(t, services.CanTransition(models.RoleAdmin, models.StatusDelivered, models.StatusPending))
	assert.False(t, services.CanTransition(models.RoleAdmin, models.StatusCancelled, models.StatusPending))

	// No backward moves.
	assert.False(t, services.CanTransition(models.RoleAdmin, models.StatusPreparing, models.StatusPending))
	assert.False(t, services.CanTransition(models.RoleAdmin, models.StatusConfirmed, models.StatusPending))
}

func TestPermittedNext(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{models.StatusConfirmed, models.StatusCancelled},
		services.PermittedNext(models.RoleRestaurantAdmin, models.StatusPending))

	assert.ElementsMatch(t,
		[]string{models.StatusAccepted, models.StatusCancelled},
		services.PermittedNext(models.RoleDeliveryPerson, models.StatusCompleted))

	assert.Empty(t, services.PermittedNext(models.RoleCustomer, models.StatusPending))
	assert.Empty(t, services.PermittedNext(models.RoleAdmin, models.StatusDelivered))
	assert.Empty(t, services.PermittedNext("unknown_role", models.StatusPending))
}

func TestPermittedNextReturnsCopy(t *testing.T) {
	first := services.PermittedNext(models.RoleAdmin, models.StatusPending)
	if assert.NotEmpty(t, first) {
		first[0] = "mutated"
	}
	assert.NotContains(t, services.PermittedNext(models.RoleAdmin, models.StatusPending), "mutated")
}

func TestNormalizeStatus(t *testing.T) {
	normalized, ok := models.NormalizeStatus("  Confirmed ")
	assert.True(t, ok)
	assert.Equal(t, models.StatusConfirmed, normalized)

	normalized, ok = models.NormalizeStatus("DELIVERED")
	assert.True(t, ok)
	assert.Equal(t, models.StatusDelivered, normalized)

	_, ok = models.NormalizeStatus("shipped")
	assert.False(t, ok)

	_, ok = models.NormalizeStatus("")
	assert.False(t, ok)
}
