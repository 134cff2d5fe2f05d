package services

import "antar/internal/models"

// roleTransitions is the full permitted-transition matrix for order
// statuses: (actor role, current status) -> statuses the actor may move
// the order to. Statuses absent from a role's map are dead ends for
// that role; delivered and cancelled appear nowhere as keys, so no role
// can move an order out of a terminal state.
var roleTransitions = map[string]map[string][]string{
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

// PermittedNext returns the statuses the given role may move an order
// to from the given current status. The returned slice is a copy.
func PermittedNext(role, currentStatus string) []string {
	byStatus, ok := roleTransitions[role]
	if !ok {
		return nil
	}
	next, ok := byStatus[currentStatus]
	if !ok {
		return nil
	}
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether the role may move an order from
// currentStatus to requestedStatus. Both statuses must already be in
// canonical form.
func CanTransition(role, currentStatus, requestedStatus string) bool {
	for _, allowed := range PermittedNext(role, currentStatus) {
		if allowed == requestedStatus {
			return true
		}
	}
	return false
}
