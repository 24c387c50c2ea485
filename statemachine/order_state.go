package statemachine

import "pizzeria-api/models"

// progression is the canonical order of statuses. Admin status updates are
// not forced to follow it (any recognized value may be set on an active
// order), but it is published for clients and it defines the terminal state.
var progression = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

var validStatuses = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool, len(progression))
	for _, s := range progression {
		m[s] = true
	}
	return m
}()

// Statuses returns the canonical status progression, first to last.
func Statuses() []models.OrderStatus {
	out := make([]models.OrderStatus, len(progression))
	copy(out, progression)
	return out
}

// IsValid reports whether s is one of the recognized status values.
func IsValid(s models.OrderStatus) bool {
	return validStatuses[s]
}

// IsTerminal reports whether s ends the order's active life. Reaching it
// moves the order from the active table into history.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered
}

// Next returns the status that follows s in the canonical progression, or
// "" when s is terminal or unrecognized.
func Next(s models.OrderStatus) models.OrderStatus {
	for i, cur := range progression {
		if cur == s && i+1 < len(progression) {
			return progression[i+1]
		}
	}
	return ""
}
