package statemachine_test

import (
	"testing"

	"pizzeria-api/models"
	"pizzeria-api/statemachine"

	"github.com/stretchr/testify/assert"
)

func TestStatusesProgression(t *testing.T) {
	assert.Equal(t, []models.OrderStatus{
		models.StatusPending,
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}, statemachine.Statuses())
}

func TestIsValid(t *testing.T) {
	for _, s := range statemachine.Statuses() {
		assert.True(t, statemachine.IsValid(s), string(s))
	}
	assert.False(t, statemachine.IsValid("frozen"))
	assert.False(t, statemachine.IsValid("cancelled"))
	assert.False(t, statemachine.IsValid(""))
	assert.False(t, statemachine.IsValid("PENDING"))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, statemachine.IsTerminal(models.StatusDelivered))
	assert.False(t, statemachine.IsTerminal(models.StatusPending))
	assert.False(t, statemachine.IsTerminal(models.StatusPreparing))
	assert.False(t, statemachine.IsTerminal(models.StatusOutForDelivery))
}

func TestNext(t *testing.T) {
	assert.Equal(t, models.StatusPreparing, statemachine.Next(models.StatusPending))
	assert.Equal(t, models.StatusOutForDelivery, statemachine.Next(models.StatusPreparing))
	assert.Equal(t, models.StatusDelivered, statemachine.Next(models.StatusOutForDelivery))
	assert.Equal(t, models.OrderStatus(""), statemachine.Next(models.StatusDelivered))
	assert.Equal(t, models.OrderStatus(""), statemachine.Next("frozen"))
}
