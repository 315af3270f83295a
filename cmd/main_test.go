package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/PeymanKh/CRFMS/cmd/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModuleGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(bootstrap.Module, fx.Invoke(runScenario)))
}

func TestScenario(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var d demo
	app := fxtest.New(t,
		bootstrap.Module,
		fx.Invoke(func(populated demo) { d = populated }),
	)
	app.RequireStart()
	defer app.RequireStop()

	var out bytes.Buffer
	require.NoError(t, d.run(context.Background(), &out))

	got := out.String()
	assert.Contains(t, got, "subtotal 270.00, first_order pricing, total 229.50, status pending")
	assert.Contains(t, got, "invoice 229.50 completed")
	assert.Contains(t, got, "cancel after return rejected")
	assert.Contains(t, got, "payment declined: invalid card number")
	assert.Contains(t, got, "booking while in service rejected")
	assert.Contains(t, got, "12 MBA 342 back in service: available")
	assert.Contains(t, got, "completed rentals: 1")
}
