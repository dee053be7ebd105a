package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reactivetui/tuicore/engine"
	"github.com/reactivetui/tuicore/primitives"
)

func TestDemoTreeMountsWithoutPanicking(t *testing.T) {
	eng := engine.New(nil, 80, 24)

	var cleanup func()
	assert.NotPanics(t, func() {
		cleanup = eng.Mount(func() { demoTree(eng.Context) }, primitives.MountOptions{})
	})
	assert.NotEmpty(t, eng.Registry.GetAllocatedIndices())
	cleanup()
}
