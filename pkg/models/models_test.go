package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOUI(t *testing.T) {
	tests := []struct {
		mac  string
		want string
	}{
		{mac: "00:11:22:33:44:55", want: "001122"},
		{mac: "00-11-22-33-44-55", want: "001122"},
		{mac: "0011.2233.4455", want: "001122"},
		{mac: "001122334455", want: "001122"},
		{mac: "de:ad:be:ef:00:01", want: "DEADBE"},
		{mac: "DE:AD:BE:EF:00:01", want: "DEADBE"},
		{mac: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractOUI(tt.mac), "mac %q", tt.mac)
	}
}

func TestLayersFromServices(t *testing.T) {
	// 78 = 0b1001110: bits 1,2,3,6 set.
	assert.Equal(t, "0111001", LayersFromServices(78))
	assert.Equal(t, "0000000", LayersFromServices(0))
	assert.Equal(t, "1111111", LayersFromServices(127))
}

func TestHasLayerBounds(t *testing.T) {
	device := &Device{Layers: "1111111"}

	assert.False(t, device.HasLayer(0))
	assert.False(t, device.HasLayer(8))
	assert.False(t, device.HasLayer(-3))

	for layer := 1; layer <= 7; layer++ {
		assert.True(t, device.HasLayer(layer), "layer %d", layer)
	}

	empty := &Device{}
	assert.False(t, empty.HasLayer(2))
}

func TestSwitchRouterBits(t *testing.T) {
	// "0000110" flags layers 2 and 3 under the 7-layer indexing.
	device := &Device{Layers: "0000110"}

	assert.True(t, device.IsSwitch())
	assert.True(t, device.IsRouter())
	assert.False(t, device.HasLayer(1))
	assert.False(t, device.HasLayer(7))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "sw1.example.net", (&Device{IP: "10.0.0.1", DNS: "sw1.example.net", Name: "sw1"}).DisplayName())
	assert.Equal(t, "sw1", (&Device{IP: "10.0.0.1", Name: "sw1"}).DisplayName())
	assert.Equal(t, "10.0.0.1", (&Device{IP: "10.0.0.1"}).DisplayName())
}

func TestParseAction(t *testing.T) {
	action, err := ParseAction("discover")
	require.NoError(t, err)
	assert.Equal(t, ActionDiscover, action)

	for _, s := range []string{"macwalk", "expire", "portcontrol", "linter"} {
		_, err := ParseAction(s)
		assert.NoError(t, err, "action %q", s)
	}

	_, err = ParseAction("frobnicate")
	assert.Error(t, err)

	_, err = ParseAction("")
	assert.Error(t, err)
}

func TestRequiresDevice(t *testing.T) {
	assert.True(t, ActionDiscover.RequiresDevice())
	assert.True(t, ActionDelete.RequiresDevice())
	assert.False(t, ActionDiscoverAll.RequiresDevice())
	assert.False(t, ActionExpire.RequiresDevice())
}
