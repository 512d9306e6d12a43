package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	cmd := RootCmd()

	assert.Equal(t, "bindle", cmd.Use)

	configFlag := cmd.PersistentFlags().Lookup("config")
	assert.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	logFlag := cmd.PersistentFlags().Lookup("log")
	assert.NotNil(t, logFlag)
	assert.Equal(t, "l", logFlag.Shorthand)

	debugFlag := cmd.PersistentFlags().Lookup("debug")
	assert.NotNil(t, debugFlag)
	assert.Equal(t, "d", debugFlag.Shorthand)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "provision")
	assert.Contains(t, names, "destroy")
	assert.Contains(t, names, "mounts")
}

func TestProvisionCmd(t *testing.T) {
	cmd := provisionCmd()

	assert.Equal(t, "provision [flags] ROOTFS", cmd.Use)

	layerFlag := cmd.Flag("layer")
	assert.NotNil(t, layerFlag)
}

func TestDestroyCmd(t *testing.T) {
	cmd := destroyCmd()

	assert.Equal(t, "destroy [flags] ROOTFS", cmd.Use)
}

func TestMountsCmd(t *testing.T) {
	cmd := mountsCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "TARGET")
	assert.Contains(t, out.String(), "/")
}
