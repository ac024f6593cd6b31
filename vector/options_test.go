// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynamat/vector"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies GatherOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := vector.GatherOptions()
	require.Equal(t, vector.DefaultSeparator, o.Separator())
	require.Equal(t, vector.DefaultRowTerminator, o.RowTerminator())
	require.Equal(t, vector.DefaultVerb, o.Verb())
}

// 2) TestGatherOptions_LastWriterWins ensures setters apply in order.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := vector.GatherOptions(
		vector.WithSeparator("\t"),
		vector.WithSeparator("  "),
		vector.WithRowTerminator("\r\n"),
		vector.WithVerb("%g"),
	)
	require.Equal(t, "  ", o.Separator())
	require.Equal(t, "\r\n", o.RowTerminator())
	require.Equal(t, "%g", o.Verb())
}

// 3) TestOptions_PanicOnNonsense covers constructor validation.
func TestOptions_PanicOnNonsense(t *testing.T) {
	require.PanicsWithValue(t, vector.PanicSeparatorInvalid_TestOnly, func() { vector.WithSeparator("") })
	require.PanicsWithValue(t, vector.PanicSeparatorInvalid_TestOnly, func() { vector.WithSeparator(",") })
	require.PanicsWithValue(t, vector.PanicRowTerminatorInvalid_TestOnly, func() { vector.WithRowTerminator(";\n") })
	require.PanicsWithValue(t, vector.PanicVerbInvalid_TestOnly, func() { vector.WithVerb("%s") })
}
