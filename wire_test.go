//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package dnswire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMandatedLengthString(t *testing.T) {
	require.Equal(t, "exactly 16 bytes", Exactly(16).String())
	require.Equal(t, "at least 4 bytes", AtLeast(4).String())
}

func TestWrongVersionErrorString(t *testing.T) {
	err := &WrongVersionError{StatedVersion: 128, MaximumSupportedVersion: 0}
	require.EqualError(t, err, "unsupported record version 128 (maximum supported version is 0)")
}

func TestWrongRecordLengthErrorString(t *testing.T) {
	err := &WrongRecordLengthError{StatedLength: 19, MandatedLength: Exactly(16)}
	require.EqualError(t, err, "wrong record length 19 (mandated: exactly 16 bytes)")
}
