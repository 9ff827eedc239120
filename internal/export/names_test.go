// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Goblin_Arm", "Goblin_Arm"},
		{`a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"trailing. ", "trailing"},
		{"dots...", "dots"},
		{"spaces kept inside", "spaces kept inside"},
		{"tab\there", "tab_here"},
		{"bell\x07null\x00", "bell_null_"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeFilename(tt.in), "SafeFilename(%q)", tt.in)
	}
}
