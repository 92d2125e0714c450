package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccelerator(t *testing.T) {
	tests := []struct {
		in   string
		want Accelerator
	}{
		{"CommandOrControl+R", Accelerator{Modifiers: []Modifier{ModCmdOrCtrl}, Key: "r"}},
		{"cmdorctrl+shift+z", Accelerator{Modifiers: []Modifier{ModCmdOrCtrl, ModShift}, Key: "z"}},
		{"Option+Left", Accelerator{Modifiers: []Modifier{ModAlt}, Key: "left"}},
		{"Cmd+Q", Accelerator{Modifiers: []Modifier{ModCmdOrCtrl}, Key: "q"}},
		{" Control + F ", Accelerator{Modifiers: []Modifier{ModControl}, Key: "f"}},
		{"F5", Accelerator{Key: "f5"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAccelerator(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAcceleratorErrors(t *testing.T) {
	for _, in := range []string{"", "Shift+", "Hyper+R", "+"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAccelerator(in)
			assert.ErrorIs(t, err, ErrInvalidAccelerator)
		})
	}
}
