package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPrintError(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = noColor
		quiet = false
	})

	tests := []struct {
		name  string
		quiet bool
		err   error
		want  string
	}{
		{"domain error shown by notifier", false, models.Invalid("reps", "must be greater than 0"), ""},
		{"precondition shown by notifier", false, models.Precondition("no active workout"), ""},
		{"quiet validation", true, models.Invalid("reps", "must be greater than 0"), "Error: reps: must be greater than 0\n"},
		{"quiet precondition", true, models.Precondition("no active workout"), "Error: no active workout\n"},
		{"other error", false, errors.New("disk full"), "Error: disk full\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiet = tt.quiet
			var buf bytes.Buffer
			PrintError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
