// Package notify delivers transient user feedback: toasts and haptic pulses.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/notifier_mock.go -package=mocks

type Notifier interface {
	Toast(msg string)
	Haptic()
}

// Console prints toasts to a terminal and rings the bell as a haptic stand-in.
type Console struct {
	mu  sync.Mutex
	out io.Writer
	// Bell disables the terminal bell when false.
	Bell bool
}

func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stderr
	}
	return &Console{out: out, Bell: true}
}

func (c *Console) Toast(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	logrus.WithField("toast", msg).Debug("notify")
	fmt.Fprintf(c.out, "%s %s\n", color.New(color.FgCyan, color.Bold).Sprint("»"), msg)
}

func (c *Console) Haptic() {
	if !c.Bell {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, "\a")
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Toast(string) {}
func (Discard) Haptic()      {}
