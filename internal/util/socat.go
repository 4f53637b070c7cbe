//go:build !tinygo

package util

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"sync"
	"time"
)

// SocatManager manages virtual serial pairs used to connect the card
// emulator to the controller's RFID line on a host without hardware.
type SocatManager struct {
	mu     sync.Mutex
	cmds   []*exec.Cmd
	links  []string
	closed bool
}

// NewSocatManager initializes an empty manager.
func NewSocatManager() *SocatManager {
	return &SocatManager{}
}

// CreatePair starts a socat process that links two PTYs (bidirectional).
// Both paths exist once socat has started.
func (m *SocatManager) CreatePair(left, right string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("socat manager closed")
	}

	cmd := exec.Command(
		"socat", "-d", "-d",
		fmt.Sprintf("pty,raw,echo=0,link=%s", left),
		fmt.Sprintf("pty,raw,echo=0,link=%s", right),
	)
	cmd.Stdout = log.Writer()
	cmd.Stderr = log.Writer()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start socat: %w", err)
	}

	Info("[virt-serial] socat pid=%d linked %s <-> %s", cmd.Process.Pid, left, right)

	m.cmds = append(m.cmds, cmd)
	m.links = append(m.links, left, right)
	return nil
}

// WaitReady blocks until every created link exists or timeout passes.
func (m *SocatManager) WaitReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for _, path := range m.Links() {
		for {
			if _, err := os.Lstat(path); err == nil {
				break
			}
			if time.Now().After(deadline) {
				return fmt.Errorf("socat link %s not created within %s", path, timeout)
			}
			time.Sleep(20 * time.Millisecond)
		}
	}
	return nil
}

// Links returns the paths of every created pty link.
func (m *SocatManager) Links() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.links))
	copy(out, m.links)
	return out
}

// Cleanup stops all socat processes and removes created links. Safe to
// call more than once.
func (m *SocatManager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true

	for _, cmd := range m.cmds {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
			_, _ = cmd.Process.Wait()
		}
	}

	for _, path := range m.links {
		if _, err := os.Lstat(path); err == nil {
			_ = os.Remove(path)
		}
	}

	Info("[virt-serial] cleanup complete (%d pairs)", len(m.links)/2)
}
