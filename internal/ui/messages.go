package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SnookieTejas/launch-access-forecast/internal/mockdata"
	"github.com/SnookieTejas/launch-access-forecast/internal/nav"
)

// transitionMsg completes a faded navigation when its ticket is still the
// newest one.
type transitionMsg struct {
	id uint64
}

// delayKind names the simulated waits owned by pages rather than by the
// navigation controller.
type delayKind int

const (
	delayRequestAccess delayKind = iota
	delayAssetSubmit
	delayAnalogSubmit
	delayStatus
)

// delayMsg ends a simulated wait. Waits restarted before they end leave
// stale messages behind, which are dropped by id.
type delayMsg struct {
	kind delayKind
	id   uint64
}

type kpiTickMsg struct{}

// DataReloadedMsg swaps the mock data after the override file changed.
type DataReloadedMsg struct {
	Store *mockdata.Store
	Err   error
}

func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func transitionCmd(p nav.Pending) tea.Cmd {
	return after(p.Delay, transitionMsg{id: p.ID})
}

func kpiTick(d time.Duration) tea.Cmd {
	return after(d, kpiTickMsg{})
}
