package instance

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/exforms/common"
)

// BusNamePrefix prefixes the well-known session bus name owned by the
// running instance.
const BusNamePrefix = "io.exforms.instance."

// BusGuard owns a well-known name on the session bus.
type BusGuard struct {
	name string
	conn *dbus.Conn
}

// NewBusGuard returns a guard for the bus name derived from name.
func NewBusGuard(name string) *BusGuard {
	return &BusGuard{name: BusName(name)}
}

// BusName maps an instance name to a valid well-known bus name.
func BusName(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		b.WriteString("app")
	}
	return BusNamePrefix + b.String()
}

// Acquire implements Guard. It fails with common.ErrGuardUnavailable when
// the session bus cannot be reached.
func (g *BusGuard) Acquire() (bool, error) {
	if g.conn != nil {
		return true, nil
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return false, common.WrapError(common.ErrGuardUnavailable, err.Error())
	}

	reply, err := conn.RequestName(g.name, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return false, fmt.Errorf("failed to request %s: %w", g.name, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		common.LogInfo("another instance owns %s", g.name)
		return false, nil
	}

	g.conn = conn
	common.LogDebug("acquired bus name %s", g.name)
	return true, nil
}

// Release implements Guard.
func (g *BusGuard) Release() error {
	if g.conn == nil {
		return common.ErrGuardNotHeld
	}
	conn := g.conn
	g.conn = nil

	if _, err := conn.ReleaseName(g.name); err != nil {
		conn.Close()
		return fmt.Errorf("failed to release %s: %w", g.name, err)
	}
	return conn.Close()
}
