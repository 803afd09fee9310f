package service

// Core carries the registration state every decoratable widget embeds.
// The registered flag only ever goes from false to true, and only the
// registrar sets it.
type Core struct {
	key        string
	registered bool
}

// Key returns the widget's identifying key.
func (c *Core) Key() string { return c.key }

// SetKey sets the widget's identifying key.
func (c *Core) SetKey(key string) { c.key = key }

// Registered reports whether the widget has been registered.
func (c *Core) Registered() bool { return c.registered }

func (c *Core) core() *Core { return c }

func (c *Core) markRegistered() { c.registered = true }

// CoreService marks a widget as decorated. Every registered widget owns
// exactly one.
type CoreService struct {
	widget Decoratable
}

// NewCoreService binds a core service to w.
func NewCoreService(w Decoratable) *CoreService {
	return &CoreService{widget: w}
}

// Widget returns the bound widget.
func (s *CoreService) Widget() Decoratable {
	return s.widget
}
