// Package service attaches cross-cutting decoration services to widgets.
//
// A widget opts in by embedding Core, which gives it a key and a
// registration flag, and by exposing one or more capability interfaces:
//
//   - Decoratable: the widget can be registered
//   - ColorSwappable: the widget swaps colors while it has focus
//   - Container: the widget owns an ordered list of child widgets
//   - TabStrip / TabPage: two-level containers whose pages are transparent
//
// A Registrar walks a widget tree exactly once per widget. For every
// decoratable widget it binds a CoreService and, for color-swappable widgets,
// a FocusColorService that subscribes to the widget's enter and leave
// notifications.
//
// # Threading
//
// Everything here runs on the host's UI thread. Notifications are handled
// synchronously in the order the host delivers them, so nothing is locked.
package service
