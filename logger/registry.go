package logger

import "sync"

// named holds loggers registered by name, e.g. the application logger under
// the service name. Unregistered names resolve to a component logger derived
// from the global logger at lookup time.
var named sync.Map // map[string]*Logger

// Register stores l under name, replacing any previous entry.
func Register(name string, l *Logger) {
	named.Store(name, l)
}

// Get returns the logger registered under name, or the global logger tagged
// with component=name.
func Get(name string) *Logger {
	if l, ok := named.Load(name); ok {
		return l.(*Logger)
	}
	return GetGlobalLogger().WithComponent(name)
}
