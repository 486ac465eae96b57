package pluginlog

// ConsoleSink is the host console the Logger writes to (Strategy).
// Lines may carry style tags such as <error>...</error>; rendering them is
// the sink's job. The Logger only reads the flags and never mutates the sink.
type ConsoleSink interface {
	Write(lines ...string)
	WriteError(lines ...string)
	IsDebug() bool
	IsVerbose() bool
}

// Style wrappers applied by Log.
const (
	errorOpen   = "<error>"
	errorClose  = "</error>"
	warningOpen = "<fg=yellow>"
	styleClose  = "</>"
	infoOpen    = "<info>"
	infoClose   = "</info>"
)
