package driver

import (
	"fmt"

	"fortio.org/safecast"

	"cssvalue/internal/observ"
	"cssvalue/internal/pipeline"
)

// ValueName is the virtual path of values passed as strings.
const ValueName = "<value>"

// DefaultExtensions are the value sheet suffixes ParseDir looks for.
var DefaultExtensions = []string{".cssv"}

// Options configure driver entry points. The zero value is usable.
type Options struct {
	MaxDiagnostics int      // на файл; <= 0: без ограничения
	Jobs           int      // <= 0: GOMAXPROCS
	Extensions     []string // для ParseDir; пусто: DefaultExtensions
	VerifySpans    bool
	Progress       pipeline.ProgressSink
	Timer          *observ.Timer
}

func (o Options) maxErrors() uint {
	if o.MaxDiagnostics <= 0 {
		return 0
	}
	n, err := safecast.Conv[uint](o.MaxDiagnostics)
	if err != nil {
		panic(fmt.Errorf("max diagnostics overflow: %w", err))
	}
	return n
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

// phase starts a timer phase when a timer is configured.
func (o Options) phase(name string) func(note string) {
	if o.Timer == nil {
		return func(string) {}
	}
	idx := o.Timer.Begin(name)
	return func(note string) { o.Timer.End(idx, note) }
}
