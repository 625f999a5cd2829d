package guard

import (
	"context"

	"github.com/shirou/gopsutil/v4/process"
)

// SystemLister lists processes from the OS process table.
type SystemLister struct{}

// Processes returns every process visible to the caller.
func (SystemLister) Processes(ctx context.Context) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		out = append(out, systemProcess{p})
	}
	return out, nil
}

type systemProcess struct {
	p *process.Process
}

func (s systemProcess) PID() int { return int(s.p.Pid) }

func (s systemProcess) Cmdline(ctx context.Context) ([]string, error) {
	return s.p.CmdlineSliceWithContext(ctx)
}
