// Package prof wires pprof and runtime/trace output to CLI flags.
package prof

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Options names the output files; empty paths disable that profile.
type Options struct {
	CPU   string
	Mem   string
	Trace string
}

var (
	cpuFile   *os.File
	traceFile *os.File
)

// Start enables the profiles requested in opts. The returned stop func
// finishes them and writes the heap profile.
func Start(opts Options) (stop func() error, err error) {
	if opts.CPU != "" {
		if err := StartCPU(opts.CPU); err != nil {
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
	}
	if opts.Trace != "" {
		if err := StartTrace(opts.Trace); err != nil {
			StopCPU()
			return nil, fmt.Errorf("runtime trace: %w", err)
		}
	}
	return func() error {
		StopTrace()
		StopCPU()
		if opts.Mem != "" {
			return WriteMem(opts.Mem)
		}
		return nil
	}, nil
}

// StartCPU enables CPU profiling and writes samples to the provided path.
func StartCPU(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return err
	}
	cpuFile = f
	return nil
}

// StopCPU stops an active CPU profile and closes the underlying file.
func StopCPU() {
	if cpuFile == nil {
		return
	}
	pprof.StopCPUProfile()
	_ = cpuFile.Close()
	cpuFile = nil
}

// WriteMem captures a heap profile to the supplied file path.
func WriteMem(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}

// StartTrace writes runtime trace data to the provided path.
func StartTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return err
	}
	traceFile = f
	return nil
}

// StopTrace ends an active runtime trace and closes the file.
func StopTrace() {
	if traceFile == nil {
		return
	}
	trace.Stop()
	_ = traceFile.Close()
	traceFile = nil
}
