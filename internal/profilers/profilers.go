// Package profilers implement helper functions to set up profiling for the various programs.
//
// If linked, it will install the profiler flags -prof and -cpu_profile.
// It only supports debugging, and otherwise has no functionality for the game.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProfiler   = flag.Int("prof", -1, "If set, runs the HTTP profiler (pprof) at the given port.")
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
)

// Setup starts the HTTP (flag -prof) and CPU profilers (flag -cpu_profile), if they were configured.
// It returns the function to call before the program exits, typically deferred.
//
// If the HTTP profiler is enabled, the returned function keeps the program alive until ctx is cancelled,
// so the profile can still be inspected.
func Setup(ctx context.Context) (onQuit func(), err error) {
	var stopCPU func()
	if *flagCPUProfile != "" {
		stopCPU, err = startCPUProfile(*flagCPUProfile)
		if err != nil {
			return nil, err
		}
	}
	addr := ""
	if *flagProfiler >= 0 {
		addr = fmt.Sprintf("localhost:%d", *flagProfiler)
		fmt.Printf("Starting profiler on %s/debug/pprof\n", addr)
		fmt.Printf("- You can access it with: $ go tool pprof %s/debug/pprof/heap\n", addr)
		go func() {
			klog.Fatal(http.ListenAndServe(addr, nil))
		}()
	}
	onQuit = func() {
		if stopCPU != nil {
			stopCPU()
		}
		if addr != "" {
			waitForInterrupt(ctx, addr)
		}
	}
	return onQuit, nil
}

func startCPUProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create CPU profile file %q", path)
	}
	if err = pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "could not start CPU profile")
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			klog.Errorf("Failed to close CPU profile %q: %+v", path, err)
		}
	}, nil
}

// waitForInterrupt keeps the program alive with the HTTP profiler serving, until ctx is done.
func waitForInterrupt(ctx context.Context, addr string) {
	if ctx.Err() != nil {
		return
	}
	// Garbage collect, to see if there is anything leaking.
	for range 10 {
		runtime.GC()
	}
	fmt.Printf("- Program finished: kept alive with profiler opened at %s/debug/pprof\n", addr)
	fmt.Printf("- Interrupt (Ctrl+C) to exit\n")
	<-ctx.Done()
	fmt.Printf("... exiting ...\n")
}
