package health

import (
	"math"
	"os"
	"sync/atomic"
	"time"

	sigar "github.com/cloudfoundry/gosigar"
)

// Load samples the CPU and memory consumption of this process once a second
// and keeps the latest readings available to any goroutine.
type Load struct {
	currentCPULoad    uint32
	currentMemoryLoad uint32
	done              chan struct{}
	pid               int
	pm                *sigar.ProcMem
	pc                *sigar.ProcCpu
}

// StartLoadMonitoring begins sampling. Stop it with Close.
func StartLoadMonitoring() *Load {
	l := &Load{
		done: make(chan struct{}),
		pid:  os.Getpid(),
		pm:   &sigar.ProcMem{},
		pc:   &sigar.ProcCpu{},
	}

	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-l.done:
				return
			case <-ticker.C:
				l.update()
			}
		}
	}()

	return l
}

// Close ends the sampling goroutine. A closed Load keeps reporting its last
// readings.
func (l *Load) Close() error {
	close(l.done)
	return nil
}

// CPU reports the most recent CPU load, in percent.
func (l *Load) CPU() float32 {
	return math.Float32frombits(atomic.LoadUint32(&l.currentCPULoad))
}

// Memory reports the most recent resident memory size, in megabytes.
func (l *Load) Memory() uint32 {
	return atomic.LoadUint32(&l.currentMemoryLoad)
}

func (l *Load) update() {
	l.pc.Get(l.pid)
	l.pm.Get(l.pid)

	cpu := math.Float32bits(float32(l.pc.Percent))

	// Resident is in bytes; shift 20 to the right to get megabytes.
	res := uint32((l.pm.Resident >> 20) & math.MaxUint32)

	atomic.StoreUint32(&l.currentCPULoad, cpu)
	atomic.StoreUint32(&l.currentMemoryLoad, res)
}
