package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/paddleball/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration the test should run for.")
	sessionCount := flag.Int("sessions", 100, "The number of game sessions ticked in parallel within one loop.")
	tickRate := flag.Int("tick-rate", 60, "Simulated ticks per second (fixed dt = 1/tick-rate).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting simulation stress test...")

	// 1. Create the sessions and wire goal counting
	var totalGoals int64
	sessions := make([]*sim.Session, *sessionCount)
	for i := range sessions {
		sessions[i] = sim.NewSession()
		sessions[i].OnGoal(func(sim.GoalEvent) {
			totalGoals++
		})
	}
	log.Printf("Created %d sessions.\n", *sessionCount)

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessionCount,
		TickRate:       *tickRate,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	// 2. Run the tick loop: every session advances once per iteration with
	// jittery paddle input so both systems and collisions stay exercised.
	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := 1.0 / float64(*tickRate)
	startTime := time.Now()
	var totalTicks int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			tickStart := time.Now()
			for _, session := range sessions {
				session.SetAxis(sim.SideLeft, rand.Float32()*2-1)
				session.SetAxis(sim.SideRight, rand.Float32()*2-1)
				session.Tick(dt)
			}
			tickDuration := time.Since(tickStart)

			report.TickTime.Samples = append(report.TickTime.Samples, tickDuration)
			totalTicks += int64(*sessionCount)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.TotalGoals = totalGoals
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
