package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

// Profiles repeated derivation of every built-in colourspace plus the
// conversion matrices between each pair.
func main() {
	iterations := flag.Int("n", 100000, "iterations")
	mem := flag.Bool("mem", false, "heap profile instead of CPU")
	flag.Parse()

	var p interface{ Stop() }
	if *mem {
		p = profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	} else {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}
	defer p.Stop()

	start := time.Now()
	var conversions int
	for count := 0; count < *iterations; count++ {
		datasets, err := colour.Datasets()
		if err != nil {
			log.Errorf("Error deriving colourspaces: %v", err)
			return
		}
		for _, from := range datasets {
			for _, to := range datasets {
				if _, err := colour.ConversionMatrix(from, to, colour.Bradford); err != nil {
					log.Errorf("Error converting %s to %s: %v", from.Name, to.Name, err)
					return
				}
				conversions++
			}
		}
	}
	fmt.Printf("%d iterations, %d conversion matrices took %d ms\n", *iterations, conversions, time.Since(start).Milliseconds())
}
