package main

import (
	"fmt"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/options"
	log "github.com/sirupsen/logrus"
)

func main() {
	datasets, err := colour.Datasets()
	if err != nil {
		log.Fatalf("Error deriving colourspaces: %v", err)
	}

	opts := &options.EquationOptions{Notation: options.NotationFixed, Digits: 6}
	for _, cs := range datasets {
		fmt.Printf("%-20s %-5s %s\n", cs.Name, cs.Illuminant, cs.LuminanceEquation(opts))
	}
}
