package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/options"
	log "github.com/sirupsen/logrus"
)

func main() {
	name := flag.String("colourspace", "", "built-in or defined colourspace name")
	primaries := flag.String("primaries", "", "custom primaries xr,yr,xg,yg,xb,yb")
	whitepoint := flag.String("whitepoint", "", "custom white point x,y")
	illuminant := flag.String("illuminant", "", "custom white point as illuminant name")
	defs := flag.String("defs", "", "yaml or toml colourspace definitions file")
	target := flag.String("to", "", "also print the RGB to RGB matrix to this colourspace")
	catName := flag.String("cat", "bradford", "chromatic adaptation: bradford, vonkries or xyzscaling")
	notation := flag.String("format", "g", "coefficient notation: g, f or e")
	digits := flag.Int("precision", 0, "coefficient digits, 0 for shortest")
	list := flag.Bool("list", false, "list known colourspaces and illuminants")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if err := checkFlags(set); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	var defined []colour.RGBColourspace
	if *defs != "" {
		d, err := options.LoadDefinitions(*defs)
		if err != nil {
			log.Fatalf("Error loading definitions: %v", err)
		}
		for _, def := range d.Colourspaces {
			cs, err := colour.FromDefinition(def)
			if err != nil {
				log.Fatalf("Error in definitions: %v", err)
			}
			defined = append(defined, cs)
		}
	}

	if *list {
		fmt.Printf("colourspaces:\n")
		for _, n := range colour.DatasetNames() {
			fmt.Printf("  %s\n", n)
		}
		for _, cs := range defined {
			fmt.Printf("  %s (%s)\n", cs.Name, *defs)
		}
		fmt.Printf("illuminants: %s\n", strings.Join(colour.IlluminantNames(), ", "))
		return
	}

	n, err := options.ParseNotation(*notation)
	if err != nil {
		log.Fatalf("Invalid -format: %v", err)
	}
	eqOpts := &options.EquationOptions{Notation: n, Digits: *digits}

	var cs colour.RGBColourspace
	switch {
	case *name != "":
		cs, err = resolve(*name, defined)
	case *primaries != "":
		cs, err = custom(*primaries, *whitepoint, *illuminant)
	default:
		fmt.Printf("one of -colourspace, -primaries or -list must be specified\n")
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error deriving colourspace: %v", err)
	}

	printColourspace(cs, eqOpts)

	if *target != "" {
		cat, err := colour.ParseChromaticAdaptationTransform(*catName)
		if err != nil {
			log.Fatalf("Invalid -cat: %v", err)
		}
		to, err := resolve(*target, defined)
		if err != nil {
			log.Fatalf("Error deriving target colourspace: %v", err)
		}
		m, err := colour.ConversionMatrix(cs, to, cat)
		if err != nil {
			log.Fatalf("Error deriving conversion matrix: %v", err)
		}
		fmt.Printf("%s to %s (%s):\n", cs.Name, to.Name, cat)
		printMatrix(m)
	}
}

// checkFlags rejects combinations where a set flag would be ignored.
func checkFlags(set map[string]bool) error {
	if set["colourspace"] {
		for _, f := range []string{"primaries", "whitepoint", "illuminant"} {
			if set[f] {
				return fmt.Errorf("-%s cannot be used with -colourspace", f)
			}
		}
	}
	if set["cat"] && !set["to"] {
		return fmt.Errorf("-cat requires -to")
	}
	return nil
}

func resolve(name string, defined []colour.RGBColourspace) (colour.RGBColourspace, error) {
	for _, cs := range defined {
		if strings.EqualFold(cs.Name, name) {
			return cs, nil
		}
	}
	return colour.Lookup(name)
}

func custom(primaries string, whitepoint string, illuminant string) (colour.RGBColourspace, error) {
	p, err := parseFloats(primaries, 6)
	if err != nil {
		return colour.RGBColourspace{}, fmt.Errorf("-primaries: %w", err)
	}
	prim := colour.PrimariesFromMatrix([3][2]float64{{p[0], p[1]}, {p[2], p[3]}, {p[4], p[5]}})

	var white colour.CIEXY
	switch {
	case whitepoint != "" && illuminant != "":
		return colour.RGBColourspace{}, fmt.Errorf("only one of -whitepoint and -illuminant may be given")
	case whitepoint != "":
		w, err := parseFloats(whitepoint, 2)
		if err != nil {
			return colour.RGBColourspace{}, fmt.Errorf("-whitepoint: %w", err)
		}
		white = colour.NewCIEXY(w[0], w[1])
	default:
		if illuminant == "" {
			illuminant = "D65"
		}
		var ok bool
		if white, ok = colour.Illuminant(illuminant); !ok {
			return colour.RGBColourspace{}, fmt.Errorf("%w %q", colour.ErrUnknownIlluminant, illuminant)
		}
	}
	return colour.NewRGBColourspace("custom", prim, white, illuminant, "")
}

func parseFloats(s string, count int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != count {
		return nil, fmt.Errorf("expected %d comma separated numbers, got %d", count, len(fields))
	}
	res := make([]float64, count)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func printColourspace(cs colour.RGBColourspace, eqOpts *options.EquationOptions) {
	fmt.Printf("%s\n", cs.Name)
	fmt.Printf("primaries: %v\n", cs.Primaries)
	fmt.Printf("whitepoint: %v %s\n", cs.Whitepoint, cs.Illuminant)
	if cs.TransferFunction != "" {
		fmt.Printf("transfer: %s\n", cs.TransferFunction)
	}
	fmt.Printf("RGB to XYZ:\n")
	printMatrix(cs.RGBToXYZ)
	fmt.Printf("XYZ to RGB:\n")
	printMatrix(cs.XYZToRGB)
	fmt.Printf("%s\n", cs.LuminanceEquation(eqOpts))
}

func printMatrix(m colour.Matrix3x3) {
	for _, row := range m {
		fmt.Printf("  % .10f % .10f % .10f\n", row[0], row[1], row[2])
	}
}
