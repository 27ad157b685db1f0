// dist describes the distributions in the go-moredist library.
//
// Given a distribution name and its parameters, dist prints the
// support, the moments, a quantile table, and a sketch of the
// density:
//
//	$ dist lomax 1 2.5
//
// With -n, dist instead emits newline-separated random draws, which
// compose with line-oriented statistics tools:
//
//	$ dist -n 10000 zipoisson 5 0.2
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/aclements/go-moredist/dist"
)

var (
	draws = flag.Int("n", 0, "emit `count` random draws instead of a description")
	seed  = flag.Uint64("seed", 1, "random `seed` for -n")
)

// A family names a distribution's parameters in order and constructs
// an instance from their values.
type family struct {
	args string
	make func(p []float64, src rand.Source) (dist.Dist, error)
}

var families = map[string]family{
	"alpha": {"alpha beta", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewAlpha(p[0], p[1])
		d.Src = src
		return d, err
	}},
	"argus": {"chi c", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewArgus(p[0], p[1])
		d.Src = src
		return d, err
	}},
	"benktander1": {"a b", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewBenktanderType1(p[0], p[1])
		d.Src = src
		return d, err
	}},
	"benktander2": {"a b", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewBenktanderType2(p[0], p[1])
		d.Src = src
		return d, err
	}},
	"betanegbinom": {"r alpha beta", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewBetaNegBinomial(p[0], p[1], p[2])
		d.Src = src
		return d, err
	}},
	"bhattacharjee": {"a b sigma", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewBhattacharjee(p[0], p[1], p[2])
		d.Src = src
		return d, err
	}},
	"birnbaumsaunders": {"alpha beta mu", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewBirnbaumSaunders(p[0], p[1], p[2])
		d.Src = src
		return d, err
	}},
	"borel": {"mu", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewBorel(p[0])
		d.Src = src
		return d, err
	}},
	"bradford": {"theta a b", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewBradford(p[0], p[1], p[2])
		d.Src = src
		return d, err
	}},
	"burr": {"c k lambda", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewBurr(p[0], p[1], p[2])
		d.Src = src
		return d, err
	}},
	"conway": {"lambda nu", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewConwayMaxwellPoisson(p[0], p[1])
		d.Src = src
		return d, err
	}},
	"crystalball": {"alpha m mu sigma", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewCrystalBall(p[0], p[1], p[2], p[3])
		d.Src = src
		return d, err
	}},
	"dagum": {"a b p", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewDagum(p[0], p[1], p[2])
		d.Src = src
		return d, err
	}},
	"delaporte": {"alpha beta lambda", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewDelaporte(p[0], p[1], p[2])
		d.Src = src
		return d, err
	}},
	"floryschulz": {"a", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewFlorySchulz(p[0])
		d.Src = src
		return d, err
	}},
	"gausskuzmin": {"", func(p []float64, src rand.Source) (dist.Dist, error) {
		d := dist.NewGaussKuzmin()
		d.Src = src
		return d, nil
	}},
	"gompertz": {"eta b", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewGompertz(p[0], p[1])
		d.Src = src
		return d, err
	}},
	"logarithmic": {"p", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewLogarithmic(p[0])
		d.Src = src
		return d, err
	}},
	"lomax": {"lambda alpha", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewLomax(p[0], p[1])
		d.Src = src
		return d, err
	}},
	"maxwell": {"a", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewMaxwell(p[0])
		d.Src = src
		return d, err
	}},
	"nakagami": {"m omega", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewNakagami(p[0], p[1])
		d.Src = src
		return d, err
	}},
	"negbinom": {"r p", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewNegativeBinomial(p[0], p[1])
		d.Src = src
		return d, err
	}},
	"pert": {"a b c", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewPERT(p[0], p[1], p[2])
		d.Src = src
		return d, err
	}},
	"rademacher": {"", func(p []float64, src rand.Source) (dist.Dist, error) {
		d := dist.NewRademacher()
		d.Src = src
		return d, nil
	}},
	"yule": {"rho", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewYule(p[0])
		d.Src = src
		return d, err
	}},
	"zibinomial": {"n p pi", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewZIBinomial(int(p[0]), p[1], p[2])
		d.Src = src
		return d, err
	}},
	"zinegbinom": {"r p pi", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewZINegativeBinomial(p[0], p[1], p[2])
		d.Src = src
		return d, err
	}},
	"zipf": {"n s", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewZipf(int(p[0]), p[1])
		d.Src = src
		return d, err
	}},
	"zipoisson": {"lambda pi", func(p []float64, src rand.Source) (dist.Dist, error) {
		d, err := dist.NewZIPoisson(p[0], p[1])
		d.Src = src
		return d, err
	}},
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] name params...\n\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\ndistributions:\n")
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s %s\n", name, families[name].args)
	}
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	name := flag.Arg(0)
	fam, ok := families[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown distribution %q\n", name)
		usage()
	}
	want := len(strings.Fields(fam.args))
	if flag.NArg()-1 != want {
		fmt.Fprintf(os.Stderr, "%s takes %d parameters: %s\n", name, want, fam.args)
		os.Exit(2)
	}
	params := make([]float64, want)
	for i := range params {
		v, err := strconv.ParseFloat(flag.Arg(i+1), 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		params[i] = v
	}

	d, err := fam.make(params, rand.NewSource(*seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *draws > 0 {
		for _, x := range dist.Sample(d, *draws) {
			fmt.Printf("%g\n", x)
		}
		return
	}

	describe(os.Stdout, name, params, d)
}

func describe(w io.Writer, name string, params []float64, d dist.Dist) {
	fmt.Fprintf(w, "%s%v\n", name, params)
	s := d.Support()
	fmt.Fprintf(w, "support %s  discrete %v\n\n", formatSupport(s), s.Discrete())

	fmt.Fprintf(w, "mean %.6g  std dev %.6g  variance %.6g\n", d.Mean(), d.StdDev(), d.Variance())
	fmt.Fprintf(w, "skewness %.6g  ex kurtosis %.6g\n", d.Skewness(), d.ExKurtosis())
	fmt.Fprintf(w, "median %.6g  mode %.6g\n", d.Median(), d.Mode())
	if e, ok := d.(dist.Entropier); ok {
		fmt.Fprintf(w, "entropy %.6g\n", e.Entropy())
	}
	fmt.Fprintln(w)

	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, d.Quantile(float64(p)/100))
	}
	fmt.Fprintln(w)

	fprintPDF(w, d)
}

func formatSupport(s dist.Support) string {
	lb, rb := "[", "]"
	if s.OpenMin {
		lb = "("
	}
	if s.OpenMax || math.IsInf(s.Max, 1) {
		rb = ")"
	}
	if math.IsInf(s.Min, -1) {
		lb = "("
	}
	return fmt.Sprintf("%s%g, %g%s", lb, s.Min, s.Max, rb)
}

// fprintPDF sketches the density or mass function of d over its
// Bounds, one output row per abscissa.
func fprintPDF(w io.Writer, d dist.Dist) {
	const rows, width = 20, 48
	lo, hi := d.Bounds()

	var xs []float64
	s := d.Support()
	if s.Discrete() {
		for x := math.Max(s.Min, lo); x <= hi && len(xs) < rows; x += s.Step {
			xs = append(xs, x)
		}
	} else {
		for i := 0; i < rows; i++ {
			xs = append(xs, lo+(hi-lo)*(float64(i)+0.5)/rows)
		}
	}

	probs := dist.Each(d.Prob, xs)
	max := 0.0
	for _, p := range probs {
		if p > max {
			max = p
		}
	}
	if max == 0 || math.IsInf(max, 1) {
		return
	}
	for i, x := range xs {
		n := int(probs[i] / max * width)
		fmt.Fprintf(w, "%10.4g %s\n", x, strings.Repeat("*", n))
	}
}
