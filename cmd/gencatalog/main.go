package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

var places = []string{
	"Lake", "Canyon", "Harbour", "Glacier", "Meadow", "Reef",
	"Volcano", "Forest", "Desert", "Island", "Valley", "Bridge",
	"Lighthouse", "Waterfall", "Cabin", "Market", "Dunes", "Cliffs",
}

var adjectives = []string{
	"Misty", "Golden", "Silent", "Frozen", "Hidden", "Northern",
	"Sunlit", "Stormy", "Ancient", "Emerald", "Windswept", "Quiet",
}

var details = []string{
	"shot just after sunrise",
	"with the tide going out",
	"under a sky full of stars",
	"on the last day of autumn",
	"seen from the old footpath",
	"after a week of rain",
	"through a telephoto lens",
	"before the crowds arrived",
	"in the middle of a snowstorm",
	"from the top of the ridge",
}

func main() {
	n := flag.Int("n", 50, "number of items")
	out := flag.String("o", "catalog.md", "output file")
	flag.Parse()

	var b strings.Builder
	b.WriteString("# Generated catalog\n")

	for i := 0; i < *n; i++ {
		place := places[rand.Intn(len(places))]
		title := fmt.Sprintf("%s %s", adjectives[rand.Intn(len(adjectives))], place)

		// Number the titles so they stay unique
		fmt.Fprintf(&b, "\n## %s %d\n", title, i+1)
		fmt.Fprintf(&b, "![](%s)\n", strings.ToLower(place))
		fmt.Fprintf(&b, "%s, %s.\n", title, details[rand.Intn(len(details))])
	}

	if err := os.WriteFile(*out, []byte(b.String()), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d catalog items at %s\n", *n, *out)
}
