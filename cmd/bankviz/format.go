package main

import (
	"fmt"
	"io"
	"sort"

	"bank-interior/scene"
)

func printCensus(w io.Writer, s *scene.Scene) {
	census := s.Census()
	kinds := make([]string, 0, len(census))
	total := 0
	for k, n := range census {
		kinds = append(kinds, string(k))
		total += n
	}
	sort.Strings(kinds)

	fmt.Fprintf(w, "%-20s %5s\n", "KIND", "COUNT")
	for _, k := range kinds {
		fmt.Fprintf(w, "%-20s %5d\n", k, census[scene.Kind(k)])
	}
	fmt.Fprintf(w, "%-20s %5d\n", "total", total)

	fmt.Fprintf(w, "\nLIGHTS (%d):\n", len(s.Lights))
	byType := map[scene.LightType]int{}
	for _, l := range s.Lights {
		byType[l.Type]++
	}
	for _, t := range []scene.LightType{scene.LightAmbient, scene.LightDirectional, scene.LightPoint} {
		fmt.Fprintf(w, "  %-18s %5d\n", t, byType[t])
	}
}
