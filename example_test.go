package rtfmerge_test

import (
	"fmt"
	"log"
	"strings"

	rtfmerge "github.com/docfold/go-rtfmerge"
)

func ExampleNew() {
	m, err := rtfmerge.New(rtfmerge.StringsAsData, "first body", "second body")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(m.Count())
	// Output: 2
}

func ExampleMerger_AsString() {
	m, err := rtfmerge.New(rtfmerge.StringsAsData, "alpha", "beta")
	if err != nil {
		log.Fatal(err)
	}
	if err := m.Header().Set("Title", "Example"); err != nil {
		log.Fatal(err)
	}

	merged, err := m.AsString()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(strings.Contains(merged, "alpha"+rtfmerge.SectionMarker+"beta"))
	// Output: true
}

func ExampleMerger_Remove() {
	m, err := rtfmerge.New(rtfmerge.StringsAsData, "a", "b", "c")
	if err != nil {
		log.Fatal(err)
	}
	m.Remove(1)
	fmt.Println(m.Count(), m.Exists(1), m.Exists(2))
	// Output: 2 false true
}
