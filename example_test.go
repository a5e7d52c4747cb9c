package pointfield_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/pointfield"
	"github.com/hupe1980/pointfield/index"
	"github.com/hupe1980/pointfield/numeric"
	"github.com/hupe1980/pointfield/query"
	"github.com/hupe1980/pointfield/schema"
)

// Example_rangeQuery indexes a few prices and runs an inclusive range query.
func Example_rangeQuery() {
	ft := pointfield.NewFieldType(numeric.KindInt64)
	cfg := &schema.FieldConfig{Name: "price", Kind: numeric.KindInt64, Indexed: true}

	mi := index.NewMemoryIndex()
	for docID, price := range []int64{10, 20, 30} {
		reps, err := ft.CreateFields(cfg, numeric.Int64Value(price), 1.0)
		if err != nil {
			log.Fatal(err)
		}
		for _, rep := range reps {
			if rep.Type == pointfield.RepIndexedPoint {
				mi.Add(cfg.Name, rep.Encoded, uint32(docID))
			}
		}
	}
	if err := mi.Seal(context.Background()); err != nil {
		log.Fatal(err)
	}

	min, max := "15", "25"
	q, err := ft.RangeQuery(mi, cfg, query.Bounds{
		Min: &min, Max: &max,
		MinInclusive: true, MaxInclusive: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	hits, err := q.Execute(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hits.ToArray())
	// Output: [1]
}

// Example_readableRoundTrip shows the encoded form's order-preserving property.
func Example_readableRoundTrip() {
	ft := pointfield.NewFieldType(numeric.KindFloat64)
	cfg := &schema.FieldConfig{Name: "score", Kind: numeric.KindFloat64, Indexed: true}

	encoded, err := ft.ReadableToIndexed(cfg, "-2.5")
	if err != nil {
		log.Fatal(err)
	}
	readable, err := ft.IndexedToReadable(encoded)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(readable)
	// Output: -2.5
}
