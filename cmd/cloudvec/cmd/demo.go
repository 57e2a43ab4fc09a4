package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudvec/cloudvec/v1/qdrant"
	"github.com/cloudvec/cloudvec/v1/vectordb"
)

const demoCollection = "cloudvec_demo"

var demoKeep bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an end-to-end tour against the configured server",
	Long: `Walks through the full client surface: lists existing collections,
searches test_collection when present, then creates a small
dot-product collection, upserts three sample points, runs a search
and cleans up again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := connect()
		if err != nil {
			return err
		}
		defer client.Close()

		return runDemo(cmd.Context(), client)
	},
}

func runDemo(ctx context.Context, client *qdrant.Client) error {
	printHeading("connected to %s", client.Endpoint())

	collections, err := client.ListCollections(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("collections: %d\n", len(collections))
	hasTestCollection := false
	for _, c := range collections {
		fmt.Printf("  %-32s %s\n", c.Name, dimColor.Sprintf("%d points", c.PointCount))
		if c.Name == "test_collection" {
			hasTestCollection = true
		}
	}

	if hasTestCollection {
		printHeading("searching test_collection")
		results, err := client.Search(ctx, vectordb.SearchRequest{
			CollectionName: "test_collection",
			Vector:         []float32{0.2, 0.1, 0.9, 0.7},
			Limit:          3,
		})
		if err != nil {
			return err
		}
		printResults(results)
	}

	printHeading("creating %s (dim 4, Dot)", demoCollection)
	if err := client.CreateCollection(ctx, demoCollection, 4, vectordb.DistanceDot); err != nil {
		if !qdrant.IsAlreadyExists(err) {
			return err
		}
		printWarn("%s already exists, reusing it", demoCollection)
	}

	samples := []vectordb.Point{
		{
			ID:      vectordb.NumericID(1),
			Vector:  []float32{0.1, 0.2, 0.3, 0.4},
			Payload: map[string]any{"name": "item_1", "category": "A"},
		},
		{
			ID:      vectordb.NumericID(2),
			Vector:  []float32{0.5, 0.6, 0.7, 0.8},
			Payload: map[string]any{"name": "item_2", "category": "B"},
		},
		{
			ID:      vectordb.NumericID(3),
			Vector:  []float32{0.9, 0.1, 0.5, 0.2},
			Payload: map[string]any{"name": "item_3", "category": "A"},
		},
	}
	if err := client.UpsertPoints(ctx, demoCollection, samples); err != nil {
		return err
	}
	printOK("upserted %d points", len(samples))

	printHeading("searching %s", demoCollection)
	results, err := client.Search(ctx, vectordb.SearchRequest{
		CollectionName: demoCollection,
		Vector:         []float32{0.1, 0.2, 0.3, 0.4},
		Limit:          2,
	})
	if err != nil {
		return err
	}
	printResults(results)

	if demoKeep {
		printWarn("keeping %s, delete it with: cloudvec collections delete %s", demoCollection, demoCollection)
		return nil
	}

	if err := client.DeleteCollection(ctx, demoCollection); err != nil {
		return err
	}
	printOK("deleted %s", demoCollection)
	return nil
}

func printResults(results []vectordb.SearchResult) {
	for i, r := range results {
		fmt.Printf("  %d. id=%s score=%.3f", i+1, r.ID, r.Score)
		if len(r.Payload) > 0 {
			payload, _ := json.Marshal(r.Payload)
			fmt.Printf(" %s", dimColor.Sprint(string(payload)))
		}
		fmt.Println()
	}
}

func init() {
	demoCmd.Flags().BoolVar(&demoKeep, "keep", false, "keep the demo collection instead of deleting it")
}
