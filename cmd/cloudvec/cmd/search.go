package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

var (
	searchVector string
	searchLimit  int
	searchMatch  []string
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search <collection>",
	Short: "Find the points most similar to a query vector",
	Long: `Ranks the collection's points against the query vector under the
collection's distance metric and prints the best matches.

The query vector is given as comma-separated numbers. Payload filters
use key=value pairs and must all match (repeat --match to add more).`,
	Example: `  cloudvec search demo --vector 0.2,0.1,0.9,0.7 --limit 3
  cloudvec search cities --vector 0.3,0.4 --match country=de`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vector, err := parseVector(searchVector)
		if err != nil {
			return err
		}

		filter, err := parseMatchFilters(searchMatch)
		if err != nil {
			return err
		}

		client, err := connect()
		if err != nil {
			return err
		}
		defer client.Close()

		results, err := client.Search(cmd.Context(), vectordb.SearchRequest{
			CollectionName: args[0],
			Vector:         vector,
			Limit:          searchLimit,
			Filter:         filter,
		})
		if err != nil {
			return err
		}

		if searchJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(results)
		}

		if len(results) == 0 {
			printWarn("no matches")
			return nil
		}

		printHeading("top %d matches in %q", len(results), args[0])
		for i, r := range results {
			line := fmt.Sprintf("  %2d. id=%-12s score=%.4f", i+1, r.ID, r.Score)
			if len(r.Payload) > 0 {
				payload, _ := json.Marshal(r.Payload)
				line += " " + dimColor.Sprint(string(payload))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func parseVector(raw string) ([]float32, error) {
	parts := strings.Split(raw, ",")
	vector := make([]float32, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid vector component %q: %w", part, err)
		}
		vector = append(vector, float32(v))
	}
	return vector, nil
}

func parseMatchFilters(pairs []string) (*vectordb.FilterSet, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	conditions := make([]vectordb.FilterCondition, 0, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid match filter %q, want key=value", pair)
		}
		conditions = append(conditions, vectordb.NewMatch(key, value))
	}
	return vectordb.NewFilterSet(vectordb.Must(conditions...)), nil
}

func init() {
	searchCmd.Flags().StringVar(&searchVector, "vector", "", "query vector as comma-separated numbers (required)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum number of results")
	searchCmd.Flags().StringArrayVar(&searchMatch, "match", nil, "payload filter key=value, all must match")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON")
	_ = searchCmd.MarkFlagRequired("vector")
}
