package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

var upsertFile string

var upsertCmd = &cobra.Command{
	Use:   "upsert <collection>",
	Short: "Insert or replace points from a JSON file",
	Long: `Reads a JSON array of points and writes it to the collection in one
durable batch. Points with existing identifiers are replaced.

Each point has the shape:

  {"id": 1, "vector": [0.1, 0.2], "payload": {"city": "Berlin"}}

Identifiers may be unsigned integers or strings. Use "-" as the file
to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := readPoints(upsertFile)
		if err != nil {
			return err
		}

		client, err := connect()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.UpsertPoints(cmd.Context(), args[0], points); err != nil {
			return err
		}

		printOK("upserted %d points into %q", len(points), args[0])
		return nil
	},
}

var deletePointsCmd = &cobra.Command{
	Use:   "delete-points <collection> <id>...",
	Short: "Delete points by identifier",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]vectordb.PointID, 0, len(args)-1)
		for _, raw := range args[1:] {
			ids = append(ids, parsePointID(raw))
		}

		client, err := connect()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.DeletePoints(cmd.Context(), args[0], ids); err != nil {
			return err
		}

		printOK("deleted %d points from %q", len(ids), args[0])
		return nil
	},
}

func readPoints(path string) ([]vectordb.Point, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open points file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var points []vectordb.Point
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	return points, nil
}

// parsePointID treats a decimal argument as a numeric identifier and
// anything else as a string identifier, matching the JSON encoding.
func parsePointID(raw string) vectordb.PointID {
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return vectordb.NumericID(n)
	}
	return vectordb.StringID(raw)
}

func init() {
	upsertCmd.Flags().StringVarP(&upsertFile, "file", "f", "-", "JSON file with points, or - for stdin")
}
