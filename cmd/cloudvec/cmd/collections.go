package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

var collectionsCmd = &cobra.Command{
	Use:     "collections",
	Aliases: []string{"collection"},
	Short:   "Manage collections",
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections with their point counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := connect()
		if err != nil {
			return err
		}
		defer client.Close()

		collections, err := client.ListCollections(cmd.Context())
		if err != nil {
			return err
		}

		if len(collections) == 0 {
			printWarn("no collections")
			return nil
		}

		printHeading("collections on %s", client.Endpoint())
		for _, c := range collections {
			fmt.Printf("  %-32s %s\n", c.Name, dimColor.Sprintf("%d points", c.PointCount))
		}
		return nil
	},
}

var (
	createSize     int
	createDistance string
)

var collectionsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		distance, err := vectordb.ParseDistance(createDistance)
		if err != nil {
			return err
		}

		client, err := connect()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.CreateCollection(cmd.Context(), args[0], createSize, distance); err != nil {
			return err
		}

		printOK("created collection %q (dim %d, %s)", args[0], createSize, distance)
		return nil
	},
}

var collectionsDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show a collection's configuration and point count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := connect()
		if err != nil {
			return err
		}
		defer client.Close()

		info, err := client.DescribeCollection(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printHeading("collection %q", info.Name)
		fmt.Printf("  vector size: %d\n", info.VectorSize)
		fmt.Printf("  distance:    %s\n", info.Distance)
		fmt.Printf("  points:      %d\n", info.PointCount)
		return nil
	},
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a collection and all its points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := connect()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.DeleteCollection(cmd.Context(), args[0]); err != nil {
			return err
		}

		printOK("deleted collection %q", args[0])
		return nil
	},
}

func init() {
	collectionsCreateCmd.Flags().IntVar(&createSize, "size", 0, "vector dimensionality (required)")
	collectionsCreateCmd.Flags().StringVar(&createDistance, "distance", "Cosine", "similarity metric: Cosine, Dot or Euclid")
	_ = collectionsCreateCmd.MarkFlagRequired("size")

	collectionsCmd.AddCommand(collectionsListCmd)
	collectionsCmd.AddCommand(collectionsCreateCmd)
	collectionsCmd.AddCommand(collectionsDescribeCmd)
	collectionsCmd.AddCommand(collectionsDeleteCmd)
}
