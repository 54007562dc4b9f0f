package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dream-go/godg/dg"
	"github.com/dream-go/godg/envconfig"
	"github.com/dream-go/godg/format"
	"github.com/dream-go/godg/version"
)

func InfoHandler(cmd *cobra.Command, args []string) error {
	lib, err := dg.Open()
	if err != nil {
		return err
	}

	out := os.Stdout
	prettyPrintExtractor(out, lib)
	fmt.Fprint(out, "\n")
	prettyPrintEnvironment(out)

	return nil
}

func newInfoTable(out io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding(" ")
	return table
}

func prettyPrintExtractor(out io.Writer, lib *dg.Library) {
	table := newInfoTable(out)
	indent := ""
	data := [][]string{
		{indent, "Version:", version.Version},
		{indent, "Library:", lib.Path()},
		{indent, "Feature Planes:", strconv.Itoa(lib.NumFeatures())},
		{indent, "Tensor Values:", strconv.Itoa(lib.NumFeatures() * dg.BoardPoints)},
		{indent, "Example Size:", format.HumanBytes(int64(lib.ExampleSize()))},
	}
	fmt.Fprint(out, "Extractor:\n")
	table.AppendBulk(data)
	table.Render()
}

func prettyPrintEnvironment(out io.Writer) {
	envVars := envconfig.AsMap()
	keys := make([]string, 0, len(envVars))
	for k := range envVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := newInfoTable(out)
	indent := ""
	data := make([][]string, 0, len(keys))
	for _, k := range keys {
		data = append(data, []string{indent, k + ":", fmt.Sprintf("%v", envVars[k].Value)})
	}
	fmt.Fprint(out, "Environment:\n")
	table.AppendBulk(data)
	table.Render()
}
