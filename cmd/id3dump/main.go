// Command id3dump prints the frames of an ID3 tag found at the start
// or end of an audio file.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	id3 "github.com/illright/audiometa"
)

func main() {
	var strict bool

	root := &cobra.Command{
		Use:   "id3dump <file>...",
		Short: "Decode and print ID3 tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if err := dumpFile(name, strict); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				}
			}
			return nil
		},
	}
	root.Flags().BoolVar(&strict, "strict", false, "fail on the first malformed frame instead of skipping it")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func dumpFile(name string, strict bool) error {
	buf, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	version, ok := id3.ProbeVersion(buf)
	if !ok {
		return fmt.Errorf("no ID3 tag found")
	}

	tag, err := id3.Decode(buf, version,
		id3.WithPolicy(id3.Policy{StrictFrames: strict}),
		id3.WithDiagnostics(id3.LogDiagnostics{}),
	)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", name, tag.Version)
	for id, frames := range tag.Frames {
		var vals []string
		for _, f := range frames {
			vals = append(vals, f.Value())
		}
		label := id3.FrameNames[id]
		if label == "" {
			label = id
		}
		fmt.Printf("  %s (%s): %s\n", id, label, strings.Join(vals, ", "))
	}
	return nil
}
