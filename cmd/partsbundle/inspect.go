// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/partsbundle/internal/gltf"
)

// docSummary is the inspect command's report shape.
type docSummary struct {
	Source     string        `json:"source"`
	Generator  string        `json:"generator,omitempty"`
	Version    string        `json:"version"`
	Nodes      int           `json:"nodes"`
	Accessors  int           `json:"accessors"`
	Buffers    int           `json:"buffers"`
	Images     int           `json:"images"`
	Animations []animSummary `json:"animations"`
}

type animSummary struct {
	Name      string `json:"name"`
	Channels  int    `json:"channels"`
	Rotation  int    `json:"rotation_channels"`
	Position  int    `json:"translation_channels"`
	Unhandled int    `json:"unhandled_channels"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <scene.gltf>",
	Short: "Summarize a scene document",
	Long: `Inspect parses a scene document without touching its buffers and reports
what a conversion would see: node, accessor, buffer and image counts, and
each animation's channel breakdown by target property.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := gltf.Load(args[0])
		if err != nil {
			return err
		}
		sum := summarize(doc, filepath.Base(args[0]))

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sum)
		}

		fmt.Printf("%s (glTF %s", sum.Source, sum.Version)
		if sum.Generator != "" {
			fmt.Printf(", %s", sum.Generator)
		}
		fmt.Println(")")
		fmt.Printf("  nodes: %d  accessors: %d  buffers: %d  images: %d\n",
			sum.Nodes, sum.Accessors, sum.Buffers, sum.Images)
		for _, a := range sum.Animations {
			fmt.Printf("  animation %q: %d channel(s), %d rotation, %d translation, %d unhandled\n",
				a.Name, a.Channels, a.Rotation, a.Position, a.Unhandled)
		}
		return nil
	},
}

func summarize(doc *gltf.Document, source string) docSummary {
	sum := docSummary{
		Source:     source,
		Generator:  doc.Asset.Generator,
		Version:    doc.Asset.Version,
		Nodes:      len(doc.Nodes),
		Accessors:  len(doc.Accessors),
		Buffers:    len(doc.Buffers),
		Images:     len(doc.Images),
		Animations: []animSummary{},
	}
	for i, a := range doc.Animations {
		name := a.Name
		if name == "" {
			name = fmt.Sprintf("Animation%d", i)
		}
		as := animSummary{Name: name, Channels: len(a.Channels)}
		for _, ch := range a.Channels {
			switch ch.Target.Path {
			case "rotation":
				as.Rotation++
			case "translation":
				as.Position++
			default:
				as.Unhandled++
			}
		}
		sum.Animations = append(sum.Animations, as)
	}
	return sum
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output the summary as JSON")

	rootCmd.AddCommand(inspectCmd)
}
