package main

import (
	"time"

	"github.com/ManouchehrRasoulli/notefs/pkg/protocol"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var metaCommand = &cobra.Command{
	Use:   "meta <path>",
	Short: "Show metadata of a file or directory",
	Args:  cobra.ExactArgs(1),
	RunE:  metaMain,
}

func metaMain(_ *cobra.Command, args []string) error {
	meta, err := current.handler.GetMetadata(args[0])
	if err != nil {
		return err
	}

	if rootConfiguration.json {
		return current.enc.Encode(protocol.FileMeta, nil, meta)
	}

	modified := time.UnixMilli(int64(meta.LastModified))
	p := current.printer
	p.Printf("Name:      %s", meta.Name)
	p.Printf("Path:      %s", meta.Path)
	p.Printf("Kind:      %s", meta.Kind)
	p.Printf("Size:      %s (%d bytes)", humanize.Bytes(meta.Size), meta.Size)
	p.Printf("Modified:  %s (%s)", modified.Format(time.RFC3339), humanize.Time(modified))
	return nil
}
