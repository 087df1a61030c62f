package main

import (
	"fmt"
	"strings"

	"github.com/ManouchehrRasoulli/notefs/pkg/logger"
	"github.com/ManouchehrRasoulli/notefs/pkg/model"
	"github.com/ManouchehrRasoulli/notefs/pkg/protocol"
	"github.com/spf13/cobra"
)

var treeConfiguration struct {
	dirsOnly bool
}

var treeCommand = &cobra.Command{
	Use:   "tree <directory>",
	Short: "Print the directory tree below a path",
	Args:  cobra.ExactArgs(1),
	RunE:  treeMain,
}

func init() {
	treeCommand.Flags().BoolVarP(&treeConfiguration.dirsOnly, "dirs", "d", false, "only print directories")
}

func treeMain(_ *cobra.Command, args []string) error {
	nodes, err := current.handler.ReadDirTree(args[0])
	if err != nil {
		return err
	}

	if rootConfiguration.json {
		return current.enc.Encode(protocol.DirTree, map[string]interface{}{"root": args[0]}, nodes)
	}

	count := 0
	for _, n := range nodes {
		count += n.Count()
		printNode(current.printer, n, 0)
	}
	current.status.Printcf(logger.ColorBlue, "tree notefs : %d entries below %s", count, args[0])
	return nil
}

func printNode(p *logger.ColorLogger, n model.FileNode, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.IsDir {
		p.Printc(logger.ColorBlue, fmt.Sprintf("%s%s/", indent, n.Name))
		for _, c := range n.Children {
			printNode(p, c, depth+1)
		}
		return
	}

	if treeConfiguration.dirsOnly {
		return
	}
	p.Printf("%s%s", indent, n.Name)
}
