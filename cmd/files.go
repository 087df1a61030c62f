package main

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ManouchehrRasoulli/notefs/pkg/logger"
	"github.com/ManouchehrRasoulli/notefs/pkg/model"
	"github.com/spf13/cobra"
)

var catCommand = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print the text content of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := current.handler.ReadFile(args[0])
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), content)
		return err
	},
}

var writeCommand = &cobra.Command{
	Use:   "write <file>",
	Short: "Replace the content of a file with standard input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		if !utf8.Valid(data) {
			return errors.Join(model.ErrNotUTF8, errors.New("standard input"))
		}
		return current.handler.WriteFile(args[0], string(data))
	},
}

var newCommand = &cobra.Command{
	Use:   "new <directory> <name>",
	Short: "Create a markdown note, the .md extension is enforced",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		path, err := current.handler.CreateMarkdownFile(args[0], args[1])
		if err != nil {
			return err
		}
		return current.emitPath(path)
	},
}

var mkdirCommand = &cobra.Command{
	Use:   "mkdir <directory> <name>",
	Short: "Create a folder, including missing parents",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		path, err := current.handler.CreateFolder(args[0], args[1])
		if err != nil {
			return err
		}
		return current.emitPath(path)
	},
}

var rmCommand = &cobra.Command{
	Use:   "rm <path>...",
	Short: "Delete files, directories are removed recursively",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		for _, path := range args {
			if err := current.handler.DeleteFile(path); err != nil {
				return err
			}
			current.status.Printcf(logger.ColorYellow, "rm notefs : removed %s", path)
		}
		return nil
	},
}

var mvCommand = &cobra.Command{
	Use:   "mv <path> <new-name>",
	Short: "Rename a file or directory inside its parent",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		path, err := current.handler.RenameFile(args[0], args[1])
		if err != nil {
			return err
		}
		return current.emitPath(path)
	},
}

var cpCommand = &cobra.Command{
	Use:   "cp <source> <directory>",
	Short: "Copy a file or directory without overwriting, colliding names get a _copy_N suffix",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		path, err := current.handler.CopyFile(args[0], args[1])
		if err != nil {
			return fmt.Errorf("copy %s: %w", args[0], err)
		}
		return current.emitPath(path)
	},
}
