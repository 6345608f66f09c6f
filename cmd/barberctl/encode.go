package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/valueobjects"
)

var validExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func newEncodeCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "encode [files or directories...]",
		Short: "Write JPEG base64 payloads for the analyzeFace endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"images"}
			}
			files, err := collectImages(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no images found in %s", strings.Join(args, ", "))
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			for _, file := range files {
				path, err := encodeFile(file, outDir)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "encoded", "output directory")
	return cmd
}

// collectImages expands directories one level deep.
func collectImages(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if slices.Contains(validExtensions, strings.ToLower(filepath.Ext(entry.Name()))) {
				files = append(files, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return files, nil
}

func encodeFile(file, outDir string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	img, err := valueobjects.NewImageData(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", file, err)
	}
	img, err = img.ToJPEG()
	if err != nil {
		return "", fmt.Errorf("%s: %w", file, err)
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	path := filepath.Join(outDir, name+".txt")
	if err := os.WriteFile(path, []byte(img.ToBase64()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
