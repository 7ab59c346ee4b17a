package domain

import (
	"fmt"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "scorebook.yaml"

	// DefaultBookDir is the book root used when neither flags nor config name one.
	DefaultBookDir = "book"

	// SheetDirPrefix prefixes the number of every sheet folder inside a book.
	SheetDirPrefix = "sheet#"

	// ArtifactExt is the file extension shared by all run-table artifacts.
	ArtifactExt = ".runs"

	// BinaryArtifact holds the run table of the binarized sheet image.
	BinaryArtifact = "binary" + ArtifactExt

	// HorizontalArtifact holds the horizontal run table used for staff line detection.
	HorizontalArtifact = "horizontal" + ArtifactExt

	// VerticalArtifact holds the vertical run table used for stem and bar detection.
	VerticalArtifact = "vertical" + ArtifactExt

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// KnownArtifacts lists the artifact files a sheet may hold, in display order.
func KnownArtifacts() []string {
	return []string{BinaryArtifact, HorizontalArtifact, VerticalArtifact}
}

// IsKnownArtifact reports whether name is one of KnownArtifacts.
func IsKnownArtifact(name string) bool {
	for _, known := range KnownArtifacts() {
		if known == name {
			return true
		}
	}
	return false
}

// SheetDirName returns the folder name of the given sheet number.
func SheetDirName(number int) string {
	return fmt.Sprintf("%s%d", SheetDirPrefix, number)
}

// SheetPath returns the folder of the given sheet inside a book root.
func SheetPath(bookRoot string, number int) string {
	return filepath.Join(bookRoot, SheetDirName(number))
}
