package importer

import "errors"

var (
	// ErrNoContent is returned when the input is empty after trimming.
	ErrNoContent = errors.New("there is no content to import")

	// ErrUnknownFileExtension is returned by file dispatch when the
	// extension does not map to any known song format.
	ErrUnknownFileExtension = errors.New("unknown file extension")

	// ErrUnsupportedFileType is returned for formats which are recognized
	// but have no importer yet (cssf, ccli).
	ErrUnsupportedFileType = errors.New("file type is recognized but not supported yet")
)
