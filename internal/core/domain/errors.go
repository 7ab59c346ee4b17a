package domain

import "go.trai.ch/zerr"

var (
	// ErrArtifactLoadFailed is reported when a lazily loaded artifact cannot be read from its sheet.
	ErrArtifactLoadFailed = zerr.New("failed to load artifact")

	// ErrArtifactNotAvailable is returned when an artifact has never been computed or could not be loaded.
	ErrArtifactNotAvailable = zerr.New("artifact not available")

	// ErrArtifactFlushFailed is returned when a modified artifact cannot be written back to its sheet.
	ErrArtifactFlushFailed = zerr.New("failed to flush artifact")

	// ErrUnknownArtifact is returned when an artifact name is not one of the known sheet artifacts.
	ErrUnknownArtifact = zerr.New("unknown artifact")

	// ErrInvalidSheetNumber is returned when a sheet number is lower than 1.
	ErrInvalidSheetNumber = zerr.New("invalid sheet number")

	// ErrPathOutsideSheet is returned when an artifact path escapes its sheet folder.
	ErrPathOutsideSheet = zerr.New("artifact path is outside sheet folder")

	// ErrBookOpenFailed is returned when the book root directory cannot be opened or created.
	ErrBookOpenFailed = zerr.New("failed to open book")

	// ErrBookScanFailed is returned when the sheet folders of a book cannot be listed.
	ErrBookScanFailed = zerr.New("failed to list sheets of book")

	// ErrSheetCreateFailed is returned when a sheet folder cannot be created.
	ErrSheetCreateFailed = zerr.New("failed to create sheet folder")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileWriteFailed is returned when a file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrFileRemoveFailed is returned when a file cannot be removed.
	ErrFileRemoveFailed = zerr.New("failed to remove file")

	// ErrPayloadMalformed is returned when an encoded payload has no valid header or body.
	ErrPayloadMalformed = zerr.New("malformed payload")

	// ErrChecksumMismatch is returned when the stored checksum does not match the payload body.
	ErrChecksumMismatch = zerr.New("payload checksum mismatch")

	// ErrPayloadMarshalFailed is returned when a payload cannot be encoded.
	ErrPayloadMarshalFailed = zerr.New("failed to marshal payload")

	// ErrPayloadUnmarshalFailed is returned when a payload body cannot be decoded.
	ErrPayloadUnmarshalFailed = zerr.New("failed to unmarshal payload")

	// ErrInvalidRunTable is returned when a run table violates its geometry.
	ErrInvalidRunTable = zerr.New("invalid run table")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file holds out-of-range values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrVerifyFailed is returned when at least one artifact of a book fails verification.
	ErrVerifyFailed = zerr.New("book verification failed")

	// ErrImportFailed is returned when an import source cannot be turned into an artifact.
	ErrImportFailed = zerr.New("failed to import artifact")
)
