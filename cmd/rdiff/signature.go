package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/yra1029/rdiff/cmd"
	"github.com/yra1029/rdiff/pkg/codec"
	"github.com/yra1029/rdiff/pkg/logging"
	"github.com/yra1029/rdiff/rsync"
)

var signatureLogger = logging.RootLogger.Sublogger("signature")

var signatureCommand = &cobra.Command{
	Use:   "signature <old_file> <signature_file>",
	Short: "Compute the signature of a file",
	Args:  cobra.ExactArgs(2),
	Run:   cmd.Mainify(signatureMain),
}

var signatureConfiguration struct {
	// chunkSize is the chunk size used to partition the old file.
	chunkSize uint64
}

func init() {
	flags := signatureCommand.Flags()
	flags.Uint64Var(&signatureConfiguration.chunkSize, "chunk-size", 512, "chunk size in bytes")
}

func signatureMain(_ *cobra.Command, arguments []string) error {
	oldPath, signaturePath := arguments[0], arguments[1]

	old, err := os.ReadFile(oldPath)
	if err != nil {
		return rsync.NewIOError(err, "unable to read old file")
	}
	signatureLogger.Debugf("read %d bytes from %s", len(old), oldPath)

	signature, err := rsync.NewSignature(old, signatureConfiguration.chunkSize)
	if err != nil {
		return errors.Wrap(err, "unable to compute signature")
	}
	signatureLogger.Debugf("computed %d chunk checksums", len(signature.Checksums))

	encoded, err := codec.Encode(signature)
	if err != nil {
		return errors.Wrap(err, "unable to encode signature")
	}

	if err := os.WriteFile(signaturePath, encoded, 0o644); err != nil {
		return rsync.NewIOError(err, "unable to write signature file")
	}

	return nil
}
