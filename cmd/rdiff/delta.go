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

var deltaLogger = logging.RootLogger.Sublogger("delta")

var deltaCommand = &cobra.Command{
	Use:   "delta <signature_file> <new_file> <delta_file>",
	Short: "Compute a delta against a signature",
	Args:  cobra.ExactArgs(3),
	Run:   cmd.Mainify(deltaMain),
}

var deltaConfiguration struct {
	// chunkSize must match the chunk size recorded in the signature.
	chunkSize uint64
}

func init() {
	flags := deltaCommand.Flags()
	flags.Uint64Var(&deltaConfiguration.chunkSize, "chunk-size", 512, "chunk size in bytes (must match the signature)")
}

func deltaMain(_ *cobra.Command, arguments []string) error {
	signaturePath, newPath, deltaPath := arguments[0], arguments[1], arguments[2]

	signatureData, err := os.ReadFile(signaturePath)
	if err != nil {
		return rsync.NewIOError(err, "unable to read signature file")
	}

	signature, err := codec.DecodeSignature(signatureData)
	if err != nil {
		return errors.Wrap(err, "unable to decode signature")
	}
	if err := signature.EnsureValid(); err != nil {
		return errors.Wrap(err, "invalid signature")
	}
	if err := signature.CheckChunkSize(deltaConfiguration.chunkSize); err != nil {
		return errors.Wrap(err, "chunk size mismatch")
	}

	newData, err := os.ReadFile(newPath)
	if err != nil {
		return rsync.NewIOError(err, "unable to read new file")
	}
	deltaLogger.Debugf("read %d bytes from %s", len(newData), newPath)

	delta, err := rsync.Compute(signature, newData)
	if err != nil {
		return errors.Wrap(err, "unable to compute delta")
	}
	deltaLogger.Debugf("computed %d diff blocks", len(delta.Blocks))

	encoded, err := codec.Encode(delta)
	if err != nil {
		return errors.Wrap(err, "unable to encode delta")
	}

	if err := os.WriteFile(deltaPath, encoded, 0o644); err != nil {
		return rsync.NewIOError(err, "unable to write delta file")
	}

	return nil
}
