package main

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type bufferedFileWriteCloser struct {
	*bufio.Writer
	f *os.File
}

func (b *bufferedFileWriteCloser) Close() error {
	return errors.Join(b.Writer.Flush(), b.f.Close())
}

// OutputValue is a pflag.Value for the output path, defaulting to stdout.
type OutputValue struct {
	path string
}

func NewOutputValue() *OutputValue {
	return &OutputValue{}
}

func (o *OutputValue) String() string {
	if len(o.path) > 0 {
		return o.path
	}
	return "(STDOUT)"
}

func (o *OutputValue) Set(value string) error {
	o.path = value
	return nil
}

func (o *OutputValue) Reset() {
	o.path = ""
}

func (o *OutputValue) Type() string {
	return "[path]"
}

// WriterCloser opens the output for writing. File outputs are truncated
// and buffered, with Close flushing the buffer.
func (o *OutputValue) WriterCloser() (io.WriteCloser, error) {
	if len(o.path) > 0 {
		f, err := os.OpenFile(o.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(0644))
		if err != nil {
			return nil, err
		}
		return &bufferedFileWriteCloser{Writer: bufio.NewWriter(f), f: f}, nil
	}
	return os.Stdout, nil
}

var outputValue = NewOutputValue()

func AddOutputFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().VarP(outputValue, "output", "o", "Path to output to, default is to stdout")
}

func init() {
	resetFlagsFns = append(resetFlagsFns, func() {
		outputValue.Reset()
	})
}
