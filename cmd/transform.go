package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fornellas/slogxt/log"

	"github.com/fornellas/gct/gcode"
	iFmt "github.com/fornellas/gct/internal/fmt"
)

var TransformCmd = &cobra.Command{
	Use:   "transform [path]",
	Short: "Rotate and shift X/Y coordinates of a g-code program.",
	Long: "Read g-code from given path (or stdin) and apply a rigid transform to the X/Y " +
		"coordinates of every motion command: rotation by --degrees clockwise about --center, " +
		"followed by translation by --shift-x / --shift-y. All other lines pass through " +
		"unchanged.",
	Args: cobra.MaximumNArgs(1),
	Run: GetRunFn(func(cmd *cobra.Command, args []string) (err error) {
		path := "(STDIN)"
		if len(args) > 0 {
			path = args[0]
		}

		ctx, logger := log.MustWithGroupAttrs(
			cmd.Context(), "transform",
			"path", path,
			"degrees", transformDegrees,
			"center", transformCenter,
			"shift-x", transformShiftX,
			"shift-y", transformShiftY,
			"precision", transformPrecision,
			"output", outputValue,
		)
		cmd.SetContext(ctx)
		logger.Info("Running")

		var r io.Reader = os.Stdin
		if len(args) > 0 {
			var f *os.File
			f, err = os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, f.Close()) }()
			r = f
		}

		w, err := outputValue.WriterCloser()
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, w.Close()) }()

		matrix := gcode.NewMatrixTransform(
			transformDegrees, transformCenter.Point(), transformShiftX, transformShiftY,
		)
		transformer := gcode.NewTransformer(matrix, transformPrecision)

		if err := writeHeader(w, path); err != nil {
			return err
		}

		return transformer.Run(ctx, r, w)
	}),
}

// writeHeader prepends the fixed metadata block recording what transform
// was applied.
func writeHeader(w io.Writer, path string) error {
	_, err := fmt.Fprintf(
		w,
		"; G-code file modified by gct\n"+
			"; Original: %s\n"+
			"; Center: %s, Rotation: %v°\n"+
			"; Translation: X=%smm, Y=%smm\n"+
			"\n",
		path,
		transformCenter,
		transformDegrees,
		iFmt.SprintFloatFixed(transformShiftX, 3),
		iFmt.SprintFloatFixed(transformShiftY, 3),
	)
	return err
}

var transformDegrees float64
var defaultTransformDegrees float64 = 0

var transformShiftX float64
var defaultTransformShiftX float64 = 0

var transformShiftY float64
var defaultTransformShiftY float64 = 0

var defaultTransformCenter = "125x100"
var transformCenter = NewCenterValue(defaultTransformCenter)

var transformPrecision uint
var defaultTransformPrecision uint = 3

func init() {
	TransformCmd.PersistentFlags().Float64VarP(
		&transformDegrees, "degrees", "d", defaultTransformDegrees,
		"Degrees to rotate, positive is clockwise",
	)
	TransformCmd.PersistentFlags().Float64VarP(
		&transformShiftX, "shift-x", "", defaultTransformShiftX,
		"Shift distance for X axis, positive is right",
	)
	TransformCmd.PersistentFlags().Float64VarP(
		&transformShiftY, "shift-y", "", defaultTransformShiftY,
		"Shift distance for Y axis, positive is forward",
	)
	TransformCmd.PersistentFlags().VarP(
		transformCenter, "center", "c",
		"XxY center of rotation (eg '125x100')",
	)
	TransformCmd.PersistentFlags().UintVarP(
		&transformPrecision, "precision", "p", defaultTransformPrecision,
		"Output coordinate decimal precision",
	)

	AddOutputFlags(TransformCmd)
	RootCmd.AddCommand(TransformCmd)

	resetFlagsFns = append(resetFlagsFns, func() {
		transformDegrees = defaultTransformDegrees
		transformShiftX = defaultTransformShiftX
		transformShiftY = defaultTransformShiftY
		transformPrecision = defaultTransformPrecision
		if err := transformCenter.Set(defaultTransformCenter); err != nil {
			panic(err)
		}
	})
}
