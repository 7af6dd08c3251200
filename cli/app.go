// Package cli contains the twist command line tool.
package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/kinmath/logging"
	"go.viam.com/kinmath/spatialmath"
	"go.viam.com/kinmath/utils"
)

const (
	// Flags.
	generalFlagInput   = "input"
	generalFlagCoords  = "coords"
	generalFlagTheta   = "theta"
	generalFlagDegrees = "degrees"
	generalFlagDebug   = "debug"
	generalFlagLogFile = "log-file"

	describeFlagTable = "table"
	velocityFlagDT    = "dt"

	loggerMetadataKey = "logger"
)

// NewApp returns the twist CLI application writing to out and errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "twist",
		Usage:           "inspect and evaluate rigid-body twists",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    generalFlagInput,
				Aliases: []string{"i"},
				Usage:   "load twists from a json5 `FILE`",
			},
			&cli.StringFlag{
				Name:  generalFlagCoords,
				Usage: "twist coordinates, numbers separated by commas or spaces and twists by semicolons",
			},
			&cli.Float64Flag{
				Name:  generalFlagTheta,
				Usage: "rotation magnitude used by exp, overriding the input file",
			},
			&cli.BoolFlag{
				Name:  generalFlagDegrees,
				Usage: "read and print rotation magnitudes in degrees",
			},
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  generalFlagLogFile,
				Usage: "also write debug logs to `FILE`",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:  "describe",
				Usage: "print the axis, magnitude and pitch of each twist",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  describeFlagTable,
						Usage: "print a single table instead of one block per twist",
					},
				},
				Action: DescribeAction,
			},
			{
				Name:  "exp",
				Usage: "print the homogeneous transform of each twist",
				Description: "without a theta each twist is exponentiated at unit parameter. With a theta the twist is " +
					"normalized first and the transform rotates through theta about its axis",
				Action: ExpAction,
			},
			{
				Name:  "velocity",
				Usage: "print the body velocity between the poses of consecutive twists",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  velocityFlagDT,
						Usage: "time between consecutive poses in seconds",
						Value: 1,
					},
				},
				Action: VelocityAction,
			},
			{
				Name:   "compose",
				Usage:  "chain the displacements of all twists, first to last, and print the generating twist",
				Action: ComposeAction,
			},
			{
				Name:   "sum",
				Usage:  "add all twists and print the result",
				Action: SumAction,
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	var logger logging.Logger
	switch {
	case c.String(generalFlagLogFile) != "":
		fileLogger, err := logging.NewFilePathDebugLogger(c.String(generalFlagLogFile), "twist")
		if err != nil {
			return err
		}
		logger = fileLogger
	case c.Bool(generalFlagDebug):
		logger = logging.NewDebugLogger("twist")
	default:
		logger = logging.NewBlankLogger("twist")
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[loggerMetadataKey] = logger
	return nil
}

func loggerFrom(c *cli.Context) logging.Logger {
	if logger, ok := c.App.Metadata[loggerMetadataKey].(logging.Logger); ok {
		return logger
	}
	return logging.NewBlankLogger("twist")
}

// input gathers the twists from --input and --coords. Invalid entries are logged and returned as a
// combined error alongside the valid twists.
func input(c *cli.Context) ([]*spatialmath.Twist, *float64, error) {
	logger := loggerFrom(c)
	var (
		configs []TwistConfig
		theta   *float64
		errs    error
	)
	if path := c.String(generalFlagInput); path != "" {
		doc, err := ReadInputFile(path)
		if err != nil {
			return nil, nil, err
		}
		logger.Debugw("read input file", "path", path, "twists", len(doc.Twists))
		configs = append(configs, doc.Twists...)
		theta = doc.Theta
	}
	if coords := c.String(generalFlagCoords); coords != "" {
		parsed, err := parseCoordinates(coords)
		errs = multierr.Append(errs, err)
		configs = append(configs, parsed...)
	}
	if c.IsSet(generalFlagTheta) {
		th := c.Float64(generalFlagTheta)
		theta = &th
	}
	if theta != nil && c.Bool(generalFlagDegrees) {
		th := utils.DegToRad(*theta)
		theta = &th
	}
	if len(configs) == 0 && errs == nil {
		return nil, nil, errors.Errorf("no twists given, use --%s or --%s", generalFlagInput, generalFlagCoords)
	}

	twists, err := (&InputDocument{Twists: configs}).Build()
	errs = multierr.Append(errs, err)
	logger.Debugw("built twists", "count", len(twists), "skipped", len(multierr.Errors(errs)))
	for _, err := range multierr.Errors(errs) {
		logger.Warnw("skipping twist", "error", err)
	}
	return twists, theta, errs
}

// DescribeAction prints each twist with its magnitude, pitch, a point on its axis and its axis as a
// Plucker line.
func DescribeAction(c *cli.Context) error {
	twists, _, errs := input(c)
	if c.Bool(describeFlagTable) {
		printf(c.App.Writer, "%s", twistTable(twists, c.Bool(generalFlagDegrees)))
		return errs
	}
	for i, twist := range twists {
		printf(c.App.Writer, "twist %d: %s", i, twist)
		printf(c.App.Writer, "  dimension: %s", twist.Dimension())
		printf(c.App.Writer, "  theta: %s", formatAngle(twist.Theta(), c.Bool(generalFlagDegrees)))
		printf(c.App.Writer, "  pitch: %s", spatialmath.FormatFloats([]float64{twist.Pitch()}))
		if point, err := twist.Point(); err == nil {
			printf(c.App.Writer, "  point: %s", spatialmath.FormatFloats(point))
		} else {
			printf(c.App.Writer, "  point: none (pure translation)")
		}
		if line, err := twist.Line(); err == nil {
			printf(c.App.Writer, "  line: %s", line)
		}
	}
	return errs
}

// ExpAction prints the homogeneous transform of each twist.
func ExpAction(c *cli.Context) error {
	twists, theta, errs := input(c)
	for i, twist := range twists {
		var m *mat.Dense
		if theta == nil {
			m = twist.Exp()
		} else {
			unit, magnitude := twist.Unit()
			loggerFrom(c).Debugw("normalized twist", "index", i, "magnitude", magnitude)
			m = unit.ExpTheta(*theta)
		}
		printf(c.App.Writer, "twist %d: %s", i, twist)
		printMatrix(c.App.Writer, m)
	}
	return errs
}

// SumAction adds every twist and prints the result.
func SumAction(c *cli.Context) error {
	twists, _, errs := input(c)
	if len(twists) == 0 {
		return errs
	}
	sum := twists[0]
	for _, twist := range twists[1:] {
		next, err := sum.Add(twist)
		if err != nil {
			return multierr.Append(errs, err)
		}
		sum = next
	}
	printf(c.App.Writer, "%s", sum)
	return errs
}

// ComposeAction prints the twist whose displacement is the product of every twist's displacement,
// taken in input order.
func ComposeAction(c *cli.Context) error {
	twists, _, errs := input(c)
	if len(twists) == 0 {
		return errs
	}
	composed, err := spatialmath.Compose(twists...)
	if err != nil {
		return multierr.Append(errs, err)
	}
	printf(c.App.Writer, "%s", composed)
	return errs
}

// VelocityAction prints the constant body velocity that carries the pose of each twist onto the
// pose of the next one.
func VelocityAction(c *cli.Context) error {
	twists, _, errs := input(c)
	if len(twists) < 2 {
		return multierr.Append(errs, errors.New("velocity needs at least two twists"))
	}
	for i := 1; i < len(twists); i++ {
		velocity, err := spatialmath.VelocityBetween(twists[i-1].Exp(), twists[i].Exp(), c.Float64(velocityFlagDT))
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "poses %d to %d", i-1, i))
			continue
		}
		printf(c.App.Writer, "%d -> %d: %s", i-1, i, velocity)
	}
	return errs
}

// twistTable renders one row per twist with columns of coordinates, dimension, theta, pitch and axis
// point.
func twistTable(twists []*spatialmath.Twist, degrees bool) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Twist", "Dimension", "Theta", "Pitch", "Point"})
	for i, twist := range twists {
		point := "none"
		if p, err := twist.Point(); err == nil {
			point = spatialmath.FormatFloats(p)
		}
		t.AppendRow(table.Row{
			fmt.Sprintf("%d", i),
			twist.String(),
			twist.Dimension().String(),
			formatAngle(twist.Theta(), degrees),
			spatialmath.FormatFloats([]float64{twist.Pitch()}),
			point,
		})
	}
	return t.Render()
}

func formatAngle(rad float64, degrees bool) string {
	if degrees {
		rad = utils.RadToDeg(rad)
	}
	return spatialmath.FormatFloats([]float64{rad})
}

func printMatrix(w io.Writer, m mat.Matrix) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		printf(w, "  [%s]", spatialmath.FormatFloats(mat.Row(nil, i, m)))
	}
}

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}
